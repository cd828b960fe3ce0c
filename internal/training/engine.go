package training

import (
	"strconv"
	"strings"

	"github.com/fdg312/fit-hub-client/internal/backend"
)

// Phases of the 3-week mesocycle.
const (
	PhaseVolume    = "Volume"    // weeks 1-2
	PhaseIntensity = "Intensity" // week 3
)

// CycleStore persists the cycle week across sessions. The settings store
// implements it; the engine never touches ambient global state.
type CycleStore interface {
	CycleWeek() int
	SetCycleWeek(week int) error
}

// StrengthPrefill — предзаполнение формы по позиции плана
type StrengthPrefill struct {
	Exercise string
	Sets     int
	Reps     int // нижняя граница диапазона, без валидации фактического
}

// AerobicDefaults seed the aerobic entry form.
type AerobicDefaults struct {
	Exercise  string
	TimeMin   int
	Intensity float64
	HeartRate int
}

// DefaultAerobicEntry returns the standing aerobic form seed.
func DefaultAerobicEntry() AerobicDefaults {
	return AerobicDefaults{Exercise: "Run", TimeMin: 30, Intensity: 3.5, HeartRate: 130}
}

// TargetFor resolves the per-exercise target for a cycle week: week 3 uses
// the intensity-phase target, weeks 1-2 the volume-phase target.
func TargetFor(item backend.RoutineItem, week int) backend.RoutineTarget {
	if week == 3 {
		return item.W3
	}
	return item.W12
}

// PhaseFor names the phase of a cycle week.
func PhaseFor(week int) string {
	if week == 3 {
		return PhaseIntensity
	}
	return PhaseVolume
}

// IsExerciseDone reports whether any of today's logs matches the plan
// item's exercise name. The match is exact: case and whitespace variance
// between a routine and a manually typed entry breaks completion tracking,
// so names come from plan prefill in practice.
func IsExerciseDone(exercise string, todaysLogs []backend.WorkoutLog) bool {
	for _, l := range todaysLogs {
		if l.Exercise == exercise {
			return true
		}
	}
	return false
}

// Engine — активный трёхнедельный цикл: неделя (persisted), выбранный план
// (session-only) и цели по упражнениям.
type Engine struct {
	cycle         CycleStore
	weeklyGoalMin int
	selected      string // "" = план не выбран
}

// NewEngine creates an engine over the persisted cycle store.
func NewEngine(cycle CycleStore, aerobicWeeklyGoalMin int) *Engine {
	return &Engine{
		cycle:         cycle,
		weeklyGoalMin: aerobicWeeklyGoalMin,
	}
}

// Week returns the active cycle week (1..3).
func (e *Engine) Week() int { return e.cycle.CycleWeek() }

// SetWeek changes the cycle week by explicit user selection and persists
// it immediately.
func (e *Engine) SetWeek(week int) error { return e.cycle.SetCycleWeek(week) }

// Phase names the active phase.
func (e *Engine) Phase() string { return PhaseFor(e.Week()) }

// ToggleRoutine selects a routine, or deselects it when already selected.
func (e *Engine) ToggleRoutine(name string) {
	if e.selected == name {
		e.selected = ""
		return
	}
	e.selected = name
}

// SelectedRoutine returns the session-selected routine name, if any.
func (e *Engine) SelectedRoutine() (string, bool) {
	return e.selected, e.selected != ""
}

// Target resolves the item's target for the active week.
func (e *Engine) Target(item backend.RoutineItem) backend.RoutineTarget {
	return TargetFor(item, e.Week())
}

// Prefill builds the workout-entry form seed for a plan item: target sets
// and the lower bound of the reps range (split on "-" or "~").
func (e *Engine) Prefill(item backend.RoutineItem) StrengthPrefill {
	target := e.Target(item)
	return StrengthPrefill{
		Exercise: item.Exercise,
		Sets:     target.Sets,
		Reps:     minReps(target.Reps),
	}
}

// AerobicRemaining returns the minutes left toward the weekly goal.
// weeklyCurrent arrives pre-aggregated from the store; the engine does no
// aggregation of its own.
func (e *Engine) AerobicRemaining(weeklyCurrent int) int {
	remaining := e.weeklyGoalMin - weeklyCurrent
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AerobicProgress returns the weekly progress percentage, capped at 100.
func (e *Engine) AerobicProgress(weeklyCurrent int) float64 {
	if e.weeklyGoalMin <= 0 {
		return 0
	}
	progress := float64(weeklyCurrent) / float64(e.weeklyGoalMin) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

func minReps(repsRange string) int {
	token := strings.FieldsFunc(repsRange, func(r rune) bool {
		return r == '-' || r == '~'
	})
	if len(token) == 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(token[0]))
	if err != nil {
		return 0
	}
	return n
}
