package daysync

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fdg312/fit-hub-client/internal/backend"
	"github.com/fdg312/fit-hub-client/internal/bodymetrics"
)

var (
	// ErrStaleResync помечает resync, чей ответ пришёл после старта более
	// нового; его результат отброшен и состояние не тронуто.
	ErrStaleResync = errors.New("resync superseded by a newer one")
)

// waterAddMl — объём одного нажатия "+100ml"
const waterAddMl = 100

// Totals — дневной агрегат по еде; всегда пересчитывается, никогда не
// кэшируется между датами.
type Totals struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// dayState — всё date-scoped состояние одной датой
type dayState struct {
	nutritionLogs []backend.NutritionLog
	workoutLogs   []backend.WorkoutLog
	history       backend.HistoryMap
	weeklyAerobic int
	bodyData      *backend.BodyDataLog
	latest        backend.LatestMetrics
}

func emptyState() dayState {
	return dayState{
		nutritionLogs: []backend.NutritionLog{},
		workoutLogs:   []backend.WorkoutLog{},
		history:       backend.HistoryMap{},
	}
}

// Today returns the current date key from local wall-clock time, not UTC.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Coordinator — единственный источник истины для date-scoped состояния.
// Resync забирает все шесть ресурсов параллельно и коммитит их только
// целиком; любая ошибка сбрасывает день в пустое состояние. Мутации
// пишут один запрос и безусловно пересинхронизируются, оптимистичных
// обновлений нет.
type Coordinator struct {
	be backend.Backend

	mu      sync.Mutex
	date    string
	gen     uint64 // токен поколения; устаревшие ответы отбрасываются
	loading bool
	state   dayState
}

// New creates a coordinator for the given date (normally Today()).
func New(be backend.Backend, date string) *Coordinator {
	return &Coordinator{
		be:    be,
		date:  date,
		state: emptyState(),
	}
}

// Date returns the active date key.
func (c *Coordinator) Date() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date
}

// IsLoading reports whether a resync is in flight. All derived fields are
// stale while it is true.
func (c *Coordinator) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// SetActiveDate replaces the active date and immediately resyncs.
func (c *Coordinator) SetActiveDate(ctx context.Context, date string) error {
	c.mu.Lock()
	c.date = date
	c.mu.Unlock()
	return c.Resync(ctx)
}

// Resync re-fetches all six date-scoped resources in parallel and commits
// the result atomically. A resync that was superseded while in flight
// returns ErrStaleResync and leaves the state to its successor. Any fetch
// failure resets the day to empty collections; the previously displayed
// data is not preserved.
func (c *Coordinator) Resync(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	myGen := c.gen
	date := c.date
	c.loading = true
	c.mu.Unlock()

	var next dayState

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs, err := c.be.NutritionLogs(gctx, date)
		next.nutritionLogs = logs
		return err
	})
	g.Go(func() error {
		logs, err := c.be.Workouts(gctx, date)
		next.workoutLogs = logs
		return err
	})
	g.Go(func() error {
		history, err := c.be.WorkoutHistory(gctx, date)
		next.history = history
		return err
	})
	g.Go(func() error {
		total, err := c.be.WeeklyAerobic(gctx, date)
		next.weeklyAerobic = total.TotalMinutes
		return err
	})
	g.Go(func() error {
		body, err := c.be.BodyData(gctx, date)
		next.bodyData = body
		return err
	})
	g.Go(func() error {
		latest, err := c.be.LatestBodyMetrics(gctx)
		next.latest = latest
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != myGen {
		// Более новый resync уже стартовал; его коммит главнее.
		return ErrStaleResync
	}

	c.loading = false
	if err != nil {
		log.Printf("resync: date=%s failed: %v", date, err)
		c.state = emptyState()
		return err
	}

	if next.nutritionLogs == nil {
		next.nutritionLogs = []backend.NutritionLog{}
	}
	if next.workoutLogs == nil {
		next.workoutLogs = []backend.WorkoutLog{}
	}
	if next.history == nil {
		next.history = backend.HistoryMap{}
	}
	c.state = next
	return nil
}

// ============================================================================
// Derived, date-scoped reads
// ============================================================================

// Totals returns the macro sums over all nutrition logs of the active
// date, water entries included (water carries zero macros anyway).
func (c *Coordinator) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var t Totals
	for _, l := range c.state.nutritionLogs {
		t.Calories += l.Calories
		t.Protein += l.Protein
		t.Carbs += l.Carbs
		t.Fat += l.Fat
	}
	return t
}

// WaterTotalMl sums the amounts of all Water entries for the active date.
func (c *Coordinator) WaterTotalMl() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, l := range c.state.nutritionLogs {
		if l.Name == backend.WaterEntryName {
			total += l.Amount
		}
	}
	return int(total)
}

// FoodLogs returns the nutrition entries of the active date with Water
// entries filtered out; this is the list the meal view and wizard see.
func (c *Coordinator) FoodLogs() []backend.NutritionLog {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]backend.NutritionLog, 0, len(c.state.nutritionLogs))
	for _, l := range c.state.nutritionLogs {
		if l.Name == backend.WaterEntryName {
			continue
		}
		out = append(out, l)
	}
	return out
}

// WorkoutLogs returns today's workout entries.
func (c *Coordinator) WorkoutLogs() []backend.WorkoutLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]backend.WorkoutLog, len(c.state.workoutLogs))
	copy(out, c.state.workoutLogs)
	return out
}

// WorkoutHistory returns the exercise -> last record map.
func (c *Coordinator) WorkoutHistory() backend.HistoryMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(backend.HistoryMap, len(c.state.history))
	for k, v := range c.state.history {
		out[k] = v
	}
	return out
}

// WeeklyAerobicMin returns the store-aggregated aerobic minutes for the
// ISO week containing the active date.
func (c *Coordinator) WeeklyAerobicMin() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.weeklyAerobic
}

// BodyData returns the record for the active date, or nil.
func (c *Coordinator) BodyData() *backend.BodyDataLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.bodyData == nil {
		return nil
	}
	copied := *c.state.bodyData
	return &copied
}

// LatestMetrics returns the latest known non-zero body metric values.
func (c *Coordinator) LatestMetrics() backend.LatestMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.latest
}

// BodyPrefill returns the body form values for the active date: the
// record when one exists, otherwise the latest metrics carried forward.
func (c *Coordinator) BodyPrefill() backend.BodyDataLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bodymetrics.Prefill(c.state.bodyData, c.state.latest)
}

// ============================================================================
// Mutations: exactly one write, then an unconditional resync on success.
// A failed write returns immediately; state and the loading flag are left
// untouched so the user can retry the triggering action.
// ============================================================================

// LogNutrition writes one nutrition entry and resyncs.
func (c *Coordinator) LogNutrition(ctx context.Context, req backend.LogNutritionRequest) error {
	if req.Date == "" {
		req.Date = c.Date()
	}
	if err := c.be.LogNutrition(ctx, req); err != nil {
		return err
	}
	return c.Resync(ctx)
}

// UpdateNutrition replaces an entry's amount and resyncs. Macros are not
// re-derived client-side; whatever the store recomputed comes back with
// the resync.
func (c *Coordinator) UpdateNutrition(ctx context.Context, id int64, name string, newAmount float64) error {
	err := c.be.UpdateNutrition(ctx, backend.UpdateNutritionRequest{
		ID:        id,
		Name:      name,
		NewAmount: newAmount,
	})
	if err != nil {
		return err
	}
	return c.Resync(ctx)
}

// DeleteNutrition removes one entry and resyncs.
func (c *Coordinator) DeleteNutrition(ctx context.Context, id int64) error {
	if err := c.be.DeleteNutrition(ctx, id); err != nil {
		return err
	}
	return c.Resync(ctx)
}

// LogCombo logs a named combo for the active date and resyncs. The store
// expands the combo; no per-item breakdown is sent.
func (c *Coordinator) LogCombo(ctx context.Context, comboName string) error {
	if err := c.be.LogCombo(ctx, c.Date(), comboName); err != nil {
		return err
	}
	return c.Resync(ctx)
}

// AddWater logs one +100ml water entry for the active date and resyncs.
// Water bypasses the wizard entirely.
func (c *Coordinator) AddWater(ctx context.Context) error {
	err := c.be.LogNutrition(ctx, backend.LogNutritionRequest{
		Date:     c.Date(),
		Name:     backend.WaterEntryName,
		Amount:   waterAddMl,
		Unit:     "ml",
		Category: backend.CategoryWater,
	})
	if err != nil {
		return err
	}
	return c.Resync(ctx)
}

// LogWorkout writes one workout entry for the active date and resyncs.
func (c *Coordinator) LogWorkout(ctx context.Context, req backend.LogWorkoutRequest) error {
	if req.Date == "" {
		req.Date = c.Date()
	}
	if err := c.be.LogWorkout(ctx, req); err != nil {
		return err
	}
	return c.Resync(ctx)
}

// DeleteWorkout removes one workout entry and resyncs.
func (c *Coordinator) DeleteWorkout(ctx context.Context, id int64) error {
	if err := c.be.DeleteWorkout(ctx, id); err != nil {
		return err
	}
	return c.Resync(ctx)
}

// LogBodyData writes the body record for the active date and resyncs.
func (c *Coordinator) LogBodyData(ctx context.Context, body backend.BodyDataLog) error {
	err := c.be.LogBodyData(ctx, backend.LogBodyDataRequest{
		Date:        c.Date(),
		BodyDataLog: body,
	})
	if err != nil {
		return err
	}
	return c.Resync(ctx)
}
