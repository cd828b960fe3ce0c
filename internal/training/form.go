package training

import "github.com/fdg312/fit-hub-client/internal/backend"

// EntryForm — состояние формы записи тренировки между сабмитами
type EntryForm struct {
	Type      string
	Exercise  string
	Sets      int
	Reps      int
	Weight    float64
	RPE       float64
	TimeMin   int
	Intensity float64
	HeartRate int
}

// SeedStrength fills the form from a plan item prefill.
func (f *EntryForm) SeedStrength(p StrengthPrefill) {
	*f = EntryForm{
		Type:     backend.WorkoutStrength,
		Exercise: p.Exercise,
		Sets:     p.Sets,
		Reps:     p.Reps,
	}
}

// SeedAerobic fills the form with the standing aerobic defaults.
func (f *EntryForm) SeedAerobic() {
	d := DefaultAerobicEntry()
	*f = EntryForm{
		Type:      backend.WorkoutAerobic,
		Exercise:  d.Exercise,
		TimeMin:   d.TimeMin,
		Intensity: d.Intensity,
		HeartRate: d.HeartRate,
	}
}

// Request builds the dispatch payload for the given date.
func (f *EntryForm) Request(date string) backend.LogWorkoutRequest {
	return backend.LogWorkoutRequest{
		Date:      date,
		Type:      f.Type,
		Exercise:  f.Exercise,
		Sets:      f.Sets,
		Reps:      f.Reps,
		Weight:    f.Weight,
		RPE:       f.RPE,
		TimeMin:   f.TimeMin,
		Intensity: f.Intensity,
		HeartRate: f.HeartRate,
	}
}

// AfterSubmit resets the form for the next entry: a strength form clears
// entirely, an aerobic form reseeds the defaults so back-to-back cardio
// entries stay one tap away.
func (f *EntryForm) AfterSubmit() {
	if f.Type == backend.WorkoutAerobic {
		f.SeedAerobic()
		return
	}
	*f = EntryForm{}
}
