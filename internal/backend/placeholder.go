package backend

import "context"

// Placeholder — Backend без живого стора. Возвращает пустые списки и
// нулевые записи на каждый action, чтобы клиент оставался рабочим в
// standalone/demo режиме. Записи подтверждаются, но никуда не попадают.
type Placeholder struct{}

// NewPlaceholder создаёт placeholder-бэкенд
func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) FoodList(ctx context.Context) ([]FoodItem, error)   { return []FoodItem{}, nil }
func (p *Placeholder) ComboList(ctx context.Context) ([]ComboItem, error) { return []ComboItem{}, nil }

func (p *Placeholder) NutritionLogs(ctx context.Context, date string) ([]NutritionLog, error) {
	return []NutritionLog{}, nil
}

func (p *Placeholder) LogNutrition(ctx context.Context, req LogNutritionRequest) error {
	return req.Validate()
}

func (p *Placeholder) UpdateNutrition(ctx context.Context, req UpdateNutritionRequest) error {
	return req.Validate()
}

func (p *Placeholder) DeleteNutrition(ctx context.Context, id int64) error { return nil }

func (p *Placeholder) LogCombo(ctx context.Context, date, comboName string) error { return nil }

func (p *Placeholder) Workouts(ctx context.Context, date string) ([]WorkoutLog, error) {
	return []WorkoutLog{}, nil
}

func (p *Placeholder) LogWorkout(ctx context.Context, req LogWorkoutRequest) error {
	return req.Validate()
}

func (p *Placeholder) DeleteWorkout(ctx context.Context, id int64) error { return nil }

func (p *Placeholder) Routines(ctx context.Context) (RoutineDict, error) {
	return RoutineDict{}, nil
}

func (p *Placeholder) WorkoutHistory(ctx context.Context, date string) (HistoryMap, error) {
	return HistoryMap{}, nil
}

func (p *Placeholder) WeeklyAerobic(ctx context.Context, date string) (WeeklyAerobic, error) {
	return WeeklyAerobic{}, nil
}

func (p *Placeholder) BodyData(ctx context.Context, date string) (*BodyDataLog, error) {
	return nil, nil
}

func (p *Placeholder) LatestBodyMetrics(ctx context.Context) (LatestMetrics, error) {
	return LatestMetrics{}, nil
}

func (p *Placeholder) LogBodyData(ctx context.Context, req LogBodyDataRequest) error {
	return req.Validate()
}

func (p *Placeholder) Analytics(ctx context.Context) ([]AnalyticsPoint, error) {
	return []AnalyticsPoint{}, nil
}
