package backend

import (
	"context"
	"errors"
)

var (
	ErrInvalidDate = errors.New("invalid date format")
	ErrStoreFailed = errors.New("log store rejected request")
)

// Backend is the single dispatch surface to the remote log store. One
// method per action; the HTTP client and the placeholder implement all of
// them, so a new action cannot be added without every implementation
// noticing at compile time.
type Backend interface {
	FoodList(ctx context.Context) ([]FoodItem, error)
	ComboList(ctx context.Context) ([]ComboItem, error)

	NutritionLogs(ctx context.Context, date string) ([]NutritionLog, error)
	LogNutrition(ctx context.Context, req LogNutritionRequest) error
	UpdateNutrition(ctx context.Context, req UpdateNutritionRequest) error
	DeleteNutrition(ctx context.Context, id int64) error
	LogCombo(ctx context.Context, date, comboName string) error

	Workouts(ctx context.Context, date string) ([]WorkoutLog, error)
	LogWorkout(ctx context.Context, req LogWorkoutRequest) error
	DeleteWorkout(ctx context.Context, id int64) error
	Routines(ctx context.Context) (RoutineDict, error)
	WorkoutHistory(ctx context.Context, date string) (HistoryMap, error)
	WeeklyAerobic(ctx context.Context, date string) (WeeklyAerobic, error)

	BodyData(ctx context.Context, date string) (*BodyDataLog, error)
	LatestBodyMetrics(ctx context.Context) (LatestMetrics, error)
	LogBodyData(ctx context.Context, req LogBodyDataRequest) error

	Analytics(ctx context.Context) ([]AnalyticsPoint, error)
}
