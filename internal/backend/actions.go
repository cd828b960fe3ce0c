package backend

import (
	"fmt"
	"strings"
	"time"
)

// Enumerated dispatch actions. Every backend call is one of these; the
// typed request structs below are the only payloads ever sent, so an
// unknown action cannot be constructed by callers.
const (
	actionGetFoodList          = "getFoodList"
	actionGetComboList         = "getComboList"
	actionGetNutrition         = "getNutrition"
	actionLogNutrition         = "logNutrition"
	actionUpdateNutrition      = "updateNutrition"
	actionDeleteNutrition      = "deleteNutrition"
	actionLogCombo             = "logCombo"
	actionGetWorkouts          = "getWorkouts"
	actionLogWorkout           = "logWorkout"
	actionDeleteWorkout        = "deleteWorkout"
	actionGetRoutines          = "getRoutines"
	actionGetWorkoutHistory    = "getWorkoutHistory"
	actionGetWeeklyAerobic     = "getWeeklyAerobic"
	actionGetBodyData          = "getBodyData"
	actionGetLatestBodyMetrics = "getLatestBodyMetrics"
	actionLogBodyData          = "logBodyData"
	actionGetAnalytics         = "getAnalytics"
)

// envelope — транспортный конверт {action, data}
type envelope struct {
	Action string `json:"action"`
	Data   any    `json:"data,omitempty"`
}

// ack — ответ стора на запись
type ack struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type dateQuery struct {
	Date string `json:"date"`
}

type idQuery struct {
	ID int64 `json:"id"`
}

// LogNutritionRequest is the payload for logNutrition. Macro values arrive
// already scaled; the store never rescales them.
type LogNutritionRequest struct {
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// Validate validates the log request.
func (r *LogNutritionRequest) Validate() error {
	if err := validateDate(r.Date); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// UpdateNutritionRequest is the payload for updateNutrition. Only the
// amount is replaced; macros are not re-derived on update.
type UpdateNutritionRequest struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	NewAmount float64 `json:"newAmount"`
}

// Validate validates the update request.
func (r *UpdateNutritionRequest) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("id is required")
	}
	if r.NewAmount <= 0 {
		return fmt.Errorf("newAmount must be positive")
	}
	return nil
}

type logComboRequest struct {
	Date      string `json:"date"`
	ComboName string `json:"comboName"`
}

// LogWorkoutRequest is the payload for logWorkout. Optional fields are
// populated by workout type.
type LogWorkoutRequest struct {
	Date      string   `json:"date"`
	Type      string   `json:"type"`
	Exercise  string   `json:"exercise"`
	Sets      int      `json:"sets"`
	Reps      int      `json:"reps"`
	Weight    float64  `json:"weight"`
	RPE       float64  `json:"rpe"`
	TimeMin   int      `json:"time"`
	Intensity float64  `json:"intensity"`
	HeartRate int      `json:"heartRate"`
	Tags      []string `json:"tags"`
}

// Validate validates the workout log request.
func (r *LogWorkoutRequest) Validate() error {
	if err := validateDate(r.Date); err != nil {
		return err
	}
	if r.Type != WorkoutStrength && r.Type != WorkoutAerobic {
		return fmt.Errorf("type must be %s or %s", WorkoutStrength, WorkoutAerobic)
	}
	if strings.TrimSpace(r.Exercise) == "" {
		return fmt.Errorf("exercise is required")
	}
	return nil
}

// LogBodyDataRequest is the payload for logBodyData.
type LogBodyDataRequest struct {
	Date string `json:"date"`
	BodyDataLog
}

// Validate validates the body data request.
func (r *LogBodyDataRequest) Validate() error {
	if err := validateDate(r.Date); err != nil {
		return err
	}
	if r.Mood < 0 || r.Mood > 5 {
		return fmt.Errorf("mood must be between 0 and 5")
	}
	for _, hm := range []string{r.BedTime, r.WakeTime} {
		if hm == "" {
			continue
		}
		if _, err := time.Parse("15:04", hm); err != nil {
			return fmt.Errorf("invalid time %q, want HH:MM", hm)
		}
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
