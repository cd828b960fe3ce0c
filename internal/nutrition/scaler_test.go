package nutrition

import (
	"testing"

	"github.com/fdg312/fit-hub-client/internal/backend"
)

func TestScalePortionGramUnit(t *testing.T) {
	item := backend.FoodItem{
		Name:     "Chicken Breast",
		Calories: 100,
		Protein:  23,
		Carbs:    0,
		Fat:      1.2,
		Unit:     "g",
	}

	got := ScalePortion(item, 150) // multiplier = 1.5
	if got.Calories != 150 {
		t.Errorf("expected calories=150, got %d", got.Calories)
	}
	if got.Protein != 35 { // 34.5 rounds up
		t.Errorf("expected protein=35, got %d", got.Protein)
	}
	if got.Fat != 2 { // 1.8 rounds up
		t.Errorf("expected fat=2, got %d", got.Fat)
	}
}

func TestScalePortionCountUnit(t *testing.T) {
	item := backend.FoodItem{
		Name:     "Egg",
		Calories: 50,
		Protein:  6,
		Carbs:    0.5,
		Fat:      3.5,
		Unit:     "unit",
	}

	got := ScalePortion(item, 2) // multiplier = amount directly
	if got.Calories != 100 {
		t.Errorf("expected calories=100, got %d", got.Calories)
	}
	if got.Protein != 12 {
		t.Errorf("expected protein=12, got %d", got.Protein)
	}
	if got.Carbs != 1 {
		t.Errorf("expected carbs=1, got %d", got.Carbs)
	}
	if got.Fat != 7 {
		t.Errorf("expected fat=7, got %d", got.Fat)
	}
}

func TestScalePortionRoundsMacrosIndependently(t *testing.T) {
	// 0.6 of each macro rounds to 1 even though their caloric sum would
	// not reproduce the rounded calorie figure. The drift is intended.
	item := backend.FoodItem{
		Calories: 10.4,
		Protein:  0.6,
		Carbs:    0.6,
		Fat:      0.6,
		Unit:     "unit",
	}

	got := ScalePortion(item, 1)
	if got.Calories != 10 {
		t.Errorf("expected calories=10, got %d", got.Calories)
	}
	if got.Protein != 1 || got.Carbs != 1 || got.Fat != 1 {
		t.Errorf("expected all macros=1, got %+v", got)
	}
}

func TestMultiplierCaseInsensitiveUnit(t *testing.T) {
	item := backend.FoodItem{Calories: 100, Unit: "G"}
	if m := Multiplier(item, 50); m != 0.5 {
		t.Errorf("expected multiplier=0.5 for unit G, got %v", m)
	}
}
