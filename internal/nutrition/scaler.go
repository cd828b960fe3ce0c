package nutrition

import (
	"math"
	"strings"

	"github.com/fdg312/fit-hub-client/internal/backend"
)

// Macros holds scaled macro values for one portion.
type Macros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Multiplier derives the scaling factor for a requested amount. Catalog
// values are per 100 g for gram units, per unit otherwise.
func Multiplier(item backend.FoodItem, amount float64) float64 {
	if strings.EqualFold(item.Unit, backend.UnitGrams) {
		return amount / 100
	}
	return amount
}

// ScalePortion scales the catalog base values by the requested amount.
// Each macro is rounded to the nearest integer independently; the sum of
// rounded macros may not reproduce the rounded calorie figure exactly.
// That drift is the accepted policy, not a bug. Callers reject amount <= 0
// before calling; no validation happens here.
func ScalePortion(item backend.FoodItem, amount float64) Macros {
	m := Multiplier(item, amount)
	return Macros{
		Calories: int(math.Round(item.Calories * m)),
		Protein:  int(math.Round(item.Protein * m)),
		Carbs:    int(math.Round(item.Carbs * m)),
		Fat:      int(math.Round(item.Fat * m)),
	}
}
