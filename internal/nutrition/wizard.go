package nutrition

import (
	"context"
	"errors"
	"strings"

	"github.com/fdg312/fit-hub-client/internal/backend"
)

var (
	ErrWizardClosed    = errors.New("wizard is not open")
	ErrNoFoodSelected  = errors.New("no food selected")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrComboNotFound   = errors.New("combo not found")
	ErrNotConfirmed    = errors.New("combo not confirmed")
	ErrWrongStep       = errors.New("operation not valid in current step")
)

// Tab is the top-level wizard tab.
type Tab int

const (
	TabFood Tab = iota
	TabCombo
)

// Step is the position in the guided food flow.
type Step int

const (
	StepCategoryList Step = iota
	StepFoodList
	StepAmountInput
)

// Categories offered by the wizard, in display order. Water is deliberately
// absent: water is logged through the one-shot action on the dashboard.
var Categories = []string{
	backend.CategoryProtein,
	backend.CategoryCarbs,
	backend.CategoryVegetable,
	backend.CategoryFruit,
	backend.CategoryFat,
	backend.CategoryDairy,
	backend.CategoryDrink,
	backend.CategoryOther,
}

// CatalogSource provides the read-only food and combo catalogs.
type CatalogSource interface {
	FoodList(ctx context.Context) ([]backend.FoodItem, error)
	ComboList(ctx context.Context) ([]backend.ComboItem, error)
}

// MealLogger is the mutation surface the wizard writes through. The day
// sync coordinator implements it: one write, then a full resync.
type MealLogger interface {
	LogNutrition(ctx context.Context, req backend.LogNutritionRequest) error
	LogCombo(ctx context.Context, comboName string) error
}

// ConfirmFunc asks the user to confirm adding a combo.
type ConfirmFunc func(comboName string) bool

// Wizard — пошаговый выбор еды: категория -> продукт -> количество, плюс
// плоский список комбо на отдельной вкладке. Строго вперёд/назад, без
// переходов через шаг.
type Wizard struct {
	catalog CatalogSource
	logger  MealLogger
	confirm ConfirmFunc

	open   bool
	date   string
	tab    Tab
	step   Step
	foods  []backend.FoodItem
	combos []backend.ComboItem

	category string
	food     *backend.FoodItem
	search   string
	amount   float64
}

// NewWizard creates a wizard over the given catalog and mutation surface.
func NewWizard(catalog CatalogSource, logger MealLogger, confirm ConfirmFunc) *Wizard {
	return &Wizard{
		catalog: catalog,
		logger:  logger,
		confirm: confirm,
	}
}

// Open loads the catalogs and resets the flow for the given date. Opening
// always lands on the Food tab at the category step, regardless of how a
// previous session was closed.
func (w *Wizard) Open(ctx context.Context, date string) error {
	foods, err := w.catalog.FoodList(ctx)
	if err != nil {
		return err
	}
	combos, err := w.catalog.ComboList(ctx)
	if err != nil {
		return err
	}

	w.open = true
	w.date = date
	w.foods = foods
	w.combos = combos
	w.reset()
	return nil
}

// Close discards all in-flow state.
func (w *Wizard) Close() {
	w.open = false
	w.reset()
}

func (w *Wizard) reset() {
	w.tab = TabFood
	w.step = StepCategoryList
	w.category = ""
	w.food = nil
	w.search = ""
	w.amount = 1
}

// IsOpen reports whether the wizard is active.
func (w *Wizard) IsOpen() bool { return w.open }

// Tab returns the active tab.
func (w *Wizard) Tab() Tab { return w.tab }

// Step returns the current step of the food flow.
func (w *Wizard) Step() Step { return w.step }

// SetTab switches between the food flow and the flat combo list. Switching
// back to food always restarts at the category step.
func (w *Wizard) SetTab(tab Tab) {
	w.tab = tab
	if tab == TabFood {
		w.step = StepCategoryList
		w.category = ""
		w.food = nil
		w.search = ""
	}
}

// SelectCategory moves CategoryList -> FoodList with the catalog filtered
// to the category.
func (w *Wizard) SelectCategory(category string) error {
	if !w.open {
		return ErrWizardClosed
	}
	if w.step != StepCategoryList {
		return ErrWrongStep
	}
	w.category = category
	w.step = StepFoodList
	w.search = ""
	return nil
}

// SelectFood moves FoodList -> AmountInput and seeds the amount: 100 for
// gram units, 1 otherwise.
func (w *Wizard) SelectFood(item backend.FoodItem) error {
	if !w.open {
		return ErrWizardClosed
	}
	if w.step != StepFoodList {
		return ErrWrongStep
	}
	w.food = &item
	w.step = StepAmountInput
	if strings.EqualFold(item.Unit, backend.UnitGrams) {
		w.amount = 100
	} else {
		w.amount = 1
	}
	return nil
}

// Back pops exactly one step. At the category step it is a no-op; closing
// the wizard is the way out from there.
func (w *Wizard) Back() {
	switch w.step {
	case StepAmountInput:
		w.step = StepFoodList
		w.food = nil
	case StepFoodList:
		w.step = StepCategoryList
		w.category = ""
		w.search = ""
	}
}

// SetSearch filters the food list by name, case-insensitively.
func (w *Wizard) SetSearch(term string) { w.search = term }

// Category returns the active category filter ("" at the category step).
func (w *Wizard) Category() string { return w.category }

// Selected returns the food being amounted, or nil.
func (w *Wizard) Selected() *backend.FoodItem { return w.food }

// Amount returns the current requested amount.
func (w *Wizard) Amount() float64 { return w.amount }

// SetAmount replaces the requested amount, clamped at zero.
func (w *Wizard) SetAmount(v float64) {
	if v < 0 {
		v = 0
	}
	w.amount = v
}

// AdjustAmount steps the amount by delta: gram units step by delta*10,
// count units by delta. The floor is zero.
func (w *Wizard) AdjustAmount(delta float64) {
	step := delta
	if w.food != nil && strings.EqualFold(w.food.Unit, backend.UnitGrams) {
		step = delta * 10
	}
	next := w.amount + step
	if next < 0 {
		next = 0
	}
	w.amount = next
}

// Foods returns the visible food list: the Water category is always
// excluded, then the category filter and the search term apply.
func (w *Wizard) Foods() []backend.FoodItem {
	out := make([]backend.FoodItem, 0, len(w.foods))
	term := strings.ToLower(w.search)
	for _, f := range w.foods {
		if f.Category == backend.CategoryWater {
			continue
		}
		if w.category != "" && f.Category != w.category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(f.Name), term) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Combos returns the flat combo list.
func (w *Wizard) Combos() []backend.ComboItem { return w.combos }

// Preview returns the scaled macros for the current selection and amount.
func (w *Wizard) Preview() Macros {
	if w.food == nil {
		return Macros{}
	}
	return ScalePortion(*w.food, w.amount)
}

// Submit issues the single log-write for the selected food and amount.
// A non-positive amount is rejected here, before any dispatch. On success
// the wizard closes; on failure it stays exactly where it was so the user
// can retry manually.
func (w *Wizard) Submit(ctx context.Context) error {
	if !w.open {
		return ErrWizardClosed
	}
	if w.food == nil || w.step != StepAmountInput {
		return ErrNoFoodSelected
	}
	if w.amount <= 0 {
		return ErrInvalidAmount
	}

	scaled := ScalePortion(*w.food, w.amount)
	err := w.logger.LogNutrition(ctx, backend.LogNutritionRequest{
		Date:     w.date,
		Name:     w.food.Name,
		Calories: scaled.Calories,
		Protein:  scaled.Protein,
		Carbs:    scaled.Carbs,
		Fat:      scaled.Fat,
		Amount:   w.amount,
		Unit:     w.food.Unit,
		Category: w.food.Category,
	})
	if err != nil {
		return err
	}

	w.Close()
	return nil
}

// AddCombo logs a named combo after explicit confirmation. No per-item
// breakdown is sent; the store expands the combo itself. On success the
// wizard closes.
func (w *Wizard) AddCombo(ctx context.Context, comboName string) error {
	if !w.open {
		return ErrWizardClosed
	}

	found := false
	for _, c := range w.combos {
		if c.Name == comboName {
			found = true
			break
		}
	}
	if !found {
		return ErrComboNotFound
	}

	if w.confirm != nil && !w.confirm(comboName) {
		return ErrNotConfirmed
	}

	if err := w.logger.LogCombo(ctx, comboName); err != nil {
		return err
	}

	w.Close()
	return nil
}
