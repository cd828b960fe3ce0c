package daysync

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fdg312/fit-hub-client/internal/backend"
)

// fakeBackend — управляемый in-memory стор для тестов координатора
type fakeBackend struct {
	mu sync.Mutex

	nutrition map[string][]backend.NutritionLog
	workouts  map[string][]backend.WorkoutLog
	history   backend.HistoryMap
	weekly    map[string]int
	body      map[string]*backend.BodyDataLog
	latest    backend.LatestMetrics

	failBody    error
	failWorkout error

	// blockWeekly задерживает getWeeklyAerobic для даты до закрытия канала
	blockWeekly map[string]chan struct{}
	// weeklyStarted сигналит, что getWeeklyAerobic для даты начался
	weeklyStarted map[string]chan struct{}

	writes []string
	calls  map[string]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		nutrition:     map[string][]backend.NutritionLog{},
		workouts:      map[string][]backend.WorkoutLog{},
		history:       backend.HistoryMap{},
		weekly:        map[string]int{},
		body:          map[string]*backend.BodyDataLog{},
		blockWeekly:   map[string]chan struct{}{},
		weeklyStarted: map[string]chan struct{}{},
		calls:         map[string]int{},
	}
}

func (f *fakeBackend) count(action string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[action]++
}

func (f *fakeBackend) callCount(action string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[action]
}

func (f *fakeBackend) FoodList(ctx context.Context) ([]backend.FoodItem, error) {
	return []backend.FoodItem{}, nil
}

func (f *fakeBackend) ComboList(ctx context.Context) ([]backend.ComboItem, error) {
	return []backend.ComboItem{}, nil
}

func (f *fakeBackend) NutritionLogs(ctx context.Context, date string) ([]backend.NutritionLog, error) {
	f.count("getNutrition")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nutrition[date], nil
}

func (f *fakeBackend) LogNutrition(ctx context.Context, req backend.LogNutritionRequest) error {
	f.count("logNutrition")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "logNutrition")
	f.nutrition[req.Date] = append(f.nutrition[req.Date], backend.NutritionLog{
		ID:       int64(len(f.nutrition[req.Date]) + 1),
		Date:     req.Date,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Category: req.Category,
	})
	return nil
}

func (f *fakeBackend) UpdateNutrition(ctx context.Context, req backend.UpdateNutritionRequest) error {
	f.count("updateNutrition")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "updateNutrition")
	for date, logs := range f.nutrition {
		for i := range logs {
			if logs[i].ID == req.ID {
				f.nutrition[date][i].Amount = req.NewAmount
			}
		}
	}
	return nil
}

func (f *fakeBackend) DeleteNutrition(ctx context.Context, id int64) error {
	f.count("deleteNutrition")
	f.mu.Lock()
	defer f.mu.Unlock()
	for date, logs := range f.nutrition {
		kept := logs[:0]
		for _, l := range logs {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		f.nutrition[date] = kept
	}
	return nil
}

func (f *fakeBackend) LogCombo(ctx context.Context, date, comboName string) error {
	f.count("logCombo")
	return nil
}

func (f *fakeBackend) Workouts(ctx context.Context, date string) ([]backend.WorkoutLog, error) {
	f.count("getWorkouts")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.workouts[date], nil
}

func (f *fakeBackend) LogWorkout(ctx context.Context, req backend.LogWorkoutRequest) error {
	f.count("logWorkout")
	f.mu.Lock()
	if f.failWorkout != nil {
		err := f.failWorkout
		f.mu.Unlock()
		return err
	}
	f.workouts[req.Date] = append(f.workouts[req.Date], backend.WorkoutLog{
		ID:       int64(len(f.workouts[req.Date]) + 1),
		Date:     req.Date,
		Type:     req.Type,
		Exercise: req.Exercise,
		Sets:     req.Sets,
		Reps:     req.Reps,
		Weight:   req.Weight,
	})
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) DeleteWorkout(ctx context.Context, id int64) error {
	f.count("deleteWorkout")
	return nil
}

func (f *fakeBackend) Routines(ctx context.Context) (backend.RoutineDict, error) {
	return backend.RoutineDict{}, nil
}

func (f *fakeBackend) WorkoutHistory(ctx context.Context, date string) (backend.HistoryMap, error) {
	f.count("getWorkoutHistory")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.history, nil
}

func (f *fakeBackend) WeeklyAerobic(ctx context.Context, date string) (backend.WeeklyAerobic, error) {
	f.count("getWeeklyAerobic")
	f.mu.Lock()
	started := f.weeklyStarted[date]
	block := f.blockWeekly[date]
	total := f.weekly[date]
	f.mu.Unlock()

	if started != nil {
		close(started)
		f.mu.Lock()
		delete(f.weeklyStarted, date)
		f.mu.Unlock()
	}
	if block != nil {
		<-block
	}
	return backend.WeeklyAerobic{TotalMinutes: total}, nil
}

func (f *fakeBackend) BodyData(ctx context.Context, date string) (*backend.BodyDataLog, error) {
	f.count("getBodyData")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBody != nil {
		return nil, f.failBody
	}
	return f.body[date], nil
}

func (f *fakeBackend) LatestBodyMetrics(ctx context.Context) (backend.LatestMetrics, error) {
	f.count("getLatestBodyMetrics")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, nil
}

func (f *fakeBackend) LogBodyData(ctx context.Context, req backend.LogBodyDataRequest) error {
	f.count("logBodyData")
	f.mu.Lock()
	defer f.mu.Unlock()
	body := req.BodyDataLog
	f.body[req.Date] = &body
	return nil
}

func (f *fakeBackend) Analytics(ctx context.Context) ([]backend.AnalyticsPoint, error) {
	return []backend.AnalyticsPoint{}, nil
}

const testDate = "2026-03-02"

func TestResyncAggregatesTotals(t *testing.T) {
	be := newFakeBackend()
	be.nutrition[testDate] = []backend.NutritionLog{
		{ID: 1, Name: "Oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Amount: 40, Unit: "g"},
		{ID: 2, Name: "Chicken Breast", Calories: 248, Protein: 46, Carbs: 0, Fat: 5, Amount: 150, Unit: "g"},
		{ID: 3, Name: "Water", Amount: 100, Unit: "ml", Category: backend.CategoryWater},
		{ID: 4, Name: "Water", Amount: 100, Unit: "ml", Category: backend.CategoryWater},
	}

	c := New(be, testDate)
	if err := c.Resync(context.Background()); err != nil {
		t.Fatalf("Resync: %v", err)
	}

	totals := c.Totals()
	if totals.Calories != 398 || totals.Protein != 51 || totals.Carbs != 27 || totals.Fat != 8 {
		t.Errorf("unexpected totals: %+v", totals)
	}

	if got := c.WaterTotalMl(); got != 200 {
		t.Errorf("expected water total 200, got %d", got)
	}

	foods := c.FoodLogs()
	if len(foods) != 2 {
		t.Fatalf("expected 2 food entries with water excluded, got %d", len(foods))
	}
	for _, l := range foods {
		if l.Name == "Water" {
			t.Error("water entries must not reach the food list")
		}
	}

	if c.IsLoading() {
		t.Error("expected loading cleared after resync")
	}
}

func TestResyncAllOrNothing(t *testing.T) {
	be := newFakeBackend()
	be.nutrition[testDate] = []backend.NutritionLog{
		{ID: 1, Name: "Oatmeal", Calories: 150},
	}
	be.weekly[testDate] = 45
	be.failBody = errors.New("store unreachable")

	c := New(be, testDate)
	if err := c.Resync(context.Background()); err == nil {
		t.Fatal("expected resync error")
	}

	// One rejection resets the whole day; no partial merge of the
	// fetches that succeeded.
	if got := len(c.FoodLogs()); got != 0 {
		t.Errorf("expected empty logs after failed resync, got %d", got)
	}
	if got := c.WeeklyAerobicMin(); got != 0 {
		t.Errorf("expected weekly aerobic reset, got %d", got)
	}
	if c.IsLoading() {
		t.Error("loading flag must clear after a failed resync")
	}

	// Retrying after the store recovers converges to the real data.
	be.failBody = nil
	if err := c.Resync(context.Background()); err != nil {
		t.Fatalf("Resync retry: %v", err)
	}
	if got := len(c.FoodLogs()); got != 1 {
		t.Errorf("expected 1 entry after recovery, got %d", got)
	}
}

func TestSetActiveDateSwitchesState(t *testing.T) {
	be := newFakeBackend()
	be.nutrition["2026-03-02"] = []backend.NutritionLog{{ID: 1, Name: "Oatmeal", Calories: 150}}
	be.nutrition["2026-03-03"] = []backend.NutritionLog{{ID: 2, Name: "Egg", Calories: 70}}

	c := New(be, "2026-03-02")
	if err := c.Resync(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Totals().Calories != 150 {
		t.Errorf("expected 150 kcal for first date, got %d", c.Totals().Calories)
	}

	if err := c.SetActiveDate(context.Background(), "2026-03-03"); err != nil {
		t.Fatal(err)
	}
	if c.Date() != "2026-03-03" {
		t.Errorf("expected active date switched, got %s", c.Date())
	}
	if c.Totals().Calories != 70 {
		t.Errorf("totals must be recomputed for the new date, got %d", c.Totals().Calories)
	}
}

func TestStaleResyncDiscarded(t *testing.T) {
	be := newFakeBackend()
	be.nutrition["2026-03-02"] = []backend.NutritionLog{{ID: 1, Name: "Oatmeal", Calories: 150}}
	be.nutrition["2026-03-03"] = []backend.NutritionLog{{ID: 2, Name: "Egg", Calories: 70}}

	block := make(chan struct{})
	started := make(chan struct{})
	be.blockWeekly["2026-03-02"] = block
	be.weeklyStarted["2026-03-02"] = started

	c := New(be, "2026-03-02")

	firstDone := make(chan error, 1)
	go func() { firstDone <- c.Resync(context.Background()) }()
	<-started // первый resync завис на getWeeklyAerobic

	// Пользователь переключил дату, пока первый resync в полёте.
	if err := c.SetActiveDate(context.Background(), "2026-03-03"); err != nil {
		t.Fatalf("SetActiveDate: %v", err)
	}
	if c.Totals().Calories != 70 {
		t.Fatalf("expected new date committed, got %d kcal", c.Totals().Calories)
	}

	close(block)
	if err := <-firstDone; !errors.Is(err, ErrStaleResync) {
		t.Fatalf("expected ErrStaleResync for the late response, got %v", err)
	}

	// Поздний ответ старой даты не перетёр состояние новой.
	if c.Totals().Calories != 70 {
		t.Errorf("stale response must not overwrite newer state, got %d kcal", c.Totals().Calories)
	}
	if c.IsLoading() {
		t.Error("loading flag must stay owned by the newest resync")
	}
}

func TestMutationTriggersFullResync(t *testing.T) {
	be := newFakeBackend()
	c := New(be, testDate)

	err := c.LogWorkout(context.Background(), backend.LogWorkoutRequest{
		Type:     backend.WorkoutStrength,
		Exercise: "Bench Press",
		Sets:     4,
		Reps:     8,
		Weight:   60,
	})
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}

	if got := be.callCount("logWorkout"); got != 1 {
		t.Errorf("expected exactly one write, got %d", got)
	}
	if got := be.callCount("getWorkouts"); got != 1 {
		t.Errorf("expected one resync fetch after the write, got %d", got)
	}

	logs := c.WorkoutLogs()
	if len(logs) != 1 || logs[0].Exercise != "Bench Press" || logs[0].Date != testDate {
		t.Errorf("expected the mutation visible only through resync, got %+v", logs)
	}
}

func TestFailedWriteSkipsResync(t *testing.T) {
	be := newFakeBackend()
	be.failWorkout = errors.New("store rejected")
	c := New(be, testDate)

	err := c.LogWorkout(context.Background(), backend.LogWorkoutRequest{
		Type:     backend.WorkoutStrength,
		Exercise: "Bench Press",
	})
	if err == nil {
		t.Fatal("expected write error")
	}
	if got := be.callCount("getWorkouts"); got != 0 {
		t.Errorf("failed write must not resync, got %d fetches", got)
	}
	if c.IsLoading() {
		t.Error("failed write must not leave the loading flag set")
	}
}

func TestAddWaterPayload(t *testing.T) {
	be := newFakeBackend()
	c := New(be, testDate)

	if err := c.AddWater(context.Background()); err != nil {
		t.Fatalf("AddWater: %v", err)
	}

	logs := be.nutrition[testDate]
	if len(logs) != 1 {
		t.Fatalf("expected one water entry, got %d", len(logs))
	}
	w := logs[0]
	if w.Name != "Water" || w.Amount != 100 || w.Unit != "ml" || w.Category != backend.CategoryWater {
		t.Errorf("unexpected water entry: %+v", w)
	}
	if w.Calories != 0 || w.Protein != 0 || w.Carbs != 0 || w.Fat != 0 {
		t.Errorf("water must carry zero macros, got %+v", w)
	}

	if got := c.WaterTotalMl(); got != 100 {
		t.Errorf("expected water total 100 after resync, got %d", got)
	}
	if got := len(c.FoodLogs()); got != 0 {
		t.Errorf("water must not appear among food logs, got %d", got)
	}
}

func TestUpdateNutritionReplacesAmountOnly(t *testing.T) {
	be := newFakeBackend()
	be.nutrition[testDate] = []backend.NutritionLog{
		{ID: 7, Name: "Rice", Calories: 130, Amount: 100, Unit: "g"},
	}
	c := New(be, testDate)

	if err := c.UpdateNutrition(context.Background(), 7, "Rice", 150); err != nil {
		t.Fatalf("UpdateNutrition: %v", err)
	}

	logs := c.FoodLogs()
	if len(logs) != 1 || logs[0].Amount != 150 {
		t.Errorf("expected amount replaced via resync, got %+v", logs)
	}
	// Macros come back as the store recomputed them; the client did not
	// touch the calorie figure.
	if logs[0].Calories != 130 {
		t.Errorf("client must not re-derive macros, got %+v", logs[0])
	}
}

func TestBodyPrefillCarriesLatestForward(t *testing.T) {
	be := newFakeBackend()
	be.latest = backend.LatestMetrics{Weight: 75, Waist: 80, Hip: 95, GripL: 45, GripR: 48}
	c := New(be, testDate)
	if err := c.Resync(context.Background()); err != nil {
		t.Fatal(err)
	}

	if c.BodyData() != nil {
		t.Fatal("expected no record for the date")
	}
	prefill := c.BodyPrefill()
	if prefill.Weight != 75 || prefill.GripR != 48 {
		t.Errorf("expected latest metrics carried forward, got %+v", prefill)
	}

	if err := c.LogBodyData(context.Background(), backend.BodyDataLog{Weight: 74.2, BedTime: "23:30", WakeTime: "07:30", Mood: 4}); err != nil {
		t.Fatalf("LogBodyData: %v", err)
	}
	prefill = c.BodyPrefill()
	if prefill.Weight != 74.2 || prefill.BedTime != "23:30" {
		t.Errorf("expected the saved record after resync, got %+v", prefill)
	}
}
