package backend

// Food categories as the log store catalogs them. The Water category is
// reserved for the one-shot water action and never offered by the meal
// wizard.
const (
	CategoryProtein   = "Protein"
	CategoryCarbs     = "Carbs"
	CategoryVegetable = "Vegetable"
	CategoryFruit     = "Fruit"
	CategoryFat       = "Fat"
	CategoryDairy     = "Dairy"
	CategoryDrink     = "Drink"
	CategoryWater     = "Water"
	CategoryOther     = "Other"
)

// WaterEntryName is the reserved log name for water entries.
const WaterEntryName = "Water"

// UnitGrams marks catalog items whose base values are per 100 g. Any other
// unit is a count unit with base values per single unit.
const UnitGrams = "g"

// FoodItem — запись каталога еды. Значения per 100 g для грамм-единиц,
// иначе per unit.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// NutritionLog — залогированная еда за день, значения уже отмасштабированы
type NutritionLog struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Time     string  `json:"time,omitempty"` // HH:MM, проставляется стором
}

// ComboItemRef — позиция внутри комбо
type ComboItemRef struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ComboItem — именованный набор еды с посчитанной суммой калорий.
// Логирование комбо атомарно: стор разворачивает состав сам.
type ComboItem struct {
	Name          string         `json:"name"`
	TotalCalories int            `json:"totalCalories"`
	Items         []ComboItemRef `json:"items"`
}

// Workout types.
const (
	WorkoutStrength = "Strength"
	WorkoutAerobic  = "Aerobic"
)

// WorkoutLog — запись тренировки; поля заполняются по типу
type WorkoutLog struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Type      string  `json:"type"` // Strength | Aerobic
	Exercise  string  `json:"exercise"`
	Sets      int     `json:"sets,omitempty"`
	Reps      int     `json:"reps,omitempty"`
	Weight    float64 `json:"weight,omitempty"`
	RPE       float64 `json:"rpe,omitempty"`
	TimeMin   int     `json:"time,omitempty"`
	Intensity float64 `json:"intensity,omitempty"`
	HeartRate int     `json:"heartRate,omitempty"`
}

// RoutineTarget — цель на упражнение внутри фазы цикла
type RoutineTarget struct {
	Sets int    `json:"sets"`
	Reps string `json:"reps"` // диапазон, например "8-12" или "6~8"
}

// RoutineItem — позиция плана тренировок
type RoutineItem struct {
	Exercise string        `json:"exercise"`
	W12      RoutineTarget `json:"w12"` // недели 1-2, объёмная фаза
	W3       RoutineTarget `json:"w3"`  // неделя 3, интенсивная фаза
	Note     string        `json:"note,omitempty"`
}

// RoutineDict — имя плана -> упорядоченный список упражнений
type RoutineDict map[string][]RoutineItem

// HistoryRecord — последняя запись по упражнению
type HistoryRecord struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Sets   int     `json:"sets"`
}

// HistoryMap — упражнение -> последняя запись
type HistoryMap map[string]HistoryRecord

// WeeklyAerobic — агрегат аэробных минут за ISO-неделю, считается стором
type WeeklyAerobic struct {
	TotalMinutes int `json:"totalMinutes"`
}

// BodyDataLog — показатели тела за день. Талия/бёдра/хват семантически
// недельные, но стор это не проверяет.
type BodyDataLog struct {
	Weight    float64 `json:"weight"`
	Waist     float64 `json:"waist"`
	Hip       float64 `json:"hip"`
	GripL     float64 `json:"gripL"`
	GripR     float64 `json:"gripR"`
	BedTime   string  `json:"bedTime"`  // HH:MM
	WakeTime  string  `json:"wakeTime"` // HH:MM
	Mood      int     `json:"mood"`     // 0..5
	Menstrual bool    `json:"menstrual"`
	Poop      bool    `json:"poop"`
}

// LatestMetrics — последние ненулевые значения метрик тела
type LatestMetrics struct {
	Weight float64 `json:"weight"`
	Waist  float64 `json:"waist"`
	Hip    float64 `json:"hip"`
	GripL  float64 `json:"gripL"`
	GripR  float64 `json:"gripR"`
}

// AnalyticsPoint — точка агрегата по дате для аналитики
type AnalyticsPoint struct {
	Date     string  `json:"date"`
	Weight   float64 `json:"weight,omitempty"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
	BedTime  string  `json:"bedTime,omitempty"`
	WakeTime string  `json:"wakeTime,omitempty"`
}
