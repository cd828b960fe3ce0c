package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/fdg312/fit-hub-client/internal/analytics"
	"github.com/fdg312/fit-hub-client/internal/backend"
	"github.com/fdg312/fit-hub-client/internal/bodymetrics"
	"github.com/fdg312/fit-hub-client/internal/config"
	"github.com/fdg312/fit-hub-client/internal/daysync"
	"github.com/fdg312/fit-hub-client/internal/settings"
	"github.com/fdg312/fit-hub-client/internal/training"
)

func main() {
	cfg := config.Load()

	printStartupBanner(cfg)

	var be backend.Backend
	if cfg.IsPlaceholder() {
		log.Println("backend: API_BASE_URL not set, running in placeholder mode")
		be = backend.NewPlaceholder()
	} else {
		be = backend.NewClient(cfg.APIBaseURL, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	store := settings.Load(cfg.SettingsPath)
	engine := training.NewEngine(store, cfg.AerobicWeeklyGoalMin)

	date := daysync.Today()
	coord := daysync.New(be, date)

	ctx := context.Background()
	if err := coord.Resync(ctx); err != nil {
		log.Fatalf("FATAL initial sync for %s: %v", date, err)
	}

	printDaySummary(cfg, coord, engine)

	if format := reportFormat(); format != "" {
		reporter := analytics.NewReporter(be, cfg.ReportsDir)
		path, err := reporter.WriteReport(ctx, format)
		if err != nil {
			log.Fatalf("FATAL analytics report: %v", err)
		}
		log.Printf("analytics report written: %s", path)
	}
}

// printStartupBanner logs a one-time summary of the resolved configuration.
func printStartupBanner(cfg *config.Config) {
	log.Println("========== FitTrack Client ==========")
	log.Printf("  env              = %s", cfg.Env)
	log.Printf("  backend          = %s", describeBackend(cfg))
	log.Printf("  settings_path    = %s", cfg.SettingsPath)
	log.Printf("  reports_dir      = %s", cfg.ReportsDir)

	log.Println("---- targets ----")
	log.Printf("  calories         = %d", cfg.CaloriesTarget)
	log.Printf("  protein          = %d g", cfg.ProteinTarget)
	log.Printf("  carbs            = %d g", cfg.CarbsTarget)
	log.Printf("  fat              = %d g", cfg.FatTarget)
	log.Printf("  water            = %d ml", cfg.WaterTargetMl)
	log.Printf("  aerobic          = %d min/week", cfg.AerobicWeeklyGoalMin)

	log.Println("=====================================")
}

func printDaySummary(cfg *config.Config, coord *daysync.Coordinator, engine *training.Engine) {
	date := coord.Date()
	totals := coord.Totals()

	fmt.Printf("=== %s ===\n", date)
	if bodymetrics.IsMeasureDay(date) {
		fmt.Println("(weekly measure day)")
	}
	fmt.Println()

	fmt.Printf("Cycle: week %d (%s)\n", engine.Week(), engine.Phase())
	fmt.Printf("Aerobic: %d min this week, %d min remaining (%.0f%%)\n",
		coord.WeeklyAerobicMin(),
		engine.AerobicRemaining(coord.WeeklyAerobicMin()),
		engine.AerobicProgress(coord.WeeklyAerobicMin()))
	fmt.Println()

	fmt.Printf("Calories: %d / %d kcal\n", totals.Calories, cfg.CaloriesTarget)
	fmt.Printf("Protein:  %d / %d g\n", totals.Protein, cfg.ProteinTarget)
	fmt.Printf("Carbs:    %d / %d g\n", totals.Carbs, cfg.CarbsTarget)
	fmt.Printf("Fat:      %d / %d g\n", totals.Fat, cfg.FatTarget)
	fmt.Printf("Water:    %d / %d ml\n", coord.WaterTotalMl(), cfg.WaterTargetMl)
	fmt.Println()

	foods := coord.FoodLogs()
	fmt.Printf("Meals logged: %d\n", len(foods))
	for _, l := range foods {
		fmt.Printf("  %s  %-20s %.0f %s  (%d kcal)\n", l.Time, l.Name, l.Amount, l.Unit, l.Calories)
	}

	workouts := coord.WorkoutLogs()
	fmt.Printf("Workouts logged: %d\n", len(workouts))
	for _, w := range workouts {
		fmt.Printf("  [%s] %s\n", w.Type, w.Exercise)
	}
}

func describeBackend(cfg *config.Config) string {
	if cfg.IsPlaceholder() {
		return "placeholder (no API_BASE_URL)"
	}
	return cfg.APIBaseURL
}

// reportFormat reads the optional "report" subcommand: fittrack report [pdf|csv].
func reportFormat() string {
	args := os.Args[1:]
	if len(args) == 0 || args[0] != "report" {
		return ""
	}
	if len(args) > 1 {
		return strings.ToLower(args[1])
	}
	return analytics.FormatPDF
}
