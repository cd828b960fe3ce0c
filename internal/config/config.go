package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config содержит конфигурацию клиента
type Config struct {
	Env      string // local | staging | prod
	LogLevel string

	// Backend
	// Пустой APIBaseURL включает placeholder-режим (standalone/demo).
	APIBaseURL string

	// Rate Limiting (клиентский лимит на dispatch-запросы)
	RateLimitRPS   int
	RateLimitBurst int

	// Nutrition targets
	CaloriesTarget int
	ProteinTarget  int
	CarbsTarget    int
	FatTarget      int
	WaterTargetMl  int

	// Workout
	AerobicWeeklyGoalMin int

	// Client state / output
	SettingsPath string
	ReportsDir   string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = "local"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}

	apiBase := strings.TrimSpace(os.Getenv("API_BASE_URL"))

	settingsPath := strings.TrimSpace(os.Getenv("SETTINGS_PATH"))
	if settingsPath == "" {
		settingsPath = defaultSettingsPath()
	}

	reportsDir := strings.TrimSpace(os.Getenv("REPORTS_DIR"))
	if reportsDir == "" {
		reportsDir = "reports"
	}

	return &Config{
		Env:        env,
		LogLevel:   logLevel,
		APIBaseURL: apiBase,

		RateLimitRPS:   envInt("RATE_LIMIT_RPS", 0),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 0),

		CaloriesTarget: envInt("CALORIES_TARGET", 2500),
		ProteinTarget:  envInt("PROTEIN_TARGET", 180),
		CarbsTarget:    envInt("CARBS_TARGET", 250),
		FatTarget:      envInt("FAT_TARGET", 70),
		WaterTargetMl:  envInt("WATER_TARGET_ML", 3000),

		AerobicWeeklyGoalMin: envInt("AEROBIC_WEEKLY_GOAL_MIN", 150),

		SettingsPath: settingsPath,
		ReportsDir:   reportsDir,
	}
}

// IsPlaceholder сообщает, работает ли клиент без живого бэкенда
func (c *Config) IsPlaceholder() bool {
	return c.APIBaseURL == ""
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fittrack-settings.json"
	}
	return filepath.Join(dir, "fittrack", "settings.json")
}

func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
