package bodymetrics

import (
	"time"

	"github.com/fdg312/fit-hub-client/internal/backend"
)

// measureWeekday is the designated day for the weekly tape and grip
// measurements (waist, hip, gripL, gripR). Advisory only: the store
// accepts those fields on any date.
const measureWeekday = time.Saturday

// Prefill returns the form values for a date. A date with a record shows
// the record; a date without one carries the latest known metrics forward
// as a placeholder instead of zeros, with times, mood and flags reset.
func Prefill(record *backend.BodyDataLog, latest backend.LatestMetrics) backend.BodyDataLog {
	if record != nil {
		return *record
	}
	return backend.BodyDataLog{
		Weight: latest.Weight,
		Waist:  latest.Waist,
		Hip:    latest.Hip,
		GripL:  latest.GripL,
		GripR:  latest.GripR,
	}
}

// IsMeasureDay reports whether the date is the designated weekly
// measurement day.
func IsMeasureDay(date string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return d.Weekday() == measureWeekday
}

// ClockNow returns the device wall-clock time as HH:MM, for the record-now
// bed/wake shortcuts.
func ClockNow() string {
	return time.Now().Format("15:04")
}

// SleepMinutes derives the sleep duration from bed and wake times,
// handling the usual crossing of midnight. Returns 0 when either time is
// missing or malformed.
func SleepMinutes(bedTime, wakeTime string) int {
	bed, err := time.Parse("15:04", bedTime)
	if err != nil {
		return 0
	}
	wake, err := time.Parse("15:04", wakeTime)
	if err != nil {
		return 0
	}

	minutes := int(wake.Sub(bed).Minutes())
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return minutes
}
