package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const defaultCycleWeek = 1

// Settings — клиентские настройки, переживающие перезапуск. Сейчас это
// только неделя тренировочного цикла.
type Settings struct {
	CycleWeek int `json:"cycle_week"` // 1..3
}

// Store загружает и сохраняет настройки в JSON-файле
type Store struct {
	path     string
	settings Settings
}

// Load reads the settings file, falling back to defaults when the file is
// missing or unreadable. A corrupt file never blocks startup.
func Load(path string) *Store {
	s := &Store{
		path:     path,
		settings: Settings{CycleWeek: defaultCycleWeek},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var loaded Settings
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return s
	}
	if loaded.CycleWeek >= 1 && loaded.CycleWeek <= 3 {
		s.settings.CycleWeek = loaded.CycleWeek
	}
	return s
}

// CycleWeek returns the persisted cycle week.
func (s *Store) CycleWeek() int {
	return s.settings.CycleWeek
}

// SetCycleWeek persists the new cycle week immediately.
func (s *Store) SetCycleWeek(week int) error {
	if week < 1 || week > 3 {
		return fmt.Errorf("cycle week must be 1..3, got %d", week)
	}
	s.settings.CycleWeek = week
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
