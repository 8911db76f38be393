package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// memBackend is an in-memory ConfigBackend for testing loadWith.
type memBackend struct {
	strings map[string]string
	ints    map[string]int
}

func (m *memBackend) GetString(key string) (string, bool, error) {
	v, ok := m.strings[key]
	return v, ok, nil
}

func (m *memBackend) GetInt(key string) (int, bool, error) {
	v, ok := m.ints[key]
	return v, ok, nil
}

func (m *memBackend) SetString(key, val string) error {
	m.strings[key] = val
	return nil
}

func (m *memBackend) SetInt(key string, val int) error {
	m.ints[key] = val
	return nil
}

func (m *memBackend) Delete(key string) error {
	delete(m.strings, key)
	delete(m.ints, key)
	return nil
}

func emptyBackend() *memBackend {
	return &memBackend{strings: map[string]string{}, ints: map[string]int{}}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range specs {
		t.Setenv(s.env, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadWith(emptyBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DataDir == "" {
		t.Error("Storage.DataDir is empty, want XDG default")
	}
	if cfg.Output.Language != "english" {
		t.Errorf("Output.Language = %q, want %q", cfg.Output.Language, "english")
	}
	if cfg.Tracker.UpcomingDays != 7 {
		t.Errorf("Tracker.UpcomingDays = %d, want 7", cfg.Tracker.UpcomingDays)
	}
	if cfg.Applicant.Name != "" {
		t.Errorf("Applicant.Name = %q, want empty", cfg.Applicant.Name)
	}
}

func TestBackendOverridesDefaults(t *testing.T) {
	clearEnv(t)

	b := emptyBackend()
	b.strings["storage.data_dir"] = "/tmp/adhikar-test"
	b.strings["applicant.name"] = "Asha Rao"
	b.ints["tracker.upcoming_days"] = 14

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DataDir != "/tmp/adhikar-test" {
		t.Errorf("Storage.DataDir = %q, want %q", cfg.Storage.DataDir, "/tmp/adhikar-test")
	}
	if cfg.Applicant.Name != "Asha Rao" {
		t.Errorf("Applicant.Name = %q, want %q", cfg.Applicant.Name, "Asha Rao")
	}
	if cfg.Tracker.UpcomingDays != 14 {
		t.Errorf("Tracker.UpcomingDays = %d, want 14", cfg.Tracker.UpcomingDays)
	}
}

func TestEnvOverridesBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADHIKAR_OUTPUT_LANGUAGE", "hindi")
	t.Setenv("ADHIKAR_TRACKER_UPCOMING_DAYS", "3")

	b := emptyBackend()
	b.strings["output.language"] = "bilingual"
	b.ints["tracker.upcoming_days"] = 14

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output.Language != "hindi" {
		t.Errorf("Output.Language = %q, want %q", cfg.Output.Language, "hindi")
	}
	if cfg.Tracker.UpcomingDays != 3 {
		t.Errorf("Tracker.UpcomingDays = %d, want 3", cfg.Tracker.UpcomingDays)
	}
}

func TestEnvBadIntegerKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADHIKAR_TRACKER_UPCOMING_DAYS", "soon")

	cfg, err := loadWith(emptyBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Tracker.UpcomingDays != 7 {
		t.Errorf("Tracker.UpcomingDays = %d, want default 7", cfg.Tracker.UpcomingDays)
	}
}

func TestSetKeyRoundTrip(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SetKey("applicant.name", "Ravi Kumar"); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	if err := SetKey("tracker.upcoming_days", "10"); err != nil {
		t.Fatalf("SetKey: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Applicant.Name != "Ravi Kumar" {
		t.Errorf("Applicant.Name = %q, want %q", cfg.Applicant.Name, "Ravi Kumar")
	}
	if cfg.Tracker.UpcomingDays != 10 {
		t.Errorf("Tracker.UpcomingDays = %d, want 10", cfg.Tracker.UpcomingDays)
	}
}

func TestSetKeyUnknown(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SetKey("nonsense.key", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestSetKeyInvalidInteger(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SetKey("tracker.upcoming_days", "soon"); err == nil {
		t.Fatal("expected error for invalid integer")
	}
}

func TestShowAllCoversEveryKey(t *testing.T) {
	clearEnv(t)

	cfg, err := loadWith(emptyBackend())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	infos := ShowAll(cfg)
	if len(infos) != len(specs) {
		t.Fatalf("ShowAll returned %d keys, want %d", len(infos), len(specs))
	}

	valid := ValidKeys()
	for i, info := range infos {
		if info.Key != valid[i] {
			t.Errorf("key %d = %q, want %q", i, info.Key, valid[i])
		}
		if info.EnvVar == "" {
			t.Errorf("key %q has no env var", info.Key)
		}
	}
}

func TestFileBackendIntCoercion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw, _ := json.Marshal(map[string]any{
		"tracker.upcoming_days": "21",
		"output.language":       "hindi",
	})
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	b := &fileBackend{path: path, data: make(map[string]any)}
	b.load()

	i, ok, err := b.GetInt("tracker.upcoming_days")
	if err != nil || !ok {
		t.Fatalf("GetInt: ok=%v err=%v", ok, err)
	}
	if i != 21 {
		t.Errorf("GetInt = %d, want 21", i)
	}

	s, ok, err := b.GetString("output.language")
	if err != nil || !ok || s != "hindi" {
		t.Errorf("GetString = %q ok=%v err=%v, want hindi", s, ok, err)
	}
}

func TestFileBackendMissingFile(t *testing.T) {
	b := &fileBackend{path: filepath.Join(t.TempDir(), "absent.json"), data: make(map[string]any)}
	b.load()

	_, ok, err := b.GetString("storage.data_dir")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no value from missing file")
	}
}
