// Package config loads toolkit configuration from a JSON file backend with
// environment variable overrides. Every key has a sensible default; a
// missing config file is not an error.
package config

type Config struct {
	Storage   StorageConfig
	Templates TemplatesConfig
	Applicant ApplicantConfig
	Output    OutputConfig
	Tracker   TrackerConfig
}

type StorageConfig struct {
	DataDir string
}

type TemplatesConfig struct {
	// Dir overrides the embedded request templates when set.
	Dir string
}

type ApplicantConfig struct {
	Name    string
	Address string
}

type OutputConfig struct {
	Language string
}

type TrackerConfig struct {
	UpcomingDays int
}

func defaults() Config {
	return Config{
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Output: OutputConfig{
			Language: "english",
		},
		Tracker: TrackerConfig{
			UpcomingDays: 7,
		},
	}
}

// Load reads configuration from the JSON file backend at
// $XDG_CONFIG_HOME/adhikar/config.json, then applies ADHIKAR_* environment
// variable overrides. Defaults fill everything else.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}
