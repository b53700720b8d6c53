package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const apiURLEnv = "ZENPOD_API_URL"

// Config carries everything the client needs: where the API lives, where
// local state goes, and how narration should sound.
type Config struct {
	APIURL  string `yaml:"api_url"`
	DataDir string `yaml:"data_dir"`

	Speech SpeechConfig `yaml:"speech"`
	Log    LogConfig    `yaml:"log"`
}

type SpeechConfig struct {
	// EnginePath is the speech engine plugin binary. Empty disables narration.
	EnginePath string  `yaml:"engine_path"`
	Lang       string  `yaml:"lang"`
	Rate       float64 `yaml:"rate"`
	Pitch      float64 `yaml:"pitch"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads the YAML config at path (missing file is fine), applies
// defaults, then lets the environment override the API base URL.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if env := strings.TrimSpace(os.Getenv(apiURLEnv)); env != "" {
		cfg.APIURL = env
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.yaml")
}

func defaults() Config {
	dataDir := defaultDataDir()
	return Config{
		APIURL:  "http://localhost:8000",
		DataDir: dataDir,
		Speech: SpeechConfig{
			Lang:  "zh-CN",
			Rate:  0.85,
			Pitch: 0.9,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dataDir, "zenpod.log"),
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zenpod"
	}
	return filepath.Join(home, ".zenpod")
}

func (c Config) validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("api_url is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Speech.Rate <= 0 || c.Speech.Rate > 2 {
		return fmt.Errorf("speech.rate must be in (0, 2], got %v", c.Speech.Rate)
	}
	if c.Speech.Pitch <= 0 || c.Speech.Pitch > 2 {
		return fmt.Errorf("speech.pitch must be in (0, 2], got %v", c.Speech.Pitch)
	}
	return nil
}

// DBPath is the sqlite catalog cache location inside the data dir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "catalog.db")
}

// TokenPath is the persisted user-token location inside the data dir.
func (c Config) TokenPath() string {
	return filepath.Join(c.DataDir, "token.json")
}
