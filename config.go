package gfql

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .gfql.yaml configuration file.
// Zero values mean "use the default"; command-line flags override the file.
type Config struct {
	Log       LogConfig       `yaml:"log,omitempty"`
	Translate TranslateConfig `yaml:"translate,omitempty"`
	Check     CheckConfig     `yaml:"check,omitempty"`
	Report    ReportConfig    `yaml:"report,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `yaml:"level,omitempty"`

	// Development selects zap's development encoder (console, colour levels).
	Development bool `yaml:"development,omitempty"`
}

// TranslateConfig holds settings for the translate command.
type TranslateConfig struct {
	// Format is the output format: text, json or yaml.
	Format string `yaml:"format,omitempty"`

	// Extensions are the file extensions picked up when walking directories.
	Extensions []string `yaml:"extensions,omitempty"`

	// Concurrency bounds the number of files translated at once.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// CheckConfig holds settings for the check command.
type CheckConfig struct {
	// Format is the output format: dots, verbose or json.
	Format string `yaml:"format,omitempty"`

	FailFast bool `yaml:"fail_fast,omitempty"`

	// Filter is a regular expression matched against scenario keys and names.
	Filter string `yaml:"filter,omitempty"`

	// Where is a boolean predicate over scenario fields.
	Where string `yaml:"where,omitempty"`

	Concurrency int `yaml:"concurrency,omitempty"`
}

// ReportConfig holds settings for the report and backlog commands.
type ReportConfig struct {
	TopAreas     int `yaml:"top_areas,omitempty"`
	TopTags      int `yaml:"top_tags,omitempty"`
	BacklogLimit int `yaml:"backlog_limit,omitempty"`

	// SummaryPath is a file the report is appended to, in addition to stdout.
	SummaryPath string `yaml:"summary_path,omitempty"`
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".gfql.yaml", ".gfql.yml", "gfql.yaml", "gfql.yml"}

// LoadConfig finds and loads the nearest .gfql.yaml walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Extensions returns the configured translate extensions, defaulting to .cypher.
func (c *Config) Extensions() []string {
	if len(c.Translate.Extensions) == 0 {
		return []string{"cypher"}
	}

	return c.Translate.Extensions
}
