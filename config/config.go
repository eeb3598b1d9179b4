// Package config loads .gocat.yaml, the CLI's default-options file.
// It follows the teacher's lockfile.Load pattern: absence of the file
// is not an error, callers get a Config holding the built-in defaults
// back.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = ".gocat.yaml"

// DefaultWrapWidth is applied when the config omits wrapwidth.
const DefaultWrapWidth = 79

// Config holds CLI default options, overridable by flags.
type Config struct {
	WrapWidth          int    `yaml:"wrapwidth"`
	Encoding           string `yaml:"encoding"`
	CheckForDuplicates bool   `yaml:"check_for_duplicates"`
	NoColor            bool   `yaml:"no_color"`

	path string
}

// Load reads a .gocat.yaml file from dir. It returns a Config with
// built-in defaults if the file doesn't exist.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	cfg := &Config{
		WrapWidth:          DefaultWrapWidth,
		CheckForDuplicates: true,
		path:               path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.path = path

	return cfg, nil
}

// Path returns the config file path Load read from, even when the
// file itself didn't exist.
func (c *Config) Path() string {
	return c.path
}
