package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ltlmeasure/measure/internal/measureerr"
)

// File is the optional on-disk configuration (P6): counter binary path,
// cache backend selection, and cache file path. CLI flags always override
// whatever a config file sets.
type File struct {
	CounterPath  string `yaml:"counter_path"`
	CacheBackend string `yaml:"cache_backend"` // "memory" or "sqlite"
	CachePath    string `yaml:"cache_path"`
}

// DefaultPath returns $XDG_CONFIG_HOME/measure/config.yaml, falling back to
// $HOME/.config/measure/config.yaml when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, ConfigDirName, ConfigFileName)
}

// Load reads and decodes the YAML config at path. A path that does not
// exist is not an error: it returns a zero-value File, since the config
// file is always optional (spec.md's ambient config, not a required
// input).
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, measureerr.Wrap(measureerr.IO, err, "reading config file %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, measureerr.Wrap(measureerr.Usage, err, "parsing config file %s", path)
	}
	return f, nil
}
