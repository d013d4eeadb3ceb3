// Package config loads the optional .tinycatrc.yaml session file that
// customizes the REPL's prompt, startup banner, and trace setting.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds the session-level settings read from .tinycatrc.yaml.
// Every field has a sensible zero value, so a missing or partial file
// never prevents startup.
type Config struct {
	Prompt string `yaml:"prompt"`
	Banner string `yaml:"banner"`
	Trace  bool   `yaml:"trace"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{Prompt: "> ", Banner: "Tinycat BASIC v1.1 READY\n"}
}

// Load reads and parses the YAML file at path. A missing file is not an
// error: it returns Default() unchanged. A present-but-malformed file
// is, since that is almost certainly a typo the user would want to
// know about rather than have silently ignored.
func Load(path string) (Config, error) {
	cfg, _, err := loadFile(path)
	return cfg, err
}

// LoadSession resolves the session config the way the REPL starts up:
// .tinycatrc.yaml in the current directory first, then in the user's
// home directory. Neither file being present is not an error. A
// malformed file, wherever found, is reported to errOut and Default()
// is used instead of aborting startup.
func LoadSession(errOut io.Writer) Config {
	candidates := []string{".tinycatrc.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".tinycatrc.yaml"))
	}

	for _, path := range candidates {
		cfg, found, err := loadFile(path)
		if err != nil {
			fmt.Fprintf(errOut, "tinycat: %s: %v (using defaults)\n", path, err)
			return Default()
		}
		if found {
			return cfg
		}
	}
	return Default()
}

// loadFile reads and parses path, reporting whether the file existed so
// callers can distinguish "absent, try the next candidate" from "parsed
// successfully."
func loadFile(path string) (cfg Config, found bool, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, false, nil
		}
		return cfg, false, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, true, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	return cfg, true, nil
}
