// Package config loads the optional .loxirc.yaml that customizes the
// REPL's prompt, value-echo, and color behavior. Absence is not an
// error: every field has the spec-mandated default (spec §6).
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ColorMode controls when diagnostic/REPL output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the loaded (or defaulted) REPL/diagnostic configuration.
type Config struct {
	Prompt     string    `yaml:"prompt"`
	EchoValues bool      `yaml:"echo_values"`
	Color      ColorMode `yaml:"color"`
}

// Default returns the spec-mandated configuration: prompt "> ", values
// echoed, color auto-detected from the terminal.
func Default() Config {
	return Config{Prompt: "> ", EchoValues: true, Color: ColorAuto}
}

// Load reads .loxirc.yaml from dir, falling back to $HOME, falling
// back to Default() if neither exists. A malformed file that does
// exist is still an error - silence is only for a missing file.
func Load(dir string) (Config, error) {
	cfg := Default()

	path, ok := findConfigFile(dir)
	if !ok {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findConfigFile(dir string) (string, bool) {
	candidates := []string{}
	if dir != "" {
		candidates = append(candidates, filepath.Join(dir, ".loxirc.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".loxirc.yaml"))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}
