package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Environment overrides applied by ApplyEnv.
const (
	EnvLayout = "PLANNER_LAYOUT"
	EnvView   = "PLANNER_VIEW"
)

// LoadDotEnv sets an environment variable for every KEY=VALUE line of path (typically ".env").
// Blank lines and # comments are skipped; surrounding quotes are stripped. Variables that are
// already set in the process environment win. A missing file is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := parseEnvLine(sc.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// ApplyEnv returns p with PLANNER_LAYOUT and PLANNER_VIEW applied when they are set.
func ApplyEnv(p Prefs) Prefs {
	if v := os.Getenv(EnvLayout); v != "" {
		p.LayoutPath = v
	}
	if v := os.Getenv(EnvView); v != "" {
		p.ViewMode = v
	}
	return p.normalize()
}
