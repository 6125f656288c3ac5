// Package config loads classsweep configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lejos-tools/classsweep/internal/utils"
	"gopkg.in/yaml.v3"
)

// Summary modes.
const (
	SummaryAuto   = "auto"
	SummaryAlways = "always"
	SummaryNever  = "never"
)

// DefaultSuffix is the compiled bytecode suffix swept by default.
const DefaultSuffix = ".class"

const appName = "classsweep"

// AppConfig defines the classsweep configuration options.
type AppConfig struct {
	Root        string   // Directory to sweep; empty means the executable's directory
	Suffixes    []string // File name suffixes to delete
	ExcludeDirs []string // Directory base names that are never descended
	DryRun      bool
	Summary     string // Summary mode: "auto", "always" or "never"
	DebugLog    string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Suffixes:    []string{DefaultSuffix},
		ExcludeDirs: []string{},
		DryRun:      false,
		Summary:     SummaryAuto,
	}
}

// normalizeList converts a YAML string or list into trimmed, non-empty strings.
func normalizeList(value any) []string {
	if value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return []string{}
		}
		return []string{text}
	case []any:
		items := []string{}
		for _, item := range v {
			if item == nil {
				continue
			}
			text := strings.TrimSpace(fmt.Sprintf("%v", item))
			if text != "" {
				items = append(items, text)
			}
		}
		return items
	}
	return []string{}
}

// NormalizeSuffixes trims suffixes, adds a missing leading dot and drops
// duplicates while keeping the first occurrence order.
func NormalizeSuffixes(suffixes []string) []string {
	seen := make(map[string]struct{}, len(suffixes))
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// NormalizeSummary returns the canonical summary mode or "" if unknown.
func NormalizeSummary(mode string) string {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case SummaryAuto, SummaryAlways, SummaryNever:
		return mode
	default:
		return ""
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

// apply merges parsed YAML data into cfg. Unknown keys and invalid values
// are ignored.
func (cfg *AppConfig) apply(data map[string]any) {
	if root, ok := data["root"].(string); ok {
		root = strings.TrimSpace(root)
		if root != "" {
			cfg.Root = root
		}
	}

	if _, ok := data["suffixes"]; ok {
		if suffixes := NormalizeSuffixes(normalizeList(data["suffixes"])); len(suffixes) > 0 {
			cfg.Suffixes = suffixes
		}
	}

	if _, ok := data["exclude_dirs"]; ok {
		cfg.ExcludeDirs = normalizeList(data["exclude_dirs"])
	}

	cfg.DryRun = coerceBool(data["dry_run"], cfg.DryRun)

	if summary, ok := data["summary"].(string); ok {
		if normalized := NormalizeSummary(summary); normalized != "" {
			cfg.Summary = normalized
		}
	}

	if debugLog, ok := data["debug_log"].(string); ok {
		debugLog = strings.TrimSpace(debugLog)
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	return filepath.Clean(filepath.Join(getConfigDir(), appName))
}

// LoadConfig reads the configuration from configPath, or from the default
// locations when configPath is empty. It always returns a usable config; a
// non-nil error means the file was missing or unreadable and defaults apply.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	explicit := configPath != ""

	if explicit {
		expanded, err := utils.ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{absPath}
	} else {
		base := ConfigDir()
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	for _, path := range paths {
		// #nosec G304 -- the path is chosen by the user running the tool
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && !explicit {
				continue
			}
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}

		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}
