package config

import (
	"fmt"
	"strings"
)

// overridePrefix namespaces keys given with --config.
const overridePrefix = "cs."

// parseCLIConfigOverrides parses --config=cs.key=value format.
// Returns a map suitable for apply().
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)
	keyCount := make(map[string]int)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: cs.key=value (note: use = not space)", override)
		}

		fullKey := strings.TrimSpace(parts[0])
		value := parts[1]

		if !strings.HasPrefix(fullKey, overridePrefix) {
			return nil, fmt.Errorf("config override key must start with '%s': %q", overridePrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, overridePrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}

		// A key given more than once becomes a list.
		keyCount[key]++
		switch keyCount[key] {
		case 1:
			result[key] = value
		case 2:
			result[key] = []any{result[key], value}
		default:
			result[key] = append(result[key].([]any), value)
		}
	}

	return result, nil
}

// ApplyCLIOverrides applies --config overrides on top of cfg.
func (cfg *AppConfig) ApplyCLIOverrides(overrides []string) error {
	if len(overrides) == 0 {
		return nil
	}
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	if summary, ok := data["summary"].(string); ok && NormalizeSummary(summary) == "" {
		return fmt.Errorf("invalid summary mode %q (expected auto, always or never)", summary)
	}
	cfg.apply(data)
	return nil
}
