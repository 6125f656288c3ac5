package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCLIConfigOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		expected  map[string]any
		wantErr   string
	}{
		{
			name:      "single value",
			overrides: []string{"cs.dry_run=true"},
			expected:  map[string]any{"dry_run": "true"},
		},
		{
			name:      "value containing equals",
			overrides: []string{"cs.root=/a=b"},
			expected:  map[string]any{"root": "/a=b"},
		},
		{
			name:      "repeated key becomes a list",
			overrides: []string{"cs.suffixes=.class", "cs.suffixes=.jar", "cs.suffixes=.ctxt"},
			expected:  map[string]any{"suffixes": []any{".class", ".jar", ".ctxt"}},
		},
		{
			name:      "missing equals",
			overrides: []string{"cs.dry_run"},
			wantErr:   "invalid config override",
		},
		{
			name:      "wrong prefix",
			overrides: []string{"lw.dry_run=true"},
			wantErr:   "must start with 'cs.'",
		},
		{
			name:      "empty key",
			overrides: []string{"cs.=true"},
			wantErr:   "empty config key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseCLIConfigOverrides(tt.overrides)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplyCLIOverrides(t *testing.T) {
	t.Run("overrides replace config values", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ExcludeDirs = []string{"lib"}

		err := cfg.ApplyCLIOverrides([]string{
			"cs.suffixes=pyc",
			"cs.exclude_dirs=.git",
			"cs.dry_run=1",
			"cs.summary=never",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{".pyc"}, cfg.Suffixes)
		assert.Equal(t, []string{".git"}, cfg.ExcludeDirs)
		assert.True(t, cfg.DryRun)
		assert.Equal(t, SummaryNever, cfg.Summary)
	})

	t.Run("no overrides is a no-op", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyCLIOverrides(nil))
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid summary mode", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyCLIOverrides([]string{"cs.summary=loud"})
		require.Error(t, err)
		assert.Equal(t, SummaryAuto, cfg.Summary)
	})
}
