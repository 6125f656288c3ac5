package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetters(t *testing.T) {
	Set("1.2.3", "abc123", "2026-01-01", "ci")

	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "abc123", Commit())
	assert.Equal(t, "2026-01-01", Date())
	assert.Equal(t, "ci", BuiltBy())
}

func TestEnrichFillsBuilder(t *testing.T) {
	Set("dev", "none", "unknown", "unknown")
	Enrich()

	assert.NotEqual(t, "unknown", BuiltBy())
}

func TestEnrichPreservesExplicitValues(t *testing.T) {
	Set("v1.0.0", "deadbeef", "2026-06-01", "goreleaser")
	Enrich()

	assert.Equal(t, "deadbeef", Commit())
	assert.Equal(t, "goreleaser", BuiltBy())
}

func TestString(t *testing.T) {
	Set("v0.3.0", "cafe", "2026-10-01", "make")

	assert.Equal(t, "classsweep version v0.3.0\ncommit: cafe\nbuilt at: 2026-10-01\nbuilt by: make\n", String())
}
