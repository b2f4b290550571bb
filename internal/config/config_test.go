package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-defense/pkg/gridmap"
)

func TestDefaultGridConfig(t *testing.T) {
	cfg := DefaultGridConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 12, cfg.Rows)
	assert.Equal(t, 12, cfg.Cols)
	assert.Equal(t, []gridmap.Point{{Row: 4, Col: 0}, {Row: 5, Col: 0}}, cfg.Spawns)
	assert.Equal(t, []gridmap.Point{{Row: 4, Col: 11}, {Row: 5, Col: 11}}, cfg.Exits)

	grid := cfg.NewGrid()
	status, ok := grid.Status(4, 0)
	require.True(t, ok)
	assert.Equal(t, gridmap.StatusSpawn, status)
}

func TestGridConfigValidate(t *testing.T) {
	valid := DefaultGridConfig()
	tests := []struct {
		name   string
		mutate func(*GridConfig)
	}{
		{"zero rows", func(c *GridConfig) { c.Rows = 0 }},
		{"negative outline", func(c *GridConfig) { c.Outline = -1 }},
		{"outline eats interior", func(c *GridConfig) { c.Outline = 6 }},
		{"no spawns", func(c *GridConfig) { c.Spawns = nil }},
		{"no exits", func(c *GridConfig) { c.Exits = nil }},
		{"exit outside", func(c *GridConfig) { c.Exits = []gridmap.Point{{Row: 4, Col: 12}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.Spawns = append([]gridmap.Point(nil), valid.Spawns...)
			cfg.Exits = append([]gridmap.Point(nil), valid.Exits...)
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParsePathPolicy(t *testing.T) {
	for in, want := range map[string]PathPolicy{
		"":           PathRecomputeOnChange,
		"recompute":  PathRecomputeOnChange,
		"spawn-only": PathSpawnOnly,
		"spawn":      PathSpawnOnly,
	} {
		got, ok := ParsePathPolicy(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParsePathPolicy("teleport")
	assert.False(t, ok)

	assert.Equal(t, "recompute", PathRecomputeOnChange.String())
	assert.Equal(t, "spawn-only", PathSpawnOnly.String())
}
