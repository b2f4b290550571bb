package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-grid-defense/pkg/gridmap"
)

func TestFractionsAreClamped(t *testing.T) {
	assert.Equal(t, 0.5, (&Health{Value: 10, Max: 20}).Fraction())
	assert.Equal(t, 0.0, (&Health{Value: -5, Max: 20}).Fraction())
	assert.Equal(t, 0.0, (&Health{}).Fraction())

	assert.Equal(t, 0.0, (&Combat{Cooldown: 1}).CooldownFraction())
	assert.Equal(t, 1.0, (&Combat{Cooldown: 1, FireCooldown: 3}).CooldownFraction())

	assert.Equal(t, 1.0, (&Upgrade{Remaining: -0.5, Duration: 2}).Fraction())
	assert.Equal(t, 0.25, (&Upgrade{Remaining: 1.5, Duration: 2}).Fraction())
}

func TestPathCursor(t *testing.T) {
	p := &Path{Cells: []gridmap.Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}}}
	cur, ok := p.Current()
	assert.True(t, ok)
	assert.Equal(t, gridmap.Point{Row: 1, Col: 1}, cur)
	next, ok := p.Next()
	assert.True(t, ok)
	assert.Equal(t, gridmap.Point{Row: 1, Col: 2}, next)

	p.CurrentIndex = 1
	_, ok = p.Next()
	assert.False(t, ok)
	p.CurrentIndex = 5
	_, ok = p.Current()
	assert.False(t, ok)
}
