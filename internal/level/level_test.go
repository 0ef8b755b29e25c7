package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForXP(t *testing.T) {
	tests := []struct {
		name      string
		xp        int
		wantLevel int
		wantName  string
	}{
		{"zero", 0, 1, "Med Student"},
		{"just below first threshold", 99, 1, "Med Student"},
		{"exactly first threshold", 100, 2, "Intern"},
		{"mid ladder", 250, 3, "Junior Resident"},
		{"top threshold", 10000, 11, "Medical Legend"},
		{"beyond top", 25000, 11, "Medical Legend"},
		{"negative clamps to zero", -5, 1, "Med Student"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ForXP(tt.xp)
			assert.Equal(t, tt.wantLevel, info.Level)
			assert.Equal(t, tt.wantName, info.Name)
		})
	}
}

func TestForXPProgress(t *testing.T) {
	// Level 1 spans 0-100: 50 XP is halfway.
	info := ForXP(50)
	assert.Equal(t, 1, info.Level)
	assert.InDelta(t, 50.0, info.ProgressPercent, 0.001)
	assert.Equal(t, 0, info.CurrentLevelXP)
	assert.Equal(t, 100, info.NextLevelXP)

	// Level 2 spans 100-250: 175 XP is halfway.
	info = ForXP(175)
	assert.Equal(t, 2, info.Level)
	assert.InDelta(t, 50.0, info.ProgressPercent, 0.001)
}

func TestForXPMaxLevel(t *testing.T) {
	info := ForXP(10000)
	assert.Equal(t, 11, info.Level)
	assert.Equal(t, 100.0, info.ProgressPercent)
	assert.Equal(t, info.CurrentLevelXP, info.NextLevelXP)
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 5, LevelForXP(1000))
	assert.Equal(t, 11, LevelForXP(99999))
}
