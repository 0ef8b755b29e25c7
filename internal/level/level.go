// Package level maps cumulative XP to a level, rank name, and progress
// toward the next level. Pure functions, no state.
package level

// Thresholds is the ascending XP-threshold table. Thresholds[0] is always 0;
// index i is the XP required to reach level i+1 (levels are 1-based for
// display).
var Thresholds = []int{0, 100, 250, 500, 1000, 1750, 2750, 4000, 5500, 7500, 10000}

// Names are the rank names matching Thresholds by index.
var Names = []string{
	"Med Student",
	"Intern",
	"Junior Resident",
	"Resident",
	"Senior Resident",
	"Chief Resident",
	"Fellow",
	"Attending",
	"Consultant",
	"Department Head",
	"Medical Legend",
}

// Info describes a profile's position on the level ladder.
type Info struct {
	Level           int     // 1-based
	Name            string
	ProgressPercent float64 // 0-100 within the current level
	CurrentLevelXP  int     // threshold of the current level
	NextLevelXP     int     // threshold of the next level; equals CurrentLevelXP at max level
}

// ForXP computes level info for any xp >= 0 against the default table.
func ForXP(xp int) Info {
	return ForXPWith(xp, Thresholds, Names)
}

// ForXPWith computes level info against a custom ascending threshold table.
// thresholds[0] must be 0, so every xp >= 0 lands on some level.
func ForXPWith(xp int, thresholds []int, names []string) Info {
	if xp < 0 {
		xp = 0
	}

	idx := 0
	for i, t := range thresholds {
		if xp >= t {
			idx = i
		}
	}

	info := Info{
		Level:          idx + 1,
		CurrentLevelXP: thresholds[idx],
	}
	if idx < len(names) {
		info.Name = names[idx]
	}

	if idx == len(thresholds)-1 {
		info.ProgressPercent = 100
		info.NextLevelXP = thresholds[idx]
		return info
	}

	info.NextLevelXP = thresholds[idx+1]
	span := info.NextLevelXP - info.CurrentLevelXP
	info.ProgressPercent = float64(xp-info.CurrentLevelXP) / float64(span) * 100
	return info
}

// LevelForXP returns just the 1-based level for xp against the default table.
func LevelForXP(xp int) int {
	return ForXP(xp).Level
}
