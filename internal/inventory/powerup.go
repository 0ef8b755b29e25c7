// Package inventory tracks owned power-ups: purchase, consumption, and
// time-bounded boost activation.
package inventory

import (
	"time"

	"github.com/arnavsud/stethoquest/internal/profile"
)

// Power-up ids. Stable strings: they key the profile's inventory map.
const (
	StreakShield profile.PowerUpID = "STREAK_SHIELD"
	DoubleXP     profile.PowerUpID = "DOUBLE_XP"
	DoubleCoins  profile.PowerUpID = "DOUBLE_COINS"
	FocusBoost   profile.PowerUpID = "FOCUS_BOOST"
)

// BoostDuration is how long a timed boost stays active once triggered.
const BoostDuration = 30 * time.Minute

// PowerUp describes one catalog entry. Duration is zero for plain
// consumables (the streak shield is consumed by the streak tracker, the
// focus boost permanently tags one pack).
type PowerUp struct {
	ID          profile.PowerUpID
	Name        string
	Description string
	Price       int
	Duration    time.Duration
}

// Catalog lists every purchasable power-up in display order.
var Catalog = []PowerUp{
	{StreakShield, "Streak Shield", "Survive one missed study day", 150, 0},
	{DoubleXP, "Double XP", "Double all XP for 30 minutes", 200, BoostDuration},
	{DoubleCoins, "Double Coins", "Double all coins for 30 minutes", 200, BoostDuration},
	{FocusBoost, "Focus Boost", "Permanently double XP from one pack", 300, 0},
}

// Lookup returns the catalog entry for the given id, or nil.
func Lookup(id profile.PowerUpID) *PowerUp {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
