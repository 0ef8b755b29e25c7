package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/rewards"
)

// Manager applies power-up purchases, consumption, and activation to a
// profile. Notifier is nil-tolerant.
type Manager struct {
	Profile  *profile.UserProfile
	Ledger   *rewards.Ledger
	Notifier notify.Notifier

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Purchase buys one unit of the power-up. Fails (with a notification, no
// state change) when the coin balance doesn't cover the price.
func (m *Manager) Purchase(ctx context.Context, id profile.PowerUpID) bool {
	pu := Lookup(id)
	if pu == nil {
		return false
	}
	if !m.Ledger.SpendCoins(ctx, pu.Price) {
		m.notify(notify.KindError, fmt.Sprintf("Not enough StethoCoins for %s (%d needed)", pu.Name, pu.Price))
		return false
	}
	m.Profile.Inventory[id]++
	m.notify(notify.KindInfo, fmt.Sprintf("Purchased %s", pu.Name))
	return true
}

// Consume removes one unit from the inventory. The count never goes
// negative: consuming at zero is a no-op.
func (m *Manager) Consume(id profile.PowerUpID) bool {
	if m.Profile.Inventory[id] <= 0 {
		return false
	}
	m.Profile.Inventory[id]--
	return true
}

// Activate triggers a timed boost: consumes one unit and sets the expiry to
// now + the boost duration. No-op (with a notification) when the boost is
// already active or none is owned.
func (m *Manager) Activate(ctx context.Context, id profile.PowerUpID) bool {
	pu := Lookup(id)
	if pu == nil || pu.Duration == 0 {
		return false
	}

	now := m.now()
	var expiry *time.Time
	switch id {
	case DoubleXP:
		expiry = &m.Profile.DoubleXPUntil
	case DoubleCoins:
		expiry = &m.Profile.DoubleCoinsUntil
	default:
		return false
	}

	if expiry.After(now) {
		m.notify(notify.KindInfo, fmt.Sprintf("%s is already active", pu.Name))
		return false
	}
	if !m.Consume(id) {
		m.notify(notify.KindError, fmt.Sprintf("No %s owned", pu.Name))
		return false
	}

	*expiry = now.Add(pu.Duration)
	m.notify(notify.KindInfo, fmt.Sprintf("%s active for %s", pu.Name, pu.Duration))
	return true
}

// ActivateFocusBoost consumes a focus boost and adds the pack to the XP
// boost membership set. No-op when the pack is already boosted or none is
// owned.
func (m *Manager) ActivateFocusBoost(packID string) bool {
	if m.Profile.PackBoosted(packID) {
		m.notify(notify.KindInfo, "This pack is already boosted")
		return false
	}
	if !m.Consume(FocusBoost) {
		m.notify(notify.KindError, "No Focus Boost owned")
		return false
	}
	m.Profile.BoostedPackIDs[packID] = true
	m.notify(notify.KindInfo, "Focus Boost active: this pack now grants double XP")
	return true
}

func (m *Manager) notify(kind notify.Kind, msg string) {
	if m.Notifier != nil {
		m.Notifier.Notify(kind, msg)
	}
}
