package component

// Health is a reusable health component for any entity that can take damage.
type Health struct {
	Max     float64
	Current float64
	Dead    bool

	OnDeath  func(h *Health)
	OnRevive func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// CurrentHealth returns the current health value.
func (h *Health) CurrentHealth() float64 {
	if h == nil {
		return 0
	}
	return h.Current
}

// ApplyDamage applies damage. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount float64) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Revive brings a dead entity back at full health.
func (h *Health) Revive() bool {
	if h == nil || !h.Dead {
		return false
	}
	h.Dead = false
	h.Current = h.Max
	if h.OnRevive != nil {
		h.OnRevive(h)
	}
	return true
}

var HealthComponent = NewComponent[Health]()
