package component

import "testing"

func TestHealth(t *testing.T) {
	tests := []struct {
		name      string
		run       func(h *Health)
		wantHP    float64
		wantAlive bool
	}{
		{"fresh", func(h *Health) {}, 100, true},
		{"damage", func(h *Health) { h.ApplyDamage(30) }, 70, true},
		{"overkill_clamps", func(h *Health) { h.ApplyDamage(250) }, 0, false},
		{"ignores_negative_damage", func(h *Health) { h.ApplyDamage(-5) }, 100, true},
		{"heal_caps_at_max", func(h *Health) { h.ApplyDamage(10); h.Heal(50) }, 100, true},
		{"no_heal_when_dead", func(h *Health) { h.ApplyDamage(100); h.Heal(50) }, 0, false},
		{"revive", func(h *Health) { h.ApplyDamage(100); h.Revive() }, 100, true},
		{"revive_alive_is_noop", func(h *Health) { h.ApplyDamage(40); h.Revive() }, 60, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealth(100)
			tc.run(h)
			if h.CurrentHealth() != tc.wantHP {
				t.Fatalf("expected hp %v, got %v", tc.wantHP, h.CurrentHealth())
			}
			if h.IsAlive() != tc.wantAlive {
				t.Fatalf("expected alive=%v, got %v", tc.wantAlive, h.IsAlive())
			}
		})
	}
}

func TestHealthCallbacks(t *testing.T) {
	h := NewHealth(10)
	var deaths, revives int
	h.OnDeath = func(*Health) { deaths++ }
	h.OnRevive = func(*Health) { revives++ }

	h.ApplyDamage(10)
	h.ApplyDamage(10)
	h.Revive()
	h.Revive()

	if deaths != 1 || revives != 1 {
		t.Fatalf("expected one death and one revive, got %d/%d", deaths, revives)
	}
}

func TestActivationCountsChanges(t *testing.T) {
	a := &Activation{Name: "weapon"}
	for _, v := range []bool{true, true, false, false, true} {
		a.SetActive(v)
	}
	if !a.Active || a.Changes != 3 {
		t.Fatalf("expected active with 3 changes, got active=%v changes=%d", a.Active, a.Changes)
	}
}
