package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/locomotion/locomotion"
	"gopkg.in/yaml.v3"
)

func TestLoadPlayerSpecDefaults(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec failed: %v", err)
	}
	if spec.Locomotion != locomotion.DefaultConfig() {
		t.Fatalf("expected default tuning %+v, got %+v", locomotion.DefaultConfig(), spec.Locomotion)
	}
	if spec.Collider.Radius != 0.5 || spec.Health != 100 {
		t.Fatalf("unexpected collider/health: %+v", spec)
	}
	if len(spec.DisableWhileDead) != 3 {
		t.Fatalf("expected 3 entities to disable while dead, got %v", spec.DisableWhileDead)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg locomotion.Config)
		wantErr bool
	}{
		{
			name: "no_overrides",
			check: func(t *testing.T, cfg locomotion.Config) {
				if cfg != locomotion.DefaultConfig() {
					t.Fatalf("expected defaults untouched, got %+v", cfg)
				}
			},
		},
		{
			name: "single_override",
			env:  map[string]string{"LOCOMOTION_SPRINT_SPEED": "30"},
			check: func(t *testing.T, cfg locomotion.Config) {
				want := locomotion.DefaultConfig()
				want.SprintSpeed = 30
				if cfg != want {
					t.Fatalf("expected %+v, got %+v", want, cfg)
				}
			},
		},
		{
			name: "negative_values_are_accepted",
			env:  map[string]string{"LOCOMOTION_GRAVITY": "-2.5", "LOCOMOTION_JUMP_LENIENCY_SECONDS": "0"},
			check: func(t *testing.T, cfg locomotion.Config) {
				if cfg.Gravity != -2.5 || cfg.JumpLeniencySeconds != 0 {
					t.Fatalf("expected raw overrides, got %+v", cfg)
				}
			},
		},
		{
			name:    "malformed",
			env:     map[string]string{"LOCOMOTION_BASE_SPEED": "fast"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg := locomotion.DefaultConfig()
			err := ApplyEnv(&cfg)
			if tc.wantErr {
				if err == nil || !strings.Contains(err.Error(), "prefabs: parse env") {
					t.Fatalf("expected wrapped env error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestPlayerSpecYAMLRoundTrip(t *testing.T) {
	doc := `
name: runner
locomotion:
  base_speed: 4
  sprint_speed: 2
collider:
  radius: 0.25
disable_while_dead: [gun]
`
	var spec PlayerSpec
	if err := yaml.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if spec.Locomotion.BaseSpeed != 4 || spec.Locomotion.SprintSpeed != 2 || spec.Locomotion.Gravity != 0 {
		t.Fatalf("unexpected locomotion config: %+v", spec.Locomotion)
	}
	if len(spec.DisableWhileDead) != 1 || spec.DisableWhileDead[0] != "gun" {
		t.Fatalf("unexpected disable list: %v", spec.DisableWhileDead)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("missing.yaml"); err == nil || !strings.Contains(err.Error(), "prefabs: load missing.yaml") {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"replay", "replay.tengo", "scripts/replay.tengo", "prefabs/scripts/replay.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q) failed: %v", name, err)
		}
		if !strings.Contains(string(data), "input := func") {
			t.Fatalf("LoadScript(%q) returned unexpected content", name)
		}
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(target, []byte("name: p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "player.yaml" {
			t.Fatalf("expected player.yaml event, got %q", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestWatcherReportsBurstAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "player.yaml")
	writes := []string{"", "name: partial\n", "name: final\n"}
	for _, body := range writes {
		if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case name := <-w.Events:
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != writes[len(writes)-1] {
			t.Fatalf("expected event after the final write, file holds %q", data)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("expected the burst to collapse into one event, got another for %q", name)
	case <-time.After(3 * defaultDebounce):
	}
}
