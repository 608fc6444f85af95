package levels

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedArena(t *testing.T) {
	lvl, err := LoadLevel("arena")
	if err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}
	if lvl.Name != "arena" {
		t.Fatalf("expected arena, got %q", lvl.Name)
	}
	if len(lvl.Walls) == 0 || len(lvl.Platforms) == 0 || len(lvl.Hazards) == 0 {
		t.Fatalf("expected walls, platforms and hazards, got %+v", lvl)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"minimal", `{"name":"m","floor":1}`, ""},
		{"bad_json", `{"name":`, "unmarshal level"},
		{"empty_wall", `{"name":"w","walls":[{"min_x":1,"min_z":0,"max_x":1,"max_z":2}]}`, "wall 0"},
		{"empty_hazard", `{"name":"h","hazards":[{"min_x":0,"min_z":3,"max_x":1,"max_z":2}]}`, "hazard 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tc.doc))
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCleanLevelName(t *testing.T) {
	cases := map[string]string{
		"":                  "arena.json",
		"arena":             "arena.json",
		"arena.json":        "arena.json",
		"levels/arena.json": "arena.json",
		" pit ":             "pit.json",
	}
	for in, want := range cases {
		if got := cleanLevelName(in); got != want {
			t.Fatalf("cleanLevelName(%q): expected %q, got %q", in, want, got)
		}
	}
}
