package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinLevelsRegistered(t *testing.T) {
	infos := List()
	if len(infos) < 2 {
		t.Fatalf("expected at least 2 built-in levels, got %d", len(infos))
	}

	for _, id := range []string{"rooftop", "clockwork"} {
		if !Exists(id) {
			t.Errorf("built-in level %q not registered", id)
			continue
		}
		lvl, err := Load(id)
		if err != nil {
			t.Errorf("Load(%q) failed: %v", id, err)
			continue
		}
		if err := lvl.Validate(); err != nil {
			t.Errorf("built-in level %q invalid: %v", id, err)
		}
	}
}

func TestLoadReturnsFreshCopies(t *testing.T) {
	a, err := Load("rooftop")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load("rooftop")
	if err != nil {
		t.Fatal(err)
	}

	a.Coins = a.Coins[:0]
	if len(b.Coins) == 0 {
		t.Error("Load shares state between copies")
	}
}

func TestSolidAt(t *testing.T) {
	lvl := &Level{
		ID:   "t",
		Rows: []string{"....", "####"},
	}

	if lvl.SolidAt(0, 0) {
		t.Error("air cell reported solid")
	}
	if !lvl.SolidAt(2, 1) {
		t.Error("solid cell reported open")
	}
	if !lvl.SolidAt(-1, 0) || !lvl.SolidAt(4, 0) {
		t.Error("horizontal out-of-bounds should be solid walls")
	}
	if lvl.SolidAt(0, -1) || lvl.SolidAt(0, 2) {
		t.Error("vertical out-of-bounds should be open")
	}
}

func TestValidateRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "ragged rows",
			yaml: "id: t\nrows: ['...', '....']\nplayer: {x: 0, y: 0}\nexit: {x: 1, y: 0}\n",
			want: "width",
		},
		{
			name: "player out of bounds",
			yaml: "id: t\nrows: ['...']\nplayer: {x: 9, y: 0}\nexit: {x: 1, y: 0}\n",
			want: "out of bounds",
		},
		{
			name: "unknown platform type",
			yaml: "id: t\nrows: ['...']\nplayer: {x: 0, y: 0}\nexit: {x: 1, y: 0}\nplatforms: [{type: warp, x: 0, y: 0, segments: 1}]\n",
			want: "unknown type",
		},
		{
			name: "path platform with one waypoint",
			yaml: "id: t\nrows: ['...']\nplayer: {x: 0, y: 0}\nexit: {x: 1, y: 0}\nplatforms: [{type: path, x: 0, y: 0, segments: 1, waypoints: [{x: 0, y: 0}]}]\n",
			want: "waypoints",
		},
		{
			name: "composite without segment width",
			yaml: "id: t\nrows: ['...']\nplayer: {x: 0, y: 0}\nexit: {x: 1, y: 0}\nplatforms: [{type: circular, x: 0, y: 0, segments: 2, radius: 3}]\n",
			want: "segment_width",
		},
		{
			name: "inverted patrol bounds",
			yaml: "id: t\nrows: ['...']\nplayer: {x: 0, y: 0}\nexit: {x: 1, y: 0}\nenemies: [{x: 0, y: 0, min_x: 5, max_x: 1, speed: 1}]\n",
			want: "min_x",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "id: custom\nname: Custom\nrows: ['....', '####']\nplayer: {x: 0, y: 0}\nexit: {x: 3, y: 0}\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	lvl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "custom" || lvl.Width() != 4 || lvl.Height() != 2 {
		t.Errorf("unexpected level: %+v", lvl)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
