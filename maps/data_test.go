package maps

import (
	"strings"
	"testing"
)

func TestLoadData(t *testing.T) {
	for _, name := range []string{"wonderland", "shion_house"} {
		t.Run(name, func(t *testing.T) {
			d, err := LoadData(name)
			if err != nil {
				t.Fatalf("LoadData(%q): %v", name, err)
			}
			if d.Name != name {
				t.Fatalf("Name = %q, want %q", d.Name, name)
			}
			for i, layer := range d.collisions {
				if len(layer) != d.Width*d.Height {
					t.Fatalf("layer %d: %d tiles, want %d", i, len(layer), d.Width*d.Height)
				}
			}
			if len(d.spawns) < 3 {
				t.Fatalf("%d spawns, want at least 3", len(d.spawns))
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadData("purapril_castle"); err == nil {
			t.Fatal("expected an error for unknown map data")
		}
	})
}

func TestParseDataRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad_dimensions",
			yaml:    "name: x\nwidth: 0\nheight: 2\nlayers:\n  - rows: []\n",
			wantErr: "invalid dimensions",
		},
		{
			name:    "no_layers",
			yaml:    "name: x\nwidth: 2\nheight: 2\n",
			wantErr: "no layers",
		},
		{
			name:    "wrong_row_count",
			yaml:    "name: x\nwidth: 2\nheight: 2\nlayers:\n  - rows: [\"00\"]\n",
			wantErr: "expected 2 rows",
		},
		{
			name:    "wrong_row_width",
			yaml:    "name: x\nwidth: 2\nheight: 2\nlayers:\n  - rows: [\"00\", \"000\"]\n",
			wantErr: "expected 2 cells",
		},
		{
			name:    "non_digit_tile",
			yaml:    "name: x\nwidth: 2\nheight: 2\nlayers:\n  - rows: [\"00\", \"0x\"]\n",
			wantErr: "invalid tile",
		},
		{
			name:    "unknown_tile_kind",
			yaml:    "name: x\nwidth: 2\nheight: 2\nlayers:\n  - rows: [\"00\", \"09\"]\n",
			wantErr: "unknown tile kind",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseData([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestParseDataItemsAndSpawns(t *testing.T) {
	src := `
name: tiny
width: 3
height: 2
layers:
  - color: "#112233"
    rows: ["012", "111"]
    items:
      - { id: 7, x: 20, y: 10 }
spawns:
  - { x: 5, y: 6 }
`
	d, err := parseData([]byte(src))
	if err != nil {
		t.Fatalf("parseData: %v", err)
	}
	if d.collisions[0][1] != TilePlain || d.collisions[0][2] != TilePlatform {
		t.Fatalf("unexpected tiles: %v", d.collisions[0])
	}
	if len(d.items[0]) != 1 || d.items[0][0].ID != 7 {
		t.Fatalf("unexpected items: %+v", d.items[0])
	}
	if d.items[0][0].Position.X.Integer() != 20 {
		t.Fatalf("item x = %d, want 20", d.items[0][0].Position.X.Integer())
	}
	if len(d.spawns) != 1 || d.spawns[0].Y.Integer() != 6 {
		t.Fatalf("unexpected spawns: %+v", d.spawns)
	}
}
