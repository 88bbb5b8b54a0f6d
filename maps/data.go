package maps

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wondermap/common"
)

//go:embed data/*.yaml
var dataFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Data is the parsed, validated form of one map's authored data: collision
// tables, item placements, spawn points and layer presentation.
type Data struct {
	Name     string
	Width    int
	Height   int
	Parallax float64

	colors     []string
	collisions [][]Tile
	items      [][]Item
	spawns     []common.Point
}

type rawData struct {
	Name       string        `yaml:"name"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Layers     []rawLayer    `yaml:"layers"`
	Spawns     []rawPoint    `yaml:"spawns"`
	Background rawBackground `yaml:"background"`
}

type rawLayer struct {
	Color string    `yaml:"color"`
	Rows  []string  `yaml:"rows"`
	Items []rawItem `yaml:"items,omitempty"`
}

type rawItem struct {
	ID int `yaml:"id"`
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
}

type rawPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type rawBackground struct {
	Parallax float64 `yaml:"parallax,omitempty"`
}

// LoadData reads and validates the map data for name. A copy on disk under
// maps/data/ overrides the embedded copy so authored data can be iterated on
// without rebuilding.
func LoadData(name string) (*Data, error) {
	file := name + ".yaml"
	b, err := os.ReadFile(filepath.Join("maps", "data", file))
	if err != nil {
		b, err = dataFS.ReadFile("data/" + file)
		if err != nil {
			return nil, fmt.Errorf("maps: read data %s: %w", name, err)
		}
	}
	d, err := parseData(b)
	if err != nil {
		return nil, fmt.Errorf("maps: parse data %s: %w", name, err)
	}
	return d, nil
}

func parseData(b []byte) (*Data, error) {
	var raw rawData
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", raw.Width, raw.Height)
	}
	if len(raw.Layers) == 0 {
		return nil, fmt.Errorf("no layers")
	}

	d := &Data{
		Name:       raw.Name,
		Width:      raw.Width,
		Height:     raw.Height,
		Parallax:   raw.Background.Parallax,
		colors:     make([]string, len(raw.Layers)),
		collisions: make([][]Tile, len(raw.Layers)),
		items:      make([][]Item, len(raw.Layers)),
	}

	for i, layer := range raw.Layers {
		tiles, err := parseRows(layer.Rows, raw.Width, raw.Height)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		d.colors[i] = layer.Color
		d.collisions[i] = tiles
		items := make([]Item, len(layer.Items))
		for j, it := range layer.Items {
			items[j] = Item{Position: common.PointFromInts(it.X, it.Y), ID: it.ID}
		}
		d.items[i] = items
	}

	d.spawns = make([]common.Point, len(raw.Spawns))
	for i, s := range raw.Spawns {
		d.spawns[i] = common.PointFromInts(s.X, s.Y)
	}

	return d, nil
}

// parseRows decodes one layer's tile rows. Each row is a string of digits,
// one tile kind per cell, row-major top to bottom.
func parseRows(rows []string, width, height int) ([]Tile, error) {
	if len(rows) != height {
		return nil, fmt.Errorf("expected %d rows, got %d", height, len(rows))
	}
	tiles := make([]Tile, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", y, width, len(row))
		}
		for x := 0; x < width; x++ {
			c := row[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("row %d cell %d: invalid tile %q", y, x, c)
			}
			t := Tile(c - '0')
			if t > TilePlatform {
				return nil, fmt.Errorf("row %d cell %d: unknown tile kind %d", y, x, t)
			}
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}
