package maps

import (
	"testing"

	"wondermap/common"
)

func TestTeleportConstructors(t *testing.T) {
	cases := []struct {
		name      string
		tp        Teleport
		wantType  TeleportType
		wantMap   MapID
		wantSpawn int
		wantDelta common.Fixed
	}{
		{
			name:      "horizontal_carries_source_y",
			tp:        Horizontal(Wonderland, 2, common.PointFromInts(100, 48)),
			wantType:  HorizontalTransition,
			wantMap:   Wonderland,
			wantSpawn: 2,
			wantDelta: common.FixedFromInt(48),
		},
		{
			name:      "vertical_carries_source_x",
			tp:        Vertical(ShionHouse, 1, common.PointFromInts(100, 48)),
			wantType:  VerticalTransition,
			wantMap:   ShionHouse,
			wantSpawn: 1,
			wantDelta: common.FixedFromInt(100),
		},
		{
			name:      "static_has_zero_delta",
			tp:        NewTeleport(Wonderland, 0),
			wantType:  StaticTransition,
			wantMap:   Wonderland,
			wantSpawn: 0,
			wantDelta: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.tp.Type() != c.wantType {
				t.Fatalf("Type() = %d, want %d", c.tp.Type(), c.wantType)
			}
			if c.tp.MapID() != c.wantMap {
				t.Fatalf("MapID() = %v, want %v", c.tp.MapID(), c.wantMap)
			}
			if c.tp.SpawnIndex() != c.wantSpawn {
				t.Fatalf("SpawnIndex() = %d, want %d", c.tp.SpawnIndex(), c.wantSpawn)
			}
			if c.tp.PositionDelta() != c.wantDelta {
				t.Fatalf("PositionDelta() = %v, want %v", c.tp.PositionDelta().Float64(), c.wantDelta.Float64())
			}
		})
	}
}

func TestArrival(t *testing.T) {
	dest := New(ShionHouse)

	t.Run("static_lands_on_spawn", func(t *testing.T) {
		tp := NewTeleport(ShionHouse, 0)
		got := Arrival(tp, dest, common.PointFromInts(999, 999))
		if got != dest.Spawn(0) {
			t.Fatalf("got %v, want %v", got, dest.Spawn(0))
		}
	})

	t.Run("horizontal_preserves_vertical_offset", func(t *testing.T) {
		// the traveller was 10px above the source spawn when the edge fired
		source := common.PointFromInts(0, 100)
		tp := Horizontal(ShionHouse, 1, source)
		pos := common.PointFromInts(-3, 90)
		got := Arrival(tp, dest, pos)
		want := dest.Spawn(1)
		want.Y += common.FixedFromInt(-10)
		if got != want {
			t.Fatalf("got (%v,%v), want (%v,%v)", got.X.Float64(), got.Y.Float64(), want.X.Float64(), want.Y.Float64())
		}
	})

	t.Run("vertical_preserves_horizontal_offset", func(t *testing.T) {
		source := common.PointFromInts(100, 0)
		tp := Vertical(ShionHouse, 2, source)
		pos := common.PointFromInts(112, 500)
		got := Arrival(tp, dest, pos)
		want := dest.Spawn(2)
		want.X += common.FixedFromInt(12)
		if got != want {
			t.Fatalf("got (%v,%v), want (%v,%v)", got.X.Float64(), got.Y.Float64(), want.X.Float64(), want.Y.Float64())
		}
	})
}
