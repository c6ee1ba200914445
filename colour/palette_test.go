package colour

import (
	"slices"
	"testing"
)

func TestPaletteTwoVerticesOnAxis(t *testing.T) {
	got, err := Palette(6, []Colour{{0, 0, 0}, {255, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	want := []Colour{
		{0, 0, 0},
		{51, 0, 0},
		{102, 0, 0},
		{153, 0, 0},
		{204, 0, 0},
		{255, 0, 0},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPaletteTwoVerticesLongDiagonal(t *testing.T) {
	got, err := Palette(6, []Colour{{0, 0, 0}, {255, 255, 255}})
	if err != nil {
		t.Fatal(err)
	}
	want := []Colour{
		{0, 0, 0},
		{51, 51, 51},
		{102, 102, 102},
		{153, 153, 153},
		{204, 204, 204},
		{255, 255, 255},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPaletteThreeVerticesAlongAxes(t *testing.T) {
	got, err := Palette(11, []Colour{{0, 0, 0}, {255, 0, 0}, {255, 255, 0}})
	if err != nil {
		t.Fatal(err)
	}
	want := []Colour{
		{0, 0, 0},
		{51, 0, 0},
		{102, 0, 0},
		{153, 0, 0},
		{204, 0, 0},
		{255, 0, 0},
		{255, 51, 0},
		{255, 102, 0},
		{255, 153, 0},
		{255, 204, 0},
		{255, 255, 0},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got[5] != (Colour{255, 0, 0}) {
		t.Errorf("middle vertex not exactly at index 5: %+v", got[5])
	}
}

func TestPaletteEndpointsAndVertexPositions(t *testing.T) {
	vertices := []Colour{{0, 0, 0}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}}

	// 12 gaps over 3 legs: base 4 gaps per leg, no remainder
	got, err := Palette(13, vertices)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 13 {
		t.Fatalf("length = %d, want 13", len(got))
	}
	if got[0] != vertices[0] {
		t.Errorf("first colour = %+v, want first vertex", got[0])
	}
	if got[12] != vertices[3] {
		t.Errorf("last colour = %+v, want last vertex", got[12])
	}
	if got[4] != vertices[1] || got[8] != vertices[2] {
		t.Errorf("interior vertices not at leg boundaries: %+v, %+v", got[4], got[8])
	}
}

func TestPaletteRemainderGapsGoToFirstLegs(t *testing.T) {
	vertices := []Colour{{0, 0, 0}, {255, 0, 0}, {0, 255, 0}}

	// 9 gaps over 2 legs: first leg gets 5, second 4
	got, err := Palette(10, vertices)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("length = %d, want 10", len(got))
	}
	if got[5] != vertices[1] {
		t.Errorf("middle vertex at index 5 = %+v, want %+v", got[5], vertices[1])
	}
	if got[9] != vertices[2] {
		t.Errorf("last colour = %+v, want last vertex", got[9])
	}
}

func TestPaletteSizeEqualsVertexCount(t *testing.T) {
	vertices := []Colour{{0, 0, 0}, {100, 100, 100}, {255, 255, 255}}
	got, err := Palette(3, vertices)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, vertices) {
		t.Errorf("got %v, want the vertices verbatim", got)
	}
}

func TestPaletteRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		vertices []Colour
	}{
		{"no vertices", 5, nil},
		{"one vertex", 5, []Colour{{1, 2, 3}}},
		{"size smaller than vertex count", 2, []Colour{{0, 0, 0}, {128, 0, 0}, {255, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Palette(tt.size, tt.vertices); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
