package colour

import "testing"

func TestFrom24Bit(t *testing.T) {
	tests := []struct {
		packed uint32
		want   Colour
	}{
		{0x000000, Colour{0, 0, 0}},
		{0xffffff, Colour{255, 255, 255}},
		{0xff0000, Colour{255, 0, 0}},
		{0x00ff00, Colour{0, 255, 0}},
		{0x0000ff, Colour{0, 0, 255}},
		{0x010d62, Colour{1, 13, 98}},
		{0x63b8ec, Colour{99, 184, 236}},
	}
	for _, tt := range tests {
		if got := From24Bit(tt.packed); got != tt.want {
			t.Errorf("From24Bit(%#06x) = %+v, want %+v", tt.packed, got, tt.want)
		}
	}
}

func TestVectorRoundTrip(t *testing.T) {
	c := Colour{R: 12, G: 200, B: 255}
	if got := FromVector(c.Vector()); got != c {
		t.Errorf("round trip changed %+v to %+v", c, got)
	}
}

func TestFromVectorTruncates(t *testing.T) {
	tests := []struct {
		v    Vector3
		want Colour
	}{
		{Vector3{254.9, 0.5, 1.99}, Colour{254, 0, 1}},
		{Vector3{50.999, 51.0, 51.001}, Colour{50, 51, 51}},
	}
	for _, tt := range tests {
		if got := FromVector(tt.v); got != tt.want {
			t.Errorf("FromVector(%+v) = %+v, want %+v (components must truncate, not round)", tt.v, got, tt.want)
		}
	}
}

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{0.5, -2, 1}

	if got, want := a.Add(b), (Vector3{1.5, 0, 4}); got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
	if got, want := a.Sub(b), (Vector3{0.5, 4, 2}); got != want {
		t.Errorf("Sub = %+v, want %+v", got, want)
	}
	if got, want := a.Mul(2), (Vector3{2, 4, 6}); got != want {
		t.Errorf("Mul = %+v, want %+v", got, want)
	}
	if got, want := a.Div(2), (Vector3{0.5, 1, 1.5}); got != want {
		t.Errorf("Div = %+v, want %+v", got, want)
	}
}
