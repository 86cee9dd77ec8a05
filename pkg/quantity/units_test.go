package quantity

import (
	"math"
	"testing"
)

func TestDistanceArithmetic(t *testing.T) {
	a := DistanceFromRaw(3.0)
	b := DistanceFromRaw(4.0)

	if got := a.Add(b).Raw(); got != 7.0 {
		t.Errorf("Add incorrect: got %f, expected 7", got)
	}
	if got := b.Sub(a).Raw(); got != 1.0 {
		t.Errorf("Sub incorrect: got %f, expected 1", got)
	}
	if got := a.Scale(2).Raw(); got != 6.0 {
		t.Errorf("Scale incorrect: got %f, expected 6", got)
	}
}

func TestDistanceProductsHaveAreaDimension(t *testing.T) {
	a := DistanceFromRaw(3.0)
	b := DistanceFromRaw(4.0)

	area := a.MulDistance(b)
	if got := area.Raw(); got != 12.0 {
		t.Errorf("MulDistance incorrect: got %f, expected 12", got)
	}
}

func TestDistanceReciprocalRoundTrip(t *testing.T) {
	d := DistanceFromRaw(2.0)
	inv := d.Rcp()

	if got := inv.Raw(); got != 0.5 {
		t.Errorf("Rcp incorrect: got %f, expected 0.5", got)
	}
	if got := inv.Rcp().Raw(); got != 2.0 {
		t.Errorf("Rcp round trip incorrect: got %f, expected 2", got)
	}
}

func TestDistanceSquaredSqrt(t *testing.T) {
	d2 := DistanceSquaredFromRaw(9.0)
	if got := d2.Sqrt().Raw(); got != 3.0 {
		t.Errorf("Sqrt incorrect: got %f, expected 3", got)
	}
}

func TestSolidAngleConstants(t *testing.T) {
	if got := FullSphere().Raw(); math.Abs(got-4*math.Pi) > 1e-12 {
		t.Errorf("FullSphere incorrect: got %f, expected %f", got, 4*math.Pi)
	}
	if got := Hemisphere().Raw(); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("Hemisphere incorrect: got %f, expected %f", got, 2*math.Pi)
	}
}
