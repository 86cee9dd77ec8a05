package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/photometric/go-shading/pkg/core"
)

var approxVec3 = cmp.Comparer(func(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-12 && math.Abs(a.Y-b.Y) < 1e-12 && math.Abs(a.Z-b.Z) < 1e-12
})

func TestTranslationMovesPointsNotVectors(t *testing.T) {
	move := Translation[Object, World](core.NewVec3(1, 2, 3))

	p := move.Point(PointFromVec3[Object](core.NewVec3(0, 0, 0)))
	if diff := cmp.Diff(core.NewVec3(1, 2, 3), p.Raw(), approxVec3); diff != "" {
		t.Errorf("translated point mismatch (-want +got):\n%s", diff)
	}

	v := move.Vector(VectorFromVec3[Object](core.NewVec3(1, 0, 0)))
	if diff := cmp.Diff(core.NewVec3(1, 0, 0), v.Raw(), approxVec3); diff != "" {
		t.Errorf("translation should not affect vectors (-want +got):\n%s", diff)
	}
}

func TestUniformScaleKeepsDirectionsUnit(t *testing.T) {
	scale := UniformScale[Object, World](2.5)

	d := scale.Direction(DirectionFromVec3[Object](core.NewVec3(1, 1, 0)))
	if got := d.Raw().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("direction not renormalized: length %f", got)
	}

	v := scale.Vector(VectorFromVec3[Object](core.NewVec3(1, 0, 0)))
	if got := v.Raw().Length(); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("vector should scale: length %f, expected 2.5", got)
	}
}

func TestRotationZRoundTrip(t *testing.T) {
	rot := RotationZ[Object, World](math.Pi / 3)

	p := PointFromVec3[Object](core.NewVec3(1, 2, 3))
	back := rot.Inverse().Point(rot.Point(p))

	if diff := cmp.Diff(p.Raw(), back.Raw(), approxVec3); diff != "" {
		t.Errorf("rotation round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalTransformUsesInverseTranspose(t *testing.T) {
	// A non-uniform-looking case via composition: rotate then check the
	// normal stays perpendicular to a rotated tangent
	rot := RotationZ[Object, World](0.7)

	n := NormalFromVec3[Object](core.NewVec3(0, 1, 0))
	tangent := DirectionFromVec3[Object](core.NewVec3(1, 0, 0))

	nw := rot.Normal(n)
	tw := rot.Direction(tangent)

	if got := nw.Dot(tw); math.Abs(got) > 1e-12 {
		t.Errorf("transformed normal not perpendicular to transformed tangent: dot %g", got)
	}
	if got := nw.Raw().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("transformed normal not unit: length %f", got)
	}
}
