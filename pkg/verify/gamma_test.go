package verify

import (
	"math"
	"testing"
)

func TestChi2CDFTwoDegrees(t *testing.T) {
	// dof=2 has the closed form 1 − e^{−x/2}
	for _, x := range []float64{0.5, 1, 2, 5, 10} {
		got := chi2CDF(x, 2)
		want := 1 - math.Exp(-0.5*x)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("chi2CDF(%f, 2) incorrect: got %.12f, expected %.12f", x, got, want)
		}
	}
}

func TestChi2CDFKnownQuantiles(t *testing.T) {
	// Standard chi-squared critical values: CDF(x, dof) at the 95th percentile
	cases := []struct {
		x   float64
		dof int
	}{
		{3.841, 1},
		{7.815, 3},
		{11.070, 5},
		{18.307, 10},
	}
	for _, c := range cases {
		got := chi2CDF(c.x, c.dof)
		if math.Abs(got-0.95) > 5e-4 {
			t.Errorf("chi2CDF(%f, %d) = %.5f, expected ≈0.95", c.x, c.dof, got)
		}
	}
}

func TestChi2CDFBoundaries(t *testing.T) {
	if got := chi2CDF(-1, 5); got != 0 {
		t.Errorf("negative statistic should give 0: got %f", got)
	}
	if got := chi2CDF(5, 0); got != 0 {
		t.Errorf("zero dof should give 0: got %f", got)
	}
	if got := chi2CDF(1e6, 5); math.Abs(got-1) > 1e-12 {
		t.Errorf("huge statistic should give 1: got %f", got)
	}
}

func TestRLGammaMonotone(t *testing.T) {
	prev := 0.0
	for x := 0.1; x < 20; x += 0.5 {
		got := rlGamma(2.5, x)
		if got < prev {
			t.Fatalf("P(2.5, x) not monotone at x=%f: %f < %f", x, got, prev)
		}
		if got < 0 || got > 1 {
			t.Fatalf("P(2.5, %f) out of [0,1]: %f", x, got)
		}
		prev = got
	}
}

func TestRLGammaAgainstErf(t *testing.T) {
	// P(1/2, x) = erf(√x)
	for _, x := range []float64{0.1, 0.5, 1, 2, 4} {
		got := rlGamma(0.5, x)
		want := math.Erf(math.Sqrt(x))
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("P(0.5, %f) incorrect: got %.14f, expected %.14f", x, got, want)
		}
	}
}
