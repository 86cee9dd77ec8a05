package verify

import "math"

// Adaptive Simpson quadrature used to integrate a sampling density over one
// histogram bin. Recursion follows the stopping criterion from J.N. Lyness
// (1969), "Notes on the adaptive Simpson quadrature routine", with Richardson
// extrapolation of the accepted estimate.

func adaptiveSimpsonStep(f func(float64) float64, a, b, c, fa, fb, fc, val, eps float64, depth int) float64 {
	// Evaluate the function at two intermediate points
	d, e := 0.5*(a+b), 0.5*(b+c)
	fd, fe := f(d), f(e)

	// Simpson integration over each subinterval
	h := c - a
	val0 := (1.0 / 12.0) * h * (fa + 4*fd + fb)
	val1 := (1.0 / 12.0) * h * (fb + 4*fe + fc)
	valP := val0 + val1

	if depth <= 0 || math.Abs(valP-val) < 15*eps {
		// Richardson extrapolation
		return valP + (1.0/15.0)*(valP-val)
	}

	return adaptiveSimpsonStep(f, a, d, b, fa, fd, fb, val0, 0.5*eps, depth-1) +
		adaptiveSimpsonStep(f, b, e, c, fb, fe, fc, val1, 0.5*eps, depth-1)
}

func adaptiveSimpson(f func(float64) float64, x0, x1, eps float64, depth int) float64 {
	a, b, c := x0, 0.5*(x0+x1), x1
	fa, fb, fc := f(a), f(b), f(c)
	val := (c - a) * (1.0 / 6.0) * (fa + 4*fb + fc)
	return adaptiveSimpsonStep(f, a, b, c, fa, fb, fc, val, eps, depth)
}

func adaptiveSimpson2D(f func(x, y float64) float64, x0, y0, x1, y1, eps float64, depth int) float64 {
	return adaptiveSimpson(func(y float64) float64 {
		return adaptiveSimpson(func(x float64) float64 { return f(x, y) }, x0, x1, eps, depth)
	}, y0, y1, eps, depth)
}
