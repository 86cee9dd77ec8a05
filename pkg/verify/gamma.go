package verify

import "math"

// rlGamma evaluates the regularized lower incomplete gamma function
// P(a, x), based on the series and continued-fraction expansions from
// Cephes.
func rlGamma(a, x float64) float64 {
	const maxError = 1e-15
	const big = 4503599627370496.0
	const bigInv = 2.22044604925031308085e-16

	if a < 0 || x < 0 {
		panic("verify: rlGamma arguments out of range")
	}
	if x <= 0 {
		return 0
	}

	lg, _ := math.Lgamma(a)
	ax := a*math.Log(x) - x - lg
	if ax < -709.78271289338399 {
		if a < x {
			return 1
		}
		return 0
	}

	if x <= 1 || x <= a {
		// Power series
		r2 := a
		c2 := 1.0
		ans2 := 1.0
		for {
			r2++
			c2 = c2 * x / r2
			ans2 += c2
			if c2/ans2 <= maxError {
				break
			}
		}
		return math.Exp(ax) * ans2 / a
	}

	// Continued fraction
	c := 0
	y := 1 - a
	z := x + y + 1
	p3, q3 := 1.0, x
	p2, q2 := x+1, z*x
	ans := p2 / q2

	for {
		c++
		y++
		z += 2
		yc := y * float64(c)
		p := p2*z - p3*yc
		q := q2*z - q3*yc

		err := 1.0
		if math.Abs(q) > 1e-15 {
			next := p / q
			err = math.Abs((ans - next) / next)
			ans = next
		}

		p3, p2 = p2, p
		q3, q2 = q2, q

		if math.Abs(p) > big {
			p3 *= bigInv
			p2 *= bigInv
			q3 *= bigInv
			q2 *= bigInv
		}

		if err <= maxError {
			break
		}
	}

	return 1 - math.Exp(ax)*ans
}

// chi2CDF is the cumulative distribution function of the chi-squared
// distribution with dof degrees of freedom.
func chi2CDF(x float64, dof int) float64 {
	if dof < 1 || x < 0 {
		return 0
	}
	if dof == 2 {
		return 1 - math.Exp(-0.5*x)
	}
	return rlGamma(0.5*float64(dof), 0.5*x)
}
