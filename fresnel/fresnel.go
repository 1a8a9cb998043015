// Package fresnel evaluates the Fresnel integrals
//
//	S(x) = ∫₀ˣ sin(π/2·t²) dt
//	C(x) = ∫₀ˣ cos(π/2·t²) dt
//
// which close-form the position along an Euler spiral. Small arguments use
// the Maclaurin series, large arguments the auxiliary-function asymptotic
// expansion (Abramowitz & Stegun 7.3.11/7.3.13 and 7.3.27/7.3.28).
package fresnel

import "math"

const (
	// seriesCutoff is the |x| at which evaluation switches from the
	// Maclaurin series to the asymptotic expansion. At 3.4 series
	// cancellation costs ~5e-9 and the asymptotic tail ~2e-9, so both sides
	// agree to better than 1e-8 absolute.
	seriesCutoff = 3.4

	// hugeCutoff is where π/2·x² loses all fractional precision in a double,
	// so the oscillating terms are meaningless and the integrals sit at
	// their limit.
	hugeCutoff = 36974.0

	epsilon = 2.220446049250313e-16
)

// SC returns S(x) and C(x). Both are odd functions of x.
func SC(x float64) (s, c float64) {
	ax := math.Abs(x)
	switch {
	case ax > hugeCutoff:
		s, c = 0.5, 0.5
	case ax < seriesCutoff:
		s, c = taylor(ax)
	default:
		s, c = auxiliary(ax)
	}
	if x < 0 {
		s, c = -s, -c
	}
	return s, c
}

// taylor sums the Maclaurin series
//
//	C(x) = Σ (-1)ⁿ (π/2)²ⁿ x⁴ⁿ⁺¹ / ((2n)!·(4n+1))
//	S(x) = Σ (-1)ⁿ (π/2)²ⁿ⁺¹ x⁴ⁿ⁺³ / ((2n+1)!·(4n+3))
//
// for x in [0, seriesCutoff), where the largest term stays small enough that
// cancellation cannot eat the working precision.
func taylor(x float64) (s, c float64) {
	u := math.Pi / 2 * x * x
	cTerm := x     // (-1)ⁿ u²ⁿ x / (2n)!
	sTerm := x * u // (-1)ⁿ u²ⁿ⁺¹ x / (2n+1)!
	c = cTerm
	s = sTerm / 3
	for n := 1; n < 64; n++ {
		cTerm *= -u * u / float64((2*n-1)*(2*n))
		sTerm *= -u * u / float64((2*n)*(2*n+1))
		dc := cTerm / float64(4*n+1)
		ds := sTerm / float64(4*n+3)
		c += dc
		s += ds
		if math.Abs(dc) <= epsilon*math.Abs(c) && math.Abs(ds) <= epsilon*math.Abs(s) {
			break
		}
	}
	return s, c
}

// auxiliary evaluates the asymptotic auxiliary functions
//
//	f(x) ≈ 1/(πx) · Σ (-1)ᵐ (4m-1)!! / (πx²)²ᵐ
//	g(x) ≈ 1/(πx) · Σ (-1)ᵐ (4m+1)!! / (πx²)²ᵐ⁺¹
//
// truncated at the smallest term, and recombines them:
//
//	C(x) = 1/2 + f·sin(π/2·x²) - g·cos(π/2·x²)
//	S(x) = 1/2 - f·cos(π/2·x²) - g·sin(π/2·x²)
func auxiliary(x float64) (s, c float64) {
	pix2 := math.Pi * x * x
	fTerm := 1.0
	gTerm := 1.0 / pix2
	f := fTerm
	g := gTerm
	for m := 1; m < 32; m++ {
		fNext := fTerm * -float64((4*m-3)*(4*m-1)) / (pix2 * pix2)
		gNext := gTerm * -float64((4*m-1)*(4*m+1)) / (pix2 * pix2)
		// The series are asymptotic; once terms stop shrinking they must
		// not be added.
		if math.Abs(fNext) >= math.Abs(fTerm) || math.Abs(gNext) >= math.Abs(gTerm) {
			break
		}
		fTerm, gTerm = fNext, gNext
		f += fTerm
		g += gTerm
		if math.Abs(fTerm) <= epsilon*math.Abs(f) && math.Abs(gTerm) <= epsilon*math.Abs(g) {
			break
		}
	}
	scale := 1 / (math.Pi * x)
	f *= scale
	g *= scale

	t := math.Pi / 2 * x * x
	sin, cos := math.Sincos(t)
	c = 0.5 + f*sin - g*cos
	s = 0.5 - f*cos - g*sin
	return s, c
}
