package geometry

import "math"

// SolveQuadratic returns the real roots of a*t² + b*t + c = 0.
// ok is false when there are no real roots. A tangent (zero discriminant)
// yields the same root twice. The two-root case uses the cancellation-free
// form q = -0.5*(b ± sqrt(disc)), t0 = q/a, t1 = c/q, so t0 and t1 are not
// ordered.
func SolveQuadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	// Degenerate (zero-length direction): treat as no intersection
	if a == 0 {
		return 0, 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	if discriminant == 0 {
		root := -0.5 * b / a
		return root, root, true
	}

	sqrtD := math.Sqrt(discriminant)
	var q float64
	if b > 0 {
		q = -0.5 * (b + sqrtD)
	} else {
		q = -0.5 * (b - sqrtD)
	}

	return q / a, c / q, true
}
