package geometry

import (
	"fmt"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

// Sphere represents a solid-colored sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3 // RGB in [0, 1]
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Validate reports whether the sphere can be rendered
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("sphere at %v: radius must be positive, got %g", s.Center, s.Radius)
	}
	if !inUnitRange(s.Color) {
		return fmt.Errorf("sphere at %v: color %v outside [0, 1]", s.Center, s.Color)
	}
	return nil
}

// Intersect tests a world-space ray against the sphere.
// The returned parameters are along ray.Direction from ray.Origin, unordered.
func (s *Sphere) Intersect(ray core.Ray) (t0, t1 float64, ok bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)
	return IntersectLocal(oc, ray.Direction, s.Radius)
}

// IntersectLocal intersects a ray whose origin is already expressed relative
// to the center of a sphere of the given radius.
func IntersectLocal(origin, direction core.Vec3, radius float64) (t0, t1 float64, ok bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.Dot(direction)
	b := 2 * direction.Dot(origin)
	c := origin.Dot(origin) - radius*radius

	return SolveQuadratic(a, b, c)
}

// Normal returns the outward unit normal through point, measured from the center
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

func inUnitRange(c core.Vec3) bool {
	for _, v := range []float64{c.X, c.Y, c.Z} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}
