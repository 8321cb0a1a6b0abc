package geometry

import (
	"fmt"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

// Camera is a pinhole camera that always looks toward the world origin
type Camera struct {
	Location      core.Vec3
	Forward       core.Vec3 // unit vector, -normalize(Location)
	FocalDistance float64
}

// NewCamera creates a camera at location looking at the origin.
// The image plane sits focalDistance in front of the origin; a smaller focal
// distance widens the field of view.
func NewCamera(location core.Vec3, focalDistance float64) (*Camera, error) {
	if !(focalDistance > 0) {
		return nil, fmt.Errorf("camera focal distance must be positive, got %g", focalDistance)
	}

	dir, err := location.NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("camera location: %w", err)
	}

	return &Camera{
		Location:      location,
		Forward:       dir.Negate(),
		FocalDistance: focalDistance,
	}, nil
}

// rawDirection returns the unnormalized direction through pixel (x, y)
func (c *Camera) rawDirection(x, y int) core.Vec3 {
	d := c.FocalDistance
	// Image-plane point for a camera at the origin looking down -z
	p := core.NewVec3(float64(x), float64(y), -d)
	// Shift by the forward offset, then make it relative to the camera
	return p.Add(c.Forward.Multiply(d)).Subtract(c.Location)
}

// Direction returns the unit direction from the camera through the centered
// pixel coordinate (x, y).
func (c *Camera) Direction(x, y int) core.Vec3 {
	return c.rawDirection(x, y).Normalize()
}

// GetRay returns the primary ray for the centered pixel coordinate (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	return core.NewRay(c.Location, c.Direction(x, y))
}
