package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

func TestNewCamera_ForwardPointsAtOrigin(t *testing.T) {
	camera, err := NewCamera(core.NewVec3(0, 0, -1000), 1000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if camera.Forward != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected forward (0, 0, 1), got %v", camera.Forward)
	}
}

func TestNewCamera_Invalid(t *testing.T) {
	if _, err := NewCamera(core.NewVec3(0, 0, 0), 1000); !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector for camera at origin, got %v", err)
	}
	if _, err := NewCamera(core.NewVec3(0, 0, -10), 0); err == nil {
		t.Error("Expected error for zero focal distance")
	}
}

func TestCamera_Direction(t *testing.T) {
	camera, err := NewCamera(core.NewVec3(0, 0, -1000), 1000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		x, y     int
		expected core.Vec3
	}{
		{"center", 0, 0, core.NewVec3(0, 0, 1)},
		{"right", 3, 0, core.NewVec3(3, 0, 1000).Normalize()},
		{"up left", -20, 15, core.NewVec3(-20, 15, 1000).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := camera.Direction(tt.x, tt.y)

			const tolerance = 1e-12
			if dir.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, dir)
			}
			if math.Abs(dir.Length()-1) > tolerance {
				t.Errorf("Expected unit direction, got length %f", dir.Length())
			}
		})
	}
}

func TestCamera_DirectionDeterministic(t *testing.T) {
	camera, err := NewCamera(core.NewVec3(300, -200, -900), 750)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, p := range [][2]int{{0, 0}, {17, -9}, {-400, 300}} {
		a := camera.Direction(p[0], p[1])
		b := camera.Direction(p[0], p[1])
		if a != b {
			t.Errorf("Expected bit-identical directions at %v, got %v and %v", p, a, b)
		}
	}
}

func TestCamera_OffAxisUsesFocalDistance(t *testing.T) {
	near, _ := NewCamera(core.NewVec3(0, 600, -800), 1000)
	far, _ := NewCamera(core.NewVec3(0, 600, -800), 250)

	// The forward offset only shifts the image plane when the camera is off the z axis
	if near.Direction(10, 10) == far.Direction(10, 10) {
		t.Error("Expected focal distance to change off-axis ray directions")
	}
}

func TestCamera_GetRay(t *testing.T) {
	location := core.NewVec3(0, 0, -1000)
	camera, _ := NewCamera(location, 1000)

	ray := camera.GetRay(4, -2)
	if ray.Origin != location {
		t.Errorf("Expected ray origin %v, got %v", location, ray.Origin)
	}
	if ray.Direction != camera.Direction(4, -2) {
		t.Errorf("Expected ray direction %v, got %v", camera.Direction(4, -2), ray.Direction)
	}
}
