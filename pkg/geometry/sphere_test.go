package geometry

import (
	"math"
	"testing"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 0, 0))
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if t0, t1, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss, but got hit at t=(%f, %f)", t0, t1)
	}
}

func TestSphere_Intersect_Hit(t *testing.T) {
	tests := []struct {
		name         string
		center       core.Vec3
		radius       float64
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		near, far    float64
	}{
		{
			name:         "camera in front of origin sphere",
			center:       core.NewVec3(0, 0, 0),
			radius:       100,
			rayOrigin:    core.NewVec3(0, 0, -1000),
			rayDirection: core.NewVec3(0, 0, 1),
			near:         900,
			far:          1100,
		},
		{
			name:         "offset sphere",
			center:       core.NewVec3(5, 0, 0),
			radius:       1,
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(1, 0, 0),
			near:         4,
			far:          6,
		},
		{
			name:         "origin inside sphere",
			center:       core.NewVec3(0, 0, 0),
			radius:       2,
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 1, 0),
			near:         -2,
			far:          2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, core.NewVec3(1, 1, 1))
			t0, t1, ok := sphere.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection))
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}

			near, far := math.Min(t0, t1), math.Max(t0, t1)
			const tolerance = 1e-9
			if math.Abs(near-tt.near) > tolerance || math.Abs(far-tt.far) > tolerance {
				t.Errorf("Expected t=(%f, %f), got (%f, %f)", tt.near, tt.far, near, far)
			}
		})
	}
}

func TestSphere_Intersect_Tangent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 100, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(100, 0, -1000), core.NewVec3(0, 0, 1))

	t0, t1, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected tangent hit, but got miss")
	}
	if t0 != t1 || t0 != 1000 {
		t.Errorf("Expected tangent at t=1000, got (%f, %f)", t0, t1)
	}
}

func TestSphere_Intersect_Idempotent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(3, -2, 7), 2.5, core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0.3, -0.2, 1).Normalize())

	a0, a1, aok := sphere.Intersect(ray)
	b0, b1, bok := sphere.Intersect(ray)
	if a0 != b0 || a1 != b1 || aok != bok {
		t.Errorf("Expected identical results, got (%v, %v, %t) and (%v, %v, %t)", a0, a1, aok, b0, b1, bok)
	}
}

func TestIntersectLocal_MatchesWorldSpace(t *testing.T) {
	center := core.NewVec3(-100, 0, 0)
	sphere := NewSphere(center, 100, core.NewVec3(1, 0, 0))
	origin := core.NewVec3(0, 0, -1000)
	dir := core.NewVec3(-50, 10, 1000).Normalize()

	w0, w1, wok := sphere.Intersect(core.NewRay(origin, dir))
	l0, l1, lok := IntersectLocal(origin.Subtract(center), dir, sphere.Radius)
	if w0 != l0 || w1 != l1 || wok != lok {
		t.Errorf("Expected local and world intersection to agree, got (%v, %v) vs (%v, %v)", w0, w1, l0, l1)
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, core.NewVec3(1, 1, 1))

	if n := sphere.Normal(core.NewVec3(1, 4, 3)); n != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0, 1, 0), got %v", n)
	}
	// Points off the surface still yield a unit normal
	if n := sphere.Normal(core.NewVec3(1, 2, 13)); n != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0, 0, 1), got %v", n)
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sphere  *Sphere
		wantErr bool
	}{
		{"valid", NewSphere(core.NewVec3(0, 0, 0), 1, core.NewVec3(0.5, 0.5, 0.5)), false},
		{"zero radius", NewSphere(core.NewVec3(0, 0, 0), 0, core.NewVec3(1, 1, 1)), true},
		{"negative radius", NewSphere(core.NewVec3(0, 0, 0), -1, core.NewVec3(1, 1, 1)), true},
		{"NaN radius", NewSphere(core.NewVec3(0, 0, 0), math.NaN(), core.NewVec3(1, 1, 1)), true},
		{"color above one", NewSphere(core.NewVec3(0, 0, 0), 1, core.NewVec3(255, 0, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sphere.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%t, got %v", tt.wantErr, err)
			}
		})
	}
}
