package scene

import (
	"github.com/calluna-lt3/raytrace/pkg/core"
	"github.com/calluna-lt3/raytrace/pkg/geometry"
)

// NewDefaultScene creates three touching red, green, and blue spheres on the
// x axis, seen from a camera 1000 units down -z.
func NewDefaultScene() (*Scene, error) {
	s, err := newScene("default", core.NewVec3(0, 0, -1000), 1000, 1801, 1201)
	if err != nil {
		return nil, err
	}

	s.Light = geometry.NewPointLight(core.NewVec3(-1000, 1000, -1000), core.NewVec3(1, 1, 1), 1)

	s.AddSphere(core.NewVec3(-100, 0, 0), 100, core.NewVec3(1, 0, 0))
	s.AddSphere(core.NewVec3(100, 0, 0), 100, core.NewVec3(0, 1, 0))
	s.AddSphere(core.NewVec3(0, 0, 0), 100, core.NewVec3(0, 0, 1))

	return s, nil
}

// NewSingleSphereScene creates one sphere at the origin lit from far off-axis
func NewSingleSphereScene() (*Scene, error) {
	s, err := newScene("single", core.NewVec3(0, 0, -1000), 1000, 301, 201)
	if err != nil {
		return nil, err
	}

	s.Light = geometry.NewPointLight(core.NewVec3(-1000, 1000, -1000), core.NewVec3(1, 1, 1), 1)
	s.AddSphere(core.NewVec3(0, 0, 0), 100, core.NewVec3(1, 0.5, 0.25))

	return s, nil
}

// NewShadowScene creates a sphere with a smaller occluder placed between the
// middle of its visible face and the light.
func NewShadowScene() (*Scene, error) {
	s, err := newScene("shadow", core.NewVec3(0, 0, -1000), 1000, 401, 301)
	if err != nil {
		return nil, err
	}

	s.Light = geometry.NewPointLight(core.NewVec3(0, 1000, -500), core.NewVec3(1, 1, 1), 1)

	s.AddSphere(core.NewVec3(0, 0, 0), 100, core.NewVec3(0.9, 0.9, 0.9))
	s.AddSphere(core.NewVec3(0, 450, -280), 50, core.NewVec3(0.2, 0.8, 0.3))

	return s, nil
}
