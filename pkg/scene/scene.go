package scene

import (
	"errors"
	"fmt"

	"github.com/calluna-lt3/raytrace/pkg/core"
	"github.com/calluna-lt3/raytrace/pkg/geometry"
)

// ErrInvalidScene is wrapped by every scene validation failure
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering.
// It must be treated as read-only while a render is in progress.
type Scene struct {
	Name       string
	Camera     *geometry.Camera
	Light      geometry.PointLight
	Spheres    []*geometry.Sphere // Objects in the scene, in intersection order
	Background core.Vec3
	Width      int // Recommended image width
	Height     int // Recommended image height
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera { return s.Camera }

// GetLight returns the scene's point light
func (s *Scene) GetLight() geometry.PointLight { return s.Light }

// GetSpheres returns the scene's spheres
func (s *Scene) GetSpheres() []*geometry.Sphere { return s.Spheres }

// GetBackground returns the color of pixels that hit nothing
func (s *Scene) GetBackground() core.Vec3 { return s.Background }

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Vec3) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, color))
}

// Validate checks every scene parameter the renderer relies on
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("%w: no camera", ErrInvalidScene)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if err := s.Light.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	for i, sphere := range s.Spheres {
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("%w: sphere %d: %v", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// newScene builds a scene around a camera at location looking at the origin
func newScene(name string, location core.Vec3, focalDistance float64, width, height int) (*Scene, error) {
	camera, err := geometry.NewCamera(location, focalDistance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	return &Scene{
		Name:       name,
		Camera:     camera,
		Spheres:    make([]*geometry.Sphere, 0),
		Background: core.NewVec3(1, 1, 1),
		Width:      width,
		Height:     height,
	}, nil
}
