package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/calluna-lt3/raytrace/pkg/geometry"
	"github.com/calluna-lt3/raytrace/pkg/loaders"
)

// NewFileScene creates a scene from a JSON scene file
func NewFileScene(filename string) (*Scene, error) {
	desc, err := loaders.LoadScene(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}

	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return NewSceneFromDescription(desc)
}

// NewSceneFromDescription converts a parsed scene file into a validated scene
func NewSceneFromDescription(desc *loaders.SceneDescription) (*Scene, error) {
	s, err := newScene(desc.Name, desc.Camera.Location.Vec3(), desc.Camera.FocalDistance, desc.Width, desc.Height)
	if err != nil {
		return nil, err
	}

	if desc.Background != nil {
		s.Background = desc.Background.Vec3()
	}

	s.Light = geometry.NewPointLight(desc.Light.Location.Vec3(), desc.Light.Color.Vec3(), desc.Light.Intensity)

	for _, sd := range desc.Spheres {
		s.AddSphere(sd.Center.Vec3(), sd.Radius, sd.Color.Vec3())
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
