package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

// Triple is a JSON [x, y, z] array
type Triple [3]float64

// Vec3 converts the triple to a vector
func (t Triple) Vec3() core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

// CameraDescription is the camera block of a scene file
type CameraDescription struct {
	Location      Triple  `json:"location"`
	FocalDistance float64 `json:"focalDistance"`
}

// LightDescription is the light block of a scene file
type LightDescription struct {
	Location  Triple  `json:"location"`
	Color     Triple  `json:"color"`
	Intensity float64 `json:"intensity"`
}

// SphereDescription is one entry of the spheres list
type SphereDescription struct {
	Center Triple  `json:"center"`
	Radius float64 `json:"radius"`
	Color  Triple  `json:"color"`
}

// SceneDescription is the parsed form of a JSON scene file
type SceneDescription struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Background  *Triple             `json:"background,omitempty"` // defaults to white
	Camera      CameraDescription   `json:"camera"`
	Light       LightDescription    `json:"light"`
	Spheres     []SphereDescription `json:"spheres"`
}

// LoadScene reads and parses a JSON scene file
func LoadScene(filename string) (*SceneDescription, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return desc, nil
}

// ParseScene decodes a JSON scene description. Unknown fields are rejected.
func ParseScene(r io.Reader) (*SceneDescription, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var desc SceneDescription
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	if desc.Background == nil {
		desc.Background = &Triple{1, 1, 1}
	}
	return &desc, nil
}

// WriteScene encodes a scene description as indented JSON
func WriteScene(w io.Writer, desc *SceneDescription) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(desc)
}
