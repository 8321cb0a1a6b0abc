package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/calluna-lt3/raytrace/pkg/loaders"
)

// SceneInfo describes a scene that can be rendered by name
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to JSON file (file type only)
}

type builtinScene struct {
	info    SceneInfo
	factory func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Red, green and blue spheres along the x axis",
			Type:        "builtin",
		},
		factory: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "single",
			DisplayName: "Single Sphere",
			Description: "One sphere at the origin lit from off-axis",
			Type:        "builtin",
		},
		factory: NewSingleSphereScene,
	},
	{
		info: SceneInfo{
			ID:          "shadow",
			DisplayName: "Shadow",
			Description: "Small occluder casting a shadow onto a large sphere",
			Type:        "builtin",
		},
		factory: NewShadowScene,
	},
}

// ListBuiltinScenes returns the scenes compiled into the binary
func ListBuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		infos[i] = b.info
	}
	return infos
}

// ListSceneFiles scans dir for JSON scene files. A missing directory yields an
// empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		info := SceneInfo{
			ID:          nameWithoutExt,
			DisplayName: titleCase(nameWithoutExt),
			Type:        "file",
			FilePath:    filePath,
		}

		// Metadata is optional; unreadable files still show up under their file name
		if desc, err := loaders.LoadScene(filePath); err == nil {
			if desc.Name != "" {
				info.DisplayName = desc.Name
			}
			info.Description = desc.Description
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// Create returns a built-in scene by name, or loads name as a JSON scene
// file path when it ends in .json.
func Create(name string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.factory()
		}
	}

	if strings.HasSuffix(name, ".json") {
		return NewFileScene(name)
	}

	return nil, fmt.Errorf("unknown scene %q", name)
}

// titleCase converts a file name like "two-spheres" into "Two Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
