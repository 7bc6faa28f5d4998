package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builtinScene struct {
	description string
	create      func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default":    {"Red diffuse and red glass spheres on a grey plane", NewDefaultScene},
	"red-sphere": {"Single red diffuse sphere on black", NewRedSphereScene},
	"mirror":     {"Mirror sphere reflecting colored spheres and the floor", NewMirrorScene},
	"glass":      {"Glass and water spheres in front of diffuse spheres", NewGlassScene},
	"mixed":      {"Satin spheres with increasing mirror factor", NewMixedScene},
}

// Create builds the built-in scene with the given name
func Create(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return builtin.create(), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtinScenes[name].description,
		})
	}
	return scenes
}

// titleCase converts kebab-case or snake_case to Title Case
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
