package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"atlas-engine/internal/shape"
)

// sceneFile is the on-disk YAML layout for a saved scene.
type sceneFile struct {
	Camera Camera         `yaml:"camera"`
	Shapes []*shape.Shape `yaml:"shapes"`
}

// Save writes the scene's camera and shapes to path as YAML.
func (sc *Scene) Save(path string) error {
	data, err := yaml.Marshal(sceneFile{
		Camera: sc.Camera,
		Shapes: sc.Shapes(),
	})
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// Load replaces the scene's contents with the shapes and camera from path.
// On any error the scene is left untouched.
func (sc *Scene) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}
	sc.Clear()
	if f.Camera.FOV > 0 {
		sc.Camera = f.Camera
	}
	for _, s := range f.Shapes {
		if s == nil {
			continue
		}
		sc.Add(s)
	}
	return nil
}
