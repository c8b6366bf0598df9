package scene

import (
	"fmt"
	"math/rand"
	"sort"
)

// Options configures preset scene construction
type Options struct {
	Random      *rand.Rand // Source for scene-assembly randomness; seeded when nil
	TexturePath string     // Image file for texture-mapped presets (earth)
}

// random returns the configured random source, defaulting to a fixed seed so
// preset scenes are reproducible.
func (o Options) random() *rand.Rand {
	if o.Random != nil {
		return o.Random
	}
	return rand.New(rand.NewSource(42))
}

// BuilderFunc constructs a preset scene
type BuilderFunc func(opts Options) (*Scene, error)

// Info describes a registered preset scene
type Info struct {
	Name        string
	Description string
}

type registryEntry struct {
	info    Info
	builder BuilderFunc
}

// Preset scenes are selected by name. The map is populated once at package
// init and read-only afterwards.
var registry = map[string]registryEntry{}

func register(name, description string, builder BuilderFunc) {
	registry[name] = registryEntry{
		info:    Info{Name: name, Description: description},
		builder: builder,
	}
}

func init() {
	register("random-spheres",
		"Random sphere field with motion blur, glass, metal and a checkered ground",
		NewRandomSpheresScene)
	register("checkered-spheres",
		"Two giant checkered spheres touching at the origin",
		NewCheckeredSpheresScene)
	register("perlin-spheres",
		"Marble-textured spheres lit by two rectangle lights",
		NewPerlinSpheresScene)
	register("earth",
		"A single image-textured globe (requires a texture file)",
		NewEarthScene)
	register("cornell-box",
		"Classic Cornell box with two rotated boxes and an area light",
		NewCornellBoxScene)
	register("cornell-smoke",
		"Cornell box with the boxes replaced by smoke and fog volumes",
		NewCornellSmokeScene)
	register("final",
		"Showcase scene: ground boxes, volumes, motion blur and a sphere cloud",
		NewFinalScene)
}

// Build constructs the named preset scene
func Build(name string, opts Options) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (run the scenes command for the list)", name)
	}
	return entry.builder(opts)
}

// List returns the registered presets sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, entry := range registry {
		infos = append(infos, entry.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
