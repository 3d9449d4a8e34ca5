package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

// File schema types. Exactly one of the variant fields must be set per
// object entry.
type sceneFile struct {
	Light   vecFile      `yaml:"light"`
	Objects []objectFile `yaml:"objects"`
}

type objectFile struct {
	Sphere   *sphereFile   `yaml:"sphere"`
	Triangle *triangleFile `yaml:"triangle"`
}

type sphereFile struct {
	Center   vecFile  `yaml:"center"`
	Radius   float32  `yaml:"radius"`
	Color    [3]uint8 `yaml:"color"`
	Mass     float32  `yaml:"mass"`
	Velocity *vecFile `yaml:"velocity"`
}

type triangleFile struct {
	P0    vecFile  `yaml:"p0"`
	P1    vecFile  `yaml:"p1"`
	P2    vecFile  `yaml:"p2"`
	Color [3]uint8 `yaml:"color"`
}

type vecFile struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v vecFile) vec() mathpkg.Vec3 {
	return mathpkg.NewVec3(v.X, v.Y, v.Z)
}

// Load reads a scene description from a YAML file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML scene description data. Geometry is not
// validated beyond the schema; degenerate shapes are legal and simply
// never intersect.
func Parse(data []byte) (*Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	s := &Scene{Light: file.Light.vec()}
	for i, entry := range file.Objects {
		switch {
		case entry.Sphere != nil && entry.Triangle != nil:
			return nil, fmt.Errorf("object %d: both sphere and triangle set", i)
		case entry.Sphere != nil:
			sp := entry.Sphere
			color := Color(sp.Color)
			if sp.Mass > 0 {
				velocity := mathpkg.Vec3{}
				if sp.Velocity != nil {
					velocity = sp.Velocity.vec()
				}
				s.Objects = append(s.Objects, NewDynamicSphere(sp.Center.vec(), sp.Radius, color, sp.Mass, velocity))
			} else {
				s.Objects = append(s.Objects, NewSphere(sp.Center.vec(), sp.Radius, color))
			}
		case entry.Triangle != nil:
			tr := entry.Triangle
			s.Objects = append(s.Objects, NewTriangle(tr.P0.vec(), tr.P1.vec(), tr.P2.vec(), Color(tr.Color)))
		default:
			return nil, fmt.Errorf("object %d: neither sphere nor triangle set", i)
		}
	}
	return s, nil
}
