// Package scenario loads kinematics worlds from YAML.
//
// A scenario names a time step, a tick count and a list of bodies:
//
//	dt: 0.5
//	ticks: 4
//	entities:
//	  - name: rover
//	    position: {x: 0.0, y: 0.0}
//	    velocity: {x: 1.0, y: 0.0}
//	  - name: beacon
//	    position: {x: 10.0, y: 10.0}
//
// dt is required. Every coordinate and dt must be written as a float. An integer scalar such
// as `1` is rejected with a *FieldTypeError; write `1.0`.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/TheBitDrifter/kinematics"
)

type Scenario struct {
	DT       *Float `yaml:"dt"`
	Ticks    int    `yaml:"ticks"`
	Entities []Body `yaml:"entities"`
}

type Body struct {
	Name     string `yaml:"name"`
	Position Vec    `yaml:"position"`
	Velocity *Vec   `yaml:"velocity"`
}

type Vec struct {
	X Float `yaml:"x"`
	Y Float `yaml:"y"`
}

// Float is a float64 that only decodes from a YAML float scalar.
type Float float64

func (f *Float) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!float" {
		return &FieldTypeError{Line: node.Line, Column: node.Column, Value: node.Value, Tag: node.ShortTag()}
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		X *Float `yaml:"x"`
		Y *Float `yaml:"y"`
	}
	if err := node.Decode(&raw); err != nil {
		var typeErr *FieldTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			typeErr.Field = fieldAt(node, typeErr.Line, typeErr.Column)
		}
		return err
	}
	if raw.X == nil {
		return &FieldTypeError{Field: "x", Line: node.Line, Tag: "missing"}
	}
	if raw.Y == nil {
		return &FieldTypeError{Field: "y", Line: node.Line, Tag: "missing"}
	}
	v.X, v.Y = *raw.X, *raw.Y
	return nil
}

// fieldAt finds the mapping key whose value starts at line and column.
func fieldAt(mapping *yaml.Node, line, column int) string {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if v := mapping.Content[i+1]; v.Line == line && v.Column == column {
			return mapping.Content[i].Value
		}
	}
	return ""
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		// coordinates are labelled by Vec, so an unlabelled float is dt
		var typeErr *FieldTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			typeErr.Field = "dt"
		}
		return nil, err
	}
	if s.DT == nil {
		return nil, &FieldTypeError{Field: "dt", Tag: "missing"}
	}
	if s.Ticks < 0 {
		return nil, fmt.Errorf("ticks must not be negative, got %d", s.Ticks)
	}
	for i := range s.Entities {
		if s.Entities[i].Name == "" {
			s.Entities[i].Name = uuid.NewString()
		}
	}
	return &s, nil
}

// Build creates a world holding every body, with a KinematicsStep bound to it.
func (s *Scenario) Build(opts ...kinematics.WorldOption) (*kinematics.World, error) {
	world := kinematics.NewWorld(opts...)
	for _, body := range s.Entities {
		comps := []kinematics.Component{kinematics.Position}
		if body.Velocity != nil {
			comps = append(comps, kinematics.Velocity)
		}
		en, err := world.CreateNamedEntity(body.Name, comps...)
		if err != nil {
			return nil, fmt.Errorf("scenario: entity %q: %w", body.Name, err)
		}
		*kinematics.Position.GetFromEntity(en) = kinematics.NewPosition2D(float64(body.Position.X), float64(body.Position.Y))
		if body.Velocity != nil {
			*kinematics.Velocity.GetFromEntity(en) = kinematics.NewVelocity2D(float64(body.Velocity.X), float64(body.Velocity.Y))
		}
	}
	if err := world.AddProcessor(kinematics.NewKinematicsStep(s.Step()), 0); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return world, nil
}

// Step is the time step in seconds.
func (s *Scenario) Step() float64 {
	if s.DT == nil {
		return 0
	}
	return float64(*s.DT)
}

// Run ticks world n times, stopping at the first failed tick.
func Run(world *kinematics.World, n int) error {
	for i := 0; i < n; i++ {
		if err := world.Process(); err != nil {
			return err
		}
	}
	return nil
}

type Placement struct {
	Name     string
	Position kinematics.Position2D
}

// Placements reports the position of every live named body in creation order.
func Placements(world *kinematics.World) []Placement {
	var out []Placement
	for _, name := range world.Names() {
		en, ok := world.EntityByName(name)
		if !ok {
			continue
		}
		out = append(out, Placement{Name: name, Position: *kinematics.Position.GetFromEntity(en)})
	}
	return out
}
