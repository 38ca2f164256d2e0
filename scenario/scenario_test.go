package scenario

import (
	"errors"
	"testing"

	"github.com/TheBitDrifter/kinematics"
)

func TestLoadAndRun(t *testing.T) {
	s, err := Load("testdata/drift.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Step() != 0.5 || s.Ticks != 4 || len(s.Entities) != 3 {
		t.Fatalf("Load() = dt %v, ticks %d, %d entities", s.DT, s.Ticks, len(s.Entities))
	}

	world, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := Run(world, s.Ticks); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []Placement{
		{Name: "rover", Position: kinematics.NewPosition2D(2.0, -1.0)},
		{Name: "beacon", Position: kinematics.NewPosition2D(10.0, 10.0)},
		{Name: "comet", Position: kinematics.NewPosition2D(-1.5, 3.0)},
	}
	got := Placements(world)
	if len(got) != len(want) {
		t.Fatalf("Placements() returned %d bodies, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placements()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseRejectsIntegers(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantField string
		wantLine  int
	}{
		{
			name:      "Integer x",
			doc:       "dt: 1.0\nentities:\n  - name: a\n    position: {x: 1, y: 1.0}\n",
			wantField: "x",
			wantLine:  4,
		},
		{
			name:      "Integer y",
			doc:       "dt: 1.0\nentities:\n  - name: a\n    position: {x: 1.0, y: 1}\n",
			wantField: "y",
			wantLine:  4,
		},
		{
			name:      "Integer velocity",
			doc:       "dt: 1.0\nentities:\n  - name: a\n    position: {x: 1.0, y: 1.0}\n    velocity:\n      x: 1.0\n      y: 2\n",
			wantField: "y",
			wantLine:  7,
		},
		{
			name:      "Integer dt",
			doc:       "dt: 1\nentities: []\n",
			wantField: "dt",
			wantLine:  1,
		},
		{
			name:      "Quoted float",
			doc:       "dt: 1.0\nentities:\n  - name: a\n    position: {x: \"1.0\", y: 1.0}\n",
			wantField: "x",
			wantLine:  4,
		},
		{
			name:      "Missing dt",
			doc:       "ticks: 3\nentities:\n  - name: a\n    position: {x: 1.0, y: 1.0}\n",
			wantField: "dt",
			wantLine:  0,
		},
		{
			name:      "Null dt",
			doc:       "dt: ~\nentities: []\n",
			wantField: "dt",
			wantLine:  0,
		},
		{
			name:      "Missing y",
			doc:       "dt: 1.0\nentities:\n  - name: a\n    position: {x: 1.0}\n",
			wantField: "y",
			wantLine:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var typeErr *FieldTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("Parse() error = %v, want *FieldTypeError", err)
			}
			if typeErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", typeErr.Field, tt.wantField)
			}
			if typeErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", typeErr.Line, tt.wantLine)
			}
		})
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("dt: 0.25\nentities:\n  - position: {x: 0.0, y: 0.0}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Entities[0].Name == "" {
		t.Errorf("unnamed body was not given a name")
	}
	if s.Entities[0].Velocity != nil {
		t.Errorf("Velocity = %+v, want nil", s.Entities[0].Velocity)
	}

	if _, err := Parse([]byte("dt: 1.0\nticks: -1\n")); err == nil {
		t.Errorf("Parse() accepted negative ticks")
	}
}

func TestBuildRejectsDuplicateNames(t *testing.T) {
	s, err := Parse([]byte("dt: 1.0\nentities:\n  - name: a\n    position: {x: 0.0, y: 0.0}\n  - name: a\n    position: {x: 1.0, y: 1.0}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var taken kinematics.NameTakenError
	if _, err := s.Build(); !errors.As(err, &taken) {
		t.Errorf("Build() error = %v, want NameTakenError", err)
	}
}
