package kinematics

import (
	"errors"
	"slices"
	"testing"

	"github.com/TheBitDrifter/table"
)

// TestDirectoryBasicOperations tests registration and lookup by name
func TestDirectoryBasicOperations(t *testing.T) {
	const capacity = 10
	directory := Factory.NewDirectory(capacity)
	storage := Factory.NewStorage(table.Factory.NewSchema())

	names := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	entities, err := storage.NewEntities(len(names), Position)
	if err != nil {
		t.Fatalf("Failed to create entities: %v", err)
	}

	for i, name := range names {
		index, err := directory.Register(name, entities[i])
		if err != nil {
			t.Errorf("Failed to register %s: %v", name, err)
		}
		if index != i {
			t.Errorf("Index for %s is %d, expected %d", name, index, i)
		}
	}

	for i, name := range names {
		en, found := directory.Lookup(name)
		if !found {
			t.Errorf("%s not found in directory", name)
			continue
		}
		if en != entities[i] {
			t.Errorf("Lookup(%s) returned the wrong entity", name)
		}
	}

	if _, found := directory.Lookup("foxtrot"); found {
		t.Errorf("Lookup found an unregistered name")
	}
	if !slices.Equal(directory.Names(), names) {
		t.Errorf("Names() = %v, want %v", directory.Names(), names)
	}

	directory.Clear()
	if directory.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", directory.Len())
	}
}

// TestDirectoryCapacity tests the capacity limit
func TestDirectoryCapacity(t *testing.T) {
	directory := Factory.NewDirectory(2)

	if _, err := directory.Register("a", nil); err != nil {
		t.Fatalf("Register(a) error = %v", err)
	}
	if _, err := directory.Register("b", nil); err != nil {
		t.Fatalf("Register(b) error = %v", err)
	}

	var full DirectoryFullError
	if _, err := directory.Register("c", nil); !errors.As(err, &full) {
		t.Errorf("Register beyond capacity error = %v, want DirectoryFullError", err)
	}
	if full.Capacity != 2 {
		t.Errorf("DirectoryFullError.Capacity = %d, want 2", full.Capacity)
	}
}

// TestDirectoryUnregister tests that unregistering frees names and slots
func TestDirectoryUnregister(t *testing.T) {
	directory := Factory.NewDirectory(2)
	storage := Factory.NewStorage(table.Factory.NewSchema())
	entities, err := storage.NewEntities(3, Position)
	if err != nil {
		t.Fatalf("Failed to create entities: %v", err)
	}

	for i, name := range []string{"a", "b"} {
		if _, err := directory.Register(name, entities[i]); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}
	if !directory.Unregister("a") {
		t.Errorf("Unregister(a) = false for a registered name")
	}
	if directory.Unregister("a") {
		t.Errorf("Unregister(a) = true twice")
	}

	index, err := directory.Register("c", entities[2])
	if err != nil {
		t.Fatalf("Register(c) after Unregister error = %v", err)
	}
	if index != 1 {
		t.Errorf("Register(c) index = %d, want 1", index)
	}
	if en, ok := directory.Lookup("b"); !ok || en != entities[1] {
		t.Errorf("Lookup(b) after Unregister(a) = %v, %v", en, ok)
	}

	name, ok := directory.UnregisterEntity(entities[2])
	if !ok || name != "c" {
		t.Errorf("UnregisterEntity() = %q, %v, want c", name, ok)
	}
	if _, ok := directory.UnregisterEntity(entities[0]); ok {
		t.Errorf("UnregisterEntity() found an unregistered entity")
	}
	if !slices.Equal(directory.Names(), []string{"b"}) {
		t.Errorf("Names() = %v, want [b]", directory.Names())
	}
}
