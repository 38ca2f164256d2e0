package bench

import (
	"testing"

	"github.com/TheBitDrifter/kinematics"
)

func BenchmarkKinematicsStep(b *testing.B) {
	b.StopTimer()

	world := kinematics.NewWorld()
	storage := world.Storage()
	if _, err := storage.NewEntities(nPosVel, kinematics.Position, kinematics.Velocity); err != nil {
		b.Fatal(err)
	}
	if _, err := storage.NewEntities(nPos, kinematics.Position); err != nil {
		b.Fatal(err)
	}
	if err := world.AddProcessor(kinematics.NewKinematicsStep(dt), 0); err != nil {
		b.Fatal(err)
	}

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		if err := world.Process(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCursorGet(b *testing.B) {
	b.StopTimer()

	world := kinematics.NewWorld()
	storage := world.Storage()
	storage.NewEntities(nPosVel, kinematics.Position, kinematics.Velocity)
	storage.NewEntities(nPos, kinematics.Position)

	query := kinematics.Factory.NewQuery()
	query.And(kinematics.Velocity, kinematics.Position)
	cursor := kinematics.Factory.NewCursor(query, storage)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for cursor.Next() {
			pos := kinematics.Position.GetFromCursor(cursor)
			vel := kinematics.Velocity.GetFromCursor(cursor)
			pos.X += dt * vel.X
			pos.Y += dt * vel.Y
		}
	}
}
