package bench

import (
	"testing"

	"github.com/TheBitDrifter/kinematics"
	"github.com/mlange-42/arche/ecs"
)

func BenchmarkIterArche(b *testing.B) {
	b.StopTimer()
	world := ecs.NewWorld(ecs.NewConfig().WithCapacityIncrement(1024))

	posID := ecs.ComponentID[kinematics.Position2D](&world)
	velID := ecs.ComponentID[kinematics.Velocity2D](&world)

	ecs.NewBuilder(&world, posID).NewBatch(nPos)
	ecs.NewBuilder(&world, posID, velID).NewBatch(nPosVel)

	var filter ecs.Filter = ecs.All(posID, velID)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		query := world.Query(filter)
		for query.Next() {
			pos := (*kinematics.Position2D)(query.Get(posID))
			vel := (*kinematics.Velocity2D)(query.Get(velID))
			pos.X += dt * vel.X
			pos.Y += dt * vel.Y
		}
	}
}
