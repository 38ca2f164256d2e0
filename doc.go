/*
Package kinematics advances 2D bodies through time on a small archetype ECS.

It pairs two plain components with one processor:

  - Position2D: an entity's center of mass, in meters.
  - Velocity2D: an entity's aggregate velocity, in meters per second.
  - KinematicsStep: an explicit Euler step, x1 = x0 + dt * v, applied to
    every entity holding both components.

Entities and their components live in a World. The world keeps them in
archetype tables, one table per distinct component set, and ticks the
registered processors once per call to Process.

Basic Usage:

	world := kinematics.NewWorld()
	world.AddProcessor(kinematics.NewKinematicsStep(1.0), 0)

	vel := kinematics.NewVelocity2D(1.0, 0.0)
	body, _ := world.Spawn(kinematics.NewPosition2D(0.0, 0.0), &vel)

	world.Process()

	pos := kinematics.Position.GetFromEntity(body)
	fmt.Println(pos.X, pos.Y) // 1 0

KinematicsStep only talks to the container through MotionSource, so it can
be driven by anything that yields position/velocity pairs, including a plain
slice in tests.
*/
package kinematics
