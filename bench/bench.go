// Package bench compares one kinematics tick across ECS implementations.
package bench

// go test -bench=. -benchmem ./...

const (
	nPos    = 9000
	nPosVel = 1000
	dt      = 1.0 / 64
)
