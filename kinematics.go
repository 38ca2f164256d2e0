package kinematics

var (
	_ Processor    = &KinematicsStep{}
	_ MotionBinder = &KinematicsStep{}
)

// KinematicsStep is a stepwise approximation of displacement:
//
//	x1 = x0 + dt * v
//
// applied to every entity that has both a Position2D and a Velocity2D.
// dt is in seconds and fixed for the life of the step.
type KinematicsStep struct {
	dt     float64
	source MotionSource
}

func NewKinematicsStep(dt float64) *KinematicsStep {
	return &KinematicsStep{dt: dt}
}

func (k *KinematicsStep) DT() float64 {
	return k.dt
}

// Bind sets the container the step reads motion pairs from, replacing any
// previous one. A nil src unbinds the step.
func (k *KinematicsStep) Bind(src MotionSource) {
	k.source = src
}

func (k *KinematicsStep) Source() MotionSource {
	return k.source
}

// Process advances every bound position by one step. An unbound step does nothing.
func (k *KinematicsStep) Process() {
	if k.source == nil {
		return
	}
	for pos, vel := range k.source.Motions() {
		pos.X += k.dt * vel.X
		pos.Y += k.dt * vel.Y
	}
}
