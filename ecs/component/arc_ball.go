package component

// ArcBallControl keeps an entity Distance units behind Target along its own
// forward axis. Target is a weak reference: the system skips the entity
// while the target is dead.
type ArcBallControl struct {
	Target   uint64 // ecs.Entity is uint64
	Distance float32
}

var ArcBallControlComponent = NewComponent[ArcBallControl]()
