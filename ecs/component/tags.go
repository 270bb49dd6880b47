package component

// FlyControl marks an entity as driven by the free movement and free
// rotation systems.
type FlyControl struct{}

var FlyControlComponent = NewComponent[FlyControl]()

// CameraTag marks the entity the renderer looks through.
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// OrbitTargetTag marks entities an arc-ball camera may be pointed at.
type OrbitTargetTag struct{}

var OrbitTargetTagComponent = NewComponent[OrbitTargetTag]()
