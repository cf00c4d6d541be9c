package components

import "github.com/yohamta/donburi"

// BodyKind mirrors the rigid body types of the physics step.
type BodyKind int

const (
	BodyStatic BodyKind = iota
	BodyDynamic
)

type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()

// SpeedData is the movement speed in pixels per second.
type SpeedData struct {
	Value float64
}

var Speed = donburi.NewComponentType[SpeedData]()

type BodyData struct {
	Kind          BodyKind
	GravityScale  float64
	LinearDamping float64
	LockRotation  bool
}

var Body = donburi.NewComponentType[BodyData]()
