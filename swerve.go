package joydrive

import "math"

// ModuleDeadband is the command magnitude below which the modules are idle.
const ModuleDeadband = 0.05

// Module identifies one swerve module.
type Module int

const (
	LeftFront Module = iota
	RightFront
	RightRear
	LeftRear
)

var moduleLabels = [...]string{"LF", "RF", "RR", "LR"}

func (m Module) String() string {
	if m < 0 || int(m) >= len(moduleLabels) {
		return "?"
	}
	return moduleLabels[m]
}

// Modules lists the modules in display order.
var Modules = [4]Module{LeftFront, RightFront, RightRear, LeftRear}

// ModuleAngles holds the steering angle of every module, in radians within
// [-pi, pi), measured from the robot's forward axis.
type ModuleAngles struct {
	Angles [4]float64
	Idle   bool
}

// Angle returns the steering angle of a module.
func (m ModuleAngles) Angle(module Module) float64 {
	return m.Angles[module]
}

// Degrees returns the steering angle of a module in degrees.
func (m ModuleAngles) Degrees(module Module) float64 {
	return m.Angles[module] * 180 / math.Pi
}

// Modules solves the swerve steering angles for a drive vector. The robot
// width is the track width and the length the wheel base.
func (g Geometry) Modules(d DriveVector) ModuleAngles {
	if math.Abs(d.FWD) <= ModuleDeadband && math.Abs(d.STR) <= ModuleDeadband && math.Abs(d.RCW) <= ModuleDeadband {
		return ModuleAngles{Idle: true}
	}

	diag := math.Hypot(g.Width, g.Length)
	a := d.STR - d.RCW*(g.Width/diag)
	b := d.STR + d.RCW*(g.Width/diag)
	c := d.FWD - d.RCW*(g.Length/diag)
	e := d.FWD + d.RCW*(g.Length/diag)

	var out ModuleAngles
	out.Angles[LeftFront] = NormalizeAngle(math.Atan2(b, c))
	out.Angles[RightFront] = NormalizeAngle(math.Atan2(b, e))
	out.Angles[RightRear] = NormalizeAngle(math.Atan2(a, e))
	out.Angles[LeftRear] = NormalizeAngle(math.Atan2(a, c))
	return out
}
