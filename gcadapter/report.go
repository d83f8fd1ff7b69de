package gcadapter

import "fmt"

// Buttons represents the Gamecube controller buttons
type Buttons struct {
	UP    bool
	DOWN  bool
	RIGHT bool
	LEFT  bool
	Y     bool
	X     bool
	B     bool
	A     bool
	L     bool
	R     bool
	Z     bool
	START bool
}

type rawGCInput struct {
	Button    Buttons
	StickX    uint8
	StickY    uint8
	CX        uint8
	CY        uint8
	LAnalog   uint8
	RAnalog   uint8
	PluggedIn bool
}

func neutralRawInput() *rawGCInput {
	return &rawGCInput{
		StickX:  128,
		StickY:  128,
		CX:      128,
		CY:      128,
		LAnalog: 255,
		RAnalog: 255,
	}
}

// X+Y+Start re-zeroes the sticks and triggers, as on a console.
func (in *rawGCInput) resetCombo() bool {
	return in.Button.X && in.Button.Y && in.Button.START
}

// GCInputs represent the state of the gamecube controller, with sticks values in [-1, 1], triggers values in [0, 1] and buttons as boolean
type GCInputs struct {
	Button    Buttons
	StickX    float32
	StickY    float32
	CX        float32
	CY        float32
	LAnalog   float32
	RAnalog   float32
	PluggedIn bool
}

// Offsets are the sticks and trigger values read right after plugging the controller or resetting it with X+Y+Start.
type Offsets = rawGCInput

func processRawController(rawInput *rawGCInput, offsets *Offsets) *GCInputs {
	gcinput := GCInputs{}
	gcinput.Button = rawInput.Button

	gcinput.StickX, gcinput.StickY = processStick(rawInput.StickX, rawInput.StickY, offsets.StickX, offsets.StickY)
	gcinput.CX, gcinput.CY = processStick(rawInput.CX, rawInput.CY, offsets.CX, offsets.CY)
	gcinput.LAnalog = processTrigger(rawInput.LAnalog, offsets.LAnalog)
	gcinput.RAnalog = processTrigger(rawInput.RAnalog, offsets.RAnalog)

	gcinput.PluggedIn = rawInput.PluggedIn

	return &gcinput
}

// DeserializeGCControllers decodes one adapter report into the raw state
// of the four ports.
func DeserializeGCControllers(data []byte) (map[uint8]*rawGCInput, error) {
	if len(data) < reportSize {
		return nil, fmt.Errorf("gcadapter: short report: %d bytes, expected %d", len(data), reportSize)
	}
	gcInputs := make(map[uint8]*rawGCInput)
	for _, PORT := range Ports {
		gcInput := &rawGCInput{}
		b := data[9*PORT+1:]

		gcInput.PluggedIn = b[0] == 20 || b[0] == 16

		gcInput.Button.UP = b[1]&0b10000000 != 0
		gcInput.Button.DOWN = b[1]&0b01000000 != 0
		gcInput.Button.RIGHT = b[1]&0b00100000 != 0
		gcInput.Button.LEFT = b[1]&0b00010000 != 0
		gcInput.Button.Y = b[1]&0b00001000 != 0
		gcInput.Button.X = b[1]&0b00000100 != 0
		gcInput.Button.B = b[1]&0b00000010 != 0
		gcInput.Button.A = b[1]&0b00000001 != 0
		gcInput.Button.L = b[2]&0b00001000 != 0
		gcInput.Button.R = b[2]&0b00000100 != 0
		gcInput.Button.Z = b[2]&0b00000010 != 0
		gcInput.Button.START = b[2]&0b00000001 != 0

		gcInput.StickX = b[3]
		gcInput.StickY = b[4]
		gcInput.CX = b[5]
		gcInput.CY = b[6]
		gcInput.LAnalog = b[7]
		gcInput.RAnalog = b[8]

		gcInputs[PORT] = gcInput
	}
	return gcInputs, nil
}
