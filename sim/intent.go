package sim

// Intent is one frame of abstract input. The client resolves devices to
// intents; the core never touches a keyboard or gamepad.
type Intent struct {
	// MoveX/MoveZ are independent axis signals in [-1, 1], not necessarily
	// normalized. They are camera-relative: the integrator rotates them by
	// CameraYaw into world space.
	MoveX float64
	MoveZ float64

	Jump    bool // jump control held
	Climb   bool // climb control held
	Recover bool // manual recovery trigger held

	CameraYaw float64 // camera's horizontal facing, radians
}
