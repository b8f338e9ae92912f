package bin

// State is everything the loop carries between iterations. It is owned by
// ControlLoop and handed to each component's update by pointer.
type State struct {
	// LidOpened latches once a presence sequence has run and stays set
	// until the lid sensor reads Deasserted.
	LidOpened bool

	Presences  uint32 // presence sequences run
	Fills      uint32 // fill sequences run
	Iterations uint64
}
