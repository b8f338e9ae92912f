package types

// ------------------------
// Lid
// ------------------------

// LidValue is the retained lid latch state.
type LidValue struct {
	Opened bool `json:"opened"` // latched for the current presence event
}

// PresenceEvent is emitted after each completed presence sequence.
type PresenceEvent struct {
	Count uint32 `json:"count"` // sequences run since boot
	TS    int64  `json:"ts_ms"`
}

// ------------------------
// Fill indicator
// ------------------------

type FillEvent struct {
	Count uint32 `json:"count"`
	TS    int64  `json:"ts_ms"`
}

// ------------------------
// Loop
// ------------------------

type LoopValue struct {
	Iterations uint64 `json:"iterations"`
	TS         int64  `json:"ts_ms"`
}

// ------------------------
// LEDs
// ------------------------

// LED names one of the three indicator lines.
type LED uint8

const (
	LEDLid LED = iota
	LEDStatus2
	LEDStatus3
)

func (l LED) String() string {
	switch l {
	case LEDLid:
		return "lid"
	case LEDStatus2:
		return "status2"
	case LEDStatus3:
		return "status3"
	default:
		return "?"
	}
}
