package hal

import "time"

// Pin is a board GPIO number. Port-based parts encode port and bit as
// port*16+bit (see PortPin); RP2 parts use GP numbering directly.
type Pin int

// PortPin encodes a port letter ('A', 'B', ...) and bit number into a Pin.
func PortPin(port byte, bit int) Pin { return Pin(int(port-'A')*16 + bit) }

// Level is the logical reading or drive of a digital line.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// DigitalIO configures and drives discrete lines.
// Configure calls report unknown or conflicting pins; Read and Write are
// infallible by contract.
type DigitalIO interface {
	ConfigureOutput(pin Pin) error
	ConfigureInput(pin Pin, pull Pull) error
	Write(pin Pin, level Level)
	Read(pin Pin) Level
}

// Clock blocks the caller for d. There is no cancellation.
type Clock interface {
	Delay(d time.Duration)
}
