package bin

import "smartbin-go/services/hal"

// MotorDriver drives the two H-bridge direction lines. The enable line is
// raised once by Arm and never touched again.
type MotorDriver struct {
	io           hal.DigitalIO
	fwd, rev, en hal.Pin
}

func NewMotorDriver(io hal.DigitalIO, forward, reverse, enable hal.Pin) *MotorDriver {
	return &MotorDriver{io: io, fwd: forward, rev: reverse, en: enable}
}

func (m *MotorDriver) Arm() { m.io.Write(m.en, hal.High) }

// Open drives forward. Reverse is released first so the two direction
// lines are never high together.
func (m *MotorDriver) Open() {
	m.io.Write(m.rev, hal.Low)
	m.io.Write(m.fwd, hal.High)
}

func (m *MotorDriver) Close() {
	m.io.Write(m.fwd, hal.Low)
	m.io.Write(m.rev, hal.High)
}

// Stop releases both direction lines; whether that coasts or brakes is up to
// the bridge wiring.
func (m *MotorDriver) Stop() {
	m.io.Write(m.fwd, hal.Low)
	m.io.Write(m.rev, hal.Low)
}
