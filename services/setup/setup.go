package setup

import (
	"strconv"

	"smartbin-go/errcode"
	"smartbin-go/services/hal"
)

// PinMap is the bin's wiring. It must be reproduced exactly for the hardware.
type PinMap struct {
	LidSensor  hal.Pin // input, pull-down; high = object near lid
	FillSensor hal.Pin // input, pull-down; low triggers the fill display

	MotorForward hal.Pin // H-bridge IN1
	MotorReverse hal.Pin // H-bridge IN2
	MotorEnable  hal.Pin // H-bridge EN, high from boot

	LidLED     hal.Pin
	StatusLED2 hal.Pin
	StatusLED3 hal.Pin
}

// ConsolePlan selects an optional UART mirror for log output.
type ConsolePlan struct {
	UART string // "uart0", "uart1"; empty => no mirror
	TX   int
	RX   int
	Baud uint32
}

// BinSetup is one board's wiring and operating parameters.
type BinSetup struct {
	Board   string
	Pins    PinMap
	Console ConsolePlan
}

func (m PinMap) named() []struct {
	name string
	pin  hal.Pin
} {
	return []struct {
		name string
		pin  hal.Pin
	}{
		{"lid_sensor", m.LidSensor},
		{"fill_sensor", m.FillSensor},
		{"motor_forward", m.MotorForward},
		{"motor_reverse", m.MotorReverse},
		{"motor_enable", m.MotorEnable},
		{"lid_led", m.LidLED},
		{"status_led2", m.StatusLED2},
		{"status_led3", m.StatusLED3},
	}
}

// Validate rejects negative pins and lines assigned to more than one role.
func (s BinSetup) Validate() error {
	seen := make(map[hal.Pin]string, 8)
	for _, r := range s.Pins.named() {
		if r.pin < 0 {
			return &errcode.E{C: errcode.InvalidSetup, Op: s.Board, Msg: r.name + " has no pin"}
		}
		if other, dup := seen[r.pin]; dup {
			return &errcode.E{
				C:   errcode.InvalidSetup,
				Op:  s.Board,
				Msg: r.name + " shares pin " + strconv.Itoa(int(r.pin)) + " with " + other,
			}
		}
		seen[r.pin] = r.name
	}
	return nil
}
