package setup

import "smartbin-go/services/hal"

// CH32V003 is the first bin controller board (port D plus PC0), with an
// L298N driving the lid motor.
var CH32V003 = BinSetup{
	Board: "ch32v003",
	Pins: PinMap{
		LidSensor:    hal.PortPin('D', 3),
		FillSensor:   hal.PortPin('D', 2),
		MotorForward: hal.PortPin('D', 4),
		MotorReverse: hal.PortPin('D', 5),
		MotorEnable:  hal.PortPin('D', 1),
		LidLED:       hal.PortPin('D', 6),
		StatusLED2:   hal.PortPin('D', 0),
		StatusLED3:   hal.PortPin('C', 0),
	},
}

// Pico carries the same roles on a Raspberry Pi Pico.
var Pico = BinSetup{
	Board: "pico",
	Pins: PinMap{
		LidSensor:    3,
		FillSensor:   2,
		MotorForward: 4,
		MotorReverse: 5,
		MotorEnable:  6,
		LidLED:       7,
		StatusLED2:   8,
		StatusLED3:   9,
	},
	Console: ConsolePlan{UART: "uart0", TX: 0, RX: 1, Baud: 115200},
}
