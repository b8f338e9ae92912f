package bin

import (
	"time"

	"smartbin-go/services/hal"
)

// Fixed open-loop timings. There is no position feedback: the lid is assumed
// to reach end of travel within LidTravel.
const (
	LidTravel     = 150 * time.Millisecond
	LidOpenDwell  = 500 * time.Millisecond // lid LED still on
	LidCloseDelay = 500 * time.Millisecond // lid LED off
	FillStep      = 1000 * time.Millisecond
	IdleInterval  = 100 * time.Millisecond
)

// Sensor readings. Both sensors idle low on their pull-downs.
const (
	Asserted   = hal.High
	Deasserted = hal.Low
)
