//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"smartbin-go/services/setup"
)

// OpenConsole configures the planned UART and returns it as a log sink.
// It returns nil when the plan names no UART, leaving logs on USB CDC.
func OpenConsole(p setup.ConsolePlan) io.Writer {
	var hw *uartx.UART
	switch p.UART {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil
	}
	// Defaults inside uartx apply if zero.
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       machine.Pin(p.TX),
		RX:       machine.Pin(p.RX),
	}); err != nil {
		println("[platform] console uart configure failed:", err.Error())
		return nil
	}
	return hw
}
