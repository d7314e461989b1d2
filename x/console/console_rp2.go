//go:build rp2040 || rp2350

package console

import (
	"io"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// Baud matches the serial monitor setting of the crossing harness.
const Baud = 9600

var (
	uart = uartx.UART1
	tx   = uartx.UART1_TX_PIN // Pico: GP8
	rx   = uartx.UART1_RX_PIN // Pico: GP9
)

// Open configures UART1 and returns a writer that mirrors to USB-CDC.
// If the UART cannot be configured, only USB-CDC is used.
func Open() io.Writer {
	if err := uart.Configure(uartx.UARTConfig{
		BaudRate: Baud,
		TX:       tx,
		RX:       rx,
	}); err != nil {
		println("console: uart1 configure error")
		return machine.Serial
	}
	return io.MultiWriter(machine.Serial, uart)
}
