//go:build !(rp2040 || rp2350)

package console

import (
	"io"
	"os"
)

// Baud is informational on host builds.
const Baud = 9600

// Open returns stdout.
func Open() io.Writer { return os.Stdout }
