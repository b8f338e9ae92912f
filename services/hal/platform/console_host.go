//go:build !(rp2040 || rp2350)

package platform

import (
	"io"
	"os"

	"smartbin-go/services/setup"
)

// OpenConsole returns stderr on host builds; the plan is ignored.
func OpenConsole(setup.ConsolePlan) io.Writer { return os.Stderr }
