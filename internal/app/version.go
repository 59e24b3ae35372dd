package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version metadata, overridable at build time via
// -ldflags "-X github.com/agbru/exactcalc/internal/app.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "unknown"
)

// HasVersionFlag reports whether the arguments request version information.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "exactcalc %s (%s) %s/%s\n", Version, Commit, runtime.GOOS, runtime.GOARCH)
}
