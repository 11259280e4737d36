package commands

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type Flag string

const (
	SleepTime Flag = "-s" // Close the window after this many seconds
)

const Usage = "ppmv [filename|-] [-s sleeptime]"

// ErrUsage is returned for any argument shape other than the ones in Usage.
var ErrUsage = errors.New("usage: " + Usage)

// Options is what the command line asks for.
type Options struct {
	Path    string        // Empty or "-" reads standard input
	Timeout time.Duration // Zero keeps the window open until quit
}

// Parse reads the arguments that follow the program name.
//
// Example:
//
//	ppmv
//	ppmv image.ppm
//	ppmv - -s 3
func Parse(args []string) (opts Options, err error) {
	switch len(args) {
	case 0:
		return
	case 1:
		opts.Path = args[0]
		return
	case 3:
		if Flag(args[1]) != SleepTime {
			err = errors.Wrapf(ErrUsage, "unknown flag %q", args[1])
			return
		}
		seconds, perr := strconv.ParseUint(args[2], 10, 32)
		if perr != nil {
			err = errors.Wrapf(ErrUsage, "bad sleep time %q", args[2])
			return
		}
		opts.Path = args[0]
		opts.Timeout = time.Duration(seconds) * time.Second
		return
	}
	err = errors.Wrapf(ErrUsage, "got %d arguments", len(args))
	return
}
