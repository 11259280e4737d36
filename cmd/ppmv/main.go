package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chocolatkey/ppmv"
	"github.com/chocolatkey/ppmv/pkg/commands"
	"github.com/chocolatkey/ppmv/pkg/source"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

func main() {
	// A session only ends by timeout, quit or signal, all of which exit 1
	os.Exit(run(os.Args[1:], os.LookupEnv))
}

func run(args []string, lookup func(string) (string, bool)) int {
	cfg, err := ppmv.ConfigFromEnv(lookup)
	if err != nil {
		logrus.Errorln(err)
		return 1
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(cfg.LogLevel)

	opts, err := commands.Parse(args)
	if err != nil {
		logrus.Debugln(err)
		fmt.Fprintln(os.Stderr, commands.Usage)
		return 1
	}
	if opts.Timeout > 0 {
		logrus.Infof("sleep time = %d", int(opts.Timeout.Seconds()))
	}

	in, err := source.Open(opts.Path)
	if err != nil {
		logrus.Errorln(err)
		return 1
	}
	img, err := in.Decode(cfg.Decoder())
	if err != nil {
		logrus.Errorln(err)
		return 1
	}

	factory, err := cfg.SurfaceFactory()
	if err != nil {
		logrus.Errorln(err)
		return 1
	}
	session, err := ppmv.Open(img, in.Provenance, factory, in.Name)
	if err != nil {
		logrus.Errorln(err)
		return 1
	}
	defer func() {
		if err := session.Close(); err != nil {
			logrus.Warnln("failed closing session:", err)
		}
	}()
	session.Timeout = ppmv.TimeoutPolicy{Budget: opts.Timeout}
	session.FrameInterval = cfg.FrameInterval

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	report(session, in.Name, session.Run(ctx))
	return 1
}

// report releases the session before logging why it ended, so the message
// reaches a terminal the surface no longer owns.
func report(session *ppmv.Session, name string, err error) {
	if cerr := session.Close(); cerr != nil {
		logrus.Warnln("failed closing session:", cerr)
	}
	switch {
	case errors.Is(err, ppmv.ErrTimeout):
		logrus.Infoln("closing", name+":", err)
	case errors.Is(err, ppmv.ErrQuit), errors.Is(err, context.Canceled):
		logrus.Debugln("closing", name+":", err)
	default:
		logrus.Errorln(err)
	}
}
