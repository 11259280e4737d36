package ppmv

import (
	"context"
	"sync"
	"time"

	"github.com/chocolatkey/ppmv/pkg/pixmap"
	"github.com/chocolatkey/ppmv/pkg/protocol"
	"github.com/chocolatkey/ppmv/pkg/source"
	"github.com/chocolatkey/ppmv/pkg/surface"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrTimeout ends a session whose TimeoutPolicy expired.
	ErrTimeout = errors.New("display time elapsed")
	// ErrQuit ends a session closed by the user.
	ErrQuit = errors.New("quit requested")
)

// Session owns the surface a decoded image is shown on, from acquisition
// until Close.
type Session struct {
	Timeout       TimeoutPolicy
	FrameInterval time.Duration
	Now           func() time.Time // Defaults to time.Now

	image      *pixmap.Image
	provenance source.Provenance
	surface    surface.Surface
	frames     uint64

	closeOnce sync.Once
	closeErr  error
}

// Open acquires a surface sized to img from factory.
func Open(img *pixmap.Image, provenance source.Provenance, factory surface.Factory, title string) (*Session, error) {
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, errors.New("no image to show")
	}
	surf, err := factory(title, int(img.Width), int(img.Height))
	if err != nil {
		return nil, errors.Wrap(err, "failed acquiring surface")
	}
	logrus.WithFields(logrus.Fields{
		"title":      title,
		"width":      img.Width,
		"height":     img.Height,
		"provenance": provenance,
	}).Debugln("surface acquired")

	return &Session{
		FrameInterval: protocol.DefaultFrameInterval,
		image:         img,
		provenance:    provenance,
		surface:       surf,
	}, nil
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Frames is the number of frames drawn so far.
func (s *Session) Frames() uint64 {
	return s.frames
}

// Run redraws the image until the timeout expires, the surface reports a
// quit, or ctx is cancelled. It never returns nil.
func (s *Session) Run(ctx context.Context) error {
	if s.Timeout.Enabled() && s.Timeout.Start.IsZero() {
		s.Timeout.Start = s.now()
	}

	var pace <-chan time.Time
	if s.FrameInterval > 0 {
		ticker := time.NewTicker(s.FrameInterval)
		defer ticker.Stop()
		pace = ticker.C
	}

	// Wakes a paced wait when the budget runs out between ticks.
	// Expired is strict, so fire just past the deadline.
	var deadline <-chan time.Time
	if pace != nil && s.Timeout.Enabled() {
		timer := time.NewTimer(s.Timeout.Start.Add(s.Timeout.Budget).Sub(s.now()) + time.Nanosecond)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		if err := s.checkpoint(ctx); err != nil {
			return err
		}
		s.drawFrame()
		if err := s.surface.Show(); err != nil {
			return errors.Wrap(err, "failed presenting frame")
		}
		s.frames++

		if pace != nil {
			select {
			case <-pace:
			case <-deadline:
			case <-ctx.Done():
			case <-s.surface.Done():
			}
		}
	}
}

// checkpoint is the only place a running session can be stopped.
func (s *Session) checkpoint(ctx context.Context) error {
	if s.Timeout.Expired(s.now()) {
		return ErrTimeout
	}
	select {
	case <-s.surface.Done():
		return ErrQuit
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (s *Session) drawFrame() {
	pix := s.image.Pix
	width := int(s.image.Width)
	// Bounded by the payload actually read, which may be short
	for x := 0; x+2 < len(pix); x += 3 {
		color := Compose(pix[x], pix[x+1], pix[x+2], s.provenance)
		i := (x / 3) % width
		j := (x / 3) / width
		s.surface.SetPixel(i, j, color)
	}
}

// Close releases the surface. Only the first call has any effect.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.surface.Close()
		logrus.Debugln("closed session after", s.frames, "frames")
	})
	return s.closeErr
}
