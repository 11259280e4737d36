package surface

import (
	"image"
	"image/color"
	"os"

	"github.com/chocolatkey/ppmv/pkg/protocol"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
)

// BMP draws off-screen and writes the last presented frame to a file when closed.
type BMP struct {
	path   string
	back   *image.RGBA
	front  *image.RGBA
	closed bool
}

// NewBMPFactory returns a factory writing snapshots to path.
// An empty path means protocol.DefaultSnapshotPath.
func NewBMPFactory(path string) Factory {
	if path == "" {
		path = protocol.DefaultSnapshotPath
	}
	return func(title string, width, height int) (Surface, error) {
		if err := validSize(width, height); err != nil {
			return nil, err
		}
		logrus.Debugln("bmp surface for", title, "writes to", path)
		return NewBMP(path, width, height), nil
	}
}

func NewBMP(path string, width, height int) *BMP {
	s := &BMP{
		path:  path,
		back:  image.NewRGBA(image.Rect(0, 0, width, height)),
		front: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	bg := unpack(Background)
	for i := 0; i < len(s.back.Pix); i += 4 {
		s.back.Pix[i], s.back.Pix[i+1], s.back.Pix[i+2], s.back.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	copy(s.front.Pix, s.back.Pix)
	return s
}

func (s *BMP) SetPixel(x, y int, rgb uint32) {
	// SetRGBA ignores points outside the bounds
	s.back.SetRGBA(x, y, unpack(rgb))
}

func (s *BMP) Show() error {
	copy(s.front.Pix, s.back.Pix)
	return nil
}

func (s *BMP) Done() <-chan struct{} {
	return nil
}

// Frame is the last presented frame.
func (s *BMP) Frame() *image.RGBA {
	return s.front
}

func (s *BMP) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrap(err, "failed creating snapshot")
	}
	if err = bmp.Encode(f, s.front); err != nil {
		f.Close()
		return errors.Wrap(err, "failed encoding snapshot")
	}
	logrus.Infoln("wrote snapshot", s.path)
	return errors.Wrap(f.Close(), "failed closing snapshot")
}

func unpack(rgb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}
