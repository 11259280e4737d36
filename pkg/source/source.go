package source

import (
	"io"
	"os"

	"github.com/chocolatkey/ppmv/pkg/pixmap"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// StdinName selects standard input when given as a path.
const StdinName = "-"

// ErrOpen is returned when the input path cannot be opened.
var ErrOpen = errors.New("could not open file")

// Input is an opened image stream.
type Input struct {
	Name       string
	Provenance Provenance
	r          io.ReadCloser
}

// Open opens path for reading. An empty path or "-" selects standard input.
func Open(path string) (*Input, error) {
	if path == "" {
		return FromReader("stdin", Stdin, os.Stdin), nil
	}
	if path == StdinName {
		return FromReader(path, Stdin, os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrOpen, "%s: %v", path, err)
	}
	return FromReader(path, File, f), nil
}

// FromReader wraps an already opened stream. r is closed after decoding if it is an io.Closer.
func FromReader(name string, provenance Provenance, r io.Reader) *Input {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return &Input{
		Name:       name,
		Provenance: provenance,
		r:          rc,
	}
}

// Decode reads one pixel map from the input and closes it.
func (in *Input) Decode(d pixmap.Decoder) (*pixmap.Image, error) {
	defer func() {
		if err := in.r.Close(); err != nil {
			logrus.Debugln("closing input", in.Name, err)
		}
	}()
	logrus.WithFields(logrus.Fields{
		"input":      in.Name,
		"provenance": in.Provenance,
	}).Debugln("decoding")
	img, err := d.Decode(in.r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read ppm from "+in.Name)
	}
	return img, nil
}
