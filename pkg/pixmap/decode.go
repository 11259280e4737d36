package pixmap

import (
	"bufio"
	"bytes"
	"image"
	"image/color"
	"io"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/chocolatkey/ppmv/pkg/protocol"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Decoder reads binary pixel maps. The zero value is ready to use and decodes leniently.
type Decoder struct {
	// Strict fails with ErrTruncatedPayload instead of returning a short image.
	Strict bool
	// MaxPixels bounds width*height. Zero means protocol.DefaultMaxPixels.
	MaxPixels uint
}

type header struct {
	width, height uint
}

// Decode reads a pixel map from r with the default (lenient) Decoder.
func Decode(r io.Reader) (*Image, error) {
	var d Decoder
	return d.Decode(r)
}

// DecodeConfig reads only the header of a pixel map.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d Decoder
	h, err := d.readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      int(h.width),
		Height:     int(h.height),
	}, nil
}

// Decode reads the header and then the payload of a pixel map.
// In lenient mode a payload that ends early yields an Image holding exactly
// the bytes that were available.
func (d Decoder) Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	h, err := d.readHeader(br)
	if err != nil {
		return nil, err
	}
	logrus.Infof("width = %d, height = %d", h.width, h.height)

	img := &Image{
		Width:  h.width,
		Height: h.height,
	}
	buf := make([]byte, img.Len())

	// Skip one byte, should be whitespace
	if _, err := br.ReadByte(); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed reading header separator")
	}

	// A zero-length read counts as the end of the stream
	rd := 0
	for rd < len(buf) {
		rd1, err := br.Read(buf[rd:])
		rd += rd1
		if err == io.EOF || (rd1 == 0 && err == nil) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed reading payload")
		}
	}

	if rd < len(buf) {
		if d.Strict {
			return nil, errors.Wrapf(ErrTruncatedPayload, "got %d of %d bytes", rd, len(buf))
		}
		logrus.Warnf("payload ended early, got %d of %d bytes", rd, len(buf))
	}
	img.Pix = buf[:rd]
	return img, nil
}

func (d Decoder) readHeader(br *bufio.Reader) (header, error) {
	var h header

	// Fail if the white space following the magic is not '\n'
	line, err := readLine(br)
	if err != nil && err != io.EOF {
		return h, errors.Wrap(err, "failed reading magic")
	}
	if line == "" {
		return h, errors.Wrap(ErrTruncatedHeader, "empty stream")
	}
	if !bytes.Equal([]byte(line), protocol.Magic) {
		return h, errors.Wrapf(ErrFormat, "bad magic %q", line)
	}

	// Comment lines may follow the magic
	for {
		line, err = readLine(br)
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return h, errors.Wrap(ErrTruncatedHeader, "no dimensions")
			}
			return h, errors.Wrap(err, "failed reading header")
		}
		if line[0] != protocol.CommentMarker {
			break
		}
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return h, errors.Wrapf(ErrFormat, "bad dimensions %q", strings.TrimSpace(line))
	}
	width, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return h, errors.Wrapf(ErrFormat, "bad width %q", fields[0])
	}
	height, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return h, errors.Wrapf(ErrFormat, "bad height %q", fields[1])
	}
	if width == 0 || height == 0 {
		return h, errors.Wrapf(ErrFormat, "empty image %dx%d", width, height)
	}
	maxPixels := uint64(d.MaxPixels)
	if maxPixels == 0 {
		maxPixels = protocol.DefaultMaxPixels
	}
	if width*height > maxPixels {
		return h, errors.Wrapf(ErrUnsupportedFormat, "image %dx%d exceeds %d pixels", width, height, maxPixels)
	}
	if hi, lo := bits.Mul64(width*height, protocol.Channels); hi != 0 || lo > math.MaxInt {
		return h, errors.Wrapf(ErrUnsupportedFormat, "image %dx%d is too large to allocate", width, height)
	}

	depth, err := readToken(br)
	if err != nil {
		return h, err
	}
	if v, err := strconv.ParseUint(depth, 10, 64); err != nil || v != protocol.MaxValue {
		return h, errors.Wrapf(ErrUnsupportedFormat, "max value %s", depth)
	}

	h.width = uint(width)
	h.height = uint(height)
	return h, nil
}

// readLine reads up to and including the next '\n'. Lines longer than
// protocol.MaxHeaderLine are rejected before they are buffered in full.
// At the end of the stream the partial line is returned with io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		if sb.Len() == protocol.MaxHeaderLine {
			return "", errors.Wrapf(ErrFormat, "header line longer than %d bytes", protocol.MaxHeaderLine)
		}
		sb.WriteByte(c)
		if c == '\n' {
			return sb.String(), nil
		}
	}
}

// readToken skips whitespace and returns the run of digits that follows.
// The byte that ends the run is left unread.
func readToken(br *bufio.Reader) (string, error) {
	var c byte
	var err error
	for {
		c, err = br.ReadByte()
		if err == io.EOF {
			return "", errors.Wrap(ErrTruncatedHeader, "no max value")
		}
		if err != nil {
			return "", errors.Wrap(err, "failed reading max value")
		}
		if !isSpace(c) {
			break
		}
	}

	var sb strings.Builder
	for c >= '0' && c <= '9' {
		if sb.Len() == protocol.MaxHeaderLine {
			return "", errors.Wrapf(ErrFormat, "max value longer than %d digits", protocol.MaxHeaderLine)
		}
		sb.WriteByte(c)
		c, err = br.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed reading max value")
		}
	}
	br.UnreadByte()
	if sb.Len() == 0 {
		return "", errors.Wrapf(ErrFormat, "bad max value starting with %q", c)
	}
	return sb.String(), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
