package pixmap

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Encode writes img as a binary pixel map. Only the bytes present in Pix are written.
func Encode(w io.Writer, img *Image) error {
	b := bufio.NewWriterSize(w, 8192)
	_, err := fmt.Fprintf(b, "P6\n%d %d\n255\n", img.Width, img.Height)
	if err != nil {
		return errors.Wrap(err, "failed writing ppm header")
	}
	_, err = b.Write(img.Pix)
	if err != nil {
		return errors.Wrap(err, "failed writing ppm payload")
	}
	return errors.Wrap(b.Flush(), "failed flushing ppm")
}
