package pixmap

import (
	"image"
	"image/color"

	"github.com/chocolatkey/ppmv/pkg/protocol"
)

// Image is a decoded pixel map: row-major RGB triples, row 0 first, no padding.
//
// Pix normally holds exactly 3*Width*Height bytes. A leniently decoded image
// whose source ran dry holds only the bytes that were available, so consumers
// must bound their reads by len(Pix).
type Image struct {
	Width  uint
	Height uint
	Pix    []byte
}

// Len is the payload size implied by the dimensions.
func (m *Image) Len() int {
	return int(m.Width) * int(m.Height) * protocol.Channels
}

// Complete reports whether the payload holds every pixel.
func (m *Image) Complete() bool {
	return len(m.Pix) == m.Len()
}

// Pixels is the number of whole pixels actually present in Pix.
func (m *Image) Pixels() int {
	return len(m.Pix) / protocol.Channels
}

// RGBA converts the pixel map to a standard image. Missing pixels stay transparent.
func (m *Image) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(m.Width), int(m.Height)))
	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if i+2 >= len(m.Pix) {
				return img
			}
			img.SetRGBA(x, y, color.RGBA{
				R: m.Pix[i],
				G: m.Pix[i+1],
				B: m.Pix[i+2],
				A: 255,
			})
			i += 3
		}
	}
	return img
}
