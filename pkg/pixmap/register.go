package pixmap

import (
	"image"
	"io"

	"github.com/chocolatkey/ppmv/pkg/protocol"
)

func init() {
	image.RegisterFormat("ppm", string(protocol.Magic), decodeImage, DecodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return img.RGBA(), nil
}
