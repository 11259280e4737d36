package ppmv

import "github.com/chocolatkey/ppmv/pkg/source"

// Compose packs one pixel's channels into 0xRRGGBB.
//
// Piped input is rotated so the first channel lands in the low byte. Images
// named on the command line keep the natural order.
func Compose(c1, c2, c3 byte, provenance source.Provenance) uint32 {
	if provenance == source.Stdin {
		return uint32(c2)<<16 | uint32(c3)<<8 | uint32(c1)
	}
	return uint32(c1)<<16 | uint32(c2)<<8 | uint32(c3)
}
