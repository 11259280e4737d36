package ppmv

import (
	"testing"

	"github.com/chocolatkey/ppmv/pkg/source"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		provenance source.Provenance
		c1, c2, c3 byte
		want       uint32
	}{
		{source.Stdin, 10, 20, 30, 0x1e0a14},
		{source.File, 10, 20, 30, 0x0a141e},
		{source.Stdin, 0xff, 0, 0, 0x0000ff},
		{source.File, 0xff, 0, 0, 0xff0000},
		{source.Stdin, 0, 0, 0, 0},
		{source.File, 0xff, 0xff, 0xff, 0xffffff},
	}
	for _, tt := range tests {
		if got := Compose(tt.c1, tt.c2, tt.c3, tt.provenance); got != tt.want {
			t.Errorf("%v (%d,%d,%d): got %06x, want %06x", tt.provenance, tt.c1, tt.c2, tt.c3, got, tt.want)
		}
	}
}
