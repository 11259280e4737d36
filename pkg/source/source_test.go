package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chocolatkey/ppmv/pkg/pixmap"
	"github.com/pkg/errors"
)

type closeTracker struct {
	*bytes.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestOpenStdin(t *testing.T) {
	tests := []struct {
		path string
		name string
	}{
		{"", "stdin"},
		{"-", "-"},
	}
	for _, tt := range tests {
		in, err := Open(tt.path)
		if err != nil {
			t.Fatal(err)
		}
		if in.Provenance != Stdin {
			t.Errorf("%q: provenance %v, want stdin", tt.path, in.Provenance)
		}
		if in.Name != tt.name {
			t.Errorf("%q: name %q, want %q", tt.path, in.Name, tt.name)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.ppm")
	if err := os.WriteFile(path, []byte("P6\n1 1\n255\n\x0a\x14\x1e"), 0o644); err != nil {
		t.Fatal(err)
	}
	in, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if in.Provenance != File {
		t.Errorf("provenance %v, want file", in.Provenance)
	}
	img, err := in.Decode(pixmap.Decoder{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Pix, []byte{10, 20, 30}) {
		t.Errorf("got %v", img.Pix)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.ppm"))
	if !errors.Is(err, ErrOpen) {
		t.Errorf("got %v, want ErrOpen", err)
	}
}

func TestDecodeClosesInput(t *testing.T) {
	r := &closeTracker{Reader: bytes.NewReader([]byte("P6\n1 1\n255\n\x00\x00\x00"))}
	in := FromReader("test", File, r)
	if _, err := in.Decode(pixmap.Decoder{}); err != nil {
		t.Fatal(err)
	}
	if !r.closed {
		t.Error("input not closed after decode")
	}
}

func TestDecodeErrorNamesInput(t *testing.T) {
	in := FromReader("broken", Stdin, strings.NewReader("P6 \n"))
	_, err := in.Decode(pixmap.Decoder{})
	if !errors.Is(err, pixmap.ErrFormat) {
		t.Errorf("got %v, want ErrFormat", err)
	}
	if !strings.Contains(err.Error(), "failed to read ppm from broken") {
		t.Errorf("message %q does not name the input", err.Error())
	}
}
