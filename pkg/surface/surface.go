// Package surface is the display collaborator the renderer draws into.
package surface

import (
	"sort"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/pkg/errors"
)

// Default colors registered on every new surface.
const (
	Background uint32 = 0xffffff
	Foreground uint32 = 0x000000
)

// Surface is a drawable of fixed size. Colors are packed 0xRRGGBB.
type Surface interface {
	// SetPixel draws a single point. Points outside the surface are ignored.
	SetPixel(x, y int, rgb uint32)
	// Show presents everything drawn since the last call.
	Show() error
	// Done is closed when the user asks to quit. Surfaces without input return nil.
	Done() <-chan struct{}
	// Close releases the surface. Calling it more than once is a no-op.
	Close() error
}

// Factory acquires a visible surface of the given size.
type Factory func(title string, width, height int) (Surface, error)

var drivers = cmap.New[Factory]()

func init() {
	Register("terminal", NewTerminalFactory(nil))
	Register("bmp", NewBMPFactory(""))
	Register("memory", func(title string, width, height int) (Surface, error) {
		if err := validSize(width, height); err != nil {
			return nil, err
		}
		return NewMemory(width, height), nil
	})
}

// Register makes a driver available by name, replacing any previous one.
func Register(name string, f Factory) {
	drivers.Set(name, f)
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := drivers.Get(name)
	if !ok {
		return nil, errors.Errorf("unknown surface driver %q (have %s)", name, strings.Join(Drivers(), ", "))
	}
	return f, nil
}

// Drivers lists registered driver names in order.
func Drivers() []string {
	names := drivers.Keys()
	sort.Strings(names)
	return names
}

func validSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid surface size %dx%d", width, height)
	}
	return nil
}
