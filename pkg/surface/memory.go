package surface

// Memory records drawing in a plain framebuffer. It never asks to quit.
type Memory struct {
	Width  int
	Height int
	Pix    []uint32 // row-major 0xRRGGBB

	Draws  int // SetPixel calls, including clipped ones
	Frames int // Show calls
	Closed bool

	// OnDraw, if set, runs after each SetPixel.
	OnDraw func(x, y int, rgb uint32)
}

func NewMemory(width, height int) *Memory {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m := &Memory{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
	for i := range m.Pix {
		m.Pix[i] = Background
	}
	return m
}

func (m *Memory) SetPixel(x, y int, rgb uint32) {
	m.Draws++
	if x >= 0 && y >= 0 && x < m.Width && y < m.Height {
		m.Pix[y*m.Width+x] = rgb
	}
	if m.OnDraw != nil {
		m.OnDraw(x, y, rgb)
	}
}

// At returns the color at (x, y), or Background outside the surface.
func (m *Memory) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return Background
	}
	return m.Pix[y*m.Width+x]
}

func (m *Memory) Show() error {
	m.Frames++
	return nil
}

func (m *Memory) Done() <-chan struct{} {
	return nil
}

func (m *Memory) Close() error {
	m.Closed = true
	return nil
}
