package surface

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// upperHalf packs two pixel rows into one cell: the foreground paints the
// top row and the background the bottom one.
const upperHalf = '▀'

// Terminal renders into a true-color terminal through tcell.
// q, Esc and Ctrl-C close Done.
type Terminal struct {
	screen tcell.Screen
	width  int
	height int
	fb     []uint32

	done      chan struct{}
	quitOnce  sync.Once
	closeOnce sync.Once
	polling   sync.WaitGroup
}

// NewTerminalFactory returns a factory using screens from newScreen.
// A nil newScreen means tcell.NewScreen.
func NewTerminalFactory(newScreen func() (tcell.Screen, error)) Factory {
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	return func(title string, width, height int) (Surface, error) {
		if err := validSize(width, height); err != nil {
			return nil, err
		}
		screen, err := newScreen()
		if err != nil {
			return nil, errors.Wrap(err, "failed creating terminal screen")
		}
		return NewTerminal(screen, title, width, height)
	}
}

// NewTerminal initializes screen and starts watching it for quit keys.
func NewTerminal(screen tcell.Screen, title string, width, height int) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed initializing terminal screen")
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.NewHexColor(int32(Background))).
		Foreground(tcell.NewHexColor(int32(Foreground))))
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		width:  width,
		height: height,
		fb:     make([]uint32, width*height),
		done:   make(chan struct{}),
	}
	for i := range t.fb {
		t.fb[i] = Background
	}
	if cols, rows := screen.Size(); cols < width || rows*2 < height {
		logrus.Warnf("terminal is %dx%d cells, %s needs %dx%d; the image will be clipped", cols, rows, title, width, (height+1)/2)
	}

	t.polling.Add(1)
	go t.poll()
	return t, t.Show()
}

func (t *Terminal) poll() {
	defer t.polling.Done()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				logrus.Debugln("quit key pressed")
				t.quitOnce.Do(func() { close(t.done) })
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Terminal) SetPixel(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.fb[y*t.width+x] = rgb
}

func (t *Terminal) Show() error {
	for y := 0; y < t.height; y += 2 {
		for x := 0; x < t.width; x++ {
			top := t.fb[y*t.width+x]
			bottom := Background
			if y+1 < t.height {
				bottom = t.fb[(y+1)*t.width+x]
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewHexColor(int32(top))).
				Background(tcell.NewHexColor(int32(bottom)))
			t.screen.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.screen.Fini()
		t.polling.Wait()
	})
	return nil
}
