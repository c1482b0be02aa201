package main

import (
	"errors"
	"fmt"
	"iter"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"

	"github.com/intio/aoc-grid/puzzle"
)

var (
	errorQuit   = errors.New("Quit")
	errorClosed = errors.New("X connection closed")
)

// Viewer shows a puzzle's frames in an X11 window, one at a time.
type Viewer struct {
	xc     *xgb.Conn
	xroot  *xproto.ScreenInfo
	window xproto.Window
	log    *zap.Logger

	painter *Painter
	grabs   []*Grab
	keymap  map[xproto.Keycode][]xproto.Keysym

	id    puzzle.ID
	next  func() (puzzle.Frame, bool)
	stop  func()
	frame puzzle.Frame
	done  bool
}

// NewViewer prepares a Viewer over frames. Nothing touches the display
// until Init.
func NewViewer(log *zap.Logger, id puzzle.ID, frames iter.Seq[puzzle.Frame]) *Viewer {
	next, stop := iter.Pull(frames)
	return &Viewer{
		log:  log,
		id:   id,
		next: next,
		stop: stop,
	}
}

// Init connects to the X server and maps the viewer window, sized to
// the first frame.
func (v *Viewer) Init() error {
	frame, ok := v.next()
	if !ok {
		return fmt.Errorf("%v: no frames", v.id)
	}
	v.frame = frame

	xc, err := xgb.NewConn()
	if err != nil {
		return err
	}
	v.xc = xc
	v.xroot = xproto.Setup(xc).DefaultScreen(xc)

	if err := v.initAtoms(); err != nil {
		return err
	}
	if v.window, err = xproto.NewWindowId(xc); err != nil {
		return err
	}
	w, h := frameSize(frame)
	if err := xproto.CreateWindowChecked(
		xc,
		v.xroot.RootDepth,
		v.window,
		v.xroot.Root,
		0, 0, w, h,
		0,
		xproto.WindowClassInputOutput,
		v.xroot.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			v.xroot.BlackPixel,
			xproto.EventMaskExposure |
				xproto.EventMaskKeyPress |
				xproto.EventMaskStructureNotify,
		},
	).Check(); err != nil {
		return err
	}
	// Ask for a ClientMessage instead of being killed on close.
	if err := xproto.ChangePropertyChecked(
		xc,
		xproto.PropModeReplace,
		v.window,
		atomWMProtocols,
		xproto.AtomAtom,
		32,
		1,
		encodeAtom(atomWMDeleteWindow),
	).Check(); err != nil {
		return err
	}

	v.painter = NewPainter(xc)
	if err := v.painter.Init(v); err != nil {
		return err
	}
	if err := v.initKeys(); err != nil {
		return err
	}
	if err := v.setTitle(); err != nil {
		return err
	}
	return xproto.MapWindowChecked(xc, v.window).Check()
}

// Deinit releases the frame source and the X connection.
func (v *Viewer) Deinit() {
	v.stop()
	if v.xc != nil {
		v.xc.Close()
	}
}

// Run handles events until the window is closed.
func (v *Viewer) Run() error {
	for {
		err := v.handleEvent()
		switch err {
		case errorQuit:
			return nil
		case errorClosed:
			return err
		case nil:
		default:
			v.log.Warn("event", zap.Error(err))
		}
	}
}

// advance moves to the next frame, if any.
func (v *Viewer) advance() error {
	if v.done {
		return nil
	}
	frame, ok := v.next()
	if !ok {
		v.done = true
		v.log.Info("last frame", zap.Int("step", v.frame.Step))
		return v.setTitle()
	}
	v.frame = frame
	if err := v.setTitle(); err != nil {
		return err
	}
	return v.redraw()
}

func (v *Viewer) redraw() error {
	w, h := frameSize(v.frame)
	if err := xproto.ClearAreaChecked(v.xc, false, v.window, 0, 0, w, h).Check(); err != nil {
		return err
	}
	return v.painter.DrawFrame(xproto.Drawable(v.window), v.frame)
}

func (v *Viewer) setTitle() error {
	title := fmt.Sprintf("%v step %d", v.id, v.frame.Step)
	if v.done {
		title += " (end)"
	}
	return xproto.ChangePropertyChecked(
		v.xc,
		xproto.PropModeReplace,
		v.window,
		xproto.AtomWmName,
		xproto.AtomString,
		8,
		uint32(len(title)),
		[]byte(title),
	).Check()
}
