package main

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Keysyms used by the viewer, from X11/keysymdef.h.
const (
	XK_space  xproto.Keysym = 0x0020
	XK_n      xproto.Keysym = 0x006e
	XK_q      xproto.Keysym = 0x0071
	XK_Right  xproto.Keysym = 0xff53
	XK_Escape xproto.Keysym = 0xff1b
)

// Grab represents a key binding and its callback
type Grab struct {
	sym      xproto.Keysym
	codes    []xproto.Keycode
	callback func() error
}

func (v *Viewer) getGrabs() []*Grab {
	return []*Grab{
		{sym: XK_q, callback: func() error { return errorQuit }},
		{sym: XK_Escape, callback: func() error { return errorQuit }},
		{sym: XK_n, callback: v.advance},
		{sym: XK_space, callback: v.advance},
		{sym: XK_Right, callback: v.advance},
	}
}

// initKeys loads the keyboard mapping and resolves every binding to
// the keycodes that produce its keysym.
func (v *Viewer) initKeys() error {
	setup := xproto.Setup(v.xc)
	lo, hi := setup.MinKeycode, setup.MaxKeycode
	reply, err := xproto.GetKeyboardMapping(v.xc, lo, byte(hi-lo+1)).Reply()
	if err != nil {
		return err
	}
	if reply == nil {
		return fmt.Errorf("could not load keyboard map")
	}

	per := int(reply.KeysymsPerKeycode)
	v.keymap = make(map[xproto.Keycode][]xproto.Keysym)
	for i := 0; i <= int(hi-lo); i++ {
		v.keymap[lo+xproto.Keycode(i)] = reply.Keysyms[i*per : (i+1)*per]
	}

	v.grabs = v.getGrabs()
	for code, syms := range v.keymap {
		for _, sym := range syms {
			for _, g := range v.grabs {
				if g.sym == sym {
					g.codes = append(g.codes, code)
				}
			}
		}
	}
	return nil
}

// grabFor returns the binding triggered by code, or nil.
func (v *Viewer) grabFor(code xproto.Keycode) *Grab {
	for _, g := range v.grabs {
		for _, c := range g.codes {
			if c == code {
				return g
			}
		}
	}
	return nil
}
