package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"
)

func (v *Viewer) handleEvent() error {
	xev, err := v.xc.WaitForEvent()
	if err != nil {
		return err
	}
	if xev == nil {
		return errorClosed
	}
	switch e := xev.(type) {
	case xproto.ExposeEvent:
		return v.handleExposeEvent(e)
	case xproto.KeyPressEvent:
		return v.handleKeyPressEvent(e)
	case xproto.ClientMessageEvent:
		return v.handleClientMessageEvent(e)
	case xproto.DestroyNotifyEvent:
		return errorQuit
	}
	return nil
}

func (v *Viewer) handleExposeEvent(e xproto.ExposeEvent) error {
	// Only repaint once the last pending expose has arrived.
	if e.Count > 0 {
		return nil
	}
	return v.redraw()
}

func (v *Viewer) handleKeyPressEvent(key xproto.KeyPressEvent) error {
	g := v.grabFor(key.Detail)
	if g == nil {
		v.log.Debug("unbound key", zap.Uint8("code", uint8(key.Detail)))
		return nil
	}
	return g.callback()
}

func (v *Viewer) handleClientMessageEvent(e xproto.ClientMessageEvent) error {
	if e.Type != atomWMProtocols || e.Format != 32 {
		return nil
	}
	if decodeAtom(e.Data.Bytes()) == atomWMDeleteWindow {
		return errorQuit
	}
	return nil
}
