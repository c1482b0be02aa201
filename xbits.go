package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// ICCCM related atoms
var (
	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom
)

func (v *Viewer) initAtoms() (err error) {
	if atomWMProtocols, err = getAtom(v.xc, "WM_PROTOCOLS"); err != nil {
		return err
	}
	atomWMDeleteWindow, err = getAtom(v.xc, "WM_DELETE_WINDOW")
	return err
}

func getAtom(xc *xgb.Conn, name string) (xproto.Atom, error) {
	rply, err := xproto.InternAtom(xc, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	if rply == nil {
		return 0, nil
	}
	return rply.Atom, nil
}

// encodeAtom encodes an xproto.Atom as a 32-bit property value.
func encodeAtom(a xproto.Atom) []byte {
	return []byte{byte(a), byte(a >> 8), byte(a >> 16), byte(a >> 24)}
}

// decodeAtom decodes an xproto.Atom from a property value (expressed
// as bytes). Note that v has to be at least 4 bytes long.
func decodeAtom(v []byte) xproto.Atom {
	return xproto.Atom(uint32(v[0]) | uint32(v[1])<<8 |
		uint32(v[2])<<16 | uint32(v[3])<<24)
}
