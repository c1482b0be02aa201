package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/intio/aoc-grid/puzzle"
)

type frameHandler func(context.Context, *websocket.Conn, puzzle.ID, puzzle.Puzzle)

func (as *APIServer) makeWSHandler(handler frameHandler) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, p, err := puzzleFromRequest(r)
		if err != nil {
			as.jsonResponse(w, r, http.StatusNotFound, nil)
			return
		}
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			as.log.Warn("connect error", zap.Error(err))
			return
		}
		log := as.log.With(zap.String("remote", r.RemoteAddr))
		log.Info("connect", zap.String("path", r.URL.Path))
		defer log.Info("disconnect")
		defer c.Close(websocket.StatusInternalError, "")
		handler(r.Context(), c, id, p)
	}
}

// streamFrames reads the puzzle input as the first message, then writes
// one JSON object per simulation frame and closes the connection.
func (as *APIServer) streamFrames(ctx context.Context, c *websocket.Conn, id puzzle.ID, p puzzle.Puzzle) {
	a, ok := p.(puzzle.Animator)
	if !ok {
		c.Close(websocket.StatusPolicyViolation, id.String()+" has no frames")
		return
	}
	c.SetReadLimit(maxInputBytes)
	t, input, err := c.Read(ctx)
	if err != nil {
		as.log.Debug("read input", zap.Error(err))
		return
	}
	if t != websocket.MessageText {
		c.Close(websocket.StatusUnsupportedData, "input must be text")
		return
	}
	frames, err := a.Frames(input)
	if err != nil {
		c.Close(websocket.StatusInvalidFramePayloadData, closeReason(err))
		return
	}

	n := 0
	defer func() {
		framesStreamed.WithLabelValues(id.String()).Add(float64(n))
	}()
	for f := range frames {
		if as.frameLimit > 0 && n >= as.frameLimit {
			break
		}
		if err := wsjson.Write(ctx, c, f); err != nil {
			as.log.Debug("write frame", zap.Int("step", f.Step), zap.Error(err))
			return
		}
		n++
	}
	c.Close(websocket.StatusNormalClosure, "")
}

// closeReason trims err to fit a close frame.
func closeReason(err error) string {
	const maxReason = 123
	s := err.Error()
	if len(s) > maxReason {
		s = s[:maxReason]
	}
	return s
}
