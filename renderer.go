package fastpane

import (
	"fmt"
	"time"
)

// Renderer drives frames: it draws the whole layout tree into a backend and
// submits the result with exactly one flush, so a frame appears at once.
type Renderer struct {
	out           Backend
	state         renderState
	cursor        Point
	clearOnResize bool
	crashLogPath  string
}

type Option func(*Renderer)

// WithClearOnResize controls whether the first frame and every frame after a
// size change start by clearing the screen. It is on by default. Frames after
// Invalidate or an aborted frame clear either way.
func WithClearOnResize(enabled bool) Option {
	return func(r *Renderer) {
		r.clearOnResize = enabled
	}
}

// WithCrashLog makes the renderer write a report to path when a frame is
// aborted by a backend fault.
func WithCrashLog(path string) Option {
	return func(r *Renderer) {
		r.crashLogPath = path
	}
}

func NewRenderer(out Backend, opts ...Option) *Renderer {
	r := &Renderer{
		out:           out,
		clearOnResize: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws a frame starting from the cursor the previous frame left.
func (r *Renderer) Render(root Node, size Size) error {
	return r.RenderFrame(root, r.cursor, size)
}

// RenderFrame draws root at the origin with the full terminal size. The
// cursor argument is where the terminal cursor currently is. If any command
// fails the frame is abandoned without a flush and the error is returned.
func (r *Renderer) RenderFrame(root Node, cursor Point, size Size) error {
	frame := r.state.frames + 1
	if root == nil {
		return fmt.Errorf("render frame %d: %w", frame, ErrNilNode)
	}

	start := time.Now()
	cleared := r.state.needsClear(size, r.clearOnResize)
	err := r.draw(root, &cursor, size, cleared)
	if err != nil {
		r.abort(frame, size, cursor, root, err)
		return fmt.Errorf("render frame %d: %w", frame, err)
	}

	r.cursor = cursor
	r.state.updateAfterRender(size, cleared)
	logger.Debug("frame rendered", "frame", frame, "size", size, "cursor", cursor,
		"full", cleared, "elapsed", time.Since(start))
	return nil
}

func (r *Renderer) draw(root Node, cursor *Point, size Size, clear bool) error {
	if clear {
		if err := r.out.ClearScreen(); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
		*cursor = Point{}
	}
	if err := root.Draw(r.out, cursor, Point{}, size); err != nil {
		return err
	}
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func (r *Renderer) abort(frame int, size Size, cursor Point, root Node, cause error) {
	if d, ok := r.out.(Discarder); ok {
		d.Discard()
	}
	r.state.invalidate()
	logger.Error("frame aborted", "frame", frame, "size", size, "err", cause)

	if r.crashLogPath == "" {
		return
	}
	report := formatCrashLog(frame, size, cursor, cause, Placements(root, size))
	if err := writeCrashLog(r.crashLogPath, report); err != nil {
		logger.Warn("write crash log", "path", r.crashLogPath, "err", err)
	}
}

// Frames is the number of frames flushed so far.
func (r *Renderer) Frames() int {
	return r.state.frames
}

// FullRedraws is the number of frames that started by clearing the screen.
func (r *Renderer) FullRedraws() int {
	return r.state.fullRedrawCount
}

// Cursor is where the last flushed frame left the terminal cursor.
func (r *Renderer) Cursor() Point {
	return r.cursor
}

// Invalidate makes the next frame clear the screen before drawing.
func (r *Renderer) Invalidate() {
	r.state.invalidate()
}
