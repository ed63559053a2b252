package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/yeeaiclub/fastpane"
	"golang.org/x/term"
)

const (
	enterAltScreen    = "\x1b[?1049h"
	exitAltScreen     = "\x1b[?1049l"
	enableBracketed   = "\x1b[?2004h"
	disableBracketed  = "\x1b[?2004l"
	escapeTimeout     = 50 * time.Millisecond
	defaultRows       = 24
	defaultCols       = 80
	stdinReadBufBytes = 1024
)

var ErrNotTerminal = errors.New("stdin is not a terminal")

// Process is the Screen of the controlling terminal: it draws through an
// ANSI encoder on stdout and decodes key presses from stdin.
type Process struct {
	*ANSI

	in  *os.File
	out *os.File

	mu       sync.Mutex
	started  bool
	oldState *term.State
	events   chan Event
	done     chan struct{}
	inputEOF chan struct{}
	sigCh    chan os.Signal
}

// NewProcess creates the stdin/stdout screen. The colour profile is taken
// from the environment unless an option overrides it.
func NewProcess(opts ...ANSIOption) *Process {
	opts = append([]ANSIOption{WithProfile(termenv.EnvColorProfile())}, opts...)
	return &Process{
		ANSI: NewANSI(os.Stdout, opts...),
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

func (p *Process) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}

	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	p.oldState = oldState

	if _, err := io.WriteString(p.out, enterAltScreen+"\x1b[2J\x1b[H"+enableBracketed); err != nil {
		_ = term.Restore(fd, oldState)
		return fmt.Errorf("enter alternate screen: %w", err)
	}

	p.events = make(chan Event, 64)
	p.done = make(chan struct{})
	p.inputEOF = make(chan struct{})
	p.sigCh = make(chan os.Signal, 1)
	signal.Notify(p.sigCh, syscall.SIGWINCH)

	go p.readStdin(p.done)
	go p.watchResize()

	p.started = true
	fastpane.Logger().Debug("terminal started", "size", p.Size())
	return nil
}

func (p *Process) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return nil
	}
	p.started = false

	signal.Stop(p.sigCh)
	close(p.done)

	_, werr := io.WriteString(p.out, disableBracketed+"\x1b[0m\x1b[?25h"+exitAltScreen)
	rerr := term.Restore(int(p.in.Fd()), p.oldState)
	fastpane.Logger().Debug("terminal stopped")
	return errors.Join(werr, rerr)
}

func (p *Process) Size() fastpane.Size {
	w, h, err := term.GetSize(int(p.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fastpane.Size{Rows: defaultRows, Cols: defaultCols}
	}
	return fastpane.Size{Rows: h, Cols: w}
}

func (p *Process) PollEvent() (Event, error) {
	p.mu.Lock()
	events, done, inputEOF := p.events, p.done, p.inputEOF
	p.mu.Unlock()
	if events == nil {
		return nil, io.EOF
	}

	select {
	case ev := <-events:
		return ev, nil
	case <-done:
		return nil, io.EOF
	case <-inputEOF:
		select {
		case ev := <-events:
			return ev, nil
		default:
			return nil, io.EOF
		}
	}
}

// readChunks forwards what in yields until a read fails or done closes.
// chunks is closed on return.
func readChunks(in io.Reader, chunks chan<- string, done <-chan struct{}) {
	defer close(chunks)
	buf := make([]byte, stdinReadBufBytes)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			select {
			case chunks <- string(buf[:n]):
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (p *Process) readStdin(done <-chan struct{}) {
	chunks := make(chan string)
	go readChunks(p.in, chunks, done)

	var pending string
	for {
		var timeout <-chan time.Time
		if pending != "" {
			timeout = time.After(escapeTimeout)
		}

		select {
		case <-done:
			return
		case chunk, ok := <-chunks:
			if !ok {
				close(p.inputEOF)
				return
			}
			var seqs []string
			seqs, pending = SplitSequences(pending + chunk)
			for _, seq := range seqs {
				p.dispatch(seq)
			}
		case <-timeout:
			// nothing completed the sequence; a lone ESC is the escape key
			p.dispatch(pending)
			pending = ""
		}
	}
}

func (p *Process) dispatch(seq string) {
	if text, ok := PasteText(seq); ok {
		p.send(PasteEvent{Text: text})
		return
	}
	if ev, ok := ParseKey(seq); ok {
		p.send(ev)
		return
	}
	fastpane.Logger().Debug("ignored input sequence", "seq", fmt.Sprintf("%q", seq))
}

func (p *Process) watchResize() {
	for {
		select {
		case <-p.done:
			return
		case <-p.sigCh:
			p.send(ResizeEvent{Size: p.Size()})
		}
	}
}

func (p *Process) send(ev Event) {
	select {
	case p.events <- ev:
	case <-p.done:
	}
}
