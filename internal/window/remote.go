package window

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrWindowClosed is returned for commands sent after Close
var ErrWindowClosed = errors.New("overlay window is closed")

// ChildError is a failure reported by the overlay process itself
type ChildError struct {
	Command string
	Message string
}

func (e *ChildError) Error() string {
	return fmt.Sprintf("overlay process: %s: %s", e.Command, e.Message)
}

// process is the lifecycle of the child behind a Remote
type process struct {
	wait func() error
	kill func() error
}

// Remote is an overlay window living in a child process
type Remote struct {
	mu     sync.Mutex
	in     io.WriteCloser
	out    *bufio.Reader
	proc   process
	log    *logrus.Entry
	closed bool
}

// newRemote waits for the child's ready line and returns a handle to its window
func newRemote(out io.Reader, in io.WriteCloser, proc process, log *logrus.Entry) (*Remote, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	r := &Remote{
		in:   in,
		out:  bufio.NewReader(out),
		proc: proc,
		log:  log,
	}

	status, _, err := r.readReply()
	if err != nil {
		return nil, err
	}
	if status != replyReady {
		return nil, fmt.Errorf("unexpected handshake %q", status)
	}
	return r, nil
}

// Show shows the window
func (r *Remote) Show() error { return r.call(cmdShow) }

// Hide hides the window without destroying it
func (r *Remote) Hide() error { return r.call(cmdHide) }

// Focus brings the window to the front
func (r *Remote) Focus() error { return r.call(cmdFocus) }

// ApplyTransparency runs the native transparency routine in the child
func (r *Remote) ApplyTransparency() error { return r.call(cmdTransparent) }

// Close destroys the window and waits for the child to exit. A child that can
// no longer be reached counts as closed and is killed.
func (r *Remote) Close() error {
	err := r.call(cmdClose)
	if errors.Is(err, ErrWindowClosed) {
		return nil
	}
	var reported *ChildError
	if errors.As(err, &reported) {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	_ = r.in.Close()

	if err != nil {
		r.log.WithError(err).Warn("Overlay process unreachable, killing it")
		if r.proc.kill != nil {
			_ = r.proc.kill()
		}
	}
	if r.proc.wait != nil {
		if werr := r.proc.wait(); werr != nil {
			r.log.WithError(werr).Debug("Overlay process exited with error")
		}
	}
	return nil
}

func (r *Remote) call(cmd string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrWindowClosed
	}

	if _, err := io.WriteString(r.in, cmd+"\n"); err != nil {
		return fmt.Errorf("send %s: %w", cmd, err)
	}

	status, msg, err := r.readReply()
	if err != nil {
		return fmt.Errorf("await %s: %w", cmd, err)
	}
	switch status {
	case replyOK:
		return nil
	case replyErr:
		return &ChildError{Command: cmd, Message: msg}
	default:
		return fmt.Errorf("unexpected reply %q to %s", status, cmd)
	}
}

// readReply skips unprefixed output and splits the next reply into status and message
func (r *Remote) readReply() (string, string, error) {
	for {
		line, err := r.out.ReadString('\n')
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			if rest, ok := strings.CutPrefix(line, replyPrefix); ok {
				status, msg, _ := strings.Cut(rest, " ")
				return status, msg, nil
			}
			r.log.WithField("output", line).Debug("Overlay process output")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", "", io.ErrUnexpectedEOF
			}
			return "", "", err
		}
	}
}
