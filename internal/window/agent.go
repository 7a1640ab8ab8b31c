package window

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Target is the window driven by the overlay child process
type Target interface {
	Show() error
	Hide() error
	Focus() error
	ApplyTransparency() error
	Close() error
}

// Serve runs the child side of the overlay protocol: it announces readiness,
// then executes commands read from in until "close" or until the parent goes
// away, in which case the window is closed too.
func Serve(in io.Reader, out io.Writer, target Target, log *logrus.Entry) error {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if err := reply(out, replyReady, ""); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		if cmd == cmdClose {
			// Answer first: closing tears the process down.
			if err := reply(out, replyOK, ""); err != nil {
				log.WithError(err).Warn("Failed to acknowledge close")
			}
			return target.Close()
		}

		err := dispatch(cmd, target)
		if err != nil {
			log.WithError(err).WithField("command", cmd).Warn("Overlay command failed")
			err = reply(out, replyErr, err.Error())
		} else {
			err = reply(out, replyOK, "")
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Warn("Lost connection to parent process")
	}

	log.Info("Parent process went away, closing overlay")
	return target.Close()
}

func dispatch(cmd string, target Target) error {
	switch cmd {
	case cmdShow:
		return target.Show()
	case cmdHide:
		return target.Hide()
	case cmdFocus:
		return target.Focus()
	case cmdTransparent:
		return target.ApplyTransparency()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func reply(out io.Writer, status, msg string) error {
	line := replyPrefix + status
	if msg != "" {
		// Replies are single lines
		line += " " + strings.ReplaceAll(msg, "\n", " ")
	}
	_, err := io.WriteString(out, line+"\n")
	return err
}
