package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	spin "github.com/tj/go-spin"
)

// CLILogger renders command progress for a human at a terminal. Spinners
// only animate when stdout is a tty; piped output gets plain lines.
type CLILogger struct {
	w             io.Writer
	spinnerStopCh chan bool
	spinnerMsg    string
	spinnerArgs   []interface{}
	isSilent      bool
	isVerbose     bool
}

func NewCLILogger(w io.Writer) *CLILogger {
	return &CLILogger{w: w}
}

func (l *CLILogger) Silence() {
	if l == nil {
		return
	}
	l.isSilent = true
}

func (l *CLILogger) Verbose() {
	if l == nil {
		return
	}
	l.isVerbose = true
}

func (l *CLILogger) Initialize() {
	if l == nil || l.isSilent {
		return
	}

	fmt.Fprintln(l.w, "")
}

func (l *CLILogger) Finish() {
	if l == nil || l.isSilent {
		return
	}

	fmt.Fprintln(l.w, "")
}

func (l *CLILogger) Debug(msg string, args ...interface{}) {
	if l == nil || l.isSilent || !l.isVerbose {
		return
	}

	fmt.Fprintf(l.w, "    ")
	fmt.Fprintln(l.w, fmt.Sprintf(msg, args...))
}

func (l *CLILogger) Info(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	fmt.Fprintf(l.w, "    ")
	fmt.Fprintln(l.w, fmt.Sprintf(msg, args...))
}

func (l *CLILogger) ActionWithoutSpinner(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	if msg == "" {
		fmt.Fprintln(l.w, "")
		return
	}

	fmt.Fprintf(l.w, "  • ")
	fmt.Fprintln(l.w, fmt.Sprintf(msg, args...))
}

func (l *CLILogger) ActionWithSpinner(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	fmt.Fprintf(l.w, "  • ")
	fmt.Fprintf(l.w, msg, args...)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		s := spin.New()

		fmt.Fprintf(l.w, " %s", s.Next())

		l.spinnerStopCh = make(chan bool)
		l.spinnerMsg = msg
		l.spinnerArgs = args

		go func() {
			for {
				select {
				case <-l.spinnerStopCh:
					return
				case <-time.After(time.Millisecond * 100):
					fmt.Fprintf(l.w, "\r")
					fmt.Fprintf(l.w, "  • ")
					fmt.Fprintf(l.w, msg, args...)
					fmt.Fprintf(l.w, " %s", s.Next())
				}
			}
		}()
	}
}

func (l *CLILogger) FinishSpinner() {
	l.finishSpinner(color.New(color.FgHiGreen), "✓")
}

func (l *CLILogger) FinishSpinnerWithError() {
	l.finishSpinner(color.New(color.FgHiRed), "✗")
}

func (l *CLILogger) finishSpinner(c *color.Color, mark string) {
	if l == nil || l.isSilent {
		return
	}

	fmt.Fprintf(l.w, "\r")
	fmt.Fprintf(l.w, "  • ")
	fmt.Fprintf(l.w, l.spinnerMsg, l.spinnerArgs...)
	c.Fprintf(l.w, " %s", mark)
	fmt.Fprintf(l.w, "  \n")

	if isatty.IsTerminal(os.Stdout.Fd()) {
		l.spinnerStopCh <- true
		close(l.spinnerStopCh)
	}
}

func (l *CLILogger) Success(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	c := color.New(color.FgHiGreen)
	c.Fprintf(l.w, "  • ")
	c.Fprintln(l.w, fmt.Sprintf(msg, args...))
}

func (l *CLILogger) Warning(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	c := color.New(color.FgYellow)
	c.Fprintf(l.w, "  • ")
	c.Fprintln(l.w, fmt.Sprintf(msg, args...))
}

func (l *CLILogger) Error(err error) {
	if l == nil || l.isSilent {
		return
	}

	c := color.New(color.FgHiRed)
	c.Fprintf(l.w, "  • ")
	c.Fprintln(l.w, fmt.Sprintf("%v", err))
}

func (l *CLILogger) Errorf(msg string, args ...interface{}) {
	if l == nil || l.isSilent {
		return
	}

	c := color.New(color.FgHiRed)
	c.Fprintf(l.w, "  • ")
	c.Fprintln(l.w, fmt.Sprintf(msg, args...))
}
