// Package spinning provides a spinning symbol with a progress line, to use while a program is
// running a long batch, and a graceful handling of Ctrl+C.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

var (
	ThemeAscii = []rune(`|/-\`)
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeClock = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme defaults to ThemeClock, but it can be set to anything else.
	Theme = ThemeClock

	// Period between updates of the spinner.
	Period = 250 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}

// Spinning displays a spinning symbol followed by a progress message, on a separate goroutine,
// until Done is called.
type Spinning struct {
	wg       sync.WaitGroup
	cancel   func()
	out      io.Writer
	progress func() string
}

// New starts a spinning display on stdout. progress is called at every update to get the message
// displayed after the symbol, and it can be nil.
//
// progress is called from a separate goroutine, it must be safe for concurrent use.
func New(ctx context.Context, progress func() string) *Spinning {
	return NewWithWriter(ctx, os.Stdout, progress)
}

// NewWithWriter is like New, but writes to out.
func NewWithWriter(ctx context.Context, out io.Writer, progress func() string) *Spinning {
	s := &Spinning{out: out, progress: progress}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		// Hide the cursor while spinning.
		_, _ = fmt.Fprint(out, "\033[?25l")
		defer func() { _, _ = fmt.Fprint(out, "\033[?25h") }()

		for idx := 0; ; idx = (idx + 1) % len(Theme) {
			s.print(Theme[idx])
			select {
			case <-ctx.Done():
				// Final state of the progress, without the symbol.
				s.print(' ')
				_, _ = fmt.Fprintln(out)
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

func (s *Spinning) print(symbol rune) {
	msg := ""
	if s.progress != nil {
		msg = s.progress()
	}
	// \r goes back to the start of the line, and \033[0K clears what is left of the previous
	// message.
	_, _ = fmt.Fprintf(s.out, "\r%c %s\033[0K", symbol, msg)
}

// Done stops the spinning display and waits for it to finish.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
