package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// ErrPanic wraps a recovered panic returned by Guarded
var ErrPanic = errors.New("panic")

// Finalizer restores the terminal (tcell.Screen satisfies it)
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer

	// Swapped by tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// RegisterCrashTerminal sets the terminal restored on crash, nil clears it
func RegisterCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// restoreTerminal finalizes the registered terminal once
func restoreTerminal() {
	crashMu.Lock()
	t := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	}
}

// HandleCrash is the unified panic handler that resets the terminal, prints
// the stack trace and exits. Use as: defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreTerminal()

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}

// Guarded wraps an errgroup task: a panic restores the terminal and is
// returned as an error wrapping ErrPanic with the stack attached
func Guarded(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				restoreTerminal()
				err = fmt.Errorf("%w: %v\n%s", ErrPanic, r, debug.Stack())
			}
		}()
		return fn()
	}
}
