package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer releases a drawing surface, tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
)

// SetCrashScreen registers the surface restored before a crash report is printed
// The returned func reinstates the previous registration, defer it once the surface is finalized
func SetCrashScreen(f Finalizer) (restore func()) {
	crashMu.Lock()
	prev := crashScreen
	crashScreen = f
	crashMu.Unlock()

	return func() {
		crashMu.Lock()
		crashScreen = prev
		crashMu.Unlock()
	}
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
