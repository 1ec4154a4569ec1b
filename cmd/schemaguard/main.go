package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/tvalden/schemaguard/internal/cli"
	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(schemaguard.ExitPanic)
		}
	}()

	if os.Getenv("SCHEMAGUARD_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(schemaguard.ExitCodeForError(err))
	}
}
