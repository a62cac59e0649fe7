package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/quickproj/internal/cli"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(quickproj.ExitPanic)
		}
	}()

	if os.Getenv("QUICKPROJ_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(quickproj.ExitCodeForError(err))
	}
}
