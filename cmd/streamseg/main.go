package main

import (
	"os"

	"streamseg/internal/diag"
)

func main() {
	state := &appState{}
	root := newRootCmd(state)
	if err := root.Execute(); err != nil {
		code := diag.Classify(err)
		if state.logger != nil {
			state.logger.Error("cli", string(code), "first error", &state.start)
		}
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(exitCodeFor(code))
	}
}
