// pictocue appends pictographic emoji cues after vocabulary words in
// design-host text. Single binary: offline annotation, coverage preview,
// and a local websocket bridge driven by the host plugin.
package main

import (
	"os"

	"github.com/maren/pictocue/cmd/pictocue/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
