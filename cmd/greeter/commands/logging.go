package commands

import (
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/term"
)

// setupLogging routes the library's logs to w at the given legacy
// verbosity (0 silent ... 5 trace).
func setupLogging(w io.Writer, verbosity int) {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = term.IsTerminal(int(f.Fd())) && os.Getenv("TERM") != "dumb"
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(w, log.FromLegacyLevel(verbosity), useColor)))
}
