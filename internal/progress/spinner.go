package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// AuditSpinner shows activity while a content directory is loaded and
// checked. In non-interactive sessions it degrades to a single printed line.
type AuditSpinner struct {
	capabilities TerminalCapabilities
	symbols      Symbols
	spinner      *spinner.Spinner
}

// NewAuditSpinner creates a spinner bound to the given terminal capabilities.
func NewAuditSpinner(caps TerminalCapabilities) *AuditSpinner {
	return &AuditSpinner{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins the spinner with the given message.
func (a *AuditSpinner) Start(message string) {
	if !a.capabilities.IsTTY {
		fmt.Println(message)
		return
	}

	a.spinner = spinner.New(
		spinner.CharSets[a.symbols.SpinnerSet],
		100*time.Millisecond,
	)
	a.spinner.Writer = os.Stderr // keep stdout clean for the report
	a.spinner.Suffix = " " + message
	a.spinner.Start()
}

// Stop halts the spinner if one is running.
func (a *AuditSpinner) Stop() {
	if a.spinner != nil {
		a.spinner.Stop()
		a.spinner = nil
	}
}
