//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// SpinnerInterval defines the refresh frequency of the progress spinner.
	SpinnerInterval = 150 * time.Millisecond
	// SpinnerDelay is how long an evaluation must run before the spinner
	// appears; fast evaluations never flicker one.
	SpinnerDelay = 300 * time.Millisecond
)

// Spinner abstracts the behavior of a terminal spinner so DisplayProgress can
// be tested with a mock implementation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts briandowns/spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner is replaceable in tests.
var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerInterval, spinner.WithWriter(out))
	return &realSpinner{s}
}

// DisplayProgress shows a spinner while an evaluation runs, starting only if
// the done channel stays open past SpinnerDelay. It signals wg when the
// spinner has been cleaned up.
func DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, label string, out io.Writer) {
	defer wg.Done()

	select {
	case <-done:
		return
	case <-time.After(SpinnerDelay):
	}

	s := newSpinner(out)
	s.UpdateSuffix(" " + label)
	s.Start()
	defer s.Stop()

	<-done
}

// TruncateValue shortens very long numbers to their edges for terminal
// output, keeping short values untouched.
func TruncateValue(v string) string {
	if len(v) <= TruncationLimit {
		return v
	}
	return fmt.Sprintf("%s...%s (%d digits)", v[:DisplayEdges], v[len(v)-DisplayEdges:], len(v))
}
