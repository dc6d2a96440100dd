package digest

import (
	"errors"
	"sync"
)

// Sentinel errors distinguishing the three failure classes. Every error
// returned by HashData, HashSum, and HashString wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrInvalidArgument marks a malformed call: empty algorithm, empty
	// data, or a missing output buffer.
	ErrInvalidArgument = errors.New("bad arguments to function")

	// ErrUnknownAlgorithm marks an identifier outside the recognized
	// set, or one recognized only by a backend not compiled in.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrBufferTooSmall marks an output buffer whose declared capacity
	// cannot hold the guaranteed output.
	ErrBufferTooSmall = errors.New("hash buffer too small")
)

// Status is the machine-readable code recorded with a failure report.
// Values follow the IPP status-code registry.
type Status int

const (
	// StatusOK is the successful-ok IPP status. It is never reported by
	// this package, which reports only on failure.
	StatusOK Status = 0x0000

	// StatusErrorInternal is the IPP server-error-internal-error status
	// recorded for every hashing failure.
	StatusErrorInternal Status = 0x0500
)

// Reporter records the status code and human-readable message of the
// most recent failure for the calling context. HashData and HashString
// call it exactly once per failure and never on success.
type Reporter interface {
	Report(status Status, message string)
}

// SetReporter installs a process-wide reporter, replacing the default
// last-error store. A nil reporter restores the default.
func SetReporter(r Reporter) {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	if r == nil {
		reporter = defaultReporter
		return
	}
	reporter = r
}

// LastError returns the status and message recorded by the default
// reporter for the most recent failure, or StatusOK and an empty string
// if nothing has failed. It reflects reports made while a custom
// reporter was not installed.
func LastError() (Status, string) {
	defaultReporter.mu.Lock()
	defer defaultReporter.mu.Unlock()
	return defaultReporter.status, defaultReporter.message
}

var (
	reporterMu      sync.Mutex
	defaultReporter = &lastErrorReporter{}
	reporter        Reporter = defaultReporter
)

// lastErrorReporter retains the most recent report, the cupsLastError
// model of error recording.
type lastErrorReporter struct {
	mu      sync.Mutex
	status  Status
	message string
}

func (r *lastErrorReporter) Report(status Status, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
	r.message = message
}

// fail records a failure through the current reporter and returns err to
// the caller. Every failure path funnels through here so the reporter is
// hit exactly once per failure.
func fail(message string, err error) error {
	reporterMu.Lock()
	r := reporter
	reporterMu.Unlock()
	r.Report(StatusErrorInternal, message)
	return err
}
