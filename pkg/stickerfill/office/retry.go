package office

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-ole/go-ole"
)

// hrCallRejected is RPC_E_CALL_REJECTED, returned while the application is
// busy with its own work, e.g. the user editing a cell.
const hrCallRejected = 0x80010001

// RetryPolicy bounds the retry loop around a single cell read.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryPolicy returns the retry bounds used for live cell reads.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 5, Delay: 200 * time.Millisecond}
}

// RetryError reports a cell read that kept being rejected until the retry
// budget ran out.
type RetryError struct {
	Row      int
	Col      int
	Attempts int
	Err      error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("spreadsheet did not respond after %d retries for cell (%d, %d): %v",
		e.Attempts, e.Row, e.Col, e.Err)
}

func (e *RetryError) Unwrap() error {
	return e.Err
}

// ReadCell reads a cell, retrying transient busy rejections with a fixed
// delay up to the policy's bound. Any other error propagates immediately.
func ReadCell(ws Worksheet, row, col int, pol RetryPolicy) (any, error) {
	var last error
	for i := 0; i < pol.Attempts; i++ {
		v, err := ws.CellValue(row, col)
		if err == nil {
			return v, nil
		}
		if !transient(err) {
			return nil, err
		}
		last = err
		time.Sleep(pol.Delay)
	}
	return nil, &RetryError{Row: row, Col: col, Attempts: pol.Attempts, Err: last}
}

// transient reports whether err is the application rejecting the call because
// it is busy.
func transient(err error) bool {
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && uint32(oleErr.Code()) == hrCallRejected {
		return true
	}
	return strings.Contains(err.Error(), "Call was rejected by callee")
}
