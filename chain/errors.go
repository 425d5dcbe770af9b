package chain

import (
	"fmt"
)

// IntegrityError is returned by Append when the audit of the freshly
// extended sequence fails. The offending block stays in the sequence: the
// error is an alarm for the caller, not a rollback.
type IntegrityError struct {
	Report Report
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("Chain integrity compromised at %d position(s): %v", e.Report.Count(), e.Report.Errors)
}
