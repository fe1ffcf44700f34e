package svdiscovery

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInconsistentBreakpoints is the cause of an EvidenceError raised when the
// inferred breakpoints or complications contradict the inferred type.
var ErrInconsistentBreakpoints = errors.New("inconsistent breakpoints")

// EvidenceError is returned when the breakpoints of a chimeric alignment
// cannot be inferred consistently. Chimera holds the textual dump of the
// offending chimera.
type EvidenceError struct {
	Chimera string
	Err     error
}

func (e *EvidenceError) Error() string {
	return fmt.Sprintf("erred when inferring breakpoint location and event type from chimeric alignment:\n%s: %v",
		e.Chimera, e.Err)
}

// Cause returns the underlying error. It makes errors.Cause see through e.
func (e *EvidenceError) Cause() error { return e.Err }

// UnreachableError reports a type that Classify doesn't recognize. It always
// indicates a bug in whatever produced the record.
type UnreachableError struct {
	Type TypeInferred
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("inferred type not recognized: %d", int32(e.Type))
}

// ComplicationError is returned when a Classify branch requires a particular
// kind of complications, but the record carries another.
type ComplicationError struct {
	Type TypeInferred
	Kind ComplicationKind
	Want string
}

func (e *ComplicationError) Error() string {
	return fmt.Sprintf("type %v requires %s complications, but found %v", e.Type, e.Want, e.Kind)
}
