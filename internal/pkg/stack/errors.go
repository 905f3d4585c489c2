package stack

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWalk       = errors.New("walk returned no rows")
	ErrNoValue         = errors.New("no value returned")
	ErrMissingMember   = errors.New("no stack member for index")
	ErrDuplicateMember = errors.New("duplicate stack member index")
)

// Steps named in collection errors.
const (
	StepStackTable  = "stack table"
	StepStackStatus = "stack status"
	StepRingStatus  = "ring status"
)

// CollectionError reports which retrieval failed. A check that hits one exits
// CRITICAL with Error() as its message.
type CollectionError struct {
	Step string
	Err  error
}

func (e *CollectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Unable to retrieve SNMP %s", e.Step)
	}
	return fmt.Sprintf("Unable to retrieve SNMP %s: %v", e.Step, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}
