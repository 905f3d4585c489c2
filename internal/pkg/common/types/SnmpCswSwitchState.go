package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SnmpCswSwitchState is cswSwitchState from CISCO-STACKWISE-MIB.
type SnmpCswSwitchState uint8

const (
	SnmpCswSwitchStateWaiting SnmpCswSwitchState = iota + 1
	SnmpCswSwitchStateProgressing
	SnmpCswSwitchStateAdded
	SnmpCswSwitchStateReady
	SnmpCswSwitchStateSdmMismatch
	SnmpCswSwitchStateVerMismatch
	SnmpCswSwitchStateFeatureMismatch
	SnmpCswSwitchStateNewMasterInit
	SnmpCswSwitchStateProvisioned
	SnmpCswSwitchStateInvalid
	SnmpCswSwitchStateRemoved
)

// SnmpCswSwitchStateUnknownName is reported for any code outside the MIB enumeration.
const SnmpCswSwitchStateUnknownName = "UNKNOWN"

var cswSwitchStateNames = map[SnmpCswSwitchState]string{
	SnmpCswSwitchStateWaiting:         "waiting",
	SnmpCswSwitchStateProgressing:     "progressing",
	SnmpCswSwitchStateAdded:           "added",
	SnmpCswSwitchStateReady:           "ready",
	SnmpCswSwitchStateSdmMismatch:     "sdmMismatch",
	SnmpCswSwitchStateVerMismatch:     "verMismatch",
	SnmpCswSwitchStateFeatureMismatch: "featureMismatch",
	SnmpCswSwitchStateNewMasterInit:   "newMasterInit",
	SnmpCswSwitchStateProvisioned:     "provisioned",
	SnmpCswSwitchStateInvalid:         "invalid",
	SnmpCswSwitchStateRemoved:         "removed",
}

// NewSnmpCswSwitchState maps a raw state code to a switch state. Codes outside
// 1..11 give 0, which has no name.
func NewSnmpCswSwitchState(code int) SnmpCswSwitchState {
	if code < int(SnmpCswSwitchStateWaiting) || code > int(SnmpCswSwitchStateRemoved) {
		return 0
	}
	return SnmpCswSwitchState(code)
}

// ParseSnmpCswSwitchState parses the textual form of a state code as the
// device reports it ("4", " 9").
func ParseSnmpCswSwitchState(raw string) (SnmpCswSwitchState, int) {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, 0
	}
	return NewSnmpCswSwitchState(code), code
}

// Name returns the MIB label of the state ("ready", "provisioned", ...).
func (c SnmpCswSwitchState) Name() string {
	if name, ok := cswSwitchStateNames[c]; ok {
		return name
	}
	return SnmpCswSwitchStateUnknownName
}

func (c SnmpCswSwitchState) String() string {
	if name, ok := cswSwitchStateNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UnknownClass(%d)", c)
}
