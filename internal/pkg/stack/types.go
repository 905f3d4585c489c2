package stack

import (
	. "github.com/jamiereid/check-cisco-stack/internal/pkg/common/types"
)

// StackMember is one switch in the stack, joined from the cswSwitchInfoTable.
type StackMember struct {
	Index      string // last OID arc of the table row
	Number     string // cswSwitchNumCurrent
	StatusCode int    // raw cswSwitchState, 0 if the device sent something non-numeric
	Status     SnmpCswSwitchState
}

func (m StackMember) StatusName() string {
	return m.Status.Name()
}

func (m StackMember) Ready() bool {
	return m.StatusCode == int(SnmpCswSwitchStateReady)
}

// RingStatus is cswRingRedundant as text: "1" (true) when the stack ports form
// a redundant ring.
type RingStatus string

const RingRedundant RingStatus = "1"

func (r RingStatus) Redundant() bool {
	return r == RingRedundant
}

// PollResult is everything one run collects, members in walk order.
type PollResult struct {
	Members []StackMember
	Ring    RingStatus
}
