package stack

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	. "github.com/jamiereid/check-cisco-stack/internal/pkg/common/types"
)

// Evaluate reduces the members and ring flag to a status. Any member that is
// not ready is CRITICAL; a non-redundant ring only raises OK to WARN.
func Evaluate(members []StackMember, ring RingStatus) (IcingaStatusVal, string) {
	// Assume everything is ok, then check this assumption
	var exitStatus IcingaStatusVal = IcingaOK
	var exitMsg strings.Builder

	exitMsg.WriteString("Members: ")

	slog.Debug("Checking each stack member")
	for _, it := range members {
		slog.Debug("Member state", "number", it.Number, "state", it.StatusName())
		fmt.Fprintf(&exitMsg, "%s: %s, ", it.Number, it.StatusName())

		if !it.Ready() {
			exitStatus = IcingaCRITICAL
		}
	}

	if ring.Redundant() {
		exitMsg.WriteString("Stack Ring is redundant")
	} else {
		exitMsg.WriteString("Stack Ring is non-redundant")
		if exitStatus == IcingaOK {
			exitStatus = IcingaWARN
		}
	}

	slog.Debug("Evaluated stack", "status", exitStatus.String())
	return exitStatus, exitMsg.String()
}

// Expectation is a switch number and the state it should be in.
type Expectation struct {
	Number int
	State  SnmpCswSwitchState
}

// EvaluateParticular checks only the listed switches. A switch missing from
// the stack or in another state is CRITICAL. The ring is not considered.
func EvaluateParticular(members []StackMember, expected []Expectation) (IcingaStatusVal, string) {
	var exitStatus IcingaStatusVal = IcingaOK
	var parts []string

	byNumber := make(map[string]StackMember, len(members))
	for _, it := range members {
		byNumber[it.Number] = it
	}

	for _, want := range expected {
		number := strconv.Itoa(want.Number)

		member, ok := byNumber[number]
		switch {
		case !ok:
			exitStatus = IcingaCRITICAL
			parts = append(parts, fmt.Sprintf("%s: missing (expected %s)", number, want.State.Name()))
		case member.StatusCode != int(want.State):
			exitStatus = IcingaCRITICAL
			parts = append(parts, fmt.Sprintf("%s: %s (expected %s)", number, member.StatusName(), want.State.Name()))
		default:
			parts = append(parts, fmt.Sprintf("%s: %s", number, member.StatusName()))
		}
	}

	return exitStatus, "Members: " + strings.Join(parts, ", ")
}
