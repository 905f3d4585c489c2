package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/jamiereid/check-cisco-stack/internal/pkg/common/types"
)

func member(index, number string, code int) StackMember {
	return StackMember{Index: index, Number: number, StatusCode: code, Status: NewSnmpCswSwitchState(code)}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		members    []StackMember
		ring       RingStatus
		wantStatus IcingaStatusVal
		wantMsg    string
	}{
		{
			name:       "all ready, redundant ring",
			members:    []StackMember{member("1001", "1", 4), member("2001", "2", 4)},
			ring:       "1",
			wantStatus: IcingaOK,
			wantMsg:    "Members: 1: ready, 2: ready, Stack Ring is redundant",
		},
		{
			name:       "all ready, broken ring",
			members:    []StackMember{member("1001", "1", 4), member("2001", "2", 4)},
			ring:       "2",
			wantStatus: IcingaWARN,
			wantMsg:    "Members: 1: ready, 2: ready, Stack Ring is non-redundant",
		},
		{
			name:       "bad member, redundant ring stays critical",
			members:    []StackMember{member("1001", "1", 4), member("2001", "2", 6)},
			ring:       "1",
			wantStatus: IcingaCRITICAL,
			wantMsg:    "Members: 1: ready, 2: verMismatch, Stack Ring is redundant",
		},
		{
			name:       "bad member, broken ring",
			members:    []StackMember{member("1001", "1", 4), member("2001", "2", 9)},
			ring:       "0",
			wantStatus: IcingaCRITICAL,
			wantMsg:    "Members: 1: ready, 2: provisioned, Stack Ring is non-redundant",
		},
		{
			name:       "critical member first is never downgraded",
			members:    []StackMember{member("1001", "1", 11), member("2001", "2", 4)},
			ring:       "1",
			wantStatus: IcingaCRITICAL,
			wantMsg:    "Members: 1: removed, 2: ready, Stack Ring is redundant",
		},
		{
			name:       "unknown state code",
			members:    []StackMember{member("1001", "1", 42)},
			ring:       "1",
			wantStatus: IcingaCRITICAL,
			wantMsg:    "Members: 1: UNKNOWN, Stack Ring is redundant",
		},
		{
			name:       "member without state",
			members:    []StackMember{{Index: "1001", Number: "1"}},
			ring:       "1",
			wantStatus: IcingaCRITICAL,
			wantMsg:    "Members: 1: UNKNOWN, Stack Ring is redundant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Evaluate(tt.members, tt.ring)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestEvaluateNeverUnknown(t *testing.T) {
	for code := -1; code <= 12; code++ {
		for _, ring := range []RingStatus{"1", "2", ""} {
			status, _ := Evaluate([]StackMember{member("1001", "1", code)}, ring)
			assert.NotEqual(t, IcingaUNKNOWN, status)

			if code == 4 && ring == "1" {
				assert.Equal(t, IcingaOK, status)
			} else if code == 4 {
				assert.Equal(t, IcingaWARN, status)
			} else {
				assert.Equal(t, IcingaCRITICAL, status)
			}
		}
	}
}

func TestEvaluateParticular(t *testing.T) {
	members := []StackMember{member("1001", "1", 4), member("2001", "2", 9)}

	tests := []struct {
		name       string
		expected   []Expectation
		wantStatus IcingaStatusVal
		wantMsg    string
	}{
		{
			name:       "matching states",
			expected:   []Expectation{{1, SnmpCswSwitchStateReady}, {2, SnmpCswSwitchStateProvisioned}},
			wantStatus: IcingaOK,
			wantMsg:    "Members: 1: ready, 2: provisioned",
		},
		{
			name:       "state mismatch",
			expected:   []Expectation{{1, SnmpCswSwitchStateReady}, {2, SnmpCswSwitchStateReady}},
			wantStatus: IcingaCRITICAL,
			wantMsg:    "Members: 1: ready, 2: provisioned (expected ready)",
		},
		{
			name:       "missing switch",
			expected:   []Expectation{{3, SnmpCswSwitchStateReady}},
			wantStatus: IcingaCRITICAL,
			wantMsg:    "Members: 3: missing (expected ready)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := EvaluateParticular(members, tt.expected)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
