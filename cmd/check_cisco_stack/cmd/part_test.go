package cmd

import (
	"testing"

	g "github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jamiereid/check-cisco-stack/internal/pkg/stack"
)

func TestRunPart(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "expected states",
			args:     []string{"-H", "10.0.0.1", "part", "-S", "1,2", "-E", "4,9"},
			wantCode: 0,
			wantOut:  "Cisco Stack OK - Members: 1: ready, 2: provisioned\n",
		},
		{
			name:     "alias and repeated flags",
			args:     []string{"-H", "10.0.0.1", "particular", "-S", "2", "-S", "1", "-E", "4", "-E", "4"},
			wantCode: 2,
			wantOut:  "Cisco Stack CRITICAL - Members: 2: provisioned (expected ready), 1: ready\n",
		},
		{
			name:     "missing switch",
			args:     []string{"-H", "10.0.0.1", "partial", "-S", "3", "-E", "4"},
			wantCode: 2,
			wantOut:  "Cisco Stack CRITICAL - Members: 3: missing (expected ready)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := &fakeSession{MockSNMPClient: stack.NewMockSNMPClient(ctrl)}

			// No ring GET for particular switches.
			gomock.InOrder(
				session.EXPECT().BulkWalkAll(stack.CswSwitchNumCurrentOID).Return([]g.SnmpPDU{numberPDU("1001", 1), numberPDU("2001", 2)}, nil),
				session.EXPECT().BulkWalkAll(stack.CswSwitchStateOID).Return([]g.SnmpPDU{statePDU("1001", 4), statePDU("2001", 9)}, nil),
			)

			code, out, _ := run(tt.args, newSession(session, nil))

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out)
			assert.True(t, session.closed)
		})
	}
}

func TestExpectations(t *testing.T) {
	expected, err := expectations([]int{1, 8}, []int{4, 11})
	assert.NoError(t, err)
	assert.Equal(t, []stack.Expectation{{Number: 1, State: 4}, {Number: 8, State: 11}}, expected)

	_, err = expectations(nil, nil)
	var argErr *ArgumentError
	assert.ErrorAs(t, err, &argErr)

	_, err = expectations([]int{0}, []int{4})
	assert.ErrorAs(t, err, &argErr)
}
