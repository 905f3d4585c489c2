package cmd

import (
	"fmt"
	"log/slog"

	. "github.com/jamiereid/check-cisco-stack/internal/pkg/common/types"
	"github.com/jamiereid/check-cisco-stack/internal/pkg/stack"

	"github.com/spf13/cobra"
)

const maxStackSwitchNumber = 8

func newPartCmd(inv *invocation) *cobra.Command {
	opts := &inv.opts

	partCmd := &cobra.Command{
		Use:     "part",
		Aliases: []string{"particular", "partial"},
		Short:   "Check that particular switch numbers are in an expected state",
		Long:    "Each switch given with --switchnumbers must be present and in the state given at the same position of --expectedstate (cswSwitchState code, 4 is ready). The ring is not checked.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proceed, err := inv.prepare(cmd)
			if !proceed {
				return err
			}

			expected, err := expectations(opts.switchNumbers, opts.expectedStates)
			if err != nil {
				return err
			}

			inv.status = inv.check(func(client stack.SNMPClient) *IcingaStatus {
				members, err := stack.CollectMembers(client)
				if err != nil {
					slog.Error("Collection failed", "error", err)
					return &IcingaStatus{Value: IcingaCRITICAL, Message: err.Error()}
				}

				exitStatus, message := stack.EvaluateParticular(members, expected)
				return &IcingaStatus{Value: exitStatus, Message: message}
			})
			return nil
		},
	}

	partCmd.Flags().IntSliceVarP(&opts.switchNumbers, "switchnumbers", "S", nil, "Switch number(s) in stack, range from 1 to 8")
	partCmd.MarkFlagRequired("switchnumbers")
	partCmd.Flags().IntSliceVarP(&opts.expectedStates, "expectedstate", "E", nil, "Expected state code of each switch number, from 1 to 11")
	partCmd.MarkFlagRequired("expectedstate")

	return partCmd
}

func expectations(switchNumbers, expectedStates []int) ([]stack.Expectation, error) {
	if len(switchNumbers) == 0 || len(switchNumbers) != len(expectedStates) {
		return nil, &ArgumentError{Reason: fmt.Sprintf("got %d switch numbers and %d expected states, need one state per switch", len(switchNumbers), len(expectedStates))}
	}

	expected := make([]stack.Expectation, 0, len(switchNumbers))
	for it_index, it := range switchNumbers {
		if it < 1 || it > maxStackSwitchNumber {
			return nil, &ArgumentError{Reason: fmt.Sprintf("invalid switch number %d, valid range is 1 to %d", it, maxStackSwitchNumber)}
		}

		state := NewSnmpCswSwitchState(expectedStates[it_index])
		if state == 0 {
			return nil, &ArgumentError{Reason: fmt.Sprintf("invalid expected state %d, valid range is %d to %d", expectedStates[it_index], SnmpCswSwitchStateWaiting, SnmpCswSwitchStateRemoved)}
		}

		expected = append(expected, stack.Expectation{Number: it, State: state})
	}

	return expected, nil
}
