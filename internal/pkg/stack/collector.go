package stack

import (
	"fmt"
	"log/slog"

	g "github.com/gosnmp/gosnmp"

	"github.com/jamiereid/check-cisco-stack/internal/pkg/common"
	. "github.com/jamiereid/check-cisco-stack/internal/pkg/common/types"
)

// CISCO-STACKWISE-MIB
const (
	CswSwitchNumCurrentOID string = "1.3.6.1.4.1.9.9.500.1.2.1.1.1"
	CswSwitchStateOID      string = "1.3.6.1.4.1.9.9.500.1.2.1.1.6"
	CswRingRedundantOID    string = "1.3.6.1.4.1.9.9.500.1.1.3.0"
)

// Poll collects the member table and then the ring status. The first failure
// ends the poll.
func Poll(client SNMPClient) (*PollResult, error) {
	members, err := CollectMembers(client)
	if err != nil {
		return nil, err
	}

	ring, err := CollectRing(client)
	if err != nil {
		return nil, err
	}

	return &PollResult{Members: members, Ring: ring}, nil
}

// CollectMembers walks cswSwitchNumCurrent and cswSwitchState and joins them
// by row index. A state row without a matching number row is an error; a
// number row without a state row keeps StatusCode 0.
func CollectMembers(client SNMPClient) ([]StackMember, error) {
	slog.Debug("Walking stack table", "oid", CswSwitchNumCurrentOID)
	numbers, err := walk(client, CswSwitchNumCurrentOID)
	if err != nil {
		return nil, &CollectionError{Step: StepStackTable, Err: err}
	}

	var members []StackMember
	byIndex := make(map[string]int, len(numbers))
	for _, it := range numbers {
		if _, ok := byIndex[it.index]; ok {
			return nil, &CollectionError{Step: StepStackTable, Err: fmt.Errorf("%w %s", ErrDuplicateMember, it.index)}
		}
		slog.Debug("Member info", "index", it.index, "number", it.value)
		byIndex[it.index] = len(members)
		members = append(members, StackMember{Index: it.index, Number: it.value})
	}

	slog.Debug("Walking stack status", "oid", CswSwitchStateOID)
	states, err := walk(client, CswSwitchStateOID)
	if err != nil {
		return nil, &CollectionError{Step: StepStackStatus, Err: err}
	}

	for _, it := range states {
		i, ok := byIndex[it.index]
		if !ok {
			return nil, &CollectionError{Step: StepStackStatus, Err: fmt.Errorf("%w %s", ErrMissingMember, it.index)}
		}
		members[i].Status, members[i].StatusCode = ParseSnmpCswSwitchState(it.value)
		slog.Debug("Member state", "index", it.index, "number", members[i].Number, "state", members[i].StatusName())
	}

	return members, nil
}

// CollectRing fetches cswRingRedundant.
func CollectRing(client SNMPClient) (RingStatus, error) {
	slog.Debug("Getting stack ring redundancy status", "oid", CswRingRedundantOID)

	pdu, err := client.Get([]string{CswRingRedundantOID})
	if err != nil {
		return "", &CollectionError{Step: StepRingStatus, Err: err}
	}

	if pdu == nil || len(pdu.Variables) == 0 {
		return "", &CollectionError{Step: StepRingStatus, Err: ErrNoValue}
	}

	if pdu.Error != g.NoError {
		return "", &CollectionError{Step: StepRingStatus, Err: fmt.Errorf("SNMP Error: %v", pdu.Error.String())}
	}

	common.TracePDU(CswRingRedundantOID, pdu.Variables[0])
	value, err := common.PDUString(pdu.Variables[0])
	if err != nil {
		return "", &CollectionError{Step: StepRingStatus, Err: err}
	}

	slog.Debug("Ring status", "value", value)
	return RingStatus(value), nil
}

type walkedRow struct {
	index string
	value string
}

func walk(client SNMPClient, oid string) ([]walkedRow, error) {
	pdus, err := client.BulkWalkAll(oid)
	if err != nil {
		return nil, fmt.Errorf("error during BulkWalk: %w", err)
	}

	if len(pdus) == 0 {
		return nil, ErrEmptyWalk
	}

	rows := make([]walkedRow, 0, len(pdus))
	for _, pdu := range pdus {
		common.TracePDU(oid, pdu)

		value, err := common.PDUString(pdu)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pdu.Name, err)
		}

		rows = append(rows, walkedRow{index: common.PDUIndex(pdu.Name), value: value})
	}

	return rows, nil
}
