package stack

import (
	g "github.com/gosnmp/gosnmp"
)

//go:generate mockgen -destination=mock_stack.go -package=stack github.com/jamiereid/check-cisco-stack/internal/pkg/stack SNMPClient

// SNMPClient is the part of a gosnmp session the collectors use.
type SNMPClient interface {
	// BulkWalkAll returns every PDU under rootOid, in walk order
	BulkWalkAll(rootOid string) ([]g.SnmpPDU, error)
	// Get retrieves the given scalar OIDs
	Get(oids []string) (*g.SnmpPacket, error)
}
