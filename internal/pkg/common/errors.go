package common

import "errors"

var (
	ErrSNMPNilValue        = errors.New("recieved a PDU with a nil value")
	ErrSNMPNoSuchObject    = errors.New("SNMP NoSuchObject")
	ErrSNMPNoSuchInstance  = errors.New("SNMP NoSuchInstance")
	ErrSNMPEndOfMibView    = errors.New("SNMP EndOfMibView")
	ErrSNMPNull            = errors.New("SNMP Null")
	ErrUnsupportedSNMPType = errors.New("unsupported SNMP type")
)
