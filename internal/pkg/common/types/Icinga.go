package types

import "fmt"

type IcingaStatusVal uint8

const (
	IcingaOK IcingaStatusVal = iota
	IcingaWARN
	IcingaCRITICAL
	IcingaUNKNOWN
)

func (c IcingaStatusVal) String() string {
	switch c {
	case IcingaOK:
		return "OK"
	case IcingaWARN:
		return "WARNING"
	case IcingaCRITICAL:
		return "CRITICAL"
	case IcingaUNKNOWN:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("UnknownClass(%d)", c)
	}
}

// ExitCode is the process exit code monitoring schedulers expect for c.
func (c IcingaStatusVal) ExitCode() int {
	if c > IcingaUNKNOWN {
		return int(IcingaUNKNOWN)
	}
	return int(c)
}

type IcingaStatus struct {
	Message string
	Value   IcingaStatusVal
}
