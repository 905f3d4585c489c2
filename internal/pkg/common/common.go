package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	g "github.com/gosnmp/gosnmp"

	. "github.com/jamiereid/check-cisco-stack/internal/pkg/common/types"
)

const LevelTrace = slog.Level(-6)

// SessionConfig holds everything needed to open an SNMP session to a device.
type SessionConfig struct {
	Host      string
	Port      uint16
	Timeout   time.Duration
	Version   g.SnmpVersion
	Community string

	// SNMPv3 only
	MsgFlags  g.SnmpV3MsgFlags
	SecParams g.UsmSecurityParameters
}

// Session is a connected gosnmp handle.
type Session struct {
	*g.GoSNMP
}

// NewSession connects to the device described by cfg. Requests are not
// retried; a failed request fails the check.
func NewSession(cfg *SessionConfig) (*Session, error) {
	conn := &g.GoSNMP{
		Target:    cfg.Host,
		Port:      cfg.Port,
		Timeout:   cfg.Timeout,
		Version:   cfg.Version,
		Community: cfg.Community,
		Retries:   0,
		MaxOids:   g.MaxOids,
	}

	if cfg.Version == g.Version3 {
		conn.SecurityModel = g.UserSecurityModel
		conn.MsgFlags = cfg.MsgFlags
		conn.SecurityParameters = cfg.SecParams.Copy()
	}

	if slog.Default().Enabled(context.Background(), LevelTrace) {
		conn.Logger = g.NewLogger(slog.NewLogLogger(slog.Default().Handler(), LevelTrace))
	}

	if err := conn.Connect(); err != nil {
		return nil, fmt.Errorf("Error when connecting: %w", err)
	}

	return &Session{GoSNMP: conn}, nil
}

func (s *Session) Close() error {
	if s.Conn == nil {
		return nil
	}
	err := s.Conn.Close()
	s.Conn = nil
	return err
}

// PDUIndex returns the table index of a walked PDU: the last arc of its OID.
func PDUIndex(name string) string {
	name = strings.TrimSuffix(name, ".")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// PDUString renders the value of pdu as text, the way net-snmp tools print it
// without type prefixes. Exception types come back as errors.
func PDUString(pdu g.SnmpPDU) (string, error) {
	switch pdu.Type {
	case g.NoSuchObject:
		return "", ErrSNMPNoSuchObject
	case g.NoSuchInstance:
		return "", ErrSNMPNoSuchInstance
	case g.EndOfMibView:
		return "", ErrSNMPEndOfMibView
	case g.Null:
		return "", ErrSNMPNull
	}

	if pdu.Value == nil {
		return "", ErrSNMPNilValue
	}

	switch pdu.Type {
	case g.OctetString:
		b, ok := pdu.Value.([]byte)
		if !ok {
			return "", fmt.Errorf("%w: octet string carried %T", ErrUnsupportedSNMPType, pdu.Value)
		}
		return string(b), nil
	case g.Integer, g.Counter32, g.Gauge32, g.TimeTicks, g.Counter64, g.Uinteger32:
		return g.ToBigInt(pdu.Value).String(), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedSNMPType, pdu.Type)
	}
}

func TracePDU(oid string, pdu g.SnmpPDU) {
	slog.Log(context.Background(), LevelTrace, "PDU", "oid", oid, "name", pdu.Name, "type", pdu.Type.String(), "value", pdu.Value)
}

// FormatStatus renders the plugin output line, e.g. "Cisco Stack OK - Members: ...".
func FormatStatus(program string, status *IcingaStatus) string {
	var exitMsg strings.Builder

	exitMsg.WriteString(program)
	exitMsg.WriteString(" ")
	exitMsg.WriteString(status.Value.String())
	exitMsg.WriteString(" - ")
	exitMsg.WriteString(status.Message)

	return exitMsg.String()
}

// WriteStatus prints the plugin output line and returns the exit code that
// goes with it.
func WriteStatus(w io.Writer, program string, status *IcingaStatus) int {
	slog.Debug("Exiting", "status", status.Value.String(), "message", status.Message)
	fmt.Fprintln(w, FormatStatus(program, status))
	return status.Value.ExitCode()
}

// SetupLogging configures the slog logger based on the verbosity level
func SetupLogging(verbosity int, w io.Writer) {
	var level slog.Level

	var levelNames = map[slog.Leveler]string{
		LevelTrace: "TRACE",
	}

	switch verbosity {
	case 0:
		level = slog.LevelWarn // Default: show warnings and higher
	case 1:
		level = slog.LevelDebug // -d: show debug and higher
	default:
		level = LevelTrace - slog.Level(verbosity-2) // -dd and beyond: packet traces
	}

	// Clamp level to a reasonable range (e.g., Trace or custom verbose levels)
	if level < slog.Level(-10) {
		level = slog.Level(-10) // Minimum level
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				levelLabel, exists := levelNames[level]
				if !exists {
					levelLabel = level.String()
				}

				a.Value = slog.StringValue(levelLabel)
			}

			return a
		},
	}
	handler := slog.NewTextHandler(w, opts)
	slog.SetDefault(slog.New(handler))
}
