package types

import (
	"errors"
	"strings"

	g "github.com/gosnmp/gosnmp"
)

type enumChoice[T comparable] struct {
	name  string
	value T
}

// EnumValue is a custom flag type accepting one of a fixed set of names. The
// first name listed for a value is the one String reports.
type EnumValue[T comparable] struct {
	Value    T
	typeName string
	choices  []enumChoice[T]
}

func (s *EnumValue[T]) String() string {
	for _, it := range s.choices {
		if it.value == s.Value {
			return it.name
		}
	}
	return ""
}

// Set parses and sets the value from a string
func (s *EnumValue[T]) Set(value string) error {
	for _, it := range s.choices {
		if it.name == strings.ToLower(value) {
			s.Value = it.value
			return nil
		}
	}
	return errors.New("invalid value for " + s.typeName + ", valid options are: " +
		strings.Join(s.validKeys(), ", "))
}

func (s *EnumValue[T]) Type() string {
	return s.typeName
}

// validKeys returns a slice of valid keys for error messages
func (s *EnumValue[T]) validKeys() []string {
	keys := make([]string, 0, len(s.choices))
	for _, it := range s.choices {
		keys = append(keys, it.name)
	}
	return keys
}

type SnmpVersionValue = EnumValue[g.SnmpVersion]
type SnmpV3MsgFlagsValue = EnumValue[g.SnmpV3MsgFlags]
type SnmpV3AuthProtocolValue = EnumValue[g.SnmpV3AuthProtocol]
type SnmpV3PrivProtocolValue = EnumValue[g.SnmpV3PrivProtocol]

// Only versions with GETBULK are offered; the stack tables are walked in bulk.
func NewSnmpVersionValue() *SnmpVersionValue {
	return &SnmpVersionValue{
		Value:    g.Version2c,
		typeName: "SnmpVersion",
		choices: []enumChoice[g.SnmpVersion]{
			{"2c", g.Version2c},
			{"v2c", g.Version2c},
			{"3", g.Version3},
			{"v3", g.Version3},
		},
	}
}

func NewSnmpV3MsgFlagsValue() *SnmpV3MsgFlagsValue {
	return &SnmpV3MsgFlagsValue{
		Value:    g.AuthPriv,
		typeName: "SnmpV3MsgFlags",
		choices: []enumChoice[g.SnmpV3MsgFlags]{
			{"noauthnopriv", g.NoAuthNoPriv},
			{"authnopriv", g.AuthNoPriv},
			{"authpriv", g.AuthPriv},
		},
	}
}

func NewSnmpV3AuthProtocolValue() *SnmpV3AuthProtocolValue {
	return &SnmpV3AuthProtocolValue{
		Value:    g.SHA,
		typeName: "SnmpV3AuthProtocol",
		choices: []enumChoice[g.SnmpV3AuthProtocol]{
			{"noauth", g.NoAuth},
			{"md5", g.MD5},
			{"sha", g.SHA},
			{"sha224", g.SHA224},
			{"sha256", g.SHA256},
			{"sha384", g.SHA384},
			{"sha512", g.SHA512},
		},
	}
}

func NewSnmpV3PrivProtocolValue() *SnmpV3PrivProtocolValue {
	return &SnmpV3PrivProtocolValue{
		Value:    g.AES,
		typeName: "SnmpV3PrivProtocol",
		choices: []enumChoice[g.SnmpV3PrivProtocol]{
			{"nopriv", g.NoPriv},
			{"des", g.DES},
			{"aes", g.AES},
			{"aes192", g.AES192},
			{"aes256", g.AES256},
			{"aes192c", g.AES192C},
			{"aes256c", g.AES256C},
		},
	}
}
