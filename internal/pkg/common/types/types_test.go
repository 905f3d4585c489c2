package types

import (
	"testing"

	g "github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnmpCswSwitchStateName(t *testing.T) {
	want := map[int]string{
		1:  "waiting",
		2:  "progressing",
		3:  "added",
		4:  "ready",
		5:  "sdmMismatch",
		6:  "verMismatch",
		7:  "featureMismatch",
		8:  "newMasterInit",
		9:  "provisioned",
		10: "invalid",
		11: "removed",
	}

	for code, name := range want {
		assert.Equal(t, name, NewSnmpCswSwitchState(code).Name(), "code %d", code)
	}

	for _, code := range []int{-1, 0, 12, 255, 260} {
		assert.Equal(t, "UNKNOWN", NewSnmpCswSwitchState(code).Name(), "code %d", code)
	}
}

func TestParseSnmpCswSwitchState(t *testing.T) {
	tests := []struct {
		raw      string
		wantName string
		wantCode int
	}{
		{"4", "ready", 4},
		{" 9 ", "provisioned", 9},
		{"11", "removed", 11},
		{"0", "UNKNOWN", 0},
		{"260", "UNKNOWN", 260},
		{"ready", "UNKNOWN", 0},
		{"", "UNKNOWN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			state, code := ParseSnmpCswSwitchState(tt.raw)
			assert.Equal(t, tt.wantName, state.Name())
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestIcingaStatusVal(t *testing.T) {
	tests := []struct {
		status   IcingaStatusVal
		name     string
		exitCode int
	}{
		{IcingaOK, "OK", 0},
		{IcingaWARN, "WARNING", 1},
		{IcingaCRITICAL, "CRITICAL", 2},
		{IcingaUNKNOWN, "UNKNOWN", 3},
		{IcingaStatusVal(9), "UnknownClass(9)", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.status.String())
		assert.Equal(t, tt.exitCode, tt.status.ExitCode())
	}
}

func TestEnumValue(t *testing.T) {
	version := NewSnmpVersionValue()
	assert.Equal(t, "2c", version.String())
	assert.Equal(t, "SnmpVersion", version.Type())

	require.NoError(t, version.Set("V3"))
	assert.Equal(t, g.Version3, version.Value)
	assert.Equal(t, "3", version.String())

	err := version.Set("1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid options are: 2c, v2c, 3, v3")
	assert.Equal(t, g.Version3, version.Value)

	priv := NewSnmpV3PrivProtocolValue()
	require.NoError(t, priv.Set("aes256c"))
	assert.Equal(t, g.AES256C, priv.Value)

	auth := NewSnmpV3AuthProtocolValue()
	require.NoError(t, auth.Set("SHA512"))
	assert.Equal(t, g.SHA512, auth.Value)

	level := NewSnmpV3MsgFlagsValue()
	assert.Equal(t, "authpriv", level.String())
	require.NoError(t, level.Set("authNoPriv"))
	assert.Equal(t, g.AuthNoPriv, level.Value)
}
