package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jamiereid/check-cisco-stack/internal/pkg/common"
	. "github.com/jamiereid/check-cisco-stack/internal/pkg/common/types"
	"github.com/jamiereid/check-cisco-stack/internal/pkg/stack"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	g "github.com/gosnmp/gosnmp"
)

const programName = "Cisco Stack"
const Version = "2.0"

// Flags that may also come from CHECK_CISCO_STACK_* environment variables.
const envPrefix = "CHECK_CISCO_STACK"

const maxPort = 65535

// Client is an open SNMP session.
type Client interface {
	stack.SNMPClient
	Close() error
}

type Dialer func(cfg *common.SessionConfig) (Client, error)

func dialSNMP(cfg *common.SessionConfig) (Client, error) {
	session, err := common.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ArgumentError is a missing or invalid command line input. The check exits
// UNKNOWN and prints its usage.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

type options struct {
	verbosity int
	version   bool
	timeout   int

	session     common.SessionConfig
	snmpVersion *SnmpVersionValue
	seclevel    *SnmpV3MsgFlagsValue
	authmode    *SnmpV3AuthProtocolValue
	privmode    *SnmpV3PrivProtocolValue

	// part subcommand
	switchNumbers  []int
	expectedStates []int
}

// invocation is one run of the plugin: its options, where it writes, and
// what it decided.
type invocation struct {
	opts   options
	dial   Dialer
	stdout io.Writer
	stderr io.Writer

	status   *IcingaStatus
	exitCode int
}

func newRootCmd(inv *invocation) *cobra.Command {
	opts := &inv.opts
	opts.snmpVersion = NewSnmpVersionValue()
	opts.seclevel = NewSnmpV3MsgFlagsValue()
	opts.authmode = NewSnmpV3AuthProtocolValue()
	opts.privmode = NewSnmpV3PrivProtocolValue()

	rootCmd := &cobra.Command{
		Use:           "check_cisco_stack",
		Short:         "Cisco switch stack member and ring redundancy check plugin",
		Long:          "Checks that every member of a Cisco stack is \"ready\" (CRITICAL otherwise) and that the stack ring is redundant (WARNING otherwise).",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			proceed, err := inv.prepare(cmd)
			if !proceed {
				return err
			}

			inv.status = inv.check(func(client stack.SNMPClient) *IcingaStatus {
				result, err := stack.Poll(client)
				if err != nil {
					slog.Error("Collection failed", "error", err)
					return &IcingaStatus{Value: IcingaCRITICAL, Message: err.Error()}
				}

				exitStatus, message := stack.Evaluate(result.Members, result.Ring)
				return &IcingaStatus{Value: exitStatus, Message: message}
			})
			return nil
		},
	}

	// every invocation must end in a plugin status line
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		inv.exitCode = IcingaUNKNOWN.ExitCode()
	})

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "debug", "d", "Print debug information to stderr (repeat for packet traces)")
	rootCmd.PersistentFlags().BoolVarP(&opts.version, "version", "v", false, "Print the plugin version")

	// connection flags
	rootCmd.PersistentFlags().StringVarP(&opts.session.Host, "host", "H", "", "Hostname or IP address of the stack (required)")
	rootCmd.PersistentFlags().Uint16VarP(&opts.session.Port, "port", "p", 161, "Port remote device SNMP agent is listening on")
	rootCmd.PersistentFlags().IntVarP(&opts.timeout, "timeout", "t", 10, "Seconds to wait for each SNMP request")
	rootCmd.PersistentFlags().Var(opts.snmpVersion, "snmp-version", "SNMP version")

	// snmpv2c flags
	rootCmd.PersistentFlags().StringVarP(&opts.session.Community, "community", "c", "Public", "SNMP community string")

	// snmpv3 flags
	rootCmd.PersistentFlags().StringVarP(&opts.session.SecParams.UserName, "user", "u", "", "SNMPv3 user name")
	rootCmd.PersistentFlags().VarP(opts.seclevel, "seclevel", "l", "SNMPv3 Security Level")
	rootCmd.PersistentFlags().StringVarP(&opts.session.SecParams.AuthenticationPassphrase, "authkey", "A", "", "SNMPv3 auth key")
	rootCmd.PersistentFlags().StringVarP(&opts.session.SecParams.PrivacyPassphrase, "privkey", "X", "", "SNMPv3 priv key")
	rootCmd.PersistentFlags().VarP(opts.authmode, "authmode", "a", "SNMPv3 Auth Mode")
	rootCmd.PersistentFlags().VarP(opts.privmode, "privmode", "x", "SNMPv3 Privacy Mode")

	rootCmd.AddCommand(newPartCmd(inv))

	return rootCmd
}

// prepare sets up logging and resolves the options shared by every command.
// It reports false when the command has nothing left to do.
func (inv *invocation) prepare(cmd *cobra.Command) (bool, error) {
	opts := &inv.opts
	common.SetupLogging(opts.verbosity, inv.stderr)
	slog.Debug("*** Debug mode started ***")

	if opts.version {
		fmt.Fprintf(inv.stdout, "%s plugin version %s\n", programName, Version)
		return false, nil
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return false, fmt.Errorf("binding flags: %w", err)
	}

	opts.session.Host = v.GetString("host")
	port := v.GetInt("port")
	opts.session.Community = v.GetString("community")
	opts.session.SecParams.UserName = v.GetString("user")
	opts.session.SecParams.AuthenticationPassphrase = v.GetString("authkey")
	opts.session.SecParams.PrivacyPassphrase = v.GetString("privkey")
	opts.timeout = v.GetInt("timeout")

	slog.Debug("Printing initial variables", "host", opts.session.Host, "port", port, "version", opts.snmpVersion.String(), "timeout", opts.timeout)

	if opts.session.Host == "" {
		return false, &ArgumentError{Reason: "Requires host to check"}
	}
	if port < 1 || port > maxPort {
		return false, &ArgumentError{Reason: fmt.Sprintf("invalid port %q, valid range is 1 to %d", v.GetString("port"), maxPort)}
	}
	opts.session.Port = uint16(port)

	if opts.timeout <= 0 {
		return false, &ArgumentError{Reason: fmt.Sprintf("invalid timeout %d, must be at least 1 second", opts.timeout)}
	}

	opts.session.Timeout = time.Duration(opts.timeout) * time.Second
	opts.session.Version = opts.snmpVersion.Value

	if opts.session.Version == g.Version3 {
		if opts.session.SecParams.UserName == "" {
			return false, &ArgumentError{Reason: "SNMPv3 requires --user"}
		}
		opts.session.MsgFlags = opts.seclevel.Value
		opts.session.SecParams.AuthenticationProtocol = opts.authmode.Value
		opts.session.SecParams.PrivacyProtocol = opts.privmode.Value
	}

	return true, nil
}

// check opens the session, hands it to fn and closes it again.
func (inv *invocation) check(fn func(client stack.SNMPClient) *IcingaStatus) *IcingaStatus {
	slog.SetDefault(slog.With("target", inv.opts.session.Host))

	client, err := inv.dial(&inv.opts.session)
	if err != nil {
		slog.Error("Problem with connecting to the device", "error", err)
		return &IcingaStatus{Value: IcingaCRITICAL, Message: fmt.Sprintf("Unable to open SNMP session: %v", err)}
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("Closing SNMP session failed", "error", err)
		}
	}()

	return fn(client)
}

// Run executes the plugin with args and returns its exit code. Exactly one
// status line is written to stdout unless only help or the version was asked
// for.
func Run(args []string, stdout, stderr io.Writer, dial Dialer) (exitCode int) {
	inv := &invocation{dial: dial, stdout: stdout, stderr: stderr}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Unexpected failure", "panic", r)
			exitCode = common.WriteStatus(stdout, programName, &IcingaStatus{Value: IcingaUNKNOWN, Message: fmt.Sprintf("unexpected error: %v", r)})
		}
	}()

	rootCmd := newRootCmd(inv)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	executed, err := rootCmd.ExecuteC()
	switch {
	case err != nil:
		exitCode = common.WriteStatus(stdout, programName, &IcingaStatus{Value: IcingaUNKNOWN, Message: err.Error()})
		if executed == nil {
			executed = rootCmd
		}
		executed.Usage()
		return exitCode
	case inv.status != nil:
		return common.WriteStatus(stdout, programName, inv.status)
	default:
		return inv.exitCode
	}
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr, dialSNMP))
}
