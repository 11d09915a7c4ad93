// Command nm inspects and controls NetworkManager over D-Bus.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/danderson/networkmanager"
	"github.com/danderson/networkmanager/bus"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/kelseyhightower/envconfig"
)

// environment holds the defaults for global flags, read from NM_*
// environment variables.
type environment struct {
	BusAddress string        `envconfig:"BUS_ADDRESS"`
	Timeout    time.Duration `default:"25s"`
	Format     string        `default:"text"`
}

var envDefaults environment

// applyDefaults fills global flags left unset from envDefaults.
func applyDefaults() {
	if globalArgs.Address == "" {
		globalArgs.Address = envDefaults.BusAddress
	}
	if globalArgs.Timeout == 0 {
		globalArgs.Timeout = envDefaults.Timeout
	}
	if globalArgs.Format == "" {
		globalArgs.Format = envDefaults.Format
	}
}

var globalArgs struct {
	Address string        `flag:"address,Bus address to connect to (default: $NM_BUS_ADDRESS or the system bus)"`
	Timeout time.Duration `flag:"timeout,Timeout for each call to NetworkManager (default: $NM_TIMEOUT or 25s)"`
	Format  string        `flag:"format,Output format text or yaml (default: $NM_FORMAT or text)"`
	Verbose int           `flag:"v,Log verbosity (1 logs every bus call)"`
}

func logger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
		} else {
			fmt.Fprintln(os.Stderr, args)
		}
	}, funcr.Options{Verbosity: globalArgs.Verbose})
}

func busConn(ctx context.Context) (*bus.Conn, error) {
	opts := bus.Options{
		Timeout: globalArgs.Timeout,
		Logger:  logger(),
	}
	if globalArgs.Address != "" {
		return bus.Dial(ctx, globalArgs.Address, opts)
	}
	return bus.SystemBus(ctx, opts)
}

// withClient connects to the bus and calls fn with a NetworkManager
// client.
func withClient(env *command.Env, fn func(context.Context, networkmanager.Client, *printer) error) error {
	applyDefaults()
	conn, err := busConn(env.Context())
	if err != nil {
		return fmt.Errorf("connecting to bus: %w", err)
	}
	defer conn.Close()
	p, err := newPrinter(os.Stdout, globalArgs.Format)
	if err != nil {
		return err
	}
	if err := fn(env.Context(), networkmanager.New(conn), p); err != nil {
		return err
	}
	return p.Flush()
}

func main() {
	if err := envconfig.Process("nm", &envDefaults); err != nil {
		fmt.Fprintf(os.Stderr, "reading environment: %v\n", err)
		os.Exit(2)
	}

	root := &command.C{
		Name:     "nm",
		Usage:    "command args...",
		Help:     "Inspect and control NetworkManager.",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "status",
				Usage: "status",
				Help:  "Show NetworkManager's overall state.",
				Run:   command.Adapt(runStatus),
			},
			{
				Name:     "devices",
				Usage:    "devices",
				Help:     "List network devices.",
				SetFlags: command.Flags(flax.MustBind, &devicesArgs),
				Run:      command.Adapt(runDevices),
			},
			{
				Name:  "device",
				Usage: "device args...",
				Commands: []*command.C{
					{
						Name:  "show",
						Usage: "show iface",
						Help:  "Show the details of a device.",
						Run:   command.Adapt(runDeviceShow),
					},
					{
						Name:  "reapply",
						Usage: "reapply iface",
						Help: `Reapply a device's applied connection.

The applied connection is read and sent back unchanged, which makes
NetworkManager reconfigure the device without a full reactivation.`,
						Run: command.Adapt(runDeviceReapply),
					},
					{
						Name:  "disconnect",
						Usage: "disconnect iface",
						Help:  "Disconnect a device.",
						Run:   command.Adapt(runDeviceDisconnect),
					},
				},
			},
			{
				Name:  "wifi",
				Usage: "wifi args...",
				Commands: []*command.C{
					{
						Name:     "list",
						Usage:    "list [iface]",
						Help:     "List visible access points, strongest first.",
						SetFlags: command.Flags(flax.MustBind, &wifiListArgs),
						Run:      runWifiList,
					},
					{
						Name:  "scan",
						Usage: "scan [iface] [ssid...]",
						Help: `Request a scan on Wi-Fi devices.

With no iface, every Wi-Fi device scans. SSIDs are scanned for actively,
which finds hidden networks.`,
						Run: runWifiScan,
					},
				},
			},
			{
				Name:  "connections",
				Usage: "connections",
				Help:  "List connection profiles.",
				Run:   command.Adapt(runConnections),
			},
			{
				Name:  "connection",
				Usage: "connection args...",
				Commands: []*command.C{
					{
						Name:     "show",
						Usage:    "show uuid",
						Help:     "Show the settings of a connection profile.",
						SetFlags: command.Flags(flax.MustBind, &connShowArgs),
						Run:      command.Adapt(runConnectionShow),
					},
					{
						Name:  "delete",
						Usage: "delete uuid",
						Help:  "Delete a connection profile.",
						Run:   command.Adapt(runConnectionDelete),
					},
				},
			},
			{
				Name:  "reload",
				Usage: "reload [conf|dns-rc|dns-full...]",
				Help:  "Reload NetworkManager's configuration. With no arguments, reload everything.",
				Run:   runReload,
			},
			{
				Name:  "networking",
				Usage: "networking on|off",
				Help:  "Enable or disable all networking.",
				Run:   command.Adapt(runNetworking),
			},
			{
				Name:  "radio",
				Usage: "radio wifi|wwan on|off",
				Help:  "Enable or disable a radio.",
				Run:   command.Adapt(runRadio),
			},
			{
				Name:  "objects",
				Usage: "objects",
				Help:  "List the objects NetworkManager exports, and their interfaces.",
				Run:   command.Adapt(runObjects),
			},
			{
				Name:     "generate",
				Usage:    "generate dir",
				Help:     "Generate interface clients from the introspection XML files in dir.",
				SetFlags: command.Flags(flax.MustBind, &generateArgs),
				Run:      command.Adapt(runGenerate),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}
