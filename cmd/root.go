package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wgtui/collector"
	"wgtui/config"
	"wgtui/engine"
	"wgtui/ui"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `wgtui v%s — terminal status console for local WireGuard interfaces

Usage:
  wgtui [OPTIONS]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            Print interface status to stdout, then exit
  -json             Single JSON snapshot to stdout, then exit
  -version          Print version and exit

Options:
  -confdir PATH     WireGuard configuration directory (default: /etc/wireguard)
  -wg PATH          wg binary (default: wg from PATH)
  -wg-quick PATH    wg-quick binary (default: wg-quick from PATH)
  -iface NAME       Restrict -watch output to one interface
  -reveal           Show private keys in -watch and -json output

Examples:
  sudo wgtui                        Interactive TUI
  sudo wgtui -watch                 All interfaces, one shot
  sudo wgtui -watch -iface wg0      One interface
  sudo wgtui -json | jq 'keys'      Interface names as JSON
  wgtui -version
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var (
		confDir     = flag.String("confdir", cfg.ConfDir, "WireGuard configuration directory")
		wgPath      = flag.String("wg", cfg.WgPath, "Path to the wg binary")
		wgQuickPath = flag.String("wg-quick", cfg.WgQuickPath, "Path to the wg-quick binary")
		watchMode   = flag.Bool("watch", false, "Print interface status to stdout and exit (no TUI)")
		jsonMode    = flag.Bool("json", false, "Output a single JSON snapshot and exit")
		ifaceName   = flag.String("iface", "", "Restrict -watch output to one interface")
		reveal      = flag.Bool("reveal", false, "Show private keys in -watch and -json output")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("wgtui v%s\n", Version)
		return nil
	}

	runner := collector.NewToolRunner(*wgPath, *wgQuickPath)
	reg := engine.NewRegistry(runner, *confDir)

	if *jsonMode {
		return runJSON(reg, *reveal)
	}
	if *watchMode {
		return runWatch(reg, *ifaceName, *reveal)
	}

	m := ui.NewModel(reg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runJSON refreshes once and writes the interface map as indented JSON.
// Private keys stay redacted unless -reveal is set, same as every other
// output surface.
func runJSON(reg *engine.Registry, reveal bool) error {
	if err := reg.Refresh(); err != nil {
		return err
	}
	if reveal {
		reg.ToggleShowPrivate()
	}
	return writeJSON(reg, os.Stdout)
}

func writeJSON(reg *engine.Registry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reg.Snapshot())
}

// runWatch refreshes once and prints the rendered interfaces in sorted
// order, or a single one when iface is set.
func runWatch(reg *engine.Registry, iface string, reveal bool) error {
	if err := reg.Refresh(); err != nil {
		return err
	}
	if reveal {
		reg.ToggleShowPrivate()
	}

	names := reg.Names()
	if iface != "" {
		if _, ok := reg.Get(iface); !ok {
			return fmt.Errorf("unknown interface %q", iface)
		}
		names = []string{iface}
	}

	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}
		text, err := reg.Render(name)
		if err != nil {
			return err
		}
		fmt.Printf("== %s ==\n%s", name, text)
		fmt.Println()
	}
	return nil
}
