package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"veneer/internal/client"
	"veneer/internal/config"
	"veneer/internal/interpreter"
	"veneer/internal/protocol"
	"veneer/internal/state"
	"veneer/internal/theme"
	"veneer/internal/tui"
	"veneer/pkg/logging"
)

var noTUI bool      // --no-tui: headless mode, print backend messages to the console
var showTuiLog bool // --debug-tui: show the activity log inside the TUI
var themeFlag string

func newConnectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect [url]",
		Short: "Connect to a UI backend and render its interface",
		Long: `Connects to a UI backend over a websocket and renders the interface it
pushes. It can run in two modes:

1. Interactive TUI Mode (default):
   - Renders the backend's widget tree and keeps it live across updates.
   - Keyboard focus traverses the interactive widgets; every click, change,
     and submit is reported back to the backend as an event.
   - A dropped connection is shown with the reason; press 'r' to reconnect.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Connects and prints every backend message to the console as it
     arrives, rendering pushed trees as plain text.
   - Useful for probing a backend or scripting. Runs until terminated
     (e.g., Ctrl+C).

Arguments:
  [url]: The websocket URL of the backend (e.g., "ws://localhost:8090/ui").
         Optional when an endpoint is set in the configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConnect,
	}

	cmd.Flags().StringVar(&themeFlag, "theme", "", "widget theme: fluent, macos, material, or cupertino")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "run headless and print backend messages to the console")
	cmd.Flags().BoolVar(&showTuiLog, "debug-tui", false, "show the activity log inside the TUI")
	return cmd
}

func runConnect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	endpoint := cfg.Endpoint
	if len(args) == 1 {
		endpoint = args[0]
	}
	if endpoint == "" {
		return fmt.Errorf("no backend endpoint: pass a websocket URL or set 'endpoint' in the config file")
	}

	th := theme.Parse(cfg.Theme)
	if themeFlag != "" {
		th = theme.Parse(themeFlag)
	}
	level := logging.ParseLevel(cfg.LogLevel)

	if noTUI {
		return runHeadless(endpoint, th, level)
	}

	logCh := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()
	return tui.Run(tui.Options{
		Endpoint: endpoint,
		Theme:    th,
		ShowLog:  showTuiLog,
		LogCh:    logCh,
	})
}

// runHeadless connects without a TUI and prints backend messages until the
// process is interrupted.
func runHeadless(endpoint string, th theme.ID, level logging.LogLevel) error {
	logging.InitForCLI(level, os.Stderr)

	store := state.NewStore(th)
	renderer := interpreter.New(theme.NewRegistry())

	onEnvelope := func(env protocol.Envelope) {
		switch env.Action {
		case protocol.ActionUpdateUI:
			if env.Update == nil {
				return
			}
			store.ApplyPatch(state.PatchFromUpdate(env.Update))
			snap := store.Snapshot()
			if snap.Title != "" {
				fmt.Printf("--- %s ---\n", snap.Title)
			}
			if snap.Tree != nil {
				fmt.Println(renderer.Render(*snap.Tree, snap.Theme).View)
			}
		case protocol.ActionToast:
			if env.Toast != nil {
				fmt.Printf("Toast: %s\n", env.Toast.Message)
			}
		case protocol.ActionDialog:
			if env.Dialog != nil {
				fmt.Printf("Dialog: %s: %s\n", env.Dialog.Title, env.Dialog.Message)
			}
		default:
			logging.Debug("cli", "ignoring envelope with unknown action %q", env.Action)
		}
	}
	onStatus := func(status client.Status, detail string) {
		fmt.Printf("[%s] %s\n", status, detail)
	}

	manager := client.NewManager(endpoint, onEnvelope, onStatus)
	if err := manager.Connect(context.Background()); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("Shutting down...")
	manager.Close()
	return nil
}
