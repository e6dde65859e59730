package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "veneer",
	Short: "Render a remote-controlled UI in your terminal",
	Long: `veneer is a thin client for backend-driven interfaces: it connects to a
UI backend over a persistent websocket, interprets the widget tree the
backend pushes, and reports every interaction back as an event. The
client holds no UI logic of its own.`,
	// SilenceUsage prevents printing the usage message on errors we handle
	// ourselves (failed connections, bad arguments).
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen once.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "veneer version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newConnectCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
