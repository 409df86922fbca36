package cli

import (
	"fmt"
	"os"

	"github.com/andy/rolodex/internal/tui"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the interactive shell",
	Long:  `Launch the interactive assistant shell for conversational contact management.`,
	Run:   launchShell,
}

func launchShell(cmd *cobra.Command, args []string) {
	if err := tui.Run(appInstance); err != nil {
		fmt.Fprintf(os.Stderr, "shell error: %v\n", err)
		os.Exit(1)
	}
}
