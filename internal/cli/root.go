package cli

import (
	"github.com/andy/rolodex/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "A CLI contact manager with birthday reminders",
	Long: `Rolodex stores contacts with phone numbers and birthdays and tells you
whose birthday is coming up.

By default, running rolodex without arguments launches the interactive shell.
Use subcommands for one-shot CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch the interactive shell
		launchShell(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addBirthdayCmd)
	rootCmd.AddCommand(showBirthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(resetCmd)
}
