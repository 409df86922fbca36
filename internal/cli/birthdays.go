package cli

import (
	"fmt"
	"time"

	"github.com/andy/rolodex/internal/domain"
	"github.com/andy/rolodex/internal/service"
	"github.com/spf13/cobra"
)

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday [name] [DD.MM.YYYY]",
	Short: "Set a contact's birthday",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *domain.AddressBook) (string, error) {
			return service.AddBirthday(args, book)
		})
	},
}

var showBirthdayCmd = &cobra.Command{
	Use:   "show-birthday [name]",
	Short: "Show a contact's birthday",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := service.ShowBirthday(args, appInstance.Book)
		fmt.Println(service.Render(msg, err))
		return nil
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List contacts with a birthday in the upcoming window",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if !cmd.Flags().Changed("days") {
			days = appInstance.Config.Birthdays.WindowDays
		}

		msg, err := service.Birthdays(appInstance.Book, time.Now(), days)
		fmt.Println(service.Render(msg, err))
		return nil
	},
}

func init() {
	birthdaysCmd.Flags().Int("days", domain.DefaultBirthdayWindow, "Window size in days")
}
