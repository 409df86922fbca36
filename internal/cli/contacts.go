package cli

import (
	"context"
	"fmt"

	"github.com/andy/rolodex/internal/domain"
	"github.com/andy/rolodex/internal/service"
	"github.com/spf13/cobra"
)

// Argument counts are validated by the operations themselves so a
// short invocation prints the same "Enter correct information." the
// interactive shell shows, instead of a cobra usage error.

var addCmd = &cobra.Command{
	Use:   "add [name] [phone]",
	Short: "Add a contact, or append a phone to an existing one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *domain.AddressBook) (string, error) {
			return service.AddContact(args, book)
		})
	},
}

var changeCmd = &cobra.Command{
	Use:   "change [name] [old-phone] [new-phone]",
	Short: "Replace one of a contact's phone numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *domain.AddressBook) (string, error) {
			return service.ChangeContact(args, book)
		})
	},
}

var phoneCmd = &cobra.Command{
	Use:   "phone [name]",
	Short: "Show a contact's phone numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := service.ShowPhone(args, appInstance.Book)
		fmt.Println(service.Render(msg, err))
		return nil
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List all contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := service.ShowAll(appInstance.Book)
		fmt.Println(service.Render(msg, err))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a contact",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *domain.AddressBook) (string, error) {
			return service.DeleteContact(args, book)
		})
	},
}

// runMutation executes an operation against the book, prints the
// rendered result, and persists the book when the operation succeeded.
// Domain errors are displayed, not returned; only persistence failures
// surface as command errors.
func runMutation(op func(*domain.AddressBook) (string, error)) error {
	msg, err := op(appInstance.Book)
	fmt.Println(service.Render(msg, err))
	if err != nil {
		return nil
	}

	if err := appInstance.SaveBook(context.Background()); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	return nil
}
