package service

import (
	"errors"
	"strings"
	"time"

	"github.com/andy/rolodex/internal/domain"
)

// User-facing messages shared by the CLI commands and the interactive
// shell so both surfaces speak identically.
const (
	MsgContactAdded   = "Contact added."
	MsgContactUpdated = "Contact updated."
	MsgContactDeleted = "Contact deleted."
	MsgBirthdayAdded  = "Birthday added."
	MsgNoBirthday     = "No birthday set."
	MsgNoContacts     = "No contacts."
	MsgNoUpcoming     = "There are no upcoming birthdays."
	MsgNameNotFound   = "Name not found. Please, check and try again."
	MsgBadArguments   = "Enter correct information."
)

// ParseInput splits a shell line into a lowercase command verb and its
// arguments. An empty line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Render converts an operation result into the line shown to the user.
// Every error kind is recoverable and maps to a fixed message; nothing
// escapes to the caller as an error.
func Render(message string, err error) string {
	if err == nil {
		return message
	}
	if errors.Is(err, domain.ErrArgumentCount) {
		return MsgBadArguments
	}
	// Validation and not-found errors carry their display text.
	return err.Error()
}

func nameNotFound() error {
	return &domain.NotFoundError{Message: MsgNameNotFound}
}

// AddContact handles "add [name phone]". It creates the contact when
// the name is new and appends the phone either way. The phone is
// validated before the contact is created, so a rejected phone leaves
// the book untouched.
func AddContact(args []string, book *domain.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", domain.ErrArgumentCount
	}
	name, phone := args[0], args[1]

	record := book.Find(name)
	if record != nil {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		return MsgContactUpdated, nil
	}

	record = domain.NewRecord(name)
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	book.Add(record)
	return MsgContactAdded, nil
}

// ChangeContact handles "change [name old new]", replacing the first
// phone equal to old.
func ChangeContact(args []string, book *domain.AddressBook) (string, error) {
	if len(args) < 3 {
		return "", domain.ErrArgumentCount
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record := book.Find(name)
	if record == nil {
		return "", nameNotFound()
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return MsgContactUpdated, nil
}

// ShowPhone handles "phone [name]", listing the contact's numbers.
func ShowPhone(args []string, book *domain.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", domain.ErrArgumentCount
	}

	record := book.Find(args[0])
	if record == nil {
		return "", nameNotFound()
	}

	phones := record.Phones()
	rendered := make([]string, len(phones))
	for i, p := range phones {
		rendered[i] = p.String()
	}
	return strings.Join(rendered, "; "), nil
}

// ShowAll lists every contact, one per line, in insertion order.
func ShowAll(book *domain.AddressBook) (string, error) {
	records := book.Records()
	if len(records) == 0 {
		return MsgNoContacts, nil
	}

	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = record.String()
	}
	return strings.Join(lines, "\n"), nil
}

// DeleteContact handles "delete [name]".
func DeleteContact(args []string, book *domain.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", domain.ErrArgumentCount
	}

	name := args[0]
	if book.Find(name) == nil {
		return "", nameNotFound()
	}
	book.Delete(name)
	return MsgContactDeleted, nil
}

// AddBirthday handles "add-birthday [name birthday]".
func AddBirthday(args []string, book *domain.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", domain.ErrArgumentCount
	}
	name, birthday := args[0], args[1]

	record := book.Find(name)
	if record == nil {
		return "", nameNotFound()
	}
	if err := record.SetBirthday(birthday); err != nil {
		return "", err
	}
	return MsgBirthdayAdded, nil
}

// ShowBirthday handles "show-birthday [name]", printing the birthday
// exactly as it was entered.
func ShowBirthday(args []string, book *domain.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", domain.ErrArgumentCount
	}

	record := book.Find(args[0])
	if record == nil {
		return "", nameNotFound()
	}
	if record.Birthday() == nil {
		return MsgNoBirthday, nil
	}
	return record.Birthday().String(), nil
}

// Birthdays lists the contacts with a birthday in the next windowDays
// days, one "name: date" per line in book order.
func Birthdays(book *domain.AddressBook, today time.Time, windowDays int) (string, error) {
	reminders := book.UpcomingBirthdays(today, windowDays)
	if len(reminders) == 0 {
		return MsgNoUpcoming, nil
	}

	lines := make([]string, len(reminders))
	for i, reminder := range reminders {
		lines[i] = reminder.Name + ": " + reminder.Date
	}
	return strings.Join(lines, "\n"), nil
}
