package tui

import (
	"strconv"
	"time"

	"github.com/andy/rolodex/internal/domain"
	"github.com/andy/rolodex/internal/service"
)

// Fixed shell responses carried over from the assistant-bot verbs that
// have no CLI counterpart.
const (
	msgWelcome   = "Welcome to the assistant bot!"
	msgGreeting  = "How can I help you?"
	msgGoodbye   = "Good bye!"
	msgUnknown   = "Invalid command."
	helpText     = `Commands:
  hello                              greet the bot
  add <name> <phone>                 add a contact or another phone
  change <name> <old> <new>          replace a phone number
  phone <name>                       show a contact's phones
  all                                list all contacts
  delete <name>                      delete a contact
  add-birthday <name> <DD.MM.YYYY>   set a birthday
  show-birthday <name>               show a birthday
  birthdays [days]                   upcoming birthdays
  help                               this message
  close | exit                       save and quit`
)

// dispatch runs one shell line against the book. It returns the output
// to display, whether the shell should quit, and whether the book was
// mutated (so the caller knows to persist it).
func dispatch(book *domain.AddressBook, windowDays int, now time.Time, line string) (output string, quit, mutated bool) {
	command, args := service.ParseInput(line)

	switch command {
	case "":
		return "", false, false

	case "hello":
		return msgGreeting, false, false

	case "help":
		return helpText, false, false

	case "add":
		msg, err := service.AddContact(args, book)
		return service.Render(msg, err), false, err == nil

	case "change":
		msg, err := service.ChangeContact(args, book)
		return service.Render(msg, err), false, err == nil

	case "phone":
		msg, err := service.ShowPhone(args, book)
		return service.Render(msg, err), false, false

	case "all":
		msg, err := service.ShowAll(book)
		return service.Render(msg, err), false, false

	case "delete":
		msg, err := service.DeleteContact(args, book)
		return service.Render(msg, err), false, err == nil

	case "add-birthday":
		msg, err := service.AddBirthday(args, book)
		return service.Render(msg, err), false, err == nil

	case "show-birthday":
		msg, err := service.ShowBirthday(args, book)
		return service.Render(msg, err), false, false

	case "birthdays":
		days := windowDays
		if len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 0 {
				return service.MsgBadArguments, false, false
			}
			days = parsed
		}
		msg, err := service.Birthdays(book, now, days)
		return service.Render(msg, err), false, false

	case "close", "exit":
		return msgGoodbye, true, false

	default:
		return msgUnknown, false, false
	}
}
