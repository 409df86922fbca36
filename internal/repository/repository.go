package repository

import (
	"context"

	"github.com/andy/rolodex/internal/domain"
)

// BookRepository persists the address book as a single unit: the whole
// book is loaded at startup and overwritten on save. There is no
// partial or incremental persistence.
type BookRepository interface {
	// Load restores the book from storage, or returns an empty book
	// when no prior state exists.
	Load(ctx context.Context) (*domain.AddressBook, error)
	// Save overwrites the stored state with the given book.
	Save(ctx context.Context, book *domain.AddressBook) error
}
