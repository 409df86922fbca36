package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andy/rolodex/internal/db"
	"github.com/andy/rolodex/internal/domain"
)

// BookRepo is a SQLite implementation of BookRepository
type BookRepo struct {
	db *db.DB
}

// NewBookRepo creates a new BookRepo
func NewBookRepo(database *db.DB) *BookRepo {
	return &BookRepo{db: database}
}

// Load reads every contact and its phones back into an address book,
// in stored position order so iteration order survives the round trip.
func (r *BookRepo) Load(ctx context.Context) (*domain.AddressBook, error) {
	book := domain.NewAddressBook()

	type contactRow struct {
		id       int64
		name     string
		birthday sql.NullString
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, birthday
		FROM contacts
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]contactRow, 0)
	for rows.Next() {
		var c contactRow
		if err := rows.Scan(&c.id, &c.name, &c.birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	for _, c := range contacts {
		record := domain.NewRecord(c.name)

		phones, err := r.loadPhones(ctx, c.id)
		if err != nil {
			return nil, err
		}
		for _, number := range phones {
			if err := record.AddPhone(number); err != nil {
				return nil, fmt.Errorf("stored phone for %q is invalid: %w", c.name, err)
			}
		}

		if c.birthday.Valid {
			if err := record.SetBirthday(c.birthday.String); err != nil {
				return nil, fmt.Errorf("stored birthday for %q is invalid: %w", c.name, err)
			}
		}

		book.Add(record)
	}

	return book, nil
}

// loadPhones returns a contact's phone numbers in stored order
func (r *BookRepo) loadPhones(ctx context.Context, contactID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT number
		FROM phones
		WHERE contact_id = ?
		ORDER BY position
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load phones: %w", err)
	}
	defer rows.Close()

	phones := make([]string, 0)
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones = append(phones, number)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phones: %w", err)
	}

	return phones, nil
}

// Save replaces the stored state with the given book in one
// transaction: wipe, then reinsert in book order.
func (r *BookRepo) Save(ctx context.Context, book *domain.AddressBook) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM phones"); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for position, record := range book.Records() {
		var birthday sql.NullString
		if b := record.Birthday(); b != nil {
			birthday = sql.NullString{String: b.String(), Valid: true}
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO contacts (name, birthday, position)
			VALUES (?, ?, ?)
		`, record.Name(), birthday, position)
		if err != nil {
			return fmt.Errorf("failed to save contact %q: %w", record.Name(), err)
		}

		contactID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get contact ID: %w", err)
		}

		for phonePos, phone := range record.Phones() {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO phones (contact_id, number, position)
				VALUES (?, ?, ?)
			`, contactID, phone.String(), phonePos)
			if err != nil {
				return fmt.Errorf("failed to save phone for %q: %w", record.Name(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}

	return nil
}
