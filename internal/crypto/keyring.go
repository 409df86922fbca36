package crypto

// Keyring stores the database encryption key outside the database
// itself. Only retrieval and first-run setup are needed; the key is
// never rotated or removed by the application.
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	IsAvailable() bool
}

const (
	ServiceName = "rolodex"
	KeyName     = "db-encryption-key"
)

// NewKeyring returns the best available keyring implementation
func NewKeyring() Keyring {
	return newPlatformKeyring()
}
