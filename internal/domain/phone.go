package domain

// phoneLength is the required number of digits in a phone number.
const phoneLength = 10

// PhoneNumber is a validated phone number: exactly ten decimal digits.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber creates a phone number, validating the format
func NewPhoneNumber(raw string) (*PhoneNumber, error) {
	if err := validatePhone(raw); err != nil {
		return nil, err
	}
	return &PhoneNumber{value: raw}, nil
}

// Set replaces the value after re-validating it. On failure the
// existing value is left untouched.
func (p *PhoneNumber) Set(raw string) error {
	if err := validatePhone(raw); err != nil {
		return err
	}
	p.value = raw
	return nil
}

// String returns the raw digit string
func (p *PhoneNumber) String() string {
	return p.value
}

func validatePhone(raw string) error {
	if len(raw) != phoneLength {
		return &ValidationError{Message: "Invalid phone format"}
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return &ValidationError{Message: "Invalid phone format"}
		}
	}
	return nil
}
