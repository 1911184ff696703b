package models

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var (
	// ErrUnknownField is returned for a field name outside the contact form
	ErrUnknownField = errors.New("unknown form field")
	// ErrMissingField is returned when a required field is empty
	ErrMissingField = errors.New("required field is empty")
	// ErrInvalidEmail is returned when the email field is not an address
	ErrInvalidEmail = errors.New("invalid email address")
)

// Field names a contact form input
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPackage Field = "package"
	FieldMessage Field = "message"
)

var allFields = []Field{FieldName, FieldEmail, FieldPackage, FieldMessage}

// Fields returns the form fields in display order
func Fields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// ParseField converts a form input name to a Field
func ParseField(s string) (Field, error) {
	f := Field(s)
	switch f {
	case FieldName, FieldEmail, FieldPackage, FieldMessage:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Required reports whether the form marks the field as required
func (f Field) Required() bool {
	return f != FieldMessage
}

// ContactFormData holds the values of the contact form
type ContactFormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Package string `json:"package"`
	Message string `json:"message"`
}

// Get returns the value of a field
func (d ContactFormData) Get(f Field) (string, error) {
	switch f {
	case FieldName:
		return d.Name, nil
	case FieldEmail:
		return d.Email, nil
	case FieldPackage:
		return d.Package, nil
	case FieldMessage:
		return d.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// Set overwrites a single field
func (d *ContactFormData) Set(f Field, value string) error {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPackage:
		d.Package = value
	case FieldMessage:
		d.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

// IsEmpty reports whether every field is the empty string
func (d ContactFormData) IsEmpty() bool {
	return d == ContactFormData{}
}

// Validate applies the required and email-format hints the form declares.
// It does not check the package against the catalog.
func (d ContactFormData) Validate() error {
	var errs []error
	for _, f := range allFields {
		if !f.Required() {
			continue
		}
		v, _ := d.Get(f)
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, f))
		}
	}
	if strings.TrimSpace(d.Email) != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidEmail, d.Email))
		}
	}
	return errors.Join(errs...)
}

// Inquiry is a submitted contact form as handed to a sink
type Inquiry struct {
	ID         string          `json:"id"`
	ReceivedAt time.Time       `json:"received_at"`
	Form       ContactFormData `json:"form"`
}
