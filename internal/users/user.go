package users

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.-]{3,32}$`)

// User is an account known to the application.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand carries the fields of a new user.
type CreateCommand struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Validate normalizes the command and checks its fields.
func (c *CreateCommand) Validate() error {
	c.Username = strings.ToLower(strings.TrimSpace(c.Username))
	c.Email = strings.TrimSpace(c.Email)

	if !usernamePattern.MatchString(c.Username) {
		return ErrInvalidUsername
	}
	return validateEmail(c.Email)
}

// UpdateCommand carries the editable fields of a user.
type UpdateCommand struct {
	Email string `json:"email"`
}

// Validate normalizes the command and checks its fields.
func (c *UpdateCommand) Validate() error {
	c.Email = strings.TrimSpace(c.Email)
	return validateEmail(c.Email)
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
