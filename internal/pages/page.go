package pages

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HomeSlug is the page rendered by the index action.
const HomeSlug = "home"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Page is a titled block of content addressed by slug.
type Page struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand carries the fields of a new page.
type CreateCommand struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate normalizes the command and checks required fields.
func (c *CreateCommand) Validate() error {
	c.Slug = strings.ToLower(strings.TrimSpace(c.Slug))
	c.Title = strings.TrimSpace(c.Title)

	if !slugPattern.MatchString(c.Slug) {
		return ErrInvalidSlug
	}
	if c.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

// UpdateCommand carries the editable fields of a page.
type UpdateCommand struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate normalizes the command and checks required fields.
func (c *UpdateCommand) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return ErrTitleRequired
	}
	return nil
}
