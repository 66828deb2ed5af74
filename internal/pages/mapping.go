package pages

import (
	"github.com/JaimeStill/scaffold/pkg/query"
	"github.com/JaimeStill/scaffold/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "pages", "p").
	Project("id", "ID").
	Project("slug", "Slug").
	Project("title", "Title").
	Project("content", "Content").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Title"}

func scanPage(s repository.Scanner) (Page, error) {
	var p Page
	err := s.Scan(
		&p.ID, &p.Slug, &p.Title,
		&p.Content, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
