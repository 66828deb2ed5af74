package users

import (
	"github.com/JaimeStill/scaffold/pkg/query"
	"github.com/JaimeStill/scaffold/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "users", "u").
	Project("id", "ID").
	Project("username", "Username").
	Project("email", "Email").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Username"}

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
