package main

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestListSeeders_Sorted(t *testing.T) {
	var names []string
	for _, s := range listSeeders() {
		names = append(names, s.Name())
	}

	if !slices.Equal(names, []string{"pages", "users"}) {
		t.Errorf("seeders = %v, want [pages users]", names)
	}
}

func TestPageSeeder_EmbeddedData(t *testing.T) {
	data, err := (&PageSeeder{}).load()
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	var slugs []string
	for _, p := range data.Pages {
		if err := p.Validate(); err != nil {
			t.Errorf("page %q invalid: %v", p.Slug, err)
		}
		slugs = append(slugs, p.Slug)
	}

	if !slices.Equal(slugs, []string{"home", "about"}) {
		t.Errorf("slugs = %v, want [home about]", slugs)
	}
}

func TestUserSeeder_EmbeddedData(t *testing.T) {
	content, err := readSeedFile("", "seeds/users.json")
	if err != nil {
		t.Fatalf("readSeedFile() error = %v", err)
	}

	var data UserSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, u := range data.Users {
		if err := u.Validate(); err != nil {
			t.Errorf("user %q invalid: %v", u.Username, err)
		}
	}
}

func TestPageSeeder_ExternalFile(t *testing.T) {
	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(string) ([]byte, error) {
		return []byte(`{"pages":[{"slug":"faq","title":"FAQ"}]}`), nil
	}

	s := &PageSeeder{}
	s.SetFile("custom.json")

	data, err := s.load()
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if len(data.Pages) != 1 || data.Pages[0].Slug != "faq" {
		t.Errorf("pages = %+v, want faq", data.Pages)
	}
}
