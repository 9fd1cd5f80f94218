package registry

import "strings"

// Author is the package author. The registry stores it either as a plain
// string or as a {name, email, url} record; each form renders itself.
type Author interface {
	String() string
	author()
}

// AuthorText is an author given as a single string, e.g.
// "Jane Doe <jane@example.com> (https://jane.dev)".
type AuthorText string

func (a AuthorText) String() string { return string(a) }
func (AuthorText) author() {}

// AuthorRecord is an author given as a structured record.
type AuthorRecord struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// String renders "name <email> (url)", omitting missing segments.
func (a AuthorRecord) String() string {
	parts := make([]string, 0, 3)
	if a.Name != "" {
		parts = append(parts, a.Name)
	}
	if a.Email != "" {
		parts = append(parts, "<"+a.Email+">")
	}
	if a.URL != "" {
		parts = append(parts, "("+a.URL+")")
	}
	return strings.Join(parts, " ")
}

func (AuthorRecord) author() {}
