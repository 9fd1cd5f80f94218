package registry

import (
	"bytes"
	"encoding/json"
)

// UnknownVersion is used when the registry has no "latest" dist-tag.
const UnknownVersion = "unknown"

// Package is the subset of registry metadata used to render documentation.
// Empty strings and nil pointers mean the field was absent.
type Package struct {
	Name        string
	Version     string
	Description string
	Homepage    string
	Repository  *Repository
	Bugs        *Bugs
	License     string
	Author      Author
	Keywords    []string
}

// Repository is the source-control reference of a package.
type Repository struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Bugs holds the issue tracker location.
type Bugs struct {
	URL string `json:"url,omitempty"`
}

// document mirrors the registry JSON. Loosely typed fields stay raw because
// published metadata does not always follow the documented shapes.
type document struct {
	Name        string                     `json:"name"`
	DistTags    map[string]json.RawMessage `json:"dist-tags"`
	Description json.RawMessage            `json:"description"`
	Homepage    json.RawMessage            `json:"homepage"`
	Repository  json.RawMessage            `json:"repository"`
	Bugs        json.RawMessage            `json:"bugs"`
	License     json.RawMessage            `json:"license"`
	Author      json.RawMessage            `json:"author"`
	Keywords    json.RawMessage            `json:"keywords"`
}

// UnmarshalJSON decodes a registry document. Only a malformed document or a
// non-string name is an error; unexpected shapes of optional fields are
// treated as absent.
func (p *Package) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*p = Package{
		Name:        doc.Name,
		Version:     UnknownVersion,
		Description: rawString(doc.Description),
		Homepage:    rawString(doc.Homepage),
		License:     decodeLicense(doc.License),
		Author:      decodeAuthor(doc.Author),
		Keywords:    decodeKeywords(doc.Keywords),
	}
	if latest := rawString(doc.DistTags["latest"]); latest != "" {
		p.Version = latest
	}
	var repo Repository
	if isObject(doc.Repository) && json.Unmarshal(doc.Repository, &repo) == nil && repo.URL != "" {
		p.Repository = &repo
	}
	var bugs Bugs
	if isObject(doc.Bugs) && json.Unmarshal(doc.Bugs, &bugs) == nil && bugs.URL != "" {
		p.Bugs = &bugs
	}
	return nil
}

func decodeAuthor(raw json.RawMessage) Author {
	if text := rawString(raw); text != "" {
		return AuthorText(text)
	}
	if !isObject(raw) {
		return nil
	}
	var record AuthorRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil
	}
	return record
}

// decodeLicense accepts the SPDX string form and the legacy {type, url} form.
func decodeLicense(raw json.RawMessage) string {
	if text := rawString(raw); text != "" {
		return text
	}
	var legacy struct {
		Type string `json:"type"`
	}
	if isObject(raw) && json.Unmarshal(raw, &legacy) == nil {
		return legacy.Type
	}
	return ""
}

func decodeKeywords(raw json.RawMessage) []string {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return nil
	}
	keywords := make([]string, 0, len(items))
	for _, item := range items {
		if keyword := rawString(item); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	return keywords
}

func rawString(raw json.RawMessage) string {
	var text string
	if json.Unmarshal(raw, &text) != nil {
		return ""
	}
	return text
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
