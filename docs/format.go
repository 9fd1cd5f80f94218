package docs

import (
	"strings"

	"github.com/viant/npmdocs-mcp/registry"
)

const notSpecified = "Not specified"

// Format renders pkg as a markdown document with a title, quick links,
// package details and (when present) keywords.
func Format(pkg *registry.Package) string {
	fragments := []string{
		"# " + pkg.Name + "@" + version(pkg),
		optional(pkg.Description, "", "\n"),
		"## Quick Links",
		optional(documentationLink(pkg), "- Documentation: ", ""),
		optional(issuesLink(pkg), "- Issues: ", ""),
		optional(repositoryLink(pkg), "- Repository: ", ""),
		"## Package Details",
		"- License: " + orDefault(pkg.License, notSpecified),
		"- Author: " + author(pkg.Author),
		keywords(pkg.Keywords),
	}
	return join(fragments)
}

func join(fragments []string) string {
	kept := fragments[:0]
	for _, fragment := range fragments {
		if fragment != "" {
			kept = append(kept, fragment)
		}
	}
	return strings.Join(kept, "\n")
}

func optional(value, prefix, suffix string) string {
	if value == "" {
		return ""
	}
	return prefix + value + suffix
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func version(pkg *registry.Package) string {
	return orDefault(pkg.Version, registry.UnknownVersion)
}

func author(a registry.Author) string {
	if a == nil {
		return notSpecified
	}
	return orDefault(a.String(), notSpecified)
}

func keywords(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n## Keywords")
	for _, item := range items {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
	return b.String()
}

func issuesLink(pkg *registry.Package) string {
	if pkg.Bugs == nil {
		return ""
	}
	return pkg.Bugs.URL
}

func repositoryURL(pkg *registry.Package) string {
	if pkg.Repository == nil {
		return ""
	}
	return pkg.Repository.URL
}

// documentationLink prefers the homepage and falls back to a browsable form
// of the repository URL with the .git suffix removed.
func documentationLink(pkg *registry.Package) string {
	if pkg.Homepage != "" {
		return pkg.Homepage
	}
	raw := repositoryURL(pkg)
	if raw == "" {
		return ""
	}
	raw = strings.TrimPrefix(raw, "git+")
	raw = strings.TrimSuffix(raw, ".git")
	return httpsScheme(raw)
}

// repositoryLink normalises the scheme like documentationLink but keeps the
// .git suffix.
func repositoryLink(pkg *registry.Package) string {
	raw := repositoryURL(pkg)
	if raw == "" {
		return ""
	}
	return httpsScheme(strings.TrimPrefix(raw, "git+"))
}

func httpsScheme(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "git:"); ok {
		return "https:" + rest
	}
	return raw
}
