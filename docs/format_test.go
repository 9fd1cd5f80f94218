package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/npmdocs-mcp/registry"
)

func TestFormat(t *testing.T) {
	var testCases = []struct {
		description string
		pkg         *registry.Package
		expect      string
	}{
		{
			description: "full metadata",
			pkg: &registry.Package{
				Name:        "express",
				Version:     "4.19.2",
				Description: "Fast, unopinionated, minimalist web framework",
				Homepage:    "http://expressjs.com/",
				Repository:  &registry.Repository{Type: "git", URL: "git+https://github.com/expressjs/express.git"},
				Bugs:        &registry.Bugs{URL: "https://github.com/expressjs/express/issues"},
				License:     "MIT",
				Author:      registry.AuthorRecord{Name: "TJ Holowaychuk", Email: "tj@vision-media.ca"},
				Keywords:    []string{"express", "framework"},
			},
			expect: `# express@4.19.2
Fast, unopinionated, minimalist web framework

## Quick Links
- Documentation: http://expressjs.com/
- Issues: https://github.com/expressjs/express/issues
- Repository: https://github.com/expressjs/express.git
## Package Details
- License: MIT
- Author: TJ Holowaychuk <tj@vision-media.ca>

## Keywords
- express
- framework`,
		},
		{
			description: "bare minimum",
			pkg:         &registry.Package{Name: "tiny", Version: registry.UnknownVersion},
			expect: `# tiny@unknown
## Quick Links
## Package Details
- License: Not specified
- Author: Not specified`,
		},
		{
			description: "documentation derived from repository",
			pkg: &registry.Package{
				Name:       "lib",
				Version:    "1.0.0",
				Repository: &registry.Repository{URL: "git://github.com/a/lib.git"},
				Author:     registry.AuthorText("Jane Doe <jane@x.com> (https://jane.dev)"),
			},
			expect: `# lib@1.0.0
## Quick Links
- Documentation: https://github.com/a/lib
- Repository: https://github.com/a/lib.git
## Package Details
- License: Not specified
- Author: Jane Doe <jane@x.com> (https://jane.dev)`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.EqualValues(t, tc.expect, Format(tc.pkg))
		})
	}
}

func TestFormat_TitleLine(t *testing.T) {
	actual := Format(&registry.Package{Name: "p"})
	assert.EqualValues(t, "# p@unknown", strings.SplitN(actual, "\n", 2)[0])
}

func TestFormat_Links(t *testing.T) {
	var testCases = []struct {
		description   string
		repository    string
		homepage      string
		documentation string
		repositoryURL string
	}{
		{
			description:   "git+https with .git suffix",
			repository:    "git+https://host/path.git",
			documentation: "https://host/path",
			repositoryURL: "https://host/path.git",
		},
		{
			description:   "plain https",
			repository:    "https://host/path",
			documentation: "https://host/path",
			repositoryURL: "https://host/path",
		},
		{
			description:   "git scheme",
			repository:    "git://host/path.git",
			documentation: "https://host/path",
			repositoryURL: "https://host/path.git",
		},
		{
			description:   "git+ssh",
			repository:    "git+ssh://git@host/path.git",
			documentation: "ssh://git@host/path",
			repositoryURL: "ssh://git@host/path.git",
		},
		{
			description:   "homepage wins",
			repository:    "git+https://host/path.git",
			homepage:      "https://docs.host",
			documentation: "https://docs.host",
			repositoryURL: "https://host/path.git",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			pkg := &registry.Package{
				Name:       "p",
				Version:    "1.0.0",
				Homepage:   tc.homepage,
				Repository: &registry.Repository{Type: "git", URL: tc.repository},
			}
			actual := Format(pkg)
			assert.Contains(t, actual, "\n- Documentation: "+tc.documentation+"\n")
			assert.Contains(t, actual, "\n- Repository: "+tc.repositoryURL+"\n")
		})
	}
}

func TestFormat_Author(t *testing.T) {
	var testCases = []struct {
		author registry.Author
		expect string
	}{
		{nil, "- Author: Not specified"},
		{registry.AuthorRecord{Name: "A", Email: "a@x.com"}, "- Author: A <a@x.com>"},
		{registry.AuthorRecord{Name: "A", URL: "https://a.dev"}, "- Author: A (https://a.dev)"},
		{registry.AuthorRecord{}, "- Author: Not specified"},
		{registry.AuthorText("someone"), "- Author: someone"},
	}
	for i, tc := range testCases {
		actual := Format(&registry.Package{Name: "p", Version: "1", Author: tc.author})
		assert.Contains(t, actual, tc.expect, "case %d", i)
	}
}

func TestFormat_NoKeywordsSection(t *testing.T) {
	for _, keywords := range [][]string{nil, {}} {
		actual := Format(&registry.Package{Name: "p", Version: "1", Keywords: keywords})
		assert.NotContains(t, actual, "Keywords")
		assert.False(t, strings.HasSuffix(actual, "\n"))
	}
}
