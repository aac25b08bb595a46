package notes

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/notedly/minutes/errors"
)

//go:embed templates/*.md
var templateFS embed.FS

// Catalog is the fixed mapping from template name to template body,
// read-only after load.
type Catalog struct {
	templates map[string]string
}

// DefaultCatalog loads the built-in templates.
func DefaultCatalog() *Catalog {
	catalog := &Catalog{templates: map[string]string{}}
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return catalog
	}
	for _, entry := range entries {
		data, err := fs.ReadFile(templateFS, "templates/"+entry.Name())
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		catalog.templates[name] = string(data)
	}
	return catalog
}

// Get returns the named template body.
func (c *Catalog) Get(name string) (string, error) {
	body, ok := c.templates[name]
	if !ok {
		return "", errors.NotFound("template", name)
	}
	return body, nil
}

// Names lists available template names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
