// Package catalog holds the static content bundled with the site: packages,
// testimonials, site details and the markdown sections. A Catalog is built
// once at startup and never mutated; accessors hand out copies.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"gradientspace.dev/internal/models"
)

//go:embed data
var embedded embed.FS

// Catalog is the read-only content of the site
type Catalog struct {
	site         models.SiteInfo
	packages     []models.Package
	testimonials []models.Testimonial
	sections     map[models.SectionID]models.Section
}

// file mirrors the layout of catalog.yaml
type file struct {
	Site         models.SiteInfo      `yaml:"site"`
	Packages     []models.Package     `yaml:"packages"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
	Sections     []models.Section     `yaml:"sections"`
}

// Load reads the catalog embedded in the binary
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS reads catalog.yaml and the section files it references from fsys
func LoadFS(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, "catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog.yaml: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog.yaml: %w", err)
	}

	c := &Catalog{
		site:         f.Site,
		packages:     f.Packages,
		testimonials: f.Testimonials,
		sections:     make(map[models.SectionID]models.Section, len(f.Sections)),
	}

	for _, s := range f.Sections {
		if s.File != "" {
			body, err := fs.ReadFile(fsys, s.File)
			if err != nil {
				return nil, fmt.Errorf("failed to read section %s: %w", s.ID, err)
			}
			s.Body = string(body)
		}
		c.sections[s.ID] = s
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.packages) == 0 {
		return fmt.Errorf("catalog has no packages")
	}
	seen := make(map[string]bool, len(c.packages))
	for _, p := range c.packages {
		if p.Name == "" {
			return fmt.Errorf("catalog package with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate package name %q", p.Name)
		}
		seen[p.Name] = true
	}
	for _, t := range c.testimonials {
		if t.Rating < 0 || t.Rating > models.MaxRating {
			return fmt.Errorf("testimonial from %s has rating %d outside 0-%d", t.Name, t.Rating, models.MaxRating)
		}
	}
	for _, id := range models.Sections() {
		if _, ok := c.sections[id]; !ok {
			return fmt.Errorf("catalog is missing section %s", id)
		}
	}
	return nil
}

// Site returns the business details
func (c *Catalog) Site() models.SiteInfo {
	s := c.site
	s.Address = append([]string(nil), c.site.Address...)
	s.Hours = append([]string(nil), c.site.Hours...)
	return s
}

// Packages returns the offered packages in display order
func (c *Catalog) Packages() []models.Package {
	out := make([]models.Package, len(c.packages))
	for i, p := range c.packages {
		p.Benefits = append([]string(nil), p.Benefits...)
		out[i] = p
	}
	return out
}

// Testimonials returns the client testimonials in display order
func (c *Catalog) Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(c.testimonials))
	copy(out, c.testimonials)
	return out
}

// HasPackage reports whether name is one of the offered packages
func (c *Catalog) HasPackage(name string) bool {
	for _, p := range c.packages {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Section returns a content section by ID
func (c *Catalog) Section(id models.SectionID) (models.Section, bool) {
	s, ok := c.sections[id]
	return s, ok
}
