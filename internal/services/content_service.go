package services

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"gradientspace.dev/internal/catalog"
	"gradientspace.dev/internal/models"
)

// ContentService handles catalog queries and section rendering
type ContentService struct {
	catalog *catalog.Catalog
	md      goldmark.Markdown

	mu   sync.RWMutex
	html map[models.SectionID]template.HTML // rendered sections
}

// NewContentService creates a new ContentService
func NewContentService(c *catalog.Catalog) *ContentService {
	return &ContentService{
		catalog: c,
		md:      goldmark.New(goldmark.WithExtensions(extension.Typographer)),
		html:    make(map[models.SectionID]template.HTML),
	}
}

// Catalog returns the underlying catalog
func (s *ContentService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Site returns the business details
func (s *ContentService) Site() models.SiteInfo {
	return s.catalog.Site()
}

// GetPackages returns all packages
func (s *ContentService) GetPackages() []models.Package {
	return s.catalog.Packages()
}

// GetPackage returns a specific package by name
func (s *ContentService) GetPackage(name string) (*models.Package, error) {
	for _, p := range s.catalog.Packages() {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("package not found: %s", name)
}

// GetTestimonials returns all testimonials
func (s *ContentService) GetTestimonials() []models.Testimonial {
	return s.catalog.Testimonials()
}

// GetSection returns a section by ID
func (s *ContentService) GetSection(id models.SectionID) (models.Section, error) {
	sec, ok := s.catalog.Section(id)
	if !ok {
		return models.Section{}, fmt.Errorf("section not found: %s", id)
	}
	return sec, nil
}

// SectionHTML renders the markdown body of a section. Output is cached since
// the catalog never changes.
func (s *ContentService) SectionHTML(id models.SectionID) (template.HTML, error) {
	s.mu.RLock()
	cached, ok := s.html[id]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	sec, err := s.GetSection(id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(sec.Body), &buf); err != nil {
		return "", fmt.Errorf("render section %s: %w", id, err)
	}

	// Bodies come from the embedded catalog, not from visitors.
	out := template.HTML(buf.String())

	s.mu.Lock()
	s.html[id] = out
	s.mu.Unlock()
	return out, nil
}
