package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradientspace.dev/internal/models"
)

func TestContentService_GetPackage(t *testing.T) {
	s := NewContentService(loadCatalog(t))

	p, err := s.GetPackage("Pro AI Suite")
	require.NoError(t, err)
	assert.Equal(t, "$149", p.Price)

	_, err = s.GetPackage("Enterprise")
	assert.ErrorContains(t, err, "package not found")
}

func TestContentService_SectionHTML(t *testing.T) {
	s := NewContentService(loadCatalog(t))

	html, err := s.SectionHTML(models.SectionServices)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>Custom AI Solutions:</strong>")
	assert.Contains(t, string(html), "<li>")

	again, err := s.SectionHTML(models.SectionServices)
	require.NoError(t, err)
	assert.Equal(t, html, again)

	about, err := s.SectionHTML(models.SectionAbout)
	require.NoError(t, err)
	assert.Contains(t, string(about), "<h3>Our Mission</h3>")
}

func TestContentService_UnknownSection(t *testing.T) {
	s := NewContentService(loadCatalog(t))
	_, err := s.SectionHTML(models.SectionID("pricing"))
	assert.ErrorContains(t, err, "section not found")
}
