package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradientspace.dev/internal/models"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	pkgs := c.Packages()
	require.Len(t, pkgs, 3)
	assert.Equal(t, "Starter AI Kit", pkgs[0].Name)
	assert.Equal(t, "$49", pkgs[0].Price)
	assert.Equal(t, "Pro AI Suite", pkgs[1].Name)
	assert.Equal(t, "$149", pkgs[1].Price)
	assert.Equal(t, "AI Training Workshop", pkgs[2].Name)
	assert.Equal(t, "$299", pkgs[2].Price)
	for _, p := range pkgs {
		assert.Len(t, p.Benefits, 3, p.Name)
	}

	tests := c.Testimonials()
	require.Len(t, tests, 3)
	for _, tm := range tests {
		assert.Equal(t, 5, tm.Rating)
	}

	site := c.Site()
	assert.Equal(t, "Gradient Space", site.Name)
	assert.Equal(t, "info@gradientspace.com", site.Email)

	about, ok := c.Section(models.SectionAbout)
	require.True(t, ok)
	assert.Contains(t, about.Body, "Our Mission")
}

func TestCatalog_CopiesAreIndependent(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	pkgs := c.Packages()
	pkgs[0].Name = "changed"
	pkgs[0].Benefits[0] = "changed"

	again := c.Packages()
	assert.Equal(t, "Starter AI Kit", again[0].Name)
	assert.Equal(t, "Automate repetitive tasks", again[0].Benefits[0])
}

func TestCatalog_HasPackage(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.True(t, c.HasPackage("Pro AI Suite"))
	assert.False(t, c.HasPackage("pro ai suite"))
	assert.False(t, c.HasPackage(""))
}

func TestLoadFS_RejectsDuplicatePackages(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
packages:
  - name: A
  - name: A
`)},
	}
	_, err := LoadFS(fsys)
	assert.ErrorContains(t, err, "duplicate package")
}

func TestLoadFS_RejectsRatingOutOfRange(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
packages:
  - name: A
testimonials:
  - name: X
    rating: 6
`)},
	}
	_, err := LoadFS(fsys)
	assert.ErrorContains(t, err, "outside 0-5")
}

func TestLoadFS_RequiresEverySection(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
packages:
  - name: A
sections:
  - id: packages
  - id: training
  - id: testimonials
  - id: services
  - id: contact
`)},
	}
	_, err := LoadFS(fsys)
	assert.ErrorContains(t, err, "missing section about")
}

func TestLoad_HasEverySection(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	for _, id := range models.Sections() {
		_, ok := c.Section(id)
		assert.True(t, ok, id)
	}
}

func TestLoadFS_MissingSectionFile(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
packages:
  - name: A
sections:
  - id: about
    file: sections/missing.md
`)},
	}
	_, err := LoadFS(fsys)
	assert.ErrorContains(t, err, "section about")
}
