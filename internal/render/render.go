// Package render turns a view snapshot into the HTML page. Templates and
// static assets are embedded in the binary.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"gradientspace.dev/internal/models"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded CSS and JavaScript, rooted at the static dir
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("embedded static dir missing: " + err.Error())
	}
	return sub
}

// sectionTemplates maps each fade-in section to the template that draws it
var sectionTemplates = map[models.SectionID]string{
	models.SectionPackages:     "section-packages",
	models.SectionTraining:     "section-prose",
	models.SectionTestimonials: "section-testimonials",
	models.SectionServices:     "section-prose",
	models.SectionAbout:        "section-prose",
	models.SectionContact:      "section-contact",
}

// Renderer draws the page
type Renderer struct {
	tmpl    *template.Template
	content *services.ContentService
}

// Options vary how a page is drawn
type Options struct {
	// SessionID is embedded in forms and API calls. Empty for static export.
	SessionID string
	// Static draws nav as links between exported files and disables the form.
	Static bool
	// FormError is shown above the contact form
	FormError string
}

// TabLink is one nav button
type TabLink struct {
	Tab    models.Tab
	Label  string
	Active bool
	Href   string
}

// PageData is the root template context
type PageData struct {
	Site     models.SiteInfo
	Tabs     []TabLink
	State    view.Snapshot
	Sections []template.HTML
	// RevealThreshold is handed to the page script's observer
	RevealThreshold float64
	Options
}

// SectionData is the context of one section template
type SectionData struct {
	Section      models.Section
	Body         template.HTML
	Revealed     bool
	Packages     []models.Package
	Testimonials []models.Testimonial
	Site         models.SiteInfo
	Page         *PageData
}

// New parses the embedded templates
func New(content *services.ContentService) (*Renderer, error) {
	r := &Renderer{content: content}
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"stars": strings.Repeat,
		"filledStars": func(t models.Testimonial) int {
			f, _ := t.Stars()
			return f
		},
		"emptyStars": func(t models.Testimonial) int {
			_, e := t.Stars()
			return e
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Page writes the full HTML page for a snapshot
func (r *Renderer) Page(w io.Writer, snap view.Snapshot, opts Options) error {
	data := &PageData{
		Site:            r.content.Site(),
		State:           snap,
		RevealThreshold: view.RevealThreshold,
		Options:         opts,
	}
	for _, tab := range models.Tabs() {
		data.Tabs = append(data.Tabs, TabLink{
			Tab:    tab,
			Label:  tab.Label(),
			Active: tab == snap.ActiveTab,
			Href:   string(tab) + ".html",
		})
	}

	for _, id := range snap.Branch.Sections {
		html, err := r.section(id, data)
		if err != nil {
			return err
		}
		data.Sections = append(data.Sections, html)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// section draws one fade-in block through its template
func (r *Renderer) section(id models.SectionID, page *PageData) (template.HTML, error) {
	name, ok := sectionTemplates[id]
	if !ok {
		return "", fmt.Errorf("no template for section %s", id)
	}
	sec, err := r.content.GetSection(id)
	if err != nil {
		return "", err
	}

	data := SectionData{
		Section:  sec,
		Revealed: page.State.Revealed[id],
		Site:     page.Site,
		Page:     page,
	}
	switch id {
	case models.SectionPackages:
		data.Packages = r.content.GetPackages()
	case models.SectionTestimonials:
		data.Testimonials = r.content.GetTestimonials()
	case models.SectionContact:
		data.Packages = r.content.GetPackages()
	default:
		if data.Body, err = r.content.SectionHTML(id); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render section %s: %w", id, err)
	}
	return template.HTML(buf.String()), nil
}
