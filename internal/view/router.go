package view

import (
	"fmt"

	"gradientspace.dev/internal/models"
)

// Branch is the content rendered for one tab: its fade-in sections in order
type Branch struct {
	Tab      models.Tab
	Sections []models.SectionID
}

// Contains reports whether the branch renders the section
func (b Branch) Contains(id models.SectionID) bool {
	for _, s := range b.Sections {
		if s == id {
			return true
		}
	}
	return false
}

// BuildFunc builds the branch of one tab
type BuildFunc func() Branch

// Router maps each tab to the branch it renders
type Router struct {
	routes map[models.Tab]BuildFunc
}

// NewRouter creates a Router with the four site tabs
func NewRouter() *Router {
	return &Router{
		routes: map[models.Tab]BuildFunc{
			models.TabHome: branchOf(models.TabHome,
				models.SectionPackages, models.SectionTraining, models.SectionTestimonials),
			models.TabServices: branchOf(models.TabServices, models.SectionServices),
			models.TabAbout:    branchOf(models.TabAbout, models.SectionAbout),
			models.TabContact:  branchOf(models.TabContact, models.SectionContact),
		},
	}
}

func branchOf(tab models.Tab, sections ...models.SectionID) BuildFunc {
	return func() Branch {
		out := make([]models.SectionID, len(sections))
		copy(out, sections)
		return Branch{Tab: tab, Sections: out}
	}
}

// Route returns the branch for a tab
func (r *Router) Route(tab models.Tab) (Branch, error) {
	build, ok := r.routes[tab]
	if !ok {
		return Branch{}, fmt.Errorf("%w: %q", models.ErrUnknownTab, tab)
	}
	return build(), nil
}
