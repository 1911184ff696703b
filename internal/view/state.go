// Package view holds the page view model: the active tab, the contact form,
// hover flags and the reveal latches of the mounted content blocks.
//
// A State has a single owner and is not safe for concurrent use.
package view

import (
	"context"
	"errors"
	"fmt"

	"gradientspace.dev/internal/models"
)

var (
	// ErrUnknownPackage is returned when the package field is set to a name
	// the catalog does not offer
	ErrUnknownPackage = errors.New("unknown package")
	// ErrAlreadySubmitted is returned by form operations once the form was submitted
	ErrAlreadySubmitted = errors.New("contact form already submitted")
	// ErrSectionNotMounted is returned when a visibility notification names a
	// section the active tab does not render
	ErrSectionNotMounted = errors.New("section not mounted")
)

// Catalog is the part of the content catalog the view model reads
type Catalog interface {
	HasPackage(name string) bool
	Packages() []models.Package
}

// Sink receives the snapshot of a submitted contact form
type Sink interface {
	Accept(ctx context.Context, form models.ContactFormData) error
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(ctx context.Context, form models.ContactFormData) error

// Accept calls f
func (f SinkFunc) Accept(ctx context.Context, form models.ContactFormData) error {
	return f(ctx, form)
}

const noCard = -1

// State is the view model of one page session
type State struct {
	router  *Router
	catalog Catalog

	activeTab     models.Tab
	branch        Branch
	form          models.ContactFormData
	submitted     bool
	hoveredCard   int
	hoveredButton bool
	latches       map[models.SectionID]*RevealLatch
}

// New creates a State on the home tab with an empty form
func New(router *Router, catalog Catalog) *State {
	s := &State{
		router:      router,
		catalog:     catalog,
		hoveredCard: noCard,
	}
	// home is always routable
	_ = s.mount(models.TabHome)
	return s
}

// mount makes tab active and creates pending latches for its sections
func (s *State) mount(tab models.Tab) error {
	branch, err := s.router.Route(tab)
	if err != nil {
		return err
	}
	s.activeTab = tab
	s.branch = branch
	s.latches = make(map[models.SectionID]*RevealLatch, len(branch.Sections))
	for _, id := range branch.Sections {
		s.latches[id] = &RevealLatch{}
	}
	s.hoveredCard = noCard
	s.hoveredButton = false
	return nil
}

// ActiveTab returns the selected tab
func (s *State) ActiveTab() models.Tab {
	return s.activeTab
}

// Branch returns the content branch of the active tab
func (s *State) Branch() Branch {
	b := s.branch
	b.Sections = append([]models.SectionID(nil), s.branch.Sections...)
	return b
}

// Form returns a copy of the contact form values
func (s *State) Form() models.ContactFormData {
	return s.form
}

// Submitted reports whether the contact form has been submitted
func (s *State) Submitted() bool {
	return s.submitted
}

// SelectTab switches the active tab. Form values are untouched. Selecting a
// different tab mounts its sections afresh; reselecting the active tab keeps
// the current latches.
func (s *State) SelectTab(tab models.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownTab, tab)
	}
	if tab == s.activeTab {
		return nil
	}
	return s.mount(tab)
}

// EditField overwrites a single contact form field
func (s *State) EditField(f models.Field, value string) error {
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if f == models.FieldPackage && value != "" && !s.catalog.HasPackage(value) {
		return fmt.Errorf("%w: %q", ErrUnknownPackage, value)
	}
	return s.form.Set(f, value)
}

// Submit hands a snapshot of the form to sink. When the sink accepts it the
// form is cleared and the state moves to submitted for good. When the sink
// fails nothing changes.
func (s *State) Submit(ctx context.Context, sink Sink) (models.ContactFormData, error) {
	if s.submitted {
		return models.ContactFormData{}, ErrAlreadySubmitted
	}
	snapshot := s.form
	if err := sink.Accept(ctx, snapshot); err != nil {
		return snapshot, fmt.Errorf("submit contact form: %w", err)
	}
	s.submitted = true
	s.form = models.ContactFormData{}
	return snapshot, nil
}

// HoverCard marks a package card as hovered. An index outside the catalog
// clears the hover.
func (s *State) HoverCard(i int) {
	if i < 0 || i >= len(s.catalog.Packages()) {
		s.hoveredCard = noCard
		return
	}
	s.hoveredCard = i
}

// ClearCardHover clears the hovered card
func (s *State) ClearCardHover() {
	s.hoveredCard = noCard
}

// HoveredCard returns the hovered card index, if any
func (s *State) HoveredCard() (int, bool) {
	return s.hoveredCard, s.hoveredCard != noCard
}

// HoverButton sets whether the pointer is over the submit button
func (s *State) HoverButton(on bool) {
	s.hoveredButton = on
}

// ButtonHovered reports whether the submit button is hovered
func (s *State) ButtonHovered() bool {
	return s.hoveredButton
}

// Observe feeds a visibility notification to the latch of a mounted section
// and reports whether the section is now revealed.
func (s *State) Observe(id models.SectionID, ratio float64) (bool, error) {
	latch, ok := s.latches[id]
	if !ok {
		return false, fmt.Errorf("%w: %s on tab %s", ErrSectionNotMounted, id, s.activeTab)
	}
	latch.Observe(ratio)
	return latch.Revealed(), nil
}

// Revealed reports whether a mounted section has been revealed
func (s *State) Revealed(id models.SectionID) bool {
	latch, ok := s.latches[id]
	return ok && latch.Revealed()
}

// Snapshot is a copy of the state for rendering
type Snapshot struct {
	ActiveTab     models.Tab
	Branch        Branch
	Form          models.ContactFormData
	Submitted     bool
	HoveredCard   int // -1 when none
	ButtonHovered bool
	Revealed      map[models.SectionID]bool
}

// Snapshot copies the state for a renderer
func (s *State) Snapshot() Snapshot {
	revealed := make(map[models.SectionID]bool, len(s.latches))
	for id, l := range s.latches {
		revealed[id] = l.Revealed()
	}
	return Snapshot{
		ActiveTab:     s.activeTab,
		Branch:        s.Branch(),
		Form:          s.form,
		Submitted:     s.submitted,
		HoveredCard:   s.hoveredCard,
		ButtonHovered: s.hoveredButton,
		Revealed:      revealed,
	}
}
