package models

// Package represents an offered AI package
type Package struct {
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Benefits    []string `json:"benefits" yaml:"benefits"`
}

// Testimonial represents a client quote with a star rating
type Testimonial struct {
	Name   string `json:"name" yaml:"name"`
	Text   string `json:"text" yaml:"text"`
	Rating int    `json:"rating" yaml:"rating"` // 0-5
}

// MaxRating is the number of stars a testimonial is rated out of
const MaxRating = 5

// Stars returns the filled and empty star counts for the rating
func (t Testimonial) Stars() (filled, empty int) {
	filled = t.Rating
	if filled < 0 {
		filled = 0
	}
	if filled > MaxRating {
		filled = MaxRating
	}
	return filled, MaxRating - filled
}

// SiteInfo holds the business details shown in the banner and contact tab
type SiteInfo struct {
	Name            string   `json:"name" yaml:"name"`
	Title           string   `json:"title" yaml:"title"`
	MetaDescription string   `json:"meta_description" yaml:"meta_description"`
	BannerURL       string   `json:"banner_url" yaml:"banner_url"`
	BannerLabel     string   `json:"banner_label" yaml:"banner_label"`
	Address         []string `json:"address" yaml:"address"`
	Phone           string   `json:"phone" yaml:"phone"`
	Email           string   `json:"email" yaml:"email"`
	Hours           []string `json:"hours" yaml:"hours"`
}

// SectionID identifies one fade-in content block
type SectionID string

const (
	SectionPackages     SectionID = "packages"
	SectionTraining     SectionID = "training"
	SectionTestimonials SectionID = "testimonials"
	SectionServices     SectionID = "services"
	SectionAbout        SectionID = "about"
	SectionContact      SectionID = "contact"
)

// Sections returns every section a tab can render, in page order
func Sections() []SectionID {
	return []SectionID{
		SectionPackages, SectionTraining, SectionTestimonials,
		SectionServices, SectionAbout, SectionContact,
	}
}

// Section is a prose block authored in markdown
type Section struct {
	ID    SectionID `json:"id" yaml:"id"`
	Title string    `json:"title" yaml:"title"`
	Intro string    `json:"intro,omitempty" yaml:"intro"`
	File  string    `json:"-" yaml:"file"`
	Body  string    `json:"body" yaml:"-"` // markdown
}
