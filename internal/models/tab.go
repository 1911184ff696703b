package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTab is returned when a tab identifier is not one of the four tabs
var ErrUnknownTab = errors.New("unknown tab")

// Tab identifies one of the mutually exclusive content views
type Tab string

const (
	TabHome     Tab = "home"
	TabServices Tab = "services"
	TabAbout    Tab = "about"
	TabContact  Tab = "contact"
)

var allTabs = []Tab{TabHome, TabServices, TabAbout, TabContact}

// Tabs returns the tabs in navigation order
func Tabs() []Tab {
	out := make([]Tab, len(allTabs))
	copy(out, allTabs)
	return out
}

// ParseTab converts a string to a Tab
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}

// Valid reports whether t is one of the four tabs
func (t Tab) Valid() bool {
	for _, known := range allTabs {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the capitalized name shown on the nav button
func (t Tab) Label() string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
