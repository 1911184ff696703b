package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs() {
		got, err := ParseTab(string(tab))
		require.NoError(t, err)
		assert.Equal(t, tab, got)
	}

	got, err := ParseTab(" Contact ")
	require.NoError(t, err)
	assert.Equal(t, TabContact, got)

	_, err = ParseTab("pricing")
	assert.ErrorIs(t, err, ErrUnknownTab)
	_, err = ParseTab("")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestTabLabel(t *testing.T) {
	assert.Equal(t, "Home", TabHome.Label())
	assert.Equal(t, "Services", TabServices.Label())
	assert.Equal(t, "About", TabAbout.Label())
	assert.Equal(t, "Contact", TabContact.Label())
}

func TestTabsOrder(t *testing.T) {
	assert.Equal(t, []Tab{TabHome, TabServices, TabAbout, TabContact}, Tabs())
}
