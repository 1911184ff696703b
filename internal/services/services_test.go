package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gradientspace.dev/internal/catalog"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}
