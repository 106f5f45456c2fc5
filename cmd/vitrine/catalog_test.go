package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCatalogCommandTable(t *testing.T) {
	output, err := executeRoot(t, "catalog")
	require.NoError(t, err)

	assert.Contains(t, output, "Autoplay interval: 5s")
	assert.Contains(t, output, "Scroll threshold: 10")
	assert.Contains(t, output, "Find Your Dream Home")
	assert.Contains(t, output, "Kirundi")
	assert.Contains(t, output, "/listings")
	assert.Contains(t, output, "secondary")
}

func TestCatalogCommandYAMLRoundTrips(t *testing.T) {
	output, err := executeRoot(t, "catalog", "--yaml")
	require.NoError(t, err)

	parsed, err := catalog.Parse("catalog --yaml", []byte(output))
	require.NoError(t, err)

	original, err := catalog.Default()
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestCatalogCommandRejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "catalog", "extra")
	assert.Error(t, err)
}
