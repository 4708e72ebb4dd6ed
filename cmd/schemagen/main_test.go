package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	path, err := generate(t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Title      string   `json:"title"`
		Required   []string `json:"required"`
		Properties struct {
			Cases struct {
				Items struct {
					Required   []string `json:"required"`
					Properties map[string]struct {
						Type string   `json:"type"`
						Enum []string `json:"enum"`
					} `json:"properties"`
				} `json:"items"`
			} `json:"cases"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "TestSuite", doc.Title)
	assert.Equal(t, []string{"cases"}, doc.Required)

	item := doc.Properties.Cases.Items
	assert.Equal(t, []string{"id", "expression"}, item.Required)
	assert.Equal(t, "number", item.Properties["expect"].Type)
	assert.Contains(t, item.Properties["expect_error"].Enum, "division_by_zero")
}
