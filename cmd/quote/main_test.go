package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"route-sheet-service/internal/api/dto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetJSON = `{
	"trips": [
		{"kind": "standard", "weight": 5000, "volume": 20, "origin": {"lat": -34.6037, "lon": -58.3816}, "destination": {"lat": -32.9468, "lon": -60.6393}},
		{"kind": "priority", "weight": 4000, "volume": 15, "origin": {"lat": -34.6037, "lon": -58.3816}, "destination": {"lat": -32.9468, "lon": -60.6393}}
	],
	"route_sheets": [
		{"trips": [{"kind": "return", "weight": 100, "volume": 1, "origin": {"lat": -32.9468, "lon": -60.6393}, "destination": {"lat": -34.6037, "lon": -58.3816}}]}
	]
}`

func writeSheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.json")
	require.NoError(t, os.WriteFile(path, []byte(sheetJSON), 0o600))
	return path
}

func TestQuoteText(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"quote", "--file", writeSheet(t), "--max-weight", "10000", "--max-volume", "50"})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "route_sheet.route_sheets[0].trips[0]")
	assert.Contains(t, text, "total weight: 9100.00 kg")
	assert.Contains(t, text, "truck (10000.00 kg, 50.00 m3): fits")
}

func TestQuoteJSONExceeds(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"quote", "-f", writeSheet(t), "--max-weight", "9000", "--max-volume", "50", "--json"})
	require.NoError(t, err)

	var res dto.QuoteResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Len(t, res.Trips, 3)
	require.NotNil(t, res.Fit)
	assert.False(t, res.Fit.Fits)
}

func TestQuoteRequiresBothLimits(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"quote", "--file", writeSheet(t), "--max-weight", "10"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "must be given together"))
}

func TestQuoteMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"quote", "--file", filepath.Join(t.TempDir(), "none.json")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
