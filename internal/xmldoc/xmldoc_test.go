// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xmldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docpipe/pkg/types"
)

func sampleBlocks() []types.Block {
	table := types.Table{Rows: []types.Row{
		{Cells: []types.Cell{
			{Text: "merged", ColSpan: 2, RowSpan: 1},
		}},
		{Cells: []types.Cell{
			{Text: "a", ColSpan: 1, RowSpan: 2},
			{Text: "b", ColSpan: 1, RowSpan: 1},
		}},
	}}
	return []types.Block{
		{Kind: types.BlockHeading, Level: 1, Text: "Inspection Report"},
		{Kind: types.BlockBold, Text: "PART I"},
		{Kind: types.BlockParagraph, Text: "Some body text."},
		{Kind: types.BlockTable, Table: &table},
	}
}

func TestMarshalShape(t *testing.T) {
	data, err := Marshal(sampleBlocks())
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<heading level="1">Inspection Report</heading>`)
	assert.Contains(t, out, `<bold>PART I</bold>`)
	assert.Contains(t, out, `<paragraph>Some body text.</paragraph>`)

	// Span attributes appear only when greater than 1, rowspan first.
	assert.Contains(t, out, `<cell colspan="2">merged</cell>`)
	assert.Contains(t, out, `<cell rowspan="2">a</cell>`)
	assert.Contains(t, out, `<cell>b</cell>`)
	assert.NotContains(t, out, `colspan="1"`)
	assert.NotContains(t, out, `rowspan="1"`)
}

func TestMarshalEscapesText(t *testing.T) {
	blocks := []types.Block{{Kind: types.BlockParagraph, Text: "1 < 2 & co"}}
	data, err := Marshal(blocks)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<paragraph>1 &lt; 2 &amp; co</paragraph>")
}

func TestMarshalUnknownKind(t *testing.T) {
	_, err := Marshal([]types.Block{{Kind: types.BlockKind("bogus")}})
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	blocks := sampleBlocks()

	data, err := Marshal(blocks)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed, len(blocks))

	for i := range blocks {
		assert.Equal(t, blocks[i].Kind, parsed[i].Kind, "block %d kind", i)
		assert.Equal(t, blocks[i].Text, parsed[i].Text, "block %d text", i)
	}
	assert.Equal(t, 1, parsed[0].Level)

	require.NotNil(t, parsed[3].Table)
	tbl := *parsed[3].Table
	assert.Equal(t, 2, tbl.Rows[0].Cells[0].ColSpan)
	assert.Equal(t, 1, tbl.Rows[0].Cells[0].RowSpan)
	assert.Equal(t, 2, tbl.Rows[1].Cells[0].RowSpan)
	assert.Equal(t, "b", tbl.Rows[1].Cells[1].Text)
}

func TestRoundTripNestedTable(t *testing.T) {
	inner := types.Table{Rows: []types.Row{
		{Cells: []types.Cell{{Text: "inner", ColSpan: 1, RowSpan: 1}}},
	}}
	outer := types.Table{Rows: []types.Row{
		{Cells: []types.Cell{{Text: "outer", ColSpan: 1, RowSpan: 1, Tables: []types.Table{inner}}}},
	}}
	blocks := []types.Block{{Kind: types.BlockTable, Table: &outer}}

	data, err := Marshal(blocks)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed, 1)

	cell := parsed[0].Table.Rows[0].Cells[0]
	assert.Equal(t, "outer", cell.Text)
	require.Len(t, cell.Tables, 1)
	assert.Equal(t, "inner", cell.Tables[0].Rows[0].Cells[0].Text)
}

func TestParseDefaultsAndUnknowns(t *testing.T) {
	src := `<?xml version="1.0"?>
<document>
  <heading>No level attr</heading>
  <annotation>ignored</annotation>
  <table>
    <row><cell>plain</cell></row>
  </table>
</document>
`
	blocks, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, 0, blocks[0].Level)

	cell := blocks[1].Table.Rows[0].Cells[0]
	assert.Equal(t, 1, cell.ColSpan)
	assert.Equal(t, 1, cell.RowSpan)
}

func TestParseRejectsWrongRoot(t *testing.T) {
	_, err := Parse([]byte(`<html></html>`))
	assert.Error(t, err)
}

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")

	require.NoError(t, WriteFile(path, sampleBlocks()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	blocks, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, blocks, 4)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.xml"))
	assert.Error(t, err)
}
