package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "Limba română", CleanText("  Limba\n\t   română "))
	require.Equal(t, "9 8 10", CleanText("9 8  10"))
	require.Equal(t, "", CleanText(" \n\t "))
}

func TestGetText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div>Limba <b>engleză</b><span> 9</span></div>`,
	))
	require.NoError(t, err)
	require.Equal(t, "Limba engleză 9", GetText(doc.Find("div").First().Nodes[0]))
	require.Equal(t, "", GetText(nil))
}

func TestCellText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<table><tr><td> <p>Matematica</p>
		</td></tr></table>`,
	))
	require.NoError(t, err)
	require.Equal(t, "Matematica", CellText(doc.Find("td").First()))

	// selections spanning several nodes concatenate in document order
	row, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<table><tr><td>Limba </td><td>engleză</td></tr></table>`,
	))
	require.NoError(t, err)
	require.Equal(t, "Limba engleză", CellText(row.Find("td")))
}
