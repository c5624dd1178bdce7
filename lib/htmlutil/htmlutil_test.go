package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestWindowClamping(t *testing.T) {
	doc := "0123456789"

	require.Equal(t, "0123456789", Window(doc, 5, 100, 100))
	require.Equal(t, "345", Window(doc, 4, 1, 2))
	require.Equal(t, "01", Window(doc, 0, 50, 2))
	require.Equal(t, "89", Window(doc, 8, 0, 50))
	require.Equal(t, "", Window("", 0, 10, 10))
}

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "TC Gent", NormalizeText("  TC\n\n  Gent\t"))
	require.Equal(t, "a b", NormalizeText("a     b"))
	require.Equal(t, "", NormalizeText("\n\t "))
}

func TestGetTextNested(t *testing.T) {
	node, err := html.Parse(strings.NewReader(
		"<div><b>TC</b> <span>Gent</span></div>",
	))
	require.NoError(t, err)
	require.Equal(t, "TC Gent", NormalizeText(GetText(node)))
}

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<a href="/spelersdashboard?spelerId=42">Jan  Peeters</a>
		<a href="/clubs/gent">TC Gent</a>
	`))
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Equal(t, []Anchor{
		{Name: "Jan Peeters", Href: "/spelersdashboard?spelerId=42"},
		{Name: "TC Gent", Href: "/clubs/gent"},
	}, anchors)
}
