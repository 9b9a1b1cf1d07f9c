package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-sitegen/internal/collection"
)

func TestBuildCollectionRendersTable(t *testing.T) {
	output := filepath.Join(t.TempDir(), "index.html")
	rows := []collection.Row{
		{Artist: "Artist A", Title: "Album A", Released: "1999"},
		{Artist: "Simon & Garfunkel", Title: "<Bookends>", Released: "1968"},
	}

	result, err := NewService(testConfig(), Dependencies{}).BuildCollection(context.Background(), rows, CollectionOptions{Output: output})
	if err != nil {
		t.Fatalf("build collection: %v", err)
	}
	if result.Items != 2 {
		t.Fatalf("expected 2 rows reported, got %d", result.Items)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()
	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	if title := doc.Find("title").Text(); title != "Music Collection" {
		t.Fatalf("unexpected title %q", title)
	}
	headers := doc.Find("table.album-table thead th").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	if strings.Join(headers, ",") != "Artist,Title,Released" {
		t.Fatalf("unexpected headers %v", headers)
	}
	bodyRows := doc.Find("table.album-table tbody tr")
	if bodyRows.Length() != 2 {
		t.Fatalf("expected 2 body rows, got %d", bodyRows.Length())
	}
	cells := bodyRows.Eq(1).Find("td")
	if cells.Eq(0).Text() != "Simon & Garfunkel" || cells.Eq(1).Text() != "<Bookends>" || cells.Eq(2).Text() != "1968" {
		t.Fatalf("unexpected second row %q", cells.Text())
	}
	if href, _ := doc.Find("a.back-link").Attr("href"); href != "../../index.html" {
		t.Fatalf("unexpected back link %q", href)
	}
}

func TestBuildCollectionLayout(t *testing.T) {
	content, err := renderTemplate(collectionTemplate, collectionPage{
		Rows: []collection.Row{
			{Artist: "A", Title: "B", Released: "1"},
			{Artist: "C", Title: "D", Released: "2"},
		},
		BackLink: defaultBackLink,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "    <tbody>\n" +
		"      <tr>\n        <td>A</td>\n        <td>B</td>\n        <td>1</td>\n      </tr>\n" +
		"      <tr>\n        <td>C</td>\n        <td>D</td>\n        <td>2</td>\n      </tr>\n" +
		"    </tbody>"
	if !strings.Contains(string(content), want) {
		t.Fatalf("unexpected table body:\n%s", content)
	}
	if !strings.HasSuffix(string(content), "</html>") {
		t.Fatal("expected document to end at </html>")
	}
}

func TestBuildCollectionEmpty(t *testing.T) {
	output := filepath.Join(t.TempDir(), "index.html")
	result, err := NewService(testConfig(), Dependencies{}).BuildCollection(context.Background(), nil, CollectionOptions{Output: output})
	if err != nil {
		t.Fatalf("build collection: %v", err)
	}
	if result.Items != 0 || result.Written != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	data, _ := os.ReadFile(output)
	if strings.Contains(string(data), "<td>") {
		t.Fatal("expected no data rows")
	}
}

func TestBuildCollectionSkipsUnchanged(t *testing.T) {
	output := filepath.Join(t.TempDir(), "index.html")
	svc := NewService(testConfig(), Dependencies{})
	rows := []collection.Row{{Artist: "A", Title: "B", Released: "2000"}}

	if _, err := svc.BuildCollection(context.Background(), rows, CollectionOptions{Output: output}); err != nil {
		t.Fatalf("first build: %v", err)
	}
	result, err := svc.BuildCollection(context.Background(), rows, CollectionOptions{Output: output})
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if result.Skipped != 1 || !result.Artifacts[0].Skipped {
		t.Fatalf("expected skip on unchanged page, got %+v", result)
	}
}
