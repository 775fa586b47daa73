package extractor

import (
	"bytes"
	"strings"

	"wiki-quiz/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

const unknownTitle = "Unknown Title"

// parse turns a fetched Wikipedia HTML document into a ContentRecord.
// Parsing never fails: missing pieces degrade to sentinels and the body
// walk falls back to the raw visible text of the whole document.
func (e *Extractor) parse(html []byte) *domain.ContentRecord {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		// Not reachable with well-formed input; return the sentinel record.
		return &domain.ContentRecord{Title: unknownTitle}
	}

	record := &domain.ContentRecord{
		Title:    unknownTitle,
		Sections: []string{},
	}

	if t := strings.TrimSpace(doc.Find("h1#firstHeading").First().Text()); t != "" {
		record.Title = t
	}

	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.HasClass("mw-empty-elt") {
			return true
		}
		record.Summary = strings.TrimSpace(s.Text())
		return false
	})

	doc.Find("h2 .mw-headline, h3 .mw-headline, h2.mw-headline, h3.mw-headline").
		Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				record.Sections = append(record.Sections, t)
			}
		})

	text := e.collectBodyText(doc)
	if text == "" {
		text = truncate(strings.TrimSpace(doc.Text()), e.cfg.RawTextLimit)
	}
	record.FullText = truncate(text, e.cfg.FullTextLimit)

	record.Entities = extractEntities(record.FullText)
	return record
}

// collectBodyText walks the main content region: the introduction
// paragraphs before the first h2, then paragraphs and sub-headings from
// up to three top-level sections, each section transition prefixed with
// a "## heading" marker.
func (e *Extractor) collectBodyText(doc *goquery.Document) string {
	parserOutput := doc.Find("div#mw-content-text div.mw-parser-output").First()
	if parserOutput.Length() == 0 {
		return ""
	}

	var b strings.Builder

	parserOutput.Children().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Is("h2") {
			return false
		}
		if s.Is("p") {
			if t := strings.TrimSpace(s.Text()); t != "" {
				b.WriteString(t)
				b.WriteString("\n\n")
			}
		}
		return true
	})

	sectionCount := 0
	parserOutput.Find("h2, h3, p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Is("h2") {
			sectionCount++
			if sectionCount > 3 {
				return false
			}
			if t := strings.TrimSpace(s.Text()); t != "" {
				b.WriteString("\n## ")
				b.WriteString(t)
				b.WriteString("\n")
			}
			return true
		}
		// Intro paragraphs were already collected above.
		if sectionCount == 0 {
			return true
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			b.WriteString(t)
			b.WriteString("\n")
		}
		return true
	})

	return b.String()
}

// truncate applies a hard character cut. The cap is a raw cut by
// contract, not a word-boundary one.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
