// Package extract computes raw SEO metrics from HTML or plain text.
// Extraction is tolerant by contract: it never fails, whatever the
// input looks like. Malformed HTML is handled by the html5 parser's
// error recovery; non-HTML input falls back to text metrics.
package extract

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/seoscope/seoscope/internal/domain"
)

const (
	minKeywordLength = 3
	maxTrackedWords  = 50
)

// stopWords are excluded from keyword candidates.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "has": true,
	"have": true, "this": true, "that": true, "with": true, "from": true,
	"they": true, "will": true, "would": true, "there": true, "their": true,
	"what": true, "about": true, "which": true, "when": true, "your": true,
	"been": true, "were": true, "into": true, "more": true, "other": true,
	"some": true, "them": true, "then": true, "than": true, "also": true,
}

// HTMLExtractor implements domain.Extractor.
type HTMLExtractor struct{}

var _ domain.Extractor = (*HTMLExtractor)(nil)

// New creates an extractor (DI constructor).
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract computes metrics for the given content.
func (e *HTMLExtractor) Extract(content string) domain.Metrics {
	if !looksLikeHTML(content) {
		return textMetrics(content)
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// The html5 parser recovers from almost anything; if it still
		// fails, treat the input as plain text.
		return textMetrics(content)
	}

	var m domain.Metrics
	m.IsHTML = true

	var textBuilder strings.Builder
	walk(doc, &m, &textBuilder)

	// Rune counts, not byte counts: the length rules describe what a
	// reader sees, and multibyte titles would otherwise read as double.
	m.TitleLength = utf8.RuneCountInString(m.Title)
	m.MetaDescriptionLength = utf8.RuneCountInString(m.MetaDescription)
	m.WordCount, m.KeywordDensity = wordStats(textBuilder.String())

	return m
}

// looksLikeHTML reports whether content contains at least one tag-like
// construct.
func looksLikeHTML(content string) bool {
	for i := 0; i+1 < len(content); i++ {
		if content[i] != '<' {
			continue
		}
		next := content[i+1]
		if next == '/' || next == '!' ||
			(next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') {
			return true
		}
	}
	return false
}

func textMetrics(content string) domain.Metrics {
	var m domain.Metrics
	m.WordCount, m.KeywordDensity = wordStats(content)
	return m
}

func walk(n *html.Node, m *domain.Metrics, text *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "title":
			if m.Title == "" {
				m.Title = strings.TrimSpace(nodeText(n))
			}
		case "meta":
			collectMeta(n, m)
		case "h1":
			m.H1Count++
			m.H1Texts = append(m.H1Texts, strings.TrimSpace(nodeText(n)))
		case "h2":
			m.H2Count++
		case "h3":
			m.H3Count++
		case "img":
			m.TotalImages++
			if strings.TrimSpace(attr(n, "alt")) != "" {
				m.ImagesWithAlt++
			}
		case "a":
			collectLink(n, m)
		}
	}

	if n.Type == html.TextNode {
		text.WriteString(n.Data)
		text.WriteByte(' ')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, m, text)
	}
}

func collectMeta(n *html.Node, m *domain.Metrics) {
	name := strings.ToLower(attr(n, "name"))
	content := attr(n, "content")

	switch name {
	case "description":
		if m.MetaDescription == "" {
			m.MetaDescription = strings.TrimSpace(content)
		}
	case "keywords":
		if strings.TrimSpace(content) != "" {
			m.HasMetaKeywords = true
		}
	case "viewport":
		m.HasViewport = true
	case "robots":
		if m.RobotsDirective == "" {
			m.RobotsDirective = strings.ToLower(strings.TrimSpace(content))
		}
	}
}

func collectLink(n *html.Node, m *domain.Metrics) {
	href := strings.TrimSpace(attr(n, "href"))
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
		return
	}

	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "//") {
		m.ExternalLinks++
		return
	}
	m.InternalLinks++
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

// wordStats returns the word count and keyword density of the text.
// Density covers only keyword candidates: lowercase tokens at least
// three runes long that are not stop words, capped to the most
// frequent fifty.
func wordStats(text string) (int, map[string]float64) {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})

	if len(words) == 0 {
		return 0, nil
	}

	counts := make(map[string]int)
	for _, w := range words {
		w = strings.ToLower(strings.Trim(w, "'"))
		if len(w) < minKeywordLength || stopWords[w] {
			continue
		}
		counts[w]++
	}

	if len(counts) == 0 {
		return len(words), nil
	}

	density := make(map[string]float64, len(counts))
	total := float64(len(words))
	for w, c := range counts {
		density[w] = float64(c) / total
	}

	if len(density) > maxTrackedWords {
		density = trimToTop(density, counts, maxTrackedWords)
	}

	return len(words), density
}

func trimToTop(density map[string]float64, counts map[string]int, n int) map[string]float64 {
	type wc struct {
		word  string
		count int
	}
	ranked := make([]wc, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, wc{w, c})
	}
	// Deterministic order: count descending, then alphabetical.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	top := make(map[string]float64, n)
	for i := 0; i < n && i < len(ranked); i++ {
		top[ranked[i].word] = density[ranked[i].word]
	}
	return top
}
