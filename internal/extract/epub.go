package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/notewise/docingest/internal/truncate"
)

// epubCandidate selects archive entries likely to carry chapter text: any
// XHTML/HTML document, plus names that follow the common chapter/content
// naming convention.
func epubCandidate(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".xhtml") ||
		strings.HasSuffix(n, ".html") ||
		strings.Contains(n, "chapter") ||
		strings.Contains(n, "content")
}

// extractEPUB walks every candidate entry, taking the inner text of the
// first body element in each. Entries that cannot be parsed, or that carry
// no body text, are skipped rather than failing the whole book.
func extractEPUB(data []byte) (Result, error) {
	return extractContainer(data, containerSpec{
		format:     "EPUB",
		marker:     truncate.EPUBMarker,
		matchEntry: epubCandidate,
		walkEntry: func(content []byte, acc *truncate.Accumulator) error {
			text, err := bodyText(content)
			if err != nil || text == "" {
				return err
			}
			acc.Add(text + "\n\n")
			return nil
		},
		emptyMessage: "No readable text content found in EPUB file",
	})
}

// bodyText parses an XHTML chapter and returns the whitespace-normalized
// inner text of its first body element, or "" when there is none.
func bodyText(content []byte) (string, error) {
	node, err := html.Parse(bytes.NewReader(content))
	if err != nil || node == nil {
		return "", err
	}
	body := findFirst(node, "body")
	if body == nil {
		return "", nil
	}
	var b strings.Builder
	collectText(&b, body)
	return strings.TrimSpace(collapseSpaces(b.String())), nil
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// collapseSpaces folds every run of whitespace into a single space.
func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
