package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cellLines renders a table cell as trimmed, non-empty text lines. Each text
// node becomes its own line, which reproduces the page's visual line breaks:
// titles are separated by <br> tags and sometimes by font-tag boundaries.
func cellLines(cell *goquery.Selection) []string {
	var frags []string
	for _, n := range cell.Nodes {
		collectText(n, &frags)
	}

	var lines []string
	for _, line := range strings.Split(strings.Join(frags, "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func collectText(n *html.Node, frags *[]string) {
	if n.Type == html.TextNode {
		*frags = append(*frags, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, frags)
	}
}

// parseTitles reconstructs film titles from a cell's lines. A distributor
// code on its own line starts with a parenthesis, a re-release marker with
// "WA"; both belong to the previous title.
func parseTitles(lines []string) []string {
	var titles []string
	for _, line := range lines {
		if strings.HasPrefix(line, "(") || strings.HasPrefix(line, "WA") {
			if len(titles) > 0 {
				titles[len(titles)-1] += " " + line
			} else {
				// A leading continuation has nothing to attach to; keep it
				// rather than dropping text.
				titles = append(titles, line)
			}
		} else {
			titles = append(titles, line)
		}
	}
	return titles
}
