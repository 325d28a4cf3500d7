// ABOUTME: Content classification for fetched documents
// ABOUTME: Detects json/xml/html/unknown from the Content-Type header, then the content prefix

package normalizer

import (
	"bytes"
	"strings"

	"content-normalizer-api/core/domain"
)

// sniffWindow is how much of the body is inspected when sniffing markup
const sniffWindow = 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// knownXMLRoots are root tags that mark a document as XML even without a declaration
var knownXMLRoots = []string{
	"rss",
	"feed",
	"rdf:rdf",
	"urlset",
	"sitemapindex",
	"opml",
	"svg",
	"soap:envelope",
	"soapenv:envelope",
}

// DetectKind classifies content. The Content-Type header wins when it names
// json, html or xml; otherwise the content prefix decides.
func DetectKind(contentType string, body []byte) domain.ContentKind {
	if kind := kindFromContentType(contentType); kind != domain.KindUnknown {
		return kind
	}
	return sniffKind(body)
}

// kindFromContentType matches the header by substring. html is checked before
// xml so application/xhtml+xml is treated as a page.
func kindFromContentType(contentType string) domain.ContentKind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return domain.KindJSON
	case strings.Contains(ct, "html"):
		return domain.KindHTML
	case strings.Contains(ct, "xml"):
		return domain.KindXML
	default:
		return domain.KindUnknown
	}
}

func sniffKind(body []byte) domain.ContentKind {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(body, utf8BOM), " \t\r\n")
	if len(trimmed) == 0 {
		return domain.KindUnknown
	}

	switch trimmed[0] {
	case '{', '[':
		return domain.KindJSON
	case '<':
		return sniffMarkup(trimmed)
	default:
		return domain.KindUnknown
	}
}

// sniffMarkup decides between xml and html for content starting with '<'
func sniffMarkup(body []byte) domain.ContentKind {
	head := strings.ToLower(string(body[:min(len(body), sniffWindow)]))

	if strings.HasPrefix(head, "<?xml") {
		// XHTML documents carry a declaration too
		rest := head
		if end := strings.Index(rest, "?>"); end >= 0 {
			rest = rest[end+2:]
		}
		if startsWithHTMLRoot(skipComments(rest)) {
			return domain.KindHTML
		}
		return domain.KindXML
	}

	rest := skipComments(head)
	for _, root := range knownXMLRoots {
		if hasTag(rest, root) {
			return domain.KindXML
		}
	}
	return domain.KindHTML
}

// skipComments drops leading whitespace and <!-- --> comments
func skipComments(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	for strings.HasPrefix(s, "<!--") {
		end := strings.Index(s, "-->")
		if end < 0 {
			return ""
		}
		s = strings.TrimLeft(s[end+3:], " \t\r\n")
	}
	return s
}

func startsWithHTMLRoot(s string) bool {
	return strings.HasPrefix(s, "<!doctype html") || hasTag(s, "html")
}

// hasTag reports whether s opens with <name followed by a tag delimiter
func hasTag(s, name string) bool {
	prefix := "<" + name
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	if len(s) == len(prefix) {
		return true
	}
	switch s[len(prefix)] {
	case ' ', '>', '/', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}
