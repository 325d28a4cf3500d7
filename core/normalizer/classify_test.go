package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"content-normalizer-api/core/domain"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        domain.ContentKind
	}{
		{"json header", "application/json", `{"a":1}`, domain.KindJSON},
		{"json header with charset", "application/json; charset=utf-8", `[]`, domain.KindJSON},
		{"vendor json header", "application/vnd.api+json", `{}`, domain.KindJSON},
		{"feed json header", "application/feed+json", `{}`, domain.KindJSON},
		{"html header", "text/html; charset=UTF-8", `<p>hi</p>`, domain.KindHTML},
		{"xhtml header is html", "application/xhtml+xml", `<?xml version="1.0"?><html/>`, domain.KindHTML},
		{"xml header", "application/xml", `<root/>`, domain.KindXML},
		{"rss header", "application/rss+xml", `<rss/>`, domain.KindXML},
		{"header wins over body", "text/html", `{"a":1}`, domain.KindHTML},
		{"uppercase header", "APPLICATION/JSON", `{}`, domain.KindJSON},

		{"sniff object", "", `{"a":1}`, domain.KindJSON},
		{"sniff array", "text/plain", `  [1,2]`, domain.KindJSON},
		{"sniff xml declaration", "", `<?xml version="1.0"?><root><item>1</item></root>`, domain.KindXML},
		{"sniff xml declaration with bom", "", "\xef\xbb\xbf<?xml version=\"1.0\"?><root/>", domain.KindXML},
		{"sniff xhtml declaration", "", `<?xml version="1.0"?><!DOCTYPE html><html></html>`, domain.KindHTML},
		{"sniff xhtml declaration html root", "", `<?xml version="1.0"?>` + "\n" + `<html xmlns="http://www.w3.org/1999/xhtml"></html>`, domain.KindHTML},
		{"sniff rss root", "", `<rss version="2.0"><channel/></rss>`, domain.KindXML},
		{"sniff atom root", "", `<feed xmlns="http://www.w3.org/2005/Atom"></feed>`, domain.KindXML},
		{"sniff rdf root", "", `<rdf:RDF xmlns:rdf="x"></rdf:RDF>`, domain.KindXML},
		{"sniff sitemap root", "", `<urlset></urlset>`, domain.KindXML},
		{"sniff root after comment", "", `<!-- generated --><urlset></urlset>`, domain.KindXML},
		{"sniff prefix of known root is html", "", `<feedback>x</feedback>`, domain.KindHTML},
		{"sniff doctype", "", `<!DOCTYPE html><html><body></body></html>`, domain.KindHTML},
		{"sniff fragment", "", `<div>hello</div>`, domain.KindHTML},
		{"sniff plain text", "text/plain", `hello world`, domain.KindUnknown},
		{"empty body", "", ``, domain.KindUnknown},
		{"whitespace body", "", " \n\t ", domain.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectKind(tt.contentType, []byte(tt.body)))
		})
	}
}

func TestSkipComments(t *testing.T) {
	assert.Equal(t, "<rss>", skipComments("  <!-- a --> <!-- b --><rss>"))
	assert.Equal(t, "", skipComments("<!-- never closed"))
}

func TestHasTag(t *testing.T) {
	assert.True(t, hasTag("<rss>", "rss"))
	assert.True(t, hasTag("<rss", "rss"))
	assert.True(t, hasTag("<rss\nversion", "rss"))
	assert.False(t, hasTag("<rssfeed>", "rss"))
	assert.False(t, hasTag("<html>", "rss"))
}
