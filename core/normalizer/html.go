// ABOUTME: HTML projection into a flat normalized mapping
// ABOUTME: Extracts meta tags, title, JSON-LD, forms, links and a body text excerpt with goquery

package normalizer

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	cerrors "content-normalizer-api/core/errors"
	"content-normalizer-api/core/interfaces"
	htmlutil "content-normalizer-api/pkg/utils/html"
)

// MaxBodyTextLength caps the bodyText excerpt, in characters
const MaxBodyTextLength = 1000

// htmlOptions toggles the best-effort enrichments
type htmlOptions struct {
	openGraph   bool
	readability bool
}

// htmlProjector converts one HTML page
type htmlProjector struct {
	logger  interfaces.Logger
	options htmlOptions
}

// project builds the HTML projection for body fetched from pageURL
func (p *htmlProjector) project(body []byte, pageURL string) (map[string]interface{}, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &cerrors.ParseError{Kind: "html", Details: err.Error(), Err: err}
	}

	base := baseURL(doc, pageURL)

	result := map[string]interface{}{
		"title":          extractTitle(doc),
		"meta":           extractMeta(doc),
		"structuredData": p.extractStructuredData(doc, pageURL),
		"forms":          extractForms(doc, base),
		"links":          extractLinks(doc, base),
		"bodyText":       extractBodyText(doc),
	}

	if p.options.openGraph {
		if og := extractOpenGraph(body); len(og) > 0 {
			result["openGraph"] = og
		}
	}

	if p.options.readability {
		if article := p.extractArticle(body, base, pageURL); len(article) > 0 {
			result["article"] = article
		}
	}

	return result, nil
}

// baseURL resolves <base href> against the page URL
func baseURL(doc *goquery.Document, pageURL string) *url.URL {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			base = base.ResolveReference(ref)
		}
	}
	return base
}

func extractTitle(doc *goquery.Document) string {
	title := doc.Find("head > title").First()
	if title.Length() == 0 {
		title = doc.Find("title").First()
	}
	return htmlutil.CollapseWhitespace(title.Text())
}

// extractMeta keys each meta tag by name, property, http-equiv or itemprop.
// Keys are lower-cased and repeated keys become a sequence.
func extractMeta(doc *goquery.Document) map[string]interface{} {
	meta := make(map[string]interface{})

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		if charset, ok := s.Attr("charset"); ok && strings.TrimSpace(charset) != "" {
			appendValue(meta, "charset", strings.TrimSpace(charset))
			return
		}

		content, ok := s.Attr("content")
		if !ok {
			return
		}

		var key string
		for _, attr := range []string{"name", "property", "http-equiv", "itemprop"} {
			if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
				key = strings.ToLower(v)
				break
			}
		}
		if key == "" {
			return
		}

		appendValue(meta, key, strings.TrimSpace(content))
	})

	return meta
}

// extractStructuredData parses every JSON-LD block on its own. A malformed
// block is logged and skipped.
func (p *htmlProjector) extractStructuredData(doc *goquery.Document, pageURL string) []interface{} {
	blocks := make([]interface{}, 0)

	doc.Find("script[type]").Each(func(i int, s *goquery.Selection) {
		if !strings.EqualFold(strings.TrimSpace(s.AttrOr("type", "")), "application/ld+json") {
			return
		}

		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}

		var data interface{}
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			p.logger.Warn("Skipping malformed JSON-LD block", map[string]interface{}{
				"url":   pageURL,
				"index": i,
				"error": err.Error(),
			})
			return
		}
		blocks = append(blocks, data)
	})

	return blocks
}

func extractForms(doc *goquery.Document, base *url.URL) []interface{} {
	forms := make([]interface{}, 0)

	doc.Find("form").Each(func(_ int, f *goquery.Selection) {
		method := strings.ToLower(strings.TrimSpace(f.AttrOr("method", "")))
		if method == "" {
			method = "get"
		}

		form := map[string]interface{}{
			"action": resolveURL(base, f.AttrOr("action", "")),
			"method": method,
			"inputs": extractInputs(f),
		}
		putString(form, "id", f.AttrOr("id", ""))
		putString(form, "name", f.AttrOr("name", ""))

		forms = append(forms, form)
	})

	return forms
}

func extractInputs(form *goquery.Selection) []interface{} {
	inputs := make([]interface{}, 0)

	form.Find("input, select, textarea, button").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)

		inputType := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
		switch tag {
		case "select", "textarea":
			inputType = tag
		case "button":
			if inputType == "" {
				inputType = "submit"
			}
		default:
			if inputType == "" {
				inputType = "text"
			}
		}

		input := map[string]interface{}{
			"type": inputType,
		}
		putString(input, "name", s.AttrOr("name", ""))
		putString(input, "id", s.AttrOr("id", ""))
		if value, ok := s.Attr("value"); ok {
			input["value"] = value
		}
		if _, ok := s.Attr("required"); ok {
			input["required"] = "true"
		}

		inputs = append(inputs, input)
	})

	return inputs
}

func extractLinks(doc *goquery.Document, base *url.URL) []interface{} {
	links := make([]interface{}, 0)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}

		link := map[string]interface{}{
			"href": resolveURL(base, href),
			"text": htmlutil.CollapseWhitespace(s.Text()),
		}
		putString(link, "rel", s.AttrOr("rel", ""))

		links = append(links, link)
	})

	return links
}

// skippedTextElements never contribute to the body excerpt
var skippedTextElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
}

// extractBodyText returns the visible body text, capped at MaxBodyTextLength.
// Text nodes are joined with spaces so adjacent blocks don't run together.
func extractBodyText(doc *goquery.Document) string {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		body = doc.Selection
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedTextElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range body.Nodes {
		walk(n)
	}

	return htmlutil.Excerpt(b.String(), MaxBodyTextLength)
}

func extractOpenGraph(body []byte) map[string]interface{} {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(bytes.NewReader(body)); err != nil {
		return nil
	}

	result := make(map[string]interface{})
	putString(result, "title", og.Title)
	putString(result, "type", og.Type)
	putString(result, "url", og.URL)
	putString(result, "description", og.Description)
	putString(result, "siteName", og.SiteName)
	putString(result, "locale", og.Locale)

	images := make([]interface{}, 0, len(og.Images))
	for _, img := range og.Images {
		if img == nil || img.URL == "" {
			continue
		}
		image := map[string]interface{}{"url": img.URL}
		putString(image, "secureUrl", img.SecureURL)
		putString(image, "type", img.Type)
		if img.Width > 0 {
			image["width"] = strconv.FormatUint(img.Width, 10)
		}
		if img.Height > 0 {
			image["height"] = strconv.FormatUint(img.Height, 10)
		}
		images = append(images, image)
	}
	if len(images) > 0 {
		result["images"] = images
	}

	return result
}

func (p *htmlProjector) extractArticle(body []byte, base *url.URL, pageURL string) map[string]interface{} {
	article, err := readability.FromReader(bytes.NewReader(body), base)
	if err != nil {
		p.logger.Debug("Readability extraction failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil
	}

	result := make(map[string]interface{})
	putString(result, "title", article.Title)
	putString(result, "byline", article.Byline)
	putString(result, "excerpt", article.Excerpt)
	putString(result, "siteName", article.SiteName)
	putString(result, "image", article.Image)
	return result
}

// resolveURL makes ref absolute against base, returning ref unchanged when
// either side can't be used
func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	parsed, err := url.Parse(ref)
	if err != nil || base == nil || base.Scheme == "" {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
