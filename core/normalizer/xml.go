// ABOUTME: XML projection into the normalized tree shape
// ABOUTME: Uses xmlquery as the DOM and recursively maps elements to maps, sequences and strings

package normalizer

import (
	"bytes"
	"strings"

	"github.com/antchfx/xmlquery"

	cerrors "content-normalizer-api/core/errors"
)

// projectXML parses body and projects its root element
func projectXML(body []byte) (interface{}, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &cerrors.ParseError{Kind: "xml", Details: err.Error(), Err: err}
	}

	root, err := rootElement(doc)
	if err != nil {
		return nil, err
	}

	return projectElement(root), nil
}

// projectElement maps one element:
//   - a leaf without attributes collapses to its trimmed text
//   - children are keyed by tag name, repeated tags become a sequence
//   - attributes go under @attributes, remaining text under #text
func projectElement(n *xmlquery.Node) interface{} {
	result := make(map[string]interface{})
	if attrs := collectAttributes(n); len(attrs) > 0 {
		result[attributesKey] = attrs
	}

	var text strings.Builder
	hasChildren := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			hasChildren = true
			appendValue(result, qualifiedName(c), projectElement(c))
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text.WriteString(c.Data)
		}
	}

	trimmed := strings.TrimSpace(text.String())
	if !hasChildren && len(result) == 0 {
		return trimmed
	}
	if trimmed != "" {
		result[textKey] = trimmed
	}
	return result
}

func collectAttributes(n *xmlquery.Node) map[string]interface{} {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]interface{}, len(n.Attr))
	for _, a := range n.Attr {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + name
		}
		attrs[name] = a.Value
	}
	return attrs
}

func qualifiedName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	return n.Data
}

// rootElement returns the single top-level element. xmlquery accepts
// several, which is not well-formed XML.
func rootElement(doc *xmlquery.Node) (*xmlquery.Node, error) {
	var root *xmlquery.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if root != nil {
			return nil, &cerrors.ParseError{
				Kind:    "xml",
				Details: "document has more than one root element: <" + qualifiedName(root) + "> and <" + qualifiedName(c) + ">",
			}
		}
		root = c
	}
	if root == nil {
		return nil, &cerrors.ParseError{Kind: "xml", Details: "document has no root element"}
	}
	return root, nil
}
