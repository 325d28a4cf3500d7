// ABOUTME: Helpers for building normalized trees
// ABOUTME: Shared by the XML and HTML projections

package normalizer

import (
	"bytes"
	"encoding/json"
	"strings"

	cerrors "content-normalizer-api/core/errors"
)

const (
	// attributesKey holds an XML element's attributes
	attributesKey = "@attributes"

	// textKey holds text of an XML element that also has children or attributes
	textKey = "#text"
)

// appendValue stores value under key, coalescing repeated keys into an
// ordered sequence
func appendValue(m map[string]interface{}, key string, value interface{}) {
	existing, ok := m[key]
	if !ok {
		m[key] = value
		return
	}
	if seq, ok := existing.([]interface{}); ok {
		m[key] = append(seq, value)
		return
	}
	m[key] = []interface{}{existing, value}
}

// putString sets key only when value is non-empty
func putString(m map[string]interface{}, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		m[key] = value
	}
}

// parseJSON decodes a complete JSON document, ignoring a leading UTF-8 BOM
func parseJSON(body []byte) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(bytes.TrimPrefix(body, utf8BOM), &data); err != nil {
		return nil, &cerrors.ParseError{Kind: "json", Details: err.Error(), Err: err}
	}
	return data, nil
}
