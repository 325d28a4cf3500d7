// ABOUTME: Domain models for fetched remote documents and their normalized form
// ABOUTME: Defines content kinds, normalized results and batch items

package domain

import (
	"strings"
	"time"
)

// ContentKind is the MIME family a remote document was classified into
type ContentKind string

const (
	// KindJSON marks JSON payloads
	KindJSON ContentKind = "json"

	// KindXML marks XML payloads (feeds, sitemaps, SOAP, generic XML)
	KindXML ContentKind = "xml"

	// KindHTML marks HTML and XHTML pages
	KindHTML ContentKind = "html"

	// KindUnknown marks anything that could not be classified
	KindUnknown ContentKind = "unknown"
)

// String implements fmt.Stringer
func (k ContentKind) String() string {
	return string(k)
}

// RemoteDocument is a payload fetched from an external URL
type RemoteDocument struct {
	URL        string
	Kind       ContentKind
	Headers    map[string]string
	StatusCode int
	Body       []byte
}

// Header returns a header value using a case-insensitive lookup
func (d *RemoteDocument) Header(key string) string {
	if d.Headers == nil {
		return ""
	}
	if v, ok := d.Headers[key]; ok {
		return v
	}
	for k, v := range d.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// ResultMetadata describes where a normalized result came from
type ResultMetadata struct {
	URL           string      `json:"url" doc:"The URL that was fetched"`
	ContentType   ContentKind `json:"contentType" enum:"json,xml,html,unknown" doc:"Detected content kind"`
	ContentLength int         `json:"contentLength" doc:"Size of the fetched body in bytes"`
	Timestamp     time.Time   `json:"timestamp" doc:"When the content was fetched"`
	MimeType      string      `json:"mimeType,omitempty" doc:"Raw Content-Type header sent by the origin"`
	StatusCode    int         `json:"statusCode,omitempty" doc:"HTTP status code of the origin response"`
	FeedType      string      `json:"feedType,omitempty" doc:"Feed flavour (rss, atom, json) when the document is a feed"`
}

// NormalizedResult is the uniform output for any content kind
type NormalizedResult struct {
	// Data holds the normalized tree: maps, slices and string leaves for
	// markup, or the parsed JSON value for JSON payloads
	Data     interface{}    `json:"data" doc:"Normalized JSON-compatible tree"`
	Metadata ResultMetadata `json:"metadata" doc:"Fetch and classification metadata"`
}

// BatchItem is the outcome of normalizing one URL in a batch
type BatchItem struct {
	URL    string            `json:"url" doc:"The requested URL"`
	Result *NormalizedResult `json:"result,omitempty" doc:"Normalized result when successful"`
	Error  string            `json:"error,omitempty" doc:"Error message when normalization failed"`
	Code   string            `json:"code,omitempty" doc:"Error kind when normalization failed"`
}
