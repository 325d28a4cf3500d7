// ABOUTME: Request DTOs for the normalize endpoints
// ABOUTME: Declares query and body shapes validated by huma

package requests

import "strings"

// MaxBatchURLs bounds a single batch request
const MaxBatchURLs = 50

// NormalizeBatchRequest represents the request body for normalizing several URLs
type NormalizeBatchRequest struct {
	// URLs is the list of documents to fetch and normalize
	URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"List of URLs to normalize"`
}

// Dedupe trims the URLs and drops blanks and repeats, keeping first-seen order
func (r *NormalizeBatchRequest) Dedupe() {
	seen := make(map[string]bool, len(r.URLs))
	out := r.URLs[:0]
	for _, u := range r.URLs {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	r.URLs = out
}
