package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBatchRequest_Dedupe(t *testing.T) {
	req := NormalizeBatchRequest{URLs: []string{
		"https://a.example",
		" https://b.example ",
		"",
		"https://a.example",
		"https://b.example",
	}}

	req.Dedupe()

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, req.URLs)
}

func TestNormalizeBatchRequest_DedupeAllBlank(t *testing.T) {
	req := NormalizeBatchRequest{URLs: []string{" ", ""}}
	req.Dedupe()
	assert.Empty(t, req.URLs)
}
