// ABOUTME: Basic example showing normalization with the library client
// ABOUTME: Demonstrates minimal configuration, batches and in-memory content

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	normalizer "content-normalizer-api/normalizer-lib"
)

func main() {
	client, err := normalizer.NewClient(normalizer.WithTimeout(10 * time.Second))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	fmt.Println("=== Single URL ===")
	result, err := client.Normalize(ctx, "https://news.ycombinator.com/rss")
	if err != nil {
		log.Printf("Error normalizing: %v\n", err)
	} else {
		fmt.Printf("Kind: %s, feed: %s, bytes: %d\n",
			result.Metadata.ContentType, result.Metadata.FeedType, result.Metadata.ContentLength)
	}

	fmt.Println("\n=== Batch ===")
	items, err := client.NormalizeBatch(ctx, []string{
		"https://example.com",
		"https://api.github.com",
		"not a url",
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, item := range items {
		if item.Error != "" {
			fmt.Printf("- %s: %s (%s)\n", item.URL, item.Error, item.Code)
			continue
		}
		fmt.Printf("- %s: %s\n", item.URL, item.Result.Metadata.ContentType)
	}

	fmt.Println("\n=== Content already in hand ===")
	local, err := client.NormalizeContent(ctx, "", "application/xml",
		[]byte(`<root><item>1</item><item>2</item></root>`))
	if err != nil {
		log.Fatal(err)
	}
	enc.Encode(local.Data)
}
