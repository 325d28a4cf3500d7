// ABOUTME: Command line entry point that normalizes URLs and prints JSON
// ABOUTME: Exits with status 1 when any URL fails to normalize

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"content-normalizer-api/core/interfaces"
	"content-normalizer-api/infrastructure/logger/structured"
	normalizer "content-normalizer-api/normalizer-lib"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		// cli.Exit errors have already been reported by the app
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "normalize",
		Usage:     "fetch URLs and print their content as a normalized JSON tree",
		ArgsUsage: "URL [URL...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout for each fetch",
				Value: normalizer.DefaultTimeout,
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "print JSON without indentation",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error; logs go to stderr",
				Value: "error",
			},
		},
		Action: func(c *cli.Context) error {
			return normalizeAction(c, stdout, stderr)
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err != nil {
				fmt.Fprintln(stderr, "Error:", err)
			}
		},
	}
}

func normalizeAction(c *cli.Context, stdout, stderr io.Writer) error {
	urls := c.Args().Slice()
	if len(urls) == 0 {
		return cli.Exit("at least one URL is required", 1)
	}

	logger, err := structured.New(structured.Options{
		Level:  c.String("log-level"),
		Format: "text",
		Output: stderr,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	client, err := normalizer.NewClient(
		normalizer.WithTimeout(c.Duration("timeout")),
		normalizer.WithLogger(logger),
		normalizer.WithoutCache(),
	)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer client.Close()

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	output, failed := run(ctx, client, urls, logger)

	enc := json.NewEncoder(stdout)
	if !c.Bool("compact") {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output); err != nil {
		return cli.Exit(fmt.Sprintf("writing output: %v", err), 1)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d URLs failed", failed, len(urls)), 1)
	}
	return nil
}

// run normalizes the URLs. A single URL prints its result directly; several
// print the batch items.
func run(ctx context.Context, client *normalizer.Client, urls []string, logger interfaces.Logger) (interface{}, int) {
	start := time.Now()

	if len(urls) == 1 {
		result, err := client.Normalize(ctx, urls[0])
		if err != nil {
			return map[string]string{"url": urls[0], "error": err.Error()}, 1
		}
		return result, 0
	}

	items, err := client.NormalizeBatch(ctx, urls)
	if err != nil {
		return map[string]string{"error": err.Error()}, len(urls)
	}

	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
		}
	}

	logger.Info("Batch finished", map[string]interface{}{
		"urls":        len(urls),
		"failed":      failed,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return items, failed
}
