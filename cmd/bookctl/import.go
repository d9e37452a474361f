package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"bookstore-backend/internal/models"
)

type importPage struct {
	PageNumber int    `json:"page_number" yaml:"page_number"`
	Content    string `json:"content" yaml:"content"`
}

type importBook struct {
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Price       float64      `json:"price" yaml:"price"`
	Pages       []importPage `json:"pages" yaml:"pages"`
}

type importFile struct {
	Books []importBook `json:"books" yaml:"books"`
}

// readImportFile parses a YAML file (top-level books list) or an NDJSON file
// (one book object per line).
func readImportFile(filename string) ([]importBook, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		var f importFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", filename, err)
		}
		return f.Books, nil
	case ".ndjson", ".json":
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		var books []importBook
		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			var b importBook
			if err := json.Unmarshal([]byte(text), &b); err != nil {
				return nil, fmt.Errorf("could not parse %s line %d: %w", filename, line, err)
			}
			books = append(books, b)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return books, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

type importResult struct {
	booksCreated int
	pagesCreated int
	durations    []float64
	errors       []error
}

func runImport(books []importBook) importResult {
	var res importResult
	ctx := context.Background()

	var p *mpb.Progress
	var bar *mpb.Bar
	if !noProgress {
		p = mpb.New(mpb.WithWidth(64))
		bar = p.AddBar(int64(len(books)),
			mpb.PrependDecorators(
				decor.Name("Import ", decor.WC{W: 7}),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}

	for _, b := range books {
		start := time.Now()
		created, err := apiClient.CreateBook(ctx, &models.BookInput{
			Title:       ptr(b.Title),
			Description: ptr(b.Description),
			Price:       ptr(b.Price),
		})
		res.durations = append(res.durations, time.Since(start).Seconds())
		if err != nil {
			res.errors = append(res.errors, fmt.Errorf("book %q: %w", b.Title, err))
			if bar != nil {
				bar.Increment()
			}
			continue
		}
		res.booksCreated++

		for _, pg := range b.Pages {
			start = time.Now()
			_, err := apiClient.CreatePage(ctx, created.ID, &models.PageInput{
				PageNumber: ptr(pg.PageNumber),
				Content:    ptr(pg.Content),
			})
			res.durations = append(res.durations, time.Since(start).Seconds())
			if err != nil {
				res.errors = append(res.errors, fmt.Errorf("book %q page %d: %w", b.Title, pg.PageNumber, err))
				continue
			}
			res.pagesCreated++
		}
		if bar != nil {
			bar.Increment()
		}
	}

	if p != nil {
		p.Wait()
	}
	return res
}

func ptr[T any](v T) *T {
	return &v
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Bulk-import books with their pages",
	Long: `Imports books (with nested pages) from a YAML file with a top-level
books list, or from an NDJSON file with one book object per line. Requires a
token obtained with bookctl login.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if token == "" {
			return fmt.Errorf("a token is required, obtain one with bookctl login")
		}
		if err := createClient(); err != nil {
			return err
		}

		books, err := readImportFile(args[0])
		if err != nil {
			return err
		}
		if len(books) == 0 {
			return fmt.Errorf("no books found in %s", args[0])
		}

		start := time.Now()
		res := runImport(books)

		fmt.Printf("Books created    : %d\n", res.booksCreated)
		fmt.Printf("Pages created    : %d\n", res.pagesCreated)
		fmt.Printf("Failures         : %d\n", len(res.errors))
		fmt.Printf("Duration         : %s\n", time.Since(start).Round(time.Millisecond))

		stats := CalculateDurationStatistics(res.durations)
		fmt.Println("Request latencies:")
		fmt.Printf("  mean: %s, q50: %s, q95: %s, q99: %s, max: %s\n",
			stats.Mean, stats.Q50, stats.Q95, stats.Q99, stats.Max)

		for _, e := range res.errors {
			fmt.Printf("error: %v\n", e)
		}
		if len(res.errors) > 0 {
			return fmt.Errorf("%d of %d books or pages failed to import", len(res.errors), len(books))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
