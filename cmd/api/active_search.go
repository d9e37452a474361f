package main

import (
	"fmt"
	"html"
	"net/http"
	"slices"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"bookstore-backend/internal/models"
)

type ActiveSearchSignals struct {
	Search string `json:"search"`
}

// Levenshtein calculates the Levenshtein distance between two strings.
func Levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	n, m := len(r1), len(r2)
	if n > m {
		r1, r2 = r2, r1
		n, m = m, n
	}

	currentRow := make([]int, n+1)
	for i := 0; i <= n; i++ {
		currentRow[i] = i
	}

	for i := 1; i <= m; i++ {
		previousRow := currentRow
		currentRow = make([]int, n+1)
		currentRow[0] = i
		for j := 1; j <= n; j++ {
			add, del, change := previousRow[j]+1, currentRow[j-1]+1, previousRow[j-1]
			if r1[j-1] != r2[i-1] {
				change++
			}
			currentRow[j] = min(add, min(del, change))
		}
	}
	return currentRow[n]
}

type scoredBook struct {
	Book  *models.Book
	Score int
}

// scoreBooks ranks books against a query: substring matches first, then
// fuzzy matches within the distance threshold.
func scoreBooks(books []*models.Book, query string) []scoredBook {
	var results []scoredBook
	for _, b := range books {
		if query == "" {
			results = append(results, scoredBook{Book: b})
			continue
		}

		title := strings.ToLower(b.Title)
		author := strings.ToLower(b.Author)

		score := 1000
		if strings.Contains(title, query) || strings.Contains(author, query) {
			score = 0
		} else {
			dist := min(Levenshtein(query, title), Levenshtein(query, author))
			if dist < 5 {
				score = dist
			}
		}

		if score < 1000 {
			results = append(results, scoredBook{Book: b, Score: score})
		}
	}

	slices.SortFunc(results, func(a, b scoredBook) int {
		if a.Score != b.Score {
			return a.Score - b.Score
		}
		return int(a.Book.ID - b.Book.ID)
	})

	if len(results) > 15 {
		results = results[:15]
	}
	return results
}

func handleActiveSearch(w http.ResponseWriter, r *http.Request) {
	signals := &ActiveSearchSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := strings.ToLower(strings.TrimSpace(signals.Search))

	books, err := svc.ListBooks(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	results := scoreBooks(books, query)

	var sb strings.Builder
	sb.WriteString(`<div id="book-results" class="list">`)
	for _, res := range results {
		sb.WriteString(fmt.Sprintf(`
			<div class="row">
				<span>%s</span>
				<label>%s &middot; $%.2f</label>
			</div>`,
			html.EscapeString(res.Book.Title), html.EscapeString(res.Book.Author), res.Book.Price))
	}
	if len(results) == 0 {
		sb.WriteString(`<div class="padding">No results found</div>`)
	}
	sb.WriteString("</div>")

	sse := datastar.NewSSE(w, r)
	sse.PatchElements(sb.String())
}
