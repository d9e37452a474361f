package main

import (
	"context"
	"fmt"
	"testing"

	"bookstore-backend/internal/auth"
	"bookstore-backend/internal/catalog"
	"bookstore-backend/internal/models"
	"bookstore-backend/internal/store"
)

func benchSetup(b *testing.B, numBooks int) {
	b.Helper()
	svc = catalog.NewService(store.NewMemoryStore())
	tokens = auth.NewTokenIssuer("bench-secret")

	ctx := context.Background()
	user, err := svc.Register(ctx, &models.RegisterInput{
		Email: "bench@example.com", Password: "bench-password", Name: "Bench",
	})
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}

	desc := "desc"
	price := 10.0
	for i := 0; i < numBooks; i++ {
		title := fmt.Sprintf("Book %d", i)
		if _, err := svc.CreateBook(ctx, user, &models.BookInput{
			Title: &title, Description: &desc, Price: &price,
		}); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkListBooks(b *testing.B) {
	benchSetup(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ListBooks(ctx); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkScoreBooks(b *testing.B) {
	benchSetup(b, 1000)
	books, err := svc.ListBooks(context.Background())
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scoreBooks(books, "book 99")
	}
}
