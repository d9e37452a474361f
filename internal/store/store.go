// Package store provides the SQL-backed implementations of catalog.Store.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"bookstore-backend/internal/catalog"
	"bookstore-backend/internal/db"
	"bookstore-backend/internal/models"
)

// SQLStore adapts the db.Queries layer to the catalog.Store interface. It
// works against both SQLite and Postgres.
type SQLStore struct {
	q *db.Queries
}

func NewSQLiteStore(conn *sql.DB) *SQLStore {
	return &SQLStore{q: db.New(conn)}
}

func NewPostgresStore(conn *sql.DB) *SQLStore {
	return &SQLStore{q: db.NewPostgres(conn)}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.ErrNotFound
	}
	return err
}

// duplicate maps driver unique-violation errors onto catalog.ErrDuplicate.
func duplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return catalog.ErrDuplicate
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return catalog.ErrDuplicate
	}
	return err
}

func (s *SQLStore) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	row := db.User{
		Email:     user.Email,
		Password:  user.Password,
		Name:      user.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.q.InsertUser(ctx, &row); err != nil {
		return duplicate(err)
	}
	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	return nil
}

func userFromRow(u db.User) *models.User {
	return &models.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (s *SQLStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return userFromRow(row), nil
}

func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row, err := s.q.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err)
	}
	return userFromRow(row), nil
}

func bookFromRow(b db.Book) *models.Book {
	return &models.Book{
		ID:          b.ID,
		AuthorID:    b.AuthorID,
		Author:      b.AuthorName,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (s *SQLStore) ListBooks(ctx context.Context) ([]*models.Book, error) {
	rows, err := s.q.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	books := make([]*models.Book, 0, len(rows))
	for _, b := range rows {
		books = append(books, bookFromRow(b))
	}
	return books, nil
}

func (s *SQLStore) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	row, err := s.q.GetBook(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return bookFromRow(row), nil
}

func (s *SQLStore) CreateBook(ctx context.Context, book *models.Book) error {
	now := time.Now().UTC()
	row := db.Book{
		AuthorID:    book.AuthorID,
		Title:       book.Title,
		Description: book.Description,
		Price:       book.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.q.InsertBook(ctx, &row); err != nil {
		return err
	}
	book.ID = row.ID
	book.CreatedAt = row.CreatedAt
	book.UpdatedAt = row.UpdatedAt
	return nil
}

func (s *SQLStore) UpdateBook(ctx context.Context, book *models.Book) error {
	book.UpdatedAt = time.Now().UTC()
	return s.q.UpdateBook(ctx, &db.Book{
		ID:          book.ID,
		Title:       book.Title,
		Description: book.Description,
		Price:       book.Price,
		UpdatedAt:   book.UpdatedAt,
	})
}

func (s *SQLStore) DeleteBook(ctx context.Context, id int64) error {
	return s.q.DeleteBook(ctx, id)
}

func pageFromRow(p db.Page) *models.Page {
	return &models.Page{
		ID:         p.ID,
		BookID:     p.BookID,
		Book:       p.BookTitle,
		PageNumber: p.PageNumber,
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (s *SQLStore) ListPages(ctx context.Context, bookID int64) ([]*models.Page, error) {
	rows, err := s.q.ListPages(ctx, bookID)
	if err != nil {
		return nil, err
	}
	pages := make([]*models.Page, 0, len(rows))
	for _, p := range rows {
		pages = append(pages, pageFromRow(p))
	}
	return pages, nil
}

func (s *SQLStore) GetPage(ctx context.Context, bookID, pageID int64) (*models.Page, error) {
	row, err := s.q.GetPage(ctx, bookID, pageID)
	if err != nil {
		return nil, notFound(err)
	}
	return pageFromRow(row), nil
}

func (s *SQLStore) CreatePage(ctx context.Context, page *models.Page) error {
	now := time.Now().UTC()
	row := db.Page{
		BookID:     page.BookID,
		PageNumber: page.PageNumber,
		Content:    page.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.q.InsertPage(ctx, &row); err != nil {
		return duplicate(err)
	}
	page.ID = row.ID
	page.CreatedAt = row.CreatedAt
	page.UpdatedAt = row.UpdatedAt
	return nil
}

func (s *SQLStore) UpdatePage(ctx context.Context, page *models.Page) error {
	page.UpdatedAt = time.Now().UTC()
	err := s.q.UpdatePage(ctx, &db.Page{
		ID:         page.ID,
		PageNumber: page.PageNumber,
		Content:    page.Content,
		UpdatedAt:  page.UpdatedAt,
	})
	return duplicate(err)
}

func (s *SQLStore) DeletePage(ctx context.Context, bookID, pageID int64) error {
	return s.q.DeletePage(ctx, bookID, pageID)
}
