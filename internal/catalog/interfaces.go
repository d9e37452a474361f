package catalog

import (
	"context"

	"bookstore-backend/internal/models"
)

// Store defines the interface for database operations
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	ListBooks(ctx context.Context) ([]*models.Book, error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	CreateBook(ctx context.Context, book *models.Book) error
	UpdateBook(ctx context.Context, book *models.Book) error
	DeleteBook(ctx context.Context, id int64) error

	ListPages(ctx context.Context, bookID int64) ([]*models.Page, error)
	GetPage(ctx context.Context, bookID, pageID int64) (*models.Page, error)
	CreatePage(ctx context.Context, page *models.Page) error
	UpdatePage(ctx context.Context, page *models.Page) error
	DeletePage(ctx context.Context, bookID, pageID int64) error
}
