package catalog

import (
	"context"
	"errors"
	"strings"

	"bookstore-backend/internal/auth"
	"bookstore-backend/internal/models"
)

// Service implements the catalog operations on top of a Store. It owns
// validation and the author-only write permission; handlers translate its
// errors into HTTP responses.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Store() Store {
	return s.store
}

// Register validates the input, hashes the password, and creates the user.
func (s *Service) Register(ctx context.Context, in *models.RegisterInput) (*models.User, error) {
	if errs := in.Validate(); errs != nil {
		return nil, newValidationError(errs)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existing, err := s.store.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, newValidationError(map[string][]string{
			"email": {"user with this email already exists."},
		})
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Name:     strings.TrimSpace(in.Name),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		// The email check above races with concurrent registers; the store
		// surfaces the unique violation.
		if errors.Is(err, ErrDuplicate) {
			return nil, newValidationError(map[string][]string{
				"email": {"user with this email already exists."},
			})
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks email and password and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]*models.Book, error) {
	return s.store.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	return s.store.GetBook(ctx, id)
}

// CreateBook creates a book owned by the calling user. The author is always
// the caller, regardless of the payload.
func (s *Service) CreateBook(ctx context.Context, user *models.User, in *models.BookInput) (*models.Book, error) {
	if errs := in.Validate(false); errs != nil {
		return nil, newValidationError(errs)
	}

	book := &models.Book{
		AuthorID: user.ID,
		Author:   user.Name,
	}
	in.Apply(book)

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook applies a partial update. Only the book's author may update it.
func (s *Service) UpdateBook(ctx context.Context, user *models.User, id int64, in *models.BookInput) (*models.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if book.AuthorID != user.ID {
		return nil, ErrNotOwner
	}
	if errs := in.Validate(true); errs != nil {
		return nil, newValidationError(errs)
	}

	in.Apply(book)
	if err := s.store.UpdateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes a book and, via cascade, its pages. Only the author may
// delete it. It returns the remaining books, matching the delete response
// shape of the API.
func (s *Service) DeleteBook(ctx context.Context, user *models.User, id int64) ([]*models.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if book.AuthorID != user.ID {
		return nil, ErrNotOwner
	}
	if err := s.store.DeleteBook(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListBooks(ctx)
}

// ListPages returns the pages of a book. The book must exist.
func (s *Service) ListPages(ctx context.Context, bookID int64) ([]*models.Page, error) {
	if _, err := s.store.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.store.ListPages(ctx, bookID)
}

func (s *Service) GetPage(ctx context.Context, bookID, pageID int64) (*models.Page, error) {
	return s.store.GetPage(ctx, bookID, pageID)
}

// CreatePage adds a page to a book. Only the book's author may add pages.
func (s *Service) CreatePage(ctx context.Context, user *models.User, bookID int64, in *models.PageInput) (*models.Page, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.AuthorID != user.ID {
		return nil, ErrNotOwner
	}
	if errs := in.Validate(false); errs != nil {
		return nil, newValidationError(errs)
	}

	if err := s.checkPageNumberFree(ctx, bookID, *in.PageNumber, 0); err != nil {
		return nil, err
	}

	page := &models.Page{
		BookID: bookID,
		Book:   book.Title,
	}
	in.Apply(page)

	if err := s.store.CreatePage(ctx, page); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, pageNumberTaken()
		}
		return nil, err
	}
	return page, nil
}

func pageNumberTaken() *ValidationError {
	return newValidationError(map[string][]string{
		"page_number": {"page with this number already exists for this book."},
	})
}

// checkPageNumberFree rejects a page number already used by another page of
// the book. exclude is the ID of the page being updated, 0 on create.
func (s *Service) checkPageNumberFree(ctx context.Context, bookID int64, number int, exclude int64) error {
	pages, err := s.store.ListPages(ctx, bookID)
	if err != nil {
		return err
	}
	for _, p := range pages {
		if p.ID != exclude && p.PageNumber == number {
			return pageNumberTaken()
		}
	}
	return nil
}

// UpdatePage applies a partial update to a page of a book.
func (s *Service) UpdatePage(ctx context.Context, user *models.User, bookID, pageID int64, in *models.PageInput) (*models.Page, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.AuthorID != user.ID {
		return nil, ErrNotOwner
	}

	page, err := s.store.GetPage(ctx, bookID, pageID)
	if err != nil {
		return nil, err
	}
	if errs := in.Validate(true); errs != nil {
		return nil, newValidationError(errs)
	}
	if in.PageNumber != nil && *in.PageNumber != page.PageNumber {
		if err := s.checkPageNumberFree(ctx, bookID, *in.PageNumber, page.ID); err != nil {
			return nil, err
		}
	}

	in.Apply(page)
	if err := s.store.UpdatePage(ctx, page); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, pageNumberTaken()
		}
		return nil, err
	}
	return page, nil
}

// DeletePage removes a page from a book.
func (s *Service) DeletePage(ctx context.Context, user *models.User, bookID, pageID int64) error {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return err
	}
	if book.AuthorID != user.ID {
		return ErrNotOwner
	}
	if _, err := s.store.GetPage(ctx, bookID, pageID); err != nil {
		return err
	}
	return s.store.DeletePage(ctx, bookID, pageID)
}
