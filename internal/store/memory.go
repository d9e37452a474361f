package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"bookstore-backend/internal/catalog"
	"bookstore-backend/internal/models"
)

// MemoryStore is a mutex-guarded in-memory catalog.Store used for tests and
// as a zero-setup fallback.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[int64]*models.User
	books  map[int64]*models.Book
	pages  map[int64]*models.Page
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[int64]*models.User),
		books: make(map[int64]*models.Book),
		pages: make(map[int64]*models.Page),
	}
}

func (s *MemoryStore) nextSeq() int64 {
	s.nextID++
	return s.nextID
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return catalog.ErrDuplicate
		}
	}
	now := time.Now().UTC()
	user.ID = s.nextSeq()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *MemoryStore) ListBooks(ctx context.Context) ([]*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	books := make([]*models.Book, 0, len(s.books))
	for _, b := range s.books {
		cp := *b
		books = append(books, &cp)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (s *MemoryStore) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *MemoryStore) CreateBook(ctx context.Context, book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	book.ID = s.nextSeq()
	book.CreatedAt = now
	book.UpdatedAt = now
	if author, ok := s.users[book.AuthorID]; ok {
		book.Author = author.Name
	}
	cp := *book
	s.books[book.ID] = &cp
	return nil
}

func (s *MemoryStore) UpdateBook(ctx context.Context, book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.books[book.ID]
	if !ok {
		return catalog.ErrNotFound
	}
	book.UpdatedAt = time.Now().UTC()
	cp := *book
	cp.CreatedAt = existing.CreatedAt
	s.books[book.ID] = &cp
	// Keep the denormalized title on pages in sync.
	for _, p := range s.pages {
		if p.BookID == book.ID {
			p.Book = book.Title
		}
	}
	return nil
}

func (s *MemoryStore) DeleteBook(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(s.books, id)
	for pid, p := range s.pages {
		if p.BookID == id {
			delete(s.pages, pid)
		}
	}
	return nil
}

func (s *MemoryStore) ListPages(ctx context.Context, bookID int64) ([]*models.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var pages []*models.Page
	for _, p := range s.pages {
		if p.BookID == bookID {
			cp := *p
			pages = append(pages, &cp)
		}
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNumber < pages[j].PageNumber })
	return pages, nil
}

func (s *MemoryStore) GetPage(ctx context.Context, bookID, pageID int64) (*models.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[pageID]
	if !ok || p.BookID != bookID {
		return nil, catalog.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) CreatePage(ctx context.Context, page *models.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pages {
		if p.BookID == page.BookID && p.PageNumber == page.PageNumber {
			return catalog.ErrDuplicate
		}
	}
	now := time.Now().UTC()
	page.ID = s.nextSeq()
	page.CreatedAt = now
	page.UpdatedAt = now
	if book, ok := s.books[page.BookID]; ok {
		page.Book = book.Title
	}
	cp := *page
	s.pages[page.ID] = &cp
	return nil
}

func (s *MemoryStore) UpdatePage(ctx context.Context, page *models.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.pages[page.ID]
	if !ok {
		return catalog.ErrNotFound
	}
	for _, p := range s.pages {
		if p.ID != page.ID && p.BookID == existing.BookID && p.PageNumber == page.PageNumber {
			return catalog.ErrDuplicate
		}
	}
	page.UpdatedAt = time.Now().UTC()
	cp := *page
	cp.CreatedAt = existing.CreatedAt
	s.pages[page.ID] = &cp
	return nil
}

func (s *MemoryStore) DeletePage(ctx context.Context, bookID, pageID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pages[pageID]
	if !ok || p.BookID != bookID {
		return catalog.ErrNotFound
	}
	delete(s.pages, pageID)
	return nil
}
