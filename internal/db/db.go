package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Book struct {
	ID          int64
	AuthorID    int64
	AuthorName  string
	Title       string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Page struct {
	ID         int64
	BookID     int64
	BookTitle  string
	PageNumber int
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Queries interface mimicking sqlc generated code. Statements are written
// with ? placeholders; the rebind hook rewrites them to $N for Postgres.
type Queries struct {
	db     *sql.DB
	rebind func(string) string
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db, rebind: func(q string) string { return q }}
}

func NewPostgres(db *sql.DB) *Queries {
	return &Queries{db: db, rebind: rebindDollar}
}

// rebindDollar converts ? placeholders to $1..$N.
func rebindDollar(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (q *Queries) InsertUser(ctx context.Context, u *User) error {
	return q.db.QueryRowContext(ctx, q.rebind(
		"INSERT INTO users (email, password, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id"),
		u.Email, u.Password, u.Name, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(
		"SELECT id, email, password, name, created_at, updated_at FROM users WHERE id = ?"), id)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(
		"SELECT id, email, password, name, created_at, updated_at FROM users WHERE email = ?"), email)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const bookColumns = `b.id, b.author_id, u.name, b.title, b.description, b.price, b.created_at, b.updated_at
FROM books b JOIN users u ON u.id = b.author_id`

func (q *Queries) ListBooks(ctx context.Context) ([]Book, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+bookColumns+" ORDER BY b.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.AuthorID, &b.AuthorName, &b.Title, &b.Description, &b.Price, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (q *Queries) GetBook(ctx context.Context, id int64) (Book, error) {
	row := q.db.QueryRowContext(ctx, q.rebind("SELECT "+bookColumns+" WHERE b.id = ?"), id)
	var b Book
	err := row.Scan(&b.ID, &b.AuthorID, &b.AuthorName, &b.Title, &b.Description, &b.Price, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (q *Queries) InsertBook(ctx context.Context, b *Book) error {
	return q.db.QueryRowContext(ctx, q.rebind(
		"INSERT INTO books (author_id, title, description, price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?) RETURNING id"),
		b.AuthorID, b.Title, b.Description, b.Price, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (q *Queries) UpdateBook(ctx context.Context, b *Book) error {
	_, err := q.db.ExecContext(ctx, q.rebind(
		"UPDATE books SET title = ?, description = ?, price = ?, updated_at = ? WHERE id = ?"),
		b.Title, b.Description, b.Price, b.UpdatedAt, b.ID)
	return err
}

func (q *Queries) DeleteBook(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, q.rebind("DELETE FROM books WHERE id = ?"), id)
	return err
}

const pageColumns = `p.id, p.book_id, b.title, p.page_number, p.content, p.created_at, p.updated_at
FROM pages p JOIN books b ON b.id = p.book_id`

func (q *Queries) ListPages(ctx context.Context, bookID int64) ([]Page, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(
		"SELECT "+pageColumns+" WHERE p.book_id = ? ORDER BY p.page_number"), bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Page
	for rows.Next() {
		var p Page
		if err := rows.Scan(&p.ID, &p.BookID, &p.BookTitle, &p.PageNumber, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (q *Queries) GetPage(ctx context.Context, bookID, pageID int64) (Page, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(
		"SELECT "+pageColumns+" WHERE p.book_id = ? AND p.id = ?"), bookID, pageID)
	var p Page
	err := row.Scan(&p.ID, &p.BookID, &p.BookTitle, &p.PageNumber, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) InsertPage(ctx context.Context, p *Page) error {
	return q.db.QueryRowContext(ctx, q.rebind(
		"INSERT INTO pages (book_id, page_number, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id"),
		p.BookID, p.PageNumber, p.Content, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (q *Queries) UpdatePage(ctx context.Context, p *Page) error {
	_, err := q.db.ExecContext(ctx, q.rebind(
		"UPDATE pages SET page_number = ?, content = ?, updated_at = ? WHERE id = ?"),
		p.PageNumber, p.Content, p.UpdatedAt, p.ID)
	return err
}

func (q *Queries) DeletePage(ctx context.Context, bookID, pageID int64) error {
	_, err := q.db.ExecContext(ctx, q.rebind(
		"DELETE FROM pages WHERE book_id = ? AND id = ?"), bookID, pageID)
	return err
}
