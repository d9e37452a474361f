// Package client is an HTTP client for the bookstore API, used by bookctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"bookstore-backend/internal/models"
)

// A Client combines an HTTP client with the base URL of a bookstore API
// server and an optional bearer token.
type Client struct {
	httpClient http.Client
	baseURL    url.URL
	token      string
}

// New creates a new Client for the given base URL. token may be empty for
// the unauthenticated endpoints.
func New(baseURL url.URL, token string) *Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 10

	return &Client{
		httpClient: http.Client{Transport: t},
		baseURL:    baseURL,
		token:      token,
	}
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope mirrors the API's response shape.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String()+"/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// Do executes a request created by one of the New...Request methods.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// do executes the request and decodes the envelope, turning unsuccessful
// envelopes into errors.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("could not decode response (%s): %w", resp.Status, err)
	}
	if !env.Success {
		if len(env.Errors) > 0 {
			return fmt.Errorf("%s: %v", env.Message, env.Errors)
		}
		if env.Error != "" {
			return fmt.Errorf("%s: %s", env.Message, env.Error)
		}
		return fmt.Errorf("%s", env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("could not decode response data: %w", err)
		}
	}
	return nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "user/register", models.RegisterInput{
		Email: email, Password: password, Name: name,
	})
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns the JWT issued by the server.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "user/login", models.LoginInput{
		Email: email, Password: password,
	})
	if err != nil {
		return "", err
	}
	var token string
	if err := c.do(req, &token); err != nil {
		return "", err
	}
	return token, nil
}

// ListBooks returns all books.
func (c *Client) ListBooks(ctx context.Context) ([]*models.Book, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "book", nil)
	if err != nil {
		return nil, err
	}
	var books []*models.Book
	if err := c.do(req, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook creates a book owned by the authenticated user.
func (c *Client) CreateBook(ctx context.Context, in *models.BookInput) (*models.Book, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "book", in)
	if err != nil {
		return nil, err
	}
	var book models.Book
	if err := c.do(req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// ListPages returns the pages of a book.
func (c *Client) ListPages(ctx context.Context, bookID int64) ([]*models.Page, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("book/%d/page", bookID), nil)
	if err != nil {
		return nil, err
	}
	var pages []*models.Page
	if err := c.do(req, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// CreatePage adds a page to a book.
func (c *Client) CreatePage(ctx context.Context, bookID int64, in *models.PageInput) (*models.Page, error) {
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("book/%d/page", bookID), in)
	if err != nil {
		return nil, err
	}
	var page models.Page
	if err := c.do(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
