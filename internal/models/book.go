package models

import (
	"strings"
	"time"
)

type Book struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"author_id"`
	Author      string    `json:"author"` // author display name
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookInput carries the client-supplied book fields. Pointer fields
// distinguish "absent" from "zero" so the same struct serves both create and
// partial update.
type BookInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (in *BookInput) Validate(partial bool) map[string][]string {
	errs := make(map[string][]string)

	if in.Title == nil {
		if !partial {
			errs["title"] = append(errs["title"], "This field is required.")
		}
	} else {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			errs["title"] = append(errs["title"], "This field may not be blank.")
		} else if len(title) > 100 {
			errs["title"] = append(errs["title"], "Ensure this field has no more than 100 characters.")
		}
	}

	if in.Description == nil {
		if !partial {
			errs["description"] = append(errs["description"], "This field is required.")
		}
	} else if strings.TrimSpace(*in.Description) == "" {
		errs["description"] = append(errs["description"], "This field may not be blank.")
	}

	if in.Price == nil {
		if !partial {
			errs["price"] = append(errs["price"], "This field is required.")
		}
	} else if *in.Price < 0 {
		errs["price"] = append(errs["price"], "Ensure this value is greater than or equal to 0.")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Apply copies the set fields onto b.
func (in *BookInput) Apply(b *Book) {
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Price != nil {
		b.Price = *in.Price
	}
}

func (b *Book) String() string {
	return b.Title
}
