package models

import (
	"strconv"
	"time"
)

type Page struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	Book       string    `json:"book"` // owning book title
	PageNumber int       `json:"page_number"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PageInput struct {
	PageNumber *int    `json:"page_number"`
	Content    *string `json:"content"`
}

func (in *PageInput) Validate(partial bool) map[string][]string {
	errs := make(map[string][]string)

	if in.PageNumber == nil {
		if !partial {
			errs["page_number"] = append(errs["page_number"], "This field is required.")
		}
	} else if *in.PageNumber < 1 {
		errs["page_number"] = append(errs["page_number"], "Ensure this value is greater than or equal to 1.")
	}

	if in.Content == nil {
		if !partial {
			errs["content"] = append(errs["content"], "This field is required.")
		}
	} else if *in.Content == "" {
		errs["content"] = append(errs["content"], "This field may not be blank.")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (in *PageInput) Apply(p *Page) {
	if in.PageNumber != nil {
		p.PageNumber = *in.PageNumber
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
}

func (p *Page) String() string {
	return strconv.Itoa(p.PageNumber)
}
