package models

import (
	"net/mail"
	"strings"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterInput is the payload accepted by the register endpoint.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate checks the registration payload and returns a field -> messages
// map compatible with the API's validation error envelope. An empty map means
// the input is valid.
func (in *RegisterInput) Validate() map[string][]string {
	errs := make(map[string][]string)

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = append(errs["email"], "This field is required.")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = append(errs["email"], "Enter a valid email address.")
	}

	if in.Password == "" {
		errs["password"] = append(errs["password"], "This field is required.")
	} else if len(in.Password) < 8 {
		errs["password"] = append(errs["password"], "The password must be at least 8 characters long.")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = append(errs["name"], "This field is required.")
	} else if len(name) > 30 {
		errs["name"] = append(errs["name"], "Ensure this field has no more than 30 characters.")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u *User) String() string {
	return u.Name
}
