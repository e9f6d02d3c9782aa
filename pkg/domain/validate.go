package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks local field-validation failures. They block the
// submission before any network call is made.
var ErrInvalidInput = errors.New("invalid input")

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return nil
}

// Validate checks the fields a book must carry before it can be submitted.
func (b Book) Validate() error {
	if err := required("name", b.Name); err != nil {
		return err
	}
	if err := required("isbn", b.ISBN); err != nil {
		return err
	}
	if err := required("categoryName", b.ResolvedCategoryInput()); err != nil {
		return err
	}
	if err := required("publisherName", b.ResolvedPublisherInput()); err != nil {
		return err
	}
	if b.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if b.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	if b.Pages < 0 {
		return fmt.Errorf("%w: pages must not be negative", ErrInvalidInput)
	}
	return nil
}

// ResolvedCategoryInput is the category name as typed on a form, without the
// display placeholder ResolvedCategory falls back to.
func (b Book) ResolvedCategoryInput() string {
	if b.CategoryName != "" {
		return b.CategoryName
	}
	if b.Category != nil {
		return b.Category.Name
	}
	return ""
}

// ResolvedPublisherInput mirrors ResolvedCategoryInput.
func (b Book) ResolvedPublisherInput() string {
	if b.PublisherName != "" {
		return b.PublisherName
	}
	if b.Publisher != nil {
		return b.Publisher.Name
	}
	return ""
}

// Validate checks required category fields.
func (c Category) Validate() error {
	return required("name", c.Name)
}

// Validate checks required publisher fields.
func (p Publisher) Validate() error {
	return required("name", p.Name)
}

// Validate checks required user fields.
func (u User) Validate() error {
	if err := required("accountNumber", u.AccountNumber); err != nil {
		return err
	}
	if err := required("name", u.Name); err != nil {
		return err
	}
	return required("email", u.Email)
}
