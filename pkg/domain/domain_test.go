package domain

import (
	"errors"
	"testing"
)

func TestBookValidateRequiredFields(t *testing.T) {
	valid := Book{Name: "Dune", ISBN: "9780441013593", CategoryName: "Sci-Fi", PublisherName: "Ace", Price: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid book rejected: %v", err)
	}

	cases := map[string]Book{
		"missing name":      {ISBN: "x", CategoryName: "c", PublisherName: "p"},
		"missing isbn":      {Name: "n", CategoryName: "c", PublisherName: "p"},
		"missing category":  {Name: "n", ISBN: "x", PublisherName: "p"},
		"missing publisher": {Name: "n", ISBN: "x", CategoryName: "c"},
		"negative price":    {Name: "n", ISBN: "x", CategoryName: "c", PublisherName: "p", Price: -1},
		"negative stock":    {Name: "n", ISBN: "x", CategoryName: "c", PublisherName: "p", Stock: -1},
	}
	for name, book := range cases {
		if err := book.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestBookValidateAcceptsNestedCategory(t *testing.T) {
	b := Book{Name: "Dune", ISBN: "x", Category: &Category{Name: "Sci-Fi"}, Publisher: &Publisher{Name: "Ace"}}
	if err := b.Validate(); err != nil {
		t.Fatalf("nested names must satisfy required fields: %v", err)
	}
}

func TestResolvedNamesPreferDenormalizedField(t *testing.T) {
	b := Book{CategoryName: "Fantasy", Category: &Category{Name: "Old"}}
	if got := b.ResolvedCategory(); got != "Fantasy" {
		t.Fatalf("got %q", got)
	}
	b = Book{Category: &Category{Name: "Sci-Fi"}}
	if got := b.ResolvedCategory(); got != "Sci-Fi" {
		t.Fatalf("got %q", got)
	}
	b = Book{}
	if got := b.ResolvedCategory(); got != "No Category" {
		t.Fatalf("got %q", got)
	}
	if got := b.ResolvedPublisher(); got != "No Publisher" {
		t.Fatalf("got %q", got)
	}
}

func TestAvailablePrefersExplicitFlag(t *testing.T) {
	no := false
	yes := true
	if (Book{Stock: 5, IsAvailable: &no}).Available() {
		t.Fatalf("explicit flag must win over stock")
	}
	if !(Book{Stock: 0, IsAvailable: &yes}).Available() {
		t.Fatalf("explicit flag must win over stock")
	}
	if !(Book{Stock: 1}).Available() {
		t.Fatalf("positive stock implies available")
	}
	if (Book{}).Available() {
		t.Fatalf("zero stock implies unavailable")
	}
}

func TestEntityKeys(t *testing.T) {
	if (Book{ID: "b1"}).Key() != "b1" {
		t.Fatalf("book key")
	}
	if (User{AccountNumber: "AC-9"}).Key() != "AC-9" {
		t.Fatalf("user key must be the account number")
	}
}

func TestUserValidate(t *testing.T) {
	u := User{AccountNumber: "AC-1", Name: "Ada", Email: "ada@example.com"}
	if err := u.Validate(); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}
	if err := (User{Name: "Ada", Email: "a@b"}).Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
