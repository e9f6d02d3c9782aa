package domain

// Book is a catalog item. CategoryName/PublisherName are the denormalized
// names the API usually sends; Category/Publisher carry the nested form some
// endpoints return instead.
type Book struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ISBN          string     `json:"isbn"`
	CategoryName  string     `json:"categoryName,omitempty"`
	PublisherName string     `json:"publisherName,omitempty"`
	Category      *Category  `json:"category,omitempty"`
	Publisher     *Publisher `json:"publisher,omitempty"`
	Price         float64    `json:"price"`
	Stock         int        `json:"stock"`
	Pages         int        `json:"pages,omitempty"`
	Description   string     `json:"description,omitempty"`
	CoverURL      string     `json:"coverUrl,omitempty"`
	IsAvailable   *bool      `json:"isAvailable,omitempty"`
}

// Category groups books.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Publisher is a book publisher.
type Publisher struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// User is a storefront account, keyed by account number rather than id.
type User struct {
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role,omitempty"`
}

// Key returns the book's stable unique key.
func (b Book) Key() string { return b.ID }

// DisplayName returns the name shown in listings and matched by search.
func (b Book) DisplayName() string { return b.Name }

func (c Category) Key() string         { return c.ID }
func (c Category) DisplayName() string { return c.Name }

func (p Publisher) Key() string         { return p.ID }
func (p Publisher) DisplayName() string { return p.Name }

func (u User) Key() string         { return u.AccountNumber }
func (u User) DisplayName() string { return u.Name }

// Available reports whether the book can be sold: the explicit availability
// flag when present, otherwise a positive stock count.
func (b Book) Available() bool {
	if b.IsAvailable != nil {
		return *b.IsAvailable
	}
	return b.Stock > 0
}

// ResolvedCategory returns the category name for faceting: the denormalized
// field first, then the nested object, then a placeholder that never matches
// a real facet value.
func (b Book) ResolvedCategory() string {
	if b.CategoryName != "" {
		return b.CategoryName
	}
	if b.Category != nil && b.Category.Name != "" {
		return b.Category.Name
	}
	return "No Category"
}

// ResolvedPublisher mirrors ResolvedCategory for the publisher facet.
func (b Book) ResolvedPublisher() string {
	if b.PublisherName != "" {
		return b.PublisherName
	}
	if b.Publisher != nil && b.Publisher.Name != "" {
		return b.Publisher.Name
	}
	return "No Publisher"
}
