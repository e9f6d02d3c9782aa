package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelfdesk/pkg/domain"
)

func TestListBooksDecodesEnvelopeKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/book/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"books": []domain.Book{{ID: "1", Name: "Dune"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	books, err := c.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("list books: %v", err)
	}
	if len(books) != 1 || books[0].Name != "Dune" {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestListBooksFallsBackToRawArrayBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Book{{ID: "1", Name: "Dune"}})
	}))
	defer srv.Close()

	books, err := NewClient(srv.URL).ListBooks(context.Background())
	if err != nil {
		t.Fatalf("list books: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestCreateBookTriesKeysInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"createdBook": domain.Book{ID: "9", Name: "Dune"},
		})
	}))
	defer srv.Close()

	created, err := NewClient(srv.URL).CreateBook(context.Background(), domain.Book{Name: "Dune"})
	if err != nil {
		t.Fatalf("create book: %v", err)
	}
	if created.ID != "9" {
		t.Fatalf("unexpected created book: %+v", created)
	}
}

func TestUnrecognizedEnvelopeFailsFast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"payload": {"id": "1"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetBookByName(context.Background(), "Dune")
	if !errors.Is(err, ErrEnvelope) {
		t.Fatalf("expected envelope error, got: %v", err)
	}
}

func TestAuthorizationHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(map[string]any{"books": []domain.Book{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(func(context.Context) (string, error) {
		return "tok-123", nil
	}))
	if _, err := c.ListBooks(context.Background()); err != nil {
		t.Fatalf("list books: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("expected request id header")
	}
}

func TestAuthorizationHeaderSkippedWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"books": []domain.Book{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(func(context.Context) (string, error) {
		return "", nil
	}))
	if _, err := c.ListBooks(context.Background()); err != nil {
		t.Fatalf("list books: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestErrorBodyWithStringMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"data":{"message":"Category not found"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateBook(context.Background(), domain.Book{Name: "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got: %v", err)
	}
	if apiErr.Status != 400 || apiErr.Message() != "Category not found" || apiErr.MessageWasList {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestErrorBodyWithMessageList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"data":{"message":["name is required","isbn is required"]}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateBook(context.Background(), domain.Book{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got: %v", err)
	}
	if !apiErr.MessageWasList || apiErr.Message() != "name is required" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestErrorBodyUnparseableStillCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListBooks(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got: %v", err)
	}
	if apiErr.Status != 500 {
		t.Fatalf("unexpected status: %d", apiErr.Status)
	}
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := NewClient(srv.URL).ListBooks(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an APIError: %v", err)
	}
}

func TestGetBookByNameEncodesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(map[string]any{"book": domain.Book{ID: "1", Name: "Harry Potter"}})
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).GetBookByName(context.Background(), "Harry Potter"); err != nil {
		t.Fatalf("get book: %v", err)
	}
	if gotPath != "/book/name/Harry%20Potter" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
}

func TestUpdateStockSendsQuantityQuery(t *testing.T) {
	var gotMethod, gotQuantity, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuantity = r.URL.Query().Get("quantity")
		_ = json.NewEncoder(w).Encode(map[string]any{"updatedBook": domain.Book{ID: "1", Stock: 7}})
	}))
	defer srv.Close()

	updated, err := NewClient(srv.URL).UpdateStock(context.Background(), "1", -3)
	if err != nil {
		t.Fatalf("update stock: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/book/update-stock/1" || gotQuantity != "-3" {
		t.Fatalf("unexpected request: %s %s quantity=%q", gotMethod, gotPath, gotQuantity)
	}
	if updated.Stock != 7 {
		t.Fatalf("unexpected updated book: %+v", updated)
	}
}

func TestDeleteBookIgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/book/delete-book/1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"message":"book deleted"}`))
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).DeleteBook(context.Background(), "1"); err != nil {
		t.Fatalf("delete book: %v", err)
	}
}
