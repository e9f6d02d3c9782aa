// Package classify maps transport failures onto the domain error taxonomy
// and the message shown to the user. The mapping is a data table so it can
// be tested without any UI or network in the loop.
package classify

import (
	"errors"
	"strings"

	"shelfdesk/internal/apiclient"
)

// Kind is the domain error taxonomy.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindServer     Kind = "server"
	KindUnknown    Kind = "unknown"
)

// Result is the classified outcome of a failed request.
type Result struct {
	Kind    Kind
	Message string
}

// conflictPhrases are server 400 messages that signal a domain conflict
// rather than bad input: duplicate records, or a related entity that does
// not exist.
var conflictPhrases = []string{
	"already exists",
	"not found",
}

// rule is one row of the classification table. Rows are evaluated in order;
// the first match wins.
type rule struct {
	match   func(e *apiclient.APIError) bool
	resolve func(entity, op string, e *apiclient.APIError) Result
}

func status(code int) func(*apiclient.APIError) bool {
	return func(e *apiclient.APIError) bool { return e.Status == code }
}

func fixed(kind Kind, message string) func(string, string, *apiclient.APIError) Result {
	return func(_, _ string, _ *apiclient.APIError) Result {
		return Result{Kind: kind, Message: message}
	}
}

var table = []rule{
	{
		match: func(e *apiclient.APIError) bool {
			return e.Status == 400 && containsConflictPhrase(e.Message())
		},
		resolve: func(_, _ string, e *apiclient.APIError) Result {
			return Result{Kind: KindConflict, Message: e.Message()}
		},
	},
	{
		match: func(e *apiclient.APIError) bool {
			return e.Status == 400 && e.MessageWasList
		},
		resolve: func(_, _ string, e *apiclient.APIError) Result {
			return Result{Kind: KindValidation, Message: e.Message()}
		},
	},
	{
		match: status(400),
		resolve: func(_, _ string, e *apiclient.APIError) Result {
			return Result{Kind: KindValidation, Message: e.Message()}
		},
	},
	{match: status(401), resolve: fixed(KindAuth, "Unauthorized")},
	{match: status(403), resolve: fixed(KindForbidden, "Access denied")},
	{
		match: status(404),
		resolve: func(entity, _ string, _ *apiclient.APIError) Result {
			return Result{Kind: KindNotFound, Message: titleCase(entity) + " not found"}
		},
	},
	{match: status(500), resolve: fixed(KindServer, "Server error")},
}

// Classify turns a failed request into a (kind, user message) pair. entity
// and op name what was attempted ("book", "create") and only feed message
// templates.
func Classify(entity, op string, err error) Result {
	// A malformed success body is bad data, not a transport problem.
	if errors.Is(err, apiclient.ErrEnvelope) {
		return Result{Kind: KindValidation, Message: "Unexpected response from server"}
	}

	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		// The request never produced a server response.
		return Result{Kind: KindNetwork, Message: "Network error, check your connection"}
	}
	for _, r := range table {
		if r.match(apiErr) {
			return r.resolve(entity, op, apiErr)
		}
	}
	return Result{Kind: KindUnknown, Message: "Failed to " + op + " " + entity}
}

func containsConflictPhrase(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range conflictPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
