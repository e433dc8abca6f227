// Package backend wraps the remote collection API the form pipeline sits in
// front of: schema introspection, record CRUD, and password auth. The
// wrapper stays thin: pagination parameters pass through untouched, there
// are no retries, and the pipeline treats everything here as an external
// collaborator.
package backend

import "fmt"

// Record is a backend record payload. The shape is opaque to the form
// pipeline; only the conventional system keys get typed accessors.
type Record map[string]any

// ID returns the record identifier, when present.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// GetString returns the named value when it is a string.
func (r Record) GetString(key string) string {
	value, _ := r[key].(string)
	return value
}

// ListResult is one page of records plus the paging envelope the backend
// reports.
type ListResult struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
	TotalItems int      `json:"totalItems"`
	TotalPages int      `json:"totalPages"`
	Items      []Record `json:"items"`
}

// AuthResult carries the token and account record returned by a successful
// password authentication.
type AuthResult struct {
	Token  string `json:"token"`
	Record Record `json:"record"`
}

// APIError is a non-2xx response decoded from the backend's error envelope.
type APIError struct {
	Status  int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}
