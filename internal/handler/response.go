package handler

import (
	"fmt"
	"strings"
)

// ListResponse is the envelope for list and search results.
type ListResponse struct {
	Results any `json:"results"`
	Size    int `json:"size"`
}

// ErrorResponse is the body shape for errors that have no fixed wording.
type ErrorResponse struct {
	Error string `json:"error"`
}

// regionFailureBody renders the fixed wording for a rejected region set,
// e.g. `Regions `{"mars"}` do not exist in the Database!`. The set comes
// from RegionRepo.Missing already sorted and deduplicated.
func regionFailureBody(missing []string) string {
	quoted := make([]string, len(missing))
	for i, name := range missing {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("Regions `{%s}` do not exist in the Database!", strings.Join(quoted, ", "))
}
