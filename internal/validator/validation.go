package validator

import (
	"errors"
	"strings"
)

const maxQueryLen = 200

// ValidateQuery trims the raw query and rejects oversized input. An empty
// query is valid; the service answers it with a "No query" response.
func ValidateQuery(s string) (string, error) {
	q := strings.TrimSpace(s)
	if len(q) > maxQueryLen {
		return "", errors.New("query too long")
	}
	return q, nil
}
