package types

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_CUSTOMER = "cust"
	UUID_PREFIX_PAYMENT  = "pay"
	UUID_PREFIX_ACTIVITY = "act"
)

// GenerateUUIDWithPrefix generates a ULID-backed identifier with a type prefix,
// e.g. "cust_01JA8...", sortable by creation time.
func GenerateUUIDWithPrefix(prefix string) string {
	id := ulid.Make().String()
	if prefix == "" {
		return id
	}
	return strings.Join([]string{prefix, id}, "_")
}
