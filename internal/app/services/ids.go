package services

import "github.com/google/uuid"

// newID builds a prefixed identifier for a freshly created record.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
