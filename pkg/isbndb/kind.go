package isbndb

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the resource type name understood by the ISBNdb service.
type Kind string

const (
	Authors    Kind = "Authors"
	Books      Kind = "Books"
	Categories Kind = "Categories"
	Publishers Kind = "Publishers"
	Subjects   Kind = "Subjects"
)

var kinds = [...]struct {
	kind   Kind
	tag    string
	plural string
}{
	{Authors, "author", "authors"},
	{Books, "book", "books"},
	{Categories, "category", "categories"},
	{Publishers, "publisher", "publishers"},
	{Subjects, "subject", "subjects"},
}

// AllKinds returns every resource kind in a fixed order.
func AllKinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.kind)
	}
	return out
}

// Tag is the lowercase singular name of the kind, e.g. "book".
func (k Kind) Tag() string {
	for _, e := range kinds {
		if e.kind == k {
			return e.tag
		}
	}
	return strings.ToLower(string(k))
}

// Plural is the lowercase collection name of the kind, e.g. "books".
func (k Kind) Plural() string {
	for _, e := range kinds {
		if e.kind == k {
			return e.plural
		}
	}
	return strings.ToLower(string(k))
}

func (k Kind) Valid() bool {
	for _, e := range kinds {
		if e.kind == k {
			return true
		}
	}
	return false
}

// ParseTag resolves a singular or plural lowercase tag to its Kind.
func ParseTag(tag string) (Kind, error) {
	tag = strings.ToLower(tag)
	for _, e := range kinds {
		if e.tag == tag || e.plural == tag {
			return e.kind, nil
		}
	}
	return "", fmt.Errorf("isbndb: unknown resource kind %q", tag)
}

// Resource is a single object returned by the service. Data holds the raw
// JSON body; its schema is owned by the service.
type Resource struct {
	Kind Kind            `json:"kind"`
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Args are search terms. Valid keys depend on the kind and are checked by the
// service, not by the client. The paging keys ArgPage and ArgPageSize are
// reserved for the iterator; Search rejects them with ErrReservedArg.
type Args map[string]string

const (
	ArgPage     = "page"
	ArgPageSize = "pageSize"
)
