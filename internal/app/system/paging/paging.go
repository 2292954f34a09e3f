// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultSize is the page size used when the caller does not pass one.
const DefaultSize = 10

// MaxSize caps the per-request page size so a single request cannot
// pull an unbounded result set.
const MaxSize = 100

// Params is an offset pagination window. Page is 1-indexed as exposed
// to clients; Skip is the 0-indexed document offset derived from it.
type Params struct {
	Page int
	Size int
}

// Parse extracts the "page" and "size" query parameters. Missing or
// invalid values fall back to page 1 and DefaultSize; size is clamped
// to MaxSize. A page beyond the collection simply yields an empty list
// from the store, never an error.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Size: DefaultSize}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Size = n
		}
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Skip returns the document offset for the window.
func (p Params) Skip() int64 { return int64(p.Page-1) * int64(p.Size) }

// Limit returns the window size as int64 for Find().SetLimit.
func (p Params) Limit() int64 { return int64(p.Size) }

// ApplyToFind sets skip and limit on Find options.
func (p Params) ApplyToFind(find *options.FindOptions) *options.FindOptions {
	return find.SetSkip(p.Skip()).SetLimit(p.Limit())
}
