// Package fop provides filter, order, and pagination primitives shared by
// the repository layer.
package fop

import (
	"fmt"
	"strconv"
)

// PageInt64Cursor represents the requested items per page plus the last-seen
// primary key from the previous page. A zero cursor starts from the top.
type PageInt64Cursor struct {
	Limit  int
	Cursor int64
}

func ParsePageInt64Cursor(pageLimit string, cursor string) (PageInt64Cursor, error) {
	limit := 20

	if pageLimit != "" {
		var err error
		limit, err = strconv.Atoi(pageLimit)
		if err != nil {
			return PageInt64Cursor{}, fmt.Errorf("page limit conversion: %w", err)
		}
	}
	if limit <= 0 {
		return PageInt64Cursor{}, fmt.Errorf("rows value too small, must be larger than 0")
	}

	if limit > 100 {
		return PageInt64Cursor{}, fmt.Errorf("rows value too large, must be less than 100")
	}
	last := int64(0)
	if cursor != "" {
		var err error
		last, err = strconv.ParseInt(cursor, 10, 64)
		if err != nil {
			return PageInt64Cursor{}, fmt.Errorf("cursor conversion: %w", err)
		}
	}

	return PageInt64Cursor{
		Limit:  limit,
		Cursor: last,
	}, nil
}
