package fop

import "fmt"

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// By represents a field used to order a listing and the direction to walk it.
type By struct {
	Field     string
	Direction string
}

// NewBy constructs a By value. An unknown direction falls back to ASC.
func NewBy(field string, direction string) By {
	if direction != ASC && direction != DESC {
		return By{Field: field, Direction: ASC}
	}
	return By{Field: field, Direction: direction}
}

// ParseBy validates a requested order against the set of orderable fields,
// mapping the external name to its column. An empty field returns the
// default.
func ParseBy(fieldMappings map[string]string, field string, direction string, defaultBy By) (By, error) {
	if field == "" {
		return defaultBy, nil
	}

	mapped, ok := fieldMappings[field]
	if !ok {
		return By{}, fmt.Errorf("field %q is not orderable", field)
	}

	switch direction {
	case "":
		return By{Field: mapped, Direction: defaultBy.Direction}, nil
	case ASC, DESC:
		return By{Field: mapped, Direction: direction}, nil
	}

	return By{}, fmt.Errorf("direction %q is not valid", direction)
}
