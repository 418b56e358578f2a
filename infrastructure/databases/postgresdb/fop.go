package postgresdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// AddOrderByClause adds ORDER BY clause to the query buffer
func AddOrderByClause(buf *bytes.Buffer, orderField, pkField, direction string, forPrevious bool) error {
	// Validate and quote identifiers
	quotedOrderField, err := QuoteIdentifier(orderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	quotedPKField, err := QuoteIdentifier(pkField)
	if err != nil {
		return fmt.Errorf("invalid pk field name: %w", err)
	}

	actualDirection := direction

	// Reverse direction for previous page to get results in reverse order
	if forPrevious {
		if direction == ASC {
			actualDirection = DESC
		} else {
			actualDirection = ASC
		}
	}

	buf.WriteString(fmt.Sprintf(" ORDER BY %s %s", quotedOrderField, actualDirection))

	// Add primary key as secondary sort for consistency (if not already the order field)
	if orderField != pkField {
		buf.WriteString(fmt.Sprintf(", %s %s", quotedPKField, actualDirection))
	}

	return nil
}

// AddLimitClause adds LIMIT clause to the query buffer
func AddLimitClause(limit int, data pgx.NamedArgs, buf *bytes.Buffer) {
	buf.WriteString(" LIMIT @limit")
	data["limit"] = limit
}

// Int64CursorConfig holds configuration for keyset pagination where the
// cursor is the last-seen integer primary key.
type Int64CursorConfig struct {
	Cursor     int64
	OrderField string
	PKField    string
	TableName  string
	Direction  string
}

// ApplyInt64CursorPagination adds cursor-based WHERE conditions. The cursor
// row's order value is resolved with a subquery so the caller only carries
// the primary key between pages.
func ApplyInt64CursorPagination(buf *bytes.Buffer, data pgx.NamedArgs, config Int64CursorConfig, forPrevious bool) error {
	if config.Cursor == 0 {
		return nil
	}

	// Validate and quote identifiers
	order, err := QuoteIdentifier(config.OrderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	tableName, err := QuoteIdentifier(config.TableName)
	if err != nil {
		return fmt.Errorf("invalid table name: %w", err)
	}
	pkField, err := QuoteIdentifier(config.PKField)
	if err != nil {
		return fmt.Errorf("invalid pk field name: %w", err)
	}

	data["cursor"] = config.Cursor

	needsWhere := !strings.Contains(buf.String(), "WHERE")
	if needsWhere {
		buf.WriteString(" WHERE ")
	} else {
		buf.WriteString(" AND ")
	}

	// For previous page, invert the comparison
	operator := ">"
	if forPrevious {
		operator = "<"
	}
	if config.Direction == DESC && !forPrevious {
		operator = "<"
	} else if config.Direction == DESC && forPrevious {
		operator = ">"
	}

	// (order < cursor's order) OR (order = cursor's order AND pk < cursor)
	buf.WriteString("(")
	buf.WriteString(order)
	buf.WriteString(" ")
	buf.WriteString(operator)
	buf.WriteString(" (SELECT ")
	buf.WriteString(order)
	buf.WriteString(" FROM ")
	buf.WriteString(tableName)
	buf.WriteString(" WHERE ")
	buf.WriteString(pkField)
	buf.WriteString(" = @cursor)")

	buf.WriteString(" OR (")
	buf.WriteString(order)
	buf.WriteString(" = (SELECT ")
	buf.WriteString(order)
	buf.WriteString(" FROM ")
	buf.WriteString(tableName)
	buf.WriteString(" WHERE ")
	buf.WriteString(pkField)
	buf.WriteString(" = @cursor) AND ")
	buf.WriteString(pkField)
	buf.WriteString(" ")
	buf.WriteString(operator)
	buf.WriteString(" @cursor")
	buf.WriteString("))")

	return nil
}
