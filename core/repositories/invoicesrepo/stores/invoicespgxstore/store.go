package invoicespgxstore

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new Invoice. Duplicate invoice numbers surface as
// postgresdb.ErrDBDuplicatedEntry.
func (s *Store) Create(ctx context.Context, input invoicesrepo.CreateInvoice) (invoicesrepo.Invoice, error) {
	query := `INSERT INTO public.invoices (invoice_no, customer_name, description, total, is_paid, issued_on) VALUES (@invoice_no, @customer_name, @description, @total, @is_paid, @issued_on) RETURNING *`

	args := pgx.NamedArgs{
		"invoice_no":    input.InvoiceNo,
		"customer_name": input.CustomerName,
		"description":   input.Description,
		"total":         input.Total,
		"is_paid":       input.IsPaid,
		"issued_on":     input.IssuedOn,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return invoicesrepo.Invoice{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[invoicesrepo.Invoice])
	if err != nil {
		return invoicesrepo.Invoice{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Get retrieves a single Invoice by ID.
func (s *Store) Get(ctx context.Context, id int64) (invoicesrepo.Invoice, error) {
	query := `SELECT id, invoice_no, customer_name, description, total, is_paid, issued_on, created_at FROM public.invoices WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return invoicesrepo.Invoice{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[invoicesrepo.Invoice])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoicesrepo.Invoice{}, invoicesrepo.ErrInvoiceNotFound
		}
		return invoicesrepo.Invoice{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Invoice records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter invoicesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]invoicesrepo.Invoice, error) {
	query := `SELECT id, invoice_no, customer_name, description, total, is_paid, issued_on, created_at FROM public.invoices`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	applyFilter(filter, data, buf)

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.invoices",
		Direction:  orderBy.Direction,
	}
	if err := postgresdb.ApplyInt64CursorPagination(buf, data, cursorConfig, false); err != nil {
		return nil, err
	}

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, "id", orderBy.Direction, false); err != nil {
		return nil, err
	}

	postgresdb.AddLimitClause(page.Limit, data, buf)

	rows, err := s.pool.Query(ctx, buf.String(), data)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[invoicesrepo.Invoice])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

func applyFilter(filter invoicesrepo.Filter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	if filter.IsPaid != nil {
		wc = append(wc, "is_paid = @filter_is_paid")
		data["filter_is_paid"] = *filter.IsPaid
	}
	if filter.CustomerName != nil {
		wc = append(wc, "customer_name = @filter_customer_name")
		data["filter_customer_name"] = *filter.CustomerName
	}
	if filter.IssuedAfter != nil {
		wc = append(wc, "issued_on >= @issued_after")
		data["issued_after"] = *filter.IssuedAfter
	}
	if filter.IssuedBefore != nil {
		wc = append(wc, "issued_on <= @issued_before")
		data["issued_before"] = *filter.IssuedBefore
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
