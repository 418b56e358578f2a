package invoicesrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(invoice invoicesrepo.Invoice) Invoice {
	return Invoice{
		ID:           invoice.ID,
		InvoiceNo:    invoice.InvoiceNo,
		CustomerName: invoice.CustomerName,
		Description:  validation.GetStringOrEmpty(invoice.Description),
		Total:        invoice.Total,
		IsPaid:       invoice.IsPaid,
		IssuedOn:     invoice.IssuedOn.Format(time.DateOnly),
		CreatedAt:    invoice.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(invoices []invoicesrepo.Invoice) []Invoice {
	bridgeInvoices := make([]Invoice, len(invoices))
	for i, invoice := range invoices {
		bridgeInvoices[i] = MarshalToBridge(invoice)
	}
	return bridgeInvoices
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateInvoiceInput) (invoicesrepo.CreateInvoice, error) {
	create := invoicesrepo.CreateInvoice{
		InvoiceNo:    input.InvoiceNo,
		CustomerName: input.CustomerName,
		Total:        input.Total,
		IsPaid:       input.IsPaid,
	}

	if input.Description != "" {
		create.Description = validation.StringPtr(input.Description)
	}
	if input.IssuedOn != "" {
		issued, err := validation.ParseFlexibleDate(input.IssuedOn)
		if err != nil {
			return invoicesrepo.CreateInvoice{}, fmt.Errorf("invalid issued_on: %w", err)
		}
		create.IssuedOn = issued
	}

	return create, nil
}
