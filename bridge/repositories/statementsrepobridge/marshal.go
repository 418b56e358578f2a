package statementsrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/statementsrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(entry statementsrepo.StatementEntry) StatementEntry {
	return StatementEntry{
		ID:          entry.ID,
		EntryDate:   entry.EntryDate.Format(time.DateOnly),
		Description: entry.Description,
		Debit:       entry.Debit,
		Credit:      entry.Credit,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(entries []statementsrepo.StatementEntry) []StatementEntry {
	bridgeEntries := make([]StatementEntry, len(entries))
	for i, entry := range entries {
		bridgeEntries[i] = MarshalToBridge(entry)
	}
	return bridgeEntries
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateStatementEntryInput) (statementsrepo.CreateStatementEntry, error) {
	create := statementsrepo.CreateStatementEntry{
		Description: input.Description,
		Debit:       input.Debit,
		Credit:      input.Credit,
	}

	if input.EntryDate != "" {
		entryDate, err := validation.ParseFlexibleDate(input.EntryDate)
		if err != nil {
			return statementsrepo.CreateStatementEntry{}, fmt.Errorf("invalid entry_date: %w", err)
		}
		create.EntryDate = entryDate
	}

	return create, nil
}
