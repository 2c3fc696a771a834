package manualentry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

func seedEntry(t *testing.T, store *stubEntryStore) *entity.ManualEntry {
	t.Helper()

	entry := entity.NewManualEntry(
		entity.StatementTypePL,
		"rent_expense",
		"",
		decimal.RequireFromString("1200.50"),
		entryDate,
		"office rent",
	)
	if err := store.Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	return entry
}

func TestUpdateEntry(t *testing.T) {
	t.Run("updates fields and invalidates cached statements", func(t *testing.T) {
		store := newStubEntryStore()
		seeded := seedEntry(t, store)
		cache := &countingCache{}
		uc := NewUpdateEntryUseCase(store, cache)

		output, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:     seeded.ID,
			Category:    "advertising_expense",
			Amount:      decimal.RequireFromString("310.00"),
			Date:        entryDate.AddDate(0, 0, 5),
			Description: "billboard campaign",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Entry.Category != "advertising_expense" {
			t.Errorf("expected advertising_expense, got %s", output.Entry.Category)
		}
		if !output.Entry.UpdatedAt.After(seeded.UpdatedAt) && !output.Entry.UpdatedAt.Equal(seeded.UpdatedAt) {
			t.Error("expected UpdatedAt to move forward")
		}
		if stored := store.entries[seeded.ID]; stored.Description != "billboard campaign" {
			t.Errorf("expected persisted description, got %s", stored.Description)
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("returns not found for an unknown ID", func(t *testing.T) {
		uc := NewUpdateEntryUseCase(newStubEntryStore(), nil)

		_, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:  uuid.New(),
			Category: "rent_expense",
			Amount:   decimal.RequireFromString("10"),
			Date:     entryDate,
		})
		if !errors.Is(err, domainerror.ErrManualEntryNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("the statement type is immutable", func(t *testing.T) {
		store := newStubEntryStore()
		seeded := seedEntry(t, store) // pl entry
		uc := NewUpdateEntryUseCase(store, nil)

		_, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:  seeded.ID,
			Category: "loan_proceeds", // cf category
			Amount:   decimal.RequireFromString("10"),
			Date:     entryDate,
		})
		if !errors.Is(err, domainerror.ErrManualEntryCategoryMismatch) {
			t.Fatalf("expected category mismatch error, got %v", err)
		}
	})

	t.Run("validation failures leave the stored entry untouched", func(t *testing.T) {
		store := newStubEntryStore()
		seeded := seedEntry(t, store)
		cache := &countingCache{}
		uc := NewUpdateEntryUseCase(store, cache)

		_, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:  seeded.ID,
			Category: "rent_expense",
			Amount:   decimal.RequireFromString("-5"),
			Date:     entryDate,
		})
		if !errors.Is(err, domainerror.ErrManualEntryAmountInvalid) {
			t.Fatalf("expected invalid amount error, got %v", err)
		}

		if stored := store.entries[seeded.ID]; !stored.Amount.Equal(seeded.Amount) {
			t.Error("expected stored amount to be unchanged")
		}
		if cache.invalidations != 0 {
			t.Errorf("expected no cache invalidation, got %d", cache.invalidations)
		}
	})
}

func TestDeleteEntry(t *testing.T) {
	t.Run("deletes the entry and invalidates cached statements", func(t *testing.T) {
		store := newStubEntryStore()
		seeded := seedEntry(t, store)
		cache := &countingCache{}
		uc := NewDeleteEntryUseCase(store, cache)

		output, err := uc.Execute(context.Background(), DeleteEntryInput{EntryID: seeded.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Success {
			t.Error("expected success")
		}
		if _, ok := store.entries[seeded.ID]; ok {
			t.Error("expected entry to be removed")
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("returns not found for an unknown ID", func(t *testing.T) {
		cache := &countingCache{}
		uc := NewDeleteEntryUseCase(newStubEntryStore(), cache)

		_, err := uc.Execute(context.Background(), DeleteEntryInput{EntryID: uuid.New()})
		if !errors.Is(err, domainerror.ErrManualEntryNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
		if cache.invalidations != 0 {
			t.Errorf("expected no cache invalidation, got %d", cache.invalidations)
		}
	})
}

func TestListEntries(t *testing.T) {
	t.Run("lists entries of the requested statement type", func(t *testing.T) {
		store := newStubEntryStore()
		seedEntry(t, store)
		store.Create(context.Background(), entity.NewManualEntry(
			entity.StatementTypeBS,
			"cash",
			"",
			decimal.RequireFromString("9000"),
			entryDate,
			"",
		))
		uc := NewListEntriesUseCase(store)

		output, err := uc.Execute(context.Background(), ListEntriesInput{StatementType: entity.StatementTypePL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(output.Entries))
		}
		if output.Entries[0].StatementType != entity.StatementTypePL {
			t.Errorf("expected pl entries only, got %s", output.Entries[0].StatementType)
		}
	})

	t.Run("rejects an invalid statement type", func(t *testing.T) {
		uc := NewListEntriesUseCase(newStubEntryStore())

		_, err := uc.Execute(context.Background(), ListEntriesInput{StatementType: "cashflow"})
		if !errors.Is(err, domainerror.ErrInvalidStatementType) {
			t.Fatalf("expected invalid statement type error, got %v", err)
		}
	})
}
