package manualentry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/domain/entity"
	domainerror "github.com/bizsuite/backend/internal/domain/error"
)

// stubEntryStore is an in-memory ManualEntryStore for use case tests.
type stubEntryStore struct {
	entries map[uuid.UUID]*entity.ManualEntry

	createErr error
	updateErr error
	listErr   error
}

func newStubEntryStore() *stubEntryStore {
	return &stubEntryStore{entries: map[uuid.UUID]*entity.ManualEntry{}}
}

func (s *stubEntryStore) FetchEntries(_ context.Context, st entity.StatementType, _ entity.DateRange) ([]entity.ManualEntry, error) {
	var out []entity.ManualEntry
	for _, e := range s.entries {
		if e.StatementType == st {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *stubEntryStore) Create(_ context.Context, entry *entity.ManualEntry) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.entries[entry.ID] = entry
	return nil
}

func (s *stubEntryStore) FindByID(_ context.Context, id uuid.UUID) (*entity.ManualEntry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, domainerror.ErrManualEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (s *stubEntryStore) List(_ context.Context, st entity.StatementType) ([]entity.ManualEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.FetchEntries(context.Background(), st, entity.DateRange{})
}

func (s *stubEntryStore) Update(_ context.Context, entry *entity.ManualEntry) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.entries[entry.ID] = entry
	return nil
}

func (s *stubEntryStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.entries, id)
	return nil
}

// countingCache records invalidations; reads always miss.
type countingCache struct {
	invalidations int
	err           error
}

func (c *countingCache) Get(context.Context, string) (*statement.Result, bool, error) {
	return nil, false, nil
}

func (c *countingCache) Set(context.Context, string, *statement.Result) error { return nil }

func (c *countingCache) Invalidate(context.Context) error {
	c.invalidations++
	return c.err
}

var entryDate = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

func validCreateInput() CreateEntryInput {
	return CreateEntryInput{
		StatementType: entity.StatementTypePL,
		Category:      "rent_expense",
		Amount:        decimal.RequireFromString("1200.50"),
		Date:          entryDate,
		Description:   "office rent",
	}
}

func TestCreateEntry(t *testing.T) {
	t.Run("persists a valid entry and invalidates cached statements", func(t *testing.T) {
		store := newStubEntryStore()
		cache := &countingCache{}
		uc := NewCreateEntryUseCase(store, cache)

		output, err := uc.Execute(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Entry.ID == uuid.Nil {
			t.Error("expected a generated entry ID")
		}
		if _, ok := store.entries[output.Entry.ID]; !ok {
			t.Error("expected entry to be persisted")
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("rejects a category outside the taxonomy", func(t *testing.T) {
		uc := NewCreateEntryUseCase(newStubEntryStore(), nil)

		input := validCreateInput()
		input.Category = "definitely_not_a_category"

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrManualEntryCategoryUnknown) {
			t.Fatalf("expected unknown category error, got %v", err)
		}

		var entryErr *domainerror.ManualEntryError
		if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeManualEntryCategoryUnknown {
			t.Errorf("expected code %s, got %+v", domainerror.ErrCodeManualEntryCategoryUnknown, entryErr)
		}
	})

	t.Run("rejects a category belonging to another statement", func(t *testing.T) {
		uc := NewCreateEntryUseCase(newStubEntryStore(), nil)

		input := validCreateInput()
		input.Category = "loan_proceeds" // cf category on a pl entry

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrManualEntryCategoryMismatch) {
			t.Fatalf("expected category mismatch error, got %v", err)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		uc := NewCreateEntryUseCase(newStubEntryStore(), nil)

		for _, raw := range []string{"0", "-10.00"} {
			input := validCreateInput()
			input.Amount = decimal.RequireFromString(raw)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, domainerror.ErrManualEntryAmountInvalid) {
				t.Errorf("amount %s: expected invalid amount error, got %v", raw, err)
			}
		}
	})

	t.Run("rejects a missing date", func(t *testing.T) {
		uc := NewCreateEntryUseCase(newStubEntryStore(), nil)

		input := validCreateInput()
		input.Date = time.Time{}

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrManualEntryDateMissing) {
			t.Fatalf("expected missing date error, got %v", err)
		}
	})

	t.Run("rejects an oversized description", func(t *testing.T) {
		uc := NewCreateEntryUseCase(newStubEntryStore(), nil)

		input := validCreateInput()
		input.Description = strings.Repeat("x", MaxDescriptionLength+1)

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrManualEntryDescriptionTooLong) {
			t.Fatalf("expected description error, got %v", err)
		}
	})

	t.Run("rejects an invalid statement type", func(t *testing.T) {
		uc := NewCreateEntryUseCase(newStubEntryStore(), nil)

		input := validCreateInput()
		input.StatementType = entity.StatementType("income")

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidStatementType) {
			t.Fatalf("expected invalid statement type error, got %v", err)
		}
	})

	t.Run("does not invalidate the cache when persistence fails", func(t *testing.T) {
		store := newStubEntryStore()
		store.createErr = errors.New("connection refused")
		cache := &countingCache{}
		uc := NewCreateEntryUseCase(store, cache)

		if _, err := uc.Execute(context.Background(), validCreateInput()); err == nil {
			t.Fatal("expected an error")
		}
		if cache.invalidations != 0 {
			t.Errorf("expected no cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("a failed invalidation does not fail the write", func(t *testing.T) {
		store := newStubEntryStore()
		cache := &countingCache{err: errors.New("redis down")}
		uc := NewCreateEntryUseCase(store, cache)

		if _, err := uc.Execute(context.Background(), validCreateInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("works without a cache", func(t *testing.T) {
		uc := NewCreateEntryUseCase(newStubEntryStore(), nil)

		if _, err := uc.Execute(context.Background(), validCreateInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
