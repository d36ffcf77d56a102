package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/freshtrack/freshtrack/internal/api"
	"github.com/freshtrack/freshtrack/internal/logging"
	"github.com/freshtrack/freshtrack/internal/models"
)

// Inventory holds the in-memory grocery list, the server-computed
// expiring-soon subset, and the shopping history. It is mutated only
// through its methods, each in response to a completed network outcome
// or a purely local action (logout, optimistic delete).
type Inventory struct {
	client api.Client
	log    logging.Logger

	mu       sync.Mutex
	epoch    string
	items    []models.GroceryItem
	expiring []models.ExpiringItem
	history  []models.HistoryEntry
}

func NewInventory(client api.Client, log logging.Logger) *Inventory {
	return &Inventory{client: client, log: log}
}

// activate binds the inventory to a session epoch and discards any
// state left over from a previous session.
func (s *Inventory) activate(epoch string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch = epoch
	s.items = nil
	s.expiring = nil
	s.history = nil
}

func (s *Inventory) deactivate() {
	s.activate("")
}

func (s *Inventory) currentEpoch() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// RefreshReport records the outcome of the three concurrent fetches.
// A failed fetch keeps the collection's previous value; the other two
// still apply theirs.
type RefreshReport struct {
	ListErr     error
	ExpiringErr error
	HistoryErr  error
}

func (r RefreshReport) Failed() bool {
	return r.ListErr != nil || r.ExpiringErr != nil || r.HistoryErr != nil
}

func (r RefreshReport) Err() error {
	return errors.Join(r.ListErr, r.ExpiringErr, r.HistoryErr)
}

// RefreshAll fetches the grocery list, the expiring-soon subset, and
// the shopping history concurrently and waits for all three. Each
// outcome is applied independently; results arriving after the session
// changed are dropped. The refresh is authoritative: it reconciles any
// divergence left behind by optimistic deletes.
func (s *Inventory) RefreshAll(ctx context.Context) RefreshReport {
	epoch := s.currentEpoch()

	var (
		report   RefreshReport
		items    []models.GroceryItem
		expiring []models.ExpiringItem
		history  []models.HistoryEntry
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		items, report.ListErr = s.client.ListItems(ctx)
	}()
	go func() {
		defer wg.Done()
		expiring, report.ExpiringErr = s.client.ExpiringSoon(ctx)
	}()
	go func() {
		defer wg.Done()
		history, report.HistoryErr = s.client.ShoppingHistory(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		s.log.Debug(ctx, "discarding refresh results from a stale session")
		return report
	}
	if report.ListErr == nil {
		s.items = items
	} else {
		s.log.Warn(ctx, "grocery list fetch failed", "error", report.ListErr)
	}
	if report.ExpiringErr == nil {
		s.expiring = expiring
	} else {
		s.log.Warn(ctx, "expiring items fetch failed", "error", report.ExpiringErr)
	}
	if report.HistoryErr == nil {
		s.history = history
	} else {
		s.log.Warn(ctx, "shopping history fetch failed", "error", report.HistoryErr)
	}
	return report
}

// Add submits a new item. Empty names and non-positive shelf lives are
// rejected locally without a network call. On success the server owns
// the id and expiry date, so a full refresh propagates them; on failure
// nothing is committed and the caller can retry with the same values.
func (s *Inventory) Add(ctx context.Context, name string, shelfLifeDays int) error {
	if strings.TrimSpace(name) == "" || shelfLifeDays <= 0 {
		return ErrInvalidItem
	}
	if err := s.client.AddItem(ctx, name, shelfLifeDays); err != nil {
		return err
	}
	if report := s.RefreshAll(ctx); report.Failed() {
		s.log.Warn(ctx, "refresh after add partially failed", "error", report.Err())
	}
	return nil
}

// Edit updates an item's name and shelf life. The local copy is never
// touched until the server confirms and the follow-up refresh lands, so
// a failed edit leaves the prior item intact.
func (s *Inventory) Edit(ctx context.Context, id int64, name string, shelfLifeDays int) error {
	if strings.TrimSpace(name) == "" || shelfLifeDays <= 0 {
		return ErrInvalidItem
	}
	if err := s.client.UpdateItem(ctx, id, name, shelfLifeDays); err != nil {
		return err
	}
	if report := s.RefreshAll(ctx); report.Failed() {
		s.log.Warn(ctx, "refresh after edit partially failed", "error", report.Err())
	}
	return nil
}

// Delete removes an item optimistically: once the HTTP exchange
// completes, the item is dropped from both the main list and the
// expiring subset without inspecting the response status. If the server
// silently failed, the next RefreshAll restores the truth. A transport
// failure (request never completed) is surfaced and nothing changes.
func (s *Inventory) Delete(ctx context.Context, id int64) error {
	err := s.client.DeleteItem(ctx, id)
	if err != nil && errors.Is(err, api.ErrUnavailable) {
		return err
	}
	if err != nil {
		s.log.Warn(ctx, "delete returned a non-success status, relying on next refresh", "id", id, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = deleteByID(s.items, func(it models.GroceryItem) int64 { return it.ID }, id)
	s.expiring = deleteByID(s.expiring, func(it models.ExpiringItem) int64 { return it.ID }, id)
	return nil
}

// DeleteAll clears the whole list server-side, then unconditionally
// empties both local collections under the same optimistic contract as
// Delete.
func (s *Inventory) DeleteAll(ctx context.Context) error {
	err := s.client.DeleteAllItems(ctx)
	if err != nil && errors.Is(err, api.ErrUnavailable) {
		return err
	}
	if err != nil {
		s.log.Warn(ctx, "delete-all returned a non-success status, relying on next refresh", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.expiring = nil
	return nil
}

func deleteByID[T any](list []T, id func(T) int64, target int64) []T {
	out := list[:0]
	for _, it := range list {
		if id(it) != target {
			out = append(out, it)
		}
	}
	return out
}

// Items returns a copy of the grocery list.
func (s *Inventory) Items() []models.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.GroceryItem(nil), s.items...)
}

// Expiring returns a copy of the expiring-soon subset.
func (s *Inventory) Expiring() []models.ExpiringItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ExpiringItem(nil), s.expiring...)
}

// History returns a copy of the shopping history.
func (s *Inventory) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.HistoryEntry(nil), s.history...)
}
