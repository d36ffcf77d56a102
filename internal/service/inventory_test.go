package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/freshtrack/freshtrack/internal/api"
	"github.com/freshtrack/freshtrack/internal/models"
)

func newInventory(fc *fakeClient) *Inventory {
	return NewInventory(fc, testLogger())
}

func TestRefreshAll_PopulatesAllCollections(t *testing.T) {
	fc := &fakeClient{
		ListRet:     []models.GroceryItem{{ID: 1, Name: "milk", ExpiryDate: "2026-09-05"}},
		ExpiringRet: []models.ExpiringItem{{ID: 1, Name: "milk", ExpiryDate: "2026-09-05"}},
		HistoryRet:  []models.HistoryEntry{{ID: 10, Name: "bread"}},
	}
	inv := newInventory(fc)

	report := inv.RefreshAll(context.Background())
	require.False(t, report.Failed())

	if diff := cmp.Diff(fc.ListRet, inv.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, inv.Expiring(), 1)
	require.Len(t, inv.History(), 1)
}

// One failing fetch keeps its previous value; the other two still apply.
func TestRefreshAll_PartialFailureKeepsPreviousValue(t *testing.T) {
	fc := &fakeClient{
		ListRet:     []models.GroceryItem{{ID: 1, Name: "milk"}},
		ExpiringRet: []models.ExpiringItem{{ID: 1, Name: "milk"}},
		HistoryRet:  []models.HistoryEntry{{ID: 10, Name: "bread"}},
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	fc.mu.Lock()
	fc.ListRet = []models.GroceryItem{{ID: 1, Name: "milk"}, {ID: 2, Name: "eggs"}}
	fc.HistoryRet = []models.HistoryEntry{{ID: 10, Name: "bread"}, {ID: 11, Name: "jam"}}
	fc.ExpiringErr = errors.New("boom")
	fc.mu.Unlock()

	report := inv.RefreshAll(context.Background())
	require.True(t, report.Failed())
	require.Error(t, report.ExpiringErr)
	require.NoError(t, report.ListErr)

	require.Len(t, inv.Items(), 2)
	require.Len(t, inv.History(), 2)
	// previous expiring value retained, not cleared
	require.Len(t, inv.Expiring(), 1)
}

func TestAdd_LocalRejection_NoNetworkCall(t *testing.T) {
	fc := &fakeClient{}
	inv := newInventory(fc)

	require.ErrorIs(t, inv.Add(context.Background(), "", 5), ErrInvalidItem)
	require.ErrorIs(t, inv.Add(context.Background(), "   ", 5), ErrInvalidItem)
	require.ErrorIs(t, inv.Add(context.Background(), "milk", 0), ErrInvalidItem)
	require.ErrorIs(t, inv.Add(context.Background(), "milk", -1), ErrInvalidItem)
	require.Equal(t, 0, fc.AddCalls)
}

func TestAdd_SuccessRefreshesWithServerValues(t *testing.T) {
	fc := &fakeClient{
		ListRet: []models.GroceryItem{{ID: 7, Name: "milk", ExpiryDate: "2026-09-06"}},
	}
	inv := newInventory(fc)

	require.NoError(t, inv.Add(context.Background(), "milk", 5))
	require.Equal(t, "milk", fc.LastAddName)
	require.Equal(t, 5, fc.LastAddDays)

	items := inv.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(7), items[0].ID, "id is server-assigned")
	require.Equal(t, "2026-09-06", items[0].ExpiryDate, "expiry is server-computed")
}

func TestAdd_ServerFailureLeavesStateUntouched(t *testing.T) {
	fc := &fakeClient{AddErr: api.ErrUnavailable}
	inv := newInventory(fc)

	err := inv.Add(context.Background(), "milk", 5)
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.Empty(t, inv.Items())
}

func TestEdit_LocalRejection(t *testing.T) {
	fc := &fakeClient{}
	inv := newInventory(fc)

	require.ErrorIs(t, inv.Edit(context.Background(), 1, "", 5), ErrInvalidItem)
	require.ErrorIs(t, inv.Edit(context.Background(), 1, "milk", 0), ErrInvalidItem)
	require.Equal(t, 0, fc.UpdateCalls)
}

func TestEdit_FailureLeavesPriorItemUntouched(t *testing.T) {
	fc := &fakeClient{
		ListRet: []models.GroceryItem{{ID: 1, Name: "milk", ExpiryDate: "2026-09-05"}},
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	fc.mu.Lock()
	fc.UpdateErr = api.ErrUnavailable
	fc.mu.Unlock()

	err := inv.Edit(context.Background(), 1, "oat milk", 9)
	require.ErrorIs(t, err, api.ErrUnavailable)

	items := inv.Items()
	require.Len(t, items, 1)
	require.Equal(t, "milk", items[0].Name)
}

func TestDelete_OptimisticallyRemovesFromBothLists(t *testing.T) {
	fc := &fakeClient{
		ListRet:     []models.GroceryItem{{ID: 1, Name: "milk"}, {ID: 2, Name: "eggs"}},
		ExpiringRet: []models.ExpiringItem{{ID: 1, Name: "milk"}},
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	require.NoError(t, inv.Delete(context.Background(), 1))
	require.Equal(t, int64(1), fc.LastDeleted)

	items := inv.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(2), items[0].ID)
	require.Empty(t, inv.Expiring())
}

// The legacy flow never checks the response status before mutating
// local state: a completed non-success exchange still removes locally,
// and the next authoritative refresh reconciles.
func TestDelete_NonSuccessStatusStillRemovesLocally(t *testing.T) {
	fc := &fakeClient{
		ListRet:   []models.GroceryItem{{ID: 1, Name: "milk"}},
		DeleteErr: &api.ServerError{Status: 500},
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	require.NoError(t, inv.Delete(context.Background(), 1))
	require.Empty(t, inv.Items())
}

func TestDelete_TransportFailureChangesNothing(t *testing.T) {
	fc := &fakeClient{
		ListRet:   []models.GroceryItem{{ID: 1, Name: "milk"}},
		DeleteErr: api.ErrUnavailable,
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	require.ErrorIs(t, inv.Delete(context.Background(), 1), api.ErrUnavailable)
	require.Len(t, inv.Items(), 1)
}

func TestDelete_IsIdempotentAtStoreLevel(t *testing.T) {
	fc := &fakeClient{
		ListRet: []models.GroceryItem{{ID: 1, Name: "milk"}},
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	require.NoError(t, inv.Delete(context.Background(), 1))
	require.NoError(t, inv.Delete(context.Background(), 1))
	require.Empty(t, inv.Items())
}

func TestDeleteAll_EmptiesBothListsUnconditionally(t *testing.T) {
	fc := &fakeClient{
		ListRet:     []models.GroceryItem{{ID: 1, Name: "milk"}},
		ExpiringRet: []models.ExpiringItem{{ID: 1, Name: "milk"}},
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	require.NoError(t, inv.DeleteAll(context.Background()))
	require.Empty(t, inv.Items())
	require.Empty(t, inv.Expiring())

	// already empty: still no error
	require.NoError(t, inv.DeleteAll(context.Background()))
	require.Empty(t, inv.Items())
	require.Equal(t, 2, fc.DeleteAllCalls)
}

func TestSnapshots_ReturnCopies(t *testing.T) {
	fc := &fakeClient{
		ListRet: []models.GroceryItem{{ID: 1, Name: "milk"}},
	}
	inv := newInventory(fc)
	require.False(t, inv.RefreshAll(context.Background()).Failed())

	items := inv.Items()
	items[0].Name = "mutated"
	require.Equal(t, "milk", inv.Items()[0].Name)
}
