package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/freshtrack/freshtrack/internal/logging"
	"github.com/freshtrack/freshtrack/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

// fakeClient implements api.Client for unit tests. Returned values and
// errors are configured per method; last-call arguments and call counts
// are recorded for assertions.
type fakeClient struct {
	mu sync.Mutex

	Token        string
	TokenCleared int

	RegisterErr       error
	LastRegisterUser  string
	LastRegisterPhone string

	LoginToken string
	LoginUser  string
	LoginErr   error

	CheckAuthUser  string
	CheckAuthErr   error
	CheckAuthCalls int

	ListRet  []models.GroceryItem
	ListErr  error
	ListGate chan struct{} // when non-nil, ListItems blocks until closed

	ExpiringRet []models.ExpiringItem
	ExpiringErr error

	HistoryRet []models.HistoryEntry
	HistoryErr error

	AddErr      error
	AddCalls    int
	LastAddName string
	LastAddDays int

	UpdateErr    error
	UpdateCalls  int
	LastUpdateID int64

	DeleteErr   error
	DeleteCalls int
	LastDeleted int64

	DeleteAllErr   error
	DeleteAllCalls int

	RecipesRet      []models.Recipe
	RecipesErr      error
	LastIngredients string
	RecipesCalls    int
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = token
}

func (f *fakeClient) ClearToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = ""
	f.TokenCleared++
}

func (f *fakeClient) Register(ctx context.Context, username, password, phoneNumber string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRegisterUser = username
	f.LastRegisterPhone = phoneNumber
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoginErr != nil {
		return "", "", f.LoginErr
	}
	return f.LoginToken, f.LoginUser, nil
}

func (f *fakeClient) CheckAuth(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CheckAuthCalls++
	return f.CheckAuthUser, f.CheckAuthErr
}

func (f *fakeClient) ListItems(ctx context.Context) ([]models.GroceryItem, error) {
	f.mu.Lock()
	gate := f.ListGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.GroceryItem(nil), f.ListRet...), f.ListErr
}

func (f *fakeClient) ExpiringSoon(ctx context.Context) ([]models.ExpiringItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ExpiringItem(nil), f.ExpiringRet...), f.ExpiringErr
}

func (f *fakeClient) ShoppingHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.HistoryEntry(nil), f.HistoryRet...), f.HistoryErr
}

func (f *fakeClient) AddItem(ctx context.Context, name string, shelfLifeDays int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddCalls++
	f.LastAddName = name
	f.LastAddDays = shelfLifeDays
	return f.AddErr
}

func (f *fakeClient) UpdateItem(ctx context.Context, id int64, name string, shelfLifeDays int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastUpdateID = id
	return f.UpdateErr
}

func (f *fakeClient) DeleteItem(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	f.LastDeleted = id
	return f.DeleteErr
}

func (f *fakeClient) DeleteAllItems(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteAllCalls++
	return f.DeleteAllErr
}

func (f *fakeClient) Recipes(ctx context.Context, ingredients string) ([]models.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RecipesCalls++
	f.LastIngredients = ingredients
	return append([]models.Recipe(nil), f.RecipesRet...), f.RecipesErr
}
