package api

import (
	"context"

	"github.com/freshtrack/freshtrack/internal/models"
)

// Client is the surface of the grocery backend this app consumes.
// Implementations attach the bearer token to every call that needs one;
// the token is set by the session manager after login and cleared on
// logout.
type Client interface {
	SetToken(token string)
	ClearToken()

	Register(ctx context.Context, username, password, phoneNumber string) error
	Login(ctx context.Context, username, password string) (token string, user string, err error)
	CheckAuth(ctx context.Context) (username string, err error)

	ListItems(ctx context.Context) ([]models.GroceryItem, error)
	ExpiringSoon(ctx context.Context) ([]models.ExpiringItem, error)
	ShoppingHistory(ctx context.Context) ([]models.HistoryEntry, error)

	AddItem(ctx context.Context, name string, shelfLifeDays int) error
	UpdateItem(ctx context.Context, id int64, name string, shelfLifeDays int) error
	DeleteItem(ctx context.Context, id int64) error
	DeleteAllItems(ctx context.Context) error

	Recipes(ctx context.Context, ingredients string) ([]models.Recipe, error)
}
