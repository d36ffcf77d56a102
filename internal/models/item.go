// Package models defines the client-side data types exchanged with the
// grocery tracking backend.
package models

// GroceryItem is a tracked item. ID and ExpiryDate are server-assigned;
// the client submits only a name and a shelf life in days and never
// computes expiry locally.
type GroceryItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ExpiryDate string `json:"expiry_date"`
}

// ExpiringItem is an item the server classified as inside its
// "expiring soon" horizon. The horizon itself is not disclosed to the
// client, so this is a separate server-computed view, not a local filter.
type ExpiringItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ExpiryDate string `json:"expiry_date"`
}

// HistoryEntry is one row of shopping history. The backend owns its
// shape; the client only displays the fields it knows about and keeps
// the rest untouched.
type HistoryEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
}

// Recipe is a single recipe suggestion. Results are ephemeral: a new
// suggestion request fully replaces the previous list.
type Recipe struct {
	ID                    int64  `json:"id"`
	Title                 string `json:"title"`
	Image                 string `json:"image"`
	UsedIngredientCount   int    `json:"usedIngredientCount"`
	MissedIngredientCount int    `json:"missedIngredientCount"`
}
