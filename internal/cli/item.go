package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/freshtrack/freshtrack/internal/api"
	"github.com/freshtrack/freshtrack/internal/service"
)

func reportItemError(err error) {
	switch {
	case errors.Is(err, service.ErrInvalidItem):
		fmt.Println("Please enter an item name and a positive shelf life in days.")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Could not reach server. Please try again.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

// List prints the grocery list with server-computed expiry dates.
func (a *App) List(ctx context.Context) error {
	items := a.inventory.Items()
	if len(items) == 0 {
		fmt.Println("Your grocery list is empty.")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%4d  %-20s expires %s\n", it.ID, it.Name, it.ExpiryDate)
	}
	return nil
}

// Expiring prints the server-classified expiring-soon subset.
func (a *App) Expiring(ctx context.Context) error {
	items := a.inventory.Expiring()
	if len(items) == 0 {
		fmt.Println("Nothing is expiring soon.")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%s expires on %s\n", it.Name, it.ExpiryDate)
	}
	return nil
}

// History prints the shopping history.
func (a *App) History(ctx context.Context) error {
	entries := a.inventory.History()
	if len(entries) == 0 {
		fmt.Println("No shopping history yet.")
		return nil
	}
	for _, e := range entries {
		if e.Date != "" {
			fmt.Printf("%-20s %s\n", e.Name, e.Date)
		} else {
			fmt.Println(e.Name)
		}
	}
	return nil
}

// Add prompts for a new item and submits it. The id and expiry date are
// server-assigned and arrive with the follow-up refresh.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Item name", os.Stdout)
	if err != nil {
		return err
	}
	days, err := GetInt(a.reader, "Shelf life (days)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return nil
	}
	if err := a.inventory.Add(ctx, name, days); err != nil {
		reportItemError(err)
		return nil
	}
	fmt.Println("Item added.")
	return nil
}

// Edit prompts for an item id plus new values and submits the update.
func (a *App) Edit(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Item id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Printf("not a valid id: %q\n", idText)
		return nil
	}
	name, err := getSimpleText(a.reader, "New name", os.Stdout)
	if err != nil {
		return err
	}
	days, err := GetInt(a.reader, "New shelf life (days)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return nil
	}
	if err := a.inventory.Edit(ctx, id, name, days); err != nil {
		reportItemError(err)
		return nil
	}
	fmt.Println("Item updated.")
	return nil
}

// Delete confirms and removes a single item. The removal is optimistic:
// the local lists are updated as soon as the request completes and the
// next refresh reconciles with the server.
func (a *App) Delete(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Item id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Printf("not a valid id: %q\n", idText)
		return nil
	}

	var c Confirm
	ok, err := GetConfirmation(a.reader, "Delete this item?", os.Stdout, &c)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := a.inventory.Delete(ctx, id); err != nil {
		reportItemError(err)
		return nil
	}
	fmt.Println("Item deleted.")
	return nil
}

// DeleteAll confirms and clears the whole list.
func (a *App) DeleteAll(ctx context.Context) error {
	var c Confirm
	ok, err := GetConfirmation(a.reader, "Delete ALL items?", os.Stdout, &c)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := a.inventory.DeleteAll(ctx); err != nil {
		reportItemError(err)
		return nil
	}
	fmt.Println("All items deleted.")
	return nil
}

// Recipes requests suggestions for the current inventory and prints at
// most three, in the order the backend returned them.
func (a *App) Recipes(ctx context.Context) error {
	recipes, err := a.matcher.Suggest(ctx)
	if err != nil {
		reportItemError(err)
		return nil
	}
	if len(recipes) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}
	for _, r := range recipes {
		fmt.Printf("%s (used: %d, missing: %d)\n", r.Title, r.UsedIngredientCount, r.MissedIngredientCount)
	}
	return nil
}

// Refresh re-fetches everything and reports partial failures without
// discarding what did arrive.
func (a *App) Refresh(ctx context.Context) error {
	report := a.inventory.RefreshAll(ctx)
	if report.Failed() {
		fmt.Printf("Some data could not be refreshed: %v\n", report.Err())
		return nil
	}
	fmt.Println("Refreshed.")
	return nil
}
