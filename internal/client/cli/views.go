package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/printflow/printflow/internal/common"
)

// reportError prints a user-facing message for a failed API call.
func reportError(err error) {
	switch {
	case errors.Is(err, common.ErrUnavailable):
		printlnFn("Cannot connect to the server. Please check your connection.")
	case errors.Is(err, common.ErrUnauthorized):
		printlnFn("Your session is no longer valid. Please log in again.")
	case errors.Is(err, common.ErrForbidden):
		printlnFn("Access denied.")
	default:
		printlnFn("Request failed. Please try again.")
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func (a *App) Dashboard(ctx context.Context) error {
	if !a.checkAccess("dashboard", rolesAny) {
		return nil
	}

	stats, err := a.client.Dashboard(ctx)
	if err != nil {
		reportError(err)
		return nil
	}

	printlnFn("Dashboard")
	printlnFn(fmt.Sprintf("  Inventory items:        %d", stats.TotalInventoryItems))
	printlnFn(fmt.Sprintf("  Low stock items:        %d", stats.LowStockItems))
	printlnFn(fmt.Sprintf("  Pending orders:         %d", stats.PendingOrders))
	printlnFn(fmt.Sprintf("  Completed orders today: %d", stats.CompletedOrdersToday))
	printlnFn(fmt.Sprintf("  Inventory value:        %.2f", stats.TotalInventoryValue))

	if len(stats.RecentActivities) > 0 {
		printlnFn("Recent activity:")
		for _, e := range stats.RecentActivities {
			printlnFn(fmt.Sprintf("  %s  %s  %s", e.Timestamp.Format("15:04:05"), e.Action, e.Details))
		}
	}
	return nil
}

func (a *App) Inventory(ctx context.Context) error {
	if !a.checkAccess("inventory", rolesAny) {
		return nil
	}

	items, err := a.client.ListInventory(ctx)
	if err != nil {
		reportError(err)
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "SKU\tNAME\tCATEGORY\tQTY\tMIN\tUNIT\tPRICE\t")
	for _, it := range items {
		marker := ""
		if it.LowStock() {
			marker = " (low)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%s\t%d\t%s\t%.2f\t\n",
			it.SKU, it.Name, it.Category, it.Quantity, marker, it.MinStock, it.Unit, it.UnitPrice)
	}
	return w.Flush()
}

func (a *App) Orders(ctx context.Context) error {
	if !a.checkAccess("orders", rolesAny) {
		return nil
	}

	orders, err := a.client.ListOrders(ctx)
	if err != nil {
		reportError(err)
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ORDER\tCUSTOMER\tSTATUS\tTOTAL\tDUE\t")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t\n",
			o.OrderNumber, o.CustomerName, o.Status, o.TotalAmount, o.DueDate.Format("2006-01-02"))
	}
	return w.Flush()
}

func (a *App) Suppliers(ctx context.Context) error {
	if !a.checkAccess("suppliers", rolesManagement) {
		return nil
	}

	suppliers, err := a.client.ListSuppliers(ctx)
	if err != nil {
		reportError(err)
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tCONTACT\tEMAIL\tPHONE\t")
	for _, s := range suppliers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", s.Name, s.ContactPerson, s.Email, s.Phone)
	}
	return w.Flush()
}

func (a *App) Users(ctx context.Context) error {
	if !a.checkAccess("users", rolesAdmin) {
		return nil
	}

	users, err := a.client.ListUsers(ctx)
	if err != nil {
		reportError(err)
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tEMAIL\tROLE\t")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", u.Name, u.Email, u.Role)
	}
	return w.Flush()
}

func (a *App) Activity(ctx context.Context) error {
	if !a.checkAccess("activity", rolesAdmin) {
		return nil
	}

	entries, err := a.client.ListActivity(ctx)
	if err != nil {
		reportError(err)
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "TIME\tUSER\tACTION\tDETAILS\tIP\t")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.UserID, e.Action, e.Details, e.IPAddress)
	}
	return w.Flush()
}
