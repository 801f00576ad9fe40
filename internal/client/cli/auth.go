package cli

import (
	"context"
	"os"

	"github.com/printflow/printflow/internal/client/models"
	"github.com/printflow/printflow/internal/common"
)

// Login prompts for credentials and runs the login flow. After a successful
// login, a view remembered by the guard is reopened.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.auth.Login(ctx, email, string(password))
	if !res.Success {
		printlnFn(res.Error)
		return nil
	}

	printlnFn("Logged in as " + a.status())

	if view := a.guard.ConsumePending(); view != "" {
		a.openView(ctx, view)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	printlnFn("Logged out.")
	return nil
}

// Register prompts for a new user's details. The server only allows this for
// administrators; the guard enforces the same rule locally.
func (a *App) Register(ctx context.Context) error {
	if !a.checkAccess("register", rolesAdmin) {
		return nil
	}

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Enter role (admin/manager/staff, empty for staff)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.auth.Register(ctx, name, email, string(password), models.Role(role))
	if !res.Success {
		printlnFn(res.Error)
		return nil
	}

	printlnFn("User " + email + " registered.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.sessions.Current()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(user.Name + " <" + user.Email + "> role=" + string(user.Role))
	return nil
}

// openView dispatches to the view remembered before a login redirect.
func (a *App) openView(ctx context.Context, view string) {
	switch view {
	case "dashboard":
		_ = a.Dashboard(ctx)
	case "inventory":
		_ = a.Inventory(ctx)
	case "orders":
		_ = a.Orders(ctx)
	case "suppliers":
		_ = a.Suppliers(ctx)
	case "users":
		_ = a.Users(ctx)
	case "activity":
		_ = a.Activity(ctx)
	}
}
