// Package cli is the interactive view over the classifieds core. It
// prompts for inputs, calls the services, and renders results or error
// text; it holds no business rules of its own.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fleamarket/internal/models"
	"github.com/dmitrijs2005/fleamarket/internal/services"
)

// Shell holds the services plus the current session, if any.
type Shell struct {
	auth  *services.Auth
	items *services.Items
	admin *services.Admin

	reader *bufio.Reader
	out    io.Writer

	token string
	user  *models.User
}

func NewShell(auth *services.Auth, items *services.Items, admin *services.Admin) *Shell {
	return &Shell{
		auth:   auth,
		items:  items,
		admin:  admin,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (s *Shell) isLoggedIn() bool { return s.user != nil }

func (s *Shell) isAdmin() bool { return s.user != nil && s.user.IsAdmin() }

func (s *Shell) status() string {
	if s.user == nil {
		return "(not logged in)"
	}
	if s.user.IsAdmin() {
		return fmt.Sprintf("(%s, admin)", s.user.DisplayName)
	}
	return fmt.Sprintf("(%s)", s.user.DisplayName)
}

// Root runs the REPL until EOF or exit.
func (s *Shell) Root(ctx context.Context) {
	printlnFn("Welcome to the flea market CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, s, s.status, scanner)
}

func (s *Shell) Register(ctx context.Context) error {
	email, err := GetSimpleText(s.reader, "Email", s.out)
	if err != nil {
		return err
	}
	secret, err := GetPassword("Password", s.out)
	if err != nil {
		return err
	}
	displayName, err := GetSimpleText(s.reader, "Display name", s.out)
	if err != nil {
		return err
	}
	contactInfo, err := GetSimpleText(s.reader, "Contact info (shown to interested buyers)", s.out)
	if err != nil {
		return err
	}

	user, err := s.auth.Register(ctx, email, secret, displayName, contactInfo)
	if err != nil {
		fmt.Fprintln(s.out, "Registration failed:", err)
		return err
	}
	fmt.Fprintf(s.out, "Registered %s (id %d). You can log in now.\n", user.Email, user.ID)
	return nil
}

func (s *Shell) Login(ctx context.Context) error {
	email, err := GetSimpleText(s.reader, "Email", s.out)
	if err != nil {
		return err
	}
	secret, err := GetPassword("Password", s.out)
	if err != nil {
		return err
	}

	token, user, err := s.auth.Login(ctx, email, secret)
	if err != nil {
		fmt.Fprintln(s.out, "Login failed:", err)
		return err
	}
	s.token = token
	s.user = user
	fmt.Fprintf(s.out, "Welcome, %s!\n", user.DisplayName)
	return nil
}

func (s *Shell) Logout(ctx context.Context) error {
	s.auth.Logout(ctx, s.token)
	s.token = ""
	s.user = nil
	fmt.Fprintln(s.out, "Logged out.")
	return nil
}

func (s *Shell) Publish(ctx context.Context) error {
	title, err := GetSimpleText(s.reader, "Title", s.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(s.reader, "Description", s.out)
	if err != nil {
		return err
	}
	priceText, err := GetSimpleText(s.reader, "Price", s.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price < 0 {
		fmt.Fprintln(s.out, "Price must be a non-negative number.")
		return err
	}
	pathsText, err := GetSimpleText(s.reader, "Image paths (comma-separated, optional)", s.out)
	if err != nil {
		return err
	}
	var imagePaths []string
	for _, p := range strings.Split(pathsText, ",") {
		if p = strings.TrimSpace(p); p != "" {
			imagePaths = append(imagePaths, p)
		}
	}

	item, err := s.items.Publish(ctx, s.token, title, description, price, imagePaths)
	if err != nil {
		fmt.Fprintln(s.out, "Publish failed:", err)
		return err
	}
	fmt.Fprintf(s.out, "Published %q (id %d)\n", item.Title, item.ID)
	return nil
}

func (s *Shell) List(ctx context.Context) error {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "List failed:", err)
		return err
	}
	s.printItems(items)
	return nil
}

func (s *Shell) Search(ctx context.Context) error {
	keyword, err := GetSimpleText(s.reader, "Keyword (empty for all)", s.out)
	if err != nil {
		return err
	}
	items, err := s.items.Search(ctx, keyword)
	if err != nil {
		fmt.Fprintln(s.out, "Search failed:", err)
		return err
	}
	s.printItems(items)
	return nil
}

func (s *Shell) Interest(ctx context.Context) error {
	id, err := s.getID("Item id")
	if err != nil {
		return err
	}
	contact, err := s.items.ExpressInterest(ctx, s.token, id)
	if err != nil {
		fmt.Fprintln(s.out, "Could not express interest:", err)
		return err
	}
	fmt.Fprintf(s.out, "Seller contact info: %s\n", contact)
	return nil
}

func (s *Shell) Users(ctx context.Context) error {
	users, err := s.admin.ListUsers(ctx, s.token)
	if err != nil {
		fmt.Fprintln(s.out, "Cannot list users:", err)
		return err
	}
	for _, u := range users {
		fmt.Fprintf(s.out, "%4d  %-30s  %-20s  %s\n", u.ID, u.Email, u.DisplayName, u.Role)
	}
	return nil
}

func (s *Shell) AllItems(ctx context.Context) error {
	items, err := s.admin.ListItems(ctx, s.token)
	if err != nil {
		fmt.Fprintln(s.out, "Cannot list items:", err)
		return err
	}
	s.printItems(items)
	return nil
}

func (s *Shell) DeleteUser(ctx context.Context) error {
	id, err := s.getID("User id to delete")
	if err != nil {
		return err
	}
	removed, err := s.admin.DeleteUser(ctx, s.token, id)
	if err != nil {
		fmt.Fprintln(s.out, "Delete failed:", err)
		return err
	}
	if removed {
		fmt.Fprintf(s.out, "User %d deleted.\n", id)
	} else {
		fmt.Fprintf(s.out, "No user with id %d.\n", id)
	}
	return nil
}

func (s *Shell) DeleteItem(ctx context.Context) error {
	id, err := s.getID("Item id to delete")
	if err != nil {
		return err
	}
	removed, err := s.admin.DeleteItem(ctx, s.token, id)
	if err != nil {
		fmt.Fprintln(s.out, "Delete failed:", err)
		return err
	}
	if removed {
		fmt.Fprintf(s.out, "Item %d deleted.\n", id)
	} else {
		fmt.Fprintf(s.out, "No item with id %d.\n", id)
	}
	return nil
}

func (s *Shell) Promote(ctx context.Context) error {
	id, err := s.getID("User id to promote to admin")
	if err != nil {
		return err
	}
	changed, err := s.admin.PromoteUser(ctx, s.token, id)
	if err != nil {
		fmt.Fprintln(s.out, "Promote failed:", err)
		return err
	}
	if changed {
		fmt.Fprintf(s.out, "User %d is now an admin.\n", id)
	} else {
		fmt.Fprintf(s.out, "No user with id %d.\n", id)
	}
	return nil
}

func (s *Shell) getID(prompt string) (int64, error) {
	text, err := GetSimpleText(s.reader, prompt, s.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Not a valid id:", text)
		return 0, err
	}
	return id, nil
}

func (s *Shell) printItems(items []models.Item) {
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(s.out, "%4d  %-30s  %10.2f  %-9s  seller:%d\n",
			item.ID, item.Title, item.Price, item.Status, item.SellerID)
	}
}
