package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Publish(ctx context.Context) error {
	f.calls = append(f.calls, "publish")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Search(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}
func (f *fakeExec) Interest(ctx context.Context) error {
	f.calls = append(f.calls, "interest")
	return nil
}
func (f *fakeExec) Users(ctx context.Context) error { f.calls = append(f.calls, "users"); return nil }
func (f *fakeExec) AllItems(ctx context.Context) error {
	f.calls = append(f.calls, "items")
	return nil
}
func (f *fakeExec) DeleteUser(ctx context.Context) error {
	f.calls = append(f.calls, "deluser")
	return nil
}
func (f *fakeExec) DeleteItem(ctx context.Context) error {
	f.calls = append(f.calls, "delitem")
	return nil
}
func (f *fakeExec) Promote(ctx context.Context) error {
	f.calls = append(f.calls, "promote")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"publish",
		"list",
		"search",
		"interest",
		"foobar",
		"logout",
		"exit",
		"never reached",
	}, "\n")

	f := &fakeExec{}
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "" }, scanner)

	assert.Equal(t, []string{"login", "publish", "list", "search", "interest", "logout"}, f.calls)
}

func TestRunREPL_AdminCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"users",
		"items",
		"deluser",
		"delitem",
		"promote",
		"quit",
	}, "\n")

	f := &fakeExec{loggedIn: true, admin: true}
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "" }, scanner)

	assert.Equal(t, []string{"users", "items", "deluser", "delitem", "promote"}, f.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{}
	scanner := bufio.NewScanner(strings.NewReader("list\n"))
	runREPL(context.Background(), f, func() string { return "" }, scanner)

	assert.Equal(t, []string{"list"}, f.calls)
}

func TestRunREPL_SkipsBlankLines(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{}
	scanner := bufio.NewScanner(strings.NewReader("\n   \nlist\nexit\n"))
	runREPL(context.Background(), f, func() string { return "" }, scanner)

	assert.Equal(t, []string{"list"}, f.calls)
}
