package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls   []string
	lastArg string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
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
func (f *fakeExec) Browse(ctx context.Context, query string) error {
	f.calls = append(f.calls, "browse")
	f.lastArg = query
	return nil
}
func (f *fakeExec) Review(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "review")
	f.lastArg = arg
	return nil
}
func (f *fakeExec) MyRecipes(ctx context.Context) error {
	f.calls = append(f.calls, "my")
	return nil
}
func (f *fakeExec) CreateRecipe(ctx context.Context) error {
	f.calls = append(f.calls, "create")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_AnonymousGate(t *testing.T) {
	lines := silencePrintln(t)

	// Resource commands are refused until login succeeds.
	input := strings.NewReader(strings.Join([]string{
		"list",
		"my",
		"login",
		"list soup",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "st" }, bufio.NewScanner(input))

	want := []string{"login", "browse"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", exec.calls, want)
		}
	}
	if exec.lastArg != "soup" {
		t.Fatalf("browse arg = %q, want %q", exec.lastArg, "soup")
	}

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "log in first") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a gate message for pre-login commands, got %v", *lines)
	}
}

func TestRunREPL_AuthenticatedCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"l",
		"review 2",
		"my",
		"create",
		"whoami",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "st" }, bufio.NewScanner(input))

	want := []string{"browse", "review", "my", "create", "whoami", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_UnknownCommandFallsBackToBrowse(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("frobnicate\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "st" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "browse" {
		t.Fatalf("unknown command should land on the default screen, calls = %v", exec.calls)
	}
	if exec.lastArg != "" {
		t.Fatalf("fallback browse must not carry a filter, got %q", exec.lastArg)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "st" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("no commands expected on EOF, got %v", exec.calls)
	}
}
