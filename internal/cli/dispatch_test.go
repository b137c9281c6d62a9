package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
	"todo/internal/taskstore"
	"todo/internal/testutil"
)

var errDiskFull = errors.New("disk full")

// keepOpen ignores Close so one store can serve several dispatches.
type keepOpen struct{ *taskstore.Store }

func (keepOpen) Close() error { return nil }

// testFactory creates a service factory that returns the given store.
func testFactory(svc *taskstore.Store) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, logger *logging.Logger) (service.Service, error) {
		return keepOpen{svc}, nil
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TODO_BACKEND", "TODO_DSN", "TODO_DATA_DIR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// run dispatches args with a temporary config directory and the given stdin.
func run(t *testing.T, d *cli.Dispatcher, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	if !containsFlag(args, "--config") && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		args = append([]string{args[0], "--config", t.TempDir()}, args[1:]...)
	}
	code = d.Run(context.Background(), args, strings.NewReader(stdin), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func containsFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	svc, _ := testutil.NewStore(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	_, stderr, code := run(t, dispatcher, "", "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	svc, _ := testutil.NewStore(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	_, stderr, code := run(t, dispatcher, "", "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	svc, _ := testutil.NewStore(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	_, stderr, code := run(t, dispatcher, "", "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	svc, _ := testutil.NewStore(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var outBuf, errBuf bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--backend"}, nil, &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -backend\n"
	if errBuf.String() != expected {
		t.Errorf("expected %q, got %q", expected, errBuf.String())
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	clearEnv(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(t, dispatcher, "", "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	clearEnv(t)
	svc, _ := testutil.NewStore(t, "Buy milk")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var outBuf, errBuf bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, errBuf.String())
	}
	if outBuf.String() != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected output %q", outBuf.String())
	}
}

func TestDispatcher_AddListDone(t *testing.T) {
	clearEnv(t)
	svc, _ := testutil.NewStore(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	if _, stderr, code := run(t, dispatcher, "", "add", "Buy", "milk"); code != exitcode.Success {
		t.Fatalf("add: exit %d, stderr %q", code, stderr)
	}
	if _, stderr, code := run(t, dispatcher, "", "create", "--quiet", "Buy eggs"); code != exitcode.Success {
		t.Fatalf("create: exit %d, stderr %q", code, stderr)
	}
	if _, stderr, code := run(t, dispatcher, "", "done", "2"); code != exitcode.Success {
		t.Fatalf("done: exit %d, stderr %q", code, stderr)
	}

	stdout, _, _ := run(t, dispatcher, "", "ls")
	testutil.GoldenString(t, "add_list_done", stdout)

	stdout, _, _ = run(t, dispatcher, "", "list", "--open")
	if stdout != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected --open output %q", stdout)
	}
}

func TestDispatcher_RmPrompt(t *testing.T) {
	clearEnv(t)
	svc, _ := testutil.NewStore(t, "Buy milk", "Buy eggs")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	stdout, _, code := run(t, dispatcher, "n\n", "rm", "1")
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Delete task \"Buy milk\"? [y/N]: cancelled\n" {
		t.Errorf("unexpected output %q", stdout)
	}

	stdout, _, _ = run(t, dispatcher, "y\n", "rm", "1")
	if stdout != "Delete task \"Buy milk\"? [y/N]: ok\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	if got := strings.Join(testutil.Titles(t, svc), ","); got != "Buy eggs" {
		t.Errorf("expected Buy eggs, got %s", got)
	}
}

func TestDispatcher_DefaultFactoryPersists(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	if _, stderr, code := run(t, dispatcher, "", "add", "--config", dir, "Buy milk"); code != exitcode.Success {
		t.Fatalf("add: exit %d, stderr %q", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "data", "@todos.json")); err != nil {
		t.Errorf("expected task file: %v", err)
	}

	stdout, _, _ := run(t, dispatcher, "", "list", "--config", dir)
	if stdout != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestDispatcher_SQLiteBackendFlag(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	if _, stderr, code := run(t, dispatcher, "", "add", "--config", dir, "--backend", "sqlite", "Buy milk"); code != exitcode.Success {
		t.Fatalf("add: exit %d, stderr %q", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "todo.db")); err != nil {
		t.Errorf("expected database file: %v", err)
	}

	stdout, _, _ := run(t, dispatcher, "", "list", "--config", dir, "--backend", "sqlite")
	if stdout != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestDispatcher_SeedExamples(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed_examples: true\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, _, _ := run(t, dispatcher, "", "list", "--config", dir)
	if !strings.HasPrefix(stdout, "   1  [ ] Welcome to todo\n") {
		t.Errorf("expected example tasks, got %q", stdout)
	}
}

func TestDispatcher_UnknownBackend(t *testing.T) {
	clearEnv(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(t, dispatcher, "", "list", "--backend", "redis")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	expected := "error: config error: unknown backend: redis\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_InvalidConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: [\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(t, dispatcher, "", "version", "--config", dir)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr, "error: config error: invalid config.yaml") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_StorageWriteFailure(t *testing.T) {
	clearEnv(t)
	svc, kv := testutil.NewStore(t, "Buy milk")
	kv.SetErr = errDiskFull
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	_, stderr, code := run(t, dispatcher, "", "add", "Buy eggs")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	expected := "error: storage error: write @todos: disk full\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_DebugLogs(t *testing.T) {
	clearEnv(t)
	svc, _ := testutil.NewStore(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	_, stderr, _ := run(t, dispatcher, "", "list", "--debug")
	if !strings.Contains(stderr, "todo: ") || !strings.Contains(stderr, "debug: config dir") {
		t.Errorf("expected debug log, got %q", stderr)
	}
}

