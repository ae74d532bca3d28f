package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pet-manager/internal/platform/config"
	"pet-manager/internal/router"
	"pet-manager/internal/ui/timer"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{Scheduler: timer.NewManual()}))
	t.Cleanup(ts.Close)
	return ts
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPetsCommands_AddListEditRemove(t *testing.T) {
	ts := newTestServer(t)

	out, err := execute(t, "--server", ts.URL, "pets", "add", "Rex", "dog", "3")
	require.NoError(t, err)
	require.Contains(t, out, "added")
	id := strings.Fields(out)[1]

	_, err = execute(t, "--server", ts.URL, "pets", "add", "Mia", "cat", "2")
	require.NoError(t, err)

	out, err = execute(t, "--server", ts.URL, "pets", "list")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "SPECIES")
	require.Contains(t, out, "Rex")
	require.Contains(t, out, "2 pet(s)")

	out, err = execute(t, "--server", ts.URL, "pets", "list", "--species", "CAT")
	require.NoError(t, err)
	require.Contains(t, out, "Mia")
	require.NotContains(t, out, "Rex")

	out, err = execute(t, "--server", ts.URL, "pets", "edit", id, "--age", "4")
	require.NoError(t, err)
	require.Contains(t, out, "Rex (dog, 4)")

	_, err = execute(t, "--server", ts.URL, "pets", "rm", id)
	require.NoError(t, err)

	out, err = execute(t, "--server", ts.URL, "pets", "list", "--search", "rex")
	require.NoError(t, err)
	require.Contains(t, out, "No pets found.")
}

func TestPetsAdd_ValidatesLocally(t *testing.T) {
	_, err := execute(t, "--server", "http://127.0.0.1:1", "pets", "add", "Rex", "dog", "old")
	require.Error(t, err)
	require.Contains(t, err.Error(), "age")
}

func TestPetsEdit_RequiresAFlag(t *testing.T) {
	_, err := execute(t, "--server", "http://127.0.0.1:1", "pets", "edit", "1")
	require.ErrorContains(t, err, "nothing to change")
}

func TestThemeCommands(t *testing.T) {
	ts := newTestServer(t)

	out, err := execute(t, "--server", ts.URL, "theme", "get")
	require.NoError(t, err)
	require.Equal(t, "light\n", out)

	out, err = execute(t, "--server", ts.URL, "theme", "set", "dark")
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)

	_, err = execute(t, "--server", ts.URL, "theme", "set", "blue")
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pm.yaml")

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DriverMemory, cfg.Store.Driver)

	_, err = execute(t, "config", "init", path)
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}
