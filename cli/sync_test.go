package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dukaflow/envsync/cli/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it
// changes the working directory and restores it when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}

func resetFlags(t *testing.T) {
	t.Helper()

	prevOutput := outputFormat
	prevFiles := envFiles
	prevFolder := folder
	prevVerbose := verbose
	t.Cleanup(func() {
		outputFormat = prevOutput
		envFiles = prevFiles
		folder = prevFolder
		verbose = prevVerbose
	})

	outputFormat = ""
	envFiles = nil
	folder = ""
	verbose = false
}

// clearScanEnv empties every scanned variable so tests are not polluted
// by the environment they run in.
func clearScanEnv(t *testing.T) {
	t.Helper()
	for _, key := range core.DefaultKeys {
		t.Setenv(key, "")
	}
}

func TestRunSync(t *testing.T) {
	resetFlags(t)
	clearScanEnv(t)
	chdir(t, t.TempDir())

	t.Setenv("MONGODB_URI", "mongodb://x")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test")

	got := captureStdout(t, runSync)

	expected := `[{"key":"MONGODB_URI","value":"mongodb://x"},{"key":"STRIPE_SECRET_KEY","value":"sk_test"},{"key":"NODE_ENV","value":"production"},{"key":"PORT","value":"3001"}]` + "\n"
	assert.Equal(t, expected, got)
}

func TestRunSyncNothingSet(t *testing.T) {
	resetFlags(t)
	clearScanEnv(t)
	chdir(t, t.TempDir())

	got := captureStdout(t, runSync)

	expected := `[{"key":"NODE_ENV","value":"production"},{"key":"PORT","value":"3001"}]` + "\n"
	assert.Equal(t, expected, got)
}

func TestRunSyncEnvFileFallback(t *testing.T) {
	resetFlags(t)
	clearScanEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.deploy"), []byte("JWT_KEY=from-file\n"), 0644))
	envFiles = []string{".env.deploy"}

	got := captureStdout(t, runSync)

	expected := `[{"key":"JWT_KEY","value":"from-file"},{"key":"NODE_ENV","value":"production"},{"key":"PORT","value":"3001"}]` + "\n"
	assert.Equal(t, expected, got)
}

func TestRunSyncProcessEnvWinsOverEnvFile(t *testing.T) {
	resetFlags(t)
	clearScanEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.deploy"), []byte("JWT_KEY=from-file\n"), 0644))
	envFiles = []string{".env.deploy"}
	t.Setenv("JWT_KEY", "from-env")

	got := captureStdout(t, runSync)

	expected := `[{"key":"JWT_KEY","value":"from-env"},{"key":"NODE_ENV","value":"production"},{"key":"PORT","value":"3001"}]` + "\n"
	assert.Equal(t, expected, got)
}

func TestRunSyncConfigExtraKeys(t *testing.T) {
	resetFlags(t)
	clearScanEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := `[sync]
extra_keys = ["SENTRY_DSN"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "envsync.toml"), []byte(content), 0644))
	t.Setenv("SENTRY_DSN", "https://sentry.example.com/1")

	got := captureStdout(t, runSync)

	expected := `[{"key":"SENTRY_DSN","value":"https://sentry.example.com/1"},{"key":"NODE_ENV","value":"production"},{"key":"PORT","value":"3001"}]` + "\n"
	assert.Equal(t, expected, got)
}

func TestRunSyncIsIdempotent(t *testing.T) {
	resetFlags(t)
	clearScanEnv(t)
	chdir(t, t.TempDir())

	t.Setenv("CLOUDINARY_API_KEY", "cloud-key")

	first := captureStdout(t, runSync)
	second := captureStdout(t, runSync)

	assert.Equal(t, first, second)
}

func TestSyncCmd(t *testing.T) {
	cmd := SyncCmd()

	assert.Equal(t, "sync", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)
}

func TestVersionCmd(t *testing.T) {
	cmd := VersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestCommandsAreRegistered(t *testing.T) {
	assert.Equal(t, "sync", core.GetCommand("sync").Use)
	assert.Equal(t, "version", core.GetCommand("version").Use)
}
