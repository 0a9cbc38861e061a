package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/alexanderramin/tempus/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. IsInteractive stays nil, so forms and prompts never run.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	entryRepo := repository.NewSQLiteEntryRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Entries:  service.NewEntryService(entryRepo, settingsRepo, nil, nil),
		Summary:  service.NewSummaryService(entryRepo, settingsRepo),
		Settings: service.NewSettingsService(settingsRepo, nil),
		Backup:   service.NewBackupService(entryRepo, settingsRepo, uow),
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "tempus")
}

// --- entry commands ---

func TestEntryAdd_AndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "entry", "add",
		"--name", "Alice", "--category", "staff",
		"--in", "09:00", "--out", "17:00", "--break", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Added entry")
	assert.Contains(t, out, "Alice")

	out, err = executeCmd(t, app, "entry", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "7.5 hrs")
	assert.Contains(t, out, "Completed")
}

func TestEntryAdd_InvalidClock(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "add", "--name", "Alice", "--in", "25:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clock-in")
}

func TestEntryAdd_NonInteractiveWithoutFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "add")
	require.Error(t, err)
}

func TestEntryClose(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "add", "--name", "Bob", "--in", "22:00")
	require.NoError(t, err)

	entries, err := app.Entries.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	id := entries[0].ID

	out, err := executeCmd(t, app, "entry", "close", formatID(id), "--out", "06:00")
	require.NoError(t, err)
	assert.Contains(t, out, "8 hrs")
}

func TestEntryBreakAndOvertime(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "add", "--name", "Bob", "--in", "09:00", "--out", "17:00")
	require.NoError(t, err)
	entries, _ := app.Entries.List(context.Background())
	id := formatID(entries[0].ID)

	out, err := executeCmd(t, app, "entry", "break", id, "--minutes", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "6.5 hrs")

	out, err = executeCmd(t, app, "entry", "overtime", id)
	require.NoError(t, err)
	assert.Contains(t, out, "overtime on")

	out, err = executeCmd(t, app, "entry", "overtime", id)
	require.NoError(t, err)
	assert.Contains(t, out, "overtime off")
}

func TestEntryRemove(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "add", "--name", "Bob", "--in", "09:00")
	require.NoError(t, err)
	entries, _ := app.Entries.List(context.Background())

	out, err := executeCmd(t, app, "entry", "remove", formatID(entries[0].ID))
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	out, err = executeCmd(t, app, "entry", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No entries yet")
}

func TestEntryRemove_UnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "remove", "12345")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- summary ---

func TestSummary(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "entry", "add", "--name", "Alice", "--category", "staff",
		"--in", "09:00", "--out", "17:00")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "1 workers")
	assert.Contains(t, out, "8 hrs")
	assert.Contains(t, out, "$120.00")
	assert.Contains(t, out, "staff")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "9 AM - 10 AM")
}

// --- wage ---

func TestWageShowAndSet(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "wage", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "$15.00/hr")
	assert.Contains(t, out, "1.5x")

	out, err = executeCmd(t, app, "wage", "set", "contractor", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "$25.00/hr")

	out, err = executeCmd(t, app, "wage", "multiplier", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2x")

	_, err = executeCmd(t, app, "wage", "multiplier", "0.5")
	assert.ErrorIs(t, err, service.ErrMultiplierTooLow)
}

func TestWageSet_FreeFormCategoryNormalized(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "wage", "set", "Night Temp", "14")
	require.NoError(t, err)
	assert.Contains(t, out, "temp")
	assert.Contains(t, out, "$14.00/hr")
}

// --- export / import ---

func TestExportAndImportRoundtrip(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()

	_, err := executeCmd(t, app, "entry", "add", "--name", "Alice",
		"--in", "09:00", "--out", "17:00", "--break", "30")
	require.NoError(t, err)

	jsonPath := filepath.Join(dir, "backup.json")
	out, err := executeCmd(t, app, "export", "json", "--out", jsonPath)
	require.NoError(t, err)
	assert.Contains(t, out, jsonPath)

	csvPath := filepath.Join(dir, "report.csv")
	_, err = executeCmd(t, app, "export", "csv", "--out", csvPath)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TOTALS")

	out, err = executeCmd(t, app, "import", jsonPath, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 entries")

	entries, err := app.Entries.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7.5, entries[0].TotalHours)
}

func TestImport_RequiresConfirmationWithoutTTY(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestImport_BadFileFailsBeforePrompt(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nope": true}`), 0o644))

	_, err := executeCmd(t, app, "import", path, "--yes")
	require.Error(t, err)
}

// --- webhook ---

func TestWebhookConfig(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "webhook", "url")
	require.NoError(t, err)
	assert.Contains(t, out, "No webhook URL")

	out, err = executeCmd(t, app, "webhook", "url", "https://hooks.example.com/shifts")
	require.NoError(t, err)
	assert.Contains(t, out, "https://hooks.example.com/shifts")

	_, err = executeCmd(t, app, "webhook", "enable")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "webhook", "url")
	require.NoError(t, err)
	assert.Contains(t, out, "enabled")

	_, err = executeCmd(t, app, "webhook", "disable")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "webhook", "url")
	require.NoError(t, err)
	assert.Contains(t, out, "disabled")
}

func TestWebhookTest_NoURL(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "webhook", "test")
	assert.ErrorIs(t, err, service.ErrNoWebhookURL)
}

// --- dashboard ---

func TestDashboard_NonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
