package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	handler "github.com/vncsmyrnk/pollingapp/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/pollingapp/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/pollingapp/internal/core/services"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	app := newTestApp(t, repo.DriverPostgres, dbURL)
	app.DBContainer = dbContainer
	return app
}

// setupSQLiteTestApp runs the same stack on an embedded file database.
func setupSQLiteTestApp(t *testing.T) *TestApp {
	return newTestApp(t, repo.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "polling.db"))
}

func newTestApp(t *testing.T, driver, dbURL string) *TestApp {
	ctx := context.Background()

	db, err := repo.Open(ctx, repo.Options{Driver: driver, URL: dbURL, MaxOpenConns: 10})
	require.NoError(t, err)

	_, err = repo.Migrate(ctx, db, driver)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pollRepo := repo.NewPollRepository(db)
	voteRepo := repo.NewVoteRepository(db)

	pollSvc := services.NewPollService(pollRepo)
	voteSvc := services.NewVoteService(pollRepo, voteRepo)

	router := handler.NewHandler(
		handler.NewPollHandler(pollSvc, logger),
		handler.NewVoteHandler(voteSvc, logger),
		handler.NewHealthHandler(db, logger),
		logger,
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:     db,
		Server: server,
		Client: server.Client(),
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if app.DBContainer == nil {
		return
	}
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createPoll posts payload to /create_poll and returns the status and decoded body.
func (app *TestApp) createPoll(t *testing.T, payload map[string]any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := app.Client.Post(app.Server.URL+"/create_poll", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func (app *TestApp) vote(t *testing.T, target string) (int, map[string]any) {
	t.Helper()

	resp, err := app.Client.Post(app.Server.URL+target, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// addOptions inserts n options for the poll; the HTTP surface has no way to create them.
func (app *TestApp) addOptions(t *testing.T, pollID int64, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		_, err := app.DB.Exec("INSERT INTO option (poll_id) VALUES ($1)", pollID)
		require.NoError(t, err)
	}
}

func (app *TestApp) count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, app.DB.QueryRow(query, args...).Scan(&n))
	return n
}
