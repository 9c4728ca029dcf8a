package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"roofsite/internal/auth"
	"roofsite/internal/config"
	"roofsite/internal/database"
	"roofsite/internal/models"
	"roofsite/internal/websocket"
)

const (
	testSecret   = "api_test_secret"
	testUsername = "owner"
	testPassword = "correct-horse"
)

type fakeBrowser struct {
	tables    []models.Table
	tablesErr error
	rowsErr   error
	result    *models.RowsResult

	mu         sync.Mutex
	lastTable  string
	lastParams database.RowsParams
	lastLimit  int
}

func (f *fakeBrowser) Tables(ctx context.Context) ([]models.Table, error) {
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	return f.tables, nil
}

func (f *fakeBrowser) ListBaseTables(ctx context.Context) []models.Table {
	if f.tablesErr != nil {
		return []models.Table{}
	}
	return f.tables
}

func (f *fakeBrowser) known(table string) bool {
	for _, t := range f.tables {
		if t.Name == table {
			return true
		}
	}
	return false
}

func (f *fakeBrowser) Rows(ctx context.Context, table string, p database.RowsParams) (*models.RowsResult, error) {
	f.mu.Lock()
	f.lastTable, f.lastParams = table, p
	f.mu.Unlock()

	if !f.known(table) {
		return nil, database.ErrInvalidTable
	}
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.result, nil
}

func (f *fakeBrowser) Sample(ctx context.Context, table string, limit int) (*models.RowsResult, error) {
	f.mu.Lock()
	f.lastTable, f.lastLimit = table, limit
	f.mu.Unlock()

	if !f.known(table) {
		return nil, database.ErrInvalidTable
	}
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.result, nil
}

type fakeHealth struct {
	ok  bool
	err error
}

func (f *fakeHealth) Ping(ctx context.Context) (bool, error) {
	return f.ok, f.err
}

func (f *fakeHealth) CheckHealth(ctx context.Context) (bool, time.Time, error) {
	return f.ok, time.Now(), f.err
}

type fakeLeads struct {
	configured bool
	insertErr  error
	listErr    error
	leads      []models.Inspection

	mu       sync.Mutex
	inserted []models.NewInspection
}

func (f *fakeLeads) Configured() bool { return f.configured }

func (f *fakeLeads) Insert(ctx context.Context, in models.NewInspection) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, in)
	return nil
}

func (f *fakeLeads) List(ctx context.Context) ([]models.Inspection, error) {
	return f.leads, f.listErr
}

type testEnv struct {
	server  *Server
	handler http.Handler
	browser *fakeBrowser
	health  *fakeHealth
	leads   *fakeLeads
	hub     *websocket.Hub
}

func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{Secret: testSecret},
		Admin:       config.AdminConfig{Username: testUsername, Password: testPassword},
	}
	for _, m := range mutate {
		m(cfg)
	}

	env := &testEnv{
		browser: &fakeBrowser{
			tables: []models.Table{{Name: "inspections", Schema: "public"}, {Name: "widgets", Schema: "public"}},
			result: &models.RowsResult{
				Rows:       []map[string]any{{"id": "1", "name": "A"}},
				TotalCount: 1,
				Columns:    []string{"id", "name"},
			},
		},
		health: &fakeHealth{ok: true},
		leads:  &fakeLeads{configured: true},
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	env.hub = websocket.NewHub(zerolog.Nop())
	go env.hub.Run(ctx)

	attempts := auth.NewMemoryAttemptStore(auth.NewLimitPolicy(5, time.Minute))
	t.Cleanup(attempts.Stop)

	env.server = NewServer(cfg, Deps{
		Browser:  env.browser,
		Health:   env.health,
		Leads:    env.leads,
		Attempts: attempts,
		Hub:      env.hub,
	}, zerolog.Nop())
	env.handler = env.server.Router()
	return env
}

func (e *testEnv) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateSessionToken(testUsername, testSecret)
	require.NoError(t, err)
	return auth.SessionCookieName + "=" + token
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "relation \"secret_table\" does not exist", Detail: "detail"}
}

var errTransport = errors.New("dial tcp: connection refused")
