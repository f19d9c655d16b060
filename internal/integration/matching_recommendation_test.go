package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"skill-match/internal/app"
	"skill-match/internal/config"
	"skill-match/internal/database"
	"skill-match/internal/database/migration"
	dbpostgres "skill-match/internal/database/postgres"
	"skill-match/migrations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	Token string `json:"token"`
	User  struct {
		ID string `json:"id"`
	} `json:"user"`
}

type rankedItem struct {
	Job struct {
		ID string `json:"id"`
	} `json:"job"`
	Match struct {
		MatchPercentage int      `json:"matchPercentage"`
		MissingSkillIDs []string `json:"missingSkillIds"`
	} `json:"match"`
}

// TestIntegration_DashboardOverPostgres registers an employer and a job
// seeker, posts the three demo jobs and checks the seeker's matches.
func TestIntegration_DashboardOverPostgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, cfg := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	_, err := migration.Runner{FS: migrations.FS}.Run(ctx, db.SQLDB())
	require.NoError(t, err)

	c := app.Assemble(ctx, cfg, zaptest.NewLogger(t), db)
	srv := app.New(c)

	suffix := uuid.NewString()[:8]
	employer := call[authData](t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email": "employer-" + suffix + "@example.com", "password": "employer-pass", "name": "Acme", "role": "employer",
	}, http.StatusCreated)
	seeker := call[authData](t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email": "seeker-" + suffix + "@example.com", "password": "seeker-pass", "name": "Sam",
	}, http.StatusCreated)
	defer cleanupUsers(t, db, employer.User.ID, seeker.User.ID)

	// Created oldest first so the newest-first corpus order is job-1, job-2, job-3.
	specs := []struct {
		key       string
		required  []string
		preferred []string
	}{
		{"job-3", []string{"JavaScript", "React", "Redux", "TypeScript"}, nil},
		{"job-2", []string{"JavaScript", "React", "Node.js", "Express"}, nil},
		{"job-1", []string{"JavaScript", "React", "HTML", "CSS"}, []string{"TypeScript", "Redux"}},
	}
	keyByID := map[string]string{}
	for _, s := range specs {
		created := call[struct {
			ID string `json:"id"`
		}](t, srv, http.MethodPost, "/api/v1/jobs", employer.Token, map[string]any{
			"title":           "Developer " + s.key,
			"company":         "Acme " + suffix,
			"requiredSkills":  s.required,
			"preferredSkills": s.preferred,
		}, http.StatusCreated)
		keyByID[created.ID] = s.key
		time.Sleep(5 * time.Millisecond)
	}
	defer cleanupJobs(t, db, keyByID)

	for _, name := range []string{"javascript", " React ", "NODE.JS"} {
		call[json.RawMessage](t, srv, http.MethodPost, "/api/v1/me/skills", seeker.Token, map[string]any{"name": name}, http.StatusCreated)
	}
	call[json.RawMessage](t, srv, http.MethodPost, "/api/v1/me/skills", seeker.Token, map[string]any{"name": "React"}, http.StatusConflict)

	ranked := call[[]rankedItem](t, srv, http.MethodGet, "/api/v1/me/matches", seeker.Token, nil, http.StatusOK)

	var order []string
	scores := map[string]int{}
	for _, it := range ranked {
		key, ok := keyByID[it.Job.ID]
		if !ok {
			continue
		}
		order = append(order, key)
		scores[key] = it.Match.MatchPercentage
	}
	assert.Equal(t, []string{"job-2", "job-1", "job-3"}, order)
	assert.Equal(t, map[string]int{"job-1": 50, "job-2": 75, "job-3": 50}, scores)

	filtered := call[[]rankedItem](t, srv, http.MethodGet, "/api/v1/me/matches?min_score=70", seeker.Token, nil, http.StatusOK)
	for _, it := range filtered {
		assert.GreaterOrEqual(t, it.Match.MatchPercentage, 70)
	}

	recs := call[[]struct {
		Name string `json:"name"`
	}](t, srv, http.MethodGet, "/api/v1/me/recommendations/skills?limit=10", seeker.Token, nil, http.StatusOK)
	names := map[string]bool{}
	for _, r := range recs {
		names[r.Name] = true
	}
	assert.False(t, names["JavaScript"] || names["React"] || names["Node.js"], "owned skills must not be recommended")
	assert.True(t, names["TypeScript"])
}

func connectTestDB(t *testing.T, ctx context.Context) (database.DB, config.Config) {
	t.Helper()

	host := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_PORT"), stringsOrDefault(os.Getenv("DB_PORT"), "5432"))
	name := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_SSL_MODE"), stringsOrDefault(os.Getenv("DB_SSL_MODE"), "disable"))

	if host == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set SKILLMATCH_TEST_DB_HOST/NAME/USER/PASSWORD (or DB_HOST/DB_NAME/DB_USER/DB_PASSWORD)")
	}

	cfg := config.Config{
		App: config.AppConfig{AppName: "skill-match-test", Environment: "test", HTTPPort: "0"},
		Database: config.DatabaseConfig{
			DBHost:     host,
			DBPort:     port,
			DBName:     name,
			DBUser:     user,
			DBPassword: pass,
			DBSSLMode:  ssl,
		},
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessExpiresIn:  time.Minute,
			RefreshExpiresIn: time.Hour,
		},
		Engine: config.EngineConfig{Workers: 2, ParallelThreshold: 1},
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	require.NoError(t, err)
	return db, cfg
}

func call[T any](t *testing.T, srv *app.App, method, path, token string, body any, wantStatus int) T {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, env.Message)

	var out T
	if resp.StatusCode < 300 && len(env.Data) > 0 && string(env.Data) != "null" {
		require.NoError(t, json.Unmarshal(env.Data, &out))
	}
	return out
}

func cleanupJobs(t *testing.T, db database.DB, ids map[string]string) {
	t.Helper()
	for id := range ids {
		_, _ = db.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1::uuid`, id)
	}
}

func cleanupUsers(t *testing.T, db database.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, _ = db.Exec(context.Background(), `DELETE FROM users WHERE id = $1::uuid`, id)
	}
}

func stringsOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
