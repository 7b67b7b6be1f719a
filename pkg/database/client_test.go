package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a fully migrated test database client. It reuses the
// shared test container (or CI_DATABASE_URL) via test/util and layers the
// custom indexes that ent auto-migration cannot express on top of the
// generated schema.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))

	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	now := time.Now()

	ef1, err := client.EventFamily.Create().
		SetID("ef-1").
		SetEfKey("c0ffee01").
		SetTheater("EUROPE").
		SetEventType("MILITARY_OP").
		SetHeadline("Missile strikes hit port infrastructure").
		SetSummary("Overnight strikes damaged production facilities near the harbor district.").
		SetConfidence(0.9).
		SetTitleCount(3).
		SetFirstSeenAt(now).
		SetCreatedByRunID("run-1").
		SetUpdatedByRunID("run-1").
		Save(ctx)
	require.NoError(t, err)

	ef2, err := client.EventFamily.Create().
		SetID("ef-2").
		SetEfKey("c0ffee02").
		SetTheater("MIDEAST").
		SetEventType("DIPLOMACY").
		SetHeadline("Ceasefire talks resume in Cairo").
		SetSummary("Negotiators discussed humanitarian corridors and prisoner exchanges.").
		SetConfidence(0.8).
		SetTitleCount(2).
		SetFirstSeenAt(now).
		SetCreatedByRunID("run-1").
		SetUpdatedByRunID("run-1").
		Save(ctx)
	require.NoError(t, err)

	// Headline+summary search uses the english configuration, matching the
	// GIN index expression.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT ef_id FROM event_families
		WHERE to_tsvector('english', headline || ' ' || summary) @@ to_tsquery('english', $1)`,
		"strikes & production",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var efID string
		require.NoError(t, rows.Scan(&efID))
		results = append(results, efID)
	}

	assert.Len(t, results, 1)
	assert.Equal(t, ef1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT ef_id FROM event_families
		WHERE to_tsvector('english', headline || ' ' || summary) @@ to_tsquery('english', $1)`,
		"negotiators",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results2 := []string{}
	for rows2.Next() {
		var efID string
		require.NoError(t, rows2.Scan(&efID))
		results2 = append(results2, efID)
	}

	assert.Len(t, results2, 1)
	assert.Equal(t, ef2.ID, results2[0])
}

func TestTitleTextSearch_Multilingual(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	now := time.Now()

	t1, err := client.Title.Create().
		SetID("title-ru-1").
		SetURLHash("hash-ru-1").
		SetTitleText("Переговоры о перемирии возобновились в Каире").
		SetLang("ru").
		SetSourceName("tass").
		SetPublishedAt(now).
		Save(ctx)
	require.NoError(t, err)

	t2, err := client.Title.Create().
		SetID("title-en-1").
		SetURLHash("hash-en-1").
		SetTitleText("Ceasefire monitors deployed along the border").
		SetLang("en").
		SetSourceName("reuters").
		SetPublishedAt(now).
		Save(ctx)
	require.NoError(t, err)

	// Title text is multilingual, so the index uses the simple configuration
	// (no stemming, works for any script).
	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT title_id FROM titles
			WHERE to_tsvector('simple', title_text) @@ to_tsquery('simple', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		return ids
	}

	assert.Equal(t, []string{t1.ID}, search("перемирии"))
	assert.Equal(t, []string{t2.ID}, search("ceasefire"))
}

func TestActiveEFKeyUniqueness(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	newEF := func(id string) *ent.EventFamilyCreate {
		return client.EventFamily.Create().
			SetID(id).
			SetEfKey("deadbeef01").
			SetTheater("EUROPE").
			SetEventType("MILITARY_OP").
			SetHeadline("Strikes reported across the region").
			SetSummary("Multiple strikes reported across the eastern region.").
			SetConfidence(0.8).
			SetTitleCount(2).
			SetFirstSeenAt(time.Now()).
			SetCreatedByRunID("run-1").
			SetUpdatedByRunID("run-1")
	}

	// First active EF claims the key.
	_, err := newEF("ef-a").Save(ctx)
	require.NoError(t, err)

	// A second active EF with the same key and no parent is rejected.
	_, err = newEF("ef-b").Save(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")

	// Split siblings carry a parent and may share the key while active.
	_, err = newEF("ef-c").SetParentEfID("ef-parent").Save(ctx)
	require.NoError(t, err)

	// Retired EFs no longer occupy the key.
	_, err = newEF("ef-d").
		SetStatus(eventfamily.StatusMerged).
		SetMergedIntoID("ef-a").
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"SNI_DB_PASSWORD": "test",
			},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"SNI_DB_HOST":           "db.example.com",
				"SNI_DB_PORT":           "5433",
				"SNI_DB_USER":           "admin",
				"SNI_DB_PASSWORD":       "secret",
				"SNI_DB_NAME":           "production",
				"SNI_DB_SSLMODE":        "require",
				"SNI_DB_MAX_OPEN_CONNS": "50",
				"SNI_DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name: "invalid SNI_DB_PORT",
			envVars: map[string]string{
				"SNI_DB_PORT":     "invalid",
				"SNI_DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid SNI_DB_PORT",
		},
		{
			name: "invalid SNI_DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"SNI_DB_MAX_OPEN_CONNS": "not_a_number",
				"SNI_DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid SNI_DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid SNI_DB_MAX_IDLE_CONNS",
			envVars: map[string]string{
				"SNI_DB_MAX_IDLE_CONNS": "abc123",
				"SNI_DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid SNI_DB_MAX_IDLE_CONNS",
		},
		{
			name: "invalid SNI_DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"SNI_DB_CONN_MAX_LIFETIME": "invalid_duration",
				"SNI_DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid SNI_DB_CONN_MAX_LIFETIME",
		},
		{
			name: "invalid SNI_DB_CONN_MAX_IDLE_TIME",
			envVars: map[string]string{
				"SNI_DB_CONN_MAX_IDLE_TIME": "not_a_duration",
				"SNI_DB_PASSWORD":           "test",
			},
			wantErr:     true,
			errContains: "invalid SNI_DB_CONN_MAX_IDLE_TIME",
		},
		{
			name: "missing password",
			envVars: map[string]string{
				"SNI_DB_PASSWORD": "",
			},
			wantErr:     true,
			errContains: "SNI_DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear all DB-related env vars
			envKeys := []string{
				"SNI_DB_HOST", "SNI_DB_PORT", "SNI_DB_USER", "SNI_DB_PASSWORD", "SNI_DB_NAME", "SNI_DB_SSLMODE",
				"SNI_DB_MAX_OPEN_CONNS", "SNI_DB_MAX_IDLE_CONNS",
				"SNI_DB_CONN_MAX_LIFETIME", "SNI_DB_CONN_MAX_IDLE_TIME",
			}
			for _, key := range envKeys {
				os.Unsetenv(key)
			}

			// Set test env vars
			for key, val := range tt.envVars {
				if val != "" {
					os.Setenv(key, val)
				}
			}

			// Cleanup after test
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				// Verify defaults are applied
				if tt.name == "valid config with defaults" {
					assert.Equal(t, "localhost", cfg.Host)
					assert.Equal(t, 5432, cfg.Port)
					assert.Equal(t, "sni", cfg.User)
					assert.Equal(t, "sni", cfg.Database)
					assert.Equal(t, 25, cfg.MaxOpenConns)
					assert.Equal(t, 10, cfg.MaxIdleConns)
				}
			}
		})
	}
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.NotNil(t, health)

	// Response time is in milliseconds (can be 0 for very fast local pings)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0), "response time should be non-negative")
	assert.Less(t, health.ResponseTime, int64(1000), "response time should be less than 1 second for a local ping")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	// If these were nanoseconds, the values would exceed 1,000,000
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0))
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
	assert.Less(t, waitDuration, float64(1000000), "wait_duration_ms should be in milliseconds, not nanoseconds")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "sni",
				Password:     "test",
				Database:     "sni",
				SSLMode:      "disable",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "sni",
				Password:     "",
				Database:     "sni",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "sni",
				Password:     "test",
				Database:     "sni",
				MaxOpenConns: 5,
				MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "sni",
				Password:     "test",
				Database:     "sni",
				MaxOpenConns: 0,
				MaxIdleConns: 0,
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "sni",
				Password:     "test",
				Database:     "sni",
				MaxOpenConns: 10,
				MaxIdleConns: -1,
			},
			wantErr: true,
		},
		{
			name: "port out of range",
			cfg: Config{
				Host:         "localhost",
				Port:         70000,
				User:         "sni",
				Password:     "test",
				Database:     "sni",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
