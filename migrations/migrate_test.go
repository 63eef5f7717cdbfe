// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query fails

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DialectSQLite))
	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	_, err = db.Exec(`INSERT INTO players (player_name, password_hash) VALUES ('alice', 'h')`)
	require.NoError(t, err)

	var totalGames, gamesLost int64
	require.NoError(t, db.QueryRow(`SELECT total_games, games_lost FROM players WHERE player_name = 'alice'`).
		Scan(&totalGames, &gamesLost))
	assert.Zero(t, totalGames)
	assert.Zero(t, gamesLost)

	t.Run("unique player name", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO players (player_name, password_hash) VALUES ('alice', 'h2')`)
		assert.Error(t, err)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO players (player_name, password_hash) VALUES ('Alice', 'h3')`)
		assert.NoError(t, err)
	})

	t.Run("counters are non negative", func(t *testing.T) {
		_, err := db.Exec(`UPDATE players SET total_games = -1 WHERE player_name = 'alice'`)
		assert.Error(t, err)
	})
}
