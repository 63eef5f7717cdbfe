// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resistance-accounts/internal/config"
	"github.com/MKhiriev/resistance-accounts/internal/logger"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            config.DriverPostgres,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestPlayerRepo(t *testing.T) (PlayerRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	return NewPlayerRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func profileRow(id int64, stats ...int64) []driver.Value {
	row := []driver.Value{id}
	for i := range statsColumns {
		var v int64
		if i < len(stats) {
			v = stats[i]
		}
		row = append(row, v)
	}
	return row
}

func TestExists(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    bool
		wantErr error
	}{
		{
			name: "player exists",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT 1 FROM players").
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
				mock.ExpectCommit()
			},
			want: true,
		},
		{
			name: "player does not exist",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT 1 FROM players").
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"1"}))
				mock.ExpectCommit()
			},
			want: false,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT 1 FROM players").
					WithArgs("alice").
					WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "begin error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(pgError(pgerrcode.CannotConnectNow))
			},
			wantErr: ErrBeginningTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPlayerRepo(t)
			tt.setup(mock)

			got, err := repo.Exists(context.Background(), "alice")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsert_Success(t *testing.T) {
	repo, mock := newTestPlayerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO players").
		WithArgs("alice", "$2a$07$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	id, err := repo.Insert(context.Background(), "alice", "$2a$07$hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_UniqueViolation(t *testing.T) {
	repo, mock := newTestPlayerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO players").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.Insert(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_SQLiteUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	db.dialect = config.DriverSQLite
	db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	db.errorClassificator = NewSQLiteErrorClassifier()
	repo := NewPlayerRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO players \(player_name,password_hash\) VALUES \(\?,\?\)`).
		WithArgs("alice", "hash").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
	mock.ExpectRollback()

	_, err := repo.Insert(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestPlayerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO players").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.Insert(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_CommitError(t *testing.T) {
	repo, mock := newTestPlayerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO players").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit().WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.Insert(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByName(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id, player_name, password_hash FROM players").
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "player_name", "password_hash"}).
						AddRow(int64(3), "alice", "stored-hash"))
				mock.ExpectCommit()
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id, player_name, password_hash FROM players").
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "player_name", "password_hash"}))
				mock.ExpectRollback()
			},
			wantErr: ErrPlayerNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id, player_name, password_hash FROM players").
					WithArgs("alice").
					WillReturnError(errors.New("db network error"))
				mock.ExpectRollback()
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPlayerRepo(t)
			tt.setup(mock)

			player, err := repo.FindByName(context.Background(), "alice")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(3), player.ID)
				assert.Equal(t, "alice", player.Name)
				assert.Equal(t, "stored-hash", player.PasswordHash)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindProfileByName_Success(t *testing.T) {
	repo, mock := newTestPlayerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, total_games, .* games_lost FROM players").
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(profileRow(9, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18)...))
	mock.ExpectCommit()

	profile, err := repo.FindProfileByName(context.Background(), "bob")
	require.NoError(t, err)

	assert.Equal(t, int64(9), profile.ID)
	assert.Equal(t, int64(12), profile.TotalGames)
	assert.Equal(t, int64(1), profile.FavorableMissions)
	assert.Equal(t, int64(13), profile.GamesWon)
	assert.Equal(t, int64(16), profile.TimesAsResistance)
	assert.Equal(t, int64(18), profile.GamesLost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindProfileByName_NotFound(t *testing.T) {
	repo, mock := newTestPlayerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM players").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(profileColumns))
	mock.ExpectRollback()

	_, err := repo.FindProfileByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindProfileByName_ScanError(t *testing.T) {
	repo, mock := newTestPlayerRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM players").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // intentionally wrong shape → scan error
	mock.ExpectRollback()

	_, err := repo.FindProfileByName(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_JoinsCallerTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM players").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectQuery("INSERT INTO players").
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := db.WithinTx(context.Background(), func(ctx context.Context) error {
		exists, err := repo.Exists(ctx, "alice")
		if err != nil {
			return err
		}
		require.False(t, exists)

		_, err = repo.Insert(ctx, "alice", "hash")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
