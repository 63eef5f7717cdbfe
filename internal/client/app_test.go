package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resistance-accounts/internal/adapter"
	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/internal/mock"
	"github.com/MKhiriev/resistance-accounts/models"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	var out bytes.Buffer

	app, err := NewApp(serverAdapter, &out, logger.Nop())
	require.NoError(t, err)

	return app, serverAdapter, &out
}

func TestNewApp_NilAdapter(t *testing.T) {
	app, err := NewApp(nil, &bytes.Buffer{}, logger.Nop())
	assert.Nil(t, app)
	assert.Error(t, err)
}

func TestRun_Register(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	serverAdapter.EXPECT().
		Register(gomock.Any(), models.Credentials{Username: "alice", Password: "pw1"}).
		Return("Account created successfully.", nil)

	require.NoError(t, app.Run(context.Background(), []string{"register", "alice", "pw1"}))

	var got models.MessageResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Account created successfully.", got.Msg)
}

func TestRun_RegisterConflict(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", adapter.ErrConflict)

	err := app.Run(context.Background(), []string{"register", "alice", "pw1"})

	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Empty(t, out.String())
}

func TestRun_Login(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	serverAdapter.EXPECT().Login(gomock.Any(), models.Credentials{Username: "alice", Password: "pw1"}).
		Return(models.AccountInfo{ID: 1, Username: "alice"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "alice", "pw1"}))
	assert.JSONEq(t, `{"id":1,"username":"alice"}`, out.String())
}

func TestRun_Profile(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	serverAdapter.EXPECT().GetAccountInfo(gomock.Any(), "bob").
		Return(models.Profile{ID: 2, PlayerStats: models.PlayerStats{GamesLost: 4}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"profile", "bob"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.EqualValues(t, 2, got["id"])
	assert.EqualValues(t, 4, got["games_lost"])
}

func TestRun_ProfileNotFound(t *testing.T) {
	app, serverAdapter, _ := newTestApp(t)
	serverAdapter.EXPECT().GetAccountInfo(gomock.Any(), "carol").Return(models.Profile{}, adapter.ErrNotFound)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"profile", "carol"}), adapter.ErrNotFound)
}

func TestRun_Version(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	serverAdapter.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "1.0.0\n", out.String())
}

func TestRun_BadArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrUsage},
		{name: "register without password", args: []string{"register", "alice"}, wantErr: ErrUsage},
		{name: "login with empty password", args: []string{"login", "alice", ""}, wantErr: ErrUsage},
		{name: "profile without username", args: []string{"profile"}, wantErr: ErrUsage},
		{name: "unknown", args: []string{"delete", "alice"}, wantErr: ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			assert.ErrorIs(t, app.Run(context.Background(), tt.args), tt.wantErr)
		})
	}
}
