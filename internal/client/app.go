package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/resistance-accounts/internal/adapter"
	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/models"
)

var _ Client = (*App)(nil)

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	logger *logger.Logger
}

// NewApp builds a client that talks to the server through serverAdapter and
// prints command results to out.
func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, fmt.Errorf("client app: nil server adapter")
	}

	return &App{adapter: serverAdapter, out: out, logger: logger}, nil
}

// Run executes one command:
//
//	register <username> <password>
//	login <username> <password>
//	profile <username>
//	version
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	switch command {
	case "register":
		credentials, err := credentialsFromArgs(rest)
		if err != nil {
			return err
		}
		msg, err := a.adapter.Register(ctx, credentials)
		if err != nil {
			return fmt.Errorf("register %q: %w", credentials.Username, err)
		}
		return a.print(models.MessageResponse{Msg: msg})

	case "login":
		credentials, err := credentialsFromArgs(rest)
		if err != nil {
			return err
		}
		info, err := a.adapter.Login(ctx, credentials)
		if err != nil {
			return fmt.Errorf("login %q: %w", credentials.Username, err)
		}
		return a.print(info)

	case "profile":
		if len(rest) != 1 {
			return ErrUsage
		}
		profile, err := a.adapter.GetAccountInfo(ctx, rest[0])
		if err != nil {
			return fmt.Errorf("profile %q: %w", rest[0], err)
		}
		return a.print(profile)

	case "version":
		version, err := a.adapter.Version(ctx)
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		_, err = fmt.Fprintln(a.out, version)
		return err

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func credentialsFromArgs(args []string) (models.Credentials, error) {
	if len(args) != 2 || args[0] == "" || args[1] == "" {
		return models.Credentials{}, ErrUsage
	}
	return models.Credentials{Username: args[0], Password: args[1]}, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
