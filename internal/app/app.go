// Package app wires the application together: config, logging, record
// store, session registry, services, and the CLI shell.
package app

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fleamarket/internal/cli"
	"github.com/dmitrijs2005/fleamarket/internal/config"
	"github.com/dmitrijs2005/fleamarket/internal/logging"
	"github.com/dmitrijs2005/fleamarket/internal/models"
	"github.com/dmitrijs2005/fleamarket/internal/services"
	"github.com/dmitrijs2005/fleamarket/internal/session"
	"github.com/dmitrijs2005/fleamarket/internal/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Store

	Auth  *services.Auth
	Items *services.Items
	Admin *services.Admin
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	registry := session.NewRegistry()
	auth := services.NewAuth(st, registry)

	return &App{
		config: cfg,
		logger: logger,
		store:  st,
		Auth:   auth,
		Items:  services.NewItems(st, auth),
		Admin:  services.NewAdmin(st, auth),
	}, nil
}

// EnsureAdmin seeds the configured admin account when the user store is
// empty, so a fresh installation always has one administrator. Any
// existing user, admin or not, disables seeding.
func (a *App) EnsureAdmin(ctx context.Context) error {
	users, err := a.store.Users.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	a.logger.Info(ctx, "no users found, creating initial admin account", "email", a.config.AdminEmail)

	admin, err := a.Auth.Register(ctx, a.config.AdminEmail, a.config.AdminSecret, a.config.AdminName, a.config.AdminContact)
	if err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}

	_, err = a.store.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == admin.ID {
				users[i].Role = models.RoleAdmin
			}
		}
		return users, nil
	})
	if err != nil {
		return fmt.Errorf("promoting seeded admin: %w", err)
	}
	return nil
}

// Run seeds the initial admin if needed and hands control to the CLI.
func (a *App) Run(ctx context.Context) error {
	if err := a.EnsureAdmin(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "starting flea market CLI", "data_dir", a.store.Dir())
	shell := cli.NewShell(a.Auth, a.Items, a.Admin)
	shell.Root(ctx)
	return nil
}
