// Package app assembles the process-wide application state: one
// container built at startup and passed by reference to everything
// that consumes it. No package-level singletons, so tests can build
// isolated instances.
package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"thegriller/internal/cart"
	"thegriller/internal/config"
	"thegriller/internal/directory"
	"thegriller/internal/menu"
	"thegriller/internal/order"
	"thegriller/internal/remote"
	"thegriller/internal/reservation"
	"thegriller/internal/session"
)

// App aggregates the stores. Cart, orders and reservations live only
// in memory for the process lifetime; the menu is a cache of remote
// truth; the session is mirrored to durable storage.
type App struct {
	Remote       *remote.Client
	Menu         *menu.Store
	Cart         *cart.Store
	Orders       *order.Store
	Reservations *reservation.Store
	Sessions     *session.Store
	Directory    *directory.Service

	log *logrus.Logger
}

func New(cfg *config.Config, storage session.Storage, log *logrus.Logger) *App {
	client := remote.NewClient(cfg.RemoteBaseURL, cfg.RequestTimeout, log)

	return &App{
		Remote:       client,
		Menu:         menu.NewStore(client),
		Cart:         cart.NewStore(),
		Orders:       order.NewStore(),
		Reservations: reservation.NewStore(),
		Sessions:     session.NewStore(client, storage, log),
		Directory:    directory.NewService(client),
		log:          log,
	}
}

// Start restores the session from durable storage and performs the
// initial menu fetch. Neither failure is fatal: the storefront stays
// up with an empty session or an empty menu and its error flag set.
func (a *App) Start(ctx context.Context) {
	if err := a.Sessions.Restore(); err != nil {
		a.log.WithError(err).Warn("could not restore session")
	} else if user := a.Sessions.Current(); user != nil {
		a.log.WithField("email", user.Email).Info("session restored")
	}

	if err := a.Menu.Refresh(ctx); err != nil {
		a.log.WithError(err).Warn("initial menu fetch failed")
	} else {
		a.log.WithField("items", len(a.Menu.Items())).Info("menu loaded")
	}
}
