package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"thegriller/internal/app"
	"thegriller/internal/cart"
	"thegriller/internal/config"
	"thegriller/internal/directory"
	"thegriller/internal/menu"
	"thegriller/internal/order"
	"thegriller/internal/reservation"
	"thegriller/internal/router"
	"thegriller/internal/session"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	// ───────────────────────── SESSION STORAGE ─────────────────────────
	var storage session.Storage
	if cfg.RedisAddr != "" {
		storage = session.NewRedisStorage(cfg.RedisAddr)
		log.WithField("addr", cfg.RedisAddr).Info("session storage: redis")
	} else {
		storage, err = session.NewFileStorage(cfg.StateDir)
		if err != nil {
			log.WithError(err).Fatal("session storage init failed")
		}
		log.WithField("dir", cfg.StateDir).Info("session storage: file")
	}

	// ───────────────────────── CONTAINER ─────────────────────────
	a := app.New(cfg, storage, log)
	a.Start(context.Background())

	// ───────────────────────── ROUTES ─────────────────────────
	r := router.New(router.Handlers{
		Sessions:    a.Sessions,
		Session:     session.NewHandler(a.Sessions),
		Menu:        menu.NewHandler(a.Menu, a.Sessions),
		Cart:        cart.NewHandler(a.Cart, a.Menu),
		Order:       order.NewHandler(a.Orders, a.Cart),
		Reservation: reservation.NewHandler(a.Reservations),
		Directory:   directory.NewHandler(a.Directory, a.Sessions),
	})

	log.WithField("addr", cfg.ListenAddr).Info("storefront running")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
