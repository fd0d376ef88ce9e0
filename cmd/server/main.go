package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/handler"
	"taskboard/internal/repository"
	"taskboard/internal/repository/memory"
	"taskboard/internal/repository/sqlite"
	"taskboard/internal/repository/surreal"
	"taskboard/internal/service"
)

// collections bundles the three entity repositories with whatever teardown
// the chosen backend needs.
type collections struct {
	todos repository.Collection[domain.Todo]
	users repository.Collection[domain.User]
	roles repository.Collection[domain.Role]
	close func()
}

func main() {
	cfgPath := flag.String("config", "", "config file path (default: discovered)")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, loadedPath, err := loadConfig(*cfgPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if loadedPath != "" {
		slog.Info("config loaded", "path", loadedPath)
	}

	stores, err := openCollections(cfg)
	if err != nil {
		slog.Error("open store", "backend", cfg.Store.Backend, "err", err)
		os.Exit(1)
	}
	defer stores.close()

	e := handler.NewRouter(
		service.NewTodos(stores.todos),
		service.NewUsers(stores.users, stores.roles),
		service.NewRoles(stores.roles, stores.users),
	)

	go func() {
		slog.Info("server listening", "addr", cfg.Listen, "store", cfg.Store.Backend)
		if err := e.Start(cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("shutdown", "err", err)
	}
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func openCollections(cfg *config.Config) (*collections, error) {
	switch cfg.Store.Backend {
	case "surreal":
		db, err := surreal.Open(surreal.Config{
			Address:   cfg.Store.Surreal.Address,
			Username:  cfg.Store.Surreal.Username,
			Password:  cfg.Store.Surreal.Password,
			Namespace: cfg.Store.Surreal.Namespace,
			Database:  cfg.Store.Surreal.Database,
		})
		if err != nil {
			return nil, err
		}
		return &collections{
			todos: surreal.NewCollection[domain.Todo](db, domain.TodoTable),
			users: surreal.NewCollection[domain.User](db, domain.UserTable),
			roles: surreal.NewCollection[domain.Role](db, domain.RoleTable),
			close: db.Close,
		}, nil

	case "sqlite":
		db, err := sqlite.Open(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &collections{
			todos: sqlite.NewTodos(db),
			users: sqlite.NewUsers(db),
			roles: sqlite.NewRoles(db),
			close: func() {
				if err := db.Close(); err != nil {
					slog.Error("close store", "err", err)
				}
			},
		}, nil

	case "memory":
		return &collections{
			todos: memory.NewTodos(),
			users: memory.NewUsers(),
			roles: memory.NewRoles(),
			close: func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
