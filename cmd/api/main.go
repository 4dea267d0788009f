// Command api runs the JWT-authenticated web API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/apibase/auth/password"
	"github.com/kbukum/apibase/auth/token"
	"github.com/kbukum/apibase/config"
	"github.com/kbukum/apibase/logger"
	"github.com/kbukum/apibase/redis"
	"github.com/kbukum/apibase/server"
	"github.com/kbukum/apibase/server/middleware"
	"github.com/kbukum/apibase/user"
	"github.com/kbukum/apibase/util"
	"github.com/kbukum/apibase/version"
)

func main() {
	configFile := flag.String("config", "", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetShortVersion())
		return
	}

	if err := run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logging)
	log.Info("Starting", map[string]interface{}{
		"app":         cfg.App.Name,
		"version":     util.Coalesce(cfg.App.Version, version.GetShortVersion()),
		"environment": cfg.App.Environment,
		"secret":      util.MaskSecret(cfg.Auth.Token.Secret, 4),
	})

	directory, closeDirectory, err := buildDirectory(cfg, log)
	if err != nil {
		return err
	}
	defer closeDirectory()

	tokens, err := token.NewService(cfg.Auth.Token)
	if err != nil {
		return err
	}
	hasher := password.NewHasher(password.WithCost(cfg.Auth.BcryptCost))

	gate := middleware.NewGate(middleware.AuthConfig{
		Codec:        tokens,
		Directory:    directory,
		ExcludePaths: cfg.Auth.ExcludePaths,
	}, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(log, cfg.RateLimit.RequestsPerMinute)

	api := srv.GinEngine().Group(cfg.App.APIPrefix)
	api.Use(gate.Middleware())
	server.NewHandlers(directory, hasher, tokens, log).Mount(api)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	srv.LogRoutes()

	<-ctx.Done()
	return srv.Stop(context.Background())
}

// buildDirectory creates the configured user directory backing. The returned
// close function releases the backing's resources.
func buildDirectory(cfg *config.Config, log *logger.Logger) (user.Directory, func(), error) {
	switch cfg.Users.Backend {
	case "redis":
		client, err := redis.New(cfg.Users.Redis, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		if err := client.Ping(context.Background()); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return user.NewRedisDirectory(client), func() { _ = client.Close() }, nil
	default:
		return user.NewMemoryDirectory(), func() {}, nil
	}
}
