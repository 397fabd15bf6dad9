package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "blog_api/docs"
	"blog_api/internal/handlers"
	"blog_api/internal/logger"
	"blog_api/internal/repository"
	"blog_api/internal/repository/db"
	"blog_api/internal/server"
	"blog_api/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title                       Go Blog REST API
// @version                     1.0
// @description                 Users, posts and bearer tokens.
// @BasePath                    /
// @securityDefinitions.basic   BasicAuth
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        x-access-token
func main() {
	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.format"))
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services, err := service.NewService(repos, service.Options{
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	})
	if err != nil {
		log.Fatalw("failed to init services", "err", err)
	}

	bootstrap := viper.GetBool("auth.bootstrap_mode")
	if bootstrap {
		log.Warnw("bootstrap_mode_enabled",
			"detail", "POST /user and PUT /user/:public_id accept unauthenticated requests")
	}
	apiHandler := handlers.NewHandler(services, log, handlers.Config{
		BootstrapMode: bootstrap,
		FeedInterval:  viper.GetDuration("feed.interval"),
	})

	// start HTTP server
	srv := server.New(apiHandler.InitRoutes(), server.Options{Port: viper.GetString("port")})
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetEnvPrefix("BLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "blog.db")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("log.format", logger.ConsoleFormat)
	viper.SetDefault("auth.token_ttl", service.DefaultTokenTTL)
	viper.SetDefault("auth.bootstrap_mode", true)
	viper.SetDefault("feed.interval", 2*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		// env and defaults are enough to run without a file
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	if viper.GetString("auth.signing_key") == "" {
		return errors.New("auth.signing_key is empty (set BLOG_AUTH_SIGNING_KEY)")
	}
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening sqlite", "path", dbPath)
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("server_started", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
