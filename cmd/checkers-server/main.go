// Package main runs the checkers game server with its RESTful API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkers/internal/config"
	"checkers/internal/http"
	"checkers/internal/processor"
	"checkers/internal/service"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a JSON config file (default: XDG checkers/config.json)")
		apiHost    = flag.String("api-host", "", "API server host")
		apiPort    = flag.Int("api-port", 0, "API server port")
		dev        = flag.Bool("dev", false, "Development mode (relaxed rate limits)")
		rateLimit  = flag.Int("rate-limit", 0, "Requests per second allowed per client")
		longPoll   = flag.Int("long-poll", 0, "Long-poll timeout in seconds")
		pidPath    = flag.String("pid", "", "Optional path to write PID file")
		pidLock    = flag.Bool("pid-lock", false, "Lock PID file to allow only one instance (requires -pid)")
	)
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Explicit flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api-host":
			cfg.Server.Host = *apiHost
		case "api-port":
			cfg.Server.Port = *apiPort
		case "dev":
			cfg.Server.DevMode = *dev
		case "rate-limit":
			cfg.Server.RateLimit = *rateLimit
		case "long-poll":
			cfg.Server.LongPollSeconds = *longPoll
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *pidLock && *pidPath == "" {
		log.Fatal("Error: -pid-lock flag requires the -pid flag to be set")
	}
	if *pidPath != "" {
		release, err := writePIDFile(*pidPath, *pidLock)
		if err != nil {
			log.Fatalf("Failed to manage PID file: %v", err)
		}
		defer release()
		log.Printf("PID file created at: %s (lock: %v)", *pidPath, *pidLock)
	}

	svc := service.New(cfg.LongPollTimeout())
	proc := processor.New(svc, cfg.Server.QueueBuffer)
	app := http.NewFiberApp(proc, svc, http.Options{
		DevMode:   cfg.Server.DevMode,
		RateLimit: cfg.Server.RateLimit,
	})

	apiAddr := cfg.Addr()

	go func() {
		log.Printf("Checkers API Server starting...")
		log.Printf("API Listening on: http://%s", apiAddr)
		limit := cfg.Server.RateLimit
		if cfg.Server.DevMode {
			log.Printf("Rate Limit: %d requests/second per IP (DEV MODE)", limit*2)
		} else {
			log.Printf("Rate Limit: %d requests/second per IP", limit)
		}
		log.Printf("Long poll timeout: %v", cfg.LongPollTimeout())
		log.Printf("API Endpoints: http://%s/api/v1/games", apiAddr)
		log.Printf("Health: http://%s/health", apiAddr)

		if err := app.Listen(apiAddr); err != nil {
			log.Printf("API server listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Release long-poll clients first so the HTTP shutdown is not held up
	if err := svc.Shutdown(gracefulShutdownTimeout); err != nil {
		log.Printf("Service shutdown error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := proc.Close(gracefulShutdownTimeout); err != nil {
		log.Printf("Processor close error: %v", err)
	}

	log.Println("Server exited")
}
