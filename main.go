/* main.go
 * The "main" method for running the chess tournament manager. Settings come from the environment or a .env file,
 * see config/config.go
 * Usage: go run . -mode=console|bot|web
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chess-tournament/api/api"
	"chess-tournament/api/input"
	"chess-tournament/bot"
	"chess-tournament/config"
	"chess-tournament/console"
	"chess-tournament/logger"
	"chess-tournament/web"
)

func main() {
	//Flags
	modePtr := flag.String("mode", "console", "Front end to run: console, bot or web")
	envFilePtr := flag.String("env", ".env", "Path of the .env file to load")
	flag.Parse()

	if err := run(*modePtr, *envFilePtr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(modeFlag string, envFile string) error {
	mode, err := parseMode(modeFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	a, err := api.NewAPI(cfg.DBName, cfg.MongoURI)
	if err != nil {
		return fmt.Errorf("failed to initialize API: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Store.GetClient().Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect from mongo", "error", err)
		}
	}()

	if err := a.LoadState(cfg.ClubsDir); err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	logger.Info("state loaded", "players", a.Roster.Len(), "tournaments", len(a.ListTournaments()), "mode", mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case ModeBot:
		b, err := bot.NewBot(cfg.DiscordToken, a, cfg.BotRatePerMinute)
		if err != nil {
			return err
		}
		return b.Run(ctx)
	case ModeWeb:
		return web.Start(ctx, web.Config{Addr: cfg.HTTPAddr, API: a})
	default:
		c := console.New(a, input.NewConsolePrompter(os.Stdin, os.Stdout), os.Stdout, cfg.ReportsDir)
		return c.Run()
	}
}
