package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"trailbuddy/internal/api"
	"trailbuddy/pkg/catalog"
	"trailbuddy/pkg/config"
	"trailbuddy/pkg/dialogue"
	"trailbuddy/pkg/llm"
	"trailbuddy/pkg/llm/gemini"
	"trailbuddy/pkg/logging"
	"trailbuddy/pkg/narrator"
	"trailbuddy/pkg/places"
	"trailbuddy/pkg/reasoner"
	"trailbuddy/pkg/request"
	"trailbuddy/pkg/version"
	"trailbuddy/pkg/weather"
)

var (
	configPath = flag.String("config", "configs/trailbuddy.yaml", "Path to config file")
	initConfig = flag.Bool("init-config", false, "Generate default config file and exit")
	serve      = flag.Bool("serve", false, "Run the HTTP chat server instead of the interactive prompt")
)

func main() {
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated:", *configPath)
		return
	}

	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env is optional; the config file and process env still apply.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("TrailBuddy started", "version", version.Version)

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load trail catalog: %w", err)
	}
	slog.Info("catalog loaded", "trails", cat.Len(), "source", cfg.Catalog.Path)

	controller := buildController(cfg, cat)

	if *serve {
		server := api.NewServer(cfg.Server.Address, api.NewChatHandler(controller))
		slog.Info("chat server listening", "address", cfg.Server.Address)
		return server.ListenAndServe()
	}

	repl(ctx, controller)
	return nil
}

// buildController wires the collaborators. A missing or broken Gemini
// setup degrades to template-only replies and the deterministic selector;
// it never blocks startup.
func buildController(cfg *config.Config, cat *catalog.Store) *dialogue.Controller {
	var provider llm.Provider
	if cfg.LLM.Provider == "gemini" {
		client, err := gemini.NewClient(cfg.LLM)
		if err != nil {
			slog.Warn("Gemini unavailable, running with deterministic fallbacks", "error", err)
		} else if err := client.HealthCheck(context.Background()); err != nil {
			slog.Warn("Gemini not configured, running with deterministic fallbacks", "error", err)
		} else {
			provider = client
		}
	}

	weatherClient := weather.NewClient(request.New(cfg.Weather.Timeout.Std()), cfg.Weather.Endpoint)
	placesClient := places.NewClient(request.New(cfg.Places.Timeout.Std()), cfg.Places.Endpoint)

	return dialogue.NewController(
		cat,
		reasoner.New(provider),
		weatherClient,
		placesClient,
		narrator.New(provider),
		cfg.Places.RadiusM,
	)
}

func repl(ctx context.Context, controller *dialogue.Controller) {
	fmt.Println(dialogue.MsgGreeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "exit", "quit":
			fmt.Println(dialogue.MsgGoodbye)
			return
		}
		fmt.Println("Agent:", controller.HandleMessage(ctx, input))
	}
}
