package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go.uber.org/dig"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/config"
	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/observability"
	"github.com/davidbz/ratecard/internal/rating"
)

// rateRequest is one line of JSON input on stdin.
type rateRequest struct {
	Provider string             `json:"provider"`
	Model    string             `json:"model"`
	Usage    domain.UsageRecord `json:"usage"`
}

func main() {
	container := buildContainer()

	err := container.Invoke(func(service *rating.Service) {
		if err := run(service); err != nil {
			log.Fatalf("ratecard failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run rates usage records read as JSON lines from stdin and writes one
// cost breakdown per line to stdout.
func run(service *rating.Service) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req rateRequest
		if err := json.Unmarshal(line, &req); err != nil {
			return fmt.Errorf("invalid request: %w", err)
		}

		ctx := observability.WithRequestID(context.Background(), observability.GenerateRequestID())
		breakdown, err := service.Rate(ctx, req.Provider, req.Model, &req.Usage)
		if err != nil {
			var unknown *domain.UnknownModelError
			if errors.As(err, &unknown) {
				// Catalog drift fails the record, not the whole stream.
				out, _ := json.Marshal(map[string]string{"error": unknown.Error()})
				fmt.Println(string(out))
				continue
			}
			return err
		}

		out, err := json.Marshal(breakdown)
		if err != nil {
			return fmt.Errorf("encoding breakdown: %w", err)
		}
		fmt.Println(string(out))
	}
	return scanner.Err()
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(cfg *config.RatingConfig) domain.EventPublisher {
		if !cfg.EmitEvents {
			return observability.NewEventBus(nil)
		}
		return observability.NewEventBus(slog.Default())
	}); err != nil {
		log.Fatalf("Failed to provide event publisher: %v", err)
	}

	// Pricing catalog
	if err := container.Provide(func(cfg *config.CatalogConfig) (*catalog.Catalog, error) {
		if cfg.Path != "" {
			return catalog.LoadFile(cfg.Path)
		}
		return catalog.Load()
	}); err != nil {
		log.Fatalf("Failed to provide catalog: %v", err)
	}

	// Rating engine and service
	if err := container.Provide(rating.NewEngine); err != nil {
		log.Fatalf("Failed to provide rating engine: %v", err)
	}
	if err := container.Provide(rating.NewService); err != nil {
		log.Fatalf("Failed to provide rating service: %v", err)
	}

	return container
}
