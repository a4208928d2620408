package main

import (
	"context"
	"log"
	"os"

	"github.com/meikuraledutech/flow"
	"github.com/meikuraledutech/flow/localstore"
	"github.com/meikuraledutech/flow/postgres"
	"github.com/meikuraledutech/flow/render"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("FLOW_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var templates flow.TemplateStore
	switch cfg.TemplateStore {
	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect: %v", err)
		}
		defer pool.Close()

		pg := postgres.New(pool)
		if err := pg.CreateSchema(context.Background()); err != nil {
			log.Fatalf("schema: %v", err)
		}
		templates = pg
	default:
		templates = localstore.New(cfg.TemplatesPath)
	}

	app := newApp(flow.NewDocument(), flow.NewSessions(), render.NewRegistry(), templates)

	log.Printf("flow server listening on %s (templates: %s)", cfg.Addr, cfg.TemplateStore)
	log.Fatal(app.Listen(cfg.Addr))
}
