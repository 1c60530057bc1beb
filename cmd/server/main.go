package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-forum/config"
	"github.com/goliatone/go-forum/httpapi"
	"github.com/goliatone/go-forum/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	repos := repository.NewManager(client.Database(cfg.MongoDatabase), cfg.GetPasswordHashCost())

	if err := repos.EnsureIndexes(ctx); err != nil {
		log.Fatalf("indexes: %v", err)
	}

	server := httpapi.New(cfg, repos.Users(), repos.Posts())

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-done
		if err := server.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := server.Listen(cfg.Address); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
