// Bootstrap an admin account.
//
// Admin routes are role-gated, so a fresh deployment has no way to mint
// its first admin through the API. Run this once against the configured
// database:
//
//	go run scripts/create_admin.go -email admin@example.com -password ...

package main

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/database"
	"coursehub_backend/pkg/logger"
	"errors"
	"flag"
	"log"
	"os"
)

func main() {
	name := flag.String("name", "Administrator", "display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password, at least 8 characters (required)")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	auth := service.NewAuthService(repository.NewUserRepository(db), nil, cfg)

	user := &model.User{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     model.Admin,
	}
	if err := auth.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			log.Fatalf("%s is already registered", *email)
		}
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin %s created (id %d)", *email, user.ID)
}
