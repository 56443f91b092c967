package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cuongbtq/jobs-api/internal/api/auth"
	"github.com/cuongbtq/jobs-api/internal/config"
	"github.com/joho/godotenv"
)

// issue-token prints a bearer token signed with the API's configured secret.
func main() {
	_ = godotenv.Load()

	defaultConfigPath := os.Getenv("API_SERVICE_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/api-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	username := flag.String("user", "admin", "Username placed in the token")
	isAdmin := flag.Bool("admin", true, "Grant admin privileges")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth jwt_secret is not set")
	}

	token, err := auth.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).
		IssueToken(*username, *isAdmin)
	if err != nil {
		log.Fatal("failed to issue token: ", err)
	}

	fmt.Println("Token issued successfully!")
	fmt.Println("======================================")
	fmt.Printf("Username: %s\n", *username)
	fmt.Printf("Admin:    %t\n", *isAdmin)
	fmt.Printf("Expires:  %s\n", cfg.Auth.TokenTTL)
	fmt.Printf("Token:    %s\n", token)
	fmt.Println("======================================")
}
