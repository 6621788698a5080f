package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/classora/classora-backend/internal/config"
	"github.com/classora/classora-backend/internal/database"
	"github.com/classora/classora-backend/internal/logger"
	"github.com/classora/classora-backend/internal/model"
	"github.com/classora/classora-backend/internal/repository"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := repository.NewTenantRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Superadmin User ===")

	// Tenant slug
	fmt.Print("Enter Tenant Slug: ")
	slug, _ := reader.ReadString('\n')
	slug = strings.TrimSpace(slug)
	if slug == "" {
		fmt.Println("Error: Tenant slug is required")
		return
	}

	tenant, err := tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		fmt.Printf("Error: Tenant '%s' not found\n", slug)
		return
	}

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check email")
	}
	if exists {
		fmt.Println("Error: Email is already in use")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 8 {
		fmt.Println("Error: Password must be at least 8 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	user := &model.User{
		TenantID:     tenant.TenantID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleSuperAdmin,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("Failed to create superadmin")
	}

	fmt.Printf("\nSuccess! Superadmin '%s' (%s) created with ID: %d in tenant '%s'\n",
		user.Name, user.Email, user.ID, tenant.Slug)
}
