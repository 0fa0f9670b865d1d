package main

import (
	"context"
	"fmt"
	"log"

	"github.com/peoplehr/hr-backend-go/internal/config"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/database"
	"github.com/peoplehr/hr-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with one account per role. Existing
// rows are left alone; re-running against a seeded database fails on
// the email unique constraint.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}
	hashed := string(hash)

	hr, err := userRepo.Create(ctx, user.User{
		Name:         "HR Admin",
		Email:        "hr@example.com",
		PasswordHash: &hashed,
		Role:         user.RoleHR,
	})
	if err != nil {
		log.Fatal("Error creating hr user: ", err)
	}

	manager, err := userRepo.Create(ctx, user.User{
		Name:         "Manager One",
		Email:        "manager@example.com",
		PasswordHash: &hashed,
		Role:         user.RoleManager,
	})
	if err != nil {
		log.Fatal("Error creating manager: ", err)
	}

	employee, err := userRepo.Create(ctx, user.User{
		Name:         "Alice Employee",
		Email:        "alice@example.com",
		PasswordHash: &hashed,
		Role:         user.RoleEmployee,
		HourlyRate:   decimal.NewFromInt(20),
		ManagerID:    &manager.ID,
	})
	if err != nil {
		log.Fatal("Error creating employee: ", err)
	}

	fmt.Printf("Seeded users:\n  hr       %s (%s)\n  manager  %s (%s)\n  employee %s (%s)\n",
		hr.ID, hr.Email, manager.ID, manager.Email, employee.ID, employee.Email)
}
