package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/loopers/member-api/config"
	"github.com/loopers/member-api/internal/application"
	pginfra "github.com/loopers/member-api/internal/infrastructure/postgres"
	"github.com/loopers/member-api/internal/infrastructure/security"
	"github.com/loopers/member-api/pkg/apperr"
	"github.com/loopers/member-api/pkg/helpers"
)

// Seeds a demo member through the domain stack so local logins work out of
// the box.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := application.NewService(
		pginfra.NewMemberRepository(pool),
		security.NewBcryptHasher(cfg.BcryptCost),
		logger,
	)

	in := application.SignupInput{
		MemberID:  "demouser1",
		Password:  "Password1!",
		Name:      "데모회원",
		Email:     "demo@example.com",
		BirthDate: "1990-06-15",
	}

	m, err := svc.Signup(ctx, in)
	if apperr.IsConflict(err) {
		fmt.Printf("demo member already seeded: memberId=%s\n", in.MemberID)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed member: %v", err)
	}
	fmt.Printf("seeded member: id=%d memberId=%s password=%s\n", m.ID(), m.MemberID().Value(), in.Password)
}
