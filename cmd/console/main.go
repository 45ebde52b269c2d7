// Command console runs the portfolio workspace without the HTTP server: it
// signs in, loads the account's portfolios, and prints a summary. Useful for
// smoke-testing a deployment's stores and for demoing the seeded data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/craftfolio/portfolio-system/internal/core/ports"
	"github.com/craftfolio/portfolio-system/internal/core/service"
	"github.com/craftfolio/portfolio-system/internal/core/state"
	"github.com/craftfolio/portfolio-system/internal/infrastructure/db/memory"
	mongostore "github.com/craftfolio/portfolio-system/internal/infrastructure/db/mongo"
	redisstore "github.com/craftfolio/portfolio-system/internal/infrastructure/db/redis"
	"github.com/craftfolio/portfolio-system/internal/pkg/config"
	"github.com/craftfolio/portfolio-system/pkg/logger"
)

const sessionTTL = 24 * time.Hour

func main() {
	email := flag.String("email", memory.DemoEmail, "account email")
	password := flag.String("password", memory.DemoPassword, "account password")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "portfolio-console",
	})

	ctx := context.Background()

	var (
		portfolioRepo ports.PortfolioRepository
		authRepo      ports.AuthRepository
		sessions      ports.SessionStore
	)

	switch cfg.StoreMode {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		portfolioRepo = mongostore.NewPortfolioRepository(db)
		authRepo = mongostore.NewAuthRepository(db)

		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		sessions = redisstore.NewSessionStore(rdb, sessionTTL)

	case "memory":
		seeded, err := memory.NewSeededAuthRepository()
		if err != nil {
			log.Fatal().Err(err).Msg("demo account seeding failed")
		}
		authRepo = seeded
		portfolioRepo = memory.NewSeededPortfolioRepository(memory.DemoUser().ID)
		sessions = memory.NewSessionStore()

	default:
		log.Fatal().Str("store_mode", cfg.StoreMode).Msg("unknown store mode")
	}

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, sessionTTL)
	identity := service.NewIdentity(authService, sessions)

	session := state.NewSessionState(identity, log)
	portfolios := state.NewPortfolioState(portfolioRepo, log)

	session.Login(ctx, ports.Credentials{Email: *email, Password: *password})
	snap := session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Fprintf(os.Stderr, "login failed: %s\n", snap.Err)
		os.Exit(1)
	}
	fmt.Printf("signed in as %s <%s>\n", snap.User.Username, snap.User.Email)

	portfolios.FetchUserPortfolios(ctx, snap.User.ID)
	pSnap := portfolios.Snapshot()
	if pSnap.Err != "" {
		fmt.Fprintf(os.Stderr, "loading portfolios failed: %s\n", pSnap.Err)
		os.Exit(1)
	}

	fmt.Printf("%d portfolio(s):\n", len(pSnap.Portfolios))
	for _, p := range pSnap.Portfolios {
		visibility := "private"
		if p.IsPublic {
			visibility = "public"
		}
		fmt.Printf("  %-40s  /p/%-20s  %s  %d section(s)\n", p.Title, p.Slug, visibility, len(p.Sections))
	}

	session.Logout(ctx)
	if session.Snapshot().IsAuthenticated {
		fmt.Fprintln(os.Stderr, "logout did not clear the session")
		os.Exit(1)
	}
	fmt.Println("signed out")
}
