package main

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/joho/godotenv"

    "github.com/peertrade/escrow-service/internal/app/background"
    "github.com/peertrade/escrow-service/internal/app/setup"
    delivery "github.com/peertrade/escrow-service/internal/delivery/http"
    "github.com/peertrade/escrow-service/internal/infrastructure/migrate"
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("failed to load .env")
    }

    deps, err := setup.InitializeDependencies()
    if err != nil {
        log.Fatalf("failed to init dependencies: %v", err)
    }

    if deps.Config.EscrowDB.MigrationsPath != "" {
        if err := migrate.RunMigrations(deps.DB, deps.Config.EscrowDB.MigrationsPath); err != nil {
            log.Fatalf("failed to run migrations: %v", err)
        }
    }

    useCases, err := setup.InitializeUseCases(deps)
    if err != nil {
        log.Fatalf("failed to init use cases: %v", err)
    }

    tasks := background.NewBackgroundTasks(
        useCases.EscrowUsecase,
        useCases.TrustUsecase,
        deps.Metrics,
        time.Duration(deps.Config.Settlement.SweepIntervalSeconds)*time.Second,
        time.Duration(deps.Config.Settlement.TrustRetryIntervalSeconds)*time.Second,
    )
    tasks.StartAll(context.Background())

    router := delivery.NewRouter(useCases)
    addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
    log.Printf("escrow-service listening on %s\n", addr)
    if err := router.Run(addr); err != nil {
        log.Fatalf("http server stopped: %v", err)
    }
}
