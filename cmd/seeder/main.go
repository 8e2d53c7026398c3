package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/locvowork/gestao_rh/internal/bootstrap"
	"github.com/locvowork/gestao_rh/internal/database"
	"github.com/locvowork/gestao_rh/internal/logger"
)

func main() {
	// Define flags
	action := flag.String("action", "seed", "Action to perform: migrate, seed, clear, reindex")
	yes := flag.Bool("yes", false, "Skip the confirmation prompt of clear")

	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 Gestão RH Data Seeder")
	fmt.Println(strings.Repeat("=", 50))

	// Initialize app
	fmt.Println("📡 Initializing application...")
	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, err, "Failed to initialize application")
		log.Fatal(err)
	}
	defer app.Shutdown(context.Background())

	seeder := database.NewDataSeeder(app.DB, app.Repos)

	// Execute action
	switch *action {
	case "migrate":
		performMigrate(ctx, app)

	case "seed":
		if _, err := seeder.SeedData(ctx); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}

	case "clear":
		performClear(ctx, seeder, *yes)

	case "reindex":
		performReindex(ctx, app, seeder)

	default:
		fmt.Printf("❌ Unknown action: %s\n", *action)
		flag.PrintDefaults()
		return
	}

	fmt.Println("\n✅ Done!")
}

func performMigrate(ctx context.Context, app *bootstrap.App) {
	if app.DB == nil {
		log.Fatal("❌ migrate needs STORE_DRIVER=postgres")
	}
	if err := database.Migrate(ctx, app.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Schema applied")
}

func performClear(ctx context.Context, seeder *database.DataSeeder, yes bool) {
	if !yes {
		fmt.Println("⚠️  This will delete all colaboradores, ferias, documentos, departamentos and cargos!")
		fmt.Print("Continue? (yes/no): ")

		var response string
		fmt.Scanln(&response)

		if response != "yes" {
			fmt.Println("Cancelled.")
			return
		}
	}

	if err := seeder.ClearData(ctx); err != nil {
		log.Fatalf("❌ Clear failed: %v", err)
	}
}

func performReindex(ctx context.Context, app *bootstrap.App, seeder *database.DataSeeder) {
	index, ok := app.Index.(database.BulkIndexer)
	if !ok {
		log.Fatal("❌ Search index is not available, check ELASTIC_URL")
	}
	if _, err := seeder.Reindex(ctx, index); err != nil {
		log.Fatalf("❌ Reindex failed: %v", err)
	}
}
