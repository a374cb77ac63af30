package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/merapruthvi/greenpulse/backend/internal/adapters/database"
	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/credits"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	"github.com/merapruthvi/greenpulse/backend/pkg/config"
)

// Seeds the demo user plus a few days of sample activity so the
// dashboard and analytics endpoints have data to show.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				resource_entries,
				navigation_routes,
				waste_classifications,
				irrigation_schedules,
				environmental_issues,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to truncate tables: %v", err)
		}
	}

	userRepo := database.NewUserAdapter(pgClient)
	resourceRepo := database.NewResourceAdapter(pgClient)
	routeRepo := database.NewRouteAdapter(pgClient)
	issueRepo := database.NewIssueAdapter(pgClient)

	userService := services.NewUserService(userRepo, resourceRepo, routeRepo, issueRepo)
	if err := userService.EnsureDemoUser(ctx); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	now := time.Now().UTC()
	bonus := credits.NewSource(now.UnixNano())

	resourceEntries := []*entities.ResourceEntry{
		{ResourceType: "electricity", Amount: 42, Unit: "kWh", Date: now.AddDate(0, 0, -3)},
		{ResourceType: "water", Amount: 180, Unit: "liters", Date: now.AddDate(0, 0, -2)},
		{ResourceType: "gas", Amount: 6, Unit: "m3", Date: now.AddDate(0, 0, -1)},
	}
	for _, entry := range resourceEntries {
		entry.ID = uuid.NewString()
		entry.UserID = services.DemoUserID
		entry.Credits = credits.ForResourceEntry(bonus)
		if err := resourceRepo.Create(ctx, entry); err != nil {
			log.Fatalf("Failed to seed resource entry: %v", err)
		}
	}

	routes := []*entities.NavigationRoute{
		{StartLocation: "Home", EndLocation: "Office", TransportMode: entities.TransportModeMetro, Distance: 12, CarbonEmission: 0.36, Credits: 15, Date: now.AddDate(0, 0, -2)},
		{StartLocation: "Office", EndLocation: "Market", TransportMode: entities.TransportModeCycle, Distance: 3, CarbonEmission: 0, Credits: 20, Date: now.AddDate(0, 0, -1)},
	}
	for _, route := range routes {
		route.ID = uuid.NewString()
		route.UserID = services.DemoUserID
		if err := routeRepo.Create(ctx, route); err != nil {
			log.Fatalf("Failed to seed route: %v", err)
		}
	}

	issue := &entities.EnvironmentalIssue{
		ID:          uuid.NewString(),
		UserID:      services.DemoUserID,
		Category:    "waste_dumping",
		Location:    "Riverside park",
		Description: "Construction debris dumped near the walking path.",
		Status:      entities.IssueStatusPending,
		Credits:     credits.PerIssueReport,
		CreatedAt:   now.AddDate(0, 0, -1),
	}
	if err := issueRepo.Create(ctx, issue); err != nil {
		log.Fatalf("Failed to seed issue: %v", err)
	}

	log.Println("Seeding complete")
}
