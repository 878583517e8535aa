package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"devsa-hub/backend/internal/config"
	"devsa-hub/backend/internal/domain/access"
	"devsa-hub/backend/internal/domain/event"
	"devsa-hub/backend/internal/domain/principal"
	"devsa-hub/backend/internal/firebase"
	"devsa-hub/backend/internal/seed"

	"github.com/joho/godotenv"
)

// seed-admin provisions the reserved super-admin record and writes the
// flagship static events into Firestore. Run once per environment.
func main() {
	email := flag.String("email", "", "super-admin email (defaults to SUPER_ADMIN_EMAIL)")
	skipEvents := flag.Bool("skip-events", false, "do not write the static events")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()

	target := *email
	if target == "" {
		target = cfg.SuperAdminEmail
	}
	if target == "" {
		log.Fatal("super-admin email is required: -email=you@example.com or SUPER_ADMIN_EMAIL")
	}

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase init failed: %v", err)
	}
	defer clients.Firestore.Close()

	now := time.Now().UTC()
	principalRepo := principal.NewRepo(clients.Firestore)

	p, err := principalRepo.Put(ctx, principal.Principal{
		Email:       target,
		Name:        "Super Admin",
		Role:        string(access.RoleSuperAdmin),
		IsProtected: true,
		ApprovedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		log.Fatalf("seed super-admin: %v", err)
	}
	fmt.Println("ok: super-admin provisioned for", p.Email)

	if *skipEvents {
		return
	}

	eventRepo := event.NewRepo(clients.Firestore)
	for _, e := range seed.Events() {
		e.CreatedAt = now
		e.UpdatedAt = now
		if _, err := eventRepo.Put(ctx, e); err != nil {
			log.Fatalf("seed event %s: %v", e.ID, err)
		}
		fmt.Println("ok: static event written:", e.Slug)
	}
}
