package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devsa-hub/backend/internal/config"
	"devsa-hub/backend/internal/domain/accessrequest"
	"devsa-hub/backend/internal/domain/community"
	"devsa-hub/backend/internal/domain/event"
	"devsa-hub/backend/internal/domain/newsletter"
	"devsa-hub/backend/internal/domain/principal"
	"devsa-hub/backend/internal/domain/rsvp"
	"devsa-hub/backend/internal/domain/speaker"
	"devsa-hub/backend/internal/domain/stats"
	"devsa-hub/backend/internal/firebase"
	"devsa-hub/backend/internal/handlers"
	apihttp "devsa-hub/backend/internal/http"
	"devsa-hub/backend/internal/magen"
	"devsa-hub/backend/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase init failed: %v", err)
	}
	defer clients.Firestore.Close()

	// Repositories
	eventRepo := event.NewRepo(clients.Firestore)
	communityRepo := community.NewRepo(clients.Firestore)
	principalRepo := principal.NewRepo(clients.Firestore)
	rsvpRepo := rsvp.NewRepo(clients.Firestore)
	newsletterRepo := newsletter.NewRepo(clients.Firestore)
	requestRepo := accessrequest.NewRepo(clients.Firestore)
	speakerRepo := speaker.NewRepo(clients.Firestore)

	// Services
	eventSvc := event.NewService(eventRepo)
	communitySvc := community.NewService(communityRepo, seed.Communities())
	principalSvc := principal.NewService(principalRepo)
	newsletterSvc := newsletter.NewService(newsletterRepo)
	rsvpSvc := rsvp.NewService(rsvpRepo, eventSvc, newsletterSvc)
	requestSvc := accessrequest.NewService(requestRepo, principalRepo)
	speakerSvc := speaker.NewService(speakerRepo)
	statsSvc := stats.NewService(clients.Firestore)

	// Bot defense (optional - only if configured)
	if cfg.MagenURL != "" {
		rsvpSvc.SetVerifier(magen.NewClient(cfg.MagenURL, cfg.MagenSecretKey))
		log.Println("magen bot defense enabled")
	} else {
		log.Println("MAGEN_VERIFY_URL not set, bot defense disabled")
	}

	var uploads *handlers.Uploads
	if cfg.StorageBucket != "" {
		uploads = handlers.NewUploads(cfg, clients)
	} else {
		log.Println("FIREBASE_STORAGE_BUCKET not set, signed uploads disabled")
	}

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:              cfg,
		AuthClient:       clients.Auth,
		EventSvc:         eventSvc,
		CommunitySvc:     communitySvc,
		PrincipalSvc:     principalSvc,
		RSVPSvc:          rsvpSvc,
		NewsletterSvc:    newsletterSvc,
		AccessRequestSvc: requestSvc,
		SpeakerSvc:       speakerSvc,
		StatsSvc:         statsSvc,
		Uploads:          uploads,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Printf("API listening on :%s (project=%s)", cfg.Port, cfg.ProjectID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
