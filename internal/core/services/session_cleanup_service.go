package services

import (
	"context"
	"log"
	"time"

	"shopadmin/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// purgeAfterDays is how long inactive sessions are kept before deletion
const purgeAfterDays = 30

// SessionCleanupService runs the daily session maintenance job:
// sessions past their expiry are deactivated, and sessions that have
// been inactive for purgeAfterDays are deleted.
type SessionCleanupService struct {
	sessionRepo repositories.SessionRepository
	cron        *cron.Cron
}

// NewSessionCleanupService creates a new session cleanup service
func NewSessionCleanupService(sessionRepo repositories.SessionRepository) *SessionCleanupService {
	return &SessionCleanupService{
		sessionRepo: sessionRepo,
		cron:        cron.New(),
	}
}

// Start schedules the cleanup job (03:00 daily) and runs the scheduler
func (s *SessionCleanupService) Start() {
	s.cron.AddFunc("0 3 * * *", s.Run)
	s.cron.Start()
	log.Println("🚀 Session cleanup scheduled (daily 03:00)")
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *SessionCleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Session cleanup stopped")
}

// Run executes one cleanup pass
func (s *SessionCleanupService) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	expired, err := s.sessionRepo.DeactivateExpired(ctx)
	if err != nil {
		log.Printf("❌ Session expiry sweep failed: %v", err)
		return
	}

	purged, err := s.sessionRepo.DeleteInactiveBefore(ctx, purgeAfterDays)
	if err != nil {
		log.Printf("❌ Session purge failed: %v", err)
		return
	}

	if expired > 0 || purged > 0 {
		log.Printf("✅ Session cleanup: %d expired, %d purged", expired, purged)
	}
}
