package contact

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cardsposters/storefront/internal/logger"
)

// Service handles contact-form submissions. No network call is made:
// submission renders the inquiry and flips a transient "sent" flag that
// clears itself after the configured display duration.
type Service struct {
	mu         sync.Mutex
	sent       bool
	generation uint64
	resetAfter time.Duration
}

// NewService creates a contact service. resetAfter is how long the sent
// acknowledgment stays visible before the form resets.
func NewService(resetAfter time.Duration) *Service {
	return &Service{resetAfter: resetAfter}
}

// BuildInquiry renders the deterministic inquiry string for a submission.
func BuildInquiry(q Inquiry) string {
	return fmt.Sprintf(`New inquiry from %s

Phone: %s

Message:
%s`, q.Name, q.Phone, q.Message)
}

// Submit validates the form, builds the inquiry string and starts the
// simulated acknowledgment window. Any blank field rejects the submission.
func (s *Service) Submit(q Inquiry) (string, error) {
	const op = "contact.Service.Submit"

	required := []struct{ field, value string }{
		{"name", q.Name},
		{"phone", q.Phone},
		{"message", q.Message},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return "", fmt.Errorf("%s: %s is required: %w", op, f.field, ErrValidation)
		}
	}

	rendered := BuildInquiry(q)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = true
	s.generation++
	gen := s.generation
	// Timer.Stop cannot cancel a callback that has fired and is waiting on
	// the lock, so each submission bumps the generation and a reset from an
	// older window is discarded.
	time.AfterFunc(s.resetAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != gen {
			return
		}
		s.sent = false
	})

	logger.Info("contact inquiry submitted", logger.String("name", q.Name))
	return rendered, nil
}

// Sent reports whether the form is inside its acknowledgment window.
func (s *Service) Sent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent
}
