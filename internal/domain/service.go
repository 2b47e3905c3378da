package domain

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"example.com/activities/internal/observability"
)

// RosterAction identifies the kind of roster mutation carried by a RosterChange.
type RosterAction string

const (
	RosterActionSignup     RosterAction = "signup"
	RosterActionUnregister RosterAction = "unregister"
)

// RosterChange describes a successful roster mutation.
type RosterChange struct {
	Activity   string
	Email      string
	Action     RosterAction
	RosterSize int
	OccurredAt time.Time
}

// RosterPublisher receives roster change notifications after a mutation has
// committed. Publish failures never roll the mutation back.
type RosterPublisher interface {
	RosterChanged(ctx context.Context, change RosterChange) error
}

// Service orchestrates directory operations, eventing, and observability.
type Service struct {
	dir    *Directory
	pub    RosterPublisher
	logger *zap.Logger
}

// NewService constructs a Service. A nil publisher disables the roster feed;
// a nil logger disables logging.
func NewService(dir *Directory, pub RosterPublisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{dir: dir, pub: pub, logger: logger}
}

// List returns every activity in directory order. It never fails.
func (s *Service) List(ctx context.Context) []Activity {
	return s.dir.List()
}

// Enroll signs the email up for the named activity. Precondition order: the
// activity must exist, then the email must not already be on the roster.
// Capacity is not enforced; filling or overfilling a roster only logs a
// warning so the condition stays visible without changing the contract.
func (s *Service) Enroll(ctx context.Context, activity, email string) (Activity, error) {
	act, err := s.dir.Enroll(activity, email)
	if err != nil {
		observability.RecordSignup(outcomeFor(err))
		return Activity{}, err
	}

	observability.RecordSignup(outcomeOK)
	observability.RecordRosterSize(activity, len(act.Participants))

	if act.MaxParticipants > 0 && len(act.Participants) >= act.MaxParticipants {
		s.logger.Warn("activity at or over capacity",
			zap.String("activity", activity),
			zap.Int("roster_size", len(act.Participants)),
			zap.Int("max_participants", act.MaxParticipants))
	}

	s.publish(ctx, RosterChange{
		Activity:   activity,
		Email:      email,
		Action:     RosterActionSignup,
		RosterSize: len(act.Participants),
		OccurredAt: time.Now().UTC(),
	})
	return act, nil
}

// Withdraw removes the email from the named activity's roster. Precondition
// order: the activity must exist, then the email must be on the roster.
func (s *Service) Withdraw(ctx context.Context, activity, email string) (Activity, error) {
	act, err := s.dir.Withdraw(activity, email)
	if err != nil {
		observability.RecordUnregister(outcomeFor(err))
		return Activity{}, err
	}

	observability.RecordUnregister(outcomeOK)
	observability.RecordRosterSize(activity, len(act.Participants))

	s.publish(ctx, RosterChange{
		Activity:   activity,
		Email:      email,
		Action:     RosterActionUnregister,
		RosterSize: len(act.Participants),
		OccurredAt: time.Now().UTC(),
	})
	return act, nil
}

func (s *Service) publish(ctx context.Context, change RosterChange) {
	if s.pub == nil {
		return
	}
	if err := s.pub.RosterChanged(ctx, change); err != nil {
		s.logger.Error("publishing roster change",
			zap.Error(err),
			zap.String("activity", change.Activity),
			zap.String("action", string(change.Action)))
	}
}

const outcomeOK = "ok"

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrAlreadyEnrolled):
		return "already_signed_up"
	case errors.Is(err, ErrNotEnrolled):
		return "not_registered"
	default:
		return "error"
	}
}
