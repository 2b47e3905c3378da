// Package domain defines the business logic for the activities service.
package domain

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled is returned when a student signs up twice for the same activity.
	ErrAlreadyEnrolled = errors.New("student is already signed up")
	// ErrNotEnrolled is returned when unregistering a student who is not on the roster.
	ErrNotEnrolled = errors.New("student is not registered for this activity")
)

// Activity is a single extracurricular offering and its roster. Participants
// are kept in signup order; that order is also the presentation order.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Directory holds every activity in insertion order. All access goes through
// the directory lock, so the check-then-write sequences in Enroll and
// Withdraw stay atomic under concurrently dispatched requests.
type Directory struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*Activity
}

// NewDirectory constructs an empty Directory.
func NewDirectory() *Directory {
	return &Directory{entries: make(map[string]*Activity)}
}

// Add registers an activity under its name. Names are unique; registering the
// same name twice is rejected.
func (d *Directory) Add(act Activity) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.entries[act.Name]; ok {
		return fmt.Errorf("duplicate activity %q", act.Name)
	}

	stored := act
	stored.Participants = append([]string(nil), act.Participants...)
	d.entries[act.Name] = &stored
	d.order = append(d.order, act.Name)
	return nil
}

// List returns a snapshot of every activity in insertion order.
func (d *Directory) List() []Activity {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Activity, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, snapshotOf(d.entries[name]))
	}
	return out
}

// Enroll appends the email to the named activity's roster and returns the
// updated activity. The existence and duplicate checks happen under the same
// lock as the append.
func (d *Directory) Enroll(name, email string) (Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	act, ok := d.entries[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	for _, existing := range act.Participants {
		if existing == email {
			return Activity{}, ErrAlreadyEnrolled
		}
	}

	act.Participants = append(act.Participants, email)
	return snapshotOf(act), nil
}

// Withdraw removes the email from the named activity's roster, preserving the
// order of the remaining participants, and returns the updated activity.
func (d *Directory) Withdraw(name, email string) (Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	act, ok := d.entries[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	for i, existing := range act.Participants {
		if existing == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return snapshotOf(act), nil
		}
	}
	return Activity{}, ErrNotEnrolled
}

// snapshotOf copies an activity so callers never share the live roster slice.
func snapshotOf(act *Activity) Activity {
	out := *act
	out.Participants = append(make([]string, 0, len(act.Participants)), act.Participants...)
	return out
}
