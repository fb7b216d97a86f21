package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
)

var errNotFound = errors.New("not found")

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[uint]*entities.Event

	findByUUIDErr       error
	markReminderSentErr error
	updateStatusErr     map[uint]error
	reminderSentCalls   []uint
	statusUpdates       []uint
}

func newFakeEventRepo(events ...*entities.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[uint]*entities.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(ctx context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = uint(len(r.events) + 1)
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) FindByUUID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByUUIDErr != nil {
		return nil, r.findByUUIDErr
	}
	for _, e := range r.events {
		if e.UUID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *fakeEventRepo) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEventNotFound
}

func (r *fakeEventRepo) FindUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Event
	for _, e := range r.events {
		if e.Published && e.Status == domain.EventStatusActive && !e.StartsAt.Before(now) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (r *fakeEventRepo) FindNeedingReminder(ctx context.Context, windowStart, windowEnd time.Time) ([]entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Event
	for _, e := range r.events {
		if !e.Published || e.Status != domain.EventStatusActive || e.ReminderSent {
			continue
		}
		if e.StartsAt.Before(windowStart) || e.StartsAt.After(windowEnd) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEventRepo) FindExpiredActive(ctx context.Context, now time.Time) ([]entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Event
	for _, e := range r.events {
		if e.Published && e.Status == domain.EventStatusActive && e.StartsAt.Before(now) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEventRepo) MarkReminderSent(ctx context.Context, eventID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.markReminderSentErr != nil {
		return r.markReminderSentErr
	}
	r.reminderSentCalls = append(r.reminderSentCalls, eventID)
	r.events[eventID].ReminderSent = true
	return nil
}

func (r *fakeEventRepo) UpdateStatus(ctx context.Context, eventID uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.updateStatusErr[eventID]; err != nil {
		return err
	}
	r.statusUpdates = append(r.statusUpdates, eventID)
	r.events[eventID].Status = status
	return nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return nil
}

type fakeRegistrationRepo struct {
	mu     sync.Mutex
	regs   []entities.Registration
	nextID uint

	createErr error
	findErr   error // injected into FindByEventIDAndUserID
}

func (r *fakeRegistrationRepo) Create(ctx context.Context, reg *entities.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	reg.ID = r.nextID
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *fakeRegistrationRepo) FindByEventID(ctx context.Context, eventID uint) ([]entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Registration
	for _, reg := range r.regs {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	sortRegistrations(out)
	return out, nil
}

func (r *fakeRegistrationRepo) FindByEventIDAndUserID(ctx context.Context, eventID, userID uint) (*entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, reg := range r.regs {
		if reg.EventID == eventID && reg.UserID == userID {
			found := reg
			return &found, nil
		}
	}
	return nil, domain.ErrRegistrationNotFound
}

func (r *fakeRegistrationRepo) FindByEventIDAndStatus(ctx context.Context, eventID uint, status string) ([]entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Registration
	for _, reg := range r.regs {
		if reg.EventID == eventID && reg.Status == status {
			out = append(out, reg)
		}
	}
	sortRegistrations(out)
	return out, nil
}

func (r *fakeRegistrationRepo) Update(ctx context.Context, reg *entities.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.regs {
		if r.regs[i].ID == reg.ID {
			r.regs[i] = *reg
			return nil
		}
	}
	return errNotFound
}

func (r *fakeRegistrationRepo) Delete(ctx context.Context, reg *entities.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.regs {
		if r.regs[i].ID == reg.ID {
			r.regs = append(r.regs[:i], r.regs[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (r *fakeRegistrationRepo) CountByEventIDAndStatus(ctx context.Context, eventID uint, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, reg := range r.regs {
		if reg.EventID == eventID && reg.Status == status {
			count++
		}
	}
	return count, nil
}

func sortRegistrations(regs []entities.Registration) {
	sort.Slice(regs, func(i, j int) bool {
		if regs[i].JoinedAt.Equal(regs[j].JoinedAt) {
			return regs[i].ID < regs[j].ID
		}
		return regs[i].JoinedAt.Before(regs[j].JoinedAt)
	})
}

type fakeUserRepo struct {
	users map[uint]entities.User
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) FindByIDs(ctx context.Context, ids []uint) ([]entities.User, error) {
	var out []entities.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type sentMail struct {
	template  string
	recipient string
	locale    string
	data      map[string]any
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]bool // recipients that fail
}

func (m *fakeMailer) Send(ctx context.Context, templateKey, recipient, locale string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[recipient] {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, sentMail{template: templateKey, recipient: recipient, locale: locale, data: data})
	return nil
}

func (m *fakeMailer) sentTo(recipient string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, s := range m.sent {
		if s.recipient == recipient {
			count++
		}
	}
	return count
}
