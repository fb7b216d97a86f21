package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
)

func newEventFixture() (*EventService, *fakeEventRepo, *fakeRegistrationRepo) {
	eventRepo := newFakeEventRepo()
	regRepo := &fakeRegistrationRepo{}
	userRepo := &fakeUserRepo{users: map[uint]entities.User{
		10: {ID: 10, DisplayName: "Owner", Active: true, NotifyEventReminders: true},
		1:  {ID: 1, DisplayName: "U1", Active: true, NotifyEventReminders: true},
		2:  {ID: 2, DisplayName: "U2", Active: true, NotifyEventReminders: true},
	}}
	svc := NewEventService(eventRepo, regRepo, userRepo)
	svc.clock = testClock()
	return svc, eventRepo, regRepo
}

func TestCreateEventRegistersOwner(t *testing.T) {
	svc, eventRepo, regRepo := newEventFixture()
	event := &entities.Event{
		Title:           "  Kvíz este  ",
		MaxParticipants: 8,
		StartsAt:        baseTime.Add(72 * time.Hour),
		OwnerID:         10,
	}

	if err := svc.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("create: %v", err)
	}
	if event.Title != "Kvíz este" {
		t.Fatalf("expected trimmed title, got %q", event.Title)
	}
	if event.UUID == uuid.Nil {
		t.Fatal("expected a generated uuid")
	}
	if event.Status != domain.EventStatusActive {
		t.Fatalf("expected active status, got %q", event.Status)
	}
	if len(eventRepo.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(eventRepo.events))
	}
	if len(regRepo.regs) != 1 {
		t.Fatalf("expected the owner registered, got %d registrations", len(regRepo.regs))
	}
	owner := regRepo.regs[0]
	if owner.UserID != 10 || owner.Status != domain.StatusConfirmed {
		t.Fatalf("unexpected owner registration: %+v", owner)
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc, _, _ := newEventFixture()
	ctx := context.Background()

	err := svc.CreateEvent(ctx, &entities.Event{
		Title:           "Kvíz este",
		MaxParticipants: 0,
		StartsAt:        baseTime.Add(72 * time.Hour),
		OwnerID:         10,
	})
	if !errors.Is(err, domain.ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}

	err = svc.CreateEvent(ctx, &entities.Event{
		Title:           "Kvíz este",
		MaxParticipants: 8,
		StartsAt:        baseTime.Add(-time.Hour),
		OwnerID:         10,
	})
	if !errors.Is(err, domain.ErrStartsAtInPast) {
		t.Fatalf("expected ErrStartsAtInPast, got %v", err)
	}
}

func TestGetEventByUUIDNotFound(t *testing.T) {
	svc, _, _ := newEventFixture()
	if _, err := svc.GetEventByUUID(context.Background(), uuid.New()); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestGetParticipantsConfirmedFirstInJoinOrder(t *testing.T) {
	svc, eventRepo, regRepo := newEventFixture()
	event := &entities.Event{ID: 1, UUID: uuid.New(), Title: "Kvíz este", MaxParticipants: 2, OwnerID: 10}
	eventRepo.events[event.ID] = event

	joined := baseTime
	regRepo.regs = []entities.Registration{
		{ID: 3, EventID: 1, UserID: 2, Status: domain.StatusWaitlist, JoinedAt: joined.Add(2 * time.Second)},
		{ID: 1, EventID: 1, UserID: 10, Status: domain.StatusConfirmed, JoinedAt: joined},
		{ID: 2, EventID: 1, UserID: 1, Status: domain.StatusConfirmed, JoinedAt: joined.Add(time.Second)},
	}

	views, err := svc.GetParticipants(context.Background(), event.UUID)
	if err != nil {
		t.Fatalf("participants: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 participants, got %d", len(views))
	}
	wantOrder := []uint{10, 1, 2}
	for i, want := range wantOrder {
		if views[i].UserID != want {
			t.Fatalf("position %d: expected user %d, got %d", i, want, views[i].UserID)
		}
	}
	if views[0].DisplayName != "Owner" || views[2].Status != domain.StatusWaitlist {
		t.Fatalf("unexpected views: %+v", views)
	}
}

func TestListUpcomingEventsSkipsExpired(t *testing.T) {
	svc, eventRepo, _ := newEventFixture()
	upcoming := &entities.Event{ID: 1, UUID: uuid.New(), StartsAt: baseTime.Add(time.Hour), Status: domain.EventStatusActive, Published: true}
	expired := &entities.Event{ID: 2, UUID: uuid.New(), StartsAt: baseTime.Add(-time.Hour), Status: domain.EventStatusExpired, Published: true}
	eventRepo.events[upcoming.ID] = upcoming
	eventRepo.events[expired.ID] = expired

	events, err := svc.ListUpcomingEvents(context.Background(), baseTime)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || events[0].ID != upcoming.ID {
		t.Fatalf("expected only the upcoming event, got %+v", events)
	}
}
