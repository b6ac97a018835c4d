package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"museum-chat/internal/completion"
	"museum-chat/internal/data/entity"
	"museum-chat/internal/data/repository"

	"github.com/google/uuid"
)

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets []*entity.Ticket
	err     error
}

func (f *fakeTicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.tickets {
		if existing.ID == t.ID {
			return nil
		}
	}
	f.tickets = append(f.tickets, t)
	return nil
}

func (f *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTicketRepo) FindByConversationID(_ context.Context, id uuid.UUID) ([]*entity.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Ticket
	for _, t := range f.tickets {
		if t.ConversationID == id {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickets)
}

type fakeReservationRepo struct {
	items map[uuid.UUID]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{items: make(map[uuid.UUID]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, r *entity.Reservation) error {
	f.items[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return f.items[id], nil
}

func (f *fakeReservationRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Reservation, error) {
	all := make([]*entity.Reservation, 0, len(f.items))
	for _, r := range f.items {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeReservationRepo) Count(context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeHourRepo struct {
	hours    []*entity.OpeningHour
	findAlls int
	err      error
}

func (f *fakeHourRepo) FindAll(context.Context) ([]*entity.OpeningHour, error) {
	f.findAlls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hours, nil
}

func (f *fakeHourRepo) FindByID(_ context.Context, id int64) (*entity.OpeningHour, error) {
	for _, h := range f.hours {
		if h.ID == id {
			cp := *h
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeHourRepo) Count(context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.hours)), nil
}

func (f *fakeHourRepo) CreateBatch(_ context.Context, hours []*entity.OpeningHour) error {
	for i, h := range hours {
		h.ID = int64(len(f.hours) + i + 1)
	}
	f.hours = append(f.hours, hours...)
	return nil
}

func (f *fakeHourRepo) Update(_ context.Context, hour *entity.OpeningHour) error {
	for i, h := range f.hours {
		if h.ID == hour.ID {
			cp := *hour
			f.hours[i] = &cp
			return nil
		}
	}
	return errors.New("not found")
}

func newFakeRepository() (*repository.Repository, *fakeTicketRepo, *fakeReservationRepo, *fakeHourRepo) {
	tickets := &fakeTicketRepo{}
	reservations := newFakeReservationRepo()
	hours := &fakeHourRepo{}
	return &repository.Repository{
		OpeningHour: hours,
		Reservation: reservations,
		Ticket:      tickets,
	}, tickets, reservations, hours
}

type stubCompleter struct {
	mu    sync.Mutex
	calls int
	reply string
}

func (s *stubCompleter) Complete(context.Context, []completion.Turn) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.reply
}

type stubQR struct{}

func (stubQR) Encode(payload []byte) (string, error) { return "data:" + string(payload), nil }

func (stubQR) PNG(payload []byte) ([]byte, error) { return payload, nil }
