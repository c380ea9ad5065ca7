package vets

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Veterinarian
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Veterinarian{}}
}

func (r *testRepo) Create(ctx context.Context, v Veterinarian) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Update(ctx context.Context, v Veterinarian) error {
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	v, ok := r.byID[id]
	if !ok {
		return Veterinarian{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (Veterinarian, error) {
	for _, v := range r.byID {
		if v.Email == email {
			return v, nil
		}
	}
	return Veterinarian{}, ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Veterinarian, error) {
	out := make([]Veterinarian, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func strPtr(s string) *string { return &s }

func validInput() CreateInput {
	return CreateInput{
		FirstName: "Maria",
		LastName:  "Gomez",
		Specialty: "Surgery",
		Email:     "maria@clinic.com",
	}
}

func TestService_Create_DefaultsWorkingDays(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	v, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	// lunes a viernes por defecto
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	if len(v.WorkingDays) != len(want) {
		t.Fatalf("expected default working days, got %#v", v.WorkingDays)
	}
	for i := range want {
		if v.WorkingDays[i] != want[i] {
			t.Fatalf("expected default working days, got %#v", v.WorkingDays)
		}
	}
	if v.CreatedAt != now || v.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_DuplicateEmailConflict(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	in := validInput()
	in.FirstName = "Otra"
	in.Email = "MARIA@clinic.com" // mismo email con otra capitalización
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("conflict must not write, got %d records", len(repo.byID))
	}
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())

	mutations := []func(*CreateInput){
		func(in *CreateInput) { in.FirstName = "" },
		func(in *CreateInput) { in.LastName = "" },
		func(in *CreateInput) { in.Specialty = "" },
		func(in *CreateInput) { in.Email = "" },
		func(in *CreateInput) { in.Email = "bad-email" },
	}
	for i, mutate := range mutations {
		in := validInput()
		mutate(&in)
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Update_TruthyMerge(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	v, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.Update(context.Background(), v.ID, UpdateInput{
		Specialty: strPtr(""),          // vacío: no pisa
		Bio:       strPtr("20 years of practice"),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Specialty != "Surgery" {
		t.Fatalf("empty specialty must not clear, got %q", got.Specialty)
	}
	if got.Bio != "20 years of practice" {
		t.Fatalf("expected bio updated, got %q", got.Bio)
	}
}

func TestService_Update_WorkingDaysReplacedWhenPresent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	v, _ := svc.Create(context.Background(), validInput())

	days := []string{"Saturday"}
	got, err := svc.Update(context.Background(), v.ID, UpdateInput{WorkingDays: &days})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if len(got.WorkingDays) != 1 || got.WorkingDays[0] != "Saturday" {
		t.Fatalf("expected working days replaced, got %#v", got.WorkingDays)
	}

	// lista vacía presente también reemplaza
	empty := []string{}
	got, err = svc.Update(context.Background(), v.ID, UpdateInput{WorkingDays: &empty})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if len(got.WorkingDays) != 0 {
		t.Fatalf("expected empty working days, got %#v", got.WorkingDays)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
