package owners

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Owner
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Owner{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	if o.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) Update(ctx context.Context, o Owner) error {
	if _, ok := r.byID[o.ID]; !ok {
		return ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	return r.SearchByLastName(ctx, "")
}

func (r *testRepo) SearchByLastName(ctx context.Context, term string) ([]Owner, error) {
	needle := strings.ToLower(term)
	out := make([]Owner, 0)
	for _, o := range r.byID {
		if strings.Contains(strings.ToLower(o.LastName), needle) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func strPtr(s string) *string { return &s }

func TestService_Create_PersistsWithEmptyAnimalSet(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	o, err := svc.Create(context.Background(), CreateInput{
		FirstName:   "  Alice ",
		LastName:    "Smith",
		PhoneNumber: "555-0101",
		Email:       "Alice@Example.com",
		Address:     Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if o.ID == "" {
		t.Fatalf("expected generated id")
	}
	if o.FirstName != "Alice" {
		t.Fatalf("expected trimmed first name, got %q", o.FirstName)
	}
	if o.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", o.Email)
	}
	if o.AnimalIDs == nil || len(o.AnimalIDs) != 0 {
		t.Fatalf("expected empty (non-nil) animal set, got %#v", o.AnimalIDs)
	}
	if o.CreatedAt != now || o.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if o.FullName() != "Alice Smith" {
		t.Fatalf("expected full name, got %q", o.FullName())
	}
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []CreateInput{
		{LastName: "Smith", PhoneNumber: "555-0101"},
		{FirstName: "Alice", PhoneNumber: "555-0101"},
		{FirstName: "Alice", LastName: "Smith"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Create_EmailOptionalButValidated(t *testing.T) {
	svc := NewService(newTestRepo())

	// sin email pasa
	if _, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Alice", LastName: "Smith", PhoneNumber: "555-0101",
	}); err != nil {
		t.Fatalf("Create without email: %v", err)
	}

	// email malformado no pasa
	_, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Bob", LastName: "Jones", PhoneNumber: "555-0102", Email: "not-an-email",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}
}

func TestService_Update_EmptyStringDoesNotClear(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	o, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Alice", LastName: "Smith", PhoneNumber: "555-0101",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// lastName vacío no pisa el valor guardado
	got, err := svc.Update(context.Background(), o.ID, UpdateInput{
		LastName:    strPtr(""),
		PhoneNumber: strPtr("555-0999"),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.LastName != "Smith" {
		t.Fatalf("empty lastName must not clear, got %q", got.LastName)
	}
	if got.PhoneNumber != "555-0999" {
		t.Fatalf("expected phone updated, got %q", got.PhoneNumber)
	}
}

func TestService_Update_AddressReplacedWhole(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	o, _ := svc.Create(context.Background(), CreateInput{
		FirstName: "Alice", LastName: "Smith", PhoneNumber: "555-0101",
		Address: Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
	})

	got, err := svc.Update(context.Background(), o.ID, UpdateInput{
		Address: &Address{Street: "9 Elm St"},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	// la dirección viene entera: los campos que no se mandan quedan vacíos
	if got.Address.Street != "9 Elm St" || got.Address.City != "" {
		t.Fatalf("expected whole-address replace, got %#v", got.Address)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())
	_, err := svc.Update(context.Background(), "missing", UpdateInput{FirstName: strPtr("X")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_KeepsAnimals(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	o, _ := svc.Create(context.Background(), CreateInput{
		FirstName: "Alice", LastName: "Smith", PhoneNumber: "555-0101",
	})
	// simular un animal registrado
	stored := repo.byID[o.ID]
	stored.AnimalIDs = []string{"animal-1"}
	repo.byID[o.ID] = stored

	if err := svc.Delete(context.Background(), o.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), o.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected owner gone, got %v", err)
	}
	// el borrado no toca animales: eso queda en manos del caller (no hay cascada)
	if err := svc.Delete(context.Background(), o.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestOwner_FullAddress(t *testing.T) {
	o := Owner{Address: Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"}}
	if got := o.FullAddress(); got != "1 Main St, Springfield, IL 62701" {
		t.Fatalf("unexpected full address: %q", got)
	}
	if got := (Owner{}).FullAddress(); got != "" {
		t.Fatalf("expected empty address string, got %q", got)
	}
}
