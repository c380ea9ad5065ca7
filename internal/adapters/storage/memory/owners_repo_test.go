package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"vetcare360/internal/domain/owners"
	"vetcare360/internal/domain/visits"
)

func seedOwner(t *testing.T, repo owners.Repository, id, first, last string) {
	t.Helper()
	err := repo.Create(context.Background(), owners.Owner{
		ID:        id,
		FirstName: first,
		LastName:  last,
		AnimalIDs: []string{},
	})
	if err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestOwnersRepo_SearchByLastName_CaseInsensitiveSubstring(t *testing.T) {
	repo := NewOwnersRepo()
	ctx := context.Background()

	seedOwner(t, repo, "o1", "Alice", "Smith")
	seedOwner(t, repo, "o2", "Bob", "Smithson")
	seedOwner(t, repo, "o3", "Carol", "Jones")

	got, err := repo.SearchByLastName(ctx, "smith")
	if err != nil {
		t.Fatalf("SearchByLastName error: %v", err)
	}
	// substring: Smith y Smithson matchean, Jones no
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].LastName != "Smith" || got[1].LastName != "Smithson" {
		t.Fatalf("expected sorted [Smith Smithson], got [%s %s]", got[0].LastName, got[1].LastName)
	}

	// mayúsculas en el término tampoco importan
	got, err = repo.SearchByLastName(ctx, "SMITH")
	if err != nil {
		t.Fatalf("SearchByLastName error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for uppercase term, got %d", len(got))
	}
}

func TestOwnersRepo_SearchByLastName_EmptyTermReturnsAll(t *testing.T) {
	repo := NewOwnersRepo()
	ctx := context.Background()

	seedOwner(t, repo, "o1", "Alice", "Smith")
	seedOwner(t, repo, "o2", "Carol", "Jones")

	got, err := repo.SearchByLastName(ctx, "")
	if err != nil {
		t.Fatalf("SearchByLastName error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected all owners, got %d", len(got))
	}
}

func TestOwnersRepo_List_SortsByLastThenFirst(t *testing.T) {
	repo := NewOwnersRepo()
	ctx := context.Background()

	seedOwner(t, repo, "o1", "Zoe", "Smith")
	seedOwner(t, repo, "o2", "Alice", "Smith")
	seedOwner(t, repo, "o3", "Bob", "Jones")

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	want := []string{"o3", "o2", "o1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestOwnersRepo_StoredSlicesAreIsolated(t *testing.T) {
	repo := NewOwnersRepo()
	ctx := context.Background()

	o := owners.Owner{ID: "o1", FirstName: "Alice", LastName: "Smith", AnimalIDs: []string{"a1"}}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// mutar el slice del caller no toca el valor guardado
	o.AnimalIDs[0] = "hacked"

	got, err := repo.GetByID(ctx, "o1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.AnimalIDs[0] != "a1" {
		t.Fatalf("stored slice mutated through caller, got %#v", got.AnimalIDs)
	}
}

func TestOwnersRepo_NotFoundSentinels(t *testing.T) {
	repo := NewOwnersRepo()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("expected owners.ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("expected owners.ErrNotFound on delete, got %v", err)
	}
	if err := repo.Update(ctx, owners.Owner{ID: "missing"}); !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("expected owners.ErrNotFound on update, got %v", err)
	}
}

func TestVisitsRepo_ListByAnimal_MostRecentFirst(t *testing.T) {
	repo := NewVisitsRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"v1", "v2", "v3"} {
		err := repo.Create(ctx, visits.Visit{
			ID:          id,
			AnimalID:    "a1",
			Reason:      "checkup",
			Date:        base.AddDate(0, 0, i),
			Medications: []visits.Medication{},
		})
		if err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	got, err := repo.ListByAnimal(ctx, "a1")
	if err != nil {
		t.Fatalf("ListByAnimal error: %v", err)
	}
	want := []string{"v3", "v2", "v1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}
