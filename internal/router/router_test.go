package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vetcare360/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ClinicLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Alta de dueño
	ownerID := createOwner(t, ts.URL, map[string]any{
		"firstName":   "Alice",
		"lastName":    "Smith",
		"phoneNumber": "555-0101",
		"email":       "alice@example.com",
		"address": map[string]any{
			"street": "1 Main St", "city": "Springfield", "state": "IL", "zipCode": "62701",
		},
	})

	// 2) Alta de veterinario
	vetID := createVet(t, ts.URL, map[string]any{
		"firstName": "Maria",
		"lastName":  "Gomez",
		"specialty": "Surgery",
		"email":     "maria@clinic.com",
	})

	// 3) Alta de mascota: queda linkeada al dueño
	animalID := createAnimal(t, ts.URL, map[string]any{
		"ownerId": ownerID,
		"name":    "Rex",
		"species": "dog",
		"breed":   "beagle",
		"weight":  12.5,
		"gender":  "male",
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/owners/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d body=%s", st, string(body))
		}
		var owner struct {
			AnimalIDs []string `json:"animalIds"`
			Animals   []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"animals"`
		}
		mustUnmarshal(t, body, &owner)
		if len(owner.AnimalIDs) != 1 || owner.AnimalIDs[0] != animalID {
			t.Fatalf("expected animal linked to owner, got %#v", owner.AnimalIDs)
		}
		if len(owner.Animals) != 1 || owner.Animals[0].Name != "Rex" {
			t.Fatalf("expected expanded animal doc, got %#v", owner.Animals)
		}
	}

	// 4) Alta de visita: queda linkeada a la mascota y expande referencias
	visitID := createVisit(t, ts.URL, map[string]any{
		"animalId":       animalID,
		"veterinarianId": vetID,
		"reason":         "annual checkup",
		"medications": []map[string]any{
			{"name": "Amoxicillin", "dosage": "250mg", "instructions": "twice a day"},
		},
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/visits/"+visitID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get visit, got %d body=%s", st, string(body))
		}
		var visit struct {
			Animal *struct {
				Name string `json:"name"`
			} `json:"animal"`
			Veterinarian *struct {
				LastName string `json:"lastName"`
			} `json:"veterinarian"`
		}
		mustUnmarshal(t, body, &visit)
		if visit.Animal == nil || visit.Animal.Name != "Rex" {
			t.Fatalf("expected expanded animal ref, body=%s", string(body))
		}
		if visit.Veterinarian == nil || visit.Veterinarian.LastName != "Gomez" {
			t.Fatalf("expected expanded vet ref, body=%s", string(body))
		}
	}

	// 5) La mascota lista su visita, más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
		}
		var animal struct {
			VisitIDs []string `json:"visitIds"`
			Owner    *struct {
				ID string `json:"id"`
			} `json:"owner"`
		}
		mustUnmarshal(t, body, &animal)
		if len(animal.VisitIDs) != 1 || animal.VisitIDs[0] != visitID {
			t.Fatalf("expected visit linked to animal, got %#v", animal.VisitIDs)
		}
		if animal.Owner == nil || animal.Owner.ID != ownerID {
			t.Fatalf("expected expanded owner ref, body=%s", string(body))
		}
	}

	// 6) Borrar el dueño: la mascota queda con referencia colgante (null)
	{
		st, body := doReq(t, ts.URL, "DELETE", "/owners/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			Message string `json:"message"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Message != "Owner removed" {
			t.Fatalf("unexpected delete message %q", resp.Message)
		}

		st, body = doReq(t, ts.URL, "GET", "/animals/"+animalID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal after owner delete, got %d", st)
		}
		var animal struct {
			OwnerID string           `json:"ownerId"`
			Owner   *json.RawMessage `json:"owner"`
		}
		mustUnmarshal(t, body, &animal)
		if animal.OwnerID != ownerID {
			t.Fatalf("expected forward reference kept, got %q", animal.OwnerID)
		}
		if animal.Owner != nil {
			t.Fatalf("expected dangling owner reference to expand to null, got %s", string(*animal.Owner))
		}
	}

	// 7) Borrar la visita: desaparece del set de la mascota
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/visits/"+visitID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete visit, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/animals/"+animalID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal after visit delete, got %d", st)
		}
		var animal struct {
			VisitIDs []string `json:"visitIds"`
		}
		mustUnmarshal(t, body, &animal)
		if len(animal.VisitIDs) != 0 {
			t.Fatalf("expected visit detached, got %#v", animal.VisitIDs)
		}
	}
}

func TestHTTP_UpdateOwner_EmptyLastNameIsNoOp(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"firstName": "Alice", "lastName": "Smith", "phoneNumber": "555-0101",
	})

	st, body := doReq(t, ts.URL, "PUT", "/owners/"+ownerID, map[string]any{
		"lastName": "",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
	}
	var owner struct {
		LastName string `json:"lastName"`
	}
	mustUnmarshal(t, body, &owner)
	if owner.LastName != "Smith" {
		t.Fatalf("empty lastName must not clear, got %q", owner.LastName)
	}
}

func TestHTTP_UpdateAnimal_ZeroWeightIgnored(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"firstName": "Alice", "lastName": "Smith", "phoneNumber": "555-0101",
	})
	animalID := createAnimal(t, ts.URL, map[string]any{
		"ownerId": ownerID, "name": "Rex", "species": "dog", "weight": 12.5,
	})

	st, body := doReq(t, ts.URL, "PUT", "/animals/"+animalID, map[string]any{
		"weight": 0,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
	}
	var animal struct {
		Weight float64 `json:"weight"`
	}
	mustUnmarshal(t, body, &animal)
	if animal.Weight != 12.5 {
		t.Fatalf("zero weight must not clear, got %v", animal.Weight)
	}
}

func TestHTTP_UpdateVisit_FollowUpFalseApplied(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"firstName": "Alice", "lastName": "Smith", "phoneNumber": "555-0101",
	})
	animalID := createAnimal(t, ts.URL, map[string]any{
		"ownerId": ownerID, "name": "Rex", "species": "dog",
	})
	visitID := createVisit(t, ts.URL, map[string]any{
		"animalId":       animalID,
		"veterinarianId": "vet-1",
		"reason":         "annual checkup",
		"followUpNeeded": true,
		"followUpDate":   "2026-04-01",
	})

	// false explícito sí pisa, a diferencia de strings vacíos
	st, body := doReq(t, ts.URL, "PUT", "/visits/"+visitID, map[string]any{
		"followUpNeeded": false,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
	}
	var visit struct {
		FollowUpNeeded bool `json:"followUpNeeded"`
	}
	mustUnmarshal(t, body, &visit)
	if visit.FollowUpNeeded {
		t.Fatalf("expected followUpNeeded=false applied")
	}
}

func TestHTTP_SearchOwners_SubstringCaseInsensitive(t *testing.T) {
	ts := newTestServer(t)

	createOwner(t, ts.URL, map[string]any{
		"firstName": "Alice", "lastName": "Smith", "phoneNumber": "555-0101",
	})
	createOwner(t, ts.URL, map[string]any{
		"firstName": "Bob", "lastName": "Smithson", "phoneNumber": "555-0102",
	})
	createOwner(t, ts.URL, map[string]any{
		"firstName": "Carol", "lastName": "Jones", "phoneNumber": "555-0103",
	})

	st, body := doReq(t, ts.URL, "GET", "/owners/search/smith", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
	}
	var results []struct {
		LastName string `json:"lastName"`
	}
	mustUnmarshal(t, body, &results)
	if len(results) != 2 {
		t.Fatalf("expected 2 matches for smith, got %d body=%s", len(results), string(body))
	}
	if results[0].LastName != "Smith" || results[1].LastName != "Smithson" {
		t.Fatalf("expected [Smith Smithson], got %#v", results)
	}
}

func TestHTTP_CreateVet_DuplicateEmailRejected(t *testing.T) {
	ts := newTestServer(t)

	createVet(t, ts.URL, map[string]any{
		"firstName": "Maria", "lastName": "Gomez", "specialty": "Surgery",
		"email": "maria@clinic.com",
	})

	st, body := doReq(t, ts.URL, "POST", "/vets", map[string]any{
		"firstName": "Otra", "lastName": "Persona", "specialty": "Dental",
		"email": "maria@clinic.com",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 duplicate email, got %d body=%s", st, string(body))
	}
}

func TestHTTP_CreateVisit_MissingAnimal404(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/visits", map[string]any{
		"animalId":       "no-such-animal",
		"veterinarianId": "vet-1",
		"reason":         "checkup",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for missing animal, got %d body=%s", st, string(body))
	}
}

// -------------------------
// Helpers
// -------------------------

func createOwner(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/owners", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func createVet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/vets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vet, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func createAnimal(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/animals", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func createVisit(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/visits", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
	}
	return extractID(t, body)
}

func extractID(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id in body=%s", string(body))
	}
	return resp.ID
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
