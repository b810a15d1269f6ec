package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/nerrad567/estate-core/internal/property"
)

const sampleBody = `{"manager_name":"A","address":"X","rooms_count":2,"total_area":50.0,"price":1000000}`

// ─── Lifecycle Scenario ────────────────────────────────────────────

func TestProperty_CreateGetDelete(t *testing.T) {
	env := testServer(t)

	w := env.do(http.MethodPost, "/property/", sampleBody)
	assertStatus(t, w, http.StatusCreated)

	created := decodeBody[property.Property](t, w)
	want := property.Property{ID: 1, ManagerName: "A", Address: "X", RoomsCount: 2, TotalArea: 50.0, Price: 1000000}
	if created != want {
		t.Errorf("created = %+v, want %+v", created, want)
	}

	w = env.do(http.MethodGet, "/property/1", "")
	assertStatus(t, w, http.StatusOK)
	if got := decodeBody[property.Property](t, w); got != want {
		t.Errorf("GET /property/1 = %+v, want %+v", got, want)
	}

	w = env.do(http.MethodDelete, "/property/1", "")
	assertStatus(t, w, http.StatusOK)
	if got := decodeBody[deletedResponse](t, w); got != (deletedResponse{Status: "deleted", ID: 1}) {
		t.Errorf("DELETE body = %+v", got)
	}

	w = env.do(http.MethodGet, "/property/1", "")
	e := assertErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)
	if !strings.Contains(e.Message, "1") {
		t.Errorf("not found message %q does not name the id", e.Message)
	}
}

func TestProperty_CreateIgnoresClientID(t *testing.T) {
	env := testServer(t)

	w := env.do(http.MethodPost, "/property/",
		`{"id":42,"manager_name":"A","address":"X","rooms_count":1,"total_area":1,"price":1}`)
	assertStatus(t, w, http.StatusCreated)

	if got := decodeBody[property.Property](t, w).ID; got != 1 {
		t.Errorf("id = %d, want 1", got)
	}
}

func TestProperty_IDsNotReused(t *testing.T) {
	env := testServer(t)

	for i := 0; i < 3; i++ {
		assertStatus(t, env.do(http.MethodPost, "/property/", sampleBody), http.StatusCreated)
	}
	assertStatus(t, env.do(http.MethodDelete, "/property/3", ""), http.StatusOK)

	w := env.do(http.MethodPost, "/property/", sampleBody)
	assertStatus(t, w, http.StatusCreated)
	if got := decodeBody[property.Property](t, w).ID; got != 4 {
		t.Errorf("id after deleting newest = %d, want 4", got)
	}
}

// ─── Create Validation ─────────────────────────────────────────────

func TestProperty_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing price", `{"manager_name":"A","address":"X","rooms_count":2,"total_area":50}`, "/price"},
		{"empty manager", `{"manager_name":"","address":"X","rooms_count":2,"total_area":50,"price":1}`, "/manager_name"},
		{"negative rooms", `{"manager_name":"A","address":"X","rooms_count":-1,"total_area":50,"price":1}`, "/rooms_count"},
		{"string area", `{"manager_name":"A","address":"X","rooms_count":1,"total_area":"big","price":1}`, "/total_area"},
		{"invalid json", `{"manager_name":`, ""},
		{"empty body", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testServer(t)

			w := env.do(http.MethodPost, "/property/", tt.body)
			e := assertErrorCode(t, w, http.StatusBadRequest, ErrCodeValidation)
			if _, ok := e.Details[tt.wantField]; !ok {
				t.Errorf("details = %v, want entry for %q", e.Details, tt.wantField)
			}
			if env.props.Count() != 0 {
				t.Errorf("collection size = %d, want 0", env.props.Count())
			}
		})
	}
}

// ─── List ──────────────────────────────────────────────────────────

func TestProperty_ListEmpty(t *testing.T) {
	env := testServer(t)

	w := env.do(http.MethodGet, "/property/", "")
	assertStatus(t, w, http.StatusOK)

	if got := strings.TrimSpace(w.Body.String()); got != `{"properties":[],"count":0}` {
		t.Errorf("body = %s", got)
	}
}

func TestProperty_ListSorted(t *testing.T) {
	env := testServer(t)
	env.seed(t)

	tests := []struct {
		name  string
		query string
		want  []int64 // prices in response order
	}{
		{"insertion order", "", []int64{5000000, 8500000}},
		{"price desc", "?sort_by=price&order=desc", []int64{8500000, 5000000}},
		{"price DESC", "?sort_by=price&order=DESC", []int64{8500000, 5000000}},
		{"price asc", "?sort_by=price&order=asc", []int64{5000000, 8500000}},
		{"unknown field", "?sort_by=colour&order=desc", []int64{5000000, 8500000}},
		{"manager desc", "?sort_by=manager_name&order=desc", []int64{5000000, 8500000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, "/property/"+tt.query, "")
			assertStatus(t, w, http.StatusOK)

			resp := decodeBody[propertyListResponse](t, w)
			if resp.Count != len(tt.want) {
				t.Fatalf("count = %d, want %d", resp.Count, len(tt.want))
			}
			for i, p := range resp.Properties {
				if p.Price != tt.want[i] {
					t.Errorf("properties[%d].price = %d, want %d", i, p.Price, tt.want[i])
				}
			}
		})
	}

	// Sorted reads never reorder storage.
	items, err := env.props.List(context.Background(), property.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Errorf("stored order changed: %d, %d", items[0].ID, items[1].ID)
	}
}

// ─── Update ────────────────────────────────────────────────────────

func TestProperty_UpdateMergesFields(t *testing.T) {
	env := testServer(t)
	env.seed(t)

	w := env.do(http.MethodPut, "/property/2", `{"price":9000000}`)
	assertStatus(t, w, http.StatusOK)

	got := decodeBody[property.Property](t, w)
	want := property.Property{ID: 2, ManagerName: "Anna Smirnova", Address: "Pushkina 10", RoomsCount: 4, TotalArea: 98.2, Price: 9000000}
	if got != want {
		t.Errorf("updated = %+v, want %+v", got, want)
	}
}

func TestProperty_UpdateCannotChangeID(t *testing.T) {
	env := testServer(t)
	env.seed(t)

	w := env.do(http.MethodPut, "/property/1", `{"id":7,"address":"Lenina 2"}`)
	assertStatus(t, w, http.StatusOK)

	if got := decodeBody[property.Property](t, w); got.ID != 1 || got.Address != "Lenina 2" {
		t.Errorf("updated = %+v", got)
	}
	assertStatus(t, env.do(http.MethodGet, "/property/7", ""), http.StatusNotFound)
}

func TestProperty_FailedUpdateLeavesRecord(t *testing.T) {
	env := testServer(t)
	env.seed(t)

	before, err := env.props.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	w := env.do(http.MethodPut, "/property/1", `{"address":"Nevsky 5","price":-10}`)
	e := assertErrorCode(t, w, http.StatusBadRequest, ErrCodeValidation)
	if _, ok := e.Details["/price"]; !ok {
		t.Errorf("details = %v, want /price", e.Details)
	}

	after, err := env.props.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if after != before {
		t.Errorf("record changed by failed update: %+v -> %+v", before, after)
	}
}

func TestProperty_UpdateNotFound(t *testing.T) {
	env := testServer(t)

	w := env.do(http.MethodPut, "/property/9", `{"price":1}`)
	assertErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)
}

// ─── Not Found ─────────────────────────────────────────────────────

func TestProperty_NonIntegerID(t *testing.T) {
	env := testServer(t)
	env.seed(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			w := env.do(method, "/property/abc", "")
			assertErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)
		})
	}

	w := env.do(http.MethodPut, "/property/1.5", `{"price":1}`)
	assertErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)

	if env.props.Count() != 2 {
		t.Errorf("collection size = %d, want 2", env.props.Count())
	}
}

func TestProperty_DeleteNotFound(t *testing.T) {
	env := testServer(t)

	w := env.do(http.MethodDelete, "/property/1", "")
	assertErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)
}

// ─── Stats ─────────────────────────────────────────────────────────

func TestProperty_Stats(t *testing.T) {
	env := testServer(t)
	env.seed(t)

	w := env.do(http.MethodGet, "/property/stats", "")
	assertStatus(t, w, http.StatusOK)

	stats := decodeBody[map[string]float64](t, w)
	want := map[string]float64{
		"price_avg":       6750000,
		"price_max":       8500000,
		"price_min":       5000000,
		"rooms_count_avg": 3.5,
		"rooms_count_max": 4,
		"rooms_count_min": 3,
		"total_area_max":  98.2,
		"total_area_min":  75.5,
	}
	for k, v := range want {
		if stats[k] != v {
			t.Errorf("%s = %v, want %v", k, stats[k], v)
		}
	}
	if _, ok := stats["total_area_avg"]; !ok {
		t.Error("total_area_avg missing")
	}
}

func TestProperty_StatsEmpty(t *testing.T) {
	env := testServer(t)

	w := env.do(http.MethodGet, "/property/stats", "")
	assertErrorCode(t, w, http.StatusNotFound, ErrCodeNotFound)
}
