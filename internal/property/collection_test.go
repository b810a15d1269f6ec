package property

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

// validFields returns a complete, valid Create input.
func validFields(name string, price int64) Fields {
	return Fields{
		ManagerName: name,
		Address:     "Lenina 1",
		RoomsCount:  Int(2),
		TotalArea:   Float(50.0),
		Price:       Int64(price),
	}
}

// seededCollection returns a collection holding the two sample listings.
func seededCollection(t *testing.T) *Collection {
	t.Helper()

	c := NewCollection()
	if err := c.Seed(context.Background(), SampleProperties()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return c
}

// ─── Create ───────────────────────────────────────────────────────

func TestCollection_CreateAssignsFirstID(t *testing.T) {
	c := NewCollection()

	got, err := c.Create(context.Background(), Fields{
		ManagerName: "A",
		Address:     "X",
		RoomsCount:  Int(2),
		TotalArea:   Float(50.0),
		Price:       Int64(1000000),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := Property{ID: 1, ManagerName: "A", Address: "X", RoomsCount: 2, TotalArea: 50.0, Price: 1000000}
	if got != want {
		t.Errorf("Create() = %+v, want %+v", got, want)
	}
}

func TestCollection_IDsStrictlyIncrease(t *testing.T) {
	c := NewCollection()
	ctx := context.Background()

	// Interleave creates and deletes, including deleting the newest record.
	steps := []struct {
		create bool
		delete int
	}{
		{create: true}, {create: true}, {create: true},
		{delete: 3},
		{create: true},
		{delete: 1},
		{create: true},
		{delete: 5},
		{create: true},
	}

	seen := map[int]bool{}
	last := 0
	for _, step := range steps {
		if !step.create {
			if err := c.Delete(ctx, step.delete); err != nil {
				t.Fatalf("Delete(%d) error = %v", step.delete, err)
			}
			continue
		}

		p, err := c.Create(ctx, validFields("M", 1))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if p.ID <= last {
			t.Errorf("id %d not greater than previous %d", p.ID, last)
		}
		if seen[p.ID] {
			t.Errorf("id %d reused", p.ID)
		}
		seen[p.ID] = true
		last = p.ID
	}

	if last != 6 {
		t.Errorf("last id = %d, want 6", last)
	}
}

func TestCollection_CreateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name      string
		fields    Fields
		wantField string
	}{
		{"missing manager", Fields{Address: "X", RoomsCount: Int(1), TotalArea: Float(1), Price: Int64(1)}, FieldManagerName},
		{"missing address", Fields{ManagerName: "A", RoomsCount: Int(1), TotalArea: Float(1), Price: Int64(1)}, FieldAddress},
		{"missing rooms", Fields{ManagerName: "A", Address: "X", TotalArea: Float(1), Price: Int64(1)}, FieldRoomsCount},
		{"missing area", Fields{ManagerName: "A", Address: "X", RoomsCount: Int(1), Price: Int64(1)}, FieldTotalArea},
		{"missing price", Fields{ManagerName: "A", Address: "X", RoomsCount: Int(1), TotalArea: Float(1)}, FieldPrice},
		{"negative rooms", Fields{ManagerName: "A", Address: "X", RoomsCount: Int(-1), TotalArea: Float(1), Price: Int64(1)}, FieldRoomsCount},
		{"negative area", Fields{ManagerName: "A", Address: "X", RoomsCount: Int(1), TotalArea: Float(-0.5), Price: Int64(1)}, FieldTotalArea},
		{"negative price", Fields{ManagerName: "A", Address: "X", RoomsCount: Int(1), TotalArea: Float(1), Price: Int64(-1)}, FieldPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection()

			_, err := c.Create(context.Background(), tt.fields)
			if !errors.Is(err, ErrInvalidProperty) {
				t.Fatalf("Create() error = %v, want ErrInvalidProperty", err)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error is not a *ValidationError: %T", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want entry for %q", verr.Fields, tt.wantField)
			}
			if c.Count() != 0 {
				t.Error("invalid create must not touch the collection")
			}
		})
	}
}

func TestCollection_CreateAcceptsZeroValues(t *testing.T) {
	c := NewCollection()

	p, err := c.Create(context.Background(), Fields{
		ManagerName: "A", Address: "X", RoomsCount: Int(0), TotalArea: Float(0), Price: Int64(0),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.RoomsCount != 0 || p.TotalArea != 0 || p.Price != 0 {
		t.Errorf("Create() = %+v", p)
	}
}

func TestCollection_FailedCreateDoesNotConsumeID(t *testing.T) {
	c := NewCollection()
	ctx := context.Background()

	if _, err := c.Create(ctx, Fields{}); err == nil {
		t.Fatal("expected validation error")
	}
	p, err := c.Create(ctx, validFields("A", 1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID != 1 {
		t.Errorf("id = %d, want 1", p.ID)
	}
}

// ─── Get / List ───────────────────────────────────────────────────

func TestCollection_GetAfterCreate(t *testing.T) {
	c := seededCollection(t)
	ctx := context.Background()

	created, err := c.Create(ctx, validFields("Olga", 4200000))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := c.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != created {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}
}

func TestCollection_GetNotFound(t *testing.T) {
	c := seededCollection(t)

	_, err := c.Get(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	if want := "property 7 not found"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %q", err.Error(), want)
	}
}

func TestCollection_ListInsertionOrder(t *testing.T) {
	c := NewCollection()
	ctx := context.Background()

	names := []string{"Zoe", "Adam", "Mila"}
	for _, n := range names {
		if _, err := c.Create(ctx, validFields(n, 1)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	for _, opts := range []ListOptions{{}, {SortBy: "unknown"}, {SortBy: "", Order: "desc"}} {
		got, err := c.List(ctx, opts)
		if err != nil {
			t.Fatalf("List(%+v) error = %v", opts, err)
		}
		if len(got) != len(names) {
			t.Fatalf("List(%+v) returned %d, want %d", opts, len(got), len(names))
		}
		for i, n := range names {
			if got[i].ManagerName != n {
				t.Errorf("List(%+v)[%d] = %q, want %q", opts, i, got[i].ManagerName, n)
			}
		}
	}
}

func TestCollection_ListSortedByPriceDesc(t *testing.T) {
	c := seededCollection(t)

	got, err := c.List(context.Background(), ListOptions{SortBy: FieldPrice, Order: "desc"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got[0].Price != 8500000 || got[1].Price != 5000000 {
		t.Errorf("prices = [%d %d], want [8500000 5000000]", got[0].Price, got[1].Price)
	}
}

func TestCollection_ListDoesNotReorderStorage(t *testing.T) {
	c := seededCollection(t)
	ctx := context.Background()

	if _, err := c.List(ctx, ListOptions{SortBy: FieldPrice, Order: "DESC"}); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	got, err := c.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("stored order changed: ids [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestCollection_ListReturnsCopy(t *testing.T) {
	c := seededCollection(t)
	ctx := context.Background()

	got, _ := c.List(ctx, ListOptions{}) //nolint:errcheck // List never fails
	got[0].Price = 1

	again, _ := c.List(ctx, ListOptions{}) //nolint:errcheck // List never fails
	if again[0].Price == 1 {
		t.Error("mutating a List result changed stored state")
	}
}

// ─── Update ───────────────────────────────────────────────────────

func TestCollection_UpdateMergesOneField(t *testing.T) {
	c := seededCollection(t)
	ctx := context.Background()

	before, _ := c.Get(ctx, 1) //nolint:errcheck // seeded
	got, err := c.Update(ctx, 1, Patch{Price: Int64(5500000)})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := before
	want.Price = 5500000
	if got != want {
		t.Errorf("Update() = %+v, want %+v", got, want)
	}
	stored, _ := c.Get(ctx, 1) //nolint:errcheck // seeded
	if stored != want {
		t.Errorf("stored = %+v, want %+v", stored, want)
	}
}

func TestCollection_UpdateAllFields(t *testing.T) {
	c := seededCollection(t)

	got, err := c.Update(context.Background(), 2, Patch{
		ManagerName: String("Petr"),
		Address:     String("Mira 5"),
		RoomsCount:  Int(1),
		TotalArea:   Float(30.5),
		Price:       Int64(3000000),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	want := Property{ID: 2, ManagerName: "Petr", Address: "Mira 5", RoomsCount: 1, TotalArea: 30.5, Price: 3000000}
	if got != want {
		t.Errorf("Update() = %+v, want %+v", got, want)
	}
}

func TestCollection_FailedUpdateLeavesRecord(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
	}{
		{"empty manager", Patch{ManagerName: String("")}},
		{"negative price", Patch{Price: Int64(-10), Address: String("Valid 1")}},
		{"negative area", Patch{TotalArea: Float(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := seededCollection(t)
			ctx := context.Background()
			before, _ := c.Get(ctx, 1) //nolint:errcheck // seeded

			if _, err := c.Update(ctx, 1, tt.patch); !errors.Is(err, ErrInvalidProperty) {
				t.Fatalf("Update() error = %v, want ErrInvalidProperty", err)
			}

			after, _ := c.Get(ctx, 1) //nolint:errcheck // seeded
			if after != before {
				t.Errorf("record changed after failed update: %+v -> %+v", before, after)
			}
		})
	}
}

func TestCollection_UpdateNotFound(t *testing.T) {
	c := seededCollection(t)

	if _, err := c.Update(context.Background(), 99, Patch{Price: Int64(1)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestCollection_EmptyPatchIsNoop(t *testing.T) {
	c := seededCollection(t)
	ctx := context.Background()
	before, _ := c.Get(ctx, 2) //nolint:errcheck // seeded

	got, err := c.Update(ctx, 2, Patch{})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got != before {
		t.Errorf("Update(empty) = %+v, want %+v", got, before)
	}
}

// ─── Delete ───────────────────────────────────────────────────────

func TestCollection_DeleteThenGet(t *testing.T) {
	c := seededCollection(t)
	ctx := context.Background()

	if err := c.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := c.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := c.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}
}

func TestCollection_DeleteNewestDoesNotReuseID(t *testing.T) {
	c := seededCollection(t)
	ctx := context.Background()

	if err := c.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	p, err := c.Create(ctx, validFields("New", 1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID != 3 {
		t.Errorf("id = %d, want 3", p.ID)
	}
}

// ─── Stats ────────────────────────────────────────────────────────

func TestCollection_StatsSamples(t *testing.T) {
	c := seededCollection(t)

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	price := stats[FieldPrice]
	if price.Avg != 6750000 || price.Max != 8500000 || price.Min != 5000000 {
		t.Errorf("price stats = %+v", price)
	}
	rooms := stats[FieldRoomsCount]
	if rooms.Avg != 3.5 || rooms.Max != 4 || rooms.Min != 3 {
		t.Errorf("rooms stats = %+v", rooms)
	}
}

func TestCollection_StatsEmpty(t *testing.T) {
	c := NewCollection()

	if _, err := c.Stats(context.Background()); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("Stats() error = %v, want ErrEmptyCollection", err)
	}
}

// ─── Concurrency ──────────────────────────────────────────────────

func TestCollection_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	c := NewCollection()
	ctx := context.Background()

	const workers = 50
	ids := make(chan int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := c.Create(ctx, validFields("W", 1))
			if err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			ids <- p.ID
			_, _ = c.List(ctx, ListOptions{SortBy: FieldID, Order: "desc"}) //nolint:errcheck // exercising the read path
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers || c.Count() != workers {
		t.Errorf("unique ids = %d, count = %d, want %d", len(seen), c.Count(), workers)
	}
}
