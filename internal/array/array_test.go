package array

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

func TestCollection_Get(t *testing.T) {
	c := NewCollection([]string{"1"})

	got := c.Get(context.Background())
	if got.Len != 1 || len(got.Array) != 1 || got.Array[0] != "1" {
		t.Errorf("Get() = %+v", got)
	}
}

func TestCollection_GetReturnsCopy(t *testing.T) {
	initial := []string{"a", "b"}
	c := NewCollection(initial)
	ctx := context.Background()

	initial[0] = "changed"
	snap := c.Get(ctx)
	snap.Array[1] = "changed"

	if again := c.Get(ctx); again.Array[0] != "a" || again.Array[1] != "b" {
		t.Errorf("stored list mutated through a copy: %v", again.Array)
	}
}

func TestCollection_Replace(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		wantLen int
	}{
		{"three items", []string{"1", "10", "9"}, 3},
		{"empty", []string{}, 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection([]string{"1"})
			ctx := context.Background()

			got := c.Replace(ctx, tt.items)
			if got.Len != tt.wantLen || len(got.Array) != tt.wantLen {
				t.Errorf("Replace() = %+v, want len %d", got, tt.wantLen)
			}
			if got.Array == nil {
				t.Error("Array should never be nil")
			}
			if c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
		})
	}
}

func TestCollection_MinMax(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  Extremes
	}{
		{"byte-wise order", []string{"1", "10", "9"}, Extremes{Min: "1", Max: "9"}},
		{"single", []string{"x"}, Extremes{Min: "x", Max: "x"}},
		{"words", []string{"pear", "apple", "zucchini"}, Extremes{Min: "apple", Max: "zucchini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCollection(tt.items).MinMax(context.Background())
			if err != nil {
				t.Fatalf("MinMax() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MinMax() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCollection_MinMaxEmpty(t *testing.T) {
	c := NewCollection(nil)

	if _, err := c.MinMax(context.Background()); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("MinMax() error = %v, want ErrEmptyCollection", err)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	b, err := json.Marshal(Snapshot{Len: 3, Array: []string{"1", "10", "9"}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"len":"3","array":["1","10","9"]}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}

	empty, _ := json.Marshal(NewCollection(nil).Get(context.Background())) //nolint:errcheck // plain struct
	if want := `{"len":"0","array":[]}`; string(empty) != want {
		t.Errorf("Marshal(empty) = %s, want %s", empty, want)
	}
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	c := NewCollection([]string{"1"})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Replace(ctx, []string{"a", "b", "c"})
		}()
		go func() {
			defer wg.Done()
			snap := c.Get(ctx)
			if snap.Len != len(snap.Array) {
				t.Errorf("Len %d does not match array length %d", snap.Len, len(snap.Array))
			}
		}()
	}
	wg.Wait()
}
