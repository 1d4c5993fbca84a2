package cache

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testKey struct {
	radius  float64
	percent float64
}

func TestEnsureValidFirstUseIsFresh(t *testing.T) {
	var e Entry[testKey]

	got, err := e.EnsureValid(10, 20, testKey{radius: 4, percent: 1})
	if err != nil {
		t.Fatalf("EnsureValid() error = %v", err)
	}
	if diff := cmp.Diff(Outcome{}, got); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	if !got.Fresh() {
		t.Error("first EnsureValid should be fresh")
	}
	if w, h := e.Size(); w != 10 || h != 20 {
		t.Errorf("Size() = %dx%d, want 10x20", w, h)
	}
	if len(e.Bitmap()) != 200 || len(e.Scratch()) != 200 {
		t.Errorf("buffer lengths = %d/%d, want 200", len(e.Bitmap()), len(e.Scratch()))
	}
}

func TestEnsureValidOutcomes(t *testing.T) {
	k1 := testKey{radius: 4, percent: 1}
	k2 := testKey{radius: 4, percent: 0.5}

	tests := []struct {
		name  string
		steps func(t *testing.T, e *Entry[testKey]) Outcome
		want  Outcome
	}{
		{
			name: "same key after commit is reused",
			steps: func(t *testing.T, e *Entry[testKey]) Outcome {
				mustEnsure(t, e, 10, 10, k1)
				e.Commit()
				return mustEnsure(t, e, 10, 10, k1)
			},
			want: Outcome{Reused: true},
		},
		{
			name: "same key without commit is stale",
			steps: func(t *testing.T, e *Entry[testKey]) Outcome {
				mustEnsure(t, e, 10, 10, k1)
				return mustEnsure(t, e, 10, 10, k1)
			},
			want: Outcome{NeedsClear: true},
		},
		{
			name: "different key is stale",
			steps: func(t *testing.T, e *Entry[testKey]) Outcome {
				mustEnsure(t, e, 10, 10, k1)
				e.Commit()
				return mustEnsure(t, e, 10, 10, k2)
			},
			want: Outcome{NeedsClear: true},
		},
		{
			name: "smaller size within hysteresis is stale",
			steps: func(t *testing.T, e *Entry[testKey]) Outcome {
				mustEnsure(t, e, 10, 10, k1)
				e.Commit()
				return mustEnsure(t, e, 6, 9, k1)
			},
			want: Outcome{NeedsClear: true},
		},
		{
			name: "larger size reallocates",
			steps: func(t *testing.T, e *Entry[testKey]) Outcome {
				mustEnsure(t, e, 10, 10, k1)
				e.Commit()
				return mustEnsure(t, e, 11, 10, k1)
			},
			want: Outcome{},
		},
		{
			name: "less than half the allocation reallocates",
			steps: func(t *testing.T, e *Entry[testKey]) Outcome {
				mustEnsure(t, e, 10, 10, k1)
				e.Commit()
				return mustEnsure(t, e, 4, 10, k1)
			},
			want: Outcome{},
		},
		{
			name: "invalidate forces redraw",
			steps: func(t *testing.T, e *Entry[testKey]) Outcome {
				mustEnsure(t, e, 10, 10, k1)
				e.Commit()
				e.Invalidate()
				return mustEnsure(t, e, 10, 10, k1)
			},
			want: Outcome{NeedsClear: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entry[testKey]
			got := tt.steps(t, &e)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnsureValidShrinkKeepsBuffers(t *testing.T) {
	var e Entry[testKey]
	mustEnsure(t, &e, 100, 100, testKey{})
	first := &e.Bitmap()[0]

	mustEnsure(t, &e, 60, 50, testKey{})

	if &e.Bitmap()[0] != first {
		t.Error("bitmap was reallocated for a size within hysteresis")
	}
	if w, h := e.Allocated(); w != 100 || h != 100 {
		t.Errorf("Allocated() = %dx%d, want 100x100", w, h)
	}
	if w, h := e.Size(); w != 60 || h != 50 {
		t.Errorf("Size() = %dx%d, want 60x50", w, h)
	}
	if len(e.Bitmap()) != 3000 {
		t.Errorf("len(Bitmap()) = %d, want 3000", len(e.Bitmap()))
	}
}

func TestEnsureValidInvalidSize(t *testing.T) {
	var e Entry[testKey]
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := e.EnsureValid(size[0], size[1], testKey{}); err == nil {
			t.Errorf("EnsureValid(%d, %d) error = nil, want error", size[0], size[1])
		}
	}
}

func TestEnsureValidAllocationFailure(t *testing.T) {
	var e Entry[testKey]
	_, err := e.EnsureValid(1<<31, 1<<31, testKey{})
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("EnsureValid(huge) error = %v, want ErrAllocation", err)
	}
	if w, h := e.Allocated(); w != 0 || h != 0 {
		t.Errorf("failed allocation left buffers %dx%d", w, h)
	}

	// The entry stays usable.
	if _, err := e.EnsureValid(4, 4, testKey{}); err != nil {
		t.Errorf("EnsureValid after failure error = %v", err)
	}
}

func TestClearAndReset(t *testing.T) {
	var e Entry[testKey]
	mustEnsure(t, &e, 4, 4, testKey{radius: 1})
	for i := range e.Bitmap() {
		e.Bitmap()[i] = 9
	}
	e.Commit()

	e.Clear()
	for i, v := range e.Bitmap() {
		if v != 0 {
			t.Fatalf("Bitmap()[%d] = %d after Clear, want 0", i, v)
		}
	}

	e.Reset()
	got := mustEnsure(t, &e, 4, 4, testKey{radius: 1})
	if !got.Fresh() {
		t.Errorf("outcome after Reset = %v, want fresh", got)
	}
}

func TestStats(t *testing.T) {
	var e Entry[testKey]
	k := testKey{radius: 2}

	mustEnsure(t, &e, 8, 8, k)
	e.Commit()
	mustEnsure(t, &e, 8, 8, k)
	mustEnsure(t, &e, 8, 8, k)
	mustEnsure(t, &e, 8, 8, testKey{radius: 3})

	want := Stats{Hits: 2, Redraws: 1, Allocations: 1}
	if diff := cmp.Diff(want, e.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{Outcome{}, "fresh"},
		{Outcome{NeedsClear: true}, "stale"},
		{Outcome{Reused: true}, "reused"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func mustEnsure(t *testing.T, e *Entry[testKey], w, h int, k testKey) Outcome {
	t.Helper()
	o, err := e.EnsureValid(w, h, k)
	if err != nil {
		t.Fatalf("EnsureValid(%d, %d) error = %v", w, h, err)
	}
	return o
}

func BenchmarkEnsureValidHit(b *testing.B) {
	var e Entry[testKey]
	k := testKey{radius: 8, percent: 1}
	if _, err := e.EnsureValid(256, 256, k); err != nil {
		b.Fatal(err)
	}
	e.Commit()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = e.EnsureValid(256, 256, k)
	}
}
