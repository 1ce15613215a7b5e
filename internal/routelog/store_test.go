package routelog

import (
	"context"
	"reflect"
	"testing"

	"rutakm/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.StateRepo) {
	t.Helper()
	dbPath := t.TempDir() + "/test.db"

	db, err := storage.New(dbPath)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}

	repo := storage.NewStateRepo(db)
	return NewStore(repo), repo
}

func sampleRecord(id, origin, destination string) Record {
	return Record{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Distance:    "2.3 km",
		Date:        "10/03/2025",
		Day:         "Lunes",
		WeekKey:     "2025-03-10",
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after loading empty slot, want 0", store.Len())
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	records := []Record{
		{
			ID: "b", Origin: "Plaza Ayuntamiento", Destination: "Calle Colón 1",
			Distance: "2.3 km", Date: "11/03/2025", Day: "Martes",
			WeekKey: "2025-03-10", Incidence: "Entrega urgente",
		},
		sampleRecord("a", "Calle Colón 1", "Plaza Ayuntamiento"),
	}
	store.InsertFront(records[1])
	store.InsertFront(records[0])

	if err := store.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded := NewStore(repo)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := reloaded.All()
	if !reflect.DeepEqual(got, records) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, records)
	}
}

func TestStore_LoadMalformedBlob(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	if err := repo.Put(ctx, StorageKey, "{not json"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Malformed history is discarded, never fatal.
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v, want nil for malformed blob", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after malformed blob, want 0", store.Len())
	}
}

func TestStore_Find(t *testing.T) {
	store, _ := newTestStore(t)
	store.InsertFront(sampleRecord("a", "Calle Colón 1", "Plaza Ayuntamiento"))

	tests := []struct {
		name        string
		origin      string
		destination string
		wantHit     bool
	}{
		{name: "exact match", origin: "Calle Colón 1", destination: "Plaza Ayuntamiento", wantHit: true},
		{name: "case-insensitive match", origin: "calle colón 1", destination: "PLAZA AYUNTAMIENTO", wantHit: true},
		{name: "surrounding whitespace ignored", origin: "  Calle Colón 1 ", destination: " Plaza Ayuntamiento", wantHit: true},
		{name: "different destination", origin: "Calle Colón 1", destination: "Mercado Central", wantHit: false},
		{name: "swapped pair is a different route", origin: "Plaza Ayuntamiento", destination: "Calle Colón 1", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.Find(tt.origin, tt.destination)
			if (got != nil) != tt.wantHit {
				t.Errorf("Find(%q, %q) hit = %v, want %v", tt.origin, tt.destination, got != nil, tt.wantHit)
			}
			if got != nil && got.ID != "a" {
				t.Errorf("Find() returned record %q, want %q", got.ID, "a")
			}
		})
	}
}

func TestStore_FindReturnsFirstInOrder(t *testing.T) {
	store, _ := newTestStore(t)
	store.InsertFront(sampleRecord("older", "A", "B"))
	store.InsertFront(sampleRecord("newer", "a", "b"))

	got := store.Find("A", "B")
	if got == nil || got.ID != "newer" {
		t.Errorf("Find() = %+v, want the newest matching record", got)
	}
}

func TestStore_InsertFrontOrder(t *testing.T) {
	store, _ := newTestStore(t)
	store.InsertFront(sampleRecord("first", "A", "B"))
	store.InsertFront(sampleRecord("second", "C", "D"))

	all := store.All()
	if len(all) != 2 || all[0].ID != "second" || all[1].ID != "first" {
		t.Errorf("All() order = %v, want newest first", []string{all[0].ID, all[1].ID})
	}
}

func TestStore_Remove(t *testing.T) {
	store, _ := newTestStore(t)
	store.InsertFront(sampleRecord("a", "A", "B"))
	store.InsertFront(sampleRecord("b", "C", "D"))

	if !store.Remove("a") {
		t.Error("Remove(existing) = false, want true")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d after remove, want 1", store.Len())
	}
	for _, r := range store.All() {
		if r.ID == "a" {
			t.Error("removed record still present")
		}
	}

	// Removing an unknown id is a no-op.
	if store.Remove("a") {
		t.Error("Remove(unknown) = true, want false")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d after no-op remove, want 1", store.Len())
	}
}

func TestStore_ByWeek(t *testing.T) {
	store, _ := newTestStore(t)

	inWeek := sampleRecord("a", "A", "B")
	other := sampleRecord("b", "C", "D")
	other.WeekKey = "2025-03-03"
	store.InsertFront(inWeek)
	store.InsertFront(other)

	got := store.ByWeek("2025-03-10")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("ByWeek() = %+v, want only record %q", got, "a")
	}

	if got := store.ByWeek("2020-01-06"); len(got) != 0 {
		t.Errorf("ByWeek(empty week) = %+v, want empty", got)
	}
}

func TestStore_SaveEmptyHistory(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	value, ok, err := repo.Get(ctx, StorageKey)
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}
	if value != "[]" {
		t.Errorf("persisted empty history = %q, want %q", value, "[]")
	}
}
