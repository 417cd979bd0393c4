package booking

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func tempDB(t *testing.T) *Database {
	t.Helper()
	dir := t.TempDir()
	db, err := NewDatabase(filepath.Join(dir, "test.db"), quietLogger())
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := tempDB(t).Store("hotels")

	sample := Records{
		"H1": json.RawMessage(`{"hotel_id":"H1","name":"A","rooms_total":2,"rooms_available":1}`),
		"H2": json.RawMessage(`"not-a-dict"`),
	}
	if err := store.Save(sample); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := store.Load()
	if len(got) != len(sample) {
		t.Fatalf("want %d records, got %d", len(sample), len(got))
	}
	for id, want := range sample {
		if string(got[id]) != string(want) {
			t.Fatalf("record %s: want %s, got %s", id, want, got[id])
		}
	}
}

func TestSQLiteStore_EmptyCollection(t *testing.T) {
	store := tempDB(t).Store("reservations")
	if got := store.Load(); len(got) != 0 {
		t.Fatalf("want empty collection, got %v", got)
	}
}

// TestSQLiteStore_SaveReplacesCollection checks replace-all semantics and
// that collections sharing a database stay independent.
func TestSQLiteStore_SaveReplacesCollection(t *testing.T) {
	db := tempDB(t)
	hotels := db.Store("hotels")
	customers := db.Store("customers")

	if err := hotels.Save(Records{"H1": json.RawMessage(`{}`), "H2": json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("save hotels: %v", err)
	}
	if err := customers.Save(Records{"C1": json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("save customers: %v", err)
	}
	if err := hotels.Save(Records{"H3": json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("replace hotels: %v", err)
	}

	got := hotels.Load()
	if len(got) != 1 || got["H3"] == nil {
		t.Fatalf("want only H3, got %v", got)
	}
	if got := customers.Load(); len(got) != 1 || got["C1"] == nil {
		t.Fatalf("customers changed: %v", got)
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hotels.db")
	db, err := NewDatabase(path, quietLogger())
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	if err := db.Store("customers").Save(Records{"C1": json.RawMessage(`{"customer_id":"C1","name":"Andrea"}`)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	db.Close()

	db, err = NewDatabase(path, quietLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got := db.Store("customers").Load()
	if string(got["C1"]) != `{"customer_id":"C1","name":"Andrea"}` {
		t.Fatalf("unexpected record after reopen: %s", got["C1"])
	}
}

func TestSQLiteStore_RejectsInvalidJSON(t *testing.T) {
	store := tempDB(t).Store("hotels")
	if err := store.Save(Records{"H1": json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("save: %v", err)
	}

	err := store.Save(Records{"H2": json.RawMessage(`{broken`)})
	if err == nil {
		t.Fatalf("expected error saving invalid JSON")
	}
	// the failed transaction must leave the previous contents in place
	if got := store.Load(); got["H1"] == nil || got["H2"] != nil {
		t.Fatalf("collection changed by failed save: %v", got)
	}
}

func TestSQLiteStore_SkipsUnparsableRows(t *testing.T) {
	db := tempDB(t)
	if _, err := db.db.Exec(`INSERT INTO records(collection,id,body) VALUES('hotels','H1','{oops'),('hotels','H2','{}')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got := db.Store("hotels").Load()
	if len(got) != 1 || got["H2"] == nil {
		t.Fatalf("want only H2, got %v", got)
	}
}

func TestSQLiteStore_RoundTripKeepsHTMLCharacters(t *testing.T) {
	store := tempDB(t).Store("hotels")
	sample := Records{"H1": json.RawMessage(`{"name":"A&B <Inn>"}`)}

	if err := store.Save(sample); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := store.Load()["H1"]; string(got) != `{"name":"A&B <Inn>"}` {
		t.Fatalf("unexpected record: %s", got)
	}
}
