package kv

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestKV(t *testing.T) *DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store, err := New(db)
	if err != nil {
		t.Fatalf("new kv: %v", err)
	}
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := setupTestKV(t)
	if err := store.Put("salessnap:clients", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := store.Get("salessnap:clients")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestPutOverwrites(t *testing.T) {
	store := setupTestKV(t)
	if err := store.Put("k", []byte("a")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put("k", []byte("b")); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, ok, err := store.Get("k")
	if err != nil || !ok || string(got) != "b" {
		t.Fatalf("expected overwritten value, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := setupTestKV(t)
	_, ok, err := store.Get("absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss for absent key")
	}
}

func TestDelete(t *testing.T) {
	store := setupTestKV(t)
	if err := store.Put("k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Fatalf("expected key gone after delete")
	}
}

func TestNormalizeDSN(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{" salessnap.db ", "salessnap.db"},
		{"postgres://u:p@h/db", "postgres://u:p@h/db"},
		{"host=localhost user=u dbname=d", "host=localhost user=u dbname=d sslmode=disable"},
		{"host=localhost  sslmode=require", "host=localhost sslmode=require"},
	}
	for _, c := range cases {
		if got := NormalizeDSN(c.in); got != c.want {
			t.Errorf("NormalizeDSN(%q) = %q want %q", c.in, got, c.want)
		}
	}
}
