package kv

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, ok, err := s.Get(ctx, KeyCategories); err != nil || ok {
		t.Fatalf("Get on empty store = ok %t err %v, want absent", ok, err)
	}

	if err := s.Set(ctx, KeyCategories, `[]`); err != nil {
		t.Fatal(err)
	}
	val, ok, err := s.Get(ctx, KeyCategories)
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok %t err %v", ok, err)
	}
	if val != `[]` {
		t.Errorf("Get = %q, want %q", val, `[]`)
	}
}

func TestDiskStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()

	s, err := Open(&fileConfig{Path: base})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok, err := s.Get(ctx, KeyAlarms); err != nil || ok {
		t.Fatalf("Get on fresh store = ok %t err %v, want absent without error", ok, err)
	}

	if err := s.Set(ctx, KeyAlarms, `{"t1":"09:00"}`); err != nil {
		t.Fatal(err)
	}

	// A second open over the same path sees the write.
	reopened, err := Open(&fileConfig{Path: base})
	if err != nil {
		t.Fatal(err)
	}
	val, ok, err := reopened.Get(ctx, KeyAlarms)
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok %t err %v", ok, err)
	}
	if val != `{"t1":"09:00"}` {
		t.Errorf("Get = %q, want the stored blob", val)
	}
}

func TestDiskStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s, err := Open(&fileConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	for _, blob := range []string{`["a"]`, `["a","b"]`, `[]`} {
		if err := s.Set(ctx, KeyDayTasks, blob); err != nil {
			t.Fatal(err)
		}
	}
	val, _, err := s.Get(ctx, KeyDayTasks)
	if err != nil {
		t.Fatal(err)
	}
	if val != `[]` {
		t.Errorf("Get = %q, want the last write to win", val)
	}
}
