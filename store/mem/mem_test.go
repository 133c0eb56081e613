package mem

import (
	"context"
	"reflect"
	"sort"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestBucketTracking(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exists, err := s.BucketExists(ctx, "cache")
	if err != nil || exists {
		t.Fatalf("fresh store should have no buckets, got exists=%v err=%v", exists, err)
	}

	// object ops against a missing bucket must error, not invent one
	if _, _, err := s.GetObject(ctx, "cache", "k"); err == nil {
		t.Fatalf("expected error reading from missing bucket")
	}
	if err := s.PutObject(ctx, "cache", "k", []byte("v"), ""); err == nil {
		t.Fatalf("expected error writing to missing bucket")
	}

	if err := s.MakeBucket(ctx, "cache"); err != nil {
		t.Fatalf("MakeBucket: %v", err)
	}
	exists, _ = s.BucketExists(ctx, "cache")
	if !exists {
		t.Fatalf("bucket should exist after MakeBucket")
	}
}

func TestObjectCRUDAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if err := s.MakeBucket(ctx, "cache"); err != nil {
		t.Fatalf("MakeBucket: %v", err)
	}

	if _, found, err := s.GetObject(ctx, "cache", "k"); err != nil || found {
		t.Fatalf("expected clean miss, got found=%v err=%v", found, err)
	}

	for _, name := range []string{"cache:a", "cache:b", "other:z"} {
		if err := s.PutObject(ctx, "cache", name, []byte("v-"+name), ""); err != nil {
			t.Fatalf("PutObject %q: %v", name, err)
		}
	}

	got, found, err := s.GetObject(ctx, "cache", "cache:a")
	if err != nil || !found || string(got) != "v-cache:a" {
		t.Fatalf("unexpected read: %q found=%v err=%v", got, found, err)
	}

	names, err := s.ListObjects(ctx, "cache", "cache:")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	sort.Strings(names) // iteration order is unspecified
	if want := []string{"cache:a", "cache:b"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("list mismatch: got %v want %v", names, want)
	}

	if err := s.RemoveObject(ctx, "cache", "cache:a"); err != nil {
		t.Fatalf("RemoveObject: %v", err)
	}
	if err := s.RemoveObject(ctx, "cache", "cache:a"); err != nil {
		t.Fatalf("RemoveObject on absent object: %v", err)
	}
	if _, found, _ := s.GetObject(ctx, "cache", "cache:a"); found {
		t.Fatalf("object still present after remove")
	}
}
