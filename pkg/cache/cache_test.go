package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("svg bytes"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() reported a miss for a stored key")
	}
	if string(data) != "svg bytes" {
		t.Errorf("Get() = %q, want %q", data, "svg bytes")
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	_, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() reported a hit for an absent key")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("data"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get() returned a deleted entry")
	}

	// Deleting an absent key is not an error.
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() of absent key error = %v", err)
	}
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("NullCache returned a hit")
	}
}

func TestArtifactKey(t *testing.T) {
	a := ArtifactKey("hash1", "svg", "style1")
	if !strings.HasPrefix(a, "artifact:") {
		t.Errorf("ArtifactKey() = %q, want artifact: prefix", a)
	}

	// Any input change yields a different key.
	variants := []string{
		ArtifactKey("hash2", "svg", "style1"),
		ArtifactKey("hash1", "png", "style1"),
		ArtifactKey("hash1", "svg", "style2"),
	}
	for _, v := range variants {
		if v == a {
			t.Errorf("ArtifactKey() collision: %q", v)
		}
	}

	// Same inputs yield the same key.
	if ArtifactKey("hash1", "svg", "style1") != a {
		t.Error("ArtifactKey() is not deterministic")
	}
}

func TestHashDeterministic(t *testing.T) {
	if Hash([]byte("abc")) != Hash([]byte("abc")) {
		t.Error("Hash() is not deterministic")
	}
	if len(Hash([]byte("abc"))) != 64 {
		t.Errorf("Hash() length = %d, want 64", len(Hash([]byte("abc"))))
	}
}
