package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("water boils at 100C")
	if err := c.Set(key, []byte("snippets"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("Expected cache hit")
	}
	if string(val) != "snippets" {
		t.Errorf("Expected cached value, got %q", val)
	}
}

func TestMemoryCache_MissForUnknownKey(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get(Key("never stored")); found {
		t.Error("Expected cache miss")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("to delete")
	_ = c.Set(key, []byte("x"), time.Minute)
	if err := c.Delete(key); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected key to be gone after delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set(Key("a"), []byte("1"), time.Minute)
	_ = c.Set(Key("b"), []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get(Key("a")); found {
		t.Error("Expected cache to be empty after clear")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("short lived")
	_ = c.Set(key, []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("Expected entry to expire")
	}
}

func TestKey_DeterministicAndDistinct(t *testing.T) {
	if Key("same") != Key("same") {
		t.Error("Expected identical queries to share a key")
	}
	if Key("one") == Key("two") {
		t.Error("Expected distinct queries to have distinct keys")
	}
}
