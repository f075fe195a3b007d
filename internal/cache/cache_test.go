package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestCacheBasicOperations(t *testing.T) {
	cache := NewCache[string, string]()

	t.Run("Set and Get", func(t *testing.T) {
		cache.Set("key", "value")

		got, ok := cache.Get("key")
		if !ok {
			t.Fatal("Expected key to exist")
		}
		if got != "value" {
			t.Errorf("Expected 'value', got %q", got)
		}
	})

	t.Run("Get missing key", func(t *testing.T) {
		if _, ok := cache.Get("missing"); ok {
			t.Error("Expected missing key to not exist")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		cache.Set("gone", "x")
		cache.Delete("gone")
		if _, ok := cache.Get("gone"); ok {
			t.Error("Expected deleted key to not exist")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		cache.Set("a", "1")
		cache.Clear()
		if _, ok := cache.Get("a"); ok {
			t.Error("Expected cleared cache to be empty")
		}
	})

	t.Run("SetTo replaces contents", func(t *testing.T) {
		cache.Set("old", "x")
		cache.SetTo(map[string]string{"new": "y"})

		if _, ok := cache.Get("old"); ok {
			t.Error("Expected old key to be gone after SetTo")
		}
		if got, ok := cache.Get("new"); !ok || got != "y" {
			t.Errorf("Expected new key with value 'y', got %q (%v)", got, ok)
		}
	})
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache[string, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			cache.Set(fmt.Sprintf("key-%d", n), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			cache.Get(fmt.Sprintf("key-%d", n))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		if got, ok := cache.Get(fmt.Sprintf("key-%d", i)); !ok || got != i {
			t.Errorf("Expected key-%d = %d, got %d (%v)", i, i, got, ok)
		}
	}
}

func TestStaticHashCache(t *testing.T) {
	SetStaticHash("/static/site.css", "abc123")

	hash, ok := GetStaticHash("/static/site.css")
	if !ok {
		t.Fatal("Expected static hash to exist")
	}
	if hash != "abc123" {
		t.Errorf("Expected 'abc123', got %q", hash)
	}

	if _, ok := GetStaticHash("/static/missing.js"); ok {
		t.Error("Expected missing path to not exist")
	}
}
