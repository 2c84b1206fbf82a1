package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](0)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if v, ok := c.Get("a"); !ok || v != 3 {
		t.Errorf("Get(a) = %d, %v, want 3, true", v, ok)
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](2)
	c.Set(1, "one")
	c.Set(2, "two")
	c.Get(1) // 2 is now the oldest
	c.Set(3, "three")

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	for _, k := range []int{1, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d missing", k)
		}
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 7
	}

	for range 3 {
		if v := c.GetOrCreate("k", create); v != 7 {
			t.Fatalf("GetOrCreate = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats = %+v, want 2 hits and 1 miss", s)
	}
	if got, want := s.HitRate(), 2.0/3.0; got != want {
		t.Errorf("HitRate() = %v, want %v", got, want)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Stats after Clear = %+v", s)
	}
	// The list must still work after Clear.
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v", v, ok)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g*31 + i) % 80)
				c.GetOrCreate(k, func() int { return i })
			}
		}()
	}
	wg.Wait()

	if got := c.Len(); got > 50 {
		t.Errorf("Len() = %d, want at most 50", got)
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for range b.N {
		c.Get("50")
	}
}
