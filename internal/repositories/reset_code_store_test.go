package repositories

import (
	"sync"
	"testing"
	"time"
)

func TestResetCodeStorePutGetDelete(t *testing.T) {
	store := NewMemoryResetCodeStore()
	expires := time.Now().Add(10 * time.Minute)

	if _, ok := store.Get("carlos@example.com"); ok {
		t.Fatal("Expected no code before Put")
	}

	store.Put("carlos@example.com", "123456", expires)
	rc, ok := store.Get("carlos@example.com")
	if !ok || rc.Code != "123456" || !rc.ExpiresAt.Equal(expires) {
		t.Fatalf("Unexpected stored code: %+v ok=%v", rc, ok)
	}

	store.Delete("carlos@example.com")
	if _, ok := store.Get("carlos@example.com"); ok {
		t.Fatal("Expected code gone after Delete")
	}

	// Deleting again is a no-op.
	store.Delete("carlos@example.com")
}

func TestResetCodeStoreReplacesOnPut(t *testing.T) {
	store := NewMemoryResetCodeStore()
	store.Put("carlos@example.com", "111111", time.Now().Add(time.Minute))
	store.Put("carlos@example.com", "222222", time.Now().Add(time.Minute))

	rc, _ := store.Get("carlos@example.com")
	if rc.Code != "222222" {
		t.Fatalf("Expected latest code, got %q", rc.Code)
	}
}

func TestResetCodeStoreKeysAreIndependent(t *testing.T) {
	store := NewMemoryResetCodeStore()
	store.Put("a@example.com", "111111", time.Now().Add(time.Minute))
	store.Put("b@example.com", "222222", time.Now().Add(time.Minute))

	store.Delete("a@example.com")
	if _, ok := store.Get("b@example.com"); !ok {
		t.Fatal("Deleting one key must not touch another")
	}
}

func TestResetCodeStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryResetCodeStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Put("carlos@example.com", "123456", time.Now().Add(time.Minute))
			store.Get("carlos@example.com")
			store.Delete("carlos@example.com")
		}()
	}
	wg.Wait()
}
