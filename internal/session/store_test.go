package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arenacode/arenactl/internal/api"
)

func TestStore(t *testing.T) {
	store := NewStore()
	if store.IsAuthenticated() {
		t.Fatal("New store should be logged out")
	}
	user := api.Session{UserID: 1, Name: "test"}
	store.Login(user)
	if !store.IsAuthenticated() {
		t.Fatal("Store should be authenticated")
	}
	if current, ok := store.Current(); !ok || current != user {
		t.Fatalf("Expected %v, got %v", user, current)
	}
	store.Logout()
	if store.IsAuthenticated() {
		t.Fatal("Store should be logged out")
	}
}

func TestStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena", "session.json")
	store := NewStore()
	if err := store.LoadFile(path); err != nil {
		t.Fatal("Error:", err)
	}
	if store.IsAuthenticated() {
		t.Fatal("Missing file should leave store logged out")
	}
	user := api.Session{UserID: 42, Name: "test", Email: "test@example.com"}
	store.Login(user)
	if err := store.SaveFile(path); err != nil {
		t.Fatal("Error:", err)
	}
	restored := NewStore()
	if err := restored.LoadFile(path); err != nil {
		t.Fatal("Error:", err)
	}
	if current, ok := restored.Current(); !ok || current != user {
		t.Fatalf("Expected %v, got %v", user, current)
	}
	restored.Logout()
	if err := restored.SaveFile(path); err != nil {
		t.Fatal("Error:", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("Session file should be removed on logout")
	}
	// Removing an already removed file is fine.
	if err := restored.SaveFile(path); err != nil {
		t.Fatal("Error:", err)
	}
}
