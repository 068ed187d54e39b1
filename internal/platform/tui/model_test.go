package tui

import (
	"path/filepath"
	"testing"

	"github.com/vporoshin/tetrois/internal/core"
	"github.com/vporoshin/tetrois/internal/storage"
)

func openModelStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sessionModel(store *storage.Store, state core.GameState) Model {
	return Model{
		store:      store,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  state,
	}
}

func TestQuitPersistsResult(t *testing.T) {
	store := openModelStore(t)
	m := sessionModel(store, core.GameState{Score: 100, Level: 2, Lines: 12})

	_, cmd := m.handleKey(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit key should produce a quit command")
	}

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if hs != 100 {
		t.Errorf("stored high score after quit = %d, expected 100", hs)
	}
}

func TestQuitDoesNotOverwriteHigherRecord(t *testing.T) {
	store := openModelStore(t)
	if _, err := store.SaveResult(500, 3, 40); err != nil {
		t.Fatal(err)
	}
	m := sessionModel(store, core.GameState{Score: 100, Level: 1, Lines: 2})

	m.handleKey(keyMsg("ctrl+c"))

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if hs != 500 {
		t.Errorf("stored high score = %d, expected 500 to stand", hs)
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("quit with a lower score should not add a row, got %d rows", len(results))
	}
}

func TestQuitAfterGameOverSaveDoesNotSaveTwice(t *testing.T) {
	store := openModelStore(t)
	m := sessionModel(store, core.GameState{Score: 100, Level: 1, Lines: 2, GameOver: true})
	m.resultSaved = true // Game-over tick already persisted

	m.handleKey(keyMsg("q"))

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("already-saved session should not persist again on quit, got %d rows", len(results))
	}
}

func TestZeroScoreSessionRefreshesZeroRecord(t *testing.T) {
	store := openModelStore(t)
	m := sessionModel(store, core.GameState{Score: 0, Level: 1, Lines: 0})

	m.saveResult()

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatal(err)
	}
	// Zero ties the empty record, and a tie refreshes it
	if len(results) != 1 {
		t.Fatalf("zero-score session should write one row, got %d", len(results))
	}
	if results[0].Score != 0 {
		t.Errorf("stored score = %d, expected 0", results[0].Score)
	}
}

func TestSaveResultWithoutStoreIsNoop(t *testing.T) {
	m := sessionModel(nil, core.GameState{Score: 100})
	m.saveResult() // Must not panic
}
