package storage

import "testing"

func TestLoadStreakMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadStreak("nobody")
	if err != nil {
		t.Fatalf("LoadStreak() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("missing streak = %d, want 0", got)
	}
}

func TestSaveStreakUpserts(t *testing.T) {
	store := openTestStore(t)

	for _, v := range []int{1, 2, 0, 9} {
		if err := store.SaveStreak("ada", v); err != nil {
			t.Fatalf("SaveStreak(%d) failed: %v", v, err)
		}
		got, err := store.LoadStreak("ada")
		if err != nil {
			t.Fatalf("LoadStreak() failed: %v", err)
		}
		if got != v {
			t.Errorf("after SaveStreak(%d) loaded %d", v, got)
		}
	}
}

func TestStreaksArePerPlayer(t *testing.T) {
	store := openTestStore(t)

	store.SaveStreak("ada", 3)
	store.SaveStreak("bob", 7)

	if got, _ := store.LoadStreak("ada"); got != 3 {
		t.Errorf("ada = %d, want 3", got)
	}
	if got, _ := store.LoadStreak("bob"); got != 7 {
		t.Errorf("bob = %d, want 7", got)
	}
}

func TestLoadStreakNonNumericIsZero(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO streaks (player, value) VALUES (?, ?)", "ada", "lots"); err != nil {
		t.Fatal(err)
	}

	got, err := store.LoadStreak("ada")
	if err != nil {
		t.Fatalf("LoadStreak() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("non-numeric streak = %d, want 0", got)
	}
}

func TestResetStreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveStreak("ada", 5)
	if err := store.ResetStreak("ada"); err != nil {
		t.Fatalf("ResetStreak() failed: %v", err)
	}
	if got, _ := store.LoadStreak("ada"); got != 0 {
		t.Errorf("streak after reset = %d, want 0", got)
	}
}

func TestStreakStorePersister(t *testing.T) {
	store := openTestStore(t)
	p := store.StreakStore("ada")

	if err := p.Save(12); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := p.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 12 {
		t.Errorf("Load() = %d, want 12", got)
	}
}
