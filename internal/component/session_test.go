package component

import (
	"testing"

	"go-bird-hunter/internal/config"
)

func TestGameOverOnlyWhenNoAmmoAndNoBalls(t *testing.T) {
	s := NewSession()
	if s.GameOver() {
		t.Fatal("fresh session must not be over")
	}

	s.Ammo = 0
	s.BallsInFlight = 1
	if s.GameOver() {
		t.Fatal("ball still in flight, game must not be over")
	}

	s.BallsInFlight = 0
	if !s.GameOver() {
		t.Fatal("no ammo and no balls in flight, game must be over")
	}
}

func TestResetRollsHighScoreForward(t *testing.T) {
	s := NewSession()
	s.Score = 250
	s.HighScore = 100
	s.Ammo = 0
	s.ComboCount = 7
	s.Wave = 4
	s.MultiShotArmed = true

	s.Reset()

	if s.HighScore != 250 {
		t.Fatalf("HighScore = %d, want 250", s.HighScore)
	}
	if s.Score != 0 {
		t.Fatalf("Score = %d, want 0", s.Score)
	}
	if s.Ammo != config.StartAmmo {
		t.Fatalf("Ammo = %d, want %d", s.Ammo, config.StartAmmo)
	}
	if s.ComboCount != 0 || s.Wave != 1 || s.MultiShotArmed {
		t.Fatal("transient session state must be cleared on reset")
	}
}

func TestResetKeepsBetterHighScore(t *testing.T) {
	s := NewSession()
	s.Score = 50
	s.HighScore = 100
	s.Reset()
	if s.HighScore != 100 {
		t.Fatalf("HighScore = %d, want 100", s.HighScore)
	}
}
