package system

import (
	"testing"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/utils"
)

func TestInitCloudsCreatesConfiguredCount(t *testing.T) {
	ecs := entity.NewECS()
	spawn := NewSpawnSystem(ecs, utils.NewPRNGService(42))

	spawn.InitClouds()

	if len(ecs.Clouds) != config.CloudCount {
		t.Fatalf("clouds = %d, want %d", len(ecs.Clouds), config.CloudCount)
	}
	for id, cloud := range ecs.Clouds {
		pos := ecs.Positions[id]
		if pos == nil {
			t.Fatal("cloud without position")
		}
		if cloud.Width <= 0 || cloud.Height <= 0 {
			t.Fatal("cloud with degenerate size")
		}
	}
}

func TestBirdSpawnsWithinInterval(t *testing.T) {
	ecs := entity.NewECS()
	spawn := NewSpawnSystem(ecs, utils.NewPRNGService(42))

	// За максимальный интервал должна появиться хотя бы одна птица
	for i := 0; i < 100; i++ {
		spawn.Update(config.BirdSpawnMax / 100)
	}
	if len(ecs.Birds) == 0 {
		t.Fatal("no birds spawned within the maximum interval")
	}

	for id, bird := range ecs.Birds {
		pos := ecs.Positions[id]
		if pos == nil {
			t.Fatal("bird without position")
		}
		if bird.Direction != 1 && bird.Direction != -1 {
			t.Fatalf("Direction = %d, want +-1", bird.Direction)
		}
		if bird.BaseY < 50 || bird.BaseY > ecs.Height/2 {
			t.Fatalf("BaseY = %f, out of flight band", bird.BaseY)
		}
	}
}

func TestPowerUpSpawnsEventually(t *testing.T) {
	ecs := entity.NewECS()
	spawn := NewSpawnSystem(ecs, utils.NewPRNGService(42))

	for i := 0; i < 300; i++ {
		spawn.Update(0.1)
	}
	if len(ecs.PowerUps) == 0 {
		t.Fatal("no power-ups spawned in 30 seconds")
	}
	for id, pu := range ecs.PowerUps {
		pos := ecs.Positions[id]
		if pos.X < 100 || pos.X > ecs.Width-100 {
			t.Fatalf("power-up X = %f, out of band", pos.X)
		}
		if pos.Y < 100 || pos.Y > 250 {
			t.Fatalf("power-up Y = %f, out of band", pos.Y)
		}
		if int(pu.Type) < 0 || int(pu.Type) >= config.PowerUpTypeCount {
			t.Fatalf("power-up type %d out of range", pu.Type)
		}
	}
}

func TestLaterWavesSpawnMoreElites(t *testing.T) {
	rng := utils.NewPRNGService(42)

	countElites := func(wave int) int {
		ecs := entity.NewECS()
		ecs.Session.Wave = wave
		spawn := NewSpawnSystem(ecs, rng)
		for i := 0; i < 500; i++ {
			spawn.spawnBird()
		}
		elites := 0
		for _, bird := range ecs.Birds {
			if bird.Type == component.BirdElite {
				elites++
			}
		}
		return elites
	}

	early := countElites(1)
	late := countElites(10)
	if late <= early {
		t.Fatalf("elites at wave 10 = %d, at wave 1 = %d, want more on later waves", late, early)
	}
}
