package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/arena-shooter/internal/core"
)

func TestSpawnProbabilityFollowsGameTime(t *testing.T) {
	s := newTestSession()

	if p := s.SpawnProbability(); p != 0 {
		t.Errorf("probability at gameTime 0 = %v, expected 0", p)
	}

	s.gameTime = 100
	want := 1 - math.Pow(0.993, 100)
	if p := s.SpawnProbability(); math.Abs(p-want) > 1e-12 {
		t.Errorf("probability at gameTime 100 = %v, expected %v", p, want)
	}
}

func TestSpawnNeverAtZeroGameTime(t *testing.T) {
	s := newTestSession()
	rng := core.NewSequenceRNG(0)

	if e := s.Spawn(rng); e != nil {
		t.Error("nothing should spawn at gameTime 0, even for u=0")
	}
	if rng.Drawn() != 1 {
		t.Errorf("expected exactly one draw, got %d", rng.Drawn())
	}
}

func TestSpawnPlacement(t *testing.T) {
	s := newTestSession()
	s.gameTime = 10 // p ~= 0.068
	rng := core.NewSequenceRNG(0.05, 0.5)

	e := s.Spawn(rng)
	if e == nil {
		t.Fatal("expected a spawn")
	}
	if e.Kind != KindEnemy {
		t.Errorf("spawned kind = %s", e.Kind)
	}
	if want := core.V(512, 0.5*(480-39)); e.Pos != want {
		t.Errorf("spawned at %+v, expected %+v", e.Pos, want)
	}
	if len(s.Store().Enemies) != 1 || s.Store().Enemies[0] != e {
		t.Error("spawned enemy should be appended to the store")
	}
	if rng.Drawn() != 2 {
		t.Errorf("expected two draws on spawn, got %d", rng.Drawn())
	}
}

func TestSpawnRejected(t *testing.T) {
	s := newTestSession()
	s.gameTime = 10
	rng := core.NewSequenceRNG(0.5, 0.5)

	if e := s.Spawn(rng); e != nil {
		t.Error("u above the probability should not spawn")
	}
	if rng.Drawn() != 1 {
		t.Errorf("no position draw expected without a spawn, got %d draws", rng.Drawn())
	}
}

func TestStepAdvancesGameTimeBeforeSpawning(t *testing.T) {
	s := newTestSession()
	rng := core.NewSequenceRNG(0.001, 0)

	// p(1s) ~= 0.007, so u=0.001 spawns only if gameTime already moved
	res := s.Step(nil, rng, t0, 1)
	if res.Spawned == nil {
		t.Fatal("expected a spawn on the first one-second step")
	}
	if res.Spawned.Pos.Y != 0 {
		t.Errorf("spawn y = %v, expected 0", res.Spawned.Pos.Y)
	}
}
