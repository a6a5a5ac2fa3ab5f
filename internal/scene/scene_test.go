package scene

import (
	"bytes"
	"slices"
	"testing"
	"time"

	"embervox/internal/core"
	"embervox/internal/voxel"
	"embervox/internal/world"
)

func TestRegistryHasAllScenes(t *testing.T) {
	for _, name := range []string{"rock", "fire", "water", "explosion"} {
		if _, ok := core.Scenes()[name]; !ok {
			t.Fatalf("scene %q not registered", name)
		}
	}
}

func smallRockConfig() Config {
	cfg := DefaultConfig()
	cfg.Rock.Size = 16
	return cfg
}

func TestRockSceneFrameDeterminism(t *testing.T) {
	a := NewRock(smallRockConfig())
	b := NewRock(smallRockConfig())

	size := a.Size()
	bufA := make([]byte, size.W*size.H*4)
	bufB := make([]byte, size.W*size.H*4)
	a.Frame(bufA)
	b.Frame(bufB)

	if !bytes.Equal(bufA, bufB) {
		t.Fatal("identical rock scenes rendered different frames")
	}
}

func TestRockSceneCycleMapChangesOutput(t *testing.T) {
	s := NewRock(smallRockConfig())
	size := s.Size()

	diffuse := make([]byte, size.W*size.H*4)
	s.Frame(diffuse)

	s.CycleMap()
	normal := make([]byte, size.W*size.H*4)
	s.Frame(normal)

	if bytes.Equal(diffuse, normal) {
		t.Fatal("cycling the output map did not change the frame")
	}
}

func TestRockSceneAdvanceSpins(t *testing.T) {
	s := NewRock(smallRockConfig())
	size := s.Size()

	before := make([]byte, size.W*size.H*4)
	s.Frame(before)

	s.Advance(500 * time.Millisecond)
	after := make([]byte, size.W*size.H*4)
	s.Frame(after)

	if bytes.Equal(before, after) {
		t.Fatal("rotating the rock did not change the rendered frame")
	}
}

func TestFireSceneLayout(t *testing.T) {
	s := newWorldScene("fire", DefaultConfig(), setupFire)
	size := s.Size()
	buf := make([]byte, size.W*size.H*4)
	s.Frame(buf)

	// Bottom row of the frame is the floor slab.
	base := ((size.H-1)*size.W + 0) * 4
	col := voxel.Rock.Color()
	if buf[base] != col.R || buf[base+1] != col.G || buf[base+2] != col.B {
		t.Fatalf("floor pixel = %v, want rock %v", buf[base:base+4], col)
	}
	// Top row is open air.
	if buf[3] != 0 {
		t.Fatal("sky pixel should be transparent")
	}
}

func TestFireSceneAdvanceChangesWorld(t *testing.T) {
	s := newWorldScene("fire", DefaultConfig(), setupFire)
	c, _ := s.mgr.Chunk(world.ChunkPos{})
	before := c.U32Slice()

	// One second covers 15 automaton steps; every fire voxel either rises
	// or smolders, so the chunk must differ.
	s.Advance(time.Second)

	if slices.Equal(before, c.U32Slice()) {
		t.Fatal("simulation did not alter the fire scene")
	}
	if !c.NeedsSimulation() {
		t.Fatal("fire scene chunk lost its dynamic flag")
	}
}

func TestWorldSceneResetRebuilds(t *testing.T) {
	s := newWorldScene("water", DefaultConfig(), setupWater)
	s.Advance(2 * time.Second)

	s.Reset(DefaultConfig().Seed)
	fresh := newWorldScene("water", DefaultConfig(), setupWater)

	a, _ := s.mgr.Chunk(world.ChunkPos{})
	b, _ := fresh.mgr.Chunk(world.ChunkPos{})
	if !slices.Equal(a.U32Slice(), b.U32Slice()) {
		t.Fatal("reset did not restore the initial world state")
	}
}

func TestFrameClearsDirtyFlag(t *testing.T) {
	s := newWorldScene("explosion", DefaultConfig(), setupExplosion)
	c, _ := s.mgr.Chunk(world.ChunkPos{})
	if !c.Dirty() {
		t.Fatal("freshly built chunk should be dirty")
	}

	buf := make([]byte, world.ChunkSize*world.ChunkSize*4)
	s.Frame(buf)
	if c.Dirty() {
		t.Fatal("rendering a frame should acknowledge the dirty flag")
	}
}
