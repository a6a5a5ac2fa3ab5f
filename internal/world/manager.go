package world

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/voxel"
)

// Manager owns every loaded chunk, keyed by chunk position, and decides which
// chunks are close enough to a reference position to load or simulate. Both
// radii are Chebyshev (max-axis) distances in chunk space.
type Manager struct {
	LoadDistance int
	SimDistance  int

	chunks map[ChunkPos]*Chunk
}

// NewManager creates an empty manager with the given radii.
func NewManager(loadDistance, simDistance int) *Manager {
	return &Manager{
		LoadDistance: loadDistance,
		SimDistance:  simDistance,
		chunks:       make(map[ChunkPos]*Chunk),
	}
}

// WorldToChunkPos returns the chunk containing a world-space point. Each axis
// is floored so negative world coordinates map to negative chunk indices.
func WorldToChunkPos(p mgl32.Vec3) ChunkPos {
	return ChunkPos{
		X: int(math.Floor(float64(p.X()) / ChunkSize)),
		Y: int(math.Floor(float64(p.Y()) / ChunkSize)),
		Z: int(math.Floor(float64(p.Z()) / ChunkSize)),
	}
}

func chebyshev(a, b ChunkPos) int {
	d := absInt(a.X - b.X)
	if dy := absInt(a.Y - b.Y); dy > d {
		d = dy
	}
	if dz := absInt(a.Z - b.Z); dz > d {
		d = dz
	}
	return d
}

// ShouldLoad reports whether a chunk at pos is within the load radius of ref.
func (m *Manager) ShouldLoad(pos, ref ChunkPos) bool {
	return chebyshev(pos, ref) <= m.LoadDistance
}

// ShouldSimulate reports whether a chunk at pos is within the simulation
// radius of ref.
func (m *Manager) ShouldSimulate(pos, ref ChunkPos) bool {
	return chebyshev(pos, ref) <= m.SimDistance
}

// Chunk returns the chunk registered at pos, if any.
func (m *Manager) Chunk(pos ChunkPos) (*Chunk, bool) {
	c, ok := m.chunks[pos]
	return c, ok
}

// Register creates a fresh chunk at pos and stores it, silently replacing any
// chunk already registered there.
func (m *Manager) Register(pos ChunkPos) *Chunk {
	c := NewChunk(pos)
	m.chunks[pos] = c
	return c
}

// Ensure returns the chunk at pos, creating and registering it if absent.
func (m *Manager) Ensure(pos ChunkPos) *Chunk {
	if c, ok := m.chunks[pos]; ok {
		return c
	}
	return m.Register(pos)
}

// Unregister removes the chunk at pos. Ownership of its voxel array ends
// here; the removed chunk is returned for a final read, or nil.
func (m *Manager) Unregister(pos ChunkPos) *Chunk {
	c := m.chunks[pos]
	delete(m.chunks, pos)
	return c
}

// Count returns the number of registered chunks.
func (m *Manager) Count() int { return len(m.chunks) }

// All returns a snapshot slice of every registered chunk, ordered by chunk
// position so callers that consume randomness visit chunks deterministically.
func (m *Manager) All() []*Chunk {
	out := make([]*Chunk, 0, len(m.chunks))
	for _, c := range m.chunks {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Pos, out[j].Pos
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// VoxelAt returns the voxel containing a world-space point, resolving the
// owning chunk first. False when no chunk is registered there.
func (m *Manager) VoxelAt(p mgl32.Vec3) (voxel.Voxel, bool) {
	c, ok := m.chunks[WorldToChunkPos(p)]
	if !ok {
		return 0, false
	}
	return c.VoxelAtWorld(p)
}

// SetVoxelAt overwrites the voxel containing a world-space point. Reports
// whether a registered chunk owned the point.
func (m *Manager) SetVoxelAt(p mgl32.Vec3, v voxel.Voxel) bool {
	c, ok := m.chunks[WorldToChunkPos(p)]
	if !ok {
		return false
	}
	x, y, z, ok := c.WorldToLocal(p)
	if !ok {
		return false
	}
	c.SetVoxel(x, y, z, v)
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
