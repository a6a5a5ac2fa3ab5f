// Command burn-sweep runs headless fire scenarios across a grid of automaton
// parameters and reports which combinations burn the most wood.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/sim"
	"embervox/internal/voxel"
	"embervox/internal/world"
)

type paramSet struct {
	spreadChance float64
	smokeChance  float64
	fadeChance   float64
	spawnRadius  float32
}

func (p paramSet) String() string {
	return fmt.Sprintf("spread=%.2f smolder=%.3f fade=%.3f radius=%.1f",
		p.spreadChance, p.smokeChance, p.fadeChance, p.spawnRadius)
}

type scenarioResult struct {
	params      paramSet
	woodBurned  int
	firePeak    int
	fireDiedAt  int
	maxFireY    int
	finalSmoke  int
	initialWood int
}

func main() {
	steps := flag.Int("steps", 300, "automaton steps to run per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "simulation seed shared by all scenarios")
	flag.Parse()

	spreadOptions := []float64{0.15, 0.25, 0.35}
	smokeOptions := []float64{0.02, 0.05, 0.10}
	fadeOptions := []float64{0.01, 0.02, 0.05}
	radiusOptions := []float32{2, 4, 6}

	var sets []paramSet
	for _, spread := range spreadOptions {
		for _, smoke := range smokeOptions {
			for _, fade := range fadeOptions {
				for _, radius := range radiusOptions {
					sets = append(sets, paramSet{
						spreadChance: spread,
						smokeChance:  smoke,
						fadeChance:   fade,
						spawnRadius:  radius,
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *steps, *seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].woodBurned > all[j].woodBurned })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) burned=%d/%d firePeak=%d diedAt=%d maxY=%d smoke=%d params=%s\n",
			i+1, res.woodBurned, res.initialWood, res.firePeak, res.fireDiedAt, res.maxFireY, res.finalSmoke, res.params)
	}
}

func runScenario(params paramSet, steps int, seed int64) scenarioResult {
	simParams := sim.DefaultParams()
	simParams.FireSpreadChance = params.spreadChance
	simParams.FireSmokeChance = params.smokeChance
	simParams.SmokeFadeChance = params.fadeChance

	m := world.NewManager(4, 2)
	mc := m.Ensure(world.ChunkPos{})
	mc.FillRegion([3]int{0, 0, 0}, [3]int{world.ChunkSize, 8, world.ChunkSize}, voxel.RockVoxel(255))
	wood := voxel.New(voxel.Wood, 220, 20, voxel.FlagCollision)
	mc.FillRegion([3]int{24, 8, 24}, [3]int{40, 24, 40}, wood)
	initialWood := countMaterial(mc, voxel.Wood)

	sim.SpawnFireSphere(m, mgl32.Vec3{20, 10, 32}, params.spawnRadius)

	s := sim.New(simParams, seed)
	res := scenarioResult{params: params, initialWood: initialWood}
	for step := 0; step < steps; step++ {
		s.StepChunk(mc)

		fire := 0
		for y := world.ChunkSize - 1; y >= 0; y-- {
			for z := 0; z < world.ChunkSize; z++ {
				for x := 0; x < world.ChunkSize; x++ {
					v, _ := mc.Voxel(x, y, z)
					if v.Material() != voxel.Fire {
						continue
					}
					fire++
					if y > res.maxFireY {
						res.maxFireY = y
					}
				}
			}
		}
		if fire > res.firePeak {
			res.firePeak = fire
		}
		if fire == 0 {
			res.fireDiedAt = step + 1
			break
		}
	}

	res.woodBurned = initialWood - countMaterial(mc, voxel.Wood)
	res.finalSmoke = countMaterial(mc, voxel.Smoke)
	return res
}

func countMaterial(c *world.Chunk, m voxel.Material) int {
	total := 0
	for z := 0; z < world.ChunkSize; z++ {
		for y := 0; y < world.ChunkSize; y++ {
			for x := 0; x < world.ChunkSize; x++ {
				if v, _ := c.Voxel(x, y, z); v.Material() == m {
					total++
				}
			}
		}
	}
	return total
}
