package maze

// step is one of the four axis directions.
type step struct {
	dx, dz int
}

// frame is one level of the carve: the cell being expanded, its shuffled
// directions and the next direction to try.
type frame struct {
	x, z int
	dirs [4]step
	next int
}

// Generate builds a maze by randomized backtracking on the odd-cell lattice,
// starting from (1,1). The border is walled afterwards and breached at the
// entrance (0,1) and the exit (width-1, height-2).
//
// The same (width, height, seed) always yields the same grid.
func Generate(width, height int, seed uint64) (*Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}

	g := newGrid(width, height)
	g.Seed = seed
	rng := NewRand(seed)

	g.set(1, 1, Open)
	g.carve(1, 1, rng)

	for x := 0; x < width; x++ {
		g.set(x, 0, Wall)
		g.set(x, height-1, Wall)
	}
	for z := 0; z < height; z++ {
		g.set(0, z, Wall)
		g.set(width-1, z, Wall)
	}

	g.set(0, 1, Open)
	g.set(1, 1, Open)

	exitZ := height - 2
	g.set(width-2, exitZ, Open)
	g.set(width-1, exitZ, Open)

	return g, nil
}

// GenerateDifficulty builds a maze sized by the preset for d.
func GenerateDifficulty(d Difficulty, seed uint64) (*Grid, error) {
	p, err := d.Preset()
	if err != nil {
		return nil, err
	}
	return Generate(p.Width, p.Height, seed)
}

// carve opens corridors two cells at a time. Each frame tries its directions
// in shuffled order and descends into the first unvisited neighbour before
// trying the rest, so the stack mirrors a depth-first recursion.
func (g *Grid) carve(x, z int, rng *Rand) {
	stack := make([]frame, 0, (g.Width/2)*(g.Height/2))
	stack = append(stack, frame{x: x, z: z, dirs: shuffledSteps(rng)})

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(f.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := f.dirs[f.next]
		f.next++

		nx := f.x + d.dx*2
		nz := f.z + d.dz*2
		if nx <= 0 || nz <= 0 || nx >= g.Width-1 || nz >= g.Height-1 {
			continue
		}
		if g.At(nx, nz) != Wall {
			continue
		}
		g.set(f.x+d.dx, f.z+d.dz, Open)
		g.set(nx, nz, Open)
		stack = append(stack, frame{x: nx, z: nz, dirs: shuffledSteps(rng)})
	}
}

// shuffledSteps returns +x, -x, +z, -z permuted by swapping each slot with a
// random one. The permutation is not uniform; whatever order falls out is used.
func shuffledSteps(rng *Rand) [4]step {
	dirs := [4]step{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for i := range dirs {
		r := rng.Intn(len(dirs))
		dirs[i], dirs[r] = dirs[r], dirs[i]
	}
	return dirs
}
