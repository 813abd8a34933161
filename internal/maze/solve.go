package maze

var neighbours = [4]step{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Reachable flood-fills 4-connected Open cells from p. The result is indexed
// z*Width+x; it is all false when p is a wall.
func (g *Grid) Reachable(p Point) []bool {
	seen := make([]bool, g.Width*g.Height)
	if !g.IsOpen(p.X, p.Z) {
		return seen
	}
	queue := []Point{p}
	seen[g.idx(p.X, p.Z)] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			nx, nz := cur.X+d.dx, cur.Z+d.dz
			if !g.IsOpen(nx, nz) || seen[g.idx(nx, nz)] {
				continue
			}
			seen[g.idx(nx, nz)] = true
			queue = append(queue, Point{X: nx, Z: nz})
		}
	}
	return seen
}

// Solve returns the shortest path of cells from Start to Exit, both included,
// or nil when none exists.
func (g *Grid) Solve() []Point {
	return g.Path(g.Start(), g.Exit())
}

// Path returns the shortest 4-connected Open path from a to b.
func (g *Grid) Path(a, b Point) []Point {
	if !g.IsOpen(a.X, a.Z) || !g.IsOpen(b.X, b.Z) {
		return nil
	}
	prev := make([]int, g.Width*g.Height)
	for i := range prev {
		prev[i] = -1
	}
	start := g.idx(a.X, a.Z)
	prev[start] = start

	queue := []Point{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			break
		}
		ci := g.idx(cur.X, cur.Z)
		for _, d := range neighbours {
			nx, nz := cur.X+d.dx, cur.Z+d.dz
			if !g.IsOpen(nx, nz) {
				continue
			}
			ni := g.idx(nx, nz)
			if prev[ni] != -1 {
				continue
			}
			prev[ni] = ci
			queue = append(queue, Point{X: nx, Z: nz})
		}
	}

	end := g.idx(b.X, b.Z)
	if prev[end] == -1 {
		return nil
	}
	var path []Point
	for i := end; ; i = prev[i] {
		path = append(path, Point{X: i % g.Width, Z: i / g.Width})
		if i == start {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
