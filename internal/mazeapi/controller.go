// Package mazeapi serves generated mazes and collision probes over HTTP.
package mazeapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mazerunner/internal/maze"
)

// Probe defaults match the desktop game.
const (
	DefaultCellSize = 1.0
	DefaultRadius   = 0.2
)

var errNotFound = errors.New("maze not found")

// Controller handles the maze routes.
type Controller struct {
	store *Store
	seeds func() uint64
}

// NewController creates a Controller. seeds supplies the seed for requests
// that do not name one; nil uses the clock.
func NewController(store *Store, seeds func() uint64) *Controller {
	if seeds == nil {
		seeds = func() uint64 { return uint64(time.Now().UnixNano()) }
	}
	return &Controller{store: store, seeds: seeds}
}

// Register registers the maze routes on route.
func (c *Controller) Register(route *gin.RouterGroup) {
	route.GET("/presets", c.presets)
	mazes := route.Group("/maze")
	{
		mazes.GET("", c.generate)
		mazes.GET("/:ID", c.get)
		mazes.GET("/:ID/solution", c.solution)
		mazes.POST("/probe", c.probe)
	}
}

// build generates the maze a request describes.
func build(difficulty string, width, height int, seed uint64) (*maze.Grid, string, error) {
	if width != 0 || height != 0 {
		g, err := maze.Generate(width, height, seed)
		return g, "", err
	}
	d := maze.Normal
	if difficulty != "" {
		var err error
		if d, err = maze.ParseDifficulty(difficulty); err != nil {
			return nil, "", err
		}
	}
	g, err := maze.GenerateDifficulty(d, seed)
	return g, d.String(), err
}

func (c *Controller) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := c.seeds()
	if request.Seed != nil {
		seed = *request.Seed
	}

	g, difficulty, err := build(request.Difficulty, request.Width, request.Height, seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.store.Put(g, difficulty)
	ctx.JSON(http.StatusOK, mazeResponse(id, g, difficulty))
}

func (c *Controller) lookup(ctx *gin.Context) (uuid.UUID, *maze.Grid, string, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid maze id: %v", err)})
		return uuid.Nil, nil, "", false
	}
	g, difficulty, ok := c.store.Get(id)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": errNotFound.Error()})
		return uuid.Nil, nil, "", false
	}
	return id, g, difficulty, true
}

func (c *Controller) get(ctx *gin.Context) {
	id, g, difficulty, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, mazeResponse(id, g, difficulty))
}

func (c *Controller) solution(ctx *gin.Context) {
	id, g, _, ok := c.lookup(ctx)
	if !ok {
		return
	}
	path := g.Solve()
	response := &SolutionResponse{ID: id, Length: len(path), Path: make([]Cell, len(path))}
	for i, p := range path {
		response.Path[i] = cellOf(p)
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *Controller) probe(ctx *gin.Context) {
	var request ProbeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cs, r := request.CellSize, request.Radius
	if cs == 0 {
		cs = DefaultCellSize
	}
	if r == 0 {
		r = DefaultRadius
	}
	// The 3x3 neighbourhood test only sees walls adjacent to the player's cell.
	if cs <= 0 || r <= 0 || r >= cs/2 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("radius %g must be in (0, %g)", r, cs/2)})
		return
	}

	var g *maze.Grid
	if request.ID != nil {
		var ok bool
		if g, _, ok = c.store.Get(*request.ID); !ok {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errNotFound.Error()})
			return
		}
	} else {
		var err error
		if g, _, err = build(request.Difficulty, request.Width, request.Height, request.Seed); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, &ProbeResponse{
		Blocked: g.IsBlocked(cs, r, request.X, request.Z),
		Goal:    g.IsGoal(cs, request.X, request.Z),
		Cell:    cellOf(maze.CellOf(cs, request.X, request.Z)),
	})
}

func (c *Controller) presets(ctx *gin.Context) {
	out := make([]PresetResponse, 0, len(maze.Difficulties))
	for _, d := range maze.Difficulties {
		p, err := d.Preset()
		if err != nil {
			continue
		}
		out = append(out, PresetResponse{Name: d.String(), Width: p.Width, Height: p.Height})
	}
	ctx.JSON(http.StatusOK, out)
}

func mazeResponse(id uuid.UUID, g *maze.Grid, difficulty string) *MazeResponse {
	return &MazeResponse{
		ID:         id,
		Difficulty: difficulty,
		Width:      g.Width,
		Height:     g.Height,
		Seed:       g.Seed,
		Rows:       g.Lines(),
		Start:      cellOf(g.Start()),
		Entrance:   cellOf(g.Entrance()),
		Exit:       cellOf(g.Exit()),
		OpenCells:  g.OpenCount(),
	}
}
