package mazeapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/internal/maze"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Config{StoreSize: 4, Seeds: func() uint64 { return 42 }})
}

func do(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGenerateMaze(t *testing.T) {
	r := newTestRouter()

	t.Run("preset with seed", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/maze?difficulty=easy&seed=7", nil)
		require.Equal(t, http.StatusOK, w.Code)

		got := decode[MazeResponse](t, w)
		want, err := maze.GenerateDifficulty(maze.Easy, 7)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, "easy", got.Difficulty)
		assert.Equal(t, 15, got.Width)
		assert.Equal(t, 15, got.Height)
		assert.Equal(t, uint64(7), got.Seed)
		assert.Equal(t, want.Lines(), got.Rows)
		assert.Equal(t, Cell{X: 1, Z: 1}, got.Start)
		assert.Equal(t, Cell{X: 0, Z: 1}, got.Entrance)
		assert.Equal(t, Cell{X: 14, Z: 13}, got.Exit)
		assert.Equal(t, want.OpenCount(), got.OpenCells)
	})

	t.Run("defaults to normal and the seed source", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/maze", nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[MazeResponse](t, w)
		assert.Equal(t, "normal", got.Difficulty)
		assert.Equal(t, 21, got.Width)
		assert.Equal(t, uint64(42), got.Seed)
	})

	t.Run("explicit size", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/maze?width=17&height=25&seed=3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[MazeResponse](t, w)
		assert.Empty(t, got.Difficulty)
		assert.Equal(t, 17, got.Width)
		assert.Equal(t, 25, got.Height)
		assert.Len(t, got.Rows, 25)
		assert.Equal(t, Cell{X: 16, Z: 23}, got.Exit)
	})

	t.Run("same seed same maze", func(t *testing.T) {
		a := decode[MazeResponse](t, do(t, r, http.MethodGet, "/v1/maze?difficulty=hard&seed=99", nil))
		b := decode[MazeResponse](t, do(t, r, http.MethodGet, "/v1/maze?difficulty=hard&seed=99", nil))
		assert.Equal(t, a.Rows, b.Rows)
		assert.NotEqual(t, a.ID, b.ID)
	})

	tests := []struct {
		name  string
		query string
	}{
		{"unknown difficulty", "?difficulty=insane"},
		{"even width", "?width=16&height=15"},
		{"too small", "?width=13&height=13"},
		{"too large", "?width=4001&height=4001"},
		{"overflowing area", "?seed=1&width=3037000501&height=3037000501"},
		{"bad seed", "?seed=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/v1/maze"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestGetAndSolution(t *testing.T) {
	r := newTestRouter()
	created := decode[MazeResponse](t, do(t, r, http.MethodGet, "/v1/maze?difficulty=easy&seed=5", nil))

	w := do(t, r, http.MethodGet, "/v1/maze/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[MazeResponse](t, w))

	w = do(t, r, http.MethodGet, "/v1/maze/"+created.ID.String()+"/solution", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sol := decode[SolutionResponse](t, w)
	require.NotEmpty(t, sol.Path)
	assert.Equal(t, len(sol.Path), sol.Length)
	assert.Equal(t, created.Start, sol.Path[0])
	assert.Equal(t, created.Exit, sol.Path[len(sol.Path)-1])
	for _, c := range sol.Path {
		assert.Equal(t, byte('.'), created.Rows[c.Z][c.X])
	}

	t.Run("unknown id", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/maze/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/maze/not-a-uuid/solution", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProbe(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name    string
		x, z    float64
		blocked bool
		goal    bool
		cell    Cell
	}{
		{"spawn is clear", 1.5, 1.5, false, false, Cell{X: 1, Z: 1}},
		{"inside border wall", 0.5, 0.5, true, false, Cell{X: 0, Z: 0}},
		{"exit cell", 14.5, 13.5, false, true, Cell{X: 14, Z: 13}},
		{"outside the grid", -1, 1.5, true, false, Cell{X: -1, Z: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/v1/maze/probe", gin.H{
				"difficulty": "easy", "seed": "11", "x": tt.x, "z": tt.z,
			})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			got := decode[ProbeResponse](t, w)
			assert.Equal(t, tt.blocked, got.Blocked)
			assert.Equal(t, tt.goal, got.Goal)
			assert.Equal(t, tt.cell, got.Cell)
		})
	}

	t.Run("stored maze by id", func(t *testing.T) {
		created := decode[MazeResponse](t, do(t, r, http.MethodGet, "/v1/maze?difficulty=easy&seed=11", nil))
		w := do(t, r, http.MethodPost, "/v1/maze/probe", gin.H{
			"id": created.ID, "cell_size": 2.0, "radius": 0.5, "x": 3.0, "z": 3.0,
		})
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[ProbeResponse](t, w)
		assert.False(t, got.Blocked)
		assert.Equal(t, Cell{X: 1, Z: 1}, got.Cell)
	})

	t.Run("radius too large", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/maze/probe", gin.H{"radius": 0.5, "x": 1.5, "z": 1.5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized maze", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/maze/probe", gin.H{
			"width": maze.MaxDimension + 2, "height": 15, "x": 1.5, "z": 1.5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/maze/probe", gin.H{"id": uuid.New(), "x": 1.5, "z": 1.5})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPresets(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/v1/presets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []PresetResponse{
		{Name: "easy", Width: 15, Height: 15},
		{Name: "normal", Width: 21, Height: 21},
		{Name: "hard", Width: 51, Height: 51},
	}, decode[[]PresetResponse](t, w))
}

func TestStoreEvictsOldest(t *testing.T) {
	s := NewStore(2)
	g, err := maze.GenerateDifficulty(maze.Easy, 1)
	require.NoError(t, err)

	first := s.Put(g, "easy")
	second := s.Put(g, "easy")
	third := s.Put(g, "easy")

	assert.Equal(t, 2, s.Len())
	_, _, ok := s.Get(first)
	assert.False(t, ok)
	_, _, ok = s.Get(second)
	assert.True(t, ok)
	_, d, ok := s.Get(third)
	assert.True(t, ok)
	assert.Equal(t, "easy", d)
}
