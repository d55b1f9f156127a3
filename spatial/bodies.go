package spatial

import (
	"fmt"
	"math"
	"sync"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Bodies buckets moving boxes into coarse cells of a resolv.Space so that
// area queries only visit nearby cells. Query may run concurrently; Insert,
// Move and Remove are exclusive.
type Bodies[K comparable] struct {
	mu       sync.RWMutex
	space    *resolv.Space
	cellSize int
	objects  map[K]*resolv.Object
}

// NewBodies covers a worldW x worldH area with square cells of cellSize world
// units.
func NewBodies[K comparable](worldW, worldH float64, cellSize int) *Bodies[K] {
	if cellSize <= 0 || worldW <= 0 || worldH <= 0 {
		panic(fmt.Sprintf("spatial: invalid partition %vx%v cell %d", worldW, worldH, cellSize))
	}
	// resolv drops a trailing partial cell, so cover the world in whole cells.
	cols := int(math.Ceil(worldW / float64(cellSize)))
	rows := int(math.Ceil(worldH / float64(cellSize)))
	return &Bodies[K]{
		space:    resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		cellSize: cellSize,
		objects:  make(map[K]*resolv.Object),
	}
}

// CellSize returns the cell edge in world units.
func (b *Bodies[K]) CellSize() int { return b.cellSize }

// Len returns the number of tracked bodies.
func (b *Bodies[K]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}

// Insert starts tracking key at r. Inserting a tracked key moves it.
func (b *Bodies[K]) Insert(key K, r gamemath.Rect) {
	r.MustValid()
	b.mu.Lock()
	defer b.mu.Unlock()
	if obj, ok := b.objects[key]; ok {
		moveObject(obj, r)
		return
	}
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	obj.Data = key
	b.space.Add(obj)
	b.objects[key] = obj
}

// Move updates the box of a tracked key. Unknown keys are inserted.
func (b *Bodies[K]) Move(key K, r gamemath.Rect) {
	b.Insert(key, r)
}

// Remove stops tracking key.
func (b *Bodies[K]) Remove(key K) {
	b.mu.Lock()
	defer b.mu.Unlock()
	obj, ok := b.objects[key]
	if !ok {
		return
	}
	b.space.Remove(obj)
	delete(b.objects, key)
}

// Query returns the keys whose boxes overlap or touch r, each once. Only the
// part of r inside the covered area is searched.
func (b *Bodies[K]) Query(r gamemath.Rect) []K {
	r.MustValid()
	b.mu.RLock()
	defer b.mu.RUnlock()

	cs := float64(b.cellSize)
	// One extra cell on each side covers boxes whose registration rounds
	// into a neighbouring cell.
	cx0 := int(math.Floor(r.X/cs)) - 1
	cy0 := int(math.Floor(r.Y/cs)) - 1
	cx1 := int(math.Floor(r.Right()/cs)) + 1
	cy1 := int(math.Floor(r.Bottom()/cs)) + 1

	var out []K
	seen := make(map[*resolv.Object]struct{})
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			cell := b.space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if _, dup := seen[obj]; dup {
					continue
				}
				seen[obj] = struct{}{}
				box := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
				if !box.Touches(r) {
					continue
				}
				if key, ok := obj.Data.(K); ok {
					out = append(out, key)
				}
			}
		}
	}
	return out
}

func moveObject(obj *resolv.Object, r gamemath.Rect) {
	obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
	obj.Update()
}
