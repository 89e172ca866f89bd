package main

import "math/rand"

// Conway's Game of Life on a torus. Cell values double as colour
// table indexes: 0 dead, 1 alive.
type life struct {
	cells [][]int
	next  [][]int
	w, h  int
}

func newLife(w, h int, fill float64, rnd *rand.Rand) *life {
	l := &life{
		cells: makeGrid(w, h),
		next:  makeGrid(w, h),
		w:     w,
		h:     h,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rnd.Float64() < fill {
				l.cells[y][x] = 1
			}
		}
	}
	return l
}

func makeGrid(w, h int) [][]int {
	g := make([][]int, h)
	for i := range g {
		g[i] = make([]int, w)
	}
	return g
}

func (l *life) step() {
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			n := l.neighbors(x, y)
			switch {
			case l.cells[y][x] == 1 && (n == 2 || n == 3):
				l.next[y][x] = 1
			case l.cells[y][x] == 0 && n == 3:
				l.next[y][x] = 1
			default:
				l.next[y][x] = 0
			}
		}
	}
	l.cells, l.next = l.next, l.cells
}

func (l *life) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + l.w) % l.w
			ny := (y + dy + l.h) % l.h
			n += l.cells[ny][nx]
		}
	}
	return n
}
