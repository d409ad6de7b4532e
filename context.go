package engine

import "sync"

// Context holds the scratch tables of one search so that QuickSearch can run
// without allocating. A Context is owned by exactly one call at a time.
type Context struct {
	lps   []int // grows to the longest pattern seen
	shift ShiftTable
}

var contextPool = sync.Pool{
	New: func() interface{} {
		return &Context{lps: make([]int, 0, 64)}
	},
}

// lpsFor returns the LPS buffer resized to m entries.
func (ctx *Context) lpsFor(m int) []int {
	if cap(ctx.lps) < m {
		ctx.lps = make([]int, m)
	}
	return ctx.lps[:m]
}

// reset drops oversized buffers before the context goes back to the pool.
func (ctx *Context) reset() {
	const maxRetainedLPS = 1 << 16
	if cap(ctx.lps) > maxRetainedLPS {
		ctx.lps = make([]int, 0, 64)
	}
	ctx.lps = ctx.lps[:0]
}
