package hooks

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// renderContext holds the ambient render state for a goroutine.
// Each goroutine has its own context so independent owners can render
// concurrently; a single owner's renders stay serialized by the runtime.
type renderContext struct {
	// currentOwner is the Owner whose component function is rendering.
	// nil means no render is in progress on this goroutine.
	currentOwner *Owner
}

// renderContexts stores per-goroutine render contexts.
var renderContexts sync.Map

// goroutineID extracts the current goroutine's ID from the runtime stack.
// Implementation detail; never exposed.
func goroutineID() uint64 {
	// The stack trace starts with "goroutine <id> ".
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func getRenderContext() *renderContext {
	gid := goroutineID()

	if ctx, ok := renderContexts.Load(gid); ok {
		return ctx.(*renderContext)
	}

	ctx := &renderContext{}
	renderContexts.Store(gid, ctx)
	return ctx
}

// currentOwner returns the Owner rendering on this goroutine, or nil.
func currentOwner() *Owner {
	return getRenderContext().currentOwner
}

// setCurrentOwner installs o as the rendering owner and returns the
// previous one so callers can restore it.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getRenderContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

// globalIDCounter is the source of unique Owner IDs.
var globalIDCounter uint64

func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
