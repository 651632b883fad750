// Package script provides a sandboxed Lua host for driving a list
// interactively or from files.
//
// The host owns a single cursor list of numbers and exposes it to Lua as
// the global `list` module, so a script reads like a transcript of cursor
// operations:
//
//	list.push_prev(-1)
//	list.push_next(1)
//	list.move_to(0)
//	print(list.render())
package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/iterlist/list"
)

// Errors returned by the scripting host.
var (
	// ErrHostClosed indicates the host has been closed.
	ErrHostClosed = errors.New("script host closed")

	// ErrBudgetExceeded indicates a script spent its operation budget.
	ErrBudgetExceeded = errors.New("operation budget exceeded")
)

// Host wraps a sandboxed Lua state bound to one list.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes access
// from Go, and Lua execution itself is single-threaded.
type Host struct {
	mu      sync.Mutex
	state   *lua.LState
	list    *list.List[float64]
	opLimit int
	opCount int
	closed  bool
}

// Option configures a Host.
type Option func(*Host)

// WithOpBudget bounds how many list operations one script run may perform.
// Zero or negative means unlimited.
func WithOpBudget(n int) Option {
	return func(h *Host) {
		h.opLimit = n
	}
}

// NewHost creates a Lua host over a fresh empty list. Only the base,
// table, string, and math libraries are opened; io, os, debug, and package
// stay out of reach of scripts, as do the load/dofile family of escape
// hatches.
func NewHost(opts ...Option) *Host {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	h := &Host{
		state: L,
		list:  list.New[float64](),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.register()
	return h
}

// Close releases the Lua state. The host is unusable afterward.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}

// RunFile executes a Lua script file against the host's list. The
// operation budget, when set, applies per run.
func (h *Host) RunFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	h.opCount = 0
	return h.runRecovered(func() error { return h.state.DoFile(path) })
}

// RunString executes Lua source against the host's list. The operation
// budget, when set, applies per run.
func (h *Host) RunString(code string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	h.opCount = 0
	return h.runRecovered(func() error { return h.state.DoString(code) })
}

// runRecovered executes fn, converting a Lua runtime panic into an error.
func (h *Host) runRecovered(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Render returns the list's bracketed rendering.
func (h *Host) Render() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.list.String()
}

// Slice returns the list's elements head to tail.
func (h *Host) Slice() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.list.Slice()
}

// register installs the `list` module into the Lua state.
func (h *Host) register() {
	L := h.state
	mod := L.NewTable()

	fns := map[string]lua.LGFunction{
		"push_next":        h.luaPushNext,
		"push_prev":        h.luaPushPrev,
		"insert_next":      h.luaInsertNext,
		"insert_prev":      h.luaInsertPrev,
		"move_to":          h.luaMoveTo,
		"move_by":          h.luaMoveBy,
		"advance":          h.luaAdvance,
		"retreat":          h.luaRetreat,
		"current":          h.luaCurrent,
		"index":            h.luaIndex,
		"length":           h.luaLength,
		"get":              h.luaGet,
		"peek":             h.luaPeek,
		"replace":          h.luaReplace,
		"consume_forward":  h.luaConsumeForward,
		"consume_backward": h.luaConsumeBackward,
		"split":            h.luaSplit,
		"split_after":      h.luaSplitAfter,
		"fold":             h.luaFold,
		"render":           h.luaRender,
		"reset":            h.luaReset,
	}
	for name, fn := range fns {
		mod.RawSetString(name, L.NewFunction(h.budgeted(fn)))
	}
	L.SetGlobal("list", mod)
}

// budgeted wraps a list function so that each call charges the operation
// budget, raising a Lua error once it is spent.
func (h *Host) budgeted(fn lua.LGFunction) lua.LGFunction {
	return func(L *lua.LState) int {
		if h.opLimit > 0 {
			h.opCount++
			if h.opCount > h.opLimit {
				L.RaiseError("%v (limit %d)", ErrBudgetExceeded, h.opLimit)
				return 0
			}
		}
		return fn(L)
	}
}

func (h *Host) luaPushNext(L *lua.LState) int {
	h.list.PushNext(float64(L.CheckNumber(1)))
	return 0
}

func (h *Host) luaPushPrev(L *lua.LState) int {
	h.list.PushPrev(float64(L.CheckNumber(1)))
	return 0
}

func (h *Host) luaInsertNext(L *lua.LState) int {
	h.list.InsertNext(float64(L.CheckNumber(1)))
	return 0
}

func (h *Host) luaInsertPrev(L *lua.LState) int {
	h.list.InsertPrev(float64(L.CheckNumber(1)))
	return 0
}

func (h *Host) luaMoveTo(L *lua.LState) int {
	L.Push(lua.LBool(h.list.MoveTo(L.CheckInt(1))))
	return 1
}

func (h *Host) luaMoveBy(L *lua.LState) int {
	L.Push(lua.LBool(h.list.MoveBy(L.CheckInt(1))))
	return 1
}

func (h *Host) luaAdvance(L *lua.LState) int {
	L.Push(lua.LBool(h.list.Advance()))
	return 1
}

func (h *Host) luaRetreat(L *lua.LState) int {
	L.Push(lua.LBool(h.list.Retreat()))
	return 1
}

// luaCurrent returns the element under the cursor, or nil off-element.
func (h *Host) luaCurrent(L *lua.LState) int {
	v, ok := h.list.Current()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}

// luaIndex returns the cursor index, or nil when the cursor is not on an
// element. Indexes are 0-based, matching the Go API rather than Lua habit.
func (h *Host) luaIndex(L *lua.LState) int {
	i := h.list.Index()
	if i == list.NoIndex {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(i))
	return 1
}

func (h *Host) luaLength(L *lua.LState) int {
	L.Push(lua.LNumber(h.list.Len()))
	return 1
}

func (h *Host) luaGet(L *lua.LState) int {
	v, ok := h.list.Get(L.CheckInt(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (h *Host) luaPeek(L *lua.LState) int {
	v, ok := h.list.Peek(L.CheckInt(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}

// luaReplace swaps the element under the cursor and returns the old one,
// or nil when the cursor was off-element and the value was inserted.
func (h *Host) luaReplace(L *lua.LState) int {
	old, ok := h.list.Replace(float64(L.CheckNumber(1)))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(old))
	return 1
}

// luaConsumeForward removes the current element and returns it plus a flag
// reporting whether the cursor landed on a following element.
func (h *Host) luaConsumeForward(L *lua.LState) int {
	v, landed, ok := h.list.ConsumeForward()
	if !ok {
		L.Push(lua.LNil)
		L.Push(lua.LBool(false))
		return 2
	}
	L.Push(lua.LNumber(v))
	L.Push(lua.LBool(landed))
	return 2
}

func (h *Host) luaConsumeBackward(L *lua.LState) int {
	v, landed, ok := h.list.ConsumeBackward()
	if !ok {
		L.Push(lua.LNil)
		L.Push(lua.LBool(false))
		return 2
	}
	L.Push(lua.LNumber(v))
	L.Push(lua.LBool(landed))
	return 2
}

// luaSplit detaches everything before the cursor and returns it as a Lua
// array; the host's list keeps the cursor element and everything after it.
func (h *Host) luaSplit(L *lua.LState) int {
	front := h.list.Split()
	L.Push(sliceToTable(L, front.Slice()))
	return 1
}

// luaSplitAfter detaches everything after the cursor and returns it as a
// Lua array.
func (h *Host) luaSplitAfter(L *lua.LState) int {
	back := h.list.SplitAfter()
	L.Push(sliceToTable(L, back.Slice()))
	return 1
}

// luaFold reduces the list head to tail with a Lua function fn(acc, v).
func (h *Host) luaFold(L *lua.LState) int {
	init := L.CheckAny(1)
	fn := L.CheckFunction(2)

	acc := init
	var callErr error
	h.list.Range(func(v float64) bool {
		err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, acc, lua.LNumber(v))
		if err != nil {
			callErr = err
			return false
		}
		acc = L.Get(-1)
		L.Pop(1)
		return true
	})
	if callErr != nil {
		L.RaiseError("fold: %v", callErr)
		return 0
	}
	L.Push(acc)
	return 1
}

func (h *Host) luaRender(L *lua.LState) int {
	L.Push(lua.LString(h.list.String()))
	return 1
}

// luaReset replaces the host's list with a fresh empty one.
func (h *Host) luaReset(L *lua.LState) int {
	h.list = list.New[float64]()
	return 0
}

// sliceToTable converts a Go slice into a 1-based Lua array.
func sliceToTable(L *lua.LState, vs []float64) *lua.LTable {
	t := L.NewTable()
	for i, v := range vs {
		t.RawSetInt(i+1, lua.LNumber(v))
	}
	return t
}
