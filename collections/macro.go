package collections

import (
	"fmt"
	"slices"
	"sync"
)

// MacroFunc is a named extension callable on any collection. It receives
// the collection the macro was called on and the caller's arguments.
type MacroFunc func(c *Collection, args ...any) any

type registry struct {
	mu    sync.RWMutex
	funcs map[string]MacroFunc
}

var macros = &registry{funcs: map[string]MacroFunc{}}

func (r *registry) lookup(name string) (MacroFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// RegisterMacro adds a named macro, replacing any macro already registered
// under name. Safe for concurrent use.
//
//	collections.RegisterMacro("evens", func(c *collections.Collection, _ ...any) any {
//	    return c.Filter(func(v, _ any) bool { n, ok := v.(int); return ok && n%2 == 0 })
//	})
//
//	res, _ := collections.New(1, 2, 3, 4).Macro("evens") // {1: 2, 3: 4}
func RegisterMacro(name string, fn MacroFunc) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.funcs[name] = fn
}

// UnregisterMacro removes the macro registered under name, if any.
func UnregisterMacro(name string) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	delete(macros.funcs, name)
}

// HasMacro reports whether a macro is registered under name.
func HasMacro(name string) bool {
	_, ok := macros.lookup(name)
	return ok
}

// Macros returns the registered macro names in sorted order.
func Macros() []string {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	names := make([]string, 0, len(macros.funcs))
	for name := range macros.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FlushMacros removes every registered macro.
func FlushMacros() {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	clear(macros.funcs)
}

// CallMacro calls the macro registered under name with c and args. It
// fails with [ErrMacroNotFound] when there is none.
func CallMacro(name string, c *Collection, args ...any) (any, error) {
	fn, ok := macros.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(c, args...), nil
}

// Macro calls the named macro on c.
func (c *Collection) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
