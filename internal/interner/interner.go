// Package interner provides the process-wide string interner.
//
// Every name that flows through the compiler (type constructors, type
// variables, identifiers) is represented as a Symbol: a small comparable
// handle into a single append-only table. The table is initialized once
// per process and is never reset mid-run; lookups are read-shared.
package interner

import "sync"

// Symbol is an interned string handle. Two Symbols compare equal iff the
// strings they were interned from are equal, so Symbols can be used
// directly as map keys and compared with ==.
type Symbol int32

type table struct {
	mu      sync.RWMutex
	indices map[string]Symbol
	strings []string
}

var global = &table{indices: make(map[string]Symbol)}

// Intern returns the Symbol for text, allocating a new one on first use.
func Intern(text string) Symbol {
	global.mu.RLock()
	sym, ok := global.indices[text]
	global.mu.RUnlock()
	if ok {
		return sym
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if sym, ok := global.indices[text]; ok {
		return sym
	}
	sym = Symbol(len(global.strings))
	global.strings = append(global.strings, text)
	global.indices[text] = sym
	return sym
}

// String resolves the Symbol back to the interned text.
func (s Symbol) String() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	if int(s) < 0 || int(s) >= len(global.strings) {
		return "<invalid symbol>"
	}
	return global.strings[s]
}
