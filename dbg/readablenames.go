package dbg

import (
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Hands out random readable names for pointers, so that debug output like the
// solver's iteration trace can tell snapshots apart without staring at hex.
// Names are generated lazily and memoized forever; that's a memory leak, and
// it's fine, because nothing here should survive into a non-debug build path.

var memo = map[interface{}]string{}

func init() {
	// Names are assigned in demand order, so keep them nondeterministic as a
	// reminder that "WackyHeron" does not mean the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}
	if name, ok := memo[obj]; ok {
		return name
	}
	name := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[obj] = name
	return name
}

// strings.Title is deprecated, and petname only ever produces plain ascii
// words, so this is all the titlecasing needed.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
