package check

// funcTag is the sentinel type bound to function names in the global
// frame. A call target must resolve to exactly this tag.
const funcTag = "function"

// frame is one lexical scope: its own name→type bindings plus a link to
// the enclosing frame (nil for the global frame). Frames are owned by
// the Analyzer's push/pop discipline and never escape it.
type frame struct {
	parent *frame
	names  map[string]string
}

func newFrame(parent *frame) *frame {
	return &frame{parent: parent, names: map[string]string{}}
}

// declare binds name in this frame only. It reports false and leaves the
// frame unchanged when the name is already bound here; enclosing frames
// are never consulted, so shadowing an outer binding succeeds.
func (f *frame) declare(name, typ string) bool {
	if _, exists := f.names[name]; exists {
		return false
	}
	f.names[name] = typ
	return true
}

// containsLocal reports whether name is bound in this frame itself.
func (f *frame) containsLocal(name string) bool {
	_, ok := f.names[name]
	return ok
}

// resolve walks the chain outward to the global frame and returns the
// innermost binding. It never mutates.
func (f *frame) resolve(name string) (string, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if t, ok := cur.names[name]; ok {
			return t, true
		}
	}
	return "", false
}
