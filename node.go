package patricia

import "sort"

// Kind classifies a node by the first wildcard marker found in its key.
type Kind uint8

const (
	// Literal nodes carry no wildcard marker.
	Literal Kind = iota
	// Named nodes match exactly one path segment, bound to a parameter name.
	Named
	// Glob nodes match everything remaining in the path.
	Glob
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Named:
		return "named"
	case Glob:
		return "glob"
	default:
		return "unknown"
	}
}

// node is one edge-labeled vertex of the radix tree. T is the opaque
// payload type a caller registers against a pattern; the tree neither
// inspects nor copies it beyond holding a pointer.
type node[T any] struct {
	key         string
	payload     *T
	children    []*node[T]
	kind        Kind
	priority    int
	placeholder bool
}

// newNode builds a node from a key, deriving its kind and priority.
func newNode[T any](key string, payload *T, placeholder bool) *node[T] {
	kind, priority := classify(key)
	return &node[T]{
		key:         key,
		payload:     payload,
		kind:        kind,
		priority:    priority,
		placeholder: placeholder,
	}
}

// classify scans k left-to-right for the first wildcard marker. A '*'
// yields Glob at its index; a ':' (seen first) yields Named at its
// index; absent either, the node is Literal with priority equal to the
// full scalar length of k. Priority is always the length of the node's
// literal prefix before any wildcard takes over.
func classify(k string) (Kind, int) {
	for i, r := range []rune(k) {
		switch r {
		case '*':
			return Glob, i
		case ':':
			return Named, i
		}
	}
	return Literal, len([]rune(k))
}

// setKey reassigns the node's key and recomputes its kind and priority.
// Must be called whenever a key is mutated in place (e.g. truncated
// during a split), since kind/priority are derived, not independent.
func (n *node[T]) setKey(key string) {
	n.key = key
	n.kind, n.priority = classify(key)
}

// sortChildren restores the total order of §3.3: literal children
// before named before glob, and within a kind, longer literal prefixes
// (higher priority) before shorter ones. Must run after every mutation
// that appends or replaces a child.
func (n *node[T]) sortChildren() {
	sort.SliceStable(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.priority > b.priority
	})
}

// isNamedOrCatchAll reports whether the node's key opens with a
// wildcard marker, i.e. whether it is a plausible descent target
// regardless of the literal content of the remaining path.
func (n *node[T]) isNamedOrCatchAll() bool {
	r := []rune(n.key)
	return len(r) > 0 && (r[0] == '*' || r[0] == ':')
}

// hasCatchAll reports whether the scalar at pos in the node's key opens
// a catch-all, either directly ('*') or after a separator ('/*'), with
// pos still within the key's bounds (size scalars long). This is what
// lets a registered "/prefix/*name" also answer a query for exactly
// "/prefix" with name bound to the empty string.
func (n *node[T]) hasCatchAll(pos, size int) bool {
	r := []rune(n.key)
	if pos >= size || pos >= len(r) {
		return false
	}
	current := r[pos]
	if current == '*' {
		return true
	}
	if current == '/' && pos+1 < len(r) && r[pos+1] == '*' {
		return true
	}
	return false
}
