package patricia

import "strings"

// LookupResult is the cumulative output of walking the tree for one
// path. It borrows from the tree it was produced by and must not
// outlive it: nodes are referenced directly, not copied.
type LookupResult[T any] struct {
	nodes   []*node[T]
	params  map[string]string
	payload *T
	key     *string
}

func newLookupResult[T any]() *LookupResult[T] {
	return &LookupResult[T]{params: make(map[string]string)}
}

// add appends a traversed node to the result. When withPayload is true
// and the node carries a payload, that payload becomes the result's
// payload, overwriting any previously recorded one (the last
// payload-bearing node appended wins, which is always the terminal
// match since intermediate nodes are appended with withPayload=false).
func (r *LookupResult[T]) add(n *node[T], withPayload bool) *LookupResult[T] {
	r.nodes = append(r.nodes, n)
	if withPayload && n.payload != nil {
		r.payload = n.payload
	}
	return r
}

// Payload returns the payload of the final matched node, or nil if the
// lookup did not match a registered pattern.
func (r *LookupResult[T]) Payload() *T {
	return r.payload
}

// Params returns the bound value for name, or the empty string if name
// was never bound during the walk (either because the lookup did not
// match, or because name was not declared by the matched pattern).
func (r *LookupResult[T]) Params(name string) string {
	return r.params[name]
}

// Key returns the concatenation of every node's key appended during
// the walk: the canonical registered pattern that matched, or the
// empty string on no match. The result is memoized on first call.
func (r *LookupResult[T]) Key() string {
	if r.payload == nil {
		return ""
	}
	if r.key != nil {
		return *r.key
	}
	var b strings.Builder
	for _, n := range r.nodes {
		b.WriteString(n.key)
	}
	k := b.String()
	r.key = &k
	return k
}
