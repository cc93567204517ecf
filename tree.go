// Package patricia implements a radix (patricia) tree mapping URL-style
// path patterns to caller-supplied payloads. It supports two pattern
// wildcards — named parameters (":name") and catch-all segments
// ("*name") — and is built to be populated once at start-up and then
// queried at request rate, returning the best-matching payload plus any
// captured parameter values.
//
// The tree does not parse HTTP requests, dispatch to handlers, or apply
// any concurrency discipline of its own; see the adapter package for an
// example of wiring it into a server. It is safe for concurrent lookups
// once all inserts have completed, but a single Insert must never race
// with any other call.
package patricia

// Tree holds the root of a radix tree and implements Insert and Lookup.
type Tree[T any] struct {
	root *node[T]
}

// New returns an empty tree, ready to accept registrations.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: newNode[T]("", nil, true)}
}

// Insert registers pattern against payload. It fails with a
// *DuplicateRegistrationError if an identical pattern has already been
// inserted, and with a *AmbiguousNamedParameterError if pattern would
// place two differently-named parameters as siblings at the same
// position in the tree. Both are programmer errors: callers should
// treat them as fatal at start-up, not as per-request conditions.
func (t *Tree[T]) Insert(pattern string, payload T) error {
	if t.root.placeholder {
		t.root = newNode[T](pattern, &payload, false)
		return nil
	}
	return insertInto(pattern, &payload, t.root)
}

// insertInto implements §4.2 of the tree's design: it computes the
// longest common scalar prefix between pattern and node's key, then
// dispatches on the resulting four cases (descend/append, exact match,
// split-then-branch, split-then-assign).
func insertInto[T any](pattern string, payload *T, nd *node[T]) error {
	patternRunes := []rune(pattern)
	keyRunes := []rune(nd.key)

	pos := 0
	for pos < len(patternRunes) && pos < len(keyRunes) && patternRunes[pos] == keyRunes[pos] {
		pos++
	}

	keyLen := len(keyRunes)
	pathLen := len(patternRunes)

	// A shared prefix that ends inside a ":name" segment would leave two
	// differently-named parameters at the same position.
	for c := pos - 1; c >= 0 && patternRunes[c] != '/'; c-- {
		if patternRunes[c] == ':' {
			if detectParamSize(pattern, c) != pos || detectParamSize(nd.key, c) != pos {
				return &AmbiguousNamedParameterError{Existing: nd.key, New: pattern}
			}
			break
		}
	}

	switch {
	case pos == 0 || (keyLen <= pos && pos < pathLen):
		rest := string(patternRunes[pos:])

		var target *node[T]
		for _, c := range nd.children {
			ok, err := sameFirstChar(rest, c.key)
			if err != nil {
				return err
			}
			if ok {
				target = c
				break
			}
		}

		if target != nil {
			if err := insertInto(rest, payload, target); err != nil {
				return err
			}
		} else {
			nd.children = append(nd.children, newNode[T](rest, payload, false))
		}
		nd.sortChildren()
		return nil

	case keyLen == pos && pos == pathLen:
		if nd.payload != nil {
			return &DuplicateRegistrationError{Pattern: pattern}
		}
		nd.payload = payload
		return nil

	default: // 0 < pos < keyLen, covering both a mid-key split and a split at pattern's end.
		restKey := string(keyRunes[pos:])

		split := newNode[T](restKey, nd.payload, false)
		split.children = nd.children

		nd.payload = nil
		nd.children = nil
		nd.setKey(prefix(pattern, pos))
		nd.children = append(nd.children, split)

		if pos < pathLen {
			nd.children = append(nd.children, newNode[T](string(patternRunes[pos:]), payload, false))
		} else {
			nd.payload = payload
		}
		nd.sortChildren()
		return nil
	}
}

// Lookup walks the tree looking for path, interpreting wildcard markers
// along the way and binding parameter values as they are matched. It
// never fails: an unmatched path yields a LookupResult with a nil
// Payload, an empty Key, and whatever partial parameter bindings were
// produced during the failed descent (callers should ignore those when
// Payload is nil).
func (t *Tree[T]) Lookup(path string) *LookupResult[T] {
	result := newLookupResult[T]()
	return lookupInto(path, result, t.root, true)
}

// lookupInto implements §4.3. first is true only for the very first
// call of a given Lookup, enabling the exact-match fast path.
func lookupInto[T any](path string, result *LookupResult[T], nd *node[T], first bool) *LookupResult[T] {
	keyRunes := []rune(nd.key)
	pathRunes := []rune(path)
	keySize := len(keyRunes)
	pathSize := len(pathRunes)

	if first && pathSize == keySize && path == nd.key && nd.payload != nil {
		return result.add(nd, true)
	}

	pathPos, keyPos := 0, 0
	for pathPos < pathSize && keyPos < keySize {
		k := keyRunes[keyPos]
		if k != '*' && k != ':' && pathRunes[pathPos] != k {
			break
		}

		if k == '*' {
			name := suffix(nd.key, keyPos+1)
			value := suffix(path, pathPos)
			result.params[name] = value
			return result.add(nd, true)
		}

		if k == ':' {
			kEnd := detectParamSize(nd.key, keyPos)
			pEnd := detectParamSize(path, pathPos)
			name := substring(nd.key, keyPos+1, kEnd)
			value := substring(path, pathPos, pEnd)
			result.params[name] = value
			pathPos += pEnd - pathPos
			keyPos += kEnd - keyPos
		}

		pathPos++
		keyPos++
	}

	pathHasMore := pathPos < pathSize
	keyHasMore := keyPos < keySize

	if !pathHasMore && !keyHasMore {
		if nd.payload != nil {
			return result.add(nd, true)
		}
		return result
	}

	if pathHasMore {
		if keySize > 0 && keyPos >= keySize && hasTrailingSlash(pathPos, pathSize, path) {
			return result.add(nd, true)
		}

		remaining := suffix(path, pathPos)
		for _, child := range nd.children {
			if child.isNamedOrCatchAll() || sharedKey(remaining, child.key) {
				result = result.add(nd, false)
				return lookupInto(remaining, result, child, false)
			}
		}
		return result
	}

	// keyHasMore: the query ran out of path while the node's key still
	// has scalars left over.
	if hasTrailingSlash(keyPos, keySize, nd.key) {
		return result.add(nd, true)
	}

	if nd.hasCatchAll(keyPos, keySize) {
		if keyRunes[keyPos] != '*' {
			keyPos++
		}
		name := suffix(nd.key, keyPos+1)
		result.params[name] = ""
		return result.add(nd, true)
	}

	return result
}
