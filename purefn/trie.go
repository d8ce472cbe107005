package purefn

// TrieKey is one step of a Trie path. It must hold a comparable dynamic value.
type TrieKey = any

type trieNode[O any] struct {
	children map[TrieKey]*trieNode[O]
	value    O
	hasValue bool
}

func newTrieNode[O any]() *trieNode[O] {
	return &trieNode[O]{children: make(map[TrieKey]*trieNode[O])}
}

// Trie maps key paths to values. Every node can hold a value, so a path and
// its prefixes are independent entries (the empty path is the root).
//
// Entries live in two generations. Once the head generation holds maxSize
// entries it becomes the tail and a fresh head replaces the old tail, so at
// most 2*maxSize entries are retained. A maxSize of 0 never rotates.
//
// Trie is not safe for concurrent use.
type Trie[O any] struct {
	generations [2]*trieNode[O]
	headIdx     int
	size        uint32
	maxSize     uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	return &Trie[O]{
		generations: [2]*trieNode[O]{newTrieNode[O](), newTrieNode[O]()},
		maxSize:     maxSize,
	}
}

func (t *Trie[O]) Load(keys []TrieKey) (O, bool) {
	for _, idx := range [2]int{t.headIdx, 1 - t.headIdx} {
		if n := find(t.generations[idx], keys); n != nil && n.hasValue {
			return n.value, true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []TrieKey, value O) {
	if t.maxSize > 0 && t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.generations[t.headIdx] = newTrieNode[O]()
		t.size = 0
	}

	n := t.generations[t.headIdx]
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			child = newTrieNode[O]()
			n.children[k] = child
		}
		n = child
	}
	if !n.hasValue {
		t.size++
	}
	n.value = value
	n.hasValue = true
}

func find[O any](n *trieNode[O], keys []TrieKey) *trieNode[O] {
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}
