/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package trie

import (
	"iter"

	"github.com/krotik/mtrie/util"
)

/*
MultiTrie is a pattern-indexed multimap. Keys are token sequences which
may contain wildcards; lookup returns every value whose insertion key is
mutually matchable with the query key. The same value may be stored
under many keys and the same key may hold many values.

A MultiTrie is not safe for concurrent use, and Add/Remove must not run
while a Get iterator over the same trie is still being drained.
*/
type MultiTrie[K comparable, V comparable] struct {
	root   *node[K, V]
	logger util.Logger
}

/*
New creates an empty MultiTrie: one root node, no children, no values.
*/
func New[K comparable, V comparable]() *MultiTrie[K, V] {
	return &MultiTrie[K, V]{
		root:   newNode[K, V](),
		logger: util.NewNullLogger(),
	}
}

/*
SetLogger attaches a logger which receives a debug message for every Add
and Remove call.
*/
func (mt *MultiTrie[K, V]) SetLogger(logger util.Logger) {
	if logger == nil {
		logger = util.NewNullLogger()
	}
	mt.logger = util.NewSourceLogger(logger, "trie")
}

/*
Size returns the number of nodes reachable from the root through labelled
child edges, counting the root itself and counting any node shared by
several edges only once. Skip-par edges are not followed.
Mainly useful for tests asserting that Remove gave back all storage an
Add had claimed.
*/
func (mt *MultiTrie[K, V]) Size() int {
	seen := make(map[*node[K, V]]bool)
	var count func(n *node[K, V]) int
	count = func(n *node[K, V]) int {
		if seen[n] {
			return 0
		}
		seen[n] = true
		total := 1
		for _, c := range n.children {
			total += count(c)
		}
		return total
	}
	return count(mt.root)
}

/*
Add inserts value under key. While walking the key, every LeftPar
encountered is recorded together with the node reached just before it
and the node reached just after its matching RightPar; once the walk is
complete a skip-par edge is installed between each such pair so that a
query Wildcard can later jump over the whole group in one step.
*/
func (mt *MultiTrie[K, V]) Add(key TrieKey[K], value V) {
	mt.logger.LogDebug("MultiTrie.Add(): key: ", key, ", value: ", value)

	if key.IsEmpty() {
		mt.root.values.Add(value)
		return
	}

	var nodes []*node[K, V]
	type parSpan struct{ start, end int }
	var pars []parSpan
	pos := 0

	cur := mt.root
	for !key.IsEmpty() {
		head, rest := key.popHead()

		if head.token.Kind == LeftPar && head.hasSpan {
			pars = append(pars, parSpan{start: pos, end: pos + head.span + 1})
		}

		cur = cur.getOrInsertChild(head.token)
		nodes = append(nodes, cur)

		pos++
		key = rest
	}

	cur.values.Add(value)

	for _, sp := range pars {
		endNode := nodes[sp.end-1]
		if sp.start > 0 {
			nodes[sp.start-1].skipPars[endNode] = endNode
		} else {
			mt.root.skipPars[endNode] = endNode
		}
	}
}

/*
Get returns a lazy, finite sequence of every value whose insertion key is
matchable against key under the rules in the package documentation. The
same value may be produced more than once if more than one matching path
leads to it; callers wanting set semantics must deduplicate. The
sequence does not materialise all matching paths up front - it explores
the node graph depth-first as it is drained, and stopping the range loop
early abandons the rest of the exploration with no cleanup required.
*/
func (mt *MultiTrie[K, V]) Get(key TrieKey[K]) iter.Seq[V] {
	return func(yield func(V) bool) {
		type frame struct {
			node *node[K, V]
			key  TrieKey[K]
		}

		stack := []frame{{mt.root, key}}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.key.IsEmpty() {
				for _, v := range f.node.values.ToSlice() {
					if !yield(v) {
						return
					}
				}
				continue
			}

			for _, s := range f.node.matchingSuccessors(f.key) {
				stack = append(stack, frame{s.node, s.rest})
			}
		}
	}
}

/*
Remove deletes one occurrence of value stored under key. It descends
along every matching path (not just the first one found), removing value
wherever the path ends, and prunes any child or skip-par edge whose
target became empty on the way back up. It returns true if at least one
occurrence was actually removed.
*/
func (mt *MultiTrie[K, V]) Remove(key TrieKey[K], value V) bool {
	mt.logger.LogDebug("MultiTrie.Remove(): key: ", key, ", value: ", value)
	return mt.root.remove(key, value)
}

func (n *node[K, V]) remove(key TrieKey[K], value V) bool {
	if key.IsEmpty() {
		return n.removeValue(value)
	}

	removedAny := false

	for _, s := range n.matchingSuccessors(key) {
		removed := s.node.remove(s.rest, value)

		if removed && s.node.isEmpty() {
			if s.viaSkip {
				delete(n.skipPars, s.node)
			} else {
				delete(n.children, s.edge)
			}
		}

		removedAny = removedAny || removed
	}

	return removedAny
}

func (mt *MultiTrie[K, V]) String() string {
	return mt.root.String()
}
