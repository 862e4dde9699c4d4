/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package trie

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

/*
node is a single vertex of the trie graph. Child edges and skip-par edges
are both owning references: a node stays alive as long as any edge -
labelled or skip-par - still points at it, in addition to the root which
owns the whole reachable graph. Node identity for skip_pars is the
pointer itself, never a structural hash.
*/
type node[K comparable, V comparable] struct {
	children map[Token[K]]*node[K, V]
	skipPars map[*node[K, V]]*node[K, V]
	values   mapset.Set[V]
}

func newNode[K comparable, V comparable]() *node[K, V] {
	return &node[K, V]{
		children: make(map[Token[K]]*node[K, V]),
		skipPars: make(map[*node[K, V]]*node[K, V]),
		values:   mapset.NewThreadUnsafeSet[V](),
	}
}

/*
isEmpty reports whether this node carries no information at all: no
labelled children, no skip-par edges and no stored values. An empty node
is garbage once the edge pointing to it is removed.
*/
func (n *node[K, V]) isEmpty() bool {
	return len(n.children) == 0 && len(n.skipPars) == 0 && n.values.Cardinality() == 0
}

func (n *node[K, V]) getOrInsertChild(tok Token[K]) *node[K, V] {
	if c, ok := n.children[tok]; ok {
		return c
	}
	c := newNode[K, V]()
	n.children[tok] = c
	return c
}

/*
removeValue removes value from this node's value set, reporting whether
it was actually present.
*/
func (n *node[K, V]) removeValue(value V) bool {
	if !n.values.Contains(value) {
		return false
	}
	n.values.Remove(value)
	return true
}

/*
successor is one expansion step produced by matchingSuccessors: the node
to continue into, the key remaining once the step is taken, and enough
information about how the edge was reached to prune it later if the
target turns out to be empty.
*/
type successor[K comparable, V comparable] struct {
	node    *node[K, V]
	rest    TrieKey[K]
	viaSkip bool     // reached through a skip-par edge rather than a labelled child
	edge    Token[K] // labelled edge used, meaningful when !viaSkip
}

/*
matchingSuccessors expands one frame of a Get/Remove traversal according
to the matching rules: the head token of key decides which of this
node's children and skip-par edges are viable continuations. key must
not be empty.
*/
func (n *node[K, V]) matchingSuccessors(key TrieKey[K]) []successor[K, V] {
	head, rest := key.popHead()

	var out []successor[K, V]

	switch head.token.Kind {
	case Exact:
		if c, ok := n.children[head.token]; ok {
			out = append(out, successor[K, V]{node: c, rest: rest, edge: head.token})
		}
		wc := NewWildcard[K]()
		if c, ok := n.children[wc]; ok {
			out = append(out, successor[K, V]{node: c, rest: rest, edge: wc})
		}

	case RightPar:
		if c, ok := n.children[head.token]; ok {
			out = append(out, successor[K, V]{node: c, rest: rest, edge: head.token})
		}

	case LeftPar:
		wc := NewWildcard[K]()
		if c, ok := n.children[wc]; ok {
			skipped := rest
			if head.hasSpan {
				skipped = rest.skip(head.span)
			}
			out = append(out, successor[K, V]{node: c, rest: skipped, edge: wc})
		}
		if c, ok := n.children[head.token]; ok {
			out = append(out, successor[K, V]{node: c, rest: rest, edge: head.token})
		}

	case Wildcard:
		for tok, c := range n.children {
			if tok.isParenthesis() {
				continue
			}
			out = append(out, successor[K, V]{node: c, rest: rest, edge: tok})
		}
		for _, c := range n.skipPars {
			out = append(out, successor[K, V]{node: c, rest: rest, viaSkip: true})
		}
	}

	return out
}

/*
String renders the subtree rooted at this node for debugging. It sorts
children for a stable, reproducible representation.
*/
func (n *node[K, V]) String() string {
	return n.stringIndent("")
}

func (n *node[K, V]) stringIndent(indent string) string {
	var buf strings.Builder

	keys := make([]string, 0, len(n.children))
	byKey := make(map[string]Token[K], len(n.children))
	for tok := range n.children {
		s := tok.String()
		keys = append(keys, s)
		byKey[s] = tok
	}
	sort.Strings(keys)

	if n.values.Cardinality() > 0 {
		buf.WriteString(fmt.Sprintf("%svalues: %v\n", indent, n.values.ToSlice()))
	}

	newIndent := indent + "  "
	for _, k := range keys {
		tok := byKey[k]
		buf.WriteString(fmt.Sprintf("%s%s ->\n", indent, k))
		buf.WriteString(n.children[tok].stringIndent(newIndent))
	}

	return buf.String()
}
