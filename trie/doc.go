/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package trie implements the MultiTrie: a pattern-indexed multimap used to
match ordered token sequences against each other under a wildcard
semantics that permits either side of the match - the stored key or the
query key - to contain a wildcard which stands for either a single token
or a whole balanced parenthesised sub-sequence.

The trie is the matching index for a symbolic-expression knowledge base:
keys are token sequences produced from a parsed expression and values are
whatever the caller wants to retrieve once a key is known to overlap
with a stored pattern (e.g. an Atom, a Rule, a fact).

A MultiTrie is not safe for concurrent use. Add and Remove must not be
called while a Get iterator over the same trie is still being consumed,
since both mutate the node graph the iterator walks.
*/
package trie
