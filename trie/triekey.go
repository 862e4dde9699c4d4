/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package trie

import "strings"

/*
annotatedToken is a Token together with the span offset of a LeftPar -
the distance, in tokens, to its matching RightPar. hasSpan is false for
every token other than a LeftPar.
*/
type annotatedToken[K comparable] struct {
	token   Token[K]
	span    int
	hasSpan bool
}

/*
TrieKey is an ordered, balance-checked sequence of tokens. The zero value
is the empty key. TrieKey is a plain slice header, so assigning or
passing it by value is a cheap, independent clone - callers never need to
defensively copy one before handing it to Add, Get or Remove.
*/
type TrieKey[K comparable] struct {
	tokens []annotatedToken[K]
}

/*
FromList builds a TrieKey from a flat sequence of bare tokens, checking
that every LeftPar is closed by a later RightPar and that parentheses
nest properly. It is the only operation in this package that can fail
for reasons intrinsic to its input.
*/
func FromList[K comparable](tokens []Token[K]) (TrieKey[K], error) {
	annotated := make([]annotatedToken[K], len(tokens))
	var openStack []int

	for pos, tok := range tokens {
		annotated[pos] = annotatedToken[K]{token: tok}

		switch tok.Kind {
		case LeftPar:
			openStack = append(openStack, pos)
		case RightPar:
			if len(openStack) == 0 {
				return TrieKey[K]{}, &UnbalancedKeyError{UnmatchedRightPar: pos}
			}
			start := openStack[len(openStack)-1]
			openStack = openStack[:len(openStack)-1]
			annotated[start].span = pos - start
			annotated[start].hasSpan = true
		}
	}

	if len(openStack) > 0 {
		return TrieKey[K]{}, &UnbalancedKeyError{UnmatchedLeftPars: openStack, UnmatchedRightPar: -1}
	}

	return TrieKey[K]{tokens: annotated}, nil
}

/*
IsEmpty reports whether the key has no remaining tokens.
*/
func (k TrieKey[K]) IsEmpty() bool {
	return len(k.tokens) == 0
}

/*
Len returns the number of remaining tokens.
*/
func (k TrieKey[K]) Len() int {
	return len(k.tokens)
}

/*
popHead returns the head token of the key together with the key holding
everything after it. Calling popHead on an empty key is a programmer
error - well-formed traversal always checks IsEmpty first.
*/
func (k TrieKey[K]) popHead() (annotatedToken[K], TrieKey[K]) {
	if k.IsEmpty() {
		panic("trie: pop of empty TrieKey")
	}
	return k.tokens[0], TrieKey[K]{tokens: k.tokens[1:]}
}

/*
skip returns the suffix of the key obtained by dropping the first n
tokens. It is used to jump a query Wildcard over a whole stored
parenthesised group.
*/
func (k TrieKey[K]) skip(n int) TrieKey[K] {
	if n >= len(k.tokens) {
		return TrieKey[K]{}
	}
	return TrieKey[K]{tokens: k.tokens[n:]}
}

/*
Tokens returns the bare token sequence this key was built from, in
order, discarding the span annotations.
*/
func (k TrieKey[K]) Tokens() []Token[K] {
	ret := make([]Token[K], len(k.tokens))
	for i, at := range k.tokens {
		ret[i] = at.token
	}
	return ret
}

func (k TrieKey[K]) String() string {
	var sb strings.Builder
	sb.WriteString("TrieKey(")
	for i, at := range k.tokens {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(at.token.String())
	}
	sb.WriteString(")")
	return sb.String()
}
