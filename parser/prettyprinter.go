/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strings"

	"github.com/krotik/mtrie/trie"
)

/*
Print renders a TrieKey back into s-expression text, the inverse of Read:
elements are separated by single spaces with no space just inside a
parenthesis, so input written that way (including a bare symbol) is
reproduced exactly.
*/
func Print[K ~string](key trie.TrieKey[K]) string {
	return PrintTokens(key.Tokens())
}

/*
PrintTokens renders a flat token sequence as s-expression text.
*/
func PrintTokens[K ~string](toks []trie.Token[K]) string {
	var sb strings.Builder

	needSpace := false

	for _, tok := range toks {
		switch tok.Kind {
		case trie.LeftPar:
			if needSpace {
				sb.WriteString(" ")
			}
			sb.WriteString("(")
			needSpace = false

		case trie.RightPar:
			sb.WriteString(")")
			needSpace = true

		default:
			if needSpace {
				sb.WriteString(" ")
			}
			sb.WriteString(printToken(tok))
			needSpace = true
		}
	}

	return sb.String()
}

func printToken[K ~string](tok trie.Token[K]) string {
	if tok.Kind == trie.Wildcard {
		return "*"
	}
	return string(tok.Symbol)
}
