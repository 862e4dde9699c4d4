/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"

	"github.com/krotik/mtrie/trie"
	"github.com/krotik/mtrie/util"
)

/*
Read parses exactly one s-expression from source text into a trie.TrieKey.
A bare symbol with no enclosing parentheses is read as a one-token key.
Read fails if its parentheses are not balanced, or if the text holds
anything other than exactly one top-level expression.
*/
func Read(name string, input string) (trie.TrieKey[string], error) {
	keys, err := ReadAll(name, input)
	if err != nil {
		return trie.TrieKey[string]{}, err
	}

	if len(keys) != 1 {
		return trie.TrieKey[string]{}, util.NewSourceError(name, util.ErrUnexpectedTok,
			fmt.Sprintf("expected exactly one expression, found %d", len(keys)), 0, 0)
	}

	return keys[0], nil
}

/*
ReadTokens lexes source text into the flat trie.Token sequence a
trie.TrieKey is built from. An unmatched closing parenthesis or an
expression left open at the end of input is reported as a SourceError.
Unlike Read, it accepts any number of top-level expressions and returns
their tokens concatenated; the result still has to be passed to
trie.FromList to obtain a TrieKey.
*/
func ReadTokens(name string, input string) ([]trie.Token[string], error) {
	var toks []trie.Token[string]
	depth := 0

	for lt := range Lex(name, input) {
		switch lt.ID {
		case TokenEOF:
			if depth != 0 {
				return nil, util.NewSourceError(name, util.ErrUnexpectedEOF,
					"unexpected end of input inside an expression", lt.Lline, lt.Lpos)
			}
			return toks, nil

		case TokenError:
			return nil, util.NewSourceError(name, util.ErrUnexpectedTok, lt.Val, lt.Lline, lt.Lpos)

		case TokenLPAREN:
			depth++
			toks = append(toks, trie.NewLeftPar[string]())

		case TokenRPAREN:
			depth--
			if depth < 0 {
				return nil, util.NewSourceError(name, util.ErrUnexpectedTok,
					"unmatched )", lt.Lline, lt.Lpos)
			}
			toks = append(toks, trie.NewRightPar[string]())

		case TokenWILDCARD:
			toks = append(toks, trie.NewWildcard[string]())

		case TokenSYMBOL:
			toks = append(toks, trie.NewExact(lt.Val))
		}
	}

	return toks, nil
}

/*
ReadAll parses every top-level s-expression in source text, returning one
TrieKey per expression in source order.
*/
func ReadAll(name string, input string) ([]trie.TrieKey[string], error) {
	var keys []trie.TrieKey[string]
	var cur []trie.Token[string]
	depth := 0

	flush := func() error {
		if len(cur) == 0 {
			return nil
		}
		key, err := trie.FromList(cur)
		if err != nil {
			return util.NewSourceError(name, err, "unbalanced expression", 0, 0)
		}
		keys = append(keys, key)
		cur = nil
		return nil
	}

	for lt := range Lex(name, input) {
		switch lt.ID {
		case TokenEOF:
			if depth != 0 {
				return nil, util.NewSourceError(name, util.ErrUnexpectedEOF,
					"unexpected end of input inside an expression", lt.Lline, lt.Lpos)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			return keys, nil

		case TokenError:
			return nil, util.NewSourceError(name, util.ErrUnexpectedTok, lt.Val, lt.Lline, lt.Lpos)

		case TokenLPAREN:
			depth++
			cur = append(cur, trie.NewLeftPar[string]())

		case TokenRPAREN:
			depth--
			if depth < 0 {
				return nil, util.NewSourceError(name, util.ErrUnexpectedTok,
					"unmatched )", lt.Lline, lt.Lpos)
			}
			cur = append(cur, trie.NewRightPar[string]())
			if depth == 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}

		case TokenWILDCARD:
			cur = append(cur, trie.NewWildcard[string]())
			if depth == 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}

		case TokenSYMBOL:
			cur = append(cur, trie.NewExact(lt.Val))
			if depth == 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
		}
	}

	return keys, nil
}
