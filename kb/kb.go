/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package kb

import (
	"github.com/krotik/mtrie/parser"
	"github.com/krotik/mtrie/trie"
	"github.com/krotik/mtrie/util"
)

/*
KnowledgeBase is a small facade around a MultiTrie of string tokens and
Atom values. It does the text-to-TrieKey and TrieKey-to-Atom plumbing a
symbolic-expression store needs and is the piece that the S-expression
reader, the tokenizer and the interpreter (see Evaluator) all sit on top
of.
*/
type KnowledgeBase struct {
	trie      *trie.MultiTrie[string, Atom]
	tokenizer *Tokenizer
	logger    util.Logger
}

/*
New creates an empty KnowledgeBase using tok to classify stored facts.
A nil tok disables classification; every stored Atom then has Kind "".
*/
func New(tok *Tokenizer) *KnowledgeBase {
	if tok == nil {
		tok = NewTokenizer()
	}
	return &KnowledgeBase{
		trie:      trie.New[string, Atom](),
		tokenizer: tok,
		logger:    util.NewNullLogger(),
	}
}

/*
SetLogger attaches a logger to the knowledge base and to the underlying
trie. Every Assert/Retract logs a debug line tagged "kb"; the trie's own
Add/Remove calls log separately, tagged "trie".
*/
func (kb *KnowledgeBase) SetLogger(logger util.Logger) {
	if logger == nil {
		logger = util.NewNullLogger()
	}
	kb.logger = util.NewSourceLogger(logger, "kb")
	kb.trie.SetLogger(logger)
}

/*
Size returns the number of nodes in the underlying trie, including the
root.
*/
func (kb *KnowledgeBase) Size() int {
	return kb.trie.Size()
}

/*
Assert parses text as a single s-expression and stores it as a fact. The
stored Atom's text is the verbatim input and its Kind is assigned by the
knowledge base's Tokenizer from the expression's head symbol.
*/
func (kb *KnowledgeBase) Assert(text string) error {
	kb.logger.LogDebug("Assert(): ", text)

	toks, err := parser.ReadTokens("kb", text)
	if err != nil {
		return err
	}

	key, err := trie.FromList(toks)
	if err != nil {
		return err
	}

	kb.trie.Add(key, Atom{Text: text, Kind: kb.tokenizer.Classify(headSymbol(toks))})

	return nil
}

/*
Query parses text as a pattern (which may contain wildcards) and returns
every matching stored fact's text. The same fact may appear more than
once if it is reachable through more than one matching path.
*/
func (kb *KnowledgeBase) Query(text string) ([]string, error) {
	key, err := parser.Read("kb", text)
	if err != nil {
		return nil, err
	}

	var out []string
	for atom := range kb.trie.Get(key) {
		out = append(out, atom.Text)
	}

	return out, nil
}

/*
Retract parses text as a single s-expression and removes one stored
occurrence equal to it, returning true if one was actually removed.
*/
func (kb *KnowledgeBase) Retract(text string) (bool, error) {
	kb.logger.LogDebug("Retract(): ", text)

	key, err := parser.Read("kb", text)
	if err != nil {
		return false, err
	}

	return kb.trie.Remove(key, Atom{Text: text, Kind: kb.tokenizer.Classify(headSymbol(key.Tokens()))}), nil
}

func headSymbol[K ~string](toks []trie.Token[K]) string {
	for _, t := range toks {
		if t.Kind == trie.Exact {
			return string(t.Symbol)
		}
	}
	return ""
}
