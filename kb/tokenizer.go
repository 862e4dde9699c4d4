/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package kb

import "regexp"

/*
symbolClass is one registered entry of a Tokenizer: a pattern and the name
of the kind it assigns to symbols matching it.
*/
type symbolClass struct {
	pattern *regexp.Regexp
	kind    string
}

/*
Tokenizer maps the head symbol of a stored expression to a Kind by
trying a sequence of registered patterns in registration order, the
first match winning. It is the registration layer a knowledge base uses
to classify facts without the MultiTrie itself knowing anything about
symbol meaning - the trie only ever sees Exact/Wildcard/LeftPar/RightPar
tokens.
*/
type Tokenizer struct {
	classes []symbolClass
}

/*
NewTokenizer creates a Tokenizer with no registered classes; every
symbol classifies as "".
*/
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

/*
RegisterToken registers a regular expression and the kind name assigned
to any head symbol matching it. Later registrations are tried only if
earlier ones did not match, so more specific patterns should be
registered first.
*/
func (t *Tokenizer) RegisterToken(pattern string, kind string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	t.classes = append(t.classes, symbolClass{re, kind})
	return nil
}

/*
Classify returns the kind of the first registered pattern matching
symbol, or "" if none match.
*/
func (t *Tokenizer) Classify(symbol string) string {
	for _, c := range t.classes {
		if c.pattern.MatchString(symbol) {
			return c.kind
		}
	}
	return ""
}

/*
DefaultTokenizer returns a Tokenizer pre-registered with the symbol
classes a numeric/relational knowledge base typically wants: numbers,
variables (a leading upper-case letter, following the Prolog/MeTTa
convention) and plain lower-case predicate symbols.
*/
func DefaultTokenizer() *Tokenizer {
	t := NewTokenizer()
	t.RegisterToken(`^[0-9]+(\.[0-9]+)?$`, "number")
	t.RegisterToken(`^[A-Z][A-Za-z0-9_]*$`, "variable")
	t.RegisterToken(`^[a-z][A-Za-z0-9_]*$`, "predicate")
	return t
}
