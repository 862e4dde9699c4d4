/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package kb

import "fmt"

/*
Handler is invoked once for every fact a pattern query matches. It may
return an error to abort the evaluation of the remaining matches.
*/
type Handler func(fact string) error

/*
Evaluator runs a Handler, given with each Eval call, against every match
of a pattern query. It is deliberately thin: the MultiTrie supplies the matches, the
Evaluator only supplies the dispatch loop and early-abort behaviour a
real interpreter would build on top of it.
*/
type Evaluator struct {
	kb *KnowledgeBase
}

/*
NewEvaluator creates an Evaluator bound to kb.
*/
func NewEvaluator(kb *KnowledgeBase) *Evaluator {
	return &Evaluator{kb: kb}
}

/*
Eval parses pattern and calls handler once per matching fact, in
whatever order the underlying trie produces them. It stops early and
returns the handler's error if handler returns one.
*/
func (e *Evaluator) Eval(pattern string, handler Handler) error {
	facts, err := e.kb.Query(pattern)
	if err != nil {
		return fmt.Errorf("could not evaluate pattern %q: %w", pattern, err)
	}

	for _, fact := range facts {
		if err := handler(fact); err != nil {
			return err
		}
	}

	return nil
}

/*
Count returns the number of facts pattern matches, without invoking a
handler.
*/
func (e *Evaluator) Count(pattern string) (int, error) {
	facts, err := e.kb.Query(pattern)
	if err != nil {
		return 0, err
	}
	return len(facts), nil
}
