/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package trie

import "testing"

func mustKey(t *testing.T, toks ...Token[string]) TrieKey[string] {
	t.Helper()
	k, err := FromList(toks)
	if err != nil {
		t.Fatalf("FromList(%v) returned unexpected error: %v", toks, err)
	}
	return k
}

func TestFromListBalanced(t *testing.T) {
	toks := []Token[string]{
		NewLeftPar[string](),
		NewExact("likes"),
		NewWildcard[string](),
		NewRightPar[string](),
	}

	k, err := FromList(toks)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if k.Len() != 4 {
		t.Error("Unexpected length:", k.Len())
	}

	if k.IsEmpty() {
		t.Error("Key should not be empty")
	}

	if got := k.Tokens(); len(got) != 4 || got[0].Kind != LeftPar || got[3].Kind != RightPar {
		t.Error("Unexpected tokens:", got)
	}
}

func TestFromListEmpty(t *testing.T) {
	k, err := FromList[string](nil)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if !k.IsEmpty() {
		t.Error("Key built from nil should be empty")
	}
}

func TestFromListUnmatchedRightPar(t *testing.T) {
	_, err := FromList([]Token[string]{
		NewExact("foo"),
		NewRightPar[string](),
	})

	if err == nil {
		t.Fatal("Expected an error")
	}

	var uke *UnbalancedKeyError
	if !asUnbalancedKeyError(err, &uke) {
		t.Fatal("Expected an *UnbalancedKeyError, got:", err)
	}

	if uke.UnmatchedRightPar != 1 {
		t.Error("Unexpected position:", uke.UnmatchedRightPar)
	}
}

func TestFromListUnmatchedLeftPar(t *testing.T) {
	_, err := FromList([]Token[string]{
		NewLeftPar[string](),
		NewExact("foo"),
	})

	if err == nil {
		t.Fatal("Expected an error")
	}

	var uke *UnbalancedKeyError
	if !asUnbalancedKeyError(err, &uke) {
		t.Fatal("Expected an *UnbalancedKeyError, got:", err)
	}

	if len(uke.UnmatchedLeftPars) != 1 || uke.UnmatchedLeftPars[0] != 0 {
		t.Error("Unexpected positions:", uke.UnmatchedLeftPars)
	}
}

func TestFromListNestedPars(t *testing.T) {
	k, err := FromList([]Token[string]{
		NewLeftPar[string](),
		NewExact("a"),
		NewLeftPar[string](),
		NewExact("b"),
		NewExact("c"),
		NewRightPar[string](),
		NewRightPar[string](),
	})

	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if k.Len() != 7 {
		t.Error("Unexpected length:", k.Len())
	}
}

func asUnbalancedKeyError(err error, target **UnbalancedKeyError) bool {
	uke, ok := err.(*UnbalancedKeyError)
	if !ok {
		return false
	}
	*target = uke
	return true
}

func TestTrieKeyPopAndSkip(t *testing.T) {
	k := mustKey(t, NewExact("a"), NewExact("b"), NewExact("c"))

	head, rest := k.popHead()
	if head.token.Kind != Exact || head.token.Symbol != "a" {
		t.Error("Unexpected head:", head)
	}
	if rest.Len() != 2 {
		t.Error("Unexpected rest length:", rest.Len())
	}

	skipped := k.skip(2)
	if skipped.Len() != 1 {
		t.Error("Unexpected skip result length:", skipped.Len())
	}

	if k.skip(10).Len() != 0 {
		t.Error("Skipping past the end should yield an empty key")
	}
}

func TestTrieKeyPopEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected a panic popping an empty key")
		}
	}()

	var k TrieKey[string]
	k.popHead()
}

func TestTrieKeyString(t *testing.T) {
	k := mustKey(t, NewLeftPar[string](), NewExact("a"), NewRightPar[string]())

	if got, want := k.String(), "TrieKey(LeftPar, Exact(a), RightPar)"; got != want {
		t.Errorf("Unexpected string representation: got %q want %q", got, want)
	}
}
