/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"testing"

	"github.com/krotik/mtrie/trie"
)

func TestReadSimpleExpression(t *testing.T) {
	key, err := Read("test", "(likes Tom Jerry)")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if key.Len() != 5 {
		t.Error("Unexpected length:", key.Len())
	}

	if got := Print(key); got != "(likes Tom Jerry)" {
		t.Error("Unexpected round-trip:", got)
	}
}

func TestReadWildcard(t *testing.T) {
	key, err := Read("test", "(likes Tom *)")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	toks := key.Tokens()
	if toks[3].Kind != trie.Wildcard {
		t.Error("Expected a wildcard token:", toks)
	}
}

func TestReadBareSymbol(t *testing.T) {
	key, err := Read("test", "foo")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if key.Len() != 1 {
		t.Error("Unexpected length:", key.Len())
	}
}

func TestReadUnbalanced(t *testing.T) {
	if _, err := Read("test", "(likes Tom Jerry"); err == nil {
		t.Error("Expected an error for an unterminated expression")
	}

	if _, err := Read("test", "likes Tom Jerry)"); err == nil {
		t.Error("Expected an error for an unmatched closing paren")
	}
}

func TestReadRejectsMultipleExpressions(t *testing.T) {
	if _, err := Read("test", "foo bar"); err == nil {
		t.Error("Expected an error for more than one top-level expression")
	}

	if _, err := Read("test", "(likes Tom Jerry) (likes Jerry Spike)"); err == nil {
		t.Error("Expected an error for more than one top-level expression")
	}

	if _, err := Read("test", "   "); err == nil {
		t.Error("Expected an error for zero top-level expressions")
	}
}

func TestReadAllMultipleExpressions(t *testing.T) {
	keys, err := ReadAll("test", "(likes Tom Jerry) (likes Jerry Spike) foo")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if len(keys) != 3 {
		t.Fatalf("Unexpected number of expressions: %v", len(keys))
	}

	if Print(keys[0]) != "(likes Tom Jerry)" {
		t.Error("Unexpected first expression:", Print(keys[0]))
	}

	if Print(keys[2]) != "foo" {
		t.Error("Unexpected third expression:", Print(keys[2]))
	}
}

func TestReadNestedExpression(t *testing.T) {
	key, err := Read("test", "(knows (person Tom) Jerry)")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if got, want := Print(key), "(knows (person Tom) Jerry)"; got != want {
		t.Errorf("Unexpected round-trip: got %q want %q", got, want)
	}
}
