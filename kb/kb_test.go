/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package kb

import (
	"sort"
	"testing"

	"github.com/krotik/mtrie/parser"
)

func TestAssertAndQuery(t *testing.T) {
	k := New(DefaultTokenizer())

	if err := k.Assert("(likes Tom Jerry)"); err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if err := k.Assert("(likes Tom Spike)"); err != nil {
		t.Fatal("Unexpected error:", err)
	}

	got, err := k.Query("(likes Tom *)")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	sort.Strings(got)

	want := []string{"(likes Tom Jerry)", "(likes Tom Spike)"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Error("Unexpected result:", got)
	}
}

func TestAssertClassifiesHeadSymbol(t *testing.T) {
	k := New(DefaultTokenizer())
	k.Assert("(likes Tom Jerry)")

	got, _ := k.Query("(likes Tom Jerry)")
	if len(got) != 1 {
		t.Fatal("Unexpected result:", got)
	}

	key, err := parser.Read("test", "(likes Tom Jerry)")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	var found Atom
	for atom := range k.trie.Get(key) {
		found = atom
	}

	if found.Kind != "predicate" {
		t.Error("Unexpected kind:", found.Kind)
	}
}

func TestRetract(t *testing.T) {
	k := New(nil)
	k.Assert("(likes Tom Jerry)")

	ok, err := k.Retract("(likes Tom Jerry)")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if !ok {
		t.Error("Expected Retract to report success")
	}

	got, _ := k.Query("(likes Tom Jerry)")
	if len(got) != 0 {
		t.Error("Expected no results after retraction:", got)
	}

	if k.Size() != 1 {
		t.Error("Expected trie to shrink back to the root, got size:", k.Size())
	}
}

func TestRetractUnknownReturnsFalse(t *testing.T) {
	k := New(nil)

	ok, err := k.Retract("(likes Tom Jerry)")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if ok {
		t.Error("Expected Retract of an absent fact to report false")
	}
}

func TestQueryPropagatesParseErrors(t *testing.T) {
	k := New(nil)

	if _, err := k.Query("(likes Tom"); err == nil {
		t.Error("Expected an error for an unterminated query")
	}
}
