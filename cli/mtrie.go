/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"devt.de/krotik/common/stringutil"
	"devt.de/krotik/common/termutil"

	"github.com/krotik/mtrie/config"
	"github.com/krotik/mtrie/kb"
	"github.com/krotik/mtrie/util"
)

/*
session bundles a KnowledgeBase with the verbatim text of every fact
asserted into it so far, in assertion order. The trie itself has no way
to list what it holds - Get only returns what mutually matches a given
query key - so a full-text search over stored source text needs its own
side index.
*/
type session struct {
	kb    *kb.KnowledgeBase
	facts []string
}

func newSession(k *kb.KnowledgeBase) *session {
	return &session{kb: k}
}

func (s *session) assert(text string) error {
	if err := s.kb.Assert(text); err != nil {
		return err
	}
	s.facts = append(s.facts, text)
	return nil
}

func (s *session) retract(text string) (bool, error) {
	ok, err := s.kb.Retract(text)
	if err != nil {
		return false, err
	}
	if ok {
		for i, f := range s.facts {
			if f == text {
				s.facts = append(s.facts[:i], s.facts[i+1:]...)
				break
			}
		}
	}
	return ok, nil
}

func main() {
	confFile := flag.String("config", "", "Path to a TOML configuration file")
	loadFile := flag.String("load", "", "Path to a file of facts, one s-expression per line, to assert on startup")
	flag.Parse()

	if *confFile != "" {
		if err := config.LoadConfigFile(*confFile); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	}

	sess := newSession(kb.New(kb.DefaultTokenizer()))

	logger, err := util.NewLogLevelLogger(util.NewStdOutLogger(), config.Str(config.LogLevel))
	if err == nil {
		sess.kb.SetLogger(logger)
	}

	if *loadFile != "" {
		if err := loadFacts(sess, *loadFile); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	}

	if err := runRepl(sess); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func loadFacts(sess *session, path string) error {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	locator := &util.FileSourceLocator{Root: dir}

	data, err := locator.Resolve(file)
	if err != nil {
		return fmt.Errorf("could not read fact file %v: %w", path, err)
	}

	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sess.assert(line); err != nil {
			return fmt.Errorf("%v line %v: %w", path, i+1, err)
		}
	}

	return nil
}

/*
runRepl drives an interactive console reading s-expression commands:

	assert <expr>    store a fact
	query <pattern>  print every fact matching pattern
	retract <expr>   remove one stored occurrence of expr
	find <glob>      print every stored fact whose text matches a glob
	quit             leave the console
*/
func runRepl(sess *session) error {
	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	term, err = termutil.AddHistoryMixin(term, "", func(s string) bool {
		return isExitLine(s)
	})
	if err != nil {
		return err
	}

	if err := term.StartTerm(); err != nil {
		return err
	}
	defer term.StopTerm()

	fmt.Fprintf(os.Stdout, "mtrie %v - type 'q' or 'quit' to exit\n", config.ProductVersion)

	line, err := term.NextLine()
	for err == nil && !isExitLine(line) {
		handleInput(term, sess, strings.TrimSpace(line))
		line, err = term.NextLine()
	}

	return nil
}

func isExitLine(s string) bool {
	s = strings.TrimSpace(s)
	return s == "q" || s == "quit"
}

func handleInput(ot termutil.ConsoleLineTerminal, sess *session, line string) {
	if line == "" {
		return
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "assert":
		if err := sess.assert(rest); err != nil {
			ot.WriteString(fmt.Sprintf("Error: %v\n", err))
		}

	case "query":
		facts, err := sess.kb.Query(rest)
		if err != nil {
			ot.WriteString(fmt.Sprintf("Error: %v\n", err))
			return
		}
		if len(facts) == 0 {
			ot.WriteString("No matches\n")
			return
		}
		for _, f := range facts {
			ot.WriteString(f + "\n")
		}

	case "retract":
		ok, err := sess.retract(rest)
		if err != nil {
			ot.WriteString(fmt.Sprintf("Error: %v\n", err))
			return
		}
		if !ok {
			ot.WriteString("Nothing removed\n")
		}

	case "find":
		matches, err := findGlob(sess.facts, rest)
		if err != nil {
			ot.WriteString(fmt.Sprintf("Invalid search expression: %v\n", err))
			return
		}
		if len(matches) == 0 {
			ot.WriteString("No matches\n")
			return
		}
		for _, f := range matches {
			ot.WriteString(f + "\n")
		}

	default:
		ot.WriteString(fmt.Sprintf("Unknown command %q - expected assert, query, retract or find\n", cmd))
	}
}

/*
findGlob returns every fact whose text matches glob, a shell-style glob
expression translated to a regular expression the same way the teacher's
own interactive debug console ran a full-text search over its state -
substring/pattern search over stored source text, distinct from (and a
complement to) the trie's structural wildcard matching that query uses.
*/
func findGlob(facts []string, glob string) ([]string, error) {
	re, err := stringutil.GlobToRegex(glob)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, f := range facts {
		ok, err := regexp.MatchString(re, f)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, f)
		}
	}

	return out, nil
}
