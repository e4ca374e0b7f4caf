// Package util holds small text and collection helpers shared across the game
// packages.
package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MakeTextList gives an English list of things based on their display name,
// such as "a key, an apple, and a lamp". If articles is true, each item is
// given an indefinite article and an item that starts with a single capital
// letter is lower-cased to follow it.
func MakeTextList(items []string, articles bool) string {
	if len(items) < 1 {
		return ""
	}

	withArts := make([]string, len(items))
	for i := range items {
		item := items[i]
		if articles && item != "" {
			iRunes := []rune(item)
			leadingUpper := unicode.IsUpper(iRunes[0])
			allCaps := leadingUpper
			if leadingUpper && len(iRunes) > 1 {
				allCaps = unicode.IsUpper(iRunes[1])
			}

			if leadingUpper && !allCaps {
				iRunes[0] = unicode.ToLower(iRunes[0])
				item = string(iRunes)
			}

			item = ArticleFor(item, false) + " " + item
		}
		withArts[i] = item
	}

	switch len(withArts) {
	case 1:
		return withArts[0]
	case 2:
		return withArts[0] + " and " + withArts[1]
	default:
		// if its more than two, use an oxford comma
		withArts[len(withArts)-1] = "and " + withArts[len(withArts)-1]
		return strings.Join(withArts, ", ")
	}
}

// ArticleFor returns the article for the given string. It will be capitalized
// the same as the string. If definite is true, the returned value will be "the"
// capitalized as described; otherwise, it will be "a"/"an" capitalized as
// described.
func ArticleFor(s string, definite bool) string {
	sRunes := []rune(s)

	if len(sRunes) < 1 {
		return ""
	}

	leadingUpper := unicode.IsUpper(sRunes[0])
	allCaps := leadingUpper
	if leadingUpper && len(sRunes) > 1 {
		allCaps = unicode.IsUpper(sRunes[1])
	}

	if definite {
		if allCaps {
			return "THE"
		} else if leadingUpper {
			return "The"
		}
		return "the"
	}

	art := "a"
	if allCaps || leadingUpper {
		art = "A"
	}

	switch unicode.ToUpper(sRunes[0]) {
	case 'A', 'E', 'I', 'O', 'U':
		if allCaps {
			art += "N"
		} else {
			art += "n"
		}
	}

	return art
}

// StringSet is a set of strings. The zero value is not ready for use; create
// one with make or a literal.
type StringSet map[string]bool

// Add adds s to the set.
func (ss StringSet) Add(s string) {
	ss[s] = true
}

// Has returns whether s is in the set.
func (ss StringSet) Has(s string) bool {
	return ss[s]
}

// Upper converts s to upper case using full Unicode case mapping, so a single
// character may become several (such as "ß" becoming "SS"). Every comparison
// between player input and names in the game goes through it so both sides are
// always mapped the same way.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
