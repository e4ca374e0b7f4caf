package command

import (
	"strings"

	"github.com/dekarrin/quest/internal/game"
	"github.com/dekarrin/quest/internal/util"
)

// Tokenize splits a line of player input into words. The line is converted to
// upper case with util.Upper and split on spaces. Runs of spaces do not produce empty words;
// they are dropped. No other characters are treated as separators and
// punctuation is left attached to the words it is next to.
func Tokenize(line string) []string {
	normalizedCase := util.Upper(line)

	split := strings.Split(normalizedCase, " ")
	tokens := make([]string, 0, len(split))
	for _, tok := range split {
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// FindDirection looks through words for one that names a direction. The
// directions are tried in the order of game.Directions, and for each the short
// form is checked before the long one; the first that appears anywhere in
// words is returned. If no word is a direction, game.DirNone is returned.
func FindDirection(words []string) game.Direction {
	for _, d := range game.Directions {
		for _, dw := range d.Words() {
			for _, w := range words {
				if strings.EqualFold(w, dw) {
					return d
				}
			}
		}
	}
	return game.DirNone
}
