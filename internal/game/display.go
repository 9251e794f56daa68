package game

import "strings"

// Display renders word with unguessed letters masked as "_", one space
// between characters. Odd positions always show, matching Seed.
func Display(word string, guessed map[rune]struct{}) string {
	var b strings.Builder
	i := 0
	for _, r := range word {
		_, ok := guessed[r]
		if i%2 == 1 || ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
		b.WriteByte(' ')
		i++
	}
	return strings.TrimRight(b.String(), " ")
}
