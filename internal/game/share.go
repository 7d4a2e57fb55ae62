package game

import (
	"fmt"
	"strings"
)

var emoji = map[Color]string{
	Green:  "🟩",
	Yellow: "🟨",
	Red:    "🟥",
}

// ShareText renders a finished session as spoiler-free text: a header and,
// for classic games, one emoji row per guess built from Feedback.Attributes.
func ShareText(g *Game) (string, error) {
	if !g.Finished() {
		return "", ErrGameInProgress
	}

	var b strings.Builder
	n := len(g.Guesses)
	tries := "tries"
	if n == 1 {
		tries = "try"
	}
	if g.Status == StatusWon {
		fmt.Fprintf(&b, "#Pokedle %s (%s, gen 1-%d): solved in %d %s! 🏆", g.Date, g.Mode, g.Generations, n, tries)
	} else {
		fmt.Fprintf(&b, "#Pokedle %s (%s, gen 1-%d): not solved after %d %s", g.Date, g.Mode, g.Generations, n, tries)
	}

	if g.Mode == Classic {
		b.WriteString("\n")
		for _, o := range g.Outcomes {
			if o.Result == nil {
				continue
			}
			b.WriteString("\n")
			for _, a := range o.Result.Attributes() {
				b.WriteString(emoji[a.Color])
			}
		}
	}
	return b.String(), nil
}
