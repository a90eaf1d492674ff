package utils

import (
	"fmt"
	"strings"
	"time"
)

// OverdueLabel is the display value for a due date already in the past.
const OverdueLabel = "Échéance passée"

// TimeLeft renders the remaining time until due as a French humanized
// duration limited to the two largest units, e.g. "dans 3 jours" or
// "dans 2 mois et 5 jours". A past due date yields OverdueLabel.
func TimeLeft(due, now time.Time) string {
	if !due.After(now) {
		return OverdueLabel
	}

	// Whole calendar months first, so "1 mois" tracks real month lengths.
	months := 0
	cursor := now
	for {
		next := cursor.AddDate(0, 1, 0)
		if next.After(due) {
			break
		}
		cursor = next
		months++
	}

	rest := due.Sub(cursor)
	days := int(rest.Hours()) / 24
	hours := int(rest.Hours()) % 24
	minutes := int(rest.Minutes()) % 60
	years := months / 12
	months = months % 12

	parts := make([]string, 0, 2)
	add := func(n int, singular, plural string) {
		if n == 0 || len(parts) >= 2 {
			return
		}
		label := singular
		if n > 1 {
			label = plural
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, label))
	}

	add(years, "an", "ans")
	add(months, "mois", "mois")
	add(days, "jour", "jours")
	add(hours, "heure", "heures")
	add(minutes, "minute", "minutes")

	if len(parts) == 0 {
		return "dans moins d'une minute"
	}

	return "dans " + strings.Join(parts, " et ")
}
