package sportsdb

import (
	"strings"

	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

// vocabulário strSport do provedor => categoria do ledger
var labelToCategory = map[string]sport.Category{
	"Soccer":            sport.Football,
	"Basketball":        sport.Basketball,
	"Ice Hockey":        sport.IceHockey,
	"American Football": sport.AmericanFootball,
	"Baseball":          sport.Baseball,
	"Tennis":            sport.Tennis,
	"Handball":          sport.Handball,
	"Volleyball":        sport.Volleyball,
	"Esports":           sport.Esports,
	"Fighting":          sport.Other,
	"Rugby":             sport.Other,
	"Cricket":           sport.Other,
	"Golf":              sport.Other,
	"Motorsport":        sport.Other,
	"Cycling":           sport.Other,
	"Darts":             sport.Other,
	"Snooker":           sport.Other,
}

// MapLabel traduz o rótulo de esporte do provedor. Rótulos desconhecidos
// viram Other.
func MapLabel(label string) sport.Category {
	if c, ok := labelToCategory[strings.TrimSpace(label)]; ok {
		return c
	}
	return sport.Other
}

// Labels retorna o vocabulário conhecido do provedor
func Labels() []string {
	out := make([]string, 0, len(labelToCategory))
	for l := range labelToCategory {
		out = append(out, l)
	}
	return out
}
