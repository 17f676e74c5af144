package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Allison Becker":      "AB",
		"Madonna":             "MA",
		"  Madonna ":          "MA",
		"joseph":              "JO",
		"Al":                  "AL",
		"A":                   "A",
		"  Sarah   Johnson  ": "SJ",
		"mary jane watson":    "MJ",
		"Émile Zola":          "ÉZ",
		"Zoë":                 "ZO",
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Initials(name)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestInitials_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := Initials(name)
		assert.True(t, errors.Is(err, ErrEmptyName), "name %q", name)
	}
}
