package slug

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple word", "Coffee", "coffee"},
		{"spaces become hyphens", "Hot Sauce", "hot-sauce"},
		{"punctuation collapses", "Mom & Pop's  Store!!", "mom-pop-s-store"},
		{"already a slug", "summer-sale", "summer-sale"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"digits survive", "Top 10 Deals", "top-10-deals"},
		{"empty input", "", ""},
		{"only symbols", "!!!***", ""},
		{"unicode stripped", "café crème", "caf-cr-me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

var validSlug = regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestProperty_MakeProducesWellFormedSlugs(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("output is lowercase alphanumerics joined by single hyphens", prop.ForAll(
		func(input string) bool {
			return validSlug.MatchString(Make(input))
		},
		gen.AnyString(),
	))

	properties.Property("idempotent: slugging a slug changes nothing", prop.ForAll(
		func(input string) bool {
			s := Make(input)
			return Make(s) == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
