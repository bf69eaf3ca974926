package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

func TestParseItemClass(t *testing.T) {
	cases := []struct {
		in   string
		want entity.ItemClass
		ok   bool
	}{
		{"PR", entity.ClassPaperRoll, true},
		{"pr", entity.ClassPaperRoll, true},
		{"Pr", entity.ClassPaperRoll, true},
		{" fG ", entity.ClassFinishedGood, true},
		{"FG", entity.ClassFinishedGood, true},
		{"", "", false},
		{"rollo", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := entity.ParseItemClass(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
