package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinList(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"fire"}, "fire"},
		{[]string{"fire", "cold"}, "fire or cold"},
		{[]string{"fire", "cold", "acid"}, "fire, cold, or acid"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinList(tt.items, "or"))
	}
}

func TestListSeparatorMatchesJoin(t *testing.T) {
	items := []string{"bite", "claw", "sting", "crush"}
	got := ""
	for i, it := range items {
		got += ListSeparator(i, len(items), "and") + it
	}
	assert.Equal(t, JoinList(items, "and"), got)

	pair := ListSeparator(0, 2, "and") + "a" + ListSeparator(1, 2, "and") + "b"
	assert.Equal(t, "a and b", pair)
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "st", 2: "nd", 3: "rd", 4: "th", 11: "th", 12: "th", 13: "th", 21: "st", 22: "nd", 33: "rd", 50: "th"}
	for n, want := range cases {
		assert.Equal(t, want, Ordinal(n), "n=%d", n)
	}
}

func TestArticles(t *testing.T) {
	assert.Equal(t, "an", Article("orc"))
	assert.Equal(t, "a", Article("kobold"))
	assert.Equal(t, "an", NumberArticle(8))
	assert.Equal(t, "an", NumberArticle(18))
	assert.Equal(t, "a", NumberArticle(28))
	assert.Equal(t, "a", NumberArticle(1))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "The kobold", Capitalize("the kobold"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "It", Capitalize("it"))
}
