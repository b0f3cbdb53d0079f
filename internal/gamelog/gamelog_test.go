package gamelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentNewestFirst(t *testing.T) {
	l := New("one")
	l.Add("two")
	l.Addf("%d", 3)

	assert.Equal(t, []string{"3", "two"}, l.Recent(2))
	assert.Equal(t, []string{"3", "two", "one"}, l.Recent(10))
	assert.Nil(t, l.Recent(0))
	assert.Equal(t, "3", l.Last())
	assert.Len(t, l.Entries(), 3)
}

func TestEntriesIsACopy(t *testing.T) {
	l := New("a")
	e := l.Entries()
	e[0] = "changed"
	assert.Equal(t, []string{"a"}, l.Entries())
}

func TestEmptyLog(t *testing.T) {
	var l Log
	assert.Empty(t, l.Recent(5))
	assert.Equal(t, "", l.Last())
}
