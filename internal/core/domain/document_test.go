package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswer_SourceNames_Deduplicates(t *testing.T) {
	a := Answer{
		Text: "answer",
		Sources: []Chunk{
			{Source: "torque-spec.pdf"},
			{Source: "assembly-notes.txt"},
			{Source: "torque-spec.pdf"},
		},
	}

	assert.Equal(t, []string{"torque-spec.pdf", "assembly-notes.txt"}, a.SourceNames())
}

func TestAnswer_SourceNames_Empty(t *testing.T) {
	a := Answer{Text: "no local documents used"}
	assert.Nil(t, a.SourceNames())
}

func TestFrame_Empty(t *testing.T) {
	var f *Frame
	assert.True(t, f.Empty())
	assert.True(t, (&Frame{Name: "x.csv"}).Empty())
	assert.True(t, (&Frame{Columns: []string{"a"}}).Empty(), "header without rows is empty")

	full := &Frame{Columns: []string{"a"}, Rows: [][]string{{"1"}}}
	assert.False(t, full.Empty())
}

func TestFrame_Head(t *testing.T) {
	f := &Frame{
		Columns: []string{"part", "qty"},
		Rows:    [][]string{{"bolt", "4"}, {"nut", "4"}, {"washer", "8"}},
	}

	assert.Len(t, f.Head(2), 2)
	assert.Len(t, f.Head(10), 3)
	assert.Nil(t, f.Head(0))
}
