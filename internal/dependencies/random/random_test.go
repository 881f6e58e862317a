package random

import (
	"testing"

	"github.com/matryer/is"
)

func TestSeededSequencesRepeat(t *testing.T) {
	is := is.New(t)
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		is.Equal(a.Intn(24), b.Intn(24))
	}
}

func TestIntnRange(t *testing.T) {
	is := is.New(t)
	r := New()
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		is.True(v >= 0 && v < 7)
	}
	is.Equal(r.Intn(0), 0)
}

func TestString(t *testing.T) {
	is := is.New(t)
	s := NewSeeded(1).String(8, "AB")
	is.Equal(len(s), 8)
	for _, c := range s {
		is.True(c == 'A' || c == 'B')
	}
	is.Equal(New().String(0, "AB"), "")
}
