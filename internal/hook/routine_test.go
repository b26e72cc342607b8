package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	var got []Yield
	for y := range Sequence(Suspend(1), nil, Done, func(yield func(Yield) bool) { yield("x") }) {
		got = append(got, y)
	}
	assert.Equal(t, []Yield{nil, "x"}, got)
}

func TestSequence_StopsWithConsumer(t *testing.T) {
	ran := false
	seq := Sequence(Suspend(1), func(func(Yield) bool) { ran = true })
	for range seq {
		break
	}
	assert.False(t, ran)
}

func TestFunc_NilRoutine(t *testing.T) {
	f := NewFunc[*testHandler]("nil", func(*testHandler) Routine { return nil })
	assert.Equal(t, 0, drain(f.Invoke(nil)))
	assert.Equal(t, "nil", f.String())
}
