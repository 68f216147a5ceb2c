package pet_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosang/delegates/callback"
	"github.com/yosang/delegates/pet"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestNew(t *testing.T) {
	t.Parallel()

	p := pet.New("Ella", 4)
	assert.Equal(t, "Ella", p.Name)
	assert.Equal(t, 4, p.Age)
	assert.Equal(t, "Ella is 4 years old", p.String())
}

func TestMakeSound_MethodValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := pet.New("Ella", 4).WithOutput(&buf)

	require.NoError(t, p.MakeSound("barks"))

	var sound callback.Procedure = p.MakeSound
	require.NoError(t, callback.Invoke(sound, "Woof woof"))

	assert.Equal(t, "barks\nWoof woof\n", buf.String())
}

func TestWithOutput_DoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	first := pet.New("Ella", 4).WithOutput(&a)
	second := first.WithOutput(&b)

	require.NoError(t, first.MakeSound("one"))
	require.NoError(t, second.MakeSound("two"))

	assert.Equal(t, "one\n", a.String())
	assert.Equal(t, "two\n", b.String())
}

func TestMakeSound_WriteError(t *testing.T) {
	t.Parallel()

	p := pet.New("Ella", 4).WithOutput(failingWriter{})
	assert.EqualError(t, p.MakeSound("barks"), "closed")
}

func TestSleep(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sleep := pet.Sleep(&buf)

	require.NoError(t, sleep("the dog sleeps without making a sound"))
	assert.Equal(t, "the dog sleeps without making a sound\n", buf.String())

	assert.Error(t, pet.Sleep(failingWriter{})("x"))
}

func TestOlder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b pet.Pet
		want string
	}{
		{name: "first older", a: pet.New("Rex", 5), b: pet.New("Buddy", 3), want: "Rex"},
		{name: "second older", a: pet.New("Buddy", 3), b: pet.New("Rex", 5), want: "Rex"},
		{name: "tie prefers first", a: pet.New("Ella", 4), b: pet.New("Max", 4), want: "Ella"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pet.Older(tt.a, tt.b).Name)
		})
	}
}

func TestOlder_AsCombinator(t *testing.T) {
	t.Parallel()

	oldest := callback.Combine(pet.New("Rex", 5), pet.New("Buddy", 3), pet.Older)
	assert.Equal(t, "Rex", oldest.Name)
	assert.Equal(t, 5, oldest.Age)
}
