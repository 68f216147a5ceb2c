// Package pet defines the small named-and-aged record the callback demo
// operates on, together with the procedures and combinators bound to it.
package pet

import (
	"io"
	"os"
	"strconv"
)

// Pet is a named record with an age. Values are not mutated after construction.
type Pet struct {
	Name string
	Age  int

	// out receives MakeSound output. Nil means standard output.
	out io.Writer
}

// New returns a Pet writing its sounds to standard output.
func New(name string, age int) Pet {
	return Pet{Name: name, Age: age}
}

// WithOutput returns a copy of p writing its sounds to w.
func (p Pet) WithOutput(w io.Writer) Pet {
	p.out = w
	return p
}

// MakeSound writes sound as one line to the pet's output.
//
// Its method value (p.MakeSound) has the callback.Procedure shape.
func (p Pet) MakeSound(sound string) error {
	w := p.out
	if w == nil {
		w = os.Stdout
	}
	return writeLine(w, sound)
}

// String returns a description such as "Rex is 5 years old".
func (p Pet) String() string {
	return p.Name + " is " + strconv.Itoa(p.Age) + " years old"
}

// Sleep returns a procedure that writes text as one line to w.
// It does not depend on any particular Pet.
func Sleep(w io.Writer) func(string) error {
	return func(sound string) error {
		return writeLine(w, sound)
	}
}

// Older returns the pet with the strictly greater age.
// When ages are equal the first argument wins.
func Older(a, b Pet) Pet {
	if b.Age > a.Age {
		return b
	}
	return a
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
