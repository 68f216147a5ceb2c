// Package demo runs the fixed callback demonstration sequence.
//
// Each step writes exactly one line. The sequence covers method values,
// plain function values, composed procedures, anonymous functions, and
// generic combinators looked up from a named registry.
package demo

import (
	"io"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/yosang/delegates/callback"
	"github.com/yosang/delegates/pet"
)

// Binding keys used by Run.
const (
	KeyAddInt     callback.Key = "addInt"
	KeyAddDecimal callback.Key = "addDecimal"
	KeyConcat     callback.Key = "concat"
	KeyOlder      callback.Key = "older"
)

// Bindings returns a registry holding the named combinators used by Run.
func Bindings() (*callback.Registry, error) {
	reg := callback.NewRegistry()
	if err := callback.Bind(reg, KeyAddInt, callback.Combinator[int](callback.Add[int])); err != nil {
		return nil, err
	}
	if err := callback.Bind(reg, KeyAddDecimal, callback.Combinator[decimal.Decimal](callback.AddDecimal)); err != nil {
		return nil, err
	}
	if err := callback.Bind(reg, KeyConcat, callback.Combinator[string](callback.Add[string])); err != nil {
		return nil, err
	}
	if err := callback.Bind(reg, KeyOlder, callback.Combinator[pet.Pet](pet.Older)); err != nil {
		return nil, err
	}
	return reg, nil
}

// Run executes the demonstration, writing its output to w.
//
// It stops at the first failing callback and returns that error.
func Run(w io.Writer) error {
	printLine := callback.Printer(w)

	// Method values.
	ella := pet.New("Ella", 4).WithOutput(w)
	if err := ella.MakeSound("barks"); err != nil {
		return err
	}

	var sound callback.Procedure = ella.MakeSound
	if err := callback.Invoke(sound, "Woof woof"); err != nil {
		return err
	}

	// Plain function value, no Pet involved.
	var sleep callback.Procedure = pet.Sleep(w)
	if err := callback.Invoke(sleep, "the dog sleeps without making a sound"); err != nil {
		return err
	}

	both := callback.Compose(sound, sleep)
	if err := both("standard sound"); err != nil {
		return err
	}

	// Anonymous functions.
	var norwegian callback.StringFunc = func(message string) string {
		return message
	}
	var spanish callback.StringFunc = callback.Identity
	mandarin := func(message string) string { return message }

	for _, greeting := range []string{norwegian("Heisann!"), spanish("Hola!"), mandarin("Ni hao!")} {
		if err := printLine(greeting); err != nil {
			return err
		}
	}

	var isEven callback.Predicate[int] = callback.IsEven
	var sum callback.Action[int] = func(a, b int) error {
		return printLine(strconv.Itoa(a + b))
	}
	if err := printLine(strconv.FormatBool(isEven(5))); err != nil {
		return err
	}
	if err := printLine(strconv.FormatBool(isEven(4))); err != nil {
		return err
	}
	if err := sum(5, 10); err != nil {
		return err
	}

	// Generic combinators from named bindings.
	reg, err := Bindings()
	if err != nil {
		return err
	}
	addInt, err := callback.Lookup[callback.Combinator[int]](reg, KeyAddInt)
	if err != nil {
		return err
	}
	addDecimal, err := callback.Lookup[callback.Combinator[decimal.Decimal]](reg, KeyAddDecimal)
	if err != nil {
		return err
	}
	concat, err := callback.Lookup[callback.Combinator[string]](reg, KeyConcat)
	if err != nil {
		return err
	}
	older, err := callback.Lookup[callback.Combinator[pet.Pet]](reg, KeyOlder)
	if err != nil {
		return err
	}

	oldest := older(pet.New("Rex", 5), pet.New("Buddy", 3))

	lines := []string{
		strconv.Itoa(addInt(4, 4)),
		addDecimal(decimal.RequireFromString("2.3"), decimal.RequireFromString("3.2")).String(),
		concat("2", "2"),
		oldest.String() + " and is oldest.",
		strconv.Itoa(callback.Combine(50, 50, addInt)),
		callback.Combine("Hello ", "World", concat),
		strconv.Itoa(callback.Combine(100, 100, func(x, y int) int { return x + y })),
	}

	result := callback.Transform(5, 5, callback.SumAsText)
	lines = append(lines, result, reflect.TypeOf(result).String())

	for _, line := range lines {
		if err := printLine(line); err != nil {
			return err
		}
	}
	return nil
}
