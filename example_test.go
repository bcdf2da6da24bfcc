package numinput_test

import (
	"fmt"

	"github.com/0xCarti/numinput"
)

func ExampleEvalString() {
	v, err := numinput.EvalString("-(2+3)*4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: -20
}

func ExampleEvalString_error() {
	_, err := numinput.EvalString("10/(4-4)")
	fmt.Println(err)
	// Output: 3: division by zero
}

func ExampleParseValue() {
	v, _ := numinput.ParseValue("=3*(1+2)")
	fmt.Println(v)
	v, _ = numinput.ParseValue("1,024")
	fmt.Println(v)
	// Output:
	// 9
	// 1024
}

func ExampleResolver() {
	r := numinput.NewResolver()
	f := numinput.NewTextField("0.01")
	f.Type("=12.5*3/2")
	if _, err := r.Resolve(f); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.Value())
	// Output: 18.75
}
