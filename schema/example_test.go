package schema_test

import (
	"fmt"

	"github.com/zero-day-ai/typekit/schema"
)

func ExampleObjectOf() {
	user := schema.ObjectOf(map[string]schema.Schema{
		"name": schema.String(),
		"age":  schema.Number(),
	}, "name")

	fmt.Println(user.Kind())
	fmt.Println(len(user.Properties), user.Required)
	// Output:
	// object
	// 2 [name]
}

func ExampleMarshal() {
	pair := schema.ArrayOf(schema.String(), schema.Number())

	data, err := schema.Marshal(pair)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// {"kind":"array","items":[{"kind":"primitive","type":"string"},{"kind":"primitive","type":"number"}]}
}

func ExampleFromType() {
	type Point struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}

	s, err := schema.FromType(Point{})
	if err != nil {
		panic(err)
	}

	data, _ := schema.Marshal(s)
	fmt.Println(string(data))
	// Output:
	// {"kind":"object","properties":{"x":{"kind":"primitive","type":"number"},"y":{"kind":"primitive","type":"number"}},"required":["x","y"]}
}
