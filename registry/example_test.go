package registry_test

import (
	"fmt"
	"log"

	"github.com/zero-day-ai/typekit/compat"
	"github.com/zero-day-ai/typekit/registry"
	"github.com/zero-day-ai/typekit/schema"
)

// ExampleRegistry demonstrates registering types and resolving them for
// compatibility checks.
func ExampleRegistry() {
	reg := registry.New()

	err := reg.Register(registry.TypeDefinition{
		Name:        "username",
		Description: "Login name",
		Schema:      schema.String(),
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(reg.Names())

	// A Registry satisfies compat.Resolver, so named checks work directly.
	report := compat.CheckTypes(reg, "username", "string")
	fmt.Println(report.Compatible)

	report = compat.CheckTypes(reg, "username", "number")
	fmt.Println(report.Reason)

	// Output:
	// [boolean number string username]
	// true
	// Type mismatch: username is not compatible with number
}
