// Package compat decides structural compatibility between schemas.
//
// Compatibility is directional: Check(source, target) asks whether values
// described by the source schema satisfy the target schema's constraints,
// not the other way around. The check is purely structural and never
// inspects values; custom types compare by name alone.
package compat

import (
	"fmt"
	"sort"

	"github.com/zero-day-ai/typekit/schema"
)

// Result is the outcome of a compatibility check. Reason is set exactly
// when Compatible is false and names the first mismatch found.
type Result struct {
	Compatible bool
	Reason     string
}

func compatible() Result {
	return Result{Compatible: true}
}

func incompatible(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Compatible reports whether source is structurally compatible with target.
func Compatible(source, target schema.Schema) bool {
	return Check(source, target).Compatible
}

// Check is Compatible with a reason on failure. Schemas of different kinds
// are never compatible; same-kind schemas recurse structurally. The check
// stops at the first mismatch.
func Check(source, target schema.Schema) Result {
	if source == nil || target == nil {
		panic("compat: nil schema")
	}
	if source.Kind() != target.Kind() {
		return incompatible("kind mismatch: %s vs %s", source.Kind(), target.Kind())
	}

	switch src := source.(type) {
	case schema.Primitive:
		return checkPrimitive(src, target.(schema.Primitive))
	case schema.Array:
		return checkArray(src, target.(schema.Array))
	case schema.Object:
		return checkObject(src, target.(schema.Object))
	case schema.Custom:
		return checkCustom(src, target.(schema.Custom))
	default:
		panic(fmt.Sprintf("compat: unknown schema variant %T", source))
	}
}

func checkPrimitive(source, target schema.Primitive) Result {
	if source.Type != target.Type {
		return incompatible("primitive type mismatch: %s vs %s", source.Type, target.Type)
	}
	return compatible()
}

func checkArray(source, target schema.Array) Result {
	// Absent item shapes pair only with each other, as do empty tuples.
	if source.Items == nil || target.Items == nil {
		if source.Items == nil && target.Items == nil {
			return compatible()
		}
		return incompatible("item shape mismatch: only one side declares items")
	}
	if len(source.Items) == 0 || len(target.Items) == 0 {
		if len(source.Items) == 0 && len(target.Items) == 0 {
			return compatible()
		}
		return incompatible("empty tuple is only compatible with an empty tuple")
	}

	srcHom := len(source.Items) == 1
	tgtHom := len(target.Items) == 1
	switch {
	case srcHom && tgtHom:
		if r := Check(source.Items[0], target.Items[0]); !r.Compatible {
			return incompatible("items: %s", r.Reason)
		}
		return compatible()

	case srcHom != tgtHom:
		if srcHom {
			return incompatible("homogeneous array is not compatible with a tuple")
		}
		return incompatible("tuple is not compatible with a homogeneous array")

	default:
		if len(source.Items) != len(target.Items) {
			return incompatible("tuple length mismatch: %d vs %d", len(source.Items), len(target.Items))
		}
		for i := range source.Items {
			if r := Check(source.Items[i], target.Items[i]); !r.Compatible {
				return incompatible("item %d: %s", i, r.Reason)
			}
		}
		return compatible()
	}
}

func checkObject(source, target schema.Object) Result {
	// Width subtyping on requiredness: the source only needs to declare the
	// property, whether or not it requires it itself.
	for _, name := range target.Required {
		if _, ok := source.Properties[name]; !ok {
			return incompatible("required property '%s' is missing from source", name)
		}
	}

	// Properties declared on both sides must agree; one-sided declarations
	// are ignored. Names are walked in sorted order so the reported
	// mismatch is deterministic.
	names := make([]string, 0, len(target.Properties))
	for name := range target.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		srcProp, ok := source.Properties[name]
		if !ok {
			continue
		}
		if r := Check(srcProp, target.Properties[name]); !r.Compatible {
			return incompatible("property '%s': %s", name, r.Reason)
		}
	}

	return compatible()
}

func checkCustom(source, target schema.Custom) Result {
	if source.TypeName != target.TypeName {
		return incompatible("custom type mismatch: %s vs %s", source.TypeName, target.TypeName)
	}
	return compatible()
}
