// Package expr compiles CEL expressions into schema predicates.
//
// Expressions see the value under validation as a single dynamically typed
// variable named "value" and must evaluate to a boolean:
//
//	port, err := expr.Compile("value >= 1.0 && value <= 65535.0")
//	if err != nil {
//		return err
//	}
//	s := schema.CustomType("port").WithValidator(port).WithInner(schema.Number())
//
// Compiled predicates implement schema.ContextPredicate, so validation with
// a context can interrupt long evaluations, and schema.SourcePredicate, so
// the expression survives the schema document form and definition files can
// carry predicates as text.
//
// Evaluation never fails a call: an expression that errors at runtime, or
// yields a non-boolean, simply rejects the value. Numeric comparisons work
// across integer and floating-point values, and the CEL strings extension
// (lowerAscii, split, trim and friends) is available.
package expr

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/zero-day-ai/typekit/schema"
)

// valueVar is the name expressions use for the value under validation.
const valueVar = "value"

var celEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(valueVar, cel.DynType),
		cel.CrossTypeNumericComparisons(true),
		ext.Strings(),
	)
})

// Predicate is a compiled CEL expression usable as a schema validator.
type Predicate struct {
	src string
	prg cel.Program
}

// Compile parses and type-checks a CEL expression. Expressions that cannot
// evaluate to a boolean are rejected at compile time when the checker can
// prove it; dynamically typed results are checked at evaluation time
// instead.
func Compile(src string) (*Predicate, error) {
	if src == "" {
		return nil, errors.New("empty expression")
	}

	env, err := celEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression environment: %w", err)
	}

	ast, iss := env.Compile(src)
	if iss.Err() != nil {
		return nil, fmt.Errorf("failed to compile expression: %w", iss.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression must evaluate to a boolean, got %s", out)
	}

	prg, err := env.Program(ast, cel.InterruptCheckFrequency(100))
	if err != nil {
		return nil, fmt.Errorf("failed to plan expression: %w", err)
	}

	return &Predicate{src: src, prg: prg}, nil
}

// MustCompile is Compile that panics on failure, for expressions known at
// program start.
func MustCompile(src string) *Predicate {
	p, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("expr: %v", err))
	}
	return p
}

// Accept evaluates the expression against v. Evaluation errors and
// non-boolean results reject.
func (p *Predicate) Accept(v any) bool {
	out, _, err := p.prg.Eval(map[string]any{valueVar: v})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// AcceptContext is Accept with interruption: a canceled context rejects.
func (p *Predicate) AcceptContext(ctx context.Context, v any) bool {
	if ctx.Err() != nil {
		return false
	}
	out, _, err := p.prg.ContextEval(ctx, map[string]any{valueVar: v})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// Source returns the expression text, satisfying schema.SourcePredicate.
func (p *Predicate) Source() string {
	return p.src
}

// Compiler adapts Compile to the signature schema.WithPredicateCompiler
// expects, for decoding schema documents that carry expressions.
func Compiler() func(src string) (schema.Predicate, error) {
	return func(src string) (schema.Predicate, error) {
		return Compile(src)
	}
}
