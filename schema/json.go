package schema

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// Doc is the document form of a schema, with field tags for JSON and YAML.
// It is the shape schemas take in definition files and on the wire.
//
// Kind may be omitted in hand-written documents when it can be inferred:
// a node with type is a primitive, typeName a custom type, items an array,
// and properties or required an object.
//
// Items is a pointer so the empty tuple ("items": []) stays distinct from
// a node with no items at all.
type Doc struct {
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Primitive fields.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Array fields.
	Items    *[]*Doc `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	// Object fields.
	Properties           map[string]*Doc `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string        `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties bool            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Custom fields. Expr holds the predicate's source expression when the
	// predicate provides one; predicates without a source do not survive
	// the document form.
	Expr     string `json:"expr,omitempty" yaml:"expr,omitempty"`
	TypeName string `json:"typeName,omitempty" yaml:"typeName,omitempty"`
	Inner    *Doc   `json:"inner,omitempty" yaml:"inner,omitempty"`
}

// DecodeOption configures Doc decoding.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	compile func(src string) (Predicate, error)
}

// WithPredicateCompiler supplies the compiler used to turn an expr field
// back into a predicate. Decoding a document with an expr and no compiler
// fails; the expr package provides the usual compiler.
func WithPredicateCompiler(compile func(src string) (Predicate, error)) DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.compile = compile
	}
}

// NewDoc converts a schema to its document form. A nil schema converts to a
// nil document. Predicates that do not implement SourcePredicate are
// dropped.
func NewDoc(s Schema) *Doc {
	if s == nil {
		return nil
	}

	switch s := s.(type) {
	case Primitive:
		return &Doc{
			Kind: string(KindPrimitive),
			Type: string(s.Type),
		}

	case Array:
		d := &Doc{
			Kind:     string(KindArray),
			MinItems: s.MinItems,
			MaxItems: s.MaxItems,
		}
		if s.Items != nil {
			items := make([]*Doc, len(s.Items))
			for i, item := range s.Items {
				items[i] = NewDoc(item)
			}
			d.Items = &items
		}
		return d

	case Object:
		d := &Doc{
			Kind:                 string(KindObject),
			Required:             s.Required,
			AdditionalProperties: s.AdditionalProperties,
		}
		if s.Properties != nil {
			d.Properties = make(map[string]*Doc, len(s.Properties))
			for name, prop := range s.Properties {
				d.Properties[name] = NewDoc(prop)
			}
		}
		return d

	case Custom:
		d := &Doc{
			Kind:     string(KindCustom),
			TypeName: s.TypeName,
			Inner:    NewDoc(s.Inner),
		}
		if sp, ok := s.Validator.(SourcePredicate); ok {
			d.Expr = sp.Source()
		}
		return d

	default:
		// Unreachable: the Schema interface is sealed.
		panic(fmt.Sprintf("schema: unknown variant %T", s))
	}
}

// Schema converts the document back to a schema.
func (d *Doc) Schema(opts ...DecodeOption) (Schema, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return d.decode(&cfg)
}

func (d *Doc) decode(cfg *decodeConfig) (Schema, error) {
	if d == nil {
		return nil, errors.New("nil schema document")
	}

	switch Kind(d.kind()) {
	case KindPrimitive:
		switch pt := PrimitiveType(d.Type); pt {
		case TypeString, TypeNumber, TypeBoolean:
			return Primitive{Type: pt}, nil
		default:
			return nil, fmt.Errorf("unknown primitive type %q", d.Type)
		}

	case KindArray:
		a := Array{
			MinItems: d.MinItems,
			MaxItems: d.MaxItems,
		}
		if d.Items != nil {
			a.Items = make([]Schema, len(*d.Items))
			for i, item := range *d.Items {
				s, err := item.decode(cfg)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
				a.Items[i] = s
			}
		}
		return a, nil

	case KindObject:
		o := Object{
			Required:             d.Required,
			AdditionalProperties: d.AdditionalProperties,
		}
		if d.Properties != nil {
			o.Properties = make(map[string]Schema, len(d.Properties))
			for name, prop := range d.Properties {
				s, err := prop.decode(cfg)
				if err != nil {
					return nil, fmt.Errorf("property %s: %w", name, err)
				}
				o.Properties[name] = s
			}
		}
		return o, nil

	case KindCustom:
		if d.TypeName == "" {
			return nil, errors.New("custom schema missing typeName")
		}
		c := Custom{TypeName: d.TypeName}
		if d.Expr != "" {
			if cfg.compile == nil {
				return nil, fmt.Errorf("custom type %s: expression predicate requires a compiler", d.TypeName)
			}
			p, err := cfg.compile(d.Expr)
			if err != nil {
				return nil, fmt.Errorf("custom type %s: compile expression: %w", d.TypeName, err)
			}
			c.Validator = p
		}
		if d.Inner != nil {
			inner, err := d.Inner.decode(cfg)
			if err != nil {
				return nil, fmt.Errorf("custom type %s: inner: %w", d.TypeName, err)
			}
			c.Inner = inner
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unknown schema kind %q", d.Kind)
	}
}

// kind returns the declared kind, inferring one from the populated fields
// when the document omits it.
func (d *Doc) kind() string {
	if d.Kind != "" {
		return d.Kind
	}
	switch {
	case d.Type != "":
		return string(KindPrimitive)
	case d.TypeName != "" || d.Expr != "":
		return string(KindCustom)
	case d.Items != nil || d.MinItems != nil || d.MaxItems != nil:
		return string(KindArray)
	case d.Properties != nil || d.Required != nil:
		return string(KindObject)
	}
	return ""
}

// Marshal encodes a schema as JSON in its document form.
func Marshal(s Schema) ([]byte, error) {
	return json.Marshal(NewDoc(s))
}

// Unmarshal decodes a JSON document into a schema.
func Unmarshal(data []byte, opts ...DecodeOption) (Schema, error) {
	var d Doc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode schema document: %w", err)
	}
	return d.Schema(opts...)
}
