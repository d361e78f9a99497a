package field

// Kind enumerates the terminal scalar kinds a field can hold.
type Kind uint8

// Scalar kinds, in the order they appear on the wire.
const (
	KindNull Kind = iota
	KindNumber
	KindBigInt
	KindBool
	KindString
	KindBytes
	KindAny
	endKinds
)

var kindNames = [...]string{
	KindNull:   "null",
	KindNumber: "number",
	KindBigInt: "bigint",
	KindBool:   "boolean",
	KindString: "string",
	KindBytes:  "bytes",
	KindAny:    "any",
}

// String returns the diagram label of the kind.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return "invalid"
}

// Valid reports if the kind is one of the declared scalar kinds.
func (k Kind) Valid() bool { return k < endKinds }

// A Type describes the shape of a single table field. It is a closed set:
// the only implementations are the types declared in this package, and
// consumers dispatch on them with an exhaustive type switch.
type Type interface {
	// String returns the short kind name used in labels and error messages.
	String() string

	fieldType()
}

type (
	// Primitive is a terminal scalar field.
	Primitive struct {
		Kind Kind
	}

	// Literal is a terminal field fixed to a single scalar value.
	Literal struct {
		Value any
	}

	// Ref is a terminal field holding the identifier of a row in another
	// table. It is the only type that produces a diagram edge.
	Ref struct {
		Table string
	}

	// Object is a group field with named members in declaration order.
	Object struct {
		Fields []Member
	}

	// Union is a group field whose value matches one of its members.
	Union struct {
		Members []Type
	}

	// Array is a group field holding a sequence of one element type.
	Array struct {
		Elem Type
	}

	// Record is a mapping with dynamic keys. It can be declared, but the
	// compiler rejects it: without static keys there is nothing to path
	// through.
	Record struct {
		Key, Value Type
	}
)

// Member is a single named member of an object.
type Member struct {
	Name     string
	Type     Type
	Optional bool
}

func (*Primitive) fieldType() {}
func (*Literal) fieldType()   {}
func (*Ref) fieldType()       {}
func (*Object) fieldType()    {}
func (*Union) fieldType()     {}
func (*Array) fieldType()     {}
func (*Record) fieldType()    {}

// String returns the kind label, e.g. "string" or "bigint".
func (p *Primitive) String() string { return p.Kind.String() }

func (*Literal) String() string { return "literal" }
func (*Ref) String() string     { return "id" }
func (*Object) String() string  { return "object" }
func (*Union) String() string   { return "union" }
func (*Array) String() string   { return "array" }
func (*Record) String() string  { return "record" }

// Null returns a null field.
func Null() *Primitive { return &Primitive{Kind: KindNull} }

// Number returns a floating-point number field.
func Number() *Primitive { return &Primitive{Kind: KindNumber} }

// BigInt returns a 64-bit integer field.
func BigInt() *Primitive { return &Primitive{Kind: KindBigInt} }

// Bool returns a boolean field.
func Bool() *Primitive { return &Primitive{Kind: KindBool} }

// String returns a string field.
func String() *Primitive { return &Primitive{Kind: KindString} }

// Bytes returns a binary field.
func Bytes() *Primitive { return &Primitive{Kind: KindBytes} }

// Any returns an untyped field.
func Any() *Primitive { return &Primitive{Kind: KindAny} }

// Value returns a literal field fixed to v.
func Value(v any) *Literal { return &Literal{Value: v} }

// ID returns a reference field pointing at the given table.
func ID(table string) *Ref { return &Ref{Table: table} }

// ObjectOf returns an object field with the given members, kept in
// declaration order.
func ObjectOf(fields ...Member) *Object { return &Object{Fields: fields} }

// UnionOf returns a union field over the given member types.
func UnionOf(members ...Type) *Union { return &Union{Members: members} }

// ArrayOf returns an array field over the given element type.
func ArrayOf(elem Type) *Array { return &Array{Elem: elem} }

// RecordOf returns a dynamic-key record field.
func RecordOf(key, value Type) *Record { return &Record{Key: key, Value: value} }

// F returns a required object member.
func F(name string, t Type) Member {
	return Member{Name: name, Type: t}
}

// Opt returns an optional object member. Optional members carry a trailing
// "?" on their name in every path and label derived from them.
func Opt(name string, t Type) Member {
	return Member{Name: name, Type: t, Optional: true}
}
