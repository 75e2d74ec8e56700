package ast

func (p Primitive) String() string {
	switch p {
	case I8:
		return "i8"
	case U8:
		return "u8"
	case I32:
		return "i32"
	case Void:
		return "void"
	case Unreachable:
		return "unreachable"
	}
	panic("unhandled")
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	panic("unhandled")
}

// TypeString renders a TypeName the way it is spelled in source.
func TypeString(t TypeName) string {
	switch v := t.(type) {
	case Primitive:
		return v.String()
	case Pointer:
		return "*" + TypeString(v.To)
	}
	panic("unhandled")
}
