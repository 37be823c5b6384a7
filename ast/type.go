package ast

// ValueType represents the variant of a Value
type ValueType uint8

// Value types
const (
	TypeInvalid ValueType = iota
	TypeString
	TypeSymbol
	TypeNumber
	TypeList
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return valueTypeName[TypeInvalid]
}

var valueTypeName = map[ValueType]string{
	TypeInvalid: "invalid",
	TypeString:  "string",
	TypeSymbol:  "symbol",
	TypeNumber:  "number",
	TypeList:    "list",
}
