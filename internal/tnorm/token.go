package tnorm

import "strings"

// ClassName identifies one of the semantic classes a tagger can emit.
type ClassName string

const (
	ClassCardinal      ClassName = "cardinal"
	ClassDate          ClassName = "date"
	ClassTime          ClassName = "time"
	ClassTelephone     ClassName = "telephone"
	ClassMoney         ClassName = "money"
	ClassDecimal       ClassName = "decimal"
	ClassFraction      ClassName = "fraction"
	ClassOrdinal       ClassName = "ordinal"
	ClassMeasure       ClassName = "measure"
	ClassAddressNumber ClassName = "address_number"
	ClassCreditCard    ClassName = "credit_card"
	ClassSerialNumber  ClassName = "serial_number"
	ClassWhitelist     ClassName = "whitelist"
	ClassPunctuation   ClassName = "punctuation"
	ClassWord          ClassName = "word"
)

// Field is a single ordered field of a tagged token, e.g. {Name: "year",
// Value: "2024"}. Field order is part of the bit-exact tagged form
// (spec §3) and must be preserved by each class's tagger.
type Field struct {
	Name  string
	Value string
}

// TagClass renders one class body as `CLASS { field: "value" ... }`,
// matching the fixed field order the caller supplies.
func TagClass(class ClassName, fields ...Field) string {
	var b strings.Builder
	b.WriteString(string(class))
	b.WriteString(" { ")
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.Name)
		b.WriteString(": \"")
		b.WriteString(f.Value)
		b.WriteString("\"")
	}
	b.WriteString(" }")
	return b.String()
}

// WrapToken wraps a tagged class body with the `tokens { ... }` envelope
// required by the bit-exact intermediate form (spec §3, §4.10).
func WrapToken(classBody string) string {
	return "tokens { " + classBody + " }"
}

// TagToken is the common one-call form: tag a class and wrap it in a
// token envelope in one step.
func TagToken(class ClassName, fields ...Field) string {
	return WrapToken(TagClass(class, fields...))
}
