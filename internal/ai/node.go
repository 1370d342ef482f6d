package ai

import "encoding/json"

// NodeKind tags the variant held by a Node
type NodeKind int

const (
	KindNull NodeKind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k NodeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// Node is a generic decoded JSON value. Accessors are fallible and report
// kind mismatches through the ValidationError taxonomy instead of panicking
// on a type assertion.
type Node struct {
	kind NodeKind
	b    bool
	num  json.Number
	str  string
	seq  []Node
	m    map[string]Node
}

// nodeFrom wraps a value decoded with json.Decoder.UseNumber
func nodeFrom(v interface{}) Node {
	switch val := v.(type) {
	case nil:
		return Node{kind: KindNull}
	case bool:
		return Node{kind: KindBool, b: val}
	case json.Number:
		return Node{kind: KindNumber, num: val}
	case string:
		return Node{kind: KindString, str: val}
	case []interface{}:
		seq := make([]Node, len(val))
		for i, item := range val {
			seq[i] = nodeFrom(item)
		}
		return Node{kind: KindSequence, seq: seq}
	case map[string]interface{}:
		m := make(map[string]Node, len(val))
		for k, item := range val {
			m[k] = nodeFrom(item)
		}
		return Node{kind: KindMapping, m: m}
	}
	return Node{kind: KindNull}
}

// Kind returns the variant tag
func (n Node) Kind() NodeKind { return n.kind }

// IsNull reports whether the node is JSON null
func (n Node) IsNull() bool { return n.kind == KindNull }

// AsString returns the string value or a ValidationError
func (n Node) AsString() (string, error) {
	if n.kind != KindString {
		return "", &ValidationError{Kind: InvalidType, Message: "expected string, got " + n.kind.String()}
	}
	return n.str, nil
}

// AsBool returns the boolean value or a ValidationError
func (n Node) AsBool() (bool, error) {
	if n.kind != KindBool {
		return false, &ValidationError{Kind: InvalidType, Message: "expected bool, got " + n.kind.String()}
	}
	return n.b, nil
}

// AsInt returns the value as an integer. Non-numbers and numbers with a
// fractional part are ValidationErrors.
func (n Node) AsInt() (int, error) {
	if n.kind != KindNumber {
		return 0, &ValidationError{Kind: InvalidType, Message: "expected number, got " + n.kind.String()}
	}
	i, err := n.num.Int64()
	if err != nil {
		return 0, &ValidationError{Kind: InvalidType, Message: "expected integer, got " + n.num.String()}
	}
	return int(i), nil
}

// AsSequence returns the sequence elements or a ValidationError
func (n Node) AsSequence() ([]Node, error) {
	if n.kind != KindSequence {
		return nil, &ValidationError{Kind: InvalidType, Message: "expected sequence, got " + n.kind.String()}
	}
	return n.seq, nil
}

// AsMapping returns the mapping or a ValidationError
func (n Node) AsMapping() (map[string]Node, error) {
	if n.kind != KindMapping {
		return nil, &ValidationError{Kind: InvalidType, Message: "expected mapping, got " + n.kind.String()}
	}
	return n.m, nil
}

// Get looks up a mapping key. A JSON null value counts as absent, which
// lets models emit "field": null for optional fields.
func (n Node) Get(key string) (Node, bool) {
	if n.kind != KindMapping {
		return Node{}, false
	}
	child, ok := n.m[key]
	if !ok || child.kind == KindNull {
		return Node{}, false
	}
	return child, true
}

// fieldString reads a required string field from a mapping node
func fieldString(n Node, field string) (string, error) {
	child, ok := n.Get(field)
	if !ok {
		return "", missingField(field)
	}
	s, err := child.AsString()
	if err != nil {
		return "", invalidType(field, "string")
	}
	return s, nil
}

// optionalString reads an optional string field; absent yields ""
func optionalString(n Node, field string) (string, error) {
	child, ok := n.Get(field)
	if !ok {
		return "", nil
	}
	s, err := child.AsString()
	if err != nil {
		return "", invalidType(field, "string")
	}
	return s, nil
}

// optionalInt reads an optional integer field; ok reports presence
func optionalInt(n Node, field string) (int, bool, error) {
	child, present := n.Get(field)
	if !present {
		return 0, false, nil
	}
	i, err := child.AsInt()
	if err != nil {
		return 0, false, invalidType(field, "integer")
	}
	return i, true, nil
}

// optionalStrings reads an optional sequence-of-strings field
func optionalStrings(n Node, field string) ([]string, error) {
	child, present := n.Get(field)
	if !present {
		return nil, nil
	}
	seq, err := child.AsSequence()
	if err != nil {
		return nil, invalidType(field, "sequence of strings")
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		s, err := item.AsString()
		if err != nil {
			return nil, invalidType(field, "sequence of strings")
		}
		out = append(out, s)
	}
	return out, nil
}
