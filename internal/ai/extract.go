package ai

import (
	"encoding/json"
	"strings"
)

// objectSpan slices the candidate structured object out of raw model text:
// everything from the first '{' through the last '}', inclusive. This is a
// best-effort heuristic, not a parser. It assumes the model emits exactly
// one top-level object; a '}' inside a string value after the real closing
// brace would confuse the last-index search. Known limitation.
func objectSpan(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", &ExtractionError{Reason: "no structured object found"}
	}
	return raw[start : end+1], nil
}

// ExtractObject locates the structured object embedded in raw model text
// and decodes it into a generic tree. Numbers are kept as json.Number so
// integer fields can be range-checked without float rounding.
func ExtractObject(raw string) (Node, error) {
	span, err := objectSpan(raw)
	if err != nil {
		return Node{}, err
	}

	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return Node{}, &ExtractionError{Reason: "malformed structured object", Err: err}
	}

	return nodeFrom(v), nil
}
