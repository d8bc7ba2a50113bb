package nodetypes

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// A minimal node-types.json, modeled on the shape tree-sitter-json ships:
// "pair" has one required field (key) and one optional field (value isn't
// really optional in JSON, but we mark it so to exercise the predicate),
// "object" has a required, repeatable anonymous children slot, "array" has
// an optional one.
const jsonGrammar = `[
  {
    "type": "object", "named": true,
    "children": {"multiple": true, "required": true, "types": [{"type": "pair", "named": true}]}
  },
  {
    "type": "array", "named": true,
    "children": {"multiple": true, "required": false, "types": [{"type": "_value", "named": true}]}
  },
  {
    "type": "pair", "named": true,
    "fields": {
      "key":   {"multiple": false, "required": true,  "types": [{"type": "string", "named": true}]},
      "value": {"multiple": false, "required": false, "types": [{"type": "_value", "named": true}]}
    }
  },
  {"type": "string", "named": true},
  {"type": "number", "named": true}
]`

func TestNewValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treesplice.nodetypes")
	defer teardown()
	reg, err := New([]byte(jsonGrammar))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg == nil {
		t.Fatal("expected a non-nil registry")
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New([]byte(`not json`))
	if err == nil {
		t.Fatal("expected an error for malformed grammar description")
	}
}

func TestOptionalField(t *testing.T) {
	reg, err := New([]byte(jsonGrammar))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Optional("pair", "key") {
		t.Error("pair.key is required, expected Optional == false")
	}
	if !reg.Optional("pair", "value") {
		t.Error("pair.value is marked required:false, expected Optional == true")
	}
}

func TestOptionalChildren(t *testing.T) {
	reg, err := New([]byte(jsonGrammar))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Optional("object", "") {
		t.Error("object's children slot is required, expected Optional == false")
	}
	if !reg.Optional("array", "") {
		t.Error("array's children slot is required:false, expected Optional == true")
	}
}

func TestOptionalUnknownKind(t *testing.T) {
	reg, err := New([]byte(jsonGrammar))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Optional("frobnicator", "whatever") {
		t.Error("unknown parent kind must conservatively answer false")
	}
	if reg.Optional("pair", "nonexistent-field") {
		t.Error("unknown field on a known kind must conservatively answer false")
	}
}
