package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSolutionUnmarshalMixedList(t *testing.T) {
	raw := `["def twoSum(nums, target): ...", {"language": "go", "code": "func twoSum() {}"}, null]`

	var solutions []Solution
	if err := json.Unmarshal([]byte(raw), &solutions); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(solutions) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(solutions))
	}

	if solutions[0].Kind != RawText || solutions[0].Text != "def twoSum(nums, target): ..." {
		t.Fatalf("entry 0: %+v", solutions[0])
	}
	if solutions[1].Kind != SerializedObject {
		t.Fatalf("entry 1 kind: %+v", solutions[1])
	}
	if !strings.Contains(solutions[1].Text, `"language":"go"`) {
		t.Fatalf("entry 1 not re-serialized compactly: %q", solutions[1].Text)
	}
	if solutions[2] != (Solution{}) {
		t.Fatalf("entry 2 should be zero: %+v", solutions[2])
	}
}

func TestSolutionMarshalEmitsString(t *testing.T) {
	s := Solution{Text: `{"code":"x"}`, Kind: SerializedObject}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded string
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not a JSON string: %s", out)
	}
	if decoded != `{"code":"x"}` {
		t.Fatalf("got %q", decoded)
	}
}

func TestSolutionJSONRoundTrip(t *testing.T) {
	in := NewSolution("use two pointers")

	out, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Solution
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back != in {
		t.Fatalf("round trip changed value: %+v", back)
	}
}
