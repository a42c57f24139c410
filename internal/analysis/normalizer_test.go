package analysis

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
)

const question = "Given an array of integers, return indices of the two numbers that add up to a target."

func TestParseAnalysisStructuredDialect(t *testing.T) {
	reply := `Here is the analysis you asked for:
{
  "difficulty": "MEDIUM",
  "topics": ["* Array", "Hash Table", "  ", 42],
  "companies": ["Google", "- Amazon"],
  "description": "Find **two indices** summing to target.",
  "examples": [
    {"input": "nums = [2,7], target = 9", "output": "[0,1]", "explanation": "2 + 7 = 9"},
    {"input": "nums = [3,3], target = 6"}
  ],
  "approaches": [
    {"name": "Brute force", "timeComplexity": "O(n^2)", "spaceComplexity": "O(1)", "explanation": "Try all pairs"}
  ],
  "simplifiedExplanation": "Look for a pair that sums to the target.",
  "solutions": ["Use a hash map", {"language": "cpp", "code": "return {};"}, null],
  "hint": "Store seen values in a map",
  "similarQuestions": [
    {"title": "3Sum", "difficulty": "Medium", "description": "Three numbers summing to zero"}
  ]
}
Hope that helps!`

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}

	if got.Difficulty != models.Medium {
		t.Fatalf("difficulty = %q, want medium", got.Difficulty)
	}
	if want := []string{"Array", "Hash Table"}; !reflect.DeepEqual(got.Topics, want) {
		t.Fatalf("topics = %v, want %v", got.Topics, want)
	}
	if want := []string{"Google", "Amazon"}; !reflect.DeepEqual(got.Companies, want) {
		t.Fatalf("companies = %v, want %v", got.Companies, want)
	}
	if len(got.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(got.Examples))
	}
	if got.Examples[1].Output != "" || got.Examples[1].Explanation != "" {
		t.Fatalf("missing example fields should default to empty, got %+v", got.Examples[1])
	}
	if len(got.Approaches) != 1 || got.Approaches[0].Name != "Brute force" {
		t.Fatalf("unexpected approaches: %+v", got.Approaches)
	}
	if got.Approaches[0].DetailedExplanation != "" || got.Approaches[0].Code != "" {
		t.Fatalf("absent approach sub-fields should be empty strings: %+v", got.Approaches[0])
	}

	if len(got.Solutions) != 3 {
		t.Fatalf("expected 3 solutions, got %d", len(got.Solutions))
	}
	if got.Solutions[0].Kind != models.RawText || got.Solutions[0].Text != "Use a hash map" {
		t.Fatalf("unexpected first solution: %+v", got.Solutions[0])
	}
	if got.Solutions[1].Kind != models.SerializedObject {
		t.Fatalf("object solution should be tagged SerializedObject: %+v", got.Solutions[1])
	}
	if !strings.Contains(got.Solutions[1].Text, `"language":"cpp"`) {
		t.Fatalf("object solution should be serialized to a string: %q", got.Solutions[1].Text)
	}
	if got.Solutions[2].Text != "" {
		t.Fatalf("null solution should become empty string: %+v", got.Solutions[2])
	}

	if len(got.SimilarQuestions) != 1 || got.SimilarQuestions[0].Difficulty != models.Medium {
		t.Fatalf("unexpected similar questions: %+v", got.SimilarQuestions)
	}
	if got.OriginalQuestion != question {
		t.Fatalf("original question not carried through")
	}
}

func TestParseAnalysisStructuredSparse(t *testing.T) {
	got, err := ParseAnalysis(`{"difficulty":"EASY","topics":["Arrays"]}`, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}

	if got.Difficulty != models.Easy {
		t.Fatalf("difficulty = %q, want easy", got.Difficulty)
	}
	if want := []string{"Arrays"}; !reflect.DeepEqual(got.Topics, want) {
		t.Fatalf("topics = %v, want %v", got.Topics, want)
	}

	// absent fields become zero values, never nil
	if got.Examples == nil || len(got.Examples) != 0 {
		t.Fatalf("examples = %#v, want empty slice", got.Examples)
	}
	if got.Approaches == nil || len(got.Approaches) != 0 {
		t.Fatalf("approaches = %#v, want empty slice", got.Approaches)
	}
	if got.Companies == nil || got.Solutions == nil || got.SimilarQuestions == nil {
		t.Fatalf("list fields must never be nil: %+v", got)
	}
	if got.Description != "" || got.Hint != "" || got.SimplifiedExplanation != "" {
		t.Fatalf("absent string fields must be empty: %+v", got)
	}
}

func TestParseAnalysisStructuredWinsOverHeaders(t *testing.T) {
	reply := "DIFFICULTY: Hard\n" + `{"difficulty":"easy"}`

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}
	if got.Difficulty != models.Easy {
		t.Fatalf("structured dialect should win, got difficulty %q", got.Difficulty)
	}
}

func TestParseAnalysisLegacyDialect(t *testing.T) {
	reply := "DIFFICULTY: Hard\nTOPICS: Array, Hash Table\nHINT: use a map"

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}

	if got.Difficulty != models.Hard {
		t.Fatalf("difficulty = %q, want hard", got.Difficulty)
	}
	if want := []string{"Array", "Hash Table"}; !reflect.DeepEqual(got.Topics, want) {
		t.Fatalf("topics = %v, want %v", got.Topics, want)
	}
	if got.Hint != "use a map" {
		t.Fatalf("hint = %q", got.Hint)
	}
	if len(got.Examples) != 0 {
		t.Fatalf("examples = %+v, want empty", got.Examples)
	}
	if len(got.Solutions) != 1 || got.Solutions[0].Text != SentinelNoDetailedSolutions {
		t.Fatalf("solutions = %+v, want the %q sentinel", got.Solutions, SentinelNoDetailedSolutions)
	}
	if got.Description != "" || got.SimplifiedExplanation != "" {
		t.Fatalf("absent sections should be empty strings: %+v", got)
	}
}

func TestParseAnalysisLegacyExamplesAndSolutions(t *testing.T) {
	reply := strings.Join([]string{
		"DIFFICULTY: Easy",
		"TOPICS:",
		"- Array",
		"- Two Pointers",
		"DESCRIPTION: Classic two sum variant.",
		"EXAMPLES:",
		"Example 1:",
		"Input: nums = [2,7,11,15], target = 9",
		"Output: [0,1]",
		"Explanation: Because nums[0] + nums[1] == 9",
		"Example 2:",
		"just prose with no labels",
		"SIMPLE_EXPLANATION: Find two numbers that add up.",
		"SOLUTIONS:",
		"Approach 1: Brute force over all pairs",
		"Approach 2: One-pass hash map",
		"HINT: think about complements",
	}, "\n")

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}

	if want := []string{"Array", "Two Pointers"}; !reflect.DeepEqual(got.Topics, want) {
		t.Fatalf("topics = %v, want %v", got.Topics, want)
	}
	if got.Description != "Classic two sum variant." {
		t.Fatalf("description = %q", got.Description)
	}
	if got.SimplifiedExplanation != "Find two numbers that add up." {
		t.Fatalf("simplified explanation = %q", got.SimplifiedExplanation)
	}

	if len(got.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d: %+v", len(got.Examples), got.Examples)
	}
	first := got.Examples[0]
	if first.Input != "nums = [2,7,11,15], target = 9" {
		t.Fatalf("input = %q", first.Input)
	}
	if first.Output != "[0,1]" {
		t.Fatalf("output = %q", first.Output)
	}
	if first.Explanation != "Because nums[0] + nums[1] == 9" {
		t.Fatalf("explanation = %q", first.Explanation)
	}
	second := got.Examples[1]
	if second.Input != SentinelNotSpecified || second.Output != SentinelNotSpecified {
		t.Fatalf("label-less block should yield %q fields: %+v", SentinelNotSpecified, second)
	}

	if len(got.Solutions) != 2 {
		t.Fatalf("expected 2 solutions, got %+v", got.Solutions)
	}
	if got.Solutions[0].Text != "Brute force over all pairs" || got.Solutions[1].Text != "One-pass hash map" {
		t.Fatalf("unexpected solutions: %+v", got.Solutions)
	}
}

func TestParseAnalysisLegacyCodeFenceSolutions(t *testing.T) {
	reply := strings.Join([]string{
		"DIFFICULTY: Medium",
		"SOLUTIONS:",
		"```python",
		"return sorted(nums)",
		"```",
	}, "\n")

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}
	if len(got.Solutions) != 1 {
		t.Fatalf("fenced section should be a single solution, got %+v", got.Solutions)
	}
	if !strings.Contains(got.Solutions[0].Text, "return sorted(nums)") {
		t.Fatalf("solution lost the code block: %q", got.Solutions[0].Text)
	}
}

func TestParseAnalysisLegacyEmptyListSentinel(t *testing.T) {
	reply := "DIFFICULTY: Easy\nTOPICS: , \nHINT: none"

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}
	if want := []string{SentinelNoneSpecified}; !reflect.DeepEqual(got.Topics, want) {
		t.Fatalf("topics = %v, want %v", got.Topics, want)
	}
}

func TestParseAnalysisLegacyBareSolutionMarkers(t *testing.T) {
	reply := "DIFFICULTY: Easy\nSOLUTIONS:\nApproach 1:"

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}
	if len(got.Solutions) != 1 || got.Solutions[0].Text != SentinelNoSolutions {
		t.Fatalf("solutions = %+v, want the %q sentinel", got.Solutions, SentinelNoSolutions)
	}
}

func TestParseAnalysisLowercaseHeaders(t *testing.T) {
	reply := "Difficulty: medium\nTopics: Graph"

	got, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("ParseAnalysis error: %v", err)
	}
	if got.Difficulty != models.Medium {
		t.Fatalf("difficulty = %q, want medium", got.Difficulty)
	}
	if want := []string{"Graph"}; !reflect.DeepEqual(got.Topics, want) {
		t.Fatalf("topics = %v, want %v", got.Topics, want)
	}
}

func TestParseAnalysisUnparseable(t *testing.T) {
	_, err := ParseAnalysis("I could not make sense of that question, sorry.", question)

	if err == nil {
		t.Fatalf("expected ParseError for unstructured reply")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if !strings.Contains(err.Error(), "unparseable") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseAnalysisIdempotent(t *testing.T) {
	reply := "DIFFICULTY: Hard\nTOPICS: Array, Hash Table\nHINT: use a map"

	first, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseAnalysis(reply, question)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parse is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want models.Difficulty
	}{
		{" Medium \n", models.Medium},
		{"EASY", models.Easy},
		{"hard", models.Hard},
		{"Insane", ""},
		{"", ""},
		{"medium level problem", ""},
	}

	for _, c := range cases {
		if got := normalizeDifficulty(c.in); got != c.want {
			t.Errorf("normalizeDifficulty(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
