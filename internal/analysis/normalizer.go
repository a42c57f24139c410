package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
)

// Sentinel values the UI pattern-matches on to render empty states. These are
// part of the observable contract and must not change.
const (
	SentinelNoneSpecified       = "None specified"
	SentinelNotSpecified        = "Not specified"
	SentinelNoDetailedSolutions = "No detailed solutions available"
	SentinelNoSolutions         = "No solutions available"
)

// Analysis is the normalizer output: a Question payload minus the fields the
// orchestrator assigns (sequence number, creation time, storage id).
type Analysis struct {
	OriginalQuestion      string
	Difficulty            models.Difficulty
	Topics                []string
	Companies             []string
	Description           string
	SimplifiedExplanation string
	Examples              []models.Example
	Approaches            []models.Approach
	Solutions             []models.Solution
	Hint                  string
	SimilarQuestions      []models.SimilarQuestion
}

// ParseError means the reply carried no machine-readable structure at all:
// no embedded JSON object and none of the expected section headers.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "unparseable analysis reply: " + e.Reason
}

// the eight headers of the legacy section dialect
var knownSections = map[string]bool{
	"DIFFICULTY":         true,
	"TOPICS":             true,
	"COMPANIES":          true,
	"DESCRIPTION":        true,
	"EXAMPLES":           true,
	"SIMPLE_EXPLANATION": true,
	"SOLUTIONS":          true,
	"HINT":               true,
}

// ParseAnalysis converts the model's raw completion into a typed Question
// payload. Two reply dialects are supported: a single embedded JSON object
// (located by the first '{' through the last '}'), and the legacy plain-text
// dialect with uppercase section headers. The structured dialect always wins
// when both are present. Missing optional data never fails; only a reply with
// no recognizable structure returns a ParseError.
//
// The function is pure: the same reply string always yields the same output.
func ParseAnalysis(reply, originalQuestion string) (*Analysis, error) {
	if raw, ok := extractJSONObject(reply); ok {
		return parseStructured(raw, originalQuestion), nil
	}

	sections := splitSections(reply)
	if !hasKnownSection(sections) {
		return nil, &ParseError{Reason: "no JSON object and no recognized section headers"}
	}
	return parseLegacy(sections, originalQuestion), nil
}

// extractJSONObject scans for the first '{' through the last '}' and attempts
// to parse that span as a JSON object. Legacy replies with code blocks contain
// braces too, but those spans never parse, so they fall through cleanly.
func extractJSONObject(reply string) (map[string]any, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err != nil {
		return nil, false
	}
	return raw, true
}

// structured dialect

func parseStructured(raw map[string]any, originalQuestion string) *Analysis {
	return &Analysis{
		OriginalQuestion:      originalQuestion,
		Difficulty:            normalizeDifficulty(coerceString(raw["difficulty"])),
		Topics:                coerceStringList(raw["topics"]),
		Companies:             coerceStringList(raw["companies"]),
		Description:           coerceString(raw["description"]),
		SimplifiedExplanation: coerceString(raw["simplifiedExplanation"]),
		Examples:              coerceExamples(raw["examples"]),
		Approaches:            coerceApproaches(raw["approaches"]),
		Solutions:             coerceSolutions(raw["solutions"]),
		Hint:                  coerceString(raw["hint"]),
		SimilarQuestions:      coerceSimilarQuestions(raw["similarQuestions"]),
	}
}

// normalizeDifficulty lower-cases and trims the value and accepts it only if
// it is one of the three known levels; anything else becomes unset rather
// than guessed.
func normalizeDifficulty(value string) models.Difficulty {
	switch d := models.Difficulty(strings.ToLower(strings.TrimSpace(value))); d {
	case models.Easy, models.Medium, models.Hard:
		return d
	default:
		return ""
	}
}

func coerceString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// coerceStringList keeps string entries, trims bullet markers, and drops
// anything non-string or empty. Always returns a non-nil slice.
func coerceStringList(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if trimmed := trimBullet(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func coerceExamples(v any) []models.Example {
	out := []models.Example{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.Example{
			Input:       coerceString(entry["input"]),
			Output:      coerceString(entry["output"]),
			Explanation: coerceString(entry["explanation"]),
		})
	}
	return out
}

func coerceApproaches(v any) []models.Approach {
	out := []models.Approach{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.Approach{
			Name:                coerceString(entry["name"]),
			TimeComplexity:      coerceString(entry["timeComplexity"]),
			SpaceComplexity:     coerceString(entry["spaceComplexity"]),
			Explanation:         coerceString(entry["explanation"]),
			DetailedExplanation: coerceString(entry["detailedExplanation"]),
			Code:                coerceString(entry["code"]),
		})
	}
	return out
}

// coerceSolutions keeps the stored field homogeneous: object entries are
// serialized to strings, plain strings pass through, anything falsy becomes
// an empty string.
func coerceSolutions(v any) []models.Solution {
	out := []models.Solution{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		switch entry := item.(type) {
		case string:
			out = append(out, models.Solution{Text: entry, Kind: models.RawText})
		case map[string]any:
			serialized, err := json.Marshal(entry)
			if err != nil {
				out = append(out, models.Solution{})
				continue
			}
			out = append(out, models.Solution{Text: string(serialized), Kind: models.SerializedObject})
		case nil:
			out = append(out, models.Solution{})
		default:
			out = append(out, models.Solution{Text: fmt.Sprintf("%v", entry), Kind: models.RawText})
		}
	}
	return out
}

func coerceSimilarQuestions(v any) []models.SimilarQuestion {
	out := []models.SimilarQuestion{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.SimilarQuestion{
			Title:       coerceString(entry["title"]),
			Difficulty:  normalizeDifficulty(coerceString(entry["difficulty"])),
			Description: coerceString(entry["description"]),
		})
	}
	return out
}

// legacy section dialect

// a header is any line-initial WORD: token
var headerRe = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z][A-Za-z0-9_]*):`)

// splitSections slices the reply into sections keyed by upper-cased header
// name. A section runs from its header to the next boundary header or end of
// text. Boundaries are all-caps WORD: headers plus the known section names in
// any case, so "Difficulty:" still parses while "Input:" inside EXAMPLES does
// not terminate anything.
func splitSections(text string) map[string]string {
	matches := headerRe.FindAllStringSubmatchIndex(text, -1)

	type boundary struct {
		name      string
		lineStart int // header line start
		contentAt int // just past the colon
	}
	var boundaries []boundary
	for _, m := range matches {
		name := text[m[2]:m[3]]
		upper := strings.ToUpper(name)
		if name == upper || knownSections[upper] {
			boundaries = append(boundaries, boundary{name: upper, lineStart: m[0], contentAt: m[1]})
		}
	}

	sections := make(map[string]string, len(boundaries))
	for i, b := range boundaries {
		end := len(text)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].lineStart
		}
		// first occurrence wins
		if _, seen := sections[b.name]; !seen {
			sections[b.name] = strings.TrimSpace(text[b.contentAt:end])
		}
	}
	return sections
}

func hasKnownSection(sections map[string]string) bool {
	for name := range sections {
		if knownSections[name] {
			return true
		}
	}
	return false
}

func parseLegacy(sections map[string]string, originalQuestion string) *Analysis {
	solutions := extractSolutions(sections["SOLUTIONS"])
	if len(solutions) == 0 {
		solutions = []models.Solution{models.NewSolution(SentinelNoSolutions)}
	}

	return &Analysis{
		OriginalQuestion:      originalQuestion,
		Difficulty:            normalizeDifficulty(sections["DIFFICULTY"]),
		Topics:                extractListItems(sections["TOPICS"]),
		Companies:             extractListItems(sections["COMPANIES"]),
		Description:           sections["DESCRIPTION"],
		SimplifiedExplanation: sections["SIMPLE_EXPLANATION"],
		Examples:              extractExamples(sections["EXAMPLES"]),
		Approaches:            []models.Approach{},
		Solutions:             solutions,
		Hint:                  sections["HINT"],
		SimilarQuestions:      []models.SimilarQuestion{},
	}
}

var listSplitRe = regexp.MustCompile(`,|\n- |\n•`)

// extractListItems splits a comma or bullet separated section into items.
// An absent section yields an empty list; a present section that splits to
// nothing yields the "None specified" sentinel the UI checks for.
func extractListItems(section string) []string {
	if section == "" {
		return []string{}
	}

	items := []string{}
	for _, part := range listSplitRe.Split(section, -1) {
		if item := trimBullet(part); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return []string{SentinelNoneSpecified}
	}
	return items
}

func trimBullet(s string) string {
	s = strings.TrimSpace(s)
	for _, marker := range []string{"- ", "• ", "* "} {
		s = strings.TrimPrefix(s, marker)
	}
	return strings.TrimSpace(s)
}

var exampleSplitRe = regexp.MustCompile(`(?i)Example\s*\d+:?`)

func extractExamples(section string) []models.Example {
	out := []models.Example{}
	if section == "" {
		return out
	}

	for _, block := range exampleSplitRe.Split(section, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		input, ok := scanLabel(block, "input", []string{"\n", "output"})
		if !ok {
			input = SentinelNotSpecified
		}
		output, ok := scanLabel(block, "output", []string{"\n", "explanation"})
		if !ok {
			output = SentinelNotSpecified
		}
		explanation, _ := scanLabel(block, "explanation", []string{"\n\n"})

		out = append(out, models.Example{
			Input:       input,
			Output:      output,
			Explanation: explanation,
		})
	}
	return out
}

// scanLabel finds a case-insensitive "Label:" marker inside a block and takes
// everything up to the earliest stop marker, mirroring the "until next known
// label" extraction rule.
func scanLabel(block, label string, stops []string) (string, bool) {
	lower := strings.ToLower(block)
	idx := strings.Index(lower, strings.ToLower(label))
	if idx < 0 {
		return "", false
	}

	rest := block[idx+len(label):]
	rest = strings.TrimPrefix(rest, ":")

	restLower := strings.ToLower(rest)
	end := len(rest)
	for _, stop := range stops {
		if i := strings.Index(restLower, strings.ToLower(stop)); i >= 0 && i < end {
			end = i
		}
	}
	return strings.TrimSpace(rest[:end]), true
}

var solutionSplitRe = regexp.MustCompile(`(?i)(?:Approach|Solution)\s*\d+:?`)

// extractSolutions splits the SOLUTIONS section on approach markers. With no
// markers but a fenced code block, the whole section is one entry; with
// neither, the "No detailed solutions available" sentinel is returned.
func extractSolutions(section string) []models.Solution {
	section = strings.TrimSpace(section)
	if section == "" {
		return []models.Solution{models.NewSolution(SentinelNoDetailedSolutions)}
	}

	if solutionSplitRe.MatchString(section) {
		approaches := []models.Solution{}
		for _, part := range solutionSplitRe.Split(section, -1) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				approaches = append(approaches, models.NewSolution(trimmed))
			}
		}
		// bare markers with nothing after them leave this empty; the caller
		// substitutes the "No solutions available" sentinel
		return approaches
	}

	if strings.Contains(section, "```") {
		return []models.Solution{models.NewSolution(section)}
	}
	return []models.Solution{models.NewSolution(SentinelNoDetailedSolutions)}
}
