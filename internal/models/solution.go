package models

import (
	"bytes"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// SolutionKind tags where a solution entry came from: a plain text reply or
// a structured object the model returned in its place.
type SolutionKind int

const (
	RawText SolutionKind = iota
	SerializedObject
)

// Solution is the permissive solutions entry. The model sometimes returns a
// plain string and sometimes a structured object per approach; both are
// normalized to a string at the storage boundary so the persisted field stays
// homogeneous, while the Kind tag is kept for callers.
type Solution struct {
	Text string
	Kind SolutionKind
}

func NewSolution(text string) Solution {
	return Solution{Text: text, Kind: RawText}
}

func (s Solution) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

func (s *Solution) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = Solution{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*s = Solution{Text: text, Kind: RawText}
	case '{':
		// re-serialize the object compactly so storage sees a string
		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		serialized, err := json.Marshal(obj)
		if err != nil {
			return err
		}
		*s = Solution{Text: string(serialized), Kind: SerializedObject}
	default:
		*s = Solution{Text: string(trimmed), Kind: RawText}
	}
	return nil
}

func (s Solution) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(s.Text)
}

func (s *Solution) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var text string
	if err := bson.UnmarshalValue(t, data, &text); err != nil {
		return err
	}
	*s = Solution{Text: text, Kind: RawText}
	return nil
}
