// Package meaning parses and validates the JSON record returned by the meaning lookup.
package meaning

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/at-ishikawa/ogura-an/internal/apperror"
)

// Result is a validated lookup result.
type Result struct {
	Word    string `json:"word" yaml:"word"`
	Meaning string `json:"meaning" yaml:"meaning"`
	// Tag is the comma separated category labels as returned by the model.
	Tag   string `json:"tag" yaml:"tag"`
	Usage string `json:"usage" yaml:"usage"`
}

// Tags splits Tag on commas and trims each segment.
// Empty segments are kept so "a,,b" becomes ["a", "", "b"].
func (r Result) Tags() []string {
	if r.Tag == "" {
		return []string{}
	}
	segments := strings.Split(r.Tag, ",")
	tags := make([]string, 0, len(segments))
	for _, segment := range segments {
		tags = append(tags, strings.TrimSpace(segment))
	}
	return tags
}

// Validate reports the first required field that is empty.
func (r Result) Validate() error {
	if r.Word == "" {
		return &apperror.InvalidRecordError{Field: "word"}
	}
	if r.Meaning == "" {
		return &apperror.InvalidRecordError{Field: "meaning"}
	}
	return nil
}

// tagValue accepts either the documented comma separated string or a JSON array of labels,
// which some models return despite the instruction.
type tagValue string

func (t *tagValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var labels []string
		if err := json.Unmarshal(data, &labels); err != nil {
			return fmt.Errorf("json.Unmarshal(tag) > %w", err)
		}
		*t = tagValue(strings.Join(labels, ","))
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("json.Unmarshal(tag) > %w", err)
	}
	*t = tagValue(s)
	return nil
}

type rawResult struct {
	Word    string   `json:"word"`
	Meaning string   `json:"meaning"`
	Tag     tagValue `json:"tag"`
	Usage   string   `json:"usage"`
}

// Parse decodes the raw model output and checks that word and meaning are present.
func Parse(raw string) (Result, error) {
	var decoded rawResult
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return Result{}, &apperror.MalformedResultError{
			Reason: "not a JSON object",
			Raw:    raw,
			Err:    err,
		}
	}

	result := Result{
		Word:    decoded.Word,
		Meaning: decoded.Meaning,
		Tag:     string(decoded.Tag),
		Usage:   decoded.Usage,
	}
	if result.Word == "" {
		return Result{}, &apperror.MalformedResultError{Reason: "word is missing", Raw: raw}
	}
	if result.Meaning == "" {
		return Result{}, &apperror.MalformedResultError{Reason: "meaning is missing", Raw: raw}
	}
	return result, nil
}
