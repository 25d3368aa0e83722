package model

import (
	"strings"

	json "github.com/goccy/go-json"
)

// FieldValue is the answer to a single survey field: one string for plain
// controls, a list of strings for grouped checkboxes. It serializes the way
// the browser draft did: a bare JSON string, or a JSON array for groups.
type FieldValue struct {
	Value  string
	Values []string
}

func Single(value string) FieldValue {
	return FieldValue{Value: value}
}

func Multi(values ...string) FieldValue {
	if values == nil {
		values = []string{}
	}
	return FieldValue{Values: values}
}

func (v FieldValue) IsMulti() bool {
	return v.Values != nil
}

// Joined flattens a multi-selection for the outbound payload.
func (v FieldValue) Joined() string {
	if v.IsMulti() {
		return strings.Join(v.Values, ", ")
	}
	return v.Value
}

func (v FieldValue) Empty() bool {
	if v.IsMulti() {
		return len(v.Values) == 0
	}
	return strings.TrimSpace(v.Value) == ""
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.IsMulti() {
		return json.Marshal(v.Values)
	}
	return json.Marshal(v.Value)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Value = s
		v.Values = nil
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return err
	}
	v.Value = ""
	v.Values = ss
	return nil
}

// FormDraft is the survey's full in-progress answer set plus the student
// number side channel. The fields map is what gets mirrored to local storage.
type FormDraft struct {
	Fields        map[string]FieldValue
	StudentNumber string
}

func NewFormDraft() *FormDraft {
	return &FormDraft{Fields: map[string]FieldValue{}}
}

func (d *FormDraft) Get(name string) FieldValue {
	return d.Fields[name]
}

func (d *FormDraft) Set(name string, value FieldValue) {
	d.Fields[name] = value
}

// Identity is the verified student record, held in memory for the session
// only. Local storage keeps just the number, never the name or the ref.
type Identity struct {
	StudentNumber string `json:"student_number"`
	DisplayName   string `json:"display_name"`
	Ref           string `json:"ref"`
	HasPassword   bool   `json:"has_password"`
}

// ValidationIssue is one missing or malformed field, identified by its
// user-facing label. Anything on the list blocks submission.
type ValidationIssue struct {
	FieldLabel string `json:"field_label"`
}

type ReadinessResult struct {
	Enabled bool              `json:"enabled"`
	Issues  []ValidationIssue `json:"issues"`
}

// SubmissionPayload is the finalized answer set sent to the registry:
// every multi-selection already joined, composite fields merged, computed
// fields injected. Built fresh at submit time, discarded after the write.
type SubmissionPayload map[string]string
