// Package draft mirrors the in-progress form to local persistence so a
// crash or reload never loses answers. Saving is best-effort: a failed
// save is logged and swallowed, a corrupt record falls back to an empty
// form. The draft is deliberately retained after a successful submission
// so the user keeps a visible copy of what was sent.
package draft

import (
	json "github.com/goccy/go-json"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
)

// Storage keys, carried over from the original browser build so an
// exported localStorage dump stays importable.
const (
	DraftKey         = "survey_autosave_data"
	StudentNumberKey = "current_student_num"
)

// KV is the minimal persistence capability the store needs.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

type Store struct {
	kv     KV
	schema *model.Schema
}

func NewStore(kv KV, schema *model.Schema) *Store {
	return &Store{kv: kv, schema: schema}
}

// Save overwrites the whole draft record unconditionally: last full
// snapshot wins, no merge. Errors are logged, never returned, autosave
// must not interrupt the user.
func (s *Store) Save(d *model.FormDraft) {
	data, err := json.Marshal(d.Fields)
	if err != nil {
		log.Errorf("draft.save.marshal: %s", err)
		return
	}
	if err := s.kv.Set(DraftKey, string(data)); err != nil {
		log.Errorf("draft.save.set: %s", err)
		return
	}
	if err := s.kv.Set(StudentNumberKey, d.StudentNumber); err != nil {
		log.Errorf("draft.save.set_num: %s", err)
		return
	}
	log.Debug("draft.save: ok")
}

// Load re-hydrates a saved draft, or returns nil when there is nothing
// usable. Field names unknown to the current schema are ignored, so old
// drafts survive form changes. A record that cannot be parsed at all is
// logged and dropped: losing a malformed draft beats crashing the flow.
func (s *Store) Load() *model.FormDraft {
	raw, ok, err := s.kv.Get(DraftKey)
	if err != nil {
		log.Errorf("draft.load.get: %s", err)
		return nil
	}
	if !ok {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		log.Errorf("draft.load.parse: %s", err)
		return nil
	}

	d := model.NewFormDraft()
	var issues *multierror.Error
	for name, data := range fields {
		spec, known := s.schema.Lookup(name)
		if !known {
			continue
		}

		var value model.FieldValue
		if err := json.Unmarshal(data, &value); err != nil {
			issues = multierror.Append(issues, errors.Wrap(err, name))
			continue
		}
		d.Set(name, coerce(spec, value))
	}
	if err := issues.ErrorOrNil(); err != nil {
		log.Warnf("draft.load.fields: %s", err)
	}

	if num, ok, err := s.kv.Get(StudentNumberKey); err != nil {
		log.Errorf("draft.load.get_num: %s", err)
	} else if ok && num != "" && num != "null" {
		d.StudentNumber = num
	}

	return d
}

// coerce reconciles a stored value with the shape the schema declares for
// the field, so a draft written before a control changed kind still loads.
func coerce(spec model.FieldSpec, value model.FieldValue) model.FieldValue {
	switch spec.Kind {
	case model.KindMulti:
		if !value.IsMulti() {
			if value.Value == "" {
				return model.Multi()
			}
			return model.Multi(value.Value)
		}
	default:
		if value.IsMulti() {
			if len(value.Values) == 0 {
				return model.Single("")
			}
			return model.Single(value.Values[0])
		}
	}
	return value
}

// Clear drops the saved draft and student number. Not called on successful
// submission; it exists for an explicit user-driven reset.
func (s *Store) Clear() error {
	if err := s.kv.Delete(DraftKey); err != nil {
		return err
	}
	return s.kv.Delete(StudentNumberKey)
}
