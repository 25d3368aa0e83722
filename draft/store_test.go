package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gapbbong/survey-1cl/draft"
	"github.com/gapbbong/survey-1cl/model"
)

type memKV map[string]string

func (kv memKV) Get(key string) (string, bool, error) {
	v, ok := kv[key]
	return v, ok, nil
}
func (kv memKV) Set(key, value string) error {
	kv[key] = value
	return nil
}
func (kv memKV) Delete(key string) error {
	delete(kv, key)
	return nil
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := memKV{}
	store := draft.NewStore(kv, model.SurveySchema())

	d := model.NewFormDraft()
	d.StudentNumber = "10101"
	d.Set(model.FieldStudentPhone, model.Single("010-1234-5678"))
	d.Set(model.FieldHomeAddress, model.Single("서울시 어딘가 123"))
	d.Set(model.FieldHousehold, model.Multi("부", "모"))
	d.Set(model.FieldCommuteMode, model.Multi("도보"))
	store.Save(d)

	loaded := store.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, "10101", loaded.StudentNumber)
	assert.Equal(t, model.Single("010-1234-5678"), loaded.Get(model.FieldStudentPhone))
	assert.Equal(t, model.Single("서울시 어딘가 123"), loaded.Get(model.FieldHomeAddress))
	assert.Equal(t, model.Multi("부", "모"), loaded.Get(model.FieldHousehold))
	assert.Equal(t, model.Multi("도보"), loaded.Get(model.FieldCommuteMode))
}

func TestSaveOverwritesWholesale(t *testing.T) {
	kv := memKV{}
	store := draft.NewStore(kv, model.SurveySchema())

	d := model.NewFormDraft()
	d.Set(model.FieldStudentPhone, model.Single("010-1111-2222"))
	d.Set(model.FieldInstagramHandle, model.Single("@old"))
	store.Save(d)

	d2 := model.NewFormDraft()
	d2.Set(model.FieldStudentPhone, model.Single("010-3333-4444"))
	store.Save(d2)

	loaded := store.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, model.Single("010-3333-4444"), loaded.Get(model.FieldStudentPhone))
	// the old handle is gone: last full snapshot wins
	assert.True(t, loaded.Get(model.FieldInstagramHandle).Empty())
}

func TestLoadAbsent(t *testing.T) {
	store := draft.NewStore(memKV{}, model.SurveySchema())
	assert.Nil(t, store.Load())
}

func TestLoadCorruptRecord(t *testing.T) {
	kv := memKV{draft.DraftKey: "{not json"}
	store := draft.NewStore(kv, model.SurveySchema())
	assert.Nil(t, store.Load())
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	kv := memKV{draft.DraftKey: `{"student_phone":"010-1234-5678","retired_field":"x"}`}
	store := draft.NewStore(kv, model.SurveySchema())

	loaded := store.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, model.Single("010-1234-5678"), loaded.Get(model.FieldStudentPhone))
	assert.NotContains(t, loaded.Fields, "retired_field")
}

func TestLoadCoercesShapes(t *testing.T) {
	// the original build stored lone checkbox picks as bare strings
	kv := memKV{draft.DraftKey: `{"household":"부","student_phone":["010-1234-5678"]}`}
	store := draft.NewStore(kv, model.SurveySchema())

	loaded := store.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, model.Multi("부"), loaded.Get(model.FieldHousehold))
	assert.Equal(t, model.Single("010-1234-5678"), loaded.Get(model.FieldStudentPhone))
}

func TestLoadSkipsNullStudentNumber(t *testing.T) {
	// the browser build stringified a null student number
	kv := memKV{
		draft.DraftKey:         `{}`,
		draft.StudentNumberKey: "null",
	}
	store := draft.NewStore(kv, model.SurveySchema())

	loaded := store.Load()
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.StudentNumber)
}

func TestClear(t *testing.T) {
	kv := memKV{}
	store := draft.NewStore(kv, model.SurveySchema())

	d := model.NewFormDraft()
	d.StudentNumber = "10101"
	store.Save(d)
	require.NoError(t, store.Clear())
	assert.Nil(t, store.Load())
}
