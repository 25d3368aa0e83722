package wizard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gapbbong/survey-1cl/draft"
	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/wizard"
)

type fakeAddressLookup struct {
	addr wizard.Address
	err  error
}

func (f fakeAddressLookup) Lookup(context.Context) (wizard.Address, error) {
	return f.addr, f.err
}

type fakeContactPicker struct {
	tel string
	err error
}

func (f fakeContactPicker) Pick(context.Context) (string, error) {
	return f.tel, f.err
}

func pickerWizard(kv memKV, addr wizard.AddressLookup, contacts wizard.ContactPicker) *wizard.Wizard {
	store := draft.NewStore(kv, model.SurveySchema())
	return wizard.New(model.SurveySchema(), knownStudent(), store, addr, contacts)
}

func TestFullAddressComposition(t *testing.T) {
	tests := []struct {
		name string
		addr wizard.Address
		want string
	}{
		{
			"road name with town and apartment",
			wizard.Address{Address: "서울 종로구 세종대로 1", Bname: "세종로", BuildingName: "경복아파트", Apartment: "Y", UserSelectedType: "R"},
			"서울 종로구 세종대로 1 (세종로, 경복아파트)",
		},
		{
			"road name, building only",
			wizard.Address{Address: "서울 종로구 세종대로 1", BuildingName: "경복아파트", Apartment: "Y", UserSelectedType: "R"},
			"서울 종로구 세종대로 1 (경복아파트)",
		},
		{
			"town suffix mismatch drops the extra",
			wizard.Address{Address: "서울 종로구 세종대로 1", Bname: "세종마을", UserSelectedType: "R"},
			"서울 종로구 세종대로 1",
		},
		{
			"lot number selection stays bare",
			wizard.Address{Address: "서울 종로구 세종로 1-1", Bname: "세종로", UserSelectedType: "J"},
			"서울 종로구 세종로 1-1",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.addr.FullAddress(), tt.name)
	}
}

func TestPickAddressWritesFieldsAndAutosaves(t *testing.T) {
	kv := memKV{}
	w := pickerWizard(kv, fakeAddressLookup{addr: wizard.Address{
		Zonecode: "03172", Address: "서울 종로구 세종대로 1", UserSelectedType: "R",
	}}, nil)

	require.NoError(t, w.PickAddress(context.Background()))
	d := w.Draft()
	assert.Equal(t, "03172", d.Get(model.FieldZipCode).Value)
	assert.Equal(t, "서울 종로구 세종대로 1", d.Get(model.FieldHomeAddress).Value)
	// the synthesized change events reached the autosave listener
	assert.Contains(t, kv[draft.DraftKey], "03172")
}

func TestPickAddressUnavailable(t *testing.T) {
	w := pickerWizard(memKV{}, nil, nil)
	assert.ErrorIs(t, w.PickAddress(context.Background()), wizard.ErrNoPicker)
}

func TestPickContactNormalizes(t *testing.T) {
	kv := memKV{}
	w := pickerWizard(kv, nil, fakeContactPicker{tel: "+82 10-2222-3333"})

	require.NoError(t, w.PickContact(context.Background(), model.FieldPrimaryGuardianPhone))
	assert.Equal(t, "010-2222-3333", w.Draft().Get(model.FieldPrimaryGuardianPhone).Value)
	assert.Contains(t, kv[draft.DraftKey], "010-2222-3333")
}

func TestPickContactRejectsNonTelField(t *testing.T) {
	w := pickerWizard(memKV{}, nil, fakeContactPicker{tel: "01022223333"})
	assert.ErrorIs(t, w.PickContact(context.Background(), model.FieldInstagramHandle), wizard.ErrUnknownField)
}

func TestPickContactEmptyNumber(t *testing.T) {
	w := pickerWizard(memKV{}, nil, fakeContactPicker{tel: ""})

	err := w.PickContact(context.Background(), model.FieldStudentPhone)
	var vErr *wizard.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, wizard.MsgNoContactNumber, vErr.Message)
}

func TestPickContactCancelled(t *testing.T) {
	cancelled := errors.New("picker dismissed")
	w := pickerWizard(memKV{}, nil, fakeContactPicker{err: cancelled})
	assert.ErrorIs(t, w.PickContact(context.Background(), model.FieldStudentPhone), cancelled)
}
