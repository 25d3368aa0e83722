package model

// FieldKind declares how a field's value is shaped, so the draft store and
// the payload builder never have to sniff control types at runtime.
type FieldKind int

const (
	KindSingle FieldKind = iota
	KindMulti
)

type FieldSpec struct {
	Name     string
	Label    string
	Kind     FieldKind
	Control  string
	Required bool
}

type Schema struct {
	fields []FieldSpec
	byName map[string]FieldSpec
}

func NewSchema(fields ...FieldSpec) *Schema {
	s := &Schema{fields: fields, byName: make(map[string]FieldSpec, len(fields))}
	for _, f := range fields {
		s.byName[f.Name] = f
	}
	return s
}

// Fields returns the specs in declaration order. The order is load-bearing:
// readiness issues and submit-time validation walk it top to bottom, the
// same order the fields appear on screen.
func (s *Schema) Fields() []FieldSpec {
	return s.fields
}

func (s *Schema) Lookup(name string) (FieldSpec, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Canonical field names of the student survey.
const (
	FieldStudentPhone           = "student_phone"
	FieldZipCode                = "zip_code"
	FieldHomeAddress            = "home_address"
	FieldAddressDetail          = "address_detail"
	FieldPrimaryContact         = "primary_contact"
	FieldPrimaryGuardianPhone   = "primary_guardian_phone"
	FieldSecondaryGuardianPhone = "secondary_guardian_phone"
	FieldHousehold              = "household"
	FieldMulticultural          = "multicultural"
	FieldCommuteMode            = "commute_mode"
	FieldInstagramHandle        = "instagram_handle"
	FieldPersonalityType        = "personality_type"
	FieldPassword               = "password"
	FieldPasswordConfirm        = "password_confirm"
)

// Computed payload keys that never appear on the form itself.
const (
	FieldEnrollmentStatus = "enrollment_status"
	FieldStudentNumber    = "student_number"
	FieldStudentName      = "student_name"
)

// EnrollmentStatusValue is stamped onto every payload: submitting the
// survey implies the student is currently enrolled.
const EnrollmentStatusValue = "재학"

// SurveySchema declares the fields of the first-year homeroom survey.
func SurveySchema() *Schema {
	return NewSchema(
		FieldSpec{Name: FieldStudentPhone, Label: "학생 연락처", Kind: KindSingle, Control: "tel", Required: true},
		FieldSpec{Name: FieldZipCode, Label: "우편번호", Kind: KindSingle, Control: "text"},
		FieldSpec{Name: FieldHomeAddress, Label: "집주소 🔍", Kind: KindSingle, Control: "text", Required: true},
		FieldSpec{Name: FieldAddressDetail, Label: "상세주소", Kind: KindSingle, Control: "text"},
		FieldSpec{Name: FieldPrimaryContact, Label: "주연락대상", Kind: KindSingle, Control: "select"},
		FieldSpec{Name: FieldPrimaryGuardianPhone, Label: "주보호자 연락처 🔍", Kind: KindSingle, Control: "tel", Required: true},
		FieldSpec{Name: FieldSecondaryGuardianPhone, Label: "보조보호자 연락처 🔍", Kind: KindSingle, Control: "tel"},
		FieldSpec{Name: FieldHousehold, Label: "거주가족", Kind: KindMulti, Control: "checkbox", Required: true},
		FieldSpec{Name: FieldMulticultural, Label: "다문화여부", Kind: KindMulti, Control: "checkbox"},
		FieldSpec{Name: FieldCommuteMode, Label: "등교수단", Kind: KindMulti, Control: "checkbox"},
		FieldSpec{Name: FieldInstagramHandle, Label: "인스타 ID", Kind: KindSingle, Control: "text"},
		FieldSpec{Name: FieldPersonalityType, Label: "MBTI", Kind: KindSingle, Control: "text"},
		FieldSpec{Name: FieldPassword, Label: "비밀번호", Kind: KindSingle, Control: "password"},
		FieldSpec{Name: FieldPasswordConfirm, Label: "비밀번호 확인", Kind: KindSingle, Control: "password"},
	)
}
