package wizard

import "github.com/gapbbong/survey-1cl/model"

// buildPayload flattens the draft into the outbound answer set: grouped
// selections joined with ", ", the detail address folded into the main
// address, the stored password carried forward when the field was left
// blank, and the computed fields stamped on. The confirm field never
// leaves the client.
func buildPayload(schema *model.Schema, d *model.FormDraft, session Session) model.SubmissionPayload {
	p := model.SubmissionPayload{}
	for _, spec := range schema.Fields() {
		p[spec.Name] = d.Get(spec.Name).Joined()
	}

	if detail := p[model.FieldAddressDetail]; detail != "" {
		p[model.FieldHomeAddress] = p[model.FieldHomeAddress] + " " + detail
	}
	delete(p, model.FieldAddressDetail)

	if p[model.FieldPassword] == "" && session.StoredPassword != "" {
		p[model.FieldPassword] = session.StoredPassword
	}
	delete(p, model.FieldPasswordConfirm)

	p[model.FieldEnrollmentStatus] = model.EnrollmentStatusValue
	if session.Identity != nil {
		p[model.FieldStudentNumber] = session.Identity.StudentNumber
		p[model.FieldStudentName] = session.Identity.DisplayName
	}
	return p
}

// summaryFields picks the denormalized subset mirrored onto the student
// record after a successful insert.
func summaryFields(p model.SubmissionPayload) map[string]string {
	return map[string]string{
		model.FieldStudentPhone:   p[model.FieldStudentPhone],
		model.FieldHomeAddress:    p[model.FieldHomeAddress],
		model.FieldPrimaryContact: p[model.FieldPrimaryContact],
	}
}
