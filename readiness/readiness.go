// Package readiness decides whether the submit action is enabled and what
// is still missing. Evaluate runs on every field change, so it must stay a
// plain linear scan with no I/O.
package readiness

import (
	"strings"

	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/validate"
)

// ConsentIssueLabel is the fixed entry appended while the privacy consent
// box is unchecked.
const ConsentIssueLabel = "개인정보 수집 및 이용 동의"

// labels carry decorative glyphs for the picker buttons; strip them before
// showing a field name on the missing list.
var stripGlyphs = strings.NewReplacer("🔍", "", "🚀", "")

func Evaluate(schema *model.Schema, d *model.FormDraft, consentGiven bool) model.ReadinessResult {
	issues := []model.ValidationIssue{}

	for _, spec := range schema.Fields() {
		if !spec.Required {
			continue
		}
		if !validate.RequiredFilled(d.Get(spec.Name)) {
			issues = append(issues, model.ValidationIssue{FieldLabel: CleanLabel(spec.Label)})
		}
	}

	if confirm, ok := schema.Lookup(model.FieldPasswordConfirm); ok {
		if d.Get(model.FieldPasswordConfirm).Value != d.Get(model.FieldPassword).Value {
			issues = append(issues, model.ValidationIssue{FieldLabel: CleanLabel(confirm.Label)})
		}
	}

	if !consentGiven {
		issues = append(issues, model.ValidationIssue{FieldLabel: ConsentIssueLabel})
	}

	return model.ReadinessResult{
		Enabled: len(issues) == 0,
		Issues:  issues,
	}
}

func CleanLabel(label string) string {
	return strings.TrimSpace(stripGlyphs.Replace(label))
}
