package wizard

import (
	"errors"
	"fmt"

	"github.com/gapbbong/survey-1cl/registry"
)

// User-facing guidance, one message per failure reason. Transport errors
// suggest retrying; lookup and format errors suggest correcting.
const (
	MsgEnterNumber      = "학번을 입력해주세요."
	MsgNotFound         = "입력하신 학번의 학생을 찾을 수 없습니다."
	MsgVerifyTransport  = "서버 통신 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	MsgPasswordRequired = "설정하신 비밀번호를 입력해주세요."
	MsgPasswordMismatch = "비밀번호가 일치하지 않습니다. 다시 확인해주세요."
	MsgIdentityLost     = "학번 정보가 유실되었습니다. 다시 한 번 학번 조회를 해주세요."
	MsgConsentRequired  = "개인정보 수집 및 이용에 동의해주셔야 제출이 가능합니다."

	MsgMissingRequired = "입력하지 않은 항목이 있습니다.\n확인 후 다시 시도해주세요."
	MsgHandleInvalid   = "인스타 ID를 정확히 입력해주세요."
	MsgCode4Invalid    = "MBTI 형식이 올바르지 않습니다.\n4글자 전체를 입력하거나, 'E' 또는 'I'만 입력해주세요."

	MsgPhoneFormat     = "전화번호 형식이 올바르지 않습니다.\n'010-0000-0000' 형식으로 입력해주세요."
	MsgCode4TooLong    = "MBTI는 최대 4글자까지만 입력 가능합니다."
	MsgCode4BadFull    = "올바른 MBTI 형식이 아닙니다. (예: ENFP, ISTJ 등)"
	MsgCode4BadSingle  = "한 글자만 입력할 경우 'E' 또는 'I'만 가능합니다."
	MsgCode4BadPartial = "MBTI는 4글자 전체(예: ENFP)를 입력하거나,\n잘 모를 경우 'E' 또는 'I' 단일 문자로만 입력해주세요."

	MsgDuplicate       = "이미 제출된 설문 기록이 있습니다. 중복 제출은 할 수 없습니다."
	MsgSchemaMismatch  = "서버 저장소 구성에 문제가 있습니다. 선생님께 문의해주세요."
	MsgBadReference    = "학생 정보 참조가 올바르지 않습니다. 학번 조회를 다시 해주세요."
	MsgSubmitTransport = "서버 저장 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.\n(입력한 내용은 저장되어 있으니 새로고침 하셔도 됩니다)"

	MsgNoContactNumber = "선택한 연락처에 전화번호가 없습니다."
)

// UserMessage maps a wizard or registry error onto the guidance to show.
// Unrecognized registry codes keep the raw code visible so it can be
// escalated to a human operator.
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	var unknown *registry.UnknownCodeError
	if errors.As(err, &unknown) {
		return fmt.Sprintf("알 수 없는 데이터베이스 오류입니다. (코드: %s)", unknown.Code)
	}

	switch {
	case errors.Is(err, ErrNumberRequired):
		return MsgEnterNumber
	case errors.Is(err, registry.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, ErrPasswordRequired):
		return MsgPasswordRequired
	case errors.Is(err, ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, ErrIdentityLost):
		return MsgIdentityLost
	case errors.Is(err, ErrConsentRequired):
		return MsgConsentRequired
	case errors.Is(err, registry.ErrDuplicate):
		return MsgDuplicate
	case errors.Is(err, registry.ErrSchemaMismatch):
		return MsgSchemaMismatch
	case errors.Is(err, registry.ErrBadReference):
		return MsgBadReference
	case errors.Is(err, registry.ErrTransport):
		return MsgSubmitTransport
	default:
		return MsgSubmitTransport
	}
}
