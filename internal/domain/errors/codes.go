package errors

// Category is the origin of a portal error.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryAuthentication
	CategoryFormRequest
	CategoryAuthServer
	CategoryFrontend
	CategoryResourceAPI
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAuthentication:
		return "authentication"
	case CategoryFormRequest:
		return "form_request"
	case CategoryAuthServer:
		return "auth_server"
	case CategoryFrontend:
		return "frontend"
	case CategoryResourceAPI:
		return "resource_api"
	case CategoryUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// wire prefix of each category
var categoryPrefixes = map[byte]Category{
	'A': CategoryAuthentication,
	'F': CategoryFormRequest,
	'D': CategoryAuthServer,
	'E': CategoryFrontend,
	'R': CategoryResourceAPI,
}

// Code is a short wire code carried in redirect query strings (error=A001).
type Code string

const (
	CodeInvalidCredentials Code = "A001"
	CodeAccountLocked      Code = "A002"
	CodeMfaExpired         Code = "A003"
	CodeUnauthenticated    Code = "A004"

	CodeInvalidInput Code = "F001"
	CodeFormExpired  Code = "F002"

	CodeAuthServer Code = "D001"

	CodeUnexpected Code = "E001"
	CodeForbidden  Code = "E002"

	CodeResourceAPI           Code = "R001"
	CodeResourceAlreadyExists Code = "R002"
	CodeResourceNotFound      Code = "R003"
)

var messages = map[Code]string{
	CodeInvalidCredentials: "ユーザー名またはパスワードが正しくありません。",
	CodeAccountLocked:      "このアカウントは現在利用できません。管理者にお問い合わせください。",
	CodeMfaExpired:         "認証の有効期限が切れました。もう一度サインインしてください。",
	CodeUnauthenticated:    "サインインが必要です。",

	CodeInvalidInput: "入力内容に誤りがあります。",
	CodeFormExpired:  "フォームの有効期限が切れました。もう一度お試しください。",

	CodeAuthServer: "認証サーバーでエラーが発生しました。しばらくしてから再度お試しください。",

	CodeUnexpected: "予期しないエラーが発生しました。",
	CodeForbidden:  "この操作は許可されていません。",

	CodeResourceAPI:           "リソースサーバーでエラーが発生しました。",
	CodeResourceAlreadyExists: "既に登録されています。",
	CodeResourceNotFound:      "対象が見つかりません。",
}

// ParseCode reads a wire code. Unknown codes are rejected.
func ParseCode(raw string) (Code, bool) {
	code := Code(raw)
	if _, ok := messages[code]; !ok {
		return "", false
	}

	return code, true
}

// Category returns the origin encoded in the code prefix.
func (c Code) Category() Category {
	if len(c) == 0 {
		return CategoryUnknown
	}
	if category, ok := categoryPrefixes[c[0]]; ok {
		return category
	}

	return CategoryUnknown
}

// Message returns the localized text for the code, or "" when the code is unknown.
func (c Code) Message() string {
	return messages[c]
}

// DisplayMessage maps a raw query value to display text. Unrecognized values render nothing.
func DisplayMessage(raw string) string {
	code, ok := ParseCode(raw)
	if !ok {
		return ""
	}

	return code.Message()
}

// Codes lists every declared code.
func Codes() []Code {
	codes := make([]Code, 0, len(messages))
	for code := range messages {
		codes = append(codes, code)
	}

	return codes
}
