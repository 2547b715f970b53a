package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized       = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidCredentials = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"}
	UserInactive       = Definition{Code: "USER_INACTIVE", Message: "User account is inactive"}
	UsernameTaken      = Definition{Code: "USERNAME_TAKEN", Message: "Username already taken"}
	InvalidUserID      = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	UserNotFound       = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
)

// 角色门禁错误。管理员进不了打卡，工人进不了报表。
var (
	PermissionDenied = Definition{Code: "PERMISSION_DENIED", Message: "Operation not allowed for this role"}
)

// 考勤打卡错误。
var (
	AlreadyCheckedIn = Definition{Code: "ALREADY_CHECKED_IN", Message: "An open attendance interval already exists"}
	NotCheckedIn     = Definition{Code: "NOT_CHECKED_IN", Message: "No open attendance interval to close"}
	InvalidAction    = Definition{Code: "INVALID_ACTION", Message: "Action must be check_in or check_out"}
	ToggleInProgress = Definition{Code: "TOGGLE_IN_PROGRESS", Message: "Another check-in/out request is in progress"}
)

// 报表与校验错误。
var (
	InvalidDate      = Definition{Code: "INVALID_DATE", Message: "Date must be an ISO date (YYYY-MM-DD)"}
	ValidationFailed = Definition{Code: "VALIDATION_FAILED", Message: "Request validation failed"}
	RateLimited      = Definition{Code: "RATE_LIMITED", Message: "Too many requests"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:       Unauthorized,
	InvalidCredentials.Code: InvalidCredentials,
	UserInactive.Code:       UserInactive,
	UsernameTaken.Code:      UsernameTaken,
	InvalidUserID.Code:      InvalidUserID,
	UserNotFound.Code:       UserNotFound,
	PermissionDenied.Code:   PermissionDenied,
	AlreadyCheckedIn.Code:   AlreadyCheckedIn,
	NotCheckedIn.Code:       NotCheckedIn,
	InvalidAction.Code:      InvalidAction,
	ToggleInProgress.Code:   ToggleInProgress,
	InvalidDate.Code:        InvalidDate,
	ValidationFailed.Code:   ValidationFailed,
	RateLimited.Code:        RateLimited,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
