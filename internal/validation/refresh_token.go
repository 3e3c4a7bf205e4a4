package validation

// Domain codes raised while validating refresh token payloads.
const (
	ErrRefreshAuthMissingToken = "REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN"
	ErrRefreshAuthWrongType    = "REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrDeleteAuthMissingToken  = "DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN"
	ErrDeleteAuthWrongType     = "DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// RefreshAuth is a validated token refresh payload.
type RefreshAuth struct {
	RefreshToken string
}

// NewRefreshAuth validates the token refresh payload.
func NewRefreshAuth(payload map[string]any) (*RefreshAuth, error) {
	values, err := requireStrings(payload,
		[]string{"refreshToken"},
		ErrRefreshAuthMissingToken, ErrRefreshAuthWrongType)
	if err != nil {
		return nil, err
	}

	return &RefreshAuth{RefreshToken: values["refreshToken"]}, nil
}

// DeleteAuth is a validated logout payload.
type DeleteAuth struct {
	RefreshToken string
}

// NewDeleteAuth validates the logout payload.
func NewDeleteAuth(payload map[string]any) (*DeleteAuth, error) {
	values, err := requireStrings(payload,
		[]string{"refreshToken"},
		ErrDeleteAuthMissingToken, ErrDeleteAuthWrongType)
	if err != nil {
		return nil, err
	}

	return &DeleteAuth{RefreshToken: values["refreshToken"]}, nil
}
