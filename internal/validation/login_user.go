package validation

// Domain codes raised while validating a login payload.
const (
	ErrLoginUserMissingProperty = "LOGIN_USER.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrLoginUserWrongType       = "LOGIN_USER.NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// LoginUser is a validated login payload.
type LoginUser struct {
	Username string
	Password string
}

// NewLoginUser validates the login payload.
func NewLoginUser(payload map[string]any) (*LoginUser, error) {
	values, err := requireStrings(payload,
		[]string{"username", "password"},
		ErrLoginUserMissingProperty, ErrLoginUserWrongType)
	if err != nil {
		return nil, err
	}

	return &LoginUser{
		Username: values["username"],
		Password: values["password"],
	}, nil
}
