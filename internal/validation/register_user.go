package validation

import "forumapi/internal/models"

// Domain codes raised while validating a registration payload.
const (
	ErrRegisterUserMissingProperty = "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrRegisterUserWrongType       = "REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrRegisterUserUsernameTooLong = "REGISTER_USER.USERNAME_LIMIT_CHAR"
	ErrRegisterUserUsernameIllegal = "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER"
)

// RegisterUser is a validated registration payload.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

// NewRegisterUser validates the registration payload.
func NewRegisterUser(payload map[string]any) (*RegisterUser, error) {
	values, err := requireStrings(payload,
		[]string{"username", "password", "fullname"},
		ErrRegisterUserMissingProperty, ErrRegisterUserWrongType)
	if err != nil {
		return nil, err
	}

	username := values["username"]
	if len(username) > maxUsernameLen {
		return nil, models.NewDomainError(ErrRegisterUserUsernameTooLong)
	}
	if !usernamePattern.MatchString(username) {
		return nil, models.NewDomainError(ErrRegisterUserUsernameIllegal)
	}

	return &RegisterUser{
		Username: username,
		Password: values["password"],
		Fullname: values["fullname"],
	}, nil
}
