package validation

// Domain codes raised while validating a new thread payload.
const (
	ErrAddThreadMissingProperty = "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrAddThreadWrongType       = "ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// AddThread is a validated new thread payload.
type AddThread struct {
	Title string
	Body  string
}

// NewAddThread validates the new thread payload.
func NewAddThread(payload map[string]any) (*AddThread, error) {
	values, err := requireStrings(payload,
		[]string{"title", "body"},
		ErrAddThreadMissingProperty, ErrAddThreadWrongType)
	if err != nil {
		return nil, err
	}

	return &AddThread{
		Title: values["title"],
		Body:  values["body"],
	}, nil
}
