package validation

// Domain codes raised while validating comment and reply payloads.
const (
	ErrAddCommentMissingProperty = "ADD_COMMENT_ON_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrAddCommentWrongType       = "ADD_COMMENT_ON_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrAddReplyMissingProperty   = "ADD_REPLY_ON_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrAddReplyWrongType         = "ADD_REPLY_ON_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// AddComment is a validated new comment payload.
type AddComment struct {
	Content string
}

// NewAddComment validates the new comment payload.
func NewAddComment(payload map[string]any) (*AddComment, error) {
	values, err := requireStrings(payload,
		[]string{"content"},
		ErrAddCommentMissingProperty, ErrAddCommentWrongType)
	if err != nil {
		return nil, err
	}

	return &AddComment{Content: values["content"]}, nil
}

// AddReply is a validated new reply payload.
type AddReply struct {
	Content string
}

// NewAddReply validates the new reply payload.
func NewAddReply(payload map[string]any) (*AddReply, error) {
	values, err := requireStrings(payload,
		[]string{"content"},
		ErrAddReplyMissingProperty, ErrAddReplyWrongType)
	if err != nil {
		return nil, err
	}

	return &AddReply{Content: values["content"]}, nil
}
