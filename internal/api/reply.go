package api

// Request DTOs

type CreateReplyRequest struct {
	Body   string `json:"body" validate:"required,max=100000"`
	Author string `json:"author,omitempty" validate:"max=1000"`
}
