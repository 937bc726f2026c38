package dto

// ImageResponse carries one stored image with its payload re-encoded for
// transport.
type ImageResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Data string `json:"data"`
}

// CommentCreateRequest is the payload for submitting an inspection comment.
type CommentCreateRequest struct {
	CadetName string `json:"cadet_name" validate:"required"`
	Company   string `json:"company" validate:"required"`
	Comment   string `json:"comment" validate:"required"`
}

// CommentResponse mirrors a stored inspection comment.
type CommentResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CadetName string `json:"cadet_name"`
	Comment   string `json:"comment"`
	Company   string `json:"company"`
}
