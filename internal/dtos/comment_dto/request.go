package comment_dto

// CreateCommentRequest carries an already-inserted comment to the
// notification layer: broadcast to the activity room plus a persisted
// notice for the counterpart (organizer when a member comments, prior
// commenter when the organizer replies).
type CreateCommentRequest struct {
	CommentID     int64  `json:"comment_id" validate:"required,gt=0"`
	AuthorID      int    `json:"author_id" validate:"required,gt=0"`
	AuthorRole    string `json:"author_role" validate:"required,oneof=member organizer"`
	Content       string `json:"content" validate:"required"`
	CounterpartID int    `json:"counterpart_id"`
}
