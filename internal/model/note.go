// internal/model/note.go
package model

// Note is a user's free-text annotation for one module. Same composite key
// and upsert semantics as Progress.
type Note struct {
	UserID   string `bson:"user_id" json:"user_id" validate:"required"`
	ModuleID string `bson:"module_id" json:"module_id" validate:"required"`
	Content  string `bson:"content" json:"content"`
}
