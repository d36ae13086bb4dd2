// internal/model/progress.go
package model

// Progress is a user's viewing state for one module, keyed by the composite
// (user_id, module_id) pair. Writes are upserts: at most one document exists
// per pair and the last write wins.
type Progress struct {
	UserID       string `bson:"user_id" json:"user_id" validate:"required"`
	ModuleID     string `bson:"module_id" json:"module_id" validate:"required"`
	LastPosition int    `bson:"last_position" json:"last_position" validate:"gte=0"` // seconds
	Completed    bool   `bson:"completed" json:"completed"`
}
