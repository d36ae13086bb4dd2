// internal/model/module.go
package model

// Collection names in the document store. Each record kind below is persisted
// verbatim (the store is schemaless), so the same struct doubles as the
// request payload and the stored document shape.
const (
	ModuleCollection   = "module"
	ProgressCollection = "progress"
	NoteCollection     = "note"
)

// Timestamp is a chronological jump point within a module video.
// Insertion order of the slice is meaningful.
type Timestamp struct {
	Label string `bson:"label" json:"label" validate:"required"`
	Time  int    `bson:"time" json:"time" validate:"gte=0"` // seconds from start
}

// Resource is a downloadable attachment of a module.
type Resource struct {
	Label string `bson:"label" json:"label" validate:"required"`
	URL   string `bson:"url" json:"url" validate:"required,url"`
	Type  string `bson:"type,omitempty" json:"type,omitempty"` // pdf | slides | doc | other (free text)
}

// Module is a training video unit with metadata, jump points and resources.
// The store assigns its identifier on insert; modules are never updated or
// deleted through this API.
type Module struct {
	Title        string      `bson:"title" json:"title" validate:"required"`
	Description  string      `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL     string      `bson:"video_url" json:"video_url" validate:"required,url"`
	ThumbnailURL string      `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Category     string      `bson:"category,omitempty" json:"category,omitempty"`
	Timestamps   []Timestamp `bson:"timestamps" json:"timestamps" validate:"dive"`
	Resources    []Resource  `bson:"resources" json:"resources" validate:"dive"`
}

// CreateModuleResponse is returned after a successful module insert.
type CreateModuleResponse struct {
	ID string `json:"id"`
}

// SeedResult reports the outcome of the one-time fixture seeding.
type SeedResult struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Count    int64  `json:"count,omitempty"`
	Inserted int    `json:"inserted,omitempty"`
}
