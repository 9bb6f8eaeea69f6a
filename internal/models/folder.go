package models

// LocalizedString holds a label in both study languages.
type LocalizedString struct {
	FR string `json:"fr"`
	ES string `json:"es"`
}

// Folder groups flashcards into a tree. A folder with an empty ParentID
// is a root folder.
type Folder struct {
	ID       string          `json:"id"`
	ParentID string          `json:"parentId,omitempty"`
	Name     LocalizedString `json:"name"`
	Icon     string          `json:"icon"`
}
