package model

// Entity types that are not library collections.
const (
	Stories = "stories"
	Spaces  = "spaces"
)

// State is a snapshot of the editor's model.
type State struct {
	Library Library  `json:"library"`
	Stories []*Story `json:"stories"`
}
