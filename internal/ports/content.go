// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "context"

// TextItem is one selected text element exposed by the design host.
// ID is the host's node identifier and must be passed back unchanged on save;
// Text is the plain-text content of the element.
type TextItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ContentSource is the host-provided text-content collaborator.
// Read returns the currently selected text items; mutating an item's Text and
// calling Save persists exactly those items back to the host document.
//
// Failure semantics: Save is all-or-nothing on the host side. Callers must
// not issue partial saves — either every item in the batch is persisted or
// the host document stays in its pre-call state.
type ContentSource interface {
	// SelectionCount returns the number of currently selected text elements.
	// Zero is a valid answer (idle state), not an error.
	SelectionCount(ctx context.Context) (int, error)

	// Read fetches the selected text items from the host.
	Read(ctx context.Context) ([]TextItem, error)

	// Save persists the items' final text back to the host document.
	Save(ctx context.Context, items []TextItem) error
}
