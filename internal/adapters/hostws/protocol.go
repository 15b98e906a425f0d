// Package hostws bridges pictocue and the design host over a local
// websocket. The host plugin connects to /bridge as the single active
// session; pictocue drives the selection API by sending JSON requests over
// that session and correlating the host's replies by ID. The host, in turn,
// pushes "run" events when the user asks for an annotation pass.
package hostws

import (
	"encoding/json"

	"github.com/maren/pictocue/internal/domain/annotate"
	"github.com/maren/pictocue/internal/ports"
)

// Method names for pictocue-to-host requests.
const (
	MethodSelectionCount = "selection.count"
	MethodSelectionRead  = "selection.read"
	MethodSelectionSave  = "selection.save"
)

// Event names for unsolicited messages.
const (
	EventRun     = "run"     // host → pictocue: start an annotation cycle
	EventSummary = "summary" // pictocue → host: cycle finished
)

// Request is the wire format for pictocue-to-host messages.
type Request struct {
	ID     string      `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params,omitempty"`
}

// Message is the wire format for host-to-pictocue traffic: either a reply
// (ID set) or an event (Event set).
type Message struct {
	ID     string          `json:"id,omitempty"`
	Event  string          `json:"event,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// CountResult is the reply payload for selection.count.
type CountResult struct {
	Count int `json:"count"`
}

// ReadResult is the reply payload for selection.read.
type ReadResult struct {
	Items []ports.TextItem `json:"items"`
}

// SaveParams is the request payload for selection.save.
type SaveParams struct {
	Items []ports.TextItem `json:"items"`
}

// SummaryEvent tells the host how a cycle ended.
type SummaryEvent struct {
	Event string          `json:"event"`
	OK    bool            `json:"ok"`
	Error string          `json:"error,omitempty"`
	Items int             `json:"items"`
	Stats *annotate.Stats `json:"stats,omitempty"`
}
