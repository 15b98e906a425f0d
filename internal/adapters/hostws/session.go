package hostws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/maren/pictocue/internal/ports"
)

// ErrNoSession is returned when the host connection is gone: calls in flight
// fail with it, and new calls fail immediately.
var ErrNoSession = errors.New("host session closed")

// Session is one live host connection. It implements ports.ContentSource by
// issuing requests over the websocket and resolving replies by ID. All
// methods are safe for concurrent use; writes to the socket are serialized.
type Session struct {
	conn *websocket.Conn
	log  *zap.Logger

	writeMu sync.Mutex // gorilla allows one concurrent writer

	mu      sync.Mutex
	pending map[string]chan Message

	runs      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, log *zap.Logger) *Session {
	return &Session{
		conn:    conn,
		log:     log,
		pending: make(map[string]chan Message),
		runs:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Runs delivers one signal per host-initiated run trigger. Triggers arriving
// while a cycle is pending coalesce into a single signal.
func (s *Session) Runs() <-chan struct{} {
	return s.runs
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close tears the session down and fails every pending call.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
		s.mu.Lock()
		for id, ch := range s.pending {
			delete(s.pending, id)
			close(ch)
		}
		s.mu.Unlock()
	})
}

// readLoop dispatches incoming messages until the connection drops.
func (s *Session) readLoop() {
	defer s.Close()
	for {
		var msg Message
		if err := s.conn.ReadJSON(&msg); err != nil {
			select {
			case <-s.done:
			default:
				s.log.Info("host session ended", zap.Error(err))
			}
			return
		}
		if msg.Event == EventRun {
			select {
			case s.runs <- struct{}{}:
			default: // a run is already queued
			}
			continue
		}
		s.mu.Lock()
		ch, ok := s.pending[msg.ID]
		if ok {
			delete(s.pending, msg.ID)
		}
		s.mu.Unlock()
		if !ok {
			s.log.Debug("reply for unknown request", zap.String("id", msg.ID))
			continue
		}
		ch <- msg
	}
}

// call sends one request and waits for its reply, honoring ctx.
func (s *Session) call(ctx context.Context, method string, params, out interface{}) error {
	select {
	case <-s.done:
		return ErrNoSession
	default:
	}

	id := uuid.NewString()
	ch := make(chan Message, 1)
	s.mu.Lock()
	s.pending[id] = ch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}()

	s.writeMu.Lock()
	err := s.conn.WriteJSON(Request{ID: id, Method: method, Params: params})
	s.writeMu.Unlock()
	if err != nil {
		return errors.Wrapf(err, "send %s", method)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case msg, ok := <-ch:
		if !ok {
			return ErrNoSession
		}
		if msg.Error != "" {
			return errors.Newf("host rejected %s: %s", method, msg.Error)
		}
		if out != nil && len(msg.Result) > 0 {
			if err := json.Unmarshal(msg.Result, out); err != nil {
				return errors.Wrapf(err, "decode %s result", method)
			}
		}
		return nil
	}
}

// SelectionCount implements ports.ContentSource.
func (s *Session) SelectionCount(ctx context.Context) (int, error) {
	var res CountResult
	if err := s.call(ctx, MethodSelectionCount, nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

// Read implements ports.ContentSource.
func (s *Session) Read(ctx context.Context) ([]ports.TextItem, error) {
	var res ReadResult
	if err := s.call(ctx, MethodSelectionRead, nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// Save implements ports.ContentSource. The host applies the batch
// atomically; any error means nothing was persisted.
func (s *Session) Save(ctx context.Context, items []ports.TextItem) error {
	return s.call(ctx, MethodSelectionSave, SaveParams{Items: items}, nil)
}

// NotifySummary pushes a cycle-finished event to the host. Best-effort.
func (s *Session) NotifySummary(ev SummaryEvent) error {
	ev.Event = EventSummary
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(ev)
}
