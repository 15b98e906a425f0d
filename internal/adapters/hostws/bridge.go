package hostws

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Bridge is the local websocket server the host plugin connects to.
// One session at a time: a second connection attempt is refused with 409
// so two plugin instances cannot interleave saves on the same document.
type Bridge struct {
	log      *zap.Logger
	upgrader websocket.Upgrader
	srv      *http.Server
	ln       net.Listener

	mu      sync.Mutex
	session *Session

	sessions chan *Session
	stopOnce sync.Once
}

// NewBridge creates a bridge listening on addr (e.g. "127.0.0.1:9412").
func NewBridge(addr string, log *zap.Logger) *Bridge {
	b := &Bridge{
		log: log,
		upgrader: websocket.Upgrader{
			// The plugin UI runs inside the host's own web view; its
			// Origin header is the host's, not ours.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		sessions: make(chan *Session, 1),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/bridge", b.handleBridge)
	b.srv = &http.Server{Addr: addr, Handler: mux}
	return b
}

// Start binds the listener and serves in the background.
func (b *Bridge) Start() error {
	ln, err := net.Listen("tcp", b.srv.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", b.srv.Addr)
	}
	b.ln = ln
	go func() {
		if err := b.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.log.Error("bridge server failed", zap.Error(err))
		}
	}()
	b.log.Info("bridge listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address, useful when Start was given port 0.
func (b *Bridge) Addr() string {
	if b.ln == nil {
		return b.srv.Addr
	}
	return b.ln.Addr().String()
}

// Sessions delivers each accepted host session, one at a time.
func (b *Bridge) Sessions() <-chan *Session {
	return b.sessions
}

// Stop shuts the server down and closes any live session. Idempotent.
func (b *Bridge) Stop(ctx context.Context) error {
	var err error
	b.stopOnce.Do(func() {
		b.mu.Lock()
		if b.session != nil {
			b.session.Close()
			b.session = nil
		}
		b.mu.Unlock()
		err = b.srv.Shutdown(ctx)
	})
	return err
}

func (b *Bridge) handleBridge(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	if b.session != nil {
		select {
		case <-b.session.Done():
			b.session = nil // stale session, replace it
		default:
			b.mu.Unlock()
			http.Error(w, "a host session is already active", http.StatusConflict)
			return
		}
	}
	b.mu.Unlock()

	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s := newSession(conn, b.log)
	b.mu.Lock()
	b.session = s
	b.mu.Unlock()

	b.log.Info("host connected", zap.String("remote", r.RemoteAddr))
	go s.readLoop()
	b.sessions <- s
}
