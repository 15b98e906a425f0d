package hostws

import (
	"context"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maren/pictocue/internal/ports"
)

// hostReply is what the fake host sends back on the wire.
type hostReply struct {
	ID     string      `json:"id,omitempty"`
	Event  string      `json:"event,omitempty"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func startBridge(t *testing.T) (*Bridge, *websocket.Conn, *Session) {
	t.Helper()
	b := NewBridge("127.0.0.1:0", zap.NewNop())
	require.NoError(t, b.Start())
	t.Cleanup(func() { b.Stop(context.Background()) })

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+b.Addr()+"/bridge", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	select {
	case s := <-b.Sessions():
		return b, conn, s
	case <-time.After(2 * time.Second):
		t.Fatal("no session delivered")
		return nil, nil, nil
	}
}

// serveHost answers selection requests like a well-behaved host plugin.
func serveHost(conn *websocket.Conn, items []ports.TextItem, saveErr string) {
	saved := items
	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		switch req.Method {
		case MethodSelectionCount:
			conn.WriteJSON(hostReply{ID: req.ID, Result: CountResult{Count: len(saved)}})
		case MethodSelectionRead:
			conn.WriteJSON(hostReply{ID: req.ID, Result: ReadResult{Items: saved}})
		case MethodSelectionSave:
			if saveErr != "" {
				conn.WriteJSON(hostReply{ID: req.ID, Error: saveErr})
				continue
			}
			conn.WriteJSON(hostReply{ID: req.ID})
		}
	}
}

func TestSession_SelectionRoundTrip(t *testing.T) {
	_, conn, session := startBridge(t)
	items := []ports.TextItem{{ID: "n1", Text: "a cat"}, {ID: "n2", Text: "hello"}}
	go serveHost(conn, items, "")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := session.SelectionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := session.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	require.NoError(t, session.Save(ctx, got))
}

func TestSession_HostErrorSurfaces(t *testing.T) {
	_, conn, session := startBridge(t)
	go serveHost(conn, []ports.TextItem{{ID: "n1", Text: "x"}}, "selection changed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := session.Save(ctx, []ports.TextItem{{ID: "n1", Text: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selection changed")
}

func TestSession_RunTrigger(t *testing.T) {
	_, conn, session := startBridge(t)
	require.NoError(t, conn.WriteJSON(hostReply{Event: EventRun}))

	select {
	case <-session.Runs():
	case <-time.After(2 * time.Second):
		t.Fatal("run trigger never arrived")
	}
}

func TestSession_ClosedSessionFailsFast(t *testing.T) {
	_, conn, session := startBridge(t)
	conn.Close()

	select {
	case <-session.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session never noticed the disconnect")
	}

	_, err := session.SelectionCount(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSession_ContextTimeout(t *testing.T) {
	_, _, session := startBridge(t) // host never answers

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := session.SelectionCount(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBridge_RefusesSecondSession(t *testing.T) {
	b, _, _ := startBridge(t)

	_, resp, err := websocket.DefaultDialer.Dial("ws://"+b.Addr()+"/bridge", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestBridge_AcceptsReplacementAfterDisconnect(t *testing.T) {
	b, conn, session := startBridge(t)
	conn.Close()
	<-session.Done()

	conn2, _, err := websocket.DefaultDialer.Dial("ws://"+b.Addr()+"/bridge", nil)
	require.NoError(t, err)
	defer conn2.Close()

	select {
	case s := <-b.Sessions():
		require.NotNil(t, s)
	case <-time.After(2 * time.Second):
		t.Fatal("replacement session not delivered")
	}
}
