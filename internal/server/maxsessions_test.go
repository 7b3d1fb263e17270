package server

import (
	"context"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// testContext covers the parts of ssh.Context the middleware touches; the
// embedded interface is nil.
type testContext struct {
	ssh.Context
	parent context.Context
	mu     sync.Mutex
	values map[any]any
	user   string
}

func (c *testContext) Deadline() (time.Time, bool) { return c.parent.Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.parent.Done() }
func (c *testContext) Err() error                  { return c.parent.Err() }
func (c *testContext) User() string                { return c.user }

func (c *testContext) Value(key any) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.parent.Value(key)
}

func (c *testContext) SetValue(key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

type testSession struct {
	ssh.Session
	ctx    *testContext
	remote net.Addr
	pty    *ssh.Pty
	writes []string
}

func newTestSession(parent context.Context, remote net.Addr) *testSession {
	ctx := &testContext{parent: parent, values: map[any]any{}, user: "guest"}
	return &testSession{ctx: ctx, remote: remote}
}

func (s *testSession) Write(p []byte) (int, error) {
	s.writes = append(s.writes, string(p))
	return len(p), nil
}
func (s *testSession) User() string         { return s.ctx.user }
func (s *testSession) RemoteAddr() net.Addr { return s.remote }
func (s *testSession) Context() ssh.Context { return s.ctx }
func (s *testSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	if s.pty == nil {
		return ssh.Pty{}, nil, false
	}
	return *s.pty, nil, true
}

func addr(ip string) net.Addr { return &net.TCPAddr{IP: net.ParseIP(ip), Port: 22} }

func TestMaxSessionsMiddlewareReleasesSlotOnContextDone(t *testing.T) {
	mw := MaxSessionsMiddleware(1, quietLogger())

	blockCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	first := newTestSession(blockCtx, addr("203.0.113.10"))
	second := newTestSession(context.Background(), addr("203.0.113.11"))

	releaseHandler := make(chan struct{})
	handler := mw(func(ssh.Session) {
		<-releaseHandler
	})

	done := make(chan struct{})
	go func() {
		handler(first)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	handler(second)
	if len(second.writes) != 1 || second.writes[0] != "max sessions exceeded\n" {
		t.Fatalf("unexpected overflow writes: %#v", second.writes)
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	close(releaseHandler)
	<-done

	third := newTestSession(context.Background(), addr("203.0.113.12"))
	called := false
	allow := mw(func(ssh.Session) { called = true })
	allow(third)
	if !called {
		t.Fatal("expected slot to be available after context cancellation")
	}
}

func TestMaxSessionsMiddlewareRecoversFromPanicAndReleasesSlot(t *testing.T) {
	mw := MaxSessionsMiddleware(1, quietLogger())
	panicSession := newTestSession(context.Background(), addr("203.0.113.20"))

	mw(func(ssh.Session) { panic("boom") })(panicSession)
	time.Sleep(20 * time.Millisecond)

	followUp := newTestSession(context.Background(), addr("203.0.113.21"))
	called := false
	mw(func(ssh.Session) { called = true })(followUp)
	if !called {
		t.Fatal("expected slot to be released after panic")
	}
}

func TestMaxSessionsMiddlewareContextDoneAndHandlerReturnDoNotDoubleRelease(t *testing.T) {
	mw := MaxSessionsMiddleware(1, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := newTestSession(ctx, addr("203.0.113.30"))
	releaseFirst := make(chan struct{})
	h := mw(func(ssh.Session) { <-releaseFirst })
	doneFirst := make(chan struct{})
	go func() {
		h(first)
		close(doneFirst)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	close(releaseFirst)
	<-doneFirst

	second := newTestSession(context.Background(), addr("203.0.113.31"))
	third := newTestSession(context.Background(), addr("203.0.113.32"))
	releaseSecond := make(chan struct{})
	gate := mw(func(ssh.Session) { <-releaseSecond })
	doneSecond := make(chan struct{})
	go func() {
		gate(second)
		close(doneSecond)
	}()

	time.Sleep(20 * time.Millisecond)
	gate(third)
	if len(third.writes) != 1 || third.writes[0] != "max sessions exceeded\n" {
		t.Fatalf("unexpected overflow writes: %#v", third.writes)
	}

	close(releaseSecond)
	<-doneSecond
}

func TestMaxSessionsMiddlewareSequentialSessionsReuseSlot(t *testing.T) {
	mw := MaxSessionsMiddleware(0, quietLogger())
	calls := 0
	h := mw(func(ssh.Session) { calls++ })
	for i := 0; i < 3; i++ {
		h(newTestSession(context.Background(), addr("203.0.113.40")))
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3 with a clamped limit of one", calls)
	}
}
