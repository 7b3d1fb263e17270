package server

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

// MaxSessionsMiddleware caps concurrent sessions at limit. A slot is freed
// when the handler returns or panics, or when the session context ends,
// whichever happens first.
func MaxSessionsMiddleware(limit int, logger *log.Logger) wish.Middleware {
	if limit <= 0 {
		limit = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	slots := make(chan struct{}, limit)

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			select {
			case slots <- struct{}{}:
			default:
				logger.Warn("max sessions exceeded", "user", s.User(), "limit", limit)
				_, _ = s.Write([]byte("max sessions exceeded\n"))
				return
			}

			var once sync.Once
			release := func() { once.Do(func() { <-slots }) }
			done := make(chan struct{})
			defer close(done)

			go func() {
				select {
				case <-s.Context().Done():
					release()
				case <-done:
				}
			}()

			defer func() {
				release()
				if r := recover(); r != nil {
					logger.Error("session panic", "user", s.User(), "panic", r)
				}
			}()
			next(s)
		}
	}
}
