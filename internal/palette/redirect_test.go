package palette

import (
	"errors"
	"testing"
)

func TestNewRedirectRejectsNil(t *testing.T) {
	t.Parallel()

	if _, err := NewRedirect(nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("NewRedirect(nil) error = %v, want ErrNilSource", err)
	}

	r, err := NewRedirect(SourceTheme(paintedSource(1)))
	if err != nil {
		t.Fatalf("NewRedirect() error = %v", err)
	}
	if err := r.SetTarget(nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("SetTarget(nil) error = %v, want ErrNilSource", err)
	}
}

func TestRedirectForwardsVerbatim(t *testing.T) {
	t.Parallel()

	src := paintedSource(10)
	r, err := NewRedirect(SourceTheme(src))
	if err != nil {
		t.Fatalf("NewRedirect() error = %v", err)
	}

	for _, s := range States() {
		got := capture(r.Background(StyleButton), r.Border(StyleButton), r.Content(StyleButton), s)
		if want := captureSource(src, s); got != want {
			t.Fatalf("redirect at %v = %+v, want %+v", s, got, want)
		}
	}
	if !r.IsDefault() {
		t.Fatal("redirect must always be default")
	}
}

func TestRedirectSetTargetSeenByNextQuery(t *testing.T) {
	t.Parallel()

	first, second := paintedSource(10), paintedSource(100)
	r, err := NewRedirect(SourceTheme(first))
	if err != nil {
		t.Fatalf("NewRedirect() error = %v", err)
	}
	bound := BindBackground(r, StyleButton)

	before := bound.BackColor1(StateNormal)
	if before != first.BackColor1(StateNormal) {
		t.Fatalf("before retarget = %v, want first source", before)
	}

	notified := 0
	cancel := r.Subscribe(func() { notified++ })
	if err := r.SetTarget(SourceTheme(second)); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	if before == second.BackColor1(StateNormal) {
		t.Fatal("value captured before SetTarget must not change")
	}
	if got := bound.BackColor1(StateNormal); got != second.BackColor1(StateNormal) {
		t.Fatalf("after retarget = %v, want second source", got)
	}
	if notified != 1 {
		t.Fatalf("notifications = %d, want 1", notified)
	}

	cancel()
	if err := r.SetTarget(SourceTheme(first)); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	if notified != 1 {
		t.Fatalf("notifications after cancel = %d, want 1", notified)
	}
}

func TestRedirectRejectsCycles(t *testing.T) {
	t.Parallel()

	a, err := NewRedirect(SourceTheme(paintedSource(1)))
	if err != nil {
		t.Fatalf("NewRedirect() error = %v", err)
	}
	b, err := NewRedirect(a)
	if err != nil {
		t.Fatalf("NewRedirect() error = %v", err)
	}

	if err := a.SetTarget(a); !errors.Is(err, ErrRedirectCycle) {
		t.Fatalf("self target error = %v, want ErrRedirectCycle", err)
	}
	if err := a.SetTarget(b); !errors.Is(err, ErrRedirectCycle) {
		t.Fatalf("indirect cycle error = %v, want ErrRedirectCycle", err)
	}
	if a.Target() == Theme(b) {
		t.Fatal("rejected SetTarget must leave the target unchanged")
	}
}

func TestBindingsFollowStyle(t *testing.T) {
	t.Parallel()

	button, header := paintedSource(1), paintedSource(50)
	theme := staticTheme{def: button, styles: map[Style]Source{StyleHeader: header}}

	if got := BindContent(theme, StyleHeader).ContentTextColor1(StatePressed); got != header.ContentTextColor1(StatePressed) {
		t.Fatalf("header binding = %v, want header source", got)
	}
	if got := BindBorder(theme, StyleButton).BorderWidth(StateTracking); got != button.BorderWidth(StateTracking) {
		t.Fatalf("button binding = %d, want button source", got)
	}
}
