// Package skinapi serves resolved skins and skin document validation as JSON
// over HTTP, for tooling that cannot speak SSH.
package skinapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"skinkit/internal/control"
	"skinkit/internal/palette"
	"skinkit/internal/persist"
	"skinkit/internal/render"
	"skinkit/internal/theme"
)

const maxDocumentBytes = 256 * 1024

// ResolveFunc builds the skin for a variant.
type ResolveFunc func(theme.Variant, theme.ResolveOptions) (*theme.Skin, error)

type Handler struct {
	resolve ResolveFunc
	logger  *log.Logger
}

// NewHandler returns a handler resolving through resolve, or through the
// TERM detector when resolve is nil.
func NewHandler(resolve ResolveFunc, logger *log.Logger) *Handler {
	if resolve == nil {
		resolve = func(v theme.Variant, opts theme.ResolveOptions) (*theme.Skin, error) {
			return theme.ResolveWithDetector(v, opts, nil)
		}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{resolve: resolve, logger: logger}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/variants", h.listVariants)
	mux.HandleFunc("/v1/skins/check", h.checkDocument)
	mux.HandleFunc("/v1/skins/{variant}", h.resolveSkin)
	return h.instrument(mux)
}

func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		observer := &statusObserver{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(observer, r)
		h.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", observer.status,
			"duration", time.Since(started),
			"remote", r.RemoteAddr,
		)
	})
}

type statusObserver struct {
	http.ResponseWriter
	status int
}

func (o *statusObserver) WriteHeader(status int) {
	o.status = status
	o.ResponseWriter.WriteHeader(status)
}

type variantsResponse struct {
	Variants []theme.Variant `json:"variants"`
	Default  theme.Variant   `json:"default"`
}

func (h *Handler) listVariants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.reject(w, r, &APIError{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed", Status: http.StatusMethodNotAllowed})
		return
	}
	writeJSON(w, http.StatusOK, variantsResponse{Variants: theme.Variants(), Default: theme.VariantOffice})
}

// StyleLook is one style of a skin flattened at a state.
type StyleLook struct {
	Style       palette.Style `json:"style"`
	DrawBack    bool          `json:"drawBack"`
	Back        string        `json:"back,omitempty"`
	Back2       string        `json:"back2,omitempty"`
	DrawBorder  bool          `json:"drawBorder"`
	Border      string        `json:"border,omitempty"`
	BorderWidth int           `json:"borderWidth"`
	DrawContent bool          `json:"drawContent"`
	DrawFocus   bool          `json:"drawFocus"`
	Text        string        `json:"text,omitempty"`
}

type skinResponse struct {
	Variant theme.Variant `json:"variant"`
	State   palette.State `json:"state"`
	Mono    bool          `json:"mono"`
	Styles  []StyleLook   `json:"styles"`
}

func (h *Handler) resolveSkin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.reject(w, r, &APIError{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed", Status: http.StatusMethodNotAllowed})
		return
	}
	query := r.URL.Query()

	variant, err := theme.ParseVariant(r.PathValue("variant"))
	if err != nil {
		h.reject(w, r, err)
		return
	}
	state := palette.StateNormal
	if raw := query.Get("state"); raw != "" {
		if state, err = palette.ParseState(raw); err != nil {
			h.reject(w, r, err)
			return
		}
	}
	opts := theme.ResolveOptions{Term: query.Get("term")}
	if opts.ForceColor, err = queryBool(query.Get("force_color")); err != nil {
		h.reject(w, r, err)
		return
	}
	if opts.ForceMono, err = queryBool(query.Get("force_mono")); err != nil {
		h.reject(w, r, err)
		return
	}

	skin, err := h.resolve(variant, opts)
	if err != nil {
		h.reject(w, r, err)
		return
	}
	looks, err := Looks(skin, state)
	if err != nil {
		h.reject(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, skinResponse{Variant: skin.Variant, State: state, Mono: skin.Mono, Styles: looks})
}

// Looks flattens every style of skin at state.
func Looks(skin *theme.Skin, state palette.State) ([]StyleLook, error) {
	var looks []StyleLook
	for _, style := range skin.Styles() {
		triple, err := palette.NewTriple(skin, style, style, style, nil)
		if err != nil {
			return nil, err
		}
		res := render.Flatten(triple, state, skin)
		looks = append(looks, StyleLook{
			Style:       style,
			DrawBack:    res.DrawBack,
			Back:        hex(res.Back1),
			Back2:       hex(res.Back2),
			DrawBorder:  res.DrawBorder,
			Border:      hex(res.BorderColor),
			BorderWidth: res.BorderWidth,
			DrawContent: res.DrawContent,
			DrawFocus:   res.DrawFocus,
			Text:        hex(res.Text),
		})
	}
	return looks, nil
}

type checkResponse struct {
	Elements int              `json:"elements"`
	Groups   int              `json:"groups"`
	Compact  persist.Document `json:"compact"`
}

// checkDocument restores the posted document into a fresh control set and
// answers with its compacted form.
func (h *Handler) checkDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.reject(w, r, &APIError{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed", Status: http.StatusMethodNotAllowed})
		return
	}

	doc, err := persist.Decode(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		if mapped := mapError(err); mapped.Status == http.StatusInternalServerError {
			err = &APIError{Code: "BAD_JSON", Message: "request body must be a skin document", Status: http.StatusBadRequest, Cause: err}
		}
		h.reject(w, r, err)
		return
	}

	skin, err := h.resolve(theme.VariantOffice, theme.ResolveOptions{ForceColor: true})
	if err != nil {
		h.reject(w, r, err)
		return
	}
	set, err := control.NewSet(skin, nil)
	if err != nil {
		h.reject(w, r, err)
		return
	}
	if err := set.Restore(doc); err != nil {
		h.reject(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{Elements: len(doc.Elements), Groups: len(doc.Groups), Compact: set.Capture()})
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error) {
	mapped := mapError(err)
	h.logger.Warn("http request rejected", "method", r.Method, "path", r.URL.Path, "code", mapped.Code, "err", err)
	writeJSON(w, mapped.Status, mapped)
}

func queryBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, &APIError{Code: "BAD_QUERY", Message: "boolean query parameters take true or false", Status: http.StatusBadRequest, Cause: err}
	}
	return v, nil
}

func hex(c palette.Color) string {
	if c.IsEmpty() {
		return ""
	}
	return c.Hex()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Serve runs the API on addr until ctx is done.
func Serve(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("http startup", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
