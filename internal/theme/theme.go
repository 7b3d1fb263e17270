package theme

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"skinkit/internal/palette"
)

// Variant identifies the thematic palette family.
type Variant string

const (
	VariantOffice   Variant = "office"
	VariantMidnight Variant = "midnight"
	VariantEmber    Variant = "ember"
	VariantMono     Variant = "mono"
	VariantPrint    Variant = "print"
)

// SemanticRoles defines stable semantic color slots used across the UI.
//
// Skins derive every per-state value from these roles rather than from
// variant-specific literals.
type SemanticRoles struct {
	Surface palette.Color
	Text    palette.Color
	Primary palette.Color
	Accent  palette.Color
	Muted   palette.Color
	Danger  palette.Color
	Success palette.Color
	Border  palette.Color
}

// TermProfile describes terminal rendering capabilities derived from TERM.
type TermProfile struct {
	Colors    int
	TrueColor bool
	IsTTY     bool
}

// TermProfileDetector maps a TERM value to a terminal capability profile.
type TermProfileDetector func(term string) TermProfile

// ErrUnknownVariant is returned when a requested variant is not known.
var ErrUnknownVariant = errors.New("unknown theme variant")

var (
	termProfileCache sync.Map
	knownProfiles    = map[string]TermProfile{
		"dumb":           {Colors: 0, TrueColor: false, IsTTY: false},
		"ansi":           {Colors: 8, TrueColor: false, IsTTY: true},
		"linux":          {Colors: 16, TrueColor: false, IsTTY: true},
		"xterm":          {Colors: 16, TrueColor: false, IsTTY: true},
		"xterm-256color": {Colors: 256, TrueColor: false, IsTTY: true},
		"screen":         {Colors: 8, TrueColor: false, IsTTY: true},
		"tmux":           {Colors: 256, TrueColor: false, IsTTY: true},
		"vt100":          {Colors: 8, TrueColor: false, IsTTY: true},
		"xterm-kitty":    {Colors: 1 << 24, TrueColor: true, IsTTY: true},
		"wezterm":        {Colors: 1 << 24, TrueColor: true, IsTTY: true},
	}
)

var roles = map[Variant]SemanticRoles{
	VariantOffice: {
		Surface: palette.MustColor("#F3F6FA"),
		Text:    palette.MustColor("#1B2430"),
		Primary: palette.MustColor("#0B1F3A"),
		Accent:  palette.MustColor("#2F6FD0"),
		Muted:   palette.MustColor("#B8C4D4"),
		Danger:  palette.MustColor("#B3261E"),
		Success: palette.MustColor("#1F6B4A"),
		Border:  palette.MustColor("#7D8FA8"),
	},
	VariantMidnight: {
		Surface: palette.MustColor("#122A4A"),
		Text:    palette.MustColor("#D7E3F4"),
		Primary: palette.MustColor("#0B1F3A"),
		Accent:  palette.MustColor("#4F8FE6"),
		Muted:   palette.MustColor("#2A4C74"),
		Danger:  palette.MustColor("#F28A94"),
		Success: palette.MustColor("#1E9E68"),
		Border:  palette.MustColor("#3E6A9E"),
	},
	VariantEmber: {
		Surface: palette.MustColor("#2D050A"),
		Text:    palette.MustColor("#FCECEE"),
		Primary: palette.MustColor("#7A1421"),
		Accent:  palette.MustColor("#D4AF37"),
		Muted:   palette.MustColor("#8A1A27"),
		Danger:  palette.MustColor("#F4B183"),
		Success: palette.MustColor("#5B9B68"),
		Border:  palette.MustColor("#B95765"),
	},
	VariantMono:  grayscaleRoles(),
	VariantPrint: grayscaleRoles(),
}

var variants = [...]Variant{VariantOffice, VariantMidnight, VariantEmber, VariantMono, VariantPrint}

// Variants lists every known variant in a stable order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants[:])
	return out
}

// ParseVariant normalizes and validates a variant name.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := roles[v]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	return v, nil
}

// Resolve builds a fresh skin for a variant and TERM value.
//
// For lower-capability terminals (xterm-256color and below), Resolve returns
// a monochrome skin unless color is explicitly forced.
//
// Example:
//
//	skin, err := theme.Resolve(theme.VariantMidnight, os.Getenv("TERM"))
//	if err != nil {
//		return err
//	}
//	_ = redirect.SetTarget(skin)
func Resolve(variant Variant, term string) (*Skin, error) {
	return resolveWith(variant, ResolveOptions{Term: term}, detectTermProfile)
}

// ResolveWithDetector resolves a skin using a caller-provided TERM detector.
//
// This is primarily intended for tests and advanced integrations that want
// custom TERM/profile mapping behavior without changing palette logic.
func ResolveWithDetector(variant Variant, opts ResolveOptions, detector TermProfileDetector) (*Skin, error) {
	if detector == nil {
		detector = detectTermProfile
	}
	return resolveWith(variant, opts, detector)
}

// DetectTermProfile maps TERM to a terminal capability profile.
func DetectTermProfile(term string) TermProfile {
	return detectTermProfile(term)
}

// ResolveFromEnv resolves the skin using runtime overrides:
//   - THEME_VARIANT (office|midnight|ember|mono|print)
//   - THEME_FORCE_COLOR (boolean)
//   - THEME_FORCE_MONO (boolean)
//
// The resolved profile and decisions are logged at debug level.
func ResolveFromEnv(defaultVariant Variant, term string) (Variant, *Skin, error) {
	variant := defaultVariant
	if v := strings.TrimSpace(os.Getenv("THEME_VARIANT")); v != "" {
		variant = Variant(strings.ToLower(v))
	}

	forceColor := parseBoolEnv("THEME_FORCE_COLOR")
	forceMono := parseBoolEnv("THEME_FORCE_MONO")

	skin, profile, err := resolveWithProfile(variant, ResolveOptions{
		Term:       term,
		ForceColor: forceColor,
		ForceMono:  forceMono,
	}, detectTermProfile)
	if err != nil {
		return variant, nil, err
	}

	log.Debug("theme resolved",
		"variant", variant, "term", term,
		"colors", profile.Colors, "truecolor", profile.TrueColor, "tty", profile.IsTTY,
		"force_color", forceColor, "force_mono", forceMono, "mono", skin.Mono)

	return variant, skin, nil
}

// ResolveOptions controls how a skin is selected once a TERM profile exists.
type ResolveOptions struct {
	Term       string
	ForceColor bool
	ForceMono  bool
}

func resolveWith(variant Variant, opts ResolveOptions, detector TermProfileDetector) (*Skin, error) {
	skin, _, err := resolveWithProfile(variant, opts, detector)
	return skin, err
}

func resolveWithProfile(variant Variant, opts ResolveOptions, detector TermProfileDetector) (*Skin, TermProfile, error) {
	base, ok := roles[variant]
	if !ok {
		return nil, TermProfile{}, fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
	}

	term := strings.TrimSpace(opts.Term)
	if term == "" {
		term = os.Getenv("TERM")
	}

	profile := detector(term)
	if shouldUseMonochrome(profile, opts) || variant == VariantMono || variant == VariantPrint {
		return newSkin(variant, monochrome(base), true), profile, nil
	}

	return newSkin(variant, base, false), profile, nil
}

// RolesFor returns the semantic roles of a variant.
func RolesFor(variant Variant) (SemanticRoles, bool) {
	r, ok := roles[variant]
	return r, ok
}

func parseBoolEnv(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func shouldUseMonochrome(profile TermProfile, opts ResolveOptions) bool {
	if opts.ForceMono {
		return true
	}
	if opts.ForceColor {
		return false
	}
	if !profile.IsTTY {
		return true
	}
	if !profile.TrueColor && profile.Colors <= 256 {
		return true
	}
	return false
}

func detectTermProfile(term string) TermProfile {
	norm := strings.ToLower(strings.TrimSpace(term))
	if cached, ok := termProfileCache.Load(norm); ok {
		return cached.(TermProfile)
	}

	profile := detectTermProfileUncached(norm)
	termProfileCache.Store(norm, profile)
	return profile
}

func detectTermProfileUncached(norm string) TermProfile {
	if norm == "" {
		return TermProfile{Colors: 0, TrueColor: false, IsTTY: false}
	}

	if p, ok := knownProfiles[norm]; ok {
		return p
	}

	profile := TermProfile{Colors: 16, TrueColor: false, IsTTY: true}
	if strings.Contains(norm, "truecolor") || strings.Contains(norm, "24bit") || strings.Contains(norm, "kitty") || strings.Contains(norm, "wezterm") {
		profile.TrueColor = true
		profile.Colors = 1 << 24
	}
	if strings.Contains(norm, "256") {
		profile.Colors = 256
	}
	if strings.Contains(norm, "dumb") {
		profile = TermProfile{Colors: 0, TrueColor: false, IsTTY: false}
	}
	if strings.Contains(norm, "screen") {
		profile.Colors = 8
	}

	return profile
}

func grayscaleRoles() SemanticRoles {
	return SemanticRoles{
		Surface: palette.MustColor("#1A1A1A"),
		Text:    palette.MustColor("#F2F2F2"),
		Primary: palette.MustColor("#111111"),
		Accent:  palette.MustColor("#FFFFFF"),
		Muted:   palette.MustColor("#4A4A4A"),
		Danger:  palette.MustColor("#E6E6E6"),
		Success: palette.MustColor("#CFCFCF"),
		Border:  palette.MustColor("#8F8F8F"),
	}
}

// monochrome drops chroma from every role, keeping lightness contrast.
func monochrome(in SemanticRoles) SemanticRoles {
	return SemanticRoles{
		Surface: in.Surface.Gray(),
		Text:    in.Text.Gray(),
		Primary: in.Primary.Gray(),
		Accent:  in.Accent.Gray(),
		Muted:   in.Muted.Gray(),
		Danger:  in.Danger.Gray(),
		Success: in.Success.Gray(),
		Border:  in.Border.Gray(),
	}
}
