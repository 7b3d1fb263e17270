package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"skinkit/internal/control"
	"skinkit/internal/palette"
	"skinkit/internal/persist"
	"skinkit/internal/render"
	"skinkit/internal/theme"
)

type skinFlags struct {
	variant    string
	term       string
	forceColor bool
	forceMono  bool
}

func (f *skinFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.variant, "variant", string(theme.VariantOffice), "skin variant")
	fs.StringVar(&f.term, "term", os.Getenv("TERM"), "TERM value used for profile detection")
	fs.BoolVar(&f.forceColor, "force-color", false, "keep colors on limited terminals")
	fs.BoolVar(&f.forceMono, "force-mono", false, "always use the grayscale skin")
}

func (f *skinFlags) resolve() (*theme.Skin, error) {
	v, err := theme.ParseVariant(f.variant)
	if err != nil {
		return nil, err
	}
	return theme.ResolveWithDetector(v, theme.ResolveOptions{Term: f.term, ForceColor: f.forceColor, ForceMono: f.forceMono}, nil)
}

func runList(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(out)
	var sf skinFlags
	sf.register(fs)
	stateName := fs.String("state", "normal", "state to resolve")
	if err := fs.Parse(args); err != nil {
		return err
	}
	state, err := palette.ParseState(*stateName)
	if err != nil {
		return err
	}
	skin, err := sf.resolve()
	if err != nil {
		return err
	}

	swatches := isTerminal(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "STYLE\tBACK\tBORDER\tTEXT\tDRAW\n")
	for _, style := range skin.Styles() {
		triple, err := palette.NewTriple(skin, style, style, style, nil)
		if err != nil {
			return err
		}
		r := render.Flatten(triple, state, skin)
		name := string(style)
		if swatches {
			name = render.Lipgloss(r, nil).Render(name)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, hexOrDash(r.Back1), hexOrDash(r.BorderColor), hexOrDash(r.Text), drawFlags(r))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	mono := ""
	if skin.Mono {
		mono = " (grayscale)"
	}
	fmt.Fprintf(out, "\n%s at %s%s\n", skin.Variant, state, mono)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func hexOrDash(c palette.Color) string {
	if c.IsEmpty() {
		return "-"
	}
	return c.Hex()
}

func drawFlags(r render.Resolved) string {
	flags := []byte("----")
	if r.DrawBack {
		flags[0] = 'b'
	}
	if r.DrawBorder {
		flags[1] = 'r'
	}
	if r.DrawContent {
		flags[2] = 'c'
	}
	if r.DrawFocus {
		flags[3] = 'f'
	}
	return string(flags)
}

// loadSet reads path and restores it into a fresh control set, which is how
// the preview service consumes the file.
func loadSet(path string) (*control.Set, persist.Document, error) {
	if path == "" {
		return nil, persist.Document{}, errors.New("-skin is required")
	}
	doc, err := persist.Read(path)
	if err != nil {
		return nil, persist.Document{}, err
	}
	skin, err := theme.ResolveWithDetector(theme.VariantOffice, theme.ResolveOptions{ForceColor: true}, nil)
	if err != nil {
		return nil, persist.Document{}, err
	}
	set, err := control.NewSet(skin, nil)
	if err != nil {
		return nil, persist.Document{}, err
	}
	if err := set.Restore(doc); err != nil {
		return nil, persist.Document{}, err
	}
	return set, doc, nil
}

func runCheck(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(out)
	path := fs.String("skin", "", "skin customization file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, doc, err := loadSet(*path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok, %d elements, %d groups\n", *path, len(doc.Elements), len(doc.Groups))
	return nil
}

func runCompact(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("compact", flag.ContinueOnError)
	fs.SetOutput(out)
	path := fs.String("skin", "", "skin customization file")
	dryRun := fs.Bool("n", false, "report without writing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	set, before, err := loadSet(*path)
	if err != nil {
		return err
	}
	after := set.Capture()
	fmt.Fprintf(out, "%s: %d -> %d elements, %d -> %d groups\n", *path, len(before.Elements), len(after.Elements), len(before.Groups), len(after.Groups))
	if *dryRun {
		return nil
	}
	return persist.Write(*path, after)
}
