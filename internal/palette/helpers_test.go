package palette

// testSource bundles three value providers into one Source.
type testSource struct {
	*BackValues
	*BorderValues
	*ContentValues
}

func newTestSource(fallback FallbackOrder) testSource {
	return testSource{
		BackValues:    NewBackValues(nil, fallback, nil),
		BorderValues:  NewBorderValues(nil, fallback, nil),
		ContentValues: NewContentValues(nil, fallback, nil),
	}
}

// paintedSource stores distinct values for every state, derived from seed.
func paintedSource(seed uint8) testSource {
	src := newTestSource(FallbackOrder{})
	for _, s := range States() {
		n := seed + uint8(s)*3
		src.BackValues.SetSpec(s, BackSpec{
			Draw:       TriTrue,
			Color1:     Ptr(RGB(n, 0, 0)),
			Color2:     Ptr(RGB(0, n, 0)),
			ColorStyle: Ptr(ColorLinear),
			ColorAngle: Ptr(float32(n)),
		})
		src.BorderValues.SetSpec(s, BorderSpec{
			Draw:     TriTrue,
			Color1:   Ptr(RGB(0, 0, n)),
			Width:    Ptr(int(n % 4)),
			Rounding: Ptr(float32(n % 7)),
		})
		src.ContentValues.SetSpec(s, ContentSpec{
			Draw:       TriTrue,
			DrawFocus:  TriFalse,
			TextColor1: Ptr(RGB(n, n, 0)),
			Font:       &Font{Family: "mono", Size: float32(n)},
			Padding:    Ptr(Pad(int(n % 3))),
		})
	}
	return src
}

// staticTheme answers every style with the same source unless mapped.
type staticTheme struct {
	def    Source
	styles map[Style]Source
}

func (t staticTheme) pick(s Style) Source {
	if src, ok := t.styles[s]; ok {
		return src
	}
	return t.def
}

func (t staticTheme) Background(s Style) Background { return t.pick(s) }
func (t staticTheme) Border(s Style) Border         { return t.pick(s) }
func (t staticTheme) Content(s Style) Content       { return t.pick(s) }

// snapshot captures every accessor for one state, for equality checks.
type snapshot struct {
	backDraw     TriBool
	back1, back2 Color
	backStyle    ColorStyle
	backAngle    float32
	borderDraw   TriBool
	border1      Color
	width        int
	rounding     float32
	contentDraw  TriBool
	focus        TriBool
	text1        Color
	font         Font
	padding      Padding
}

func capture(b Background, br Border, c Content, s State) snapshot {
	return snapshot{
		backDraw:    b.BackDraw(s),
		back1:       b.BackColor1(s),
		back2:       b.BackColor2(s),
		backStyle:   b.BackColorStyle(s),
		backAngle:   b.BackColorAngle(s),
		borderDraw:  br.BorderDraw(s),
		border1:     br.BorderColor1(s),
		width:       br.BorderWidth(s),
		rounding:    br.BorderRounding(s),
		contentDraw: c.ContentDraw(s),
		focus:       c.ContentDrawFocus(s),
		text1:       c.ContentTextColor1(s),
		font:        c.ContentFont(s),
		padding:     c.ContentPadding(s),
	}
}

func captureSource(src Source, s State) snapshot { return capture(src, src, src, s) }

func captureTriple(t *Triple, s State) snapshot { return capture(t.Back(), t.Border(), t.Content(), s) }
