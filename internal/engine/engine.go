// Package engine implements the per-session input state machine. A
// Session receives raw key events from a platform front end and exposes
// preedit, candidate, and commit state in return. Sessions are not safe
// for concurrent use; give each editing session its own.
package engine

import (
	"log/slog"
	"strings"

	"chime/internal/codepoint"
	"chime/internal/gtab"
	"chime/internal/phonetic"
	"chime/internal/photab"
	"chime/internal/phrase"
	"chime/internal/tables"
	"chime/internal/zhconv"
)

// Method selects how keystrokes compose characters.
type Method int

const (
	MethodPhonetic Method = iota
	MethodPhrase
	MethodGtab
	MethodCodePoint
)

func (m Method) String() string {
	switch m {
	case MethodPhrase:
		return "phrase"
	case MethodGtab:
		return "gtab"
	case MethodCodePoint:
		return "codepoint"
	default:
		return "phonetic"
	}
}

// Result tags what a key event did.
type Result int

const (
	// Ignored: the key is not ours; the host should handle it.
	Ignored Result = iota
	// Absorbed: consumed without visible output change.
	Absorbed
	// Preedit: the composition display changed.
	Preedit
	// Committed: text is ready in the commit buffer.
	Committed
)

// Control keycodes recognized by ProcessKey.
const (
	KeyBackspace = 0x08
	KeyEnter     = 0x0D
	KeyEscape    = 0x1B
)

// Key is one key event from the platform front end.
type Key struct {
	Code      uint32 // platform keycode; control keys use the codes above
	Char      rune   // character produced, 0 for non-character keys
	Modifiers uint32
}

// Feedback identifies a haptic/audio feedback event.
type Feedback int

const (
	FeedbackKeyPress Feedback = iota
	FeedbackKeyDelete
	FeedbackKeyEnter
	FeedbackKeySpace
	FeedbackCandidate
	FeedbackModeChange
	FeedbackError
)

// Config carries session construction options. Registry is required for
// phonetic and table methods; everything else has usable defaults.
type Config struct {
	Registry *tables.Registry
	Logger   *slog.Logger

	Layout   phonetic.Layout
	PageSize int    // candidates per page, 1..10, default 10
	SelKeys  string // selection keys, default "1234567890"

	Variant          zhconv.Variant // script applied to committed text
	SmartPunctuation bool
	ExactBig5        bool

	// Feedback, when set, is called for every feedback event.
	Feedback func(Feedback)
	// Usage, when set, records committed phrases.
	Usage *phrase.Store
}

// Session is one editing session's input context.
type Session struct {
	log *slog.Logger
	reg *tables.Registry

	method  Method
	layout  phonetic.Layout
	chinese bool
	variant zhconv.Variant

	smartPunct bool
	quoteState quoteState
	feedback   func(Feedback)
	usage      *phrase.Store

	// Phonetic composition.
	comps phonetic.Components

	// Generic table composition.
	gt     *gtab.Table
	gtKeys []int

	// Code-point composition.
	cp codepoint.Composer

	// Phrase buffer; delegates per-character edits back to the
	// phonetic state.
	ph *phrase.Composer

	preedit  string
	commit   string
	cands    []string
	page     int
	pageSize int
	selKeys  string
}

// NewSession builds a session in phonetic mode with Chinese input on.
func NewSession(cfg Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.PageSize < 1 || cfg.PageSize > 10 {
		cfg.PageSize = 10
	}
	if cfg.SelKeys == "" {
		cfg.SelKeys = "1234567890"
	}
	s := &Session{
		log:        cfg.Logger,
		reg:        cfg.Registry,
		layout:     cfg.Layout,
		chinese:    true,
		variant:    cfg.Variant,
		smartPunct: cfg.SmartPunctuation,
		feedback:   cfg.Feedback,
		usage:      cfg.Usage,
		pageSize:   cfg.PageSize,
		selKeys:    cfg.SelKeys,
	}
	s.cp.SetExact(cfg.ExactBig5)
	s.ph = phrase.New(charDelegate{s})
	return s
}

// charDelegate routes phrase-mode character edits to the session's
// phonetic state.
type charDelegate struct{ s *Session }

func (d charDelegate) Pending() bool   { return !d.s.comps.Empty() }
func (d charDelegate) Backspace() bool { return d.s.phoneticBackspace() }

func (s *Session) emit(f Feedback) {
	if s.feedback != nil {
		s.feedback(f)
	}
}

// Reset clears all composition state. Loaded tables, method, layout and
// settings survive.
func (s *Session) Reset() {
	s.comps = phonetic.Components{}
	s.gtKeys = s.gtKeys[:0]
	s.cp.Reset()
	s.ph.Reset()
	s.preedit = ""
	s.cands = nil
	s.page = 0
}

// SetMethod switches the composition method and resets.
func (s *Session) SetMethod(m Method) {
	s.method = m
	s.Reset()
	s.emit(FeedbackModeChange)
}

// Method returns the active composition method.
func (s *Session) Method() Method { return s.method }

// SetLayout switches the phonetic keyboard layout and resets.
func (s *Session) SetLayout(l phonetic.Layout) bool {
	if !l.Valid() {
		return false
	}
	s.layout = l
	s.Reset()
	return true
}

// Layout returns the active phonetic keyboard layout.
func (s *Session) Layout() phonetic.Layout { return s.layout }

// UseGtab attaches a loaded table and switches to the table method.
func (s *Session) UseGtab(t *gtab.Table) {
	s.gt = t
	s.SetMethod(MethodGtab)
}

// GtabName returns the attached table's display name, or "".
func (s *Session) GtabName() string {
	if s.gt == nil {
		return ""
	}
	return s.gt.Name
}

// SetCodePointMode selects Unicode or Big5 interpretation for the
// code-point method and clears its digit buffer.
func (s *Session) SetCodePointMode(m codepoint.Mode) { s.cp.SetMode(m) }

// ToggleChineseMode flips between composition and passthrough, resetting
// composition state, and returns the new mode.
func (s *Session) ToggleChineseMode() bool {
	s.chinese = !s.chinese
	s.Reset()
	s.emit(FeedbackModeChange)
	return s.chinese
}

// ChineseMode reports whether composition is active.
func (s *Session) ChineseMode() bool { return s.chinese }

// SetVariant selects the script for committed text and candidates. A
// candidate list already showing is converted in place.
func (s *Session) SetVariant(v zhconv.Variant) {
	s.variant = v
	s.convertCandidates()
}

// Variant returns the commit script.
func (s *Session) Variant() zhconv.Variant { return s.variant }

// ToggleVariant flips between traditional and simplified output.
func (s *Session) ToggleVariant() zhconv.Variant {
	if s.variant == zhconv.Traditional {
		s.variant = zhconv.Simplified
	} else {
		s.variant = zhconv.Traditional
	}
	s.convertCandidates()
	return s.variant
}

// SetSmartPunctuation enables full-width punctuation substitution in
// passthrough positions.
func (s *Session) SetSmartPunctuation(on bool) {
	s.smartPunct = on
	if !on {
		s.quoteState = quoteState{}
	}
}

// Preedit returns the current composition display.
func (s *Session) Preedit() string { return s.preedit }

// PreeditCursor returns the cursor position in bytes; the cursor always
// sits at the end of the preedit.
func (s *Session) PreeditCursor() int { return len(s.preedit) }

// Commit returns pending committed text.
func (s *Session) Commit() string { return s.commit }

// ClearCommit discards the commit buffer after the host has read it.
func (s *Session) ClearCommit() { s.commit = "" }

// CandidateCount returns the total number of candidates.
func (s *Session) CandidateCount() int { return len(s.cands) }

// Candidate returns the candidate at an absolute index, or "".
func (s *Session) Candidate(i int) string {
	if i < 0 || i >= len(s.cands) {
		return ""
	}
	return s.cands[i]
}

// Page returns the current candidate page.
func (s *Session) Page() int { return s.page }

// PageSize returns the configured candidates per page.
func (s *Session) PageSize() int { return s.pageSize }

// CurrentPageSize returns how many candidates the current page holds.
func (s *Session) CurrentPageSize() int {
	n := len(s.cands) - s.page*s.pageSize
	if n < 0 {
		return 0
	}
	if n > s.pageSize {
		return s.pageSize
	}
	return n
}

// PageUp moves one page toward the start. No-op on the first page.
func (s *Session) PageUp() bool {
	if s.page == 0 {
		return false
	}
	s.page--
	return true
}

// PageDown moves one page forward. No-op on the last page.
func (s *Session) PageDown() bool {
	if len(s.cands) == 0 {
		return false
	}
	maxPage := (len(s.cands) - 1) / s.pageSize
	if s.page >= maxPage {
		return false
	}
	s.page++
	return true
}

// SelectCandidate commits the candidate at a page-relative index.
func (s *Session) SelectCandidate(idx int) Result {
	abs := s.page*s.pageSize + idx
	if idx < 0 || abs >= len(s.cands) {
		return Ignored
	}
	return s.takeCandidate(s.cands[abs])
}

// takeCandidate routes a chosen candidate: phrase mode accumulates it,
// every other mode commits it.
func (s *Session) takeCandidate(text string) Result {
	s.emit(FeedbackCandidate)
	if s.method == MethodPhrase {
		s.ph.Append(text)
		s.comps = phonetic.Components{}
		s.cands = nil
		s.page = 0
		s.updatePreedit()
		return Preedit
	}
	s.commitText(text)
	s.Reset()
	return Committed
}

// convertCandidates rewrites the candidate list in the configured
// script. Tables carry traditional forms, so only the simplified
// variant converts.
func (s *Session) convertCandidates() {
	if s.variant != zhconv.Simplified {
		return
	}
	for i, c := range s.cands {
		s.cands[i] = zhconv.ToSimplified(c)
	}
}

// commitText places text in the commit buffer, converted to the
// configured script.
func (s *Session) commitText(text string) {
	if s.variant == zhconv.Simplified {
		text = zhconv.ToSimplified(text)
	}
	s.commitRaw(text)
}

// commitRaw places text in the commit buffer without script conversion.
// Code-point entry and verbatim preedit commits carry exactly what the
// user composed.
func (s *Session) commitRaw(text string) {
	s.commit = text
	s.log.Debug("commit", "text", text, "method", s.method.String())
}

func (s *Session) hasComposition() bool {
	return !s.comps.Empty() || len(s.cands) > 0 || len(s.gtKeys) > 0 ||
		s.cp.Len() > 0 || !s.ph.Empty()
}

// ProcessKey feeds one key event through the state machine.
func (s *Session) ProcessKey(k Key) Result {
	if !s.chinese {
		return Ignored
	}

	// Candidate selection works whenever candidates are showing,
	// regardless of method.
	if len(s.cands) > 0 && k.Char > 0 && k.Char < 128 {
		if pos := strings.IndexRune(s.selKeys, k.Char); pos >= 0 {
			abs := s.page*s.pageSize + pos
			if abs < len(s.cands) {
				return s.takeCandidate(s.cands[abs])
			}
		}
	}

	if k.Code == KeyEscape || k.Char == KeyEscape {
		if s.hasComposition() {
			s.Reset()
			return Absorbed
		}
		return Ignored
	}

	if k.Code == KeyEnter || k.Char == KeyEnter {
		return s.handleEnter()
	}

	if k.Code == KeyBackspace || k.Char == KeyBackspace {
		return s.handleBackspace()
	}

	if k.Char > 0 && k.Char < 128 {
		res := s.dispatchChar(byte(k.Char))
		if res == Ignored && s.smartPunct {
			if out, ok := s.quoteState.convert(byte(k.Char)); ok {
				s.commitText(out)
				return Committed
			}
		}
		return res
	}

	return Ignored
}

func (s *Session) handleEnter() Result {
	s.emit(FeedbackKeyEnter)
	switch s.method {
	case MethodPhrase:
		if text := s.ph.Commit(); text != "" {
			s.commitText(text)
			if s.usage != nil {
				if err := s.usage.Record(s.commit); err != nil {
					s.log.Warn("phrase usage record failed", "error", err)
				}
			}
			s.Reset()
			return Committed
		}
		return Ignored
	case MethodCodePoint:
		if text, ok := s.cp.Flush(); ok {
			s.commitRaw(text)
			s.preedit = ""
			return Committed
		}
		return Ignored
	default:
		// Phonetic and table methods commit the preedit verbatim.
		if s.preedit != "" {
			s.commitRaw(s.preedit)
			s.Reset()
			return Committed
		}
		return Ignored
	}
}

func (s *Session) handleBackspace() Result {
	removed := false
	switch s.method {
	case MethodGtab:
		if len(s.gtKeys) > 0 {
			s.gtKeys = s.gtKeys[:len(s.gtKeys)-1]
			s.refreshGtab()
			removed = true
		}
	case MethodCodePoint:
		removed = s.cp.Backspace()
		s.preedit = s.cp.Preedit()
	case MethodPhrase:
		if removed = s.ph.Backspace(); removed {
			s.cands = nil
			s.page = 0
			s.updatePreedit()
		}
	default:
		removed = s.phoneticBackspace()
	}
	if !removed {
		return Ignored
	}
	s.emit(FeedbackKeyDelete)
	return Preedit
}

// phoneticBackspace clears the most significant populated component.
func (s *Session) phoneticBackspace() bool {
	for i := 3; i >= 0; i-- {
		if s.comps[i] != 0 {
			s.comps[i] = 0
			s.cands = nil
			s.page = 0
			s.updatePreedit()
			return true
		}
	}
	return false
}

func (s *Session) dispatchChar(c byte) Result {
	switch s.method {
	case MethodGtab:
		return s.gtabChar(c)
	case MethodCodePoint:
		return s.codePointChar(c)
	default:
		// Phrase mode composes characters phonetically.
		return s.phoneticChar(c)
	}
}

// phoneticTable fetches the dictionary; a nil table answers every
// lookup empty, so a missing registry just yields no candidates.
func (s *Session) phoneticTable() *photab.Table {
	if s.reg == nil {
		return nil
	}
	return s.reg.Phonetic()
}

func (s *Session) phoneticChar(c byte) Result {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	typ, num, ok := s.layout.Lookup(c)
	if !ok {
		return Ignored
	}

	s.comps[typ] = num
	s.updatePreedit()

	// A tone (or space, which is tone 1 on every layout) completes the
	// syllable and triggers the dictionary lookup.
	if s.comps[phonetic.Tone] != 0 || c == ' ' {
		key := phonetic.EncodeKey(s.comps)
		s.cands = s.phoneticTable().Lookup(key)
		s.convertCandidates()
		s.page = 0

		switch {
		case len(s.cands) == 1:
			return s.takeCandidate(s.cands[0])
		case len(s.cands) > 1:
			if c == ' ' {
				s.emit(FeedbackKeySpace)
			} else {
				s.emit(FeedbackKeyPress)
			}
			return Preedit
		case c == ' ':
			// Completed syllable with no dictionary entry.
			s.emit(FeedbackError)
			return Preedit
		}
		return Preedit
	}

	s.emit(FeedbackKeyPress)
	return Preedit
}

func (s *Session) gtabChar(c byte) Result {
	if s.gt == nil {
		return Ignored
	}
	idx, ok := s.gt.KeyIndex(c)
	if !ok {
		return Ignored
	}
	if len(s.gtKeys) >= s.gt.MaxPress {
		return Absorbed
	}

	s.gtKeys = append(s.gtKeys, idx)
	s.refreshGtab()
	s.emit(FeedbackKeyPress)

	// Nothing longer can follow at full depth; a single match commits
	// without explicit selection.
	if len(s.cands) == 1 && len(s.gtKeys) >= s.gt.MaxPress {
		return s.takeCandidate(s.cands[0])
	}
	return Preedit
}

// refreshGtab recomputes the table preedit and candidate list after the
// key buffer changed.
func (s *Session) refreshGtab() {
	s.page = 0
	s.preedit = s.gt.KeyDisplay(s.gtKeys)
	if len(s.gtKeys) > 0 {
		s.cands = s.gt.LookupPrefix(s.gtKeys)
		s.convertCandidates()
	} else {
		s.cands = nil
	}
}

func (s *Session) codePointChar(c byte) Result {
	text, st := s.cp.Push(c)
	switch st {
	case codepoint.Committed:
		s.commitRaw(text)
		s.preedit = ""
		s.emit(FeedbackCandidate)
		return Committed
	case codepoint.Preedit:
		s.preedit = s.cp.Preedit()
		s.emit(FeedbackKeyPress)
		return Preedit
	case codepoint.Absorbed:
		return Absorbed
	default:
		return Ignored
	}
}

// updatePreedit rebuilds the preedit for the phonetic and phrase
// methods: the accumulated phrase (if any) followed by the in-progress
// syllable's bopomofo display.
func (s *Session) updatePreedit() {
	syllable := s.comps.Display()
	if s.method == MethodPhrase {
		s.preedit = s.ph.String() + syllable
		return
	}
	s.preedit = syllable
}
