// Package tables manages the dictionary files an input session draws
// from: the phonetic dictionary and any number of generic tables. A
// Registry is owned by the embedding application and handed to each
// session, so table state lives with the caller instead of in process
// globals.
package tables

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"chime/internal/gtab"
	"chime/internal/photab"
)

// Well-known generic table IDs.
const (
	TableCJ          = 0
	TableCJ5         = 1
	TableCJ543       = 2
	TableCJPunc      = 3
	TableSimplex     = 10
	TableSimplexPunc = 11
	TableDaYi        = 20
	TableArray30     = 30
	TableArray40     = 31
	TableArray30Big  = 32
	TableBoshiamy    = 40
	TablePinyin      = 50
	TableJyutping    = 51
	TableHangul      = 60
	TableHangulRoman = 61
	TableVims        = 70
	TableSymbols     = 80
	TableGreek       = 81
	TableRussian     = 82
	TableEsperanto   = 83
	TableLatin       = 84
)

// Info describes one well-known table.
type Info struct {
	ID       int
	Name     string
	Filename string
	Icon     string
}

// builtin lists the tables shipped with the common distribution.
var builtin = []Info{
	{TableCJ, "倉頡", "cj.gtab", "cj.png"},
	{TableCJ5, "倉五", "cj5.gtab", "cj5.png"},
	{TableCJ543, "五四三倉頡", "cj543.gtab", "cj5.png"},
	{TableCJPunc, "標點倉頡", "cj-punc.gtab", "cj-punc.png"},
	{TableSimplex, "速成", "simplex.gtab", "simplex.png"},
	{TableSimplexPunc, "標點簡易", "simplex-punc.gtab", "simplex.png"},
	{TableDaYi, "大易", "dayi3.gtab", "dayi3.png"},
	{TableArray30, "行列30", "ar30.gtab", "ar30.png"},
	{TableArray40, "行列40", "array40.gtab", "ar30.png"},
	{TableArray30Big, "行列大字集", "ar30-big.gtab", "ar30.png"},
	{TableBoshiamy, "嘸蝦米", "noseeing.gtab", "noseeing.png"},
	{TablePinyin, "拼音", "pinyin.gtab", "pinyin.png"},
	{TableJyutping, "粵拼", "jyutping.gtab", "jyutping.png"},
	{TableHangul, "韓諺", "hangul.gtab", "hangul.png"},
	{TableHangulRoman, "韓羅", "hangul-roman.gtab", "hangul.png"},
	{TableVims, "越南文", "vims.gtab", "vims.png"},
	{TableSymbols, "符號", "symbols.gtab", "symbols.png"},
	{TableGreek, "希臘文", "greek.gtab", "greek.png"},
	{TableRussian, "俄文", "russian.gtab", "russian.png"},
	{TableEsperanto, "世界文", "esperanto.gtab", "esperanto.png"},
	{TableLatin, "拉丁字母", "latin-letters.gtab", "latin-letters.png"},
}

// Builtin returns the well-known table list.
func Builtin() []Info {
	out := make([]Info, len(builtin))
	copy(out, builtin)
	return out
}

// ByID finds a well-known table by its ID.
func ByID(id int) (Info, bool) {
	for _, in := range builtin {
		if in.ID == id {
			return in, true
		}
	}
	return Info{}, false
}

// Search returns well-known tables whose display name or filename
// contains the pattern, case-insensitively for ASCII. Results are
// ordered by match quality: earlier matches rank higher and a match at
// the start of the name outranks any later one.
func Search(pattern string) []Info {
	type scored struct {
		in    Info
		score int
	}
	var hits []scored
	for _, in := range builtin {
		s := matchScore(in.Name, pattern)
		if fs := matchScore(in.Filename, pattern); fs > s {
			s = fs
		}
		if s > 0 {
			hits = append(hits, scored{in, s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]Info, len(hits))
	for i, h := range hits {
		out[i] = h.in
	}
	return out
}

// matchScore rates a substring match: 100 minus the byte offset of the
// first occurrence, with a bonus of 50 for a match at the start. Empty
// patterns match everything; no match scores zero.
func matchScore(s, pattern string) int {
	if pattern == "" {
		return 100
	}
	idx := strings.Index(strings.ToLower(s), strings.ToLower(pattern))
	if idx < 0 {
		return 0
	}
	score := 100 - idx
	if idx == 0 {
		score += 50
	}
	if score < 1 {
		score = 1
	}
	return score
}

// Registry loads and caches dictionary files from a data directory.
// Loads are serialized internally; loaded table values are immutable and
// may be shared across sessions.
type Registry struct {
	dir string
	log *slog.Logger

	mu           sync.RWMutex
	phonetic     *photab.Table
	phoneticFile string
	gtabs        map[string]*gtab.Table
}

// NewRegistry returns a registry rooted at dir. Nothing is loaded until
// asked for.
func NewRegistry(dir string, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		dir:   dir,
		log:   log,
		gtabs: make(map[string]*gtab.Table),
	}
}

// LoadPhonetic loads the phonetic dictionary by filename, replacing any
// previously loaded one.
func (r *Registry) LoadPhonetic(filename string) error {
	t, err := photab.Load(filepath.Join(r.dir, filename))
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}
	r.mu.Lock()
	r.phonetic = t
	r.phoneticFile = filename
	r.mu.Unlock()
	r.log.Info("phonetic dictionary loaded",
		"file", filename, "keys", t.Keys(), "items", t.Items())
	return nil
}

// Phonetic returns the loaded phonetic dictionary, or nil. A nil table
// answers every lookup with no candidates, so callers need not check.
func (r *Registry) Phonetic() *photab.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phonetic
}

// LoadGtab loads a generic table by filename, reusing the cached copy
// when it was loaded before.
func (r *Registry) LoadGtab(filename string) (*gtab.Table, error) {
	r.mu.RLock()
	t, ok := r.gtabs[filename]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := gtab.Load(filepath.Join(r.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	r.mu.Lock()
	r.gtabs[filename] = t
	r.mu.Unlock()
	r.log.Info("table loaded",
		"file", filename, "name", t.Name, "items", t.Items(), "max_press", t.MaxPress)
	return t, nil
}

// LoadGtabByID loads a well-known table.
func (r *Registry) LoadGtabByID(id int) (*gtab.Table, error) {
	in, ok := ByID(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown table id %d", id)
	}
	return r.LoadGtab(in.Filename)
}

// Gtab returns a previously loaded table without touching the disk.
func (r *Registry) Gtab(filename string) (*gtab.Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.gtabs[filename]
	return t, ok
}

// Loaded lists the filenames of currently loaded generic tables.
func (r *Registry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.gtabs))
	for name := range r.gtabs {
		out = append(out, name)
	}
	return out
}

// Watch reloads loaded tables, the phonetic dictionary included, when
// their files change on disk, until the context is cancelled. Reloads
// are debounced per file. Sessions pick up the new table on their next
// table fetch; tables already handed out stay valid.
func (r *Registry) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("registry: watch: %w", err)
	}
	if err := w.Add(r.dir); err != nil {
		w.Close()
		return fmt.Errorf("registry: watch %s: %w", r.dir, err)
	}

	go func() {
		defer w.Close()

		// Debounce per file: editors and atomic saves fire several
		// events in quick succession.
		timers := make(map[string]*time.Timer)
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				name := filepath.Base(ev.Name)
				if t := timers[name]; t != nil {
					t.Stop()
				}
				timers[name] = time.AfterFunc(debounceDelay, func() {
					r.reload(name)
				})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				r.log.Warn("table watch error", "error", err)
			}
		}
	}()
	return nil
}

func (r *Registry) reload(filename string) {
	r.mu.RLock()
	_, cached := r.gtabs[filename]
	isPhonetic := filename == r.phoneticFile && r.phoneticFile != ""
	r.mu.RUnlock()

	if isPhonetic {
		t, err := photab.Load(filepath.Join(r.dir, filename))
		if err != nil {
			r.log.Warn("phonetic reload failed, keeping previous",
				"file", filename, "error", err)
			return
		}
		r.mu.Lock()
		r.phonetic = t
		r.mu.Unlock()
		r.log.Info("phonetic dictionary reloaded", "file", filename, "items", t.Items())
		return
	}

	if !cached {
		return
	}
	t, err := gtab.Load(filepath.Join(r.dir, filename))
	if err != nil {
		r.log.Warn("table reload failed, keeping previous",
			"file", filename, "error", err)
		return
	}
	r.mu.Lock()
	r.gtabs[filename] = t
	r.mu.Unlock()
	r.log.Info("table reloaded", "file", filename, "items", t.Items())
}
