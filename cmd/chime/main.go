// chime is an interactive console front end for the input engine.
//
// Typed lines are fed through the engine a character at a time and the
// resulting preedit, candidate page, and committed text are printed
// after each line. Colon commands drive the session:
//
//	:method <phonetic|phrase|table|codepoint>
//	:table <name>       Switch to a generic table (loads it if needed)
//	:layout <name>      Switch the phonetic keyboard layout
//	:variant            Toggle traditional/simplified output
//	:big5 :unicode      Select code-point interpretation
//	:enter :esc :bs     Send the control key
//	:top                Show the most used committed phrases
//	:quit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"chime/internal/codepoint"
	"chime/internal/config"
	"chime/internal/engine"
	"chime/internal/logging"
	"chime/internal/phonetic"
	"chime/internal/phrase"
	"chime/internal/tables"
	"chime/internal/zhconv"
)

var (
	configPath = flag.String("config", "", "path to config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()
	logging.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := tables.NewRegistry(cfg.Data.Dir, log.Slog())
	if err := reg.LoadPhonetic(cfg.Data.PhoneticFile); err != nil {
		log.Warn("phonetic dictionary unavailable", "error", err)
	}
	for _, name := range cfg.Data.Preload {
		if _, err := reg.LoadGtab(name); err != nil {
			log.Warn("preload failed", "table", name, "error", err)
		}
	}
	if cfg.Data.WatchTables {
		go func() {
			if err := reg.Watch(ctx); err != nil {
				log.Warn("table watch stopped", "error", err)
			}
		}()
	}

	var usage *phrase.Store
	if cfg.Data.UsageStore != "" {
		usage, err = phrase.OpenStore(cfg.Data.UsageStore)
		if err != nil {
			log.Warn("usage store unavailable", "error", err)
		} else {
			defer usage.Close()
		}
	}

	variant := zhconv.Traditional
	if cfg.Output.Variant == "simplified" {
		variant = zhconv.Simplified
	}

	s := engine.NewSession(engine.Config{
		Registry:         reg,
		Logger:           log.Slog(),
		Layout:           cfg.Layout(),
		PageSize:         cfg.Candidates.PageSize,
		SelKeys:          cfg.Candidates.SelectionKeys,
		Variant:          variant,
		SmartPunctuation: cfg.Input.SmartPunctuation,
		ExactBig5:        cfg.Input.ExactBig5,
		Usage:            usage,
	})

	fmt.Println("chime console (:quit to exit, :help for commands)")
	repl(ctx, cfg, reg, s, usage)
}

func repl(ctx context.Context, cfg *config.Config, reg *tables.Registry, s *engine.Session, usage *phrase.Store) {
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() || ctx.Err() != nil {
			return
		}
		line := sc.Text()

		if strings.HasPrefix(line, ":") {
			if !command(line, cfg, reg, s, usage) {
				return
			}
			show(s, drain(s))
			continue
		}

		// The commit buffer holds one event's output, so drain it
		// after every key.
		var out strings.Builder
		for i := 0; i < len(line); i++ {
			s.ProcessKey(engine.Key{Char: rune(line[i])})
			out.WriteString(drain(s))
		}
		show(s, out.String())
	}
}

func drain(s *engine.Session) string {
	c := s.Commit()
	s.ClearCommit()
	return c
}

// command runs one colon command. It returns false when the session
// should end.
func command(line string, cfg *config.Config, reg *tables.Registry, s *engine.Session, usage *phrase.Store) bool {
	fields := strings.Fields(line)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Println("  :method <phonetic|phrase|table|codepoint>  :table <name>")
		fmt.Println("  :layout <name>  :variant  :big5  :unicode  :enter  :esc  :bs  :top  :quit")
	case ":method":
		switch arg {
		case "phonetic":
			s.SetMethod(engine.MethodPhonetic)
		case "phrase":
			s.SetMethod(engine.MethodPhrase)
		case "table":
			// Attach the configured default table the first time the
			// table method is entered.
			if s.GtabName() == "" && cfg.Data.DefaultGtab != "" {
				t, err := reg.LoadGtab(cfg.Data.DefaultGtab)
				if err != nil {
					fmt.Println("default table unavailable:", err)
				} else {
					s.UseGtab(t)
					break
				}
			}
			s.SetMethod(engine.MethodGtab)
		case "codepoint":
			s.SetMethod(engine.MethodCodePoint)
		default:
			fmt.Println("unknown method:", arg)
		}
	case ":table":
		filename := arg
		if hits := tables.Search(arg); len(hits) > 0 {
			filename = hits[0].Filename
		}
		t, err := reg.LoadGtab(filename)
		if err != nil {
			fmt.Println("load failed:", err)
			break
		}
		s.UseGtab(t)
		fmt.Printf("using %s (%s)\n", t.Name, filepath.Join(cfg.Data.Dir, filename))
	case ":layout":
		l, ok := phonetic.LayoutByName(arg)
		if !ok {
			fmt.Println("unknown layout:", arg)
			break
		}
		s.SetLayout(l)
	case ":variant":
		fmt.Println("output:", s.ToggleVariant())
	case ":big5":
		s.SetCodePointMode(codepoint.ModeBig5)
	case ":unicode":
		s.SetCodePointMode(codepoint.ModeUnicode)
	case ":enter":
		s.ProcessKey(engine.Key{Code: engine.KeyEnter})
	case ":esc":
		s.ProcessKey(engine.Key{Code: engine.KeyEscape})
	case ":bs":
		s.ProcessKey(engine.Key{Code: engine.KeyBackspace})
	case ":top":
		if usage == nil {
			fmt.Println("no usage store configured")
			break
		}
		top, err := usage.Top(10)
		if err != nil {
			fmt.Println("usage query failed:", err)
			break
		}
		for _, u := range top {
			fmt.Printf("  %6d  %s\n", u.Uses, u.Phrase)
		}
	default:
		fmt.Println("unknown command:", fields[0])
	}
	return true
}

// show prints the session state after a line of input.
func show(s *engine.Session, committed string) {
	if committed != "" {
		fmt.Printf("committed: %s\n", committed)
	}
	if p := s.Preedit(); p != "" {
		fmt.Printf("preedit:   %s\n", p)
	}
	if n := s.CandidateCount(); n > 0 {
		var b strings.Builder
		base := s.Page() * s.PageSize()
		for i := 0; i < s.CurrentPageSize(); i++ {
			fmt.Fprintf(&b, " %d.%s", i+1, s.Candidate(base+i))
		}
		fmt.Printf("candidates:%s  (page %d)\n", b.String(), s.Page()+1)
	}
}
