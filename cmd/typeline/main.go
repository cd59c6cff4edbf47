// Package main provides the CLI entrypoint for typeline.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vzemtsov/typeline/internal/config"
	"github.com/vzemtsov/typeline/internal/generator"
	"github.com/vzemtsov/typeline/internal/model"
	"github.com/vzemtsov/typeline/internal/render"
	"github.com/vzemtsov/typeline/internal/report"
	"github.com/vzemtsov/typeline/internal/session"
	"github.com/vzemtsov/typeline/internal/textseg"
	"github.com/vzemtsov/typeline/internal/textwrap"
	"github.com/vzemtsov/typeline/internal/wordlist"
)

const (
	defaultLang     = "en"
	defaultWords    = 25
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultTabWidth = 4
)

const defaultPunctSet = ".,!?;:\"'{}()[]-=/<>`"

var (
	practiceLang     string
	practiceWords    int
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string
	practiceWidth    int
	practiceTabWidth int
	practiceQuotes   string
	practiceChars    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typeline",
		Short:         "Terminal typing test",
		Long:          "Terminal typing test. Pipe text to type it, or let typeline generate a word sequence from a word list.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code (default: en)")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per generated text")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().IntVarP(&practiceWidth, "width", "w", 0, "wrap width in columns (0: terminal width, negative: no wrapping)")
	rootCmd.Flags().IntVar(&practiceTabWidth, "tab-width", defaultTabWidth, "display width of a tab")
	rootCmd.Flags().StringVar(&practiceQuotes, "quotes", "", "path to a blank-line separated quote file")
	rootCmd.Flags().BoolVar(&practiceChars, "chars", false, "print a per-character accuracy table")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)
	applyIntConfig(cmd, "width", &practiceWidth, fileCfg.Practice.WrapWidth)
	applyIntConfig(cmd, "tab-width", &practiceTabWidth, fileCfg.Practice.TabWidth)

	cfg := model.Config{
		Lang:      practiceLang,
		Words:     practiceWords,
		CapsPct:   practiceCaps,
		PunctPct:  practicePunct,
		PunctSet:  practicePunctSet,
		WrapWidth: practiceWidth,
		TabWidth:  practiceTabWidth,
		Quotes:    practiceQuotes,
		Chars:     practiceChars,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	raw, err := resolveTargetText(cfg, rnd)
	if err != nil {
		return err
	}

	segCfg := textseg.NewConfig(cfg.TabWidth)
	text := textseg.Normalize(raw)
	text = textwrap.Wrap(text, resolveWrapWidth(cfg.WrapWidth), segCfg)
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("target text is empty")
	}

	return runSession(cfg, segCfg, text)
}

func runSession(cfg model.Config, segCfg textseg.Config, text string) error {
	in, closeIn, err := openInput()
	if err != nil {
		return err
	}
	defer closeIn()

	target := render.NewTarget(text)
	engine := render.New(os.Stdout, segCfg, render.DefaultStyles())
	machine := session.NewMachine(target)
	reader := session.NewReader(in)

	if err := engine.Draw(target, ""); err != nil {
		return fmt.Errorf("failed to draw target: %w", err)
	}
	if err := engine.Anchor(len(target.Lines)); err != nil {
		return fmt.Errorf("failed to anchor cursor: %w", err)
	}

	var state session.State
	err = session.WithRawMode(int(in.Fd()), func() error {
		var lerr error
		state, lerr = session.Run(reader, machine, engine)
		return lerr
	})
	if err != nil {
		return err
	}
	if state == session.StateCancelled {
		fmt.Println("\n\nCancelled.")
		return nil
	}

	rep := report.Build(target.Joined(), machine.Input(), machine.Elapsed())
	if err := rep.Render(os.Stdout); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	if cfg.Chars {
		aggs := report.CharAccuracies(target.Joined(), machine.Input())
		if err := report.RenderCharTable(os.Stdout, aggs); err != nil {
			return fmt.Errorf("failed to print character table: %w", err)
		}
	}
	return nil
}

// resolveTargetText picks the target source: piped stdin, a quote file, or a
// generated word sequence.
func resolveTargetText(cfg model.Config, rnd *rand.Rand) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	gen := generator.New(rnd)
	if cfg.Quotes != "" {
		quotes, err := wordlist.LoadQuotes(cfg.Quotes)
		if err != nil {
			return "", fmt.Errorf("failed to load quotes: %w", err)
		}
		return gen.Pick(quotes), nil
	}

	wordPath := config.DefaultWordListPath(cfg.Lang)
	words, err := wordlist.LoadWords(wordPath, wordlist.FilterForLang(cfg.Lang))
	if err != nil {
		return "", wordListLoadError(cfg.Lang, wordPath, err)
	}
	sequence := gen.Generate(words, cfg.Words, cfg.CapsPct, cfg.PunctPct, []rune(cfg.PunctSet))
	return strings.Join(sequence, " "), nil
}

// resolveWrapWidth maps the flag convention (0: terminal width, negative: no
// wrapping) onto the wrapper's convention (non-positive: no wrapping).
func resolveWrapWidth(width int) int {
	if width != 0 {
		return width
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// openInput returns the interactive keystroke handle: stdin when it is a
// terminal, otherwise the controlling tty (stdin is then the piped target).
func openInput() (*os.File, func(), error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, func() {}, nil
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open /dev/tty: %w", err)
	}
	return tty, func() {
		if cerr := tty.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available wordlist languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	wordlistDir := config.DefaultWordListDir()
	entries, err := os.ReadDir(wordlistDir)
	if err != nil {
		if os.IsNotExist(err) {
			logErrf("No wordlists found. Put one word per line into %s\n", filepath.Join(wordlistDir, "<code>.txt"))
			return fmt.Errorf("wordlist directory does not exist")
		}
		return fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	if len(langs) == 0 {
		logErrf("No wordlists found. Put one word per line into %s\n", filepath.Join(wordlistDir, "<code>.txt"))
		return fmt.Errorf("no wordlists found")
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typeline configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q            # Language code (default %q)
# words = %d           # Words per generated text
# caps = %.2f          # Probability of capitalized first letter (0-1)
# punct = %.2f         # Punctuation probability per word (0-1)
# punct-set = %q       # Punctuation set
# wrap-width = 0       # Wrap width in columns (0: terminal width)
# tab-width = %d       # Display width of a tab
`,
		defaultLang,
		defaultLang,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultTabWidth,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if cfg.TabWidth <= 0 {
		return fmt.Errorf("--tab-width must be > 0")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: typeline langs",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
