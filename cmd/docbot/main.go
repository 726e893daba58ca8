package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docbot/bot"
	"github.com/fwojciec/docbot/crawl"
	"github.com/fwojciec/docbot/gemini"
	"github.com/fwojciec/docbot/goquery"
	dochttp "github.com/fwojciec/docbot/http"
	"github.com/fwojciec/docbot/mem"
	docslog "github.com/fwojciec/docbot/slog"
	"github.com/fwojciec/docbot/sqlite"
	"github.com/fwojciec/docbot/yaml"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

//go:embed catalog.yaml
var defaultCatalog []byte

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Context cache database path. Set before calling Run().
	CachePath string

	// SQLite database backing the context cache. Opened lazily by commands
	// that answer questions.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Local development convenience; missing file is fine.
	_ = godotenv.Load(".env.local")

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docbot"),
		kong.Description("Documentation Q&A chat bot."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docbot --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	logger := slog.New(slog.NewJSONHandler(stderr, nil))
	deps.Logger = logger

	catalogData := defaultCatalog
	if cli.Catalog != "" {
		catalogData, err = os.ReadFile(cli.Catalog)
		if err != nil {
			return fmt.Errorf("failed to read catalog %q: %w", cli.Catalog, err)
		}
	}
	catalog, err := yaml.ParseCatalog(catalogData)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	deps.Catalog = catalog

	fetcher := docslog.NewLoggingFetcher(dochttp.NewFetcher(), logger)
	crawler := crawl.New(fetcher, goquery.NewExtractor(), goquery.NewLinkExtractor())
	crawler.Limiter = crawl.NewDomainLimiter(1.0)
	deps.Crawler = crawler

	// Only question-answering commands need the LLM and the context cache.
	if cmd == "serve" || cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set DOCBOT_CACHE to use a different cache path")
			return fmt.Errorf("failed to open cache at %q: %w", m.CachePath, err)
		}

		b := bot.New(
			catalog,
			mem.NewSessionStore(),
			crawler,
			docslog.NewLoggingCompleter(gemini.NewCompleter(client, cli.Model), logger),
		)
		b.Cache = sqlite.NewContextService(m.DB)
		b.Logger = logger
		deps.Bot = b
	}

	return kongCtx.Run(deps)
}

func defaultCachePath() string {
	if path := os.Getenv("DOCBOT_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docbot.db"
	}
	dir := filepath.Join(home, ".docbot")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docbot.db")
}
