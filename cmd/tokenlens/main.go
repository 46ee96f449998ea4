package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gnana997/tokenlens/pkg/audit"
	"github.com/gnana997/tokenlens/pkg/match"
	mcpserver "github.com/gnana997/tokenlens/pkg/mcp"
	"github.com/gnana997/tokenlens/pkg/tokens"
	"github.com/gnana997/tokenlens/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())
	util.SetDefault(logger)

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "resolve":
		err = runResolve(args)
	case "audit":
		err = runAudit(args)
	case "serve":
		err = runServe(args)
	case "version":
		fmt.Printf("tokenlens %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadTree loads the token tree from the flag/config path, falling back to
// auto-discovery under the current directory.
func loadTree(tokensFlag string) (map[string]any, error) {
	path := resolveTokensPath(tokensFlag)
	if path == "" {
		files, err := tokens.DiscoverTokenFiles(".", nil)
		if err != nil {
			return nil, fmt.Errorf("token file discovery failed: %w", err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no token file found; pass --tokens or add tokens_path to .tokenlens/config.yaml")
		}
		path = files[0]
	}
	return tokens.LoadFile(path)
}

// pickTheme maps a theme name/id to the tree's theme definition.
func pickTheme(raw map[string]any, themeFlag string) (*tokens.Theme, error) {
	name := resolveThemeName(themeFlag)
	if name == "" {
		return nil, nil
	}
	theme, ok := tokens.FindTheme(tokens.ParseThemes(raw), name)
	if !ok {
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
	return theme, nil
}

func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	tokensPath := fs.String("tokens", "", "path to the token JSON file")
	themeName := fs.String("theme", "", "theme id or name to resolve under")
	fs.Parse(args)

	raw, err := loadTree(*tokensPath)
	if err != nil {
		return err
	}
	theme, err := pickTheme(raw, *themeName)
	if err != nil {
		return err
	}

	resolved, summary := tokens.Resolve(raw, theme, nil)
	out := map[string]any{"tokens": resolved, "summary": summary}
	return printJSON(out)
}

func runAudit(args []string) error {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	tokensPath := fs.String("tokens", "", "path to the token JSON file")
	themeName := fs.String("theme", "", "theme id or name to resolve under")
	valuesPath := fs.String("values", "", "path to the observed-values JSON file")
	fs.Parse(args)

	if *valuesPath == "" {
		return fmt.Errorf("audit requires --values")
	}

	raw, err := loadTree(*tokensPath)
	if err != nil {
		return err
	}
	theme, err := pickTheme(raw, *themeName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*valuesPath)
	if err != nil {
		return fmt.Errorf("failed to read values file: %w", err)
	}
	var observed []match.ObservedValue
	if err := json.Unmarshal(data, &observed); err != nil {
		return fmt.Errorf("invalid observed-values JSON: %w", err)
	}

	auditor, err := audit.NewAuditor(0, nil)
	if err != nil {
		return err
	}
	return printJSON(auditor.Audit(raw, theme, observed))
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	tokensPath := fs.String("tokens", "", "path to the token JSON file")
	watch := fs.Bool("watch", true, "reload the token file when it changes")
	fs.Parse(args)

	path := resolveTokensPath(*tokensPath)
	if path == "" {
		files, err := tokens.DiscoverTokenFiles(".", nil)
		if err != nil {
			return fmt.Errorf("token file discovery failed: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no token file found; pass --tokens or add tokens_path to .tokenlens/config.yaml")
		}
		path = files[0]
	}

	raw, err := tokens.LoadFile(path)
	if err != nil {
		return err
	}

	auditor, err := audit.NewAuditor(0, nil)
	if err != nil {
		return err
	}
	srv := mcpserver.NewServer(auditor, raw, nil)

	if *watch {
		watcher, err := audit.NewTokenWatcher(func(changed string) {
			reloaded, err := tokens.LoadFile(changed)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to reload %s: %v\n", changed, err)
				return
			}
			srv.SetTree(reloaded)
		}, audit.DefaultWatchOptions(), nil)
		if err != nil {
			return err
		}
		if err := watcher.Watch(path); err != nil {
			return err
		}
		watcher.Start()
		defer watcher.Stop()
	}

	return srv.ServeStdio()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUsage() {
	fmt.Println("Usage: tokenlens <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  resolve    Resolve a token file into a flat token map")
	fmt.Println("  audit      Match observed values against the resolved tokens")
	fmt.Println("  serve      Start MCP server")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --tokens   Token JSON file (default: .tokenlens/config.yaml, then auto-discovery)")
	fmt.Println("  --theme    Theme id or name")
	fmt.Println("  --values   Observed-values JSON file (audit)")
	fmt.Println("  --watch    Reload the token file on change (serve, default true)")
}
