package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/purityeng/purity/internal/config"
	"github.com/purityeng/purity/internal/debug"
	"github.com/purityeng/purity/internal/errors"
	"github.com/purityeng/purity/internal/langsupport"
	"github.com/purityeng/purity/internal/mcpserver"
	"github.com/purityeng/purity/internal/purity"
	"github.com/purityeng/purity/internal/report"
	"github.com/purityeng/purity/internal/version"
)

var cfg *config.Config

func main() {
	app := &cli.App{
		Name:                   "purity",
		Usage:                  "Infer method purity for a C# or Java source file",
		Version:                version.Version,
		UseShortOptionHandling: true,
		ArgsUsage:              "<path-to-source-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "string",
				Aliases: []string{"s"},
				Usage:   "Analyze source given directly as a string instead of a file",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Language of the input: \"csharp\" or \"java\" (inferred from file extension in path mode)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "Start the classify_purity protocol server on stdio",
				Action: mcpCommand,
			},
		},
		Before: func(c *cli.Context) error {
			root, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine working directory: %w", err)
			}
			loaded, err := config.LoadKDL(root)
			if err != nil {
				return err
			}
			if loaded == nil {
				loaded = config.NewDefault()
			}
			cfg = loaded
			return nil
		},
		Action: runAnalyze,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "purity: %v\n", err)
		os.Exit(1)
	}
}

func runAnalyze(c *cli.Context) error {
	source := c.String("string")
	langFlag := c.String("lang")

	var (
		src           []byte
		path          string
		lang          langsupport.Name
		stripExternal bool
		err           error
	)

	switch {
	case source != "":
		src = []byte(source)
		lang, err = resolveLang(langFlag, "")
		if err != nil {
			return err
		}

	case c.NArg() > 0:
		path = c.Args().Get(0)
		src, err = os.ReadFile(path)
		if err != nil {
			return errors.NewFileError("read", path, err)
		}
		lang, err = resolveLang(langFlag, path)
		if err != nil {
			return err
		}
		stripExternal = true

	default:
		return cli.Exit(fmt.Sprintf("usage: %s <path-to-source-file>\n       %s -s <source-as-string> [--lang csharp|java]", c.App.Name, c.App.Name), 1)
	}

	unit, resolver, err := langsupport.ParseString(lang, src)
	if err != nil {
		return errors.NewParseError(path, string(lang), err)
	}

	table := builtinTable(lang)
	eng := purity.NewEngine(table)
	result := eng.Analyze(unit, resolver)

	if cfg != nil && cfg.StrictMode {
		for _, w := range report.Warnings(result) {
			fmt.Fprintln(os.Stderr, w)
		}
	}

	fmt.Print(report.Render(result, stripExternal))
	for _, hint := range report.Suggestions(result, table) {
		fmt.Println(hint)
	}
	return nil
}

// resolveLang picks the analyzed language: an explicit --lang flag
// wins; otherwise infer from the file extension in path mode; -s mode
// with no --lang falls back to the project's configured default
// language, per §6.
func resolveLang(langFlag, path string) (langsupport.Name, error) {
	if langFlag != "" {
		switch langFlag {
		case string(langsupport.CSharp), string(langsupport.Java):
			return langsupport.Name(langFlag), nil
		default:
			return "", fmt.Errorf("unsupported --lang %q (valid: csharp, java)", langFlag)
		}
	}
	if path != "" {
		if lang, ok := langsupport.ForPath(path); ok {
			return lang, nil
		}
		return "", fmt.Errorf("cannot infer language from %q, pass --lang", path)
	}
	if cfg != nil && cfg.DefaultLanguage != "" {
		return langsupport.Name(cfg.DefaultLanguage), nil
	}
	return langsupport.CSharp, nil
}

func builtinTable(lang langsupport.Name) *purity.PriorKnowledgeTable {
	base := purity.BuiltinCSharp()
	if lang == langsupport.Java {
		base = purity.BuiltinJava()
	}
	return cfg.ApplyOverrides(base)
}

func mcpCommand(c *cli.Context) error {
	debug.SetMCPMode(true)
	server := mcpserver.New(cfg)
	return server.Run(context.Background())
}
