package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/CoherentNonsense/sil-lang/ast"
	"github.com/CoherentNonsense/sil-lang/codegen"
	"github.com/CoherentNonsense/sil-lang/lexer"
	"github.com/CoherentNonsense/sil-lang/parser"
)

const manifestName = "Sil Module Information"

type silModule struct {
	Module string `yaml:"Module"`
}

func fatal(err error) {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		tracerr.PrintSourceColor(err)
	} else {
		tracerr.Print(err)
	}
	os.Exit(1)
}

func parseFile(path string) *ast.Root {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal(tracerr.Wrap(err))
	}

	source := string(data)
	toks := lexer.New(source, path).Tokenize()

	root, err := parser.New(source, toks).Parse()
	if err != nil {
		fatal(err)
	}

	return root
}

// defaultOutput names the artifact after the manifest's module when one is
// present, falling back to the input basename.
func defaultOutput(input string) string {
	if data, err := os.ReadFile(manifestName); err == nil {
		var doc silModule
		if err := yaml.Unmarshal(data, &doc); err == nil && doc.Module != "" {
			return doc.Module + ".ll"
		}
	}

	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".ll"
}

func main() {
	app := &cli.App{
		Name:  "sil",
		Usage: "sil compiler",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "init a module directory",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no module name provided", 1)
					}

					out, err := yaml.Marshal(silModule{Module: name})
					if err != nil {
						return err
					}

					return os.WriteFile(manifestName, out, 0o644)
				},
			},
			{
				Name:  "ast",
				Usage: "dump the syntax tree of a file",
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						return cli.Exit("no input file provided", 1)
					}

					repr.Println(parseFile(file))
					return nil
				},
			},
			{
				Name:  "build",
				Usage: "build a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: "output",
					},
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						return cli.Exit("no input file provided", 1)
					}

					root := parseFile(file)

					module, err := codegen.Generate(root)
					if err != nil {
						fatal(err)
					}
					module.SourceFilename = file

					if c.Bool("dump") {
						fmt.Println(module)
						return nil
					}

					out := c.String("output")
					if out == "" {
						out = defaultOutput(file)
					}

					return os.WriteFile(out, []byte(module.String()), 0o644)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
