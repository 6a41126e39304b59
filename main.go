// Style inspector: resolves computed styles for an HTML document and dumps
// them for inspection.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/EthanRStokes/stokes-browser-sub001/css"
	"github.com/EthanRStokes/stokes-browser-sub001/dom"
	"github.com/EthanRStokes/stokes-browser-sub001/engine"
)

func main() {
	app := &cli.Command{
		Name:            "styleinspect",
		Usage:           "compute and inspect CSS styles for an HTML document",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "resolve styles for a document and print them",
				ArgsUsage: "[file.html]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "css",
						Usage: "additional stylesheet `FILE`s applied after document styles",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML configuration `FILE`",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "enable debug logging",
					},
				},
				Action: runInspect,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runInspect(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := engine.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		if cfg, err = engine.LoadConfig(path); err != nil {
			return err
		}
	}

	eng := engine.New(cfg, log)

	var input io.Reader = os.Stdin
	if cmd.NArg() > 0 {
		f, err := os.Open(cmd.Args().First())
		if err != nil {
			return fmt.Errorf("unable to open document: %w", err)
		}
		defer f.Close()
		input = f
	}

	if err := eng.LoadDocument(input); err != nil {
		return err
	}
	if files := cmd.StringSlice("css"); len(files) > 0 {
		if err := eng.AddStylesheetFiles(files...); err != nil {
			return err
		}
	}

	styled, err := eng.Resolve()
	if err != nil {
		return err
	}

	dump := dumpTree(styled)
	out, err := yaml.Marshal(dump)
	if err != nil {
		return fmt.Errorf("unable to encode styles: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// styleDump is the YAML shape printed per element.
type styleDump struct {
	Tag        string      `yaml:"tag"`
	ID         string      `yaml:"id,omitempty"`
	Class      string      `yaml:"class,omitempty"`
	Color      string      `yaml:"color,omitempty"`
	Background string      `yaml:"background,omitempty"`
	FontSize   float64     `yaml:"font-size"`
	FontFamily string      `yaml:"font-family"`
	FontWeight string      `yaml:"font-weight"`
	Display    string      `yaml:"display"`
	Margin     [4]float64  `yaml:"margin,flow"`
	Padding    [4]float64  `yaml:"padding,flow"`
	Children   []styleDump `yaml:"children,omitempty"`
}

func dumpTree(sn *css.StyledNode) []styleDump {
	var out []styleDump
	for _, child := range sn.Children {
		if child.Node.Type == dom.ElementNode {
			out = append(out, dumpNode(child))
		} else {
			out = append(out, dumpTree(child)...)
		}
	}
	return out
}

func dumpNode(sn *css.StyledNode) styleDump {
	s := sn.Style
	d := styleDump{
		Tag:        sn.Node.Tag,
		ID:         sn.Node.ID(),
		Class:      sn.Node.Attr("class"),
		FontSize:   s.FontSize,
		FontFamily: s.FontFamily,
		FontWeight: s.FontWeight,
		Display:    s.Display.String(),
		Margin:     [4]float64{s.Margin.Top, s.Margin.Right, s.Margin.Bottom, s.Margin.Left},
		Padding:    [4]float64{s.Padding.Top, s.Padding.Right, s.Padding.Bottom, s.Padding.Left},
	}
	if s.Color != nil {
		d.Color = s.Color.String()
	}
	if s.BackgroundColor != nil {
		d.Background = s.BackgroundColor.String()
	}
	d.Children = dumpTree(sn)
	return d
}
