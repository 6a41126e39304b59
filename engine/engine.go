// Document engine: HTML ingestion, stylesheet collection and full-tree
// style resolution.
package engine

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/EthanRStokes/stokes-browser-sub001/css"
	"github.com/EthanRStokes/stokes-browser-sub001/dom"
)

// Engine loads a document, gathers its stylesheets and resolves computed
// styles for the whole tree. Stylesheets may be added between resolution
// passes but not during one; the engine is not safe for concurrent use.
type Engine struct {
	cfg      Config
	log      *zap.Logger
	resolver *css.StyleResolver
	document *dom.Node
}

// New creates an engine with the given configuration. A nil logger
// disables logging.
func New(cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	resolver := css.NewStyleResolver()
	resolver.SetRootFontSize(cfg.DefaultFontSize)
	resolver.SetViewport(cfg.ViewportWidth, cfg.ViewportHeight)

	e := &Engine{
		cfg:      cfg,
		log:      log,
		resolver: resolver,
	}
	for _, extra := range cfg.ExtraCSS {
		e.AddCSS(extra)
	}
	return e
}

// Document returns the loaded document root, or nil before LoadDocument.
func (e *Engine) Document() *dom.Node {
	return e.document
}

// LoadDocument parses an HTML document and collects the contents of its
// <style> elements as author stylesheets, in document order.
func (e *Engine) LoadDocument(r io.Reader) error {
	doc, err := dom.ParseReader(r)
	if err != nil {
		return fmt.Errorf("unable to parse document: %w", err)
	}
	e.document = doc

	styleElements := doc.ElementsByTag("style")
	for _, el := range styleElements {
		e.AddCSS(el.TextContent())
	}
	e.log.Debug("document loaded",
		zap.Int("style-elements", len(styleElements)))
	return nil
}

// AddCSS parses CSS text and registers it as an author stylesheet.
func (e *Engine) AddCSS(text string) {
	ss := css.Parse(text)
	e.resolver.AddStylesheet(ss)
	e.log.Debug("stylesheet added", zap.Int("rules", len(ss.Rules)))
}

// AddStylesheetFiles loads author stylesheets from files. All files are
// attempted; the returned error aggregates the individual failures.
func (e *Engine) AddStylesheetFiles(paths ...string) error {
	var err error
	for _, path := range paths {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			err = multierr.Append(err, fmt.Errorf("unable to read stylesheet '%s': %w", path, readErr))
			continue
		}
		e.AddCSS(string(data))
	}
	return err
}

// Resolve runs one full style resolution pass over the loaded document and
// returns the styled tree.
func (e *Engine) Resolve() (*css.StyledNode, error) {
	if e.document == nil {
		return nil, fmt.Errorf("no document loaded")
	}
	styled := e.resolver.BuildStyleTree(e.document)

	count := 0
	styled.Walk(func(sn *css.StyledNode) {
		if sn.Node.Type == dom.ElementNode {
			count++
		}
	})
	e.log.Info("styles resolved", zap.Int("elements", count))
	return styled, nil
}
