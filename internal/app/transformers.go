package app

import (
	"fmt"

	"github.com/bethropolis/restyle/internal/config"
	"github.com/bethropolis/restyle/internal/highlighter"
	"github.com/bethropolis/restyle/internal/highlighter/lang"
	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/transform/markup"
	"github.com/bethropolis/restyle/internal/transform/syntax"
	"github.com/bethropolis/restyle/internal/transform/token"
)

// Pipeline is the transformer run after every edit, plus the token table
// used to draw attachments.
type Pipeline struct {
	Transformer transform.Transformer
	Tokens      *token.Table // nil when tokens are disabled
	Language    *lang.Language
}

// BuildPipeline assembles markup, tokens and syntax, in that order, as
// enabled in cfg. The syntax language comes from cfg.Language or, when that
// is empty, from filePath; without a language the syntax stage is left out.
func BuildPipeline(cfg config.TransformConfig, filePath string, hl *highlighter.Highlighter) (*Pipeline, error) {
	p := &Pipeline{}
	var chain transform.Chain

	if cfg.Markup {
		m, err := markup.New(cfg.MarkupRules...)
		if err != nil {
			return nil, fmt.Errorf("markup rules: %w", err)
		}
		chain = append(chain, m)
	}

	if cfg.Tokens {
		table := token.DefaultTable()
		if cfg.TokenFile != "" {
			var err error
			if table, err = token.LoadTable(cfg.TokenFile); err != nil {
				return nil, fmt.Errorf("token table: %w", err)
			}
		}
		p.Tokens = table
		chain = append(chain, token.New(table))
	}

	if cfg.Syntax {
		highlighter.RegisterLanguages()
		if cfg.Language != "" {
			p.Language = lang.GetByName(cfg.Language)
			if p.Language == nil {
				return nil, fmt.Errorf("unknown language %q", cfg.Language)
			}
		} else if filePath != "" {
			p.Language = lang.GetForFile(filePath)
		}
		if p.Language != nil {
			if hl == nil {
				hl = highlighter.NewHighlighter()
			}
			chain = append(chain, syntax.New(hl, p.Language))
		} else {
			logger.Debugf("App: no syntax language for '%s'", filePath)
		}
	}

	p.Transformer = chain
	if cfg.CheckContracts {
		p.Transformer = transform.Checked(chain)
	}
	logger.Infof("App: transformer %s", transform.Name(p.Transformer))
	return p, nil
}

// Glyphs returns the attachment glyph lookup for drawing.
func (p *Pipeline) Glyphs() func(ref string) (string, bool) {
	if p.Tokens == nil {
		return nil
	}
	return p.Tokens.Glyph
}
