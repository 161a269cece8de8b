// internal/highlighter/lang/language.go
package lang

import (
	"fmt"
	"io/fs"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/restyle/internal/logger"
)

// QueryFS holds the highlight queries, laid out as queries/<QueryPath>/highlights.scm.
var QueryFS fs.FS

// Language is a tree-sitter grammar plus the files and query it applies to.
type Language struct {
	Name           string
	TreeSitterLang *sitter.Language
	Extensions     []string
	QueryPath      string // directory under queries/
}

// Query returns the highlight query source for the language.
func (l *Language) Query() ([]byte, error) {
	if QueryFS == nil {
		return nil, fmt.Errorf("no query filesystem set for %s", l.Name)
	}
	if l.QueryPath == "" {
		return nil, fmt.Errorf("no query path defined for %s", l.Name)
	}

	var lastErr error
	for _, name := range []string{"highlights.scm", "highlight.scm"} {
		path := fmt.Sprintf("queries/%s/%s", l.QueryPath, name)
		query, err := fs.ReadFile(QueryFS, path)
		if err == nil {
			logger.Debugf("Loaded query from %s for %s (%d bytes)", path, l.Name, len(query))
			return query, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to load query for %s: %w", l.Name, lastErr)
}
