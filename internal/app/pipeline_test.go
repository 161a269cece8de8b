package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/restyle/internal/config"
	"github.com/bethropolis/restyle/internal/transform"
	"github.com/bethropolis/restyle/internal/transform/markup"
)

func TestBuildPipeline(t *testing.T) {
	tests := []struct {
		name     string
		edit     func(*config.TransformConfig)
		filePath string
		want     string
	}{
		{"defaults without language", nil, "notes.txt", "markup+tokens"},
		{"defaults with language", nil, "main.go", "markup+tokens+syntax:Go"},
		{"forced language", func(c *config.TransformConfig) { c.Language = "python" }, "notes.txt", "markup+tokens+syntax:Python"},
		{"syntax off", func(c *config.TransformConfig) { c.Syntax = false }, "main.go", "markup+tokens"},
		{"markup only", func(c *config.TransformConfig) { c.Tokens, c.Syntax = false, false }, "", "markup"},
		{"nothing", func(c *config.TransformConfig) { c.Markup, c.Tokens, c.Syntax = false, false, false }, "", "chain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig().Transform
			if tt.edit != nil {
				tt.edit(&cfg)
			}
			p, err := BuildPipeline(cfg, tt.filePath, nil)
			if err != nil {
				t.Fatalf("BuildPipeline() error = %v", err)
			}
			if got := transform.Name(p.Transformer); got != tt.want {
				t.Errorf("name = %q, want %q", got, tt.want)
			}
			if (p.Tokens != nil) != cfg.Tokens {
				t.Errorf("Tokens = %v with tokens enabled %v", p.Tokens, cfg.Tokens)
			}
		})
	}
}

func TestBuildPipelineCheckContracts(t *testing.T) {
	cfg := config.NewDefaultConfig().Transform
	cfg.CheckContracts = false
	p, err := BuildPipeline(cfg, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Transformer.(transform.Chain); !ok {
		t.Errorf("unchecked pipeline is %T, want transform.Chain", p.Transformer)
	}
}

func TestBuildPipelineErrors(t *testing.T) {
	cfg := config.NewDefaultConfig().Transform
	cfg.MarkupRules = []markup.Rule{{Delimiter: "", Attr: "bold"}}
	if _, err := BuildPipeline(cfg, "", nil); err == nil {
		t.Errorf("bad markup rule: error = nil")
	}

	cfg = config.NewDefaultConfig().Transform
	cfg.TokenFile = filepath.Join(t.TempDir(), "missing.toml")
	if _, err := BuildPipeline(cfg, "", nil); err == nil {
		t.Errorf("missing token file: error = nil")
	}

	cfg = config.NewDefaultConfig().Transform
	cfg.Language = "cobol"
	if _, err := BuildPipeline(cfg, "", nil); err == nil {
		t.Errorf("unknown language: error = nil")
	}
}

func TestLabel(t *testing.T) {
	p, err := BuildPipeline(config.NewDefaultConfig().Transform, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  string
		opts LabelOptions
		want string
	}{
		{"text", "**hi** :smile:\n", LabelOptions{}, "hi \uFFFC\n"},
		{"runs", "**hi** :smile:\n", LabelOptions{Runs: true}, "hi \uFFFC\n0+2{bold=true} 2+1{} 3+1{attachment=emoji/smile} 4+1{}\n"},
		{"runs without newline", "`x`", LabelOptions{Runs: true}, "x\n0+1{code=true}\n"},
		{"glyphs", "ok :check:", LabelOptions{Glyphs: p.Glyphs()}, "ok ✔"},
		{"empty", "", LabelOptions{Runs: true}, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Label(&buf, tt.src, p.Transformer, tt.opts); err != nil {
				t.Fatalf("Label() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPipelineTokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.toml")
	src := "sentinel = \"%\"\n\n[[token]]\ntoken = \"%ok%\"\nref = \"symbol/ok\"\nglyph = \"+\"\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.NewDefaultConfig().Transform
	cfg.TokenFile = path
	p, err := BuildPipeline(cfg, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Label(&buf, "a %ok% :smile:", p.Transformer, LabelOptions{Glyphs: p.Glyphs()}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a + :smile:"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}
