// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/restyle/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	TabWidth       *int
	ScrollOff      *int
	EnableTags     *string
	DisableTags    *string
	EnablePkgs     *string
	DisablePkgs    *string
	EnableFiles    *string
	DisableFiles   *string

	SystemClipboard *bool
	LineNumbers     *bool
	Theme           *string

	Markup         *bool
	Tokens         *bool
	Syntax         *bool
	TokenFile      *string
	Language       *string
	CheckContracts *bool

	// Label mode: transform once and print instead of starting the editor.
	Print *bool
	Runs  *bool
}

// DefineFlags sets up the flags on fs, or on flag.CommandLine when fs is nil.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.TabWidth = fs.Int("tabwidth", 0, "Number of spaces per tab - Overrides config file")               // 0 means unset
	f.ScrollOff = fs.Int("scrolloff", -1, "Lines of context above/below cursor - Overrides config file") // -1 means unset
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")

	f.SystemClipboard = fs.Bool("system-clipboard", false, "Use system clipboard instead of internal clipboard")
	f.LineNumbers = fs.Bool("line-numbers", false, "Show line numbers")
	f.Theme = fs.String("theme", "", "Name of the theme to start with")

	f.Markup = fs.Bool("markup", true, "Turn delimiter pairs such as **bold** into styled runs")
	f.Tokens = fs.Bool("tokens", true, "Replace tokens such as :smile: with attachments")
	f.Syntax = fs.Bool("syntax", true, "Apply syntax highlighting for recognised languages")
	f.TokenFile = fs.String("token-file", "", "Path to a TOML token table")
	f.Language = fs.String("lang", "", "Syntax language (go, python, javascript, rust); detected from the file name when empty")
	f.CheckContracts = fs.Bool("check-contracts", true, "Check transformer postconditions after every call")

	f.Print = fs.Bool("print", false, "Transform the input once and print the plain text")
	f.Runs = fs.Bool("runs", false, "With -print, also print the attribute runs")
}

// ParseFlags defines the flags on flag.CommandLine, parses os.Args and
// returns the remaining non-flag arguments (e.g., the file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags(nil)
	flag.Parse()
	return flag.Args()
}

// Parse defines the flags on fs and parses args.
func (f *Flags) Parse(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s=%s", fl.Name, fl.Value)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "line-numbers":
			cfg.Editor.LineNumbers = *f.LineNumbers
		case "theme":
			cfg.Editor.Theme = *f.Theme
		case "markup":
			cfg.Transform.Markup = *f.Markup
		case "tokens":
			cfg.Transform.Tokens = *f.Tokens
		case "syntax":
			cfg.Transform.Syntax = *f.Syntax
		case "token-file":
			cfg.Transform.TokenFile = *f.TokenFile
		case "lang":
			cfg.Transform.Language = *f.Language
		case "check-contracts":
			cfg.Transform.CheckContracts = *f.CheckContracts
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
