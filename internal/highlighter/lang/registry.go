package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/restyle/internal/logger"
)

var registry struct {
	sync.RWMutex
	languages     []*Language
	extToLanguage map[string]*Language
}

// Register adds a language. A later registration of the same extension wins.
func Register(l *Language) {
	registry.Lock()
	defer registry.Unlock()

	if registry.extToLanguage == nil {
		registry.extToLanguage = make(map[string]*Language)
	}
	registry.languages = append(registry.languages, l)
	for _, ext := range l.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, l.Name)
		}
		registry.extToLanguage[lowerExt] = l
	}

	logger.Debugf("Registered language: %s with extensions: %v", l.Name, l.Extensions)
}

// GetForFile returns the language for a file path by extension, or nil.
func GetForFile(filePath string) *Language {
	registry.RLock()
	defer registry.RUnlock()

	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// GetByName returns the language with a case-insensitive name match, or nil.
func GetByName(name string) *Language {
	registry.RLock()
	defer registry.RUnlock()

	for _, l := range registry.languages {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	return nil
}

// GetAll returns all registered languages in registration order.
func GetAll() []*Language {
	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}
