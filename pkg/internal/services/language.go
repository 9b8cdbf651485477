package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectLanguage guesses the language of a piece of member generated
// content, in ISO 639-1. The detector is built once; model data loads
// lazily on first use.
func DetectLanguage(content string) string {
	if len(content) == 0 {
		return "unknown"
	}

	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Japanese,
				lingua.Chinese,
				lingua.Korean,
			).
			WithPreloadedLanguageModels().
			Build()
	})

	if language, exists := languageDetector.DetectLanguageOf(content); exists {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return "unknown"
}
