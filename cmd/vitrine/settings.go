package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// settings is the resolved shell configuration. Flags win over VITRINE_*
// environment variables.
type settings struct {
	Theme     chrome.ThemeMode
	Language  string
	LogFile   string
	LogLevel  string
	AltScreen bool
}

func loadSettings(v *viper.Viper, cat *catalog.Catalog) (settings, error) {
	theme, err := chrome.ParseThemeMode(v.GetString("theme"))
	if err != nil {
		return settings{}, vitrineerrors.NewValidationError("theme", "must be light, dark or system", err)
	}

	language := v.GetString("language")
	if language != "" {
		if _, _, ok := cat.Language(language); !ok {
			message := fmt.Sprintf("not in the catalog (%s)", languageCodes(cat))
			if guess, ok := closestLanguage(cat, language); ok {
				message += fmt.Sprintf("; did you mean %q?", guess)
			}
			return settings{}, vitrineerrors.NewValidationError("language", message,
				vitrineerrors.NewSelectionError("language", language))
		}
	}

	return settings{
		Theme:     theme,
		Language:  language,
		LogFile:   v.GetString("log-file"),
		LogLevel:  v.GetString("log-level"),
		AltScreen: !v.GetBool("no-alt-screen"),
	}, nil
}

func languageCodes(cat *catalog.Catalog) string {
	codes := make([]string, 0, len(cat.Languages))
	for _, lang := range cat.Languages {
		codes = append(codes, lang.Code)
	}
	return strings.Join(codes, ", ")
}

// closestLanguage suggests the catalog language whose code or name is within
// half of code's length in edits.
func closestLanguage(cat *catalog.Catalog, code string) (string, bool) {
	needle := strings.ToLower(code)
	best, bestDist := "", len(needle)/2+1
	for _, lang := range cat.Languages {
		for _, candidate := range []string{lang.Code, strings.ToLower(lang.DisplayName)} {
			if dist := levenshtein.ComputeDistance(needle, candidate); dist < bestDist {
				best, bestDist = lang.Code, dist
			}
		}
	}
	return best, best != ""
}
