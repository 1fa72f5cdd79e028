package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

// extensionLanguages maps source-file extensions to languages.
var extensionLanguages = map[string]string{
	".java": domain.LanguageJava,
	".kt":   domain.LanguageKotlin,
	".kts":  domain.LanguageKotlin,
	".go":   domain.LanguageGo,
	".js":   domain.LanguageNodeJS,
	".jsx":  domain.LanguageNodeJS,
	".ts":   domain.LanguageNodeJS,
	".tsx":  domain.LanguageNodeJS,
	".py":   domain.LanguagePython,
}

// Extensions counts source-file extensions across the tree. The most
// frequent language gets the extension weight; every other language seen
// gets the weaker secondary weight. Manifest evidence always outranks
// this probe via the weight ordering.
func Extensions(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	counts := map[string]int{}
	for _, f := range snap.Files() {
		ext := strings.ToLower(filepath.Ext(f))
		if lang, ok := extensionLanguages[ext]; ok {
			counts[lang]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	top := ""
	for _, lang := range domain.LanguagePriority {
		n, ok := counts[lang]
		if !ok {
			continue
		}
		// Strict > keeps count ties resolved by the priority order.
		if top == "" || n > counts[top] {
			top = lang
		}
	}

	var signals []domain.Signal
	for _, lang := range domain.LanguagePriority {
		n, ok := counts[lang]
		if !ok {
			continue
		}
		weight := w.Secondary
		if lang == top {
			weight = w.Extension
		}
		signals = append(signals, domain.Signal{
			Category: domain.CategoryLanguage,
			Value:    lang,
			Sources:  []string{fmt.Sprintf("%d source files", n)},
			Weight:   weight,
		})
	}
	return signals
}
