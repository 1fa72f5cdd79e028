// Package resolve aggregates extracted signals into a StackProfile.
package resolve

import (
	"sort"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

// Resolve is a total function from a signal sequence to a profile: it
// never fails, and for identical input it returns an identical profile.
// An empty sequence resolves to the unknown-language sentinel.
func Resolve(signals []domain.Signal) domain.StackProfile {
	profile := domain.StackProfile{
		PrimaryLanguage: domain.LanguageUnknown,
	}

	primary, secondary := resolveLanguages(signals)
	if primary != "" {
		profile.PrimaryLanguage = primary
	}
	profile.SecondaryLanguages = secondary

	profile.BuildTool = bestValue(signals, domain.CategoryBuildTool)
	profile.TestFramework = bestValue(signals, domain.CategoryTestFramework)
	profile.PackageManager = bestValue(signals, domain.CategoryPackageManager)
	profile.Framework = bestValue(signals, domain.CategoryFramework)
	profile.Hint = bestValue(signals, domain.CategoryHint)
	profile.LanguageVersion = bestValue(signals, domain.CategoryVersion)

	for _, s := range signals {
		if s.Category != domain.CategoryExistingArtifact {
			continue
		}
		switch s.Value {
		case domain.ArtifactDockerfile:
			profile.HasDockerfile = true
		case domain.ArtifactCIPipeline:
			profile.HasCI = true
		case domain.ArtifactSonarConfig:
			profile.HasSonarConfig = true
		}
	}

	return profile
}

// resolveLanguages ranks language candidates by aggregate weight. Ties
// fall back to the strongest single signal (manifest evidence beats
// extension counting), then to the fixed priority order — never to map
// iteration order.
func resolveLanguages(signals []domain.Signal) (primary string, secondary []string) {
	total := map[string]float64{}
	maxSingle := map[string]float64{}
	for _, s := range signals {
		if s.Category != domain.CategoryLanguage {
			continue
		}
		total[s.Value] += s.Weight
		if s.Weight > maxSingle[s.Value] {
			maxSingle[s.Value] = s.Weight
		}
	}
	if len(total) == 0 {
		return "", nil
	}

	candidates := make([]string, 0, len(total))
	for lang := range total {
		candidates = append(candidates, lang)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if total[a] != total[b] {
			return total[a] > total[b]
		}
		if maxSingle[a] != maxSingle[b] {
			return maxSingle[a] > maxSingle[b]
		}
		return priorityIndex(a) < priorityIndex(b)
	})

	secondary = candidates[1:]
	sort.Strings(secondary)
	return candidates[0], secondary
}

func priorityIndex(lang string) int {
	for i, l := range domain.LanguagePriority {
		if l == lang {
			return i
		}
	}
	return len(domain.LanguagePriority)
}

// bestValue picks the single highest-weight signal for a category.
// Earlier signals win weight ties, so the result follows extractor
// registration order, not input permutations.
func bestValue(signals []domain.Signal, category string) string {
	value := ""
	best := 0.0
	for _, s := range signals {
		if s.Category != category {
			continue
		}
		if value == "" || s.Weight > best {
			value = s.Value
			best = s.Weight
		}
	}
	return value
}
