package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

// Manifests probes root-level build manifests. Every manifest present
// contributes an independent language signal; coexisting manifests are
// left for the resolver to rank.
func Manifests(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	var signals []domain.Signal
	signals = append(signals, javaSignals(snap, w)...)
	signals = append(signals, goSignals(snap, w)...)
	signals = append(signals, nodeSignals(snap, w)...)
	signals = append(signals, pythonSignals(snap, w)...)
	return signals
}

func sig(category, value, source string, weight float64) domain.Signal {
	return domain.Signal{Category: category, Value: value, Sources: []string{source}, Weight: weight}
}

// readAll concatenates the readable contents of the named root files.
// Unreadable files contribute nothing.
func readAll(snap domain.Snapshot, names ...string) string {
	var b strings.Builder
	for _, n := range names {
		content, err := snap.ReadText(n)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return strings.ToLower(b.String())
}

func containsAny(haystack string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}

func javaSignals(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	var signals []domain.Signal

	if snap.Exists("pom.xml") {
		signals = append(signals,
			sig(domain.CategoryLanguage, domain.LanguageJava, "pom.xml", w.Manifest),
			sig(domain.CategoryBuildTool, "maven", "pom.xml", w.Manifest),
			sig(domain.CategoryPackageManager, "maven", "pom.xml", w.Manifest),
		)
	}
	if snap.Exists("build.gradle.kts") {
		signals = append(signals,
			sig(domain.CategoryLanguage, domain.LanguageKotlin, "build.gradle.kts", w.Manifest),
			sig(domain.CategoryBuildTool, "gradle", "build.gradle.kts", w.Manifest),
			sig(domain.CategoryPackageManager, "gradle", "build.gradle.kts", w.Manifest),
		)
	} else if snap.Exists("build.gradle") {
		signals = append(signals,
			sig(domain.CategoryLanguage, domain.LanguageJava, "build.gradle", w.Manifest),
			sig(domain.CategoryBuildTool, "gradle", "build.gradle", w.Manifest),
			sig(domain.CategoryPackageManager, "gradle", "build.gradle", w.Manifest),
		)
	}
	if len(signals) == 0 {
		return nil
	}

	content := readAll(snap, "pom.xml", "build.gradle", "build.gradle.kts")
	source := signals[0].Sources[0]

	switch {
	case containsAny(content, "spring-boot", "springframework"):
		signals = append(signals, sig(domain.CategoryFramework, "spring", source, w.Manifest))
	case containsAny(content, "micronaut"):
		signals = append(signals, sig(domain.CategoryFramework, "micronaut", source, w.Manifest))
	case containsAny(content, "quarkus"):
		signals = append(signals, sig(domain.CategoryFramework, "quarkus", source, w.Manifest))
	}

	if containsAny(content, "junit") {
		signals = append(signals, sig(domain.CategoryTestFramework, "junit", source, w.Manifest))
	}
	if containsAny(content, "testng") {
		signals = append(signals, sig(domain.CategoryTestFramework, "testng", source, w.Manifest))
	}
	if containsAny(content, "kotest") {
		signals = append(signals, sig(domain.CategoryTestFramework, "kotest", source, w.Manifest))
	}
	return signals
}

var goVersionRe = regexp.MustCompile(`(?m)^go\s+([0-9][0-9.]*)`)

func goSignals(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	if !snap.Exists("go.mod") {
		return nil
	}

	signals := []domain.Signal{
		sig(domain.CategoryLanguage, domain.LanguageGo, "go.mod", w.Manifest),
		sig(domain.CategoryPackageManager, "go", "go.mod", w.Manifest),
	}

	content := readAll(snap, "go.mod")

	switch {
	case containsAny(content, "github.com/gin-gonic/gin"):
		signals = append(signals, sig(domain.CategoryFramework, "gin", "go.mod", w.Manifest))
	case containsAny(content, "github.com/labstack/echo"):
		signals = append(signals, sig(domain.CategoryFramework, "echo", "go.mod", w.Manifest))
	case containsAny(content, "github.com/gofiber/fiber"):
		signals = append(signals, sig(domain.CategoryFramework, "fiber", "go.mod", w.Manifest))
	case containsAny(content, "github.com/go-chi/chi"):
		signals = append(signals, sig(domain.CategoryFramework, "chi", "go.mod", w.Manifest))
	}

	if containsAny(content, "github.com/stretchr/testify") {
		signals = append(signals, sig(domain.CategoryTestFramework, "testify", "go.mod", w.Manifest))
	}
	if containsAny(content, "github.com/onsi/ginkgo") {
		signals = append(signals, sig(domain.CategoryTestFramework, "ginkgo", "go.mod", w.Manifest))
	}

	if m := goVersionRe.FindStringSubmatch(content); m != nil {
		signals = append(signals, sig(domain.CategoryVersion, m[1], "go.mod", w.Manifest))
	}
	return signals
}

// packageJSON covers the fields the node probe inspects. Unknown fields
// are ignored so lenient manifests still parse.
type packageJSON struct {
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
	PackageManager       string            `json:"packageManager"`
	Engines              struct {
		Node string `json:"node"`
	} `json:"engines"`
}

var nodeFrontendFrameworks = map[string]bool{
	"next": true, "react": true, "vue": true, "svelte": true,
}

func nodeSignals(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	if !snap.Exists("package.json") {
		return nil
	}

	// Presence alone is language evidence even when the JSON is broken.
	signals := []domain.Signal{
		sig(domain.CategoryLanguage, domain.LanguageNodeJS, "package.json", w.Manifest),
	}

	content, err := snap.ReadText("package.json")
	if err != nil {
		return signals
	}
	var pkg packageJSON
	if json.Unmarshal([]byte(content), &pkg) != nil {
		// Malformed manifest: no dependency-based probes, no failure.
		return signals
	}

	deps := map[string]bool{}
	for _, section := range []map[string]string{
		pkg.Dependencies, pkg.DevDependencies, pkg.PeerDependencies, pkg.OptionalDependencies,
	} {
		for name := range section {
			deps[strings.ToLower(name)] = true
		}
	}

	hasDep := func(keywords ...string) bool {
		for d := range deps {
			for _, k := range keywords {
				if strings.Contains(d, k) {
					return true
				}
			}
		}
		return false
	}

	manager := "npm"
	if pkg.PackageManager != "" {
		manager, _, _ = strings.Cut(pkg.PackageManager, "@")
	}
	signals = append(signals, sig(domain.CategoryPackageManager, manager, "package.json", w.Manifest))

	framework := ""
	switch {
	case hasDep("nestjs"):
		framework = "nestjs"
	case hasDep("next"):
		framework = "next"
	case hasDep("express"):
		framework = "express"
	case hasDep("fastify"):
		framework = "fastify"
	case hasDep("koa"):
		framework = "koa"
	case hasDep("react"):
		framework = "react"
	case hasDep("vue"):
		framework = "vue"
	case hasDep("svelte"):
		framework = "svelte"
	}
	if framework != "" {
		signals = append(signals, sig(domain.CategoryFramework, framework, "package.json", w.Manifest))
	}

	hint := domain.HintBackend
	if nodeFrontendFrameworks[framework] {
		hint = domain.HintFrontend
	}
	signals = append(signals, sig(domain.CategoryHint, hint, "package.json", w.Manifest))

	for _, tf := range []string{"jest", "mocha", "vitest", "ava", "cypress"} {
		if deps[tf] {
			signals = append(signals, sig(domain.CategoryTestFramework, tf, "package.json", w.Manifest))
		}
	}

	if pkg.Engines.Node != "" {
		signals = append(signals, sig(domain.CategoryVersion, pkg.Engines.Node, "package.json", w.Manifest))
	}
	return signals
}

var pythonVersionRe = regexp.MustCompile(`python[^\n]*?([0-9]+\.[0-9]+)`)

func pythonSignals(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	var source string
	switch {
	case snap.Exists("pyproject.toml"):
		source = "pyproject.toml"
	case snap.Exists("requirements.txt"):
		source = "requirements.txt"
	case snap.Exists("Pipfile"):
		source = "Pipfile"
	default:
		return nil
	}

	signals := []domain.Signal{
		sig(domain.CategoryLanguage, domain.LanguagePython, source, w.Manifest),
	}

	content := readAll(snap, "pyproject.toml", "requirements.txt", "Pipfile")

	manager := "pip"
	switch {
	case snap.Exists("pyproject.toml") && containsAny(content, "poetry"):
		manager = "poetry"
	case snap.Exists("Pipfile") || containsAny(content, "pipenv"):
		manager = "pipenv"
	}
	signals = append(signals, sig(domain.CategoryPackageManager, manager, source, w.Manifest))

	switch {
	case containsAny(content, "django"):
		signals = append(signals, sig(domain.CategoryFramework, "django", source, w.Manifest))
	case containsAny(content, "fastapi"):
		signals = append(signals, sig(domain.CategoryFramework, "fastapi", source, w.Manifest))
	case containsAny(content, "flask"):
		signals = append(signals, sig(domain.CategoryFramework, "flask", source, w.Manifest))
	case containsAny(content, "starlette"):
		signals = append(signals, sig(domain.CategoryFramework, "starlette", source, w.Manifest))
	}

	if containsAny(content, "pytest") {
		signals = append(signals, sig(domain.CategoryTestFramework, "pytest", source, w.Manifest))
	}
	if containsAny(content, "unittest") {
		signals = append(signals, sig(domain.CategoryTestFramework, "unittest", source, w.Manifest))
	}
	if containsAny(content, "tox") {
		signals = append(signals, sig(domain.CategoryTestFramework, "tox", source, w.Manifest))
	}

	if m := pythonVersionRe.FindStringSubmatch(content); m != nil {
		signals = append(signals, sig(domain.CategoryVersion, m[1], source, w.Manifest))
	}
	return signals
}
