// Package render maps a resolved stack profile onto template keys and
// the parameter set substituted into them.
package render

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

// Template keys. Each key names one CI template and one Dockerfile
// template in the store; KeyGeneric is the guaranteed fallback.
const (
	KeyJava         = "java"
	KeyGo           = "go"
	KeyNodeBackend  = "nodejs-backend"
	KeyNodeFrontend = "nodejs-frontend"
	KeyPython       = "python"
	KeyGeneric      = "generic"
)

// Stages is the fixed GitLab pipeline stage order.
var Stages = []string{
	"prepare", "lint", "test", "sonar", "build",
	"package", "docker_build", "push", "deploy_staging", "deploy_prod",
}

// TemplateKey selects the template set for a profile. Selection is a
// direct lookup on primary language plus the frontend/backend hint for
// Node.js; unknown stacks take the generic fallback.
func TemplateKey(p domain.StackProfile) string {
	switch p.PrimaryLanguage {
	case domain.LanguageJava, domain.LanguageKotlin:
		return KeyJava
	case domain.LanguageGo:
		return KeyGo
	case domain.LanguageNodeJS:
		if p.Hint == domain.HintFrontend {
			return KeyNodeFrontend
		}
		return KeyNodeBackend
	case domain.LanguagePython:
		return KeyPython
	default:
		return KeyGeneric
	}
}

// CITemplatePath returns the store key of the CI template for key.
func CITemplatePath(key string) string { return "ci/" + key + ".yml.tmpl" }

// DockerfileTemplatePath returns the store key of the Dockerfile template.
func DockerfileTemplatePath(key string) string { return "docker/" + key + ".dockerfile.tmpl" }

// SonarTemplatePath is the store key of the sonar stub template.
const SonarTemplatePath = "sonar/sonar-project.properties.tmpl"

// ImageName derives a registry-safe image slug from a project name:
// camel-case words are split and joined with dashes, everything else
// is lowercased.
func ImageName(projectName string) string {
	name := strings.NewReplacer("_", "-", " ", "-", ".", "-").Replace(projectName)
	var words []string
	for _, part := range strings.Split(name, "-") {
		for _, w := range camelcase.Split(part) {
			if w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	if len(words) == 0 {
		return "app"
	}
	return strings.Join(words, "-")
}
