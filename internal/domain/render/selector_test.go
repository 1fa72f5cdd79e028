package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selfdeploy/selfdeploy/internal/domain"
	"github.com/selfdeploy/selfdeploy/internal/domain/render"
)

func TestTemplateKey(t *testing.T) {
	cases := []struct {
		name    string
		profile domain.StackProfile
		want    string
	}{
		{"java", domain.StackProfile{PrimaryLanguage: domain.LanguageJava}, render.KeyJava},
		{"kotlin shares java templates", domain.StackProfile{PrimaryLanguage: domain.LanguageKotlin}, render.KeyJava},
		{"go", domain.StackProfile{PrimaryLanguage: domain.LanguageGo}, render.KeyGo},
		{"node backend", domain.StackProfile{PrimaryLanguage: domain.LanguageNodeJS, Hint: domain.HintBackend}, render.KeyNodeBackend},
		{"node frontend", domain.StackProfile{PrimaryLanguage: domain.LanguageNodeJS, Hint: domain.HintFrontend}, render.KeyNodeFrontend},
		{"node without hint is backend", domain.StackProfile{PrimaryLanguage: domain.LanguageNodeJS}, render.KeyNodeBackend},
		{"python", domain.StackProfile{PrimaryLanguage: domain.LanguagePython}, render.KeyPython},
		{"unknown", domain.StackProfile{PrimaryLanguage: domain.LanguageUnknown}, render.KeyGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.TemplateKey(tc.profile))
		})
	}
}

func TestImageName(t *testing.T) {
	cases := map[string]string{
		"MyServiceAPI":    "my-service-api",
		"my_service":      "my-service",
		"billing.core":    "billing-core",
		"Payment Gateway": "payment-gateway",
		"already-kebab":   "already-kebab",
		"":                "app",
	}
	for in, want := range cases {
		assert.Equal(t, want, render.ImageName(in), "input %q", in)
	}
}

func TestTemplatePaths(t *testing.T) {
	assert.Equal(t, "ci/go.yml.tmpl", render.CITemplatePath(render.KeyGo))
	assert.Equal(t, "docker/nodejs-frontend.dockerfile.tmpl", render.DockerfileTemplatePath(render.KeyNodeFrontend))
	assert.Equal(t, "sonar/sonar-project.properties.tmpl", render.SonarTemplatePath)
}
