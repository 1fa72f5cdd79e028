package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfdeploy/selfdeploy/internal/domain"
	"github.com/selfdeploy/selfdeploy/internal/domain/render"
)

func TestBuildParams_JavaMaven(t *testing.T) {
	profile := domain.StackProfile{
		PrimaryLanguage: domain.LanguageJava,
		BuildTool:       "maven",
		TestFramework:   "junit",
	}

	params := render.BuildParams(profile, "BillingService", false)

	assert.Equal(t, render.KeyJava, params.Key)
	assert.Equal(t, "billing-service", params.ImageName)
	assert.Equal(t, "maven:3.9-eclipse-temurin-17", params.BaseImage)
	assert.Equal(t, "eclipse-temurin:17-jre", params.RuntimeImage)
	assert.Equal(t, []string{"mvn -B test"}, params.TestCmds)
	assert.Equal(t, []string{".m2/repository"}, params.CachePaths)
	assert.Equal(t, []string{"target/*.jar"}, params.BuildArtifacts)
	assert.Equal(t, render.Stages, params.Stages)
}

func TestBuildParams_KotlinGradle(t *testing.T) {
	profile := domain.StackProfile{
		PrimaryLanguage: domain.LanguageKotlin,
		BuildTool:       "gradle",
	}

	params := render.BuildParams(profile, "svc", false)

	assert.Equal(t, "gradle:8-jdk17", params.BaseImage)
	assert.Equal(t, []string{"./gradlew --no-daemon test"}, params.TestCmds)
	assert.Equal(t, []string{".gradle"}, params.CachePaths)
	assert.Equal(t, []string{"build/libs/*.jar"}, params.BuildArtifacts)
}

func TestBuildParams_TestFrameworkOverridesDefault(t *testing.T) {
	profile := domain.StackProfile{
		PrimaryLanguage: domain.LanguageGo,
		TestFramework:   "ginkgo",
	}

	params := render.BuildParams(profile, "svc", false)
	assert.Equal(t, []string{"go run github.com/onsi/ginkgo/v2/ginkgo ./..."}, params.TestCmds)
}

func TestBuildParams_NodePackageManagerDrivesCommands(t *testing.T) {
	profile := domain.StackProfile{
		PrimaryLanguage: domain.LanguageNodeJS,
		PackageManager:  "pnpm",
		Hint:            domain.HintFrontend,
	}

	params := render.BuildParams(profile, "web", false)

	assert.Equal(t, []string{"pnpm install --frozen-lockfile"}, params.PrepareCmds)
	assert.Equal(t, "nginx:1.27-alpine", params.RuntimeImage)
	assert.Contains(t, params.CachePaths, "node_modules")
}

func TestBuildParams_PythonPoetryPrepare(t *testing.T) {
	profile := domain.StackProfile{
		PrimaryLanguage: domain.LanguagePython,
		PackageManager:  "poetry",
	}

	params := render.BuildParams(profile, "svc", true)

	assert.Equal(t, []string{"pip install poetry", "poetry install"}, params.PrepareCmds)
	assert.True(t, params.HasIntegrationTests)
	assert.Equal(t, "python:3.12-slim", params.RuntimeImage)
}

func TestBuildParams_UnknownStackPlaceholders(t *testing.T) {
	params := render.BuildParams(domain.StackProfile{PrimaryLanguage: domain.LanguageUnknown}, "svc", false)

	assert.Equal(t, render.KeyGeneric, params.Key)
	require.Len(t, params.TestCmds, 1)
	assert.Contains(t, params.TestCmds[0], "placeholder")
	assert.Empty(t, params.BuildArtifacts)
	assert.Equal(t, "alpine:3.19", params.BaseImage)
}

func TestBuildParams_FixedCIContext(t *testing.T) {
	params := render.BuildParams(domain.StackProfile{PrimaryLanguage: domain.LanguageGo}, "svc", false)

	assert.Equal(t, "http://sonarqube:9000", params.SonarHost)
	assert.Equal(t, "${CI_COMMIT_SHORT_SHA}", params.DockerTag)
	assert.Equal(t, "develop", params.StagingRef)
	assert.Equal(t, "main", params.ProdRef)
}
