package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "selfdeploy-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "selfdeploy")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/selfdeploy")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/repos", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_DetectJavaMaven(t *testing.T) {
	out, code := run(t, "detect", fixturePath("java-maven"), "--format", "json")
	assert.Equal(t, 0, code)

	var profile domain.StackProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, domain.LanguageJava, profile.PrimaryLanguage)
	assert.Equal(t, "maven", profile.BuildTool)
	assert.Equal(t, "spring", profile.Framework)
}

func TestE2E_DetectReactApp(t *testing.T) {
	out, code := run(t, "detect", fixturePath("react-app"), "--format", "json")
	assert.Equal(t, 0, code)

	var profile domain.StackProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, domain.LanguageNodeJS, profile.PrimaryLanguage)
	assert.Equal(t, domain.HintFrontend, profile.Hint)
}

func TestE2E_GenerateIntoOutputDir(t *testing.T) {
	outDir := t.TempDir()

	out, code := run(t, "generate", fixturePath("java-maven"), "--output", outDir)
	assert.Equal(t, 0, code, out)

	assert.FileExists(t, filepath.Join(outDir, ".gitlab-ci.yml"))
	assert.FileExists(t, filepath.Join(outDir, "Dockerfile"))
	assert.FileExists(t, filepath.Join(outDir, "sonar-project.properties"))
	assert.FileExists(t, filepath.Join(outDir, "report.json"))
	assert.FileExists(t, filepath.Join(outDir, "REPORT.md"))

	data, err := os.ReadFile(filepath.Join(outDir, "report.json"))
	require.NoError(t, err)
	var report domain.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, domain.LanguageJava, report.Profile.PrimaryLanguage)
}

func TestE2E_DryRunLeavesFixtureUntouched(t *testing.T) {
	out, code := run(t, "generate", fixturePath("react-app"), "--dry-run", "--json")
	assert.Equal(t, 0, code, out)

	assert.NoFileExists(t, filepath.Join(fixturePath("react-app"), ".gitlab-ci.yml"))
	assert.NoFileExists(t, filepath.Join(fixturePath("react-app"), "Dockerfile"))
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "selfdeploy")
}
