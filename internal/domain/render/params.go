package render

import "github.com/selfdeploy/selfdeploy/internal/domain"

// Params is the fixed set of named values substituted into templates.
type Params struct {
	Key             string
	ProjectName     string
	ImageName       string
	BaseImage       string
	RuntimeImage    string
	LanguageVersion string

	Stages      []string
	PrepareCmds []string
	LintCmds    []string
	TestCmds    []string
	SonarCmds   []string
	BuildCmds   []string
	PackageCmds []string

	CachePaths       []string
	BuildArtifacts   []string
	PackageArtifacts []string

	HasIntegrationTests bool

	SonarHost  string
	DockerTag  string
	StagingRef string
	ProdRef    string
}

// commandSet groups the per-stage script lines for one ecosystem.
type commandSet struct {
	prepare, lint, test, sonar, build, pkg []string
}

// testCommandOverrides maps a detected test framework to the command
// replacing the ecosystem default.
var testCommandOverrides = map[string][]string{
	"ginkgo":   {"go run github.com/onsi/ginkgo/v2/ginkgo ./..."},
	"vitest":   {"npx vitest run"},
	"mocha":    {"npx mocha"},
	"pytest":   {"pytest"},
	"unittest": {"python -m unittest discover"},
	"tox":      {"tox"},
}

// BuildParams derives the render parameters for a profile. projectName
// is the analyzed directory's base name; hasIntegrationTests adds an
// integration job to the CI render context.
func BuildParams(p domain.StackProfile, projectName string, hasIntegrationTests bool) Params {
	key := TemplateKey(p)
	cmds := commandsFor(p)

	if override, ok := testCommandOverrides[p.TestFramework]; ok {
		cmds.test = override
	}

	params := Params{
		Key:                 key,
		ProjectName:         projectName,
		ImageName:           ImageName(projectName),
		BaseImage:           baseImage(p),
		RuntimeImage:        runtimeImage(p),
		LanguageVersion:     p.LanguageVersion,
		Stages:              Stages,
		PrepareCmds:         cmds.prepare,
		LintCmds:            cmds.lint,
		TestCmds:            cmds.test,
		SonarCmds:           cmds.sonar,
		BuildCmds:           cmds.build,
		PackageCmds:         cmds.pkg,
		CachePaths:          cachePaths(p),
		HasIntegrationTests: hasIntegrationTests,
		SonarHost:           "http://sonarqube:9000",
		DockerTag:           "${CI_COMMIT_SHORT_SHA}",
		StagingRef:          "develop",
		ProdRef:             "main",
	}
	params.BuildArtifacts, params.PackageArtifacts = artifactPaths(p)
	return params
}

func baseImage(p domain.StackProfile) string {
	switch p.PrimaryLanguage {
	case domain.LanguageJava, domain.LanguageKotlin:
		if p.BuildTool == "gradle" {
			return "gradle:8-jdk17"
		}
		return "maven:3.9-eclipse-temurin-17"
	case domain.LanguageGo:
		return "golang:1.22"
	case domain.LanguageNodeJS:
		return "node:20"
	case domain.LanguagePython:
		return "python:3.12"
	default:
		return "alpine:3.19"
	}
}

// runtimeImage is the slim second stage of the multi-stage Dockerfile.
func runtimeImage(p domain.StackProfile) string {
	switch p.PrimaryLanguage {
	case domain.LanguageJava, domain.LanguageKotlin:
		return "eclipse-temurin:17-jre"
	case domain.LanguageGo:
		return "alpine:3.19"
	case domain.LanguageNodeJS:
		if p.Hint == domain.HintFrontend {
			return "nginx:1.27-alpine"
		}
		return "node:20-slim"
	case domain.LanguagePython:
		return "python:3.12-slim"
	default:
		return "alpine:3.19"
	}
}

func commandsFor(p domain.StackProfile) commandSet {
	switch p.PrimaryLanguage {
	case domain.LanguageJava, domain.LanguageKotlin:
		if p.BuildTool == "gradle" {
			return commandSet{
				prepare: []string{"./gradlew --no-daemon --version"},
				lint:    []string{"./gradlew --no-daemon check -x test"},
				test:    []string{"./gradlew --no-daemon test"},
				sonar:   []string{"./gradlew --no-daemon sonarqube -Dsonar.host.url=$SONAR_HOST_URL -Dsonar.login=$SONAR_TOKEN"},
				build:   []string{"./gradlew --no-daemon build -x test"},
				pkg:     []string{"./gradlew --no-daemon assemble -x test"},
			}
		}
		return commandSet{
			prepare: []string{"mvn -B dependency:go-offline"},
			lint:    []string{"mvn -B -DskipTests verify"},
			test:    []string{"mvn -B test"},
			sonar:   []string{"mvn -B sonar:sonar -Dsonar.host.url=$SONAR_HOST_URL -Dsonar.login=$SONAR_TOKEN"},
			build:   []string{"mvn -B package -DskipTests"},
			pkg:     []string{"mvn -B package -DskipTests"},
		}
	case domain.LanguageGo:
		return commandSet{
			prepare: []string{"go mod download"},
			lint:    []string{"go vet ./..."},
			test:    []string{"go test ./..."},
			sonar:   []string{`echo "Run SonarQube scanner for Go"`},
			build:   []string{"go build -o app ./..."},
			pkg:     []string{"tar -czf app.tar.gz app"},
		}
	case domain.LanguageNodeJS:
		pm := p.PackageManager
		if pm == "" {
			pm = "npm"
		}
		install := pm + " ci"
		if pm != "npm" {
			install = pm + " install --frozen-lockfile"
		}
		return commandSet{
			prepare: []string{install},
			lint:    []string{pm + " run lint"},
			test:    []string{pm + " test -- --ci --runInBand"},
			sonar:   []string{`echo "Run SonarQube scanner for Node.js"`},
			build:   []string{pm + " run build"},
			pkg:     []string{"tar -czf app.tgz dist"},
		}
	case domain.LanguagePython:
		return commandSet{
			prepare: pythonPrepare(p),
			lint:    []string{"flake8 . || true"},
			test:    []string{"pytest"},
			sonar:   []string{`echo "Run SonarQube scanner for Python"`},
			build:   []string{"python -m pip install build && python -m build || true"},
			pkg:     []string{"ls dist || true"},
		}
	default:
		return commandSet{
			prepare: []string{`echo "Prepare stage placeholder"`},
			lint:    []string{`echo "Lint stage placeholder"`},
			test:    []string{`echo "Test stage placeholder"`},
			sonar:   []string{`echo "Sonar stage placeholder"`},
			build:   []string{`echo "Build stage placeholder"`},
			pkg:     []string{`echo "Package stage placeholder"`},
		}
	}
}

func pythonPrepare(p domain.StackProfile) []string {
	switch p.PackageManager {
	case "poetry":
		return []string{"pip install poetry", "poetry install"}
	case "pipenv":
		return []string{"pip install pipenv", "pipenv install --dev"}
	default:
		return []string{"python -m pip install --upgrade pip", "pip install -r requirements.txt"}
	}
}

func cachePaths(p domain.StackProfile) []string {
	var caches []string
	switch p.BuildTool {
	case "maven":
		caches = append(caches, ".m2/repository")
	case "gradle":
		caches = append(caches, ".gradle")
	}
	switch p.PrimaryLanguage {
	case domain.LanguageNodeJS:
		caches = append(caches, "node_modules", ".npm")
	case domain.LanguagePython:
		caches = append(caches, ".cache/pip")
	case domain.LanguageGo:
		caches = append(caches, "go/pkg/mod")
	}
	return caches
}

func artifactPaths(p domain.StackProfile) (build, pkg []string) {
	switch p.PrimaryLanguage {
	case domain.LanguageJava, domain.LanguageKotlin:
		jar := "target/*.jar"
		if p.BuildTool == "gradle" {
			jar = "build/libs/*.jar"
		}
		return []string{jar}, []string{jar}
	case domain.LanguageGo:
		return []string{"app"}, []string{"app", "app.tar.gz"}
	case domain.LanguageNodeJS:
		return []string{"dist/"}, []string{"app.tgz", "dist/"}
	case domain.LanguagePython:
		return []string{"dist/"}, []string{"dist/"}
	default:
		return nil, nil
	}
}
