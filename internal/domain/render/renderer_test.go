package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfdeploy/selfdeploy/internal/domain/render"
)

func TestRender_SubstitutesParams(t *testing.T) {
	out, err := render.Render("t", "image: {{ .ImageName }}:{{ .DockerTag }}", render.Params{
		ImageName: "billing-service",
		DockerTag: "${CI_COMMIT_SHORT_SHA}",
	})

	require.NoError(t, err)
	assert.Equal(t, "image: billing-service:${CI_COMMIT_SHORT_SHA}", out)
}

func TestRender_JoinFunc(t *testing.T) {
	out, err := render.Render("t", `{{ join .Stages ", " }}`, render.Params{
		Stages: []string{"prepare", "test"},
	})

	require.NoError(t, err)
	assert.Equal(t, "prepare, test", out)
}

func TestRender_ParseErrorSurfaced(t *testing.T) {
	_, err := render.Render("broken", "{{ .Unclosed", render.Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
