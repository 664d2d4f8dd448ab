package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePage(t *testing.T) {
	for _, p := range Pages() {
		got, err := ParsePage(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePage("  campaigns ")
	require.NoError(t, err)
	assert.Equal(t, PageCampaigns, got)

	_, err = ParsePage("Reports")
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestPage_StringUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Page(99).String())
}

func TestPage_YAML(t *testing.T) {
	var v struct {
		Start Page `yaml:"start"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("start: Dashboard\n"), &v))
	assert.Equal(t, PageDashboard, v.Start)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "start: Dashboard\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("start: Nope\n"), &v))
}
