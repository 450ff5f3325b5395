package meta

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var embedFs embed.FS

type document struct {
	Name    string   `yaml:"name"`
	Tags    []string `yaml:"tags"`
	Owner   string   `yaml:"owner"`
	Retries int      `yaml:"retries"`
}

func TestService_Load(t *testing.T) {
	srv := New(afs.New(), "embed:///testdata", &embedFs)
	actual := &document{}
	err := srv.Load(context.Background(), "document.yaml", actual)
	require.NoError(t, err)
	assert.Equal(t, "sample", actual.Name)
	assert.Equal(t, []string{"one", "two"}, actual.Tags)
	assert.Equal(t, 3, actual.Retries)
}

func TestService_Load_EnvExpansion(t *testing.T) {
	t.Setenv("FLOWSTATE_TEST_OWNER", "platform-team")
	srv := New(afs.New(), "embed:///testdata", &embedFs)
	actual := &document{}
	err := srv.Load(context.Background(), "document.yaml", actual)
	require.NoError(t, err)
	assert.Equal(t, "platform-team", actual.Owner)
}

func TestService_Load_NotFound(t *testing.T) {
	srv := New(afs.New(), "embed:///testdata", &embedFs)
	err := srv.Load(context.Background(), "ghost.yaml", &document{})
	assert.Error(t, err)
}

func TestService_Resolve(t *testing.T) {
	var testCases = []struct {
		description string
		baseURL     string
		URL         string
		expected    string
	}{
		{
			description: "relative against base",
			baseURL:     "embed:///testdata",
			URL:         "document.yaml",
			expected:    "embed:///testdata/document.yaml",
		},
		{
			description: "trailing slash in base",
			baseURL:     "embed:///testdata/",
			URL:         "document.yaml",
			expected:    "embed:///testdata/document.yaml",
		},
		{
			description: "absolute path bypasses base",
			baseURL:     "embed:///testdata",
			URL:         "/etc/flowstate/config.yaml",
			expected:    "/etc/flowstate/config.yaml",
		},
		{
			description: "scheme bypasses base",
			baseURL:     "embed:///testdata",
			URL:         "s3://bucket/config.yaml",
			expected:    "s3://bucket/config.yaml",
		},
		{
			description: "no base",
			baseURL:     "",
			URL:         "document.yaml",
			expected:    "document.yaml",
		},
	}

	for _, testCase := range testCases {
		srv := New(afs.New(), testCase.baseURL)
		assert.Equal(t, testCase.expected, srv.resolve(testCase.URL), testCase.description)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FLOWSTATE_TEST_VALUE", "abc")
	var testCases = []struct {
		description string
		input       string
		expected    string
	}{
		{
			description: "substitutes set variable",
			input:       "value: ${env.FLOWSTATE_TEST_VALUE}",
			expected:    "value: abc",
		},
		{
			description: "unset variable becomes empty",
			input:       "value: ${env.FLOWSTATE_TEST_UNSET}",
			expected:    "value: ",
		},
		{
			description: "malformed expression untouched",
			input:       "value: ${envFLOWSTATE}",
			expected:    "value: ${envFLOWSTATE}",
		},
		{
			description: "plain text untouched",
			input:       "value: plain",
			expected:    "value: plain",
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, ExpandEnv(testCase.input), testCase.description)
	}
}
