package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/flowstate/service/dao"
)

func TestMatch(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		value       string
		parameters  []*dao.Parameter
		expected    bool
	}{
		{
			description: "no parameters matches everything",
			name:        "CurrentState",
			value:       "draft",
			expected:    true,
		},
		{
			description: "single value match",
			name:        "CurrentState",
			value:       "draft",
			parameters:  []*dao.Parameter{dao.NewParameter("CurrentState", "draft")},
			expected:    true,
		},
		{
			description: "single value mismatch",
			name:        "CurrentState",
			value:       "draft",
			parameters:  []*dao.Parameter{dao.NewParameter("CurrentState", "review")},
			expected:    false,
		},
		{
			description: "multi value match",
			name:        "CurrentState",
			value:       "review",
			parameters:  []*dao.Parameter{dao.NewParameter("CurrentState", "draft", "review")},
			expected:    true,
		},
		{
			description: "multi value mismatch",
			name:        "CurrentState",
			value:       "approved",
			parameters:  []*dao.Parameter{dao.NewParameter("CurrentState", "draft", "review")},
			expected:    false,
		},
		{
			description: "other names ignored",
			name:        "CurrentState",
			value:       "draft",
			parameters:  []*dao.Parameter{dao.NewParameter("DefinitionID", "approval")},
			expected:    true,
		},
		{
			description: "nil parameter ignored",
			name:        "CurrentState",
			value:       "draft",
			parameters:  []*dao.Parameter{nil},
			expected:    true,
		},
		{
			description: "all parameters must pass",
			name:        "CurrentState",
			value:       "draft",
			parameters: []*dao.Parameter{
				dao.NewParameter("CurrentState", "draft"),
				dao.NewParameter("CurrentState", "review"),
			},
			expected: false,
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, Match(testCase.name, testCase.value, testCase.parameters), testCase.description)
	}
}
