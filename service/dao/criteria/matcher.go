// Package criteria evaluates dao.Parameter filters against entity
// attributes so that individual DAO implementations do not reimplement
// matching logic.
package criteria

import (
	"github.com/viant/flowstate/service/dao"
)

// Match reports whether an attribute value satisfies every parameter
// carrying the supplied name. Parameters with other names are ignored;
// an empty parameter list matches everything.
func Match(name, value string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != name {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			if value != actual {
				return false
			}
		case []string:
			var matched bool
			for _, candidate := range actual {
				if value == candidate {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}
