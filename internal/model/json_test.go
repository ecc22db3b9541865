// internal/model/json_test.go
package model

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON_BuildResult(t *testing.T) {
	t.Parallel()

	def := "8080"
	members := NewMembers()
	members.Add("port", &AnnType{Type: Basic(IntT), Optional: true, Default: &def})
	members.Add("timeout", &AnnType{Type: Duration(Seconds)})

	result := &BuildResult{
		Root:     &ObjectType{Members: members},
		Warnings: []Warning{{Kind: MultElemListWarning, Line: 3, Source: "[int,string]"}},
	}

	out, err := json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"objectType": {
			"object": {
				"port": {"type": {"basic": "INTEGER"}, "optional": true, "default": "8080"},
				"timeout": {"type": {"basic": "DURATION", "unit": "s"}, "optional": false}
			}
		},
		"warnings": [
			{"line": 3, "source": "[int,string]", "message": "list literal has multiple elements; only the first element decides the type"}
		]
	}`, string(out))
}

func TestMarshalJSON_MembersKeepOrder(t *testing.T) {
	t.Parallel()

	members := NewMembers()
	members.Add("z", &AnnType{Type: Basic(StringT)})
	members.Add("a", &AnnType{Type: Basic(StringT)})

	out, err := json.Marshal(members)
	require.NoError(t, err)
	zIdx := strings.Index(string(out), `"z"`)
	aIdx := strings.Index(string(out), `"a"`)
	require.Less(t, zIdx, aIdx, "members marshal in insertion order, not sorted")
}

func TestMarshalJSON_TypeVariants(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(&EnumObjectType{Values: []string{"low", "high"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"enum": ["low", "high"]}`, string(out))

	out, err = json.Marshal(&ListType{Elem: Basic(BoolT)})
	require.NoError(t, err)
	require.JSONEq(t, `{"list": {"basic": "BOOLEAN"}}`, string(out))

	abs := &AbstractObjectType{Members: NewMembers()}
	out, err = json.Marshal(abs)
	require.NoError(t, err)
	require.JSONEq(t, `{"abstract": {}}`, string(out))
}
