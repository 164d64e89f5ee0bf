package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
)

func TestToJSON(t *testing.T) {
	doc := models.Document{
		Tables: []models.Table{{Number: "1", Name: "users", ShortDesc: "유저 <테이블>"}},
	}

	compact, err := ToJSON(doc, false)
	require.NoError(t, err)
	assert.Equal(t,
		`{"tables":[{"number":"1","name":"users","short_desc":"유저 <테이블>","description":"","rows":null}]}`,
		string(compact))

	pretty, err := ToJSON(doc, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"tables\": [")
}

func TestToYAML(t *testing.T) {
	doc := models.Document{
		Index: []models.Row{{"No", "테이블명"}},
	}

	out, err := ToYAML(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "index:\n"))
	assert.Contains(t, string(out), "테이블명")
	assert.Contains(t, string(out), "tables: []")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
