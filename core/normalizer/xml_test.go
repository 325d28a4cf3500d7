package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "content-normalizer-api/core/errors"
)

func TestProjectXML_CoalescesSiblings(t *testing.T) {
	data, err := projectXML([]byte(`<?xml version="1.0"?><root><item>1</item><item>2</item></root>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"item": []interface{}{"1", "2"},
	}, data)
}

func TestProjectXML_AttributesAndText(t *testing.T) {
	body := `<catalog version="2">
  <book id="b1" lang="en">Go<subtitle>Intro</subtitle></book>
  <empty/>
  <tagged kind="x"/>
</catalog>`

	data, err := projectXML([]byte(body))
	require.NoError(t, err)

	root, ok := data.(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, map[string]interface{}{"version": "2"}, root[attributesKey])
	assert.Equal(t, "", root["empty"])
	assert.Equal(t, map[string]interface{}{
		attributesKey: map[string]interface{}{"kind": "x"},
	}, root["tagged"])

	book, ok := root["book"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"id": "b1", "lang": "en"}, book[attributesKey])
	assert.Equal(t, "Go", book[textKey])
	assert.Equal(t, "Intro", book["subtitle"])
}

func TestProjectXML_CDATA(t *testing.T) {
	data, err := projectXML([]byte(`<root><desc><![CDATA[<b>bold</b>]]></desc></root>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"desc": "<b>bold</b>"}, data)
}

func TestProjectXML_ThreeSiblingsKeepOrder(t *testing.T) {
	data, err := projectXML([]byte(`<r><n>a</n><other/><n>b</n><n>c</n></r>`))
	require.NoError(t, err)

	root := data.(map[string]interface{})
	assert.Equal(t, []interface{}{"a", "b", "c"}, root["n"])
}

func TestProjectXML_NamespacePrefixes(t *testing.T) {
	body := `<rss xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
  <channel><dc:creator>Ann</dc:creator></channel>
</rss>`

	data, err := projectXML([]byte(body))
	require.NoError(t, err)

	root := data.(map[string]interface{})
	channel, ok := root["channel"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ann", channel["dc:creator"])
}

func TestProjectXML_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"mismatched tags", `<root><a></root>`},
		{"unterminated", `<root><a>1</a>`},
		{"no element", `<?xml version="1.0"?>`},
		{"second root", `<root><a>1</a></root><extra/>`},
		{"second root after comment", `<root/><!-- c --><root/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := projectXML([]byte(tt.body))
			assert.Nil(t, data)
			require.Error(t, err)
			assert.True(t, cerrors.IsParse(err))
		})
	}
}

func TestProjectXML_IsJSONSerializable(t *testing.T) {
	data, err := projectXML([]byte(`<a x="1"><b>t</b><b><c>d</c></b>tail</a>`))
	require.NoError(t, err)

	_, err = json.Marshal(data)
	assert.NoError(t, err)
}
