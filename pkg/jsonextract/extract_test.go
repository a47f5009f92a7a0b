package jsonextract_test

import (
	"encoding/json"
	"testing"

	"go-diettrack-backend/pkg/jsonextract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayFenced(t *testing.T) {
	raw := "```json\n[{\"a\":1}]\n```"

	text, err := jsonextract.Array(raw)
	require.NoError(t, err)
	assert.Equal(t, `[{"a":1}]`, text)

	var out []map[string]int
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Len(t, out, 1)
	assert.Equal(t, 1, out[0]["a"])
}

func TestArraySurroundedByProse(t *testing.T) {
	raw := "Sure! Here is your list:\n[\"dal\", \"rice\"]\nHope that helps."

	text, err := jsonextract.Array(raw)
	require.NoError(t, err)
	assert.Equal(t, `["dal", "rice"]`, text)
}

func TestArrayNestedAndStringBrackets(t *testing.T) {
	raw := `prefix [{"name":"Roti [whole wheat]","tags":["a","b"]}] suffix`

	text, err := jsonextract.Array(raw)
	require.NoError(t, err)

	var out []struct {
		Name string   `json:"name"`
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Equal(t, "Roti [whole wheat]", out[0].Name)
	assert.Equal(t, []string{"a", "b"}, out[0].Tags)
}

func TestObjectWithFencesAndCase(t *testing.T) {
	raw := "```JSON\n{\"recomfoods\": [\"poha\", \"idli\"]}\n```"

	text, err := jsonextract.Object(raw)
	require.NoError(t, err)

	var out struct {
		Recomfoods []string `json:"recomfoods"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Equal(t, []string{"poha", "idli"}, out.Recomfoods)
}

func TestNoJSON(t *testing.T) {
	_, err := jsonextract.Array("I could not produce a list today.")
	assert.ErrorIs(t, err, jsonextract.ErrNoJSON)

	_, err = jsonextract.Object("plain prose, no braces")
	assert.ErrorIs(t, err, jsonextract.ErrNoJSON)
}

func TestUnbalancedIsRejected(t *testing.T) {
	// A truncated response must not yield a partial value.
	_, err := jsonextract.Array(`[{"name":"Dal Chawal", "calories": 420`)
	assert.ErrorIs(t, err, jsonextract.ErrNoJSON)
}

func TestObjectValueContainsBraces(t *testing.T) {
	raw := `Here you go: {"note":"use {} sparingly","k":"v"} done`
	text, err := jsonextract.Object(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"note":"use {} sparingly","k":"v"}`, text)
}
