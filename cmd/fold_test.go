package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digitsJSON = `[
	{"tag": "Digit", "value": "1"},
	{"tag": "Digit", "value": "2"},
	{"tag": "Digit", "value": "3"}
]`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(VersionTags{Version: "test"})
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"apc"}, args...))
	return out.String(), err
}

func TestFoldString(t *testing.T) {
	path := writeInput(t, "digits.json", digitsJSON)
	out, err := runApp(t, "fold", "--combiner", "String", "--input", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "String‣123\n", out)
}

func TestFoldConcatWithTag(t *testing.T) {
	path := writeInput(t, "digits.json", digitsJSON)
	out, err := runApp(t, "fold", "--combiner", "Concat", "--tag", "number", "--input", path, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag": "Number", "value": "123"}`, out)
}

func TestFoldConcatJSONIntegers(t *testing.T) {
	path := writeInput(t, "ints.json", `[
		{"tag": "Integer", "value": 12345678901234567},
		{"tag": "Integer", "value": 8}
	]`)
	out, err := runApp(t, "fold", "--combiner", "Concat", "--tag", "number", "--input", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "Number‣123456789012345678\n", out)
}

func TestFoldSingleBranch(t *testing.T) {
	path := writeInput(t, "branch.json", `{"tag": "List", "nodes": [
		{"tag": "Digit", "value": "4"},
		{"tag": "Digit", "value": "2"}
	]}`)
	out, err := runApp(t, "fold", "--combiner", "String", "--input", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "String‣42\n", out)

	path = writeInput(t, "leaf.yaml", "tag: Digit\nvalue: \"7\"\n")
	out, err = runApp(t, "fold", "--combiner", "First", "--input", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "Digit‣7\n", out)
}

func TestFoldListFromYAML(t *testing.T) {
	path := writeInput(t, "digits.yaml", `
- tag: Digit
  value: "1"
- tag: Digit
  value: "2"
- tag: Digit
  value: "3"
`)
	out, err := runApp(t, "fold", "--combiner", "List", "--input", path)
	require.NoError(t, err)
	assert.Equal(t,
		"List\n"+
			"├── List\n"+
			"│   ├── Digit‣1\n"+
			"│   └── Digit‣2\n"+
			"└── Digit‣3\n",
		out)
}

func TestFoldFromStdin(t *testing.T) {
	saved := stdin
	defer func() { stdin = saved }()
	stdin = strings.NewReader(digitsJSON)

	out, err := runApp(t, "fold", "--combiner", "Second", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "Digit‣3\n", out)
}

func TestFoldErrors(t *testing.T) {
	digits := writeInput(t, "digits.json", `[{"tag": "Digit", "value": "1"}, {"tag": "Digit", "value": "2"}]`)
	empty := writeInput(t, "empty.json", `[]`)
	broken := writeInput(t, "broken.json", `[{"tag": "Nope"}]`)

	for _, test := range []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "unknown combiner",
			args: []string{"--combiner", "Sum", "--input", digits},
			err:  "Syntax Error (1:1): Unexpected 'Sum' (expected 'First', 'List', 'Second', 'String' or 'Concat').",
		},
		{
			name: "unknown tag",
			args: []string{"--combiner", "Concat", "--tag", "bogus", "--input", digits},
			err: `Syntax Error (1:1): Invalid tag; unknown node type "bogus" (expected 'Char', 'Digit', 'Letter', ` +
				`'String', 'Integer', 'Number', 'Identifier', 'Keyword', 'Symbol', 'Whitespace', 'List' or 'Root').`,
		},
		{
			name: "no nodes",
			args: []string{"--combiner", "List", "--input", empty},
			err:  "Syntax Error (1:1): Invalid input; no nodes to fold.",
		},
		{
			name: "unknown format",
			args: []string{"--combiner", "String", "--input", digits, "--format", "xml"},
			err:  "Syntax Error (1:3): Unexpected 'xml' (expected 'tree', 'text', 'json' or 'yaml').",
		},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := runApp(t, append([]string{"fold"}, test.args...)...)
			assert.EqualError(t, err, test.err)
		})
	}

	_, err := runApp(t, "fold", "--combiner", "String", "--input", broken)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Syntax Error (1:1): Invalid input; "), err.Error())
}

func TestFoldDebug(t *testing.T) {
	hook := test.NewLocal(logrus.StandardLogger())
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	path := writeInput(t, "digits.json", digitsJSON)
	_, err := runApp(t, "fold", "--combiner", "String", "--input", path, "--debug")
	require.NoError(t, err)

	var messages []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.InfoLevel {
			messages = append(messages, e.Message)
		}
	}
	assert.Equal(t, []string{
		"Debug Info (1:3): String: Digit‣1 + Digit‣2 => String‣12",
		"Debug Info (1:4): String: String‣12 + Digit‣3 => String‣123",
	}, messages)
}

func TestPresets(t *testing.T) {
	out, err := runApp(t, "presets")
	require.NoError(t, err)
	assert.Equal(t,
		"First    Lists\n"+
			"List     Lists\n"+
			"Second   Lists\n"+
			"String   Elements\n",
		out)
}
