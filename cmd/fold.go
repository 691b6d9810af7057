package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/apc/combiner"
	"github.com/arr-ai/apc/debug"
	"github.com/arr-ai/apc/diag"
	"github.com/arr-ai/apc/node"
	"github.com/arr-ai/apc/position"
	"github.com/arr-ai/apc/tag"
)

const concatName = "Concat"

var stdin io.Reader = os.Stdin

var combinerName string
var tagName string
var inFile string
var outFormat string
var yamlInput bool
var debugMode bool
var verboseMode bool
var foldCommand = cli.Command{
	Name:    "fold",
	Aliases: []string{"f"},
	Usage:   "Fold a sequence of nodes with a combiner",
	Action:  fold,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "combiner",
			Usage:       "preset combiner name, or Concat",
			Required:    true,
			Destination: &combinerName,
		},
		cli.StringFlag{
			Name:        "tag",
			Usage:       "result tag for the Concat combiner",
			Value:       tag.String.String(),
			Destination: &tagName,
		},
		cli.StringFlag{
			Name:        "input",
			Usage:       "input node list or single branch (JSON, or YAML for .yaml/.yml), - for stdin",
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.BoolFlag{
			Name:        "yaml",
			Usage:       "read YAML regardless of the input file name",
			Destination: &yamlInput,
		},
		cli.StringFlag{
			Name:        "format",
			Usage:       "output format: tree, text, json or yaml",
			Value:       "tree",
			Destination: &outFormat,
		},
		cli.BoolFlag{
			Name:        "debug",
			Usage:       "print a debug line for every combine step",
			EnvVar:      debug.EnvVar,
			Destination: &debugMode,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Destination: &verboseMode,
		},
	},
}

func fold(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}

	data, err := readInput(inFile, stdin)
	if err != nil {
		return err
	}

	tracker := position.New("")
	formatter := diag.New(tracker)
	printer := debug.NewPrinter(debug.Config{Enabled: debugMode}, tracker, logrus.StandardLogger())

	comb, err := resolveCombiner(formatter, combinerName, tagName)
	if err != nil {
		return err
	}

	nodes, err := decodeNodes(data, inFile, yamlInput)
	if err != nil {
		return errors.New(formatter.Invalid("input", err.Error()))
	}
	if len(nodes) == 0 {
		return errors.New(formatter.Invalid("input", "no nodes to fold"))
	}
	logrus.Tracef("folding %d nodes with %s", len(nodes), comb)

	// The tracker follows the text of the folded nodes as if a driver had
	// just matched them.
	tracker.Reset(sourceText(nodes...))
	tracker.Advance(len(sourceText(nodes[0])))
	step := combiner.NewNamed[tag.NodeType](comb.Name(), comb.Kind(),
		func(n1, n2 node.Node[tag.NodeType]) node.Node[tag.NodeType] {
			tracker.Advance(len(sourceText(n2)))
			logrus.Tracef("%s: combining at %s", comb.Name(), tracker.LineColumn())
			return comb.Combine(n1, n2)
		})

	result, err := combiner.Fold(combiner.Traced(step, printer), nodes...)
	if err != nil {
		return err
	}

	out, err := render(formatter, result, outFormat)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.App.Writer, out)
	return err
}

func readInput(source string, r io.Reader) ([]byte, error) {
	switch source {
	case "", "-":
		return io.ReadAll(r)
	default:
		return os.ReadFile(source)
	}
}

func resolveCombiner(f diag.Formatter, name, tagName string) (*combiner.Default, error) {
	if name == concatName {
		t, err := tag.Parse(tagName)
		if err != nil {
			tags := []diag.Describer{}
			for _, nt := range tag.All() {
				if nt != tag.Undefined {
					tags = append(tags, diag.Literal(nt.String()))
				}
			}
			return nil, errors.New(f.Invalid("tag", fmt.Sprintf("%v (expected %s)", err, diag.JoinExpected(tags...))))
		}
		return combiner.Concat(t).BindName(concatName), nil
	}
	if c, has := combiner.Lookup(name); has {
		return c, nil
	}
	expected := []diag.Describer{}
	for _, c := range combiner.SortedPresets() {
		expected = append(expected, c)
	}
	expected = append(expected, diag.Literal(concatName))
	return nil, errors.New(f.Unexpected(name, expected...))
}

func decodeNodes(data []byte, filename string, forceYAML bool) ([]node.Node[tag.NodeType], error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		forceYAML = true
	}
	decodeList, decodeOne := node.DecodeJSONList, node.DecodeJSON
	if forceYAML {
		decodeList, decodeOne = node.DecodeYAMLList, node.DecodeYAML
	}
	nodes, err := decodeList(data)
	if err == nil {
		return nodes, nil
	}
	// A single node: a branch folds its children, a leaf folds to itself.
	n, oneErr := decodeOne(data)
	if oneErr != nil {
		return nil, err
	}
	if n.IsBranch() {
		return n.Children(), nil
	}
	return []node.Node[tag.NodeType]{n}, nil
}

func render(f diag.Formatter, n node.Node[tag.NodeType], format string) (string, error) {
	switch format {
	case "tree":
		return node.TreeView(n), nil
	case "text":
		return n.String() + "\n", nil
	case "json":
		out, err := node.EncodeJSON(n)
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	case "yaml":
		out, err := node.EncodeYAML(n)
		return string(out), err
	default:
		return "", errors.New(f.Unexpected(format,
			diag.Literal("tree"), diag.Literal("text"), diag.Literal("json"), diag.Literal("yaml")))
	}
}

// sourceText is the text a driver would have consumed to produce nodes.
func sourceText(nodes ...node.Node[tag.NodeType]) string {
	var sb strings.Builder
	for _, n := range nodes {
		if n.IsBranch() {
			sb.WriteString(sourceText(n.Children()...))
		} else {
			fmt.Fprint(&sb, n.Value())
		}
	}
	return sb.String()
}
