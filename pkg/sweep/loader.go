package sweep

import (
	"io/ioutil"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// fileRoot is used to decode all top-level attributes and blocks of a sweep file.
type fileRoot struct {
	Row        string            `hcl:"row,optional"`
	Column     string            `hcl:"column,optional"`
	Parameters []*parameterBlock `hcl:"parameter,block"`
	Commands   []*commandBlock   `hcl:"command,block"`
	Metrics    []*metricsBlock   `hcl:"metrics,block"`
}

type parameterBlock struct {
	Name   string    `hcl:"name,label"`
	Label  string    `hcl:"label,optional"`
	Values cty.Value `hcl:"values"`
}

type commandBlock struct {
	Run       string `hcl:"run"`
	Repeat    *int   `hcl:"repeat,optional"`
	Precision *int   `hcl:"precision,optional"`
}

type metricsBlock struct {
	Address    string  `hcl:"address,optional"`
	Keyspace   string  `hcl:"keyspace,optional"`
	Experiment string  `hcl:"experiment"`
	Metric     string  `hcl:"metric,optional"`
	Precision  *int    `hcl:"precision,optional"`
	Missing    *string `hcl:"missing,optional"`
}

// Load reads and validates the sweep file at path.
func Load(path string) (*Definition, error) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read sweep file %s", path)
	}
	return Parse(src, path)
}

// Parse decodes and validates sweep file content. Filename is used in diagnostics.
func Parse(src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse sweep file %s", filename)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode sweep file %s", filename)
	}

	definition, err := translate(&root, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sweep file %s", filename)
	}
	if err := definition.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep file %s", filename)
	}

	logrus.Debugf("Loaded sweep %s with %d parameters", filename, len(definition.Parameters))
	return definition, nil
}

func translate(root *fileRoot, filename string) (*Definition, error) {
	definition := &Definition{
		Path:   filename,
		Row:    root.Row,
		Column: root.Column,
	}

	for _, block := range root.Parameters {
		values, err := textValues(block.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %q", block.Name)
		}
		definition.Parameters = append(definition.Parameters, Parameter{
			Name:   block.Name,
			Label:  block.Label,
			Values: values,
		})
	}

	if len(root.Commands) > 1 {
		return nil, errors.Errorf("%d command blocks found, only one is allowed", len(root.Commands))
	}
	if len(root.Metrics) > 1 {
		return nil, errors.Errorf("%d metrics blocks found, only one is allowed", len(root.Metrics))
	}

	if len(root.Commands) == 1 {
		block := root.Commands[0]
		definition.Command = &Command{
			Run:       block.Run,
			Repeat:    intOr(block.Repeat, DefaultRepeat),
			Precision: intOr(block.Precision, DefaultPrecision),
		}
	}

	if len(root.Metrics) == 1 {
		block := root.Metrics[0]
		metrics := &Metrics{
			Address:    block.Address,
			Keyspace:   block.Keyspace,
			Experiment: block.Experiment,
			Metric:     block.Metric,
			Precision:  intOr(block.Precision, DefaultPrecision),
			Missing:    "-",
		}
		if metrics.Address == "" {
			metrics.Address = DefaultAddress
		}
		if metrics.Keyspace == "" {
			metrics.Keyspace = DefaultKeyspace
		}
		if block.Missing != nil {
			metrics.Missing = *block.Missing
		}
		definition.Metrics = metrics
	}

	return definition, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// textValues turns a list or tuple of primitive values into their text form.
func textValues(value cty.Value) ([]string, error) {
	if value.IsNull() || !value.IsKnown() {
		return nil, errors.New("values are not set")
	}
	ty := value.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, errors.Errorf("values have to be a list, got %s", ty.FriendlyName())
	}

	texts := []string{}
	for it := value.ElementIterator(); it.Next(); {
		_, element := it.Element()
		if element.IsNull() {
			return nil, errors.New("values contain null")
		}
		if !element.Type().IsPrimitiveType() {
			return nil, errors.Errorf("values have to be strings, numbers or bools, got %s", element.Type().FriendlyName())
		}
		text, err := convert.Convert(element, cty.String)
		if err != nil {
			return nil, errors.Wrap(err, "could not convert value to text")
		}
		texts = append(texts, text.AsString())
	}
	return texts, nil
}
