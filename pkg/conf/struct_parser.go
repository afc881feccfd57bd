package conf

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/pkg/errors"
)

// Struct tags understood by Process. A field becomes a flag once it carries a help tag:
//
//	OutputDir string `help:"Directory for generated pages." default:"."`
//
// registers --output_dir, overridable by PARAMCOMP_OUTPUT_DIR.
const (
	helpTag             = "help"
	defaultTag          = "default"
	defaultFromFieldTag = "defaultFromField"
	nameTag             = "name"
	requiredTag         = "required"
	// type:"file" turns a string field into a flag that must name an existing file,
	// e.g. the sweep definition.
	stringTypeTag  = "type"
	stringTypeFile = "file"
	// A string field with this name prefixes every flag of the struct.
	prefixFieldName = "flagPrefix"
)

var fieldTags = []string{nameTag, defaultTag, defaultFromFieldTag, requiredTag, stringTypeTag, helpTag}

// Process registers a flag for every tagged field of the struct data points to and fills
// the field with the flag value. Call it before parsing to declare the flags and again
// after parsing to read the command line and PARAMCOMP_ environment into the struct.
func Process(data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr {
		return errors.Errorf("Argument needs to be a pointer to struct. Got %s", v.Kind().String())
	}
	s := v.Elem()
	if s.Kind() != reflect.Struct {
		return errors.Errorf("Argument needs to be a pointer to struct. Got %s", s.Kind().String())
	}

	prefix := stringField(s.FieldByName(prefixFieldName))
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		field := s.Field(i)
		if !field.CanSet() {
			continue
		}
		// Embedded structs are skipped, flags are not collected recursively.
		if t.Field(i).Anonymous && field.Kind() == reflect.Struct {
			continue
		}

		f := &fieldProcessor{
			prefix:      prefix,
			data:        s,
			field:       field,
			fieldStruct: t.Field(i),
		}
		if err := f.process(); err != nil {
			return errors.Wrapf(err, "cannot process field %q", t.Field(i).Name)
		}
	}
	return nil
}

func stringField(field reflect.Value) string {
	if field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}

// nameFromFieldName turns OutputDir into output_dir.
func nameFromFieldName(name string) string {
	words := []string{}
	for _, word := range camelcase.Split(name) {
		if word == "_" {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	return strings.Join(words, "_")
}

type fieldProcessor struct {
	prefix      string
	data        reflect.Value
	field       reflect.Value
	fieldStruct reflect.StructField
}

func (f *fieldProcessor) tagged() bool {
	for _, tag := range fieldTags {
		if f.fieldStruct.Tag.Get(tag) != "" {
			return true
		}
	}
	return false
}

// help returns an empty string for plain fields which are not flags.
func (f *fieldProcessor) help() (string, error) {
	help := f.fieldStruct.Tag.Get(helpTag)
	if help == "" && f.tagged() {
		return "", errors.New("Required help tag is missing. Cannot process the struct for flags.")
	}
	return help, nil
}

func (f *fieldProcessor) flagName() string {
	name := f.fieldStruct.Tag.Get(nameTag)
	if name == "" {
		name = f.fieldStruct.Name
	}
	return nameFromFieldName(f.prefix + name)
}

func (f *fieldProcessor) defaultValue() string {
	if value := f.fieldStruct.Tag.Get(defaultTag); value != "" {
		return value
	}
	return stringField(f.data.FieldByName(f.fieldStruct.Tag.Get(defaultFromFieldTag)))
}

func (f *fieldProcessor) process() error {
	help, err := f.help()
	if err != nil || help == "" {
		return err
	}

	// Nil pointers get a fresh value to store the flag in.
	typeOfField := f.field.Type()
	if typeOfField.Kind() == reflect.Ptr {
		typeOfField = typeOfField.Elem()
		if f.field.IsNil() {
			f.field.Set(reflect.New(typeOfField))
		}
		f.field = f.field.Elem()
	}

	flag, err := f.define(typeOfField, f.flagName(), help, f.defaultValue())
	if err != nil {
		return err
	}
	if f.fieldStruct.Tag.Get(requiredTag) == "true" {
		flag.Required()
	}
	return nil
}

// define registers the flag matching the field kind and stores its current value.
func (f *fieldProcessor) define(typeOfField reflect.Type, name, help, defaultValue string) (*cliAndEnvFlag, error) {
	switch typeOfField.Kind() {
	case reflect.String:
		if f.fieldStruct.Tag.Get(stringTypeTag) == stringTypeFile {
			flag := NewFileFlag(name, help, defaultValue)
			f.field.SetString(flag.Value())
			return flag.cliAndEnvFlag, nil
		}
		flag := NewStringFlag(name, help, defaultValue)
		f.field.SetString(flag.Value())
		return flag.cliAndEnvFlag, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var value int
		if defaultValue != "" {
			var err error
			if value, err = strconv.Atoi(defaultValue); err != nil {
				return nil, errors.Wrap(err, "Wrong default value for Int type flag")
			}
		}
		flag := NewIntFlag(name, help, value)
		f.field.SetInt(int64(flag.Value()))
		return flag.cliAndEnvFlag, nil

	case reflect.Bool:
		var value bool
		if defaultValue != "" {
			var err error
			if value, err = strconv.ParseBool(defaultValue); err != nil {
				return nil, errors.Wrap(err, "Wrong default value for Bool type flag")
			}
		}
		flag := NewBoolFlag(name, help, value)
		f.field.SetBool(flag.Value())
		return flag.cliAndEnvFlag, nil

	case reflect.Slice:
		if typeOfField != reflect.TypeOf([]string(nil)) {
			return nil, errors.Errorf("%s type not supported for a slice flag", typeOfField.String())
		}
		var values StringListValue
		if defaultValue != "" {
			if err := values.Set(defaultValue); err != nil {
				return nil, errors.Wrap(err, "Wrong default value for String Slice type flag")
			}
		}
		flag := NewSliceFlag(name, help, values...)
		slice := reflect.MakeSlice(typeOfField, len(flag.Value()), len(flag.Value()))
		for i, value := range flag.Value() {
			slice.Index(i).SetString(value)
		}
		f.field.Set(slice)
		return flag.cliAndEnvFlag, nil
	}
	return nil, errors.Errorf("%s type not supported for a flag", typeOfField.String())
}
