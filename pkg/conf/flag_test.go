package conf

import (
	"fmt"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnvFlag(t *testing.T) {
	Convey("While using Flag struct, it should construct proper environment var name", t, func() {
		So(NewStringFlag("test_name", "", "").envName(), ShouldEqual, "PARAMCOMP_TEST_NAME")
	})

	Convey("Redefining a flag with the same type and default should return the same flag", t, func() {
		So(NewIntFlag("test_int", "", 3), ShouldEqual, NewIntFlag("test_int", "", 3))
		So(func() { NewIntFlag("test_int", "", 4) }, ShouldPanic)
		So(func() { NewBoolFlag("test_int", "", false) }, ShouldPanic)
	})
}

func TestFlags(t *testing.T) {
	Convey("While using Conf flags", t, func() {
		Convey("When some custom String Flag is defined", func() {
			// Register custom flag.
			customFlag := NewStringFlag("custom_string_arg", "help", "default")
			customFlag.clear()
			defer customFlag.clear()

			Convey("When we do not define any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := "customContent"
				os.Setenv(customFlag.envName(), customValue)

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customValue)
			})
		})

		Convey("When some custom Int Flag is defined", func() {
			// Register custom flag.
			customFlag := NewIntFlag("custom_int_arg", "help", 23424)
			customFlag.clear()
			defer customFlag.clear()

			Convey("When we do not define any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := 12
				os.Setenv(customFlag.envName(), fmt.Sprintf("%d", customValue))

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customValue)
			})
		})

		Convey("When some custom Slice Flag is defined", func() {
			// Register custom flag.
			customFlag := NewSliceFlag("custom_slice_arg", "help")
			customFlag.clear()
			defer customFlag.clear()

			Convey("When we do not define any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldResemble, []string{})
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := fmt.Sprintf("A%sB%sC", stringListDelimiter, stringListDelimiter)
				os.Setenv(customFlag.envName(), customValue)

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldResemble, []string{"A", "B", "C"})

				Convey("Parsing again should not accumulate values", func() {
					err := ParseEnv()
					So(err, ShouldBeNil)
					So(customFlag.Value(), ShouldResemble, []string{"A", "B", "C"})
				})
			})
		})

		Convey("When some custom Bool Flag is defined", func() {
			// Register custom flag.
			customFlag := NewBoolFlag("custom_bool_arg", "help", false)
			customFlag.clear()
			defer customFlag.clear()

			Convey("When we do not define any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				os.Setenv(customFlag.envName(), "true")

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldBeTrue)
			})
		})
	})
}

func TestConfiguration(t *testing.T) {
	Convey("While using flags, we can extract right values for different types.", t, func() {
		// Prepare all kinds of flags.
		defaultString := "main"
		stringTestFlag := NewStringFlag("stringTest", "stringDesc", defaultString)
		providedString := "theta"

		defaultInt := 4
		intTestFlag := NewIntFlag("intTest", "intDesc", defaultInt)
		providedInt := "2"

		sliceTestFlag := NewSliceFlag("sliceTest", "sliceDesc")
		providedSlice := "foo1,foo2"

		err := ParseArgs([]string{
			"--intTest", providedInt,
			"--stringTest", providedString,
			"--sliceTest", providedSlice,
		})
		So(err, ShouldBeNil)

		flags := GetFlags()

		So(flags[stringTestFlag.Name()], ShouldEqual, providedString)
		So(stringTestFlag.Value(), ShouldEqual, providedString)

		So(flags[intTestFlag.Name()], ShouldEqual, providedInt)
		So(intTestFlag.Value(), ShouldEqual, 2)

		So(flags[sliceTestFlag.Name()], ShouldEqual, "foo1,foo2")
		So(sliceTestFlag.Value(), ShouldResemble, []string{"foo1", "foo2"})

		definitions := map[string]FlagDefinition{}
		for _, fd := range getFlagsDefinition() {
			definitions[fd.Name] = fd
		}
		So(definitions["stringTest"].Default, ShouldEqual, defaultString)
		So(definitions["intTest"].Default, ShouldEqual, fmt.Sprintf("%d", defaultInt))
		So(definitions["intTest"].Help, ShouldEqual, "intDesc")
	})
}
