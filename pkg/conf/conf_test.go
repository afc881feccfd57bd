package conf

import (
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

const testAppName = "testAppName"

var customFlag = NewStringFlag("custom_arg", "help", "default")

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)
		SetHelp("Renders comparison tables.")

		Convey("Name and help should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
			So(app.Help, ShouldEqual, "Renders comparison tables.")
		})

		Convey("Log level can be fetched", func() {
			So(ParseEnv(), ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("Log level can be fetched from env", func() {
			os.Setenv(logLevelFlag.envName(), "debug")

			err := ParseEnv()
			So(err, ShouldBeNil)

			// Should be from environment.
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Log level can be fetched from arguments", func() {
			os.Setenv(logLevelFlag.envName(), "debug")

			err := ParseArgs([]string{"--log", "warn"})
			So(err, ShouldBeNil)

			// Command line wins over environment.
			So(LogLevel(), ShouldEqual, logrus.WarnLevel)
		})

		Convey("Unknown arguments should be rejected", func() {
			err := ParseArgs([]string{"--speed", "3"})
			So(err, ShouldNotBeNil)
		})

		Convey("When some custom argument is defined", func() {
			Convey("When we not defined any environment variable we should have default value after parse", func() {
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

			Convey("Dumped config should contain current values", func() {
				os.Setenv(customFlag.envName(), "dumped")
				So(ParseEnv(), ShouldBeNil)

				dump := DumpConfig()
				So(dump, ShouldStartWith, "# Export are values.\nset -o allexport\n")
				So(dump, ShouldEndWith, "set +o allexport")
				So(dump, ShouldContainSubstring, "\n# help\n# Default: default\nPARAMCOMP_CUSTOM_ARG=dumped\n")
				So(dump, ShouldContainSubstring, "PARAMCOMP_LOG=error\n")
				So(strings.Contains(dump, "PARAMCOMP_HELP"), ShouldBeFalse)

				So(DumpConfigMap(map[string]string{"custom_arg": "overridden"}), ShouldContainSubstring, "PARAMCOMP_CUSTOM_ARG=overridden\n")
				So(GetFlags()["custom_arg"], ShouldEqual, "dumped")
			})
		})
	})
}
