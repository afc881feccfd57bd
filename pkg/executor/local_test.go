package executor

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

// TestLocal tests the execution of process on local machine.
func TestLocal(t *testing.T) {
	logrus.SetLevel(logrus.ErrorLevel)

	Convey("While using Local Shell", t, func() {
		outputDir, err := ioutil.TempDir("", "paramcomp_executor")
		So(err, ShouldBeNil)
		defer os.RemoveAll(outputDir)

		l := NewLocalWithOutputDir(outputDir)
		So(l.Name(), ShouldEqual, "Local")

		Convey("When a command printing its environment is executed", func() {
			task, err := l.Execute("echo $theta-$PARAMCOMP_MU", []string{"theta=0.52", "PARAMCOMP_MU=0.1"})
			So(err, ShouldBeNil)
			defer task.EraseOutput()
			defer task.Clean()

			So(task.Wait(0), ShouldBeTrue)
			So(task.Status(), ShouldEqual, TERMINATED)

			exitCode, err := task.ExitCode()
			So(err, ShouldBeNil)
			So(exitCode, ShouldEqual, 0)

			stdout, err := task.StdoutFile()
			So(err, ShouldBeNil)
			defer stdout.Close()
			content, err := ioutil.ReadAll(stdout)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "0.52-0.1\n")
		})

		Convey("When a failing command is executed", func() {
			task, err := l.Execute("echo broken >&2; exit 3", nil)
			So(err, ShouldBeNil)
			defer task.EraseOutput()
			defer task.Clean()

			So(task.Wait(0), ShouldBeTrue)
			exitCode, err := task.ExitCode()
			So(err, ShouldBeNil)
			So(exitCode, ShouldEqual, 3)

			stderr, err := task.StderrFile()
			So(err, ShouldBeNil)
			defer stderr.Close()
			content, err := ioutil.ReadAll(stderr)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "broken\n")
		})

		Convey("When blocking sleep command is executed", func() {
			task, err := l.Execute("sleep 100", nil)
			So(err, ShouldBeNil)
			defer task.EraseOutput()
			defer task.Clean()

			Convey("The task should be still running after a short wait", func() {
				So(task.Wait(1*time.Millisecond), ShouldBeFalse)
				So(task.Status(), ShouldEqual, RUNNING)
				_, err := task.ExitCode()
				So(err, ShouldNotBeNil)
				So(task.Stop(), ShouldBeNil)
			})

			Convey("When we stop the task it should be terminated by a signal", func() {
				So(task.Stop(), ShouldBeNil)
				So(task.Status(), ShouldEqual, TERMINATED)
				exitCode, err := task.ExitCode()
				So(err, ShouldBeNil)
				So(exitCode, ShouldBeLessThan, 0)
				So(task.Wait(0), ShouldBeTrue)
			})
		})

		Convey("Erasing output should remove the output directory", func() {
			task, err := l.Execute("true", nil)
			So(err, ShouldBeNil)
			So(task.Wait(0), ShouldBeTrue)
			stdout, err := task.StdoutFile()
			So(err, ShouldBeNil)
			stdout.Close()

			So(task.Clean(), ShouldBeNil)
			So(task.EraseOutput(), ShouldBeNil)
			_, err = os.Stat(path.Dir(stdout.Name()))
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Empty command should be rejected", func() {
			_, err := l.Execute("", nil)
			So(err, ShouldNotBeNil)
		})
	})
}
