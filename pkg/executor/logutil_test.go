package executor

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReadTail(t *testing.T) {
	Convey("While reading tail of a file", t, func() {
		dir, err := ioutil.TempDir("", "paramcomp_tail")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		file := path.Join(dir, "stdout")

		Convey("Only last lines should be returned", func() {
			So(ioutil.WriteFile(file, []byte("1\n2\n3\n4\n5\n"), 0644), ShouldBeNil)
			tail, err := ReadTail(file, 3)
			So(err, ShouldBeNil)
			So(tail, ShouldEqual, "3\n4\n5\n")
		})

		Convey("Short files should be returned whole", func() {
			So(ioutil.WriteFile(file, []byte("1\n2"), 0644), ShouldBeNil)
			tail, err := ReadTail(file, 3)
			So(err, ShouldBeNil)
			So(tail, ShouldEqual, "1\n2")
		})

		Convey("Missing file should fail", func() {
			_, err := ReadTail(path.Join(dir, "missing"), 3)
			So(err, ShouldNotBeNil)
		})
	})
}
