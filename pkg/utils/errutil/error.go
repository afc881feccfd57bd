package errutil

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Check the supplied error, log and exit if non-nil.
// Stack trace recorded by pkg/errors is logged on debug level.
func Check(err error) {
	if err != nil {
		logrus.Debugf("%+v", err)
		logrus.Fatalf("%v", err)
	}
}

// CheckWithContext checks the error and exit if it is not nil. Logs additional context information.
func CheckWithContext(err error, context string) {
	if err != nil {
		Check(errors.Wrap(err, context))
	}
}
