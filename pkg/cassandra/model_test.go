package cassandra

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("While creating metrics from a snap.metrics row", t, func() {
		now := time.Now()
		tags := map[string]string{"experiment": "abc", "theta": "0.52"}
		metric := NewMetrics("/intel/mutilate/percentile/99th", 2, "node-1", now, false, 42.5,
			[]string{"l1"}, "", tags, "doubleval")

		Convey("All accessors should return the stored fields", func() {
			So(metric.Namespace(), ShouldEqual, "/intel/mutilate/percentile/99th")
			So(metric.Version(), ShouldEqual, 2)
			So(metric.Host(), ShouldEqual, "node-1")
			So(metric.Time(), ShouldResemble, now)
			So(metric.Boolval(), ShouldBeFalse)
			So(metric.Doubleval(), ShouldEqual, 42.5)
			So(metric.Labels(), ShouldResemble, []string{"l1"})
			So(metric.Strval(), ShouldEqual, "")
			So(metric.Tags(), ShouldResemble, tags)
			So(metric.Valtype(), ShouldEqual, "doubleval")
		})
	})

	Convey("Connecting without an address should fail before dialing", t, func() {
		_, err := CreateConfigWithSession("", "snap")
		So(err, ShouldNotBeNil)
		_, err = CreateConfigWithSession("127.0.0.1", "")
		So(err, ShouldNotBeNil)
	})

	Convey("Closing a connection without session should fail", t, func() {
		So((&Connection{}).CloseSession(), ShouldNotBeNil)
	})
}

func TestMetricsFiltering(t *testing.T) {
	Convey("While filtering metrics", t, func() {
		metric := NewMetrics("/intel/mutilate/percentile/99th", 1, "h", time.Time{}, false, 1.0,
			nil, "", map[string]string{"theta": "0.52", "mu": "0.1"}, DoubleValType)

		Convey("Tags should match on every pair", func() {
			So(metric.HasTags(map[string]string{"theta": "0.52"}), ShouldBeTrue)
			So(metric.HasTags(map[string]string{"theta": "0.52", "mu": "0.1"}), ShouldBeTrue)
			So(metric.HasTags(map[string]string{"theta": "1.05"}), ShouldBeFalse)
			So(metric.HasTags(map[string]string{"sigma": "1"}), ShouldBeFalse)
			So(metric.HasTags(nil), ShouldBeTrue)
		})

		Convey("Namespace suffix should match whole elements", func() {
			So(metric.HasNamespaceSuffix("99th"), ShouldBeTrue)
			So(metric.HasNamespaceSuffix("percentile/99th"), ShouldBeTrue)
			So(metric.HasNamespaceSuffix("/intel/mutilate/percentile/99th"), ShouldBeTrue)
			So(metric.HasNamespaceSuffix("9th"), ShouldBeFalse)
			So(metric.HasNamespaceSuffix(""), ShouldBeTrue)
		})

		Convey("Valtype should tell double metrics", func() {
			So(metric.IsDouble(), ShouldBeTrue)
		})
	})
}
