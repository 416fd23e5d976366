package yaml

import (
	"testing"

	"github.com/pbanos/acorn/feature"
	cv "github.com/smartystreets/goconvey/convey"
)

func TestReadFeatures(t *testing.T) {
	cv.Convey("Given a metadata document", t, func() {
		md := []byte(`features:
  Diagnosis: [DGN1, DGN2, DGN3]
  FVC: continuous
  Smokes: discrete
  Risk1Y: [T, F]
`)

		cv.Convey("features are read in order", func() {
			features, err := ReadFeatures(md)
			cv.So(err, cv.ShouldBeNil)
			cv.So(feature.Names(features), cv.ShouldResemble, []string{"Diagnosis", "FVC", "Smokes", "Risk1Y"})
			d, ok := features[0].(*feature.DiscreteFeature)
			cv.So(ok, cv.ShouldBeTrue)
			cv.So(d.AvailableValues(), cv.ShouldResemble, []string{"DGN1", "DGN2", "DGN3"})
			_, ok = features[1].(*feature.ContinuousFeature)
			cv.So(ok, cv.ShouldBeTrue)
			s, ok := features[2].(*feature.DiscreteFeature)
			cv.So(ok, cv.ShouldBeTrue)
			cv.So(s.AvailableValues(), cv.ShouldBeEmpty)
			r := features[3].(*feature.DiscreteFeature)
			cv.So(r.IsBinary(), cv.ShouldBeTrue)
			cv.So(r.Positive(), cv.ShouldEqual, "T")
		})
	})

	cv.Convey("Given invalid metadata", t, func() {

		cv.Convey("an unknown declaration fails", func() {
			_, err := ReadFeatures([]byte("features:\n  FVC: numeric\n"))
			cv.So(err, cv.ShouldNotBeNil)
		})

		cv.Convey("a repeated feature fails", func() {
			_, err := ReadFeatures([]byte("features:\n  FVC: continuous\n  FVC: discrete\n"))
			cv.So(err, cv.ShouldNotBeNil)
		})

		cv.Convey("a document without features fails", func() {
			_, err := ReadFeatures([]byte("other: 1\n"))
			cv.So(err, cv.ShouldNotBeNil)
		})

		cv.Convey("a missing file fails", func() {
			_, err := ReadFeaturesFromFile("does/not/exist.yml")
			cv.So(err, cv.ShouldNotBeNil)
		})
	})
}
