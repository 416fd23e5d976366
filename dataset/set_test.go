package dataset

import (
	"context"
	"math"
	"testing"

	"github.com/pbanos/acorn/feature"
	cv "github.com/smartystreets/goconvey/convey"
)

func TestSubsetWith(t *testing.T) {
	ctx := context.Background()

	cv.Convey("Given a dataset", t, func() {
		s := New(records(
			[3]string{"rain", "no", "T"},
			[3]string{"sunny", "yes", "F"},
			[3]string{"rain", "yes", "F"},
		))

		cv.Convey("subsetting keeps the matching records in order", func() {
			rain, err := s.SubsetWith(ctx, feature.NewDiscreteCriterion(outlook, "rain"))
			cv.So(err, cv.ShouldBeNil)
			cv.So(rain.Count(), cv.ShouldEqual, 2)
			cv.So(rain.Records()[1].Value("windy"), cv.ShouldEqual, "yes")

			cv.Convey("and does not alter the original dataset", func() {
				cv.So(s.Count(), cv.ShouldEqual, 3)
				cv.So(s.Criteria(), cv.ShouldBeEmpty)
			})

			cv.Convey("and subsets of subsets accumulate their criteria", func() {
				rainyAndWindy, err := rain.SubsetWith(ctx, feature.NewDiscreteCriterion(windy, "yes"))
				cv.So(err, cv.ShouldBeNil)
				cv.So(rainyAndWindy.Count(), cv.ShouldEqual, 1)
				cv.So(feature.Path(rainyAndWindy.Criteria()), cv.ShouldEqual, "outlook is rain > windy is yes")
				cv.So(len(rain.Criteria()), cv.ShouldEqual, 1)
			})
		})

		cv.Convey("sibling subsets are independent", func() {
			yes, err := s.SubsetWith(ctx, feature.NewDiscreteCriterion(windy, "yes"))
			cv.So(err, cv.ShouldBeNil)
			no, err := s.SubsetWith(ctx, feature.NewDiscreteCriterion(windy, "no"))
			cv.So(err, cv.ShouldBeNil)
			cv.So(yes.Count()+no.Count(), cv.ShouldEqual, s.Count())
		})

		cv.Convey("a criterion nobody satisfies gives an empty subset", func() {
			overcast, err := s.SubsetWith(ctx, feature.NewDiscreteCriterion(outlook, "overcast"))
			cv.So(err, cv.ShouldBeNil)
			cv.So(overcast.Count(), cv.ShouldEqual, 0)
			cv.So(overcast.Records(), cv.ShouldBeEmpty)
		})

		cv.Convey("feature values are listed in order of first appearance", func() {
			values, err := s.FeatureValues(ctx, outlook)
			cv.So(err, cv.ShouldBeNil)
			cv.So(values, cv.ShouldResemble, []string{"rain", "sunny"})
			counts, err := s.CountFeatureValues(ctx, outlook)
			cv.So(err, cv.ShouldBeNil)
			cv.So(counts, cv.ShouldResemble, map[string]int{"rain": 2, "sunny": 1})
		})

		cv.Convey("discrete features declared without values get them from the records", func() {
			undeclared := feature.NewDiscreteFeature("windy", nil)
			features, err := CollectValues(ctx, s, []feature.Feature{outlook, undeclared})
			cv.So(err, cv.ShouldBeNil)
			cv.So(features[0], cv.ShouldEqual, outlook)
			cv.So(features[1].(*feature.DiscreteFeature).AvailableValues(), cv.ShouldResemble, []string{"no", "yes"})
		})
	})
}

func TestParseValue(t *testing.T) {
	cv.Convey("Given raw values read from a source", t, func() {

		cv.Convey("continuous features get float64 values", func() {
			v, err := ParseValue(age, " 42.5")
			cv.So(err, cv.ShouldBeNil)
			cv.So(v, cv.ShouldEqual, 42.5)
			_, err = ParseValue(age, "old")
			cv.So(err, cv.ShouldNotBeNil)
		})

		cv.Convey("values that are not finite are rejected", func() {
			for _, raw := range []string{"NaN", "Inf", "-inf", "+Infinity"} {
				_, err := ParseValue(age, raw)
				cv.So(err, cv.ShouldNotBeNil)
			}
			_, err := ConvertValue(age, math.NaN())
			cv.So(err, cv.ShouldNotBeNil)
			_, err = ConvertValue(age, "1e30")
			cv.So(err, cv.ShouldBeNil)
		})

		cv.Convey("discrete features get strings among their available values", func() {
			v, err := ParseValue(outlook, "rain")
			cv.So(err, cv.ShouldBeNil)
			cv.So(v, cv.ShouldEqual, "rain")
			_, err = ParseValue(outlook, "snow")
			cv.So(err, cv.ShouldNotBeNil)
		})
	})
}
