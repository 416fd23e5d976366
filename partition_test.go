package acorn

import (
	"context"
	"errors"
	"testing"

	"github.com/pbanos/acorn/feature"
	cv "github.com/smartystreets/goconvey/convey"
)

func TestSelectFeature(t *testing.T) {
	ctx := context.Background()

	cv.Convey("Given the tennis dataset", t, func() {
		s := tennis()

		cv.Convey("outlook has the highest gain", func() {
			f, gain, err := SelectFeature(ctx, s, tennisFeatures(), nil, play)
			cv.So(err, cv.ShouldBeNil)
			cv.So(f, cv.ShouldEqual, outlook)
			cv.So(gain, cv.ShouldAlmostEqual, 0.2467, 0.0001)
		})

		cv.Convey("excluded features are skipped", func() {
			f, gain, err := SelectFeature(ctx, s, tennisFeatures(), []string{"outlook"}, play)
			cv.So(err, cv.ShouldBeNil)
			cv.So(f, cv.ShouldEqual, humidity)
			cv.So(gain, cv.ShouldAlmostEqual, 0.1518, 0.0001)
		})

		cv.Convey("the first of the features with the same gain wins", func() {
			twin := feature.NewDiscreteFeature("outlook", []string{"sunny", "overcast", "rain"})
			f, _, err := SelectFeature(ctx, s, []feature.Feature{windy, twin, outlook}, nil, play)
			cv.So(err, cv.ShouldBeNil)
			cv.So(f, cv.ShouldEqual, twin)
		})

		cv.Convey("the outcome is never selected", func() {
			f, _, err := SelectFeature(ctx, s, []feature.Feature{play, windy}, nil, play)
			cv.So(err, cv.ShouldBeNil)
			cv.So(f, cv.ShouldEqual, windy)
		})

		cv.Convey("selecting among no features fails", func() {
			_, _, err := SelectFeature(ctx, s, tennisFeatures(), []string{"outlook", "temperature", "humidity", "windy"}, play)
			cv.So(err, cv.ShouldEqual, ErrEmptyCandidateSet)
			_, _, err = SelectFeature(ctx, s, nil, nil, play)
			cv.So(err, cv.ShouldEqual, ErrEmptyCandidateSet)
		})

		cv.Convey("a continuous candidate fails", func() {
			_, _, err := SelectFeature(ctx, s, []feature.Feature{feature.NewContinuousFeature("age")}, nil, play)
			cv.So(errors.Is(err, ErrContinuousFeature), cv.ShouldBeTrue)
		})
	})
}

func TestNewPartition(t *testing.T) {
	ctx := context.Background()

	cv.Convey("Given the tennis dataset", t, func() {
		s := tennis()

		cv.Convey("a partition on the declared values covers the dataset", func() {
			p, err := NewPartition(ctx, s, outlook, outlook.AvailableValues())
			cv.So(err, cv.ShouldBeNil)
			cv.So(p.Values, cv.ShouldResemble, []string{"sunny", "overcast", "rain"})
			total := 0
			for _, ss := range p.Subsets {
				total += ss.Count()
			}
			cv.So(total, cv.ShouldEqual, s.Count())
			cv.So(p.Subsets[0].Count(), cv.ShouldEqual, 5)
			cv.So(p.Subsets[1].Count(), cv.ShouldEqual, 4)
			cv.So(p.Subsets[2].Count(), cv.ShouldEqual, 5)
		})

		cv.Convey("declared values no record takes get an empty subset", func() {
			p, err := NewPartition(ctx, s, outlook, []string{"snow", "sunny", "overcast", "rain"})
			cv.So(err, cv.ShouldBeNil)
			cv.So(p.Subsets[0].Count(), cv.ShouldEqual, 0)
		})

		cv.Convey("values taken by records are added when missing", func() {
			p, err := NewPartition(ctx, s, outlook, []string{"rain"})
			cv.So(err, cv.ShouldBeNil)
			cv.So(p.Values, cv.ShouldResemble, []string{"rain", "sunny", "overcast"})
		})

		cv.Convey("with no values, the ones in the dataset are used in order of appearance", func() {
			ss, err := s.SubsetWith(ctx, feature.NewDiscreteCriterion(outlook, "sunny"))
			cv.So(err, cv.ShouldBeNil)
			p, err := NewPartition(ctx, ss, temperature, nil)
			cv.So(err, cv.ShouldBeNil)
			cv.So(p.Values, cv.ShouldResemble, []string{"hot", "mild", "cool"})
			cv.So(feature.Path(p.Subsets[1].Criteria()), cv.ShouldEqual, "outlook is sunny > temperature is mild")
		})
	})
}
