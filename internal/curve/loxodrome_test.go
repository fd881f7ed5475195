package curve_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/loxodrome/internal/curve"
)

const tol = 1e-9

var _ = Describe("Loxodrome generator", func() {
	var p curve.Params

	BeforeEach(func() {
		p = curve.Params{Radius: 2.5, Ribbons: 12, Turns: 2}
	})

	Describe("concrete points", func() {
		It("starts ribbon 0 on the +x axis at the equator", func() {
			v := p.Point(0, 0)
			Expect(v.X).To(BeNumerically("~", 2.5, tol))
			Expect(v.Y).To(BeNumerically("~", 0, tol))
			Expect(v.Z).To(BeNumerically("~", 0, tol))
		})

		It("starts ribbon 3 a quarter turn later on the +y axis", func() {
			Expect(p.AngleOffset(3)).To(BeNumerically("~", math.Pi/2, tol))
			v := p.Point(3, 0)
			Expect(v.X).To(BeNumerically("~", 0, tol))
			Expect(v.Y).To(BeNumerically("~", 2.5, tol))
			Expect(v.Z).To(BeNumerically("~", 0, tol))
		})

		It("approaches but does not reach the north pole at t=1.5", func() {
			v := p.Point(0, 1.5)
			Expect(v.Z).To(BeNumerically("~", 2.5*math.Sin(1.5), tol))
			Expect(v.Z).To(BeNumerically("~", 2.494, 1e-3))
			Expect(v.Z).To(BeNumerically("<", 2.5))
		})
	})

	It("is deterministic", func() {
		gen := p.Generator(5)
		for _, t := range []float64{-1.5, -0.3, 0, 0.7, 1.5} {
			Expect(gen(t)).To(Equal(gen(t)))
			Expect(gen(t)).To(Equal(p.Point(5, t)))
		}
	})

	It("keeps every sample on the sphere of radius R", func() {
		r := curve.DefaultRange()
		for i := 0; i < p.Ribbons; i++ {
			for _, v := range curve.Sample(p.Generator(i), r) {
				Expect(r3.Norm(v)).To(BeNumerically("~", p.Radius, 1e-12))
			}
		}
	})

	DescribeTable("separates ribbons by their angle offset",
		func(i, j int, t float64) {
			diff := p.Longitude(i, t) - p.Longitude(j, t)
			want := 2 * math.Pi * float64(i-j) / float64(p.Ribbons)
			Expect(diff).To(BeNumerically("~", want, tol))
			if (i-j)%p.Ribbons != 0 {
				Expect(r3.Norm(r3.Sub(p.Point(i, t), p.Point(j, t)))).To(BeNumerically(">", 1e-6))
			}
		},
		Entry("neighbours at the equator", 1, 0, 0.0),
		Entry("opposite ribbons mid-latitude", 6, 0, 0.8),
		Entry("reversed order near the south pole", 2, 9, -1.4),
	)

	It("winds monotonically in longitude", func() {
		r := curve.DefaultRange()
		prev := math.Inf(-1)
		for i := 0; i < r.Len(); i++ {
			lam := p.Longitude(4, r.At(i))
			Expect(lam).To(BeNumerically(">", prev))
			prev = lam
		}
	})

	It("keeps the Mercator term finite across the sampling range", func() {
		for t := -1.5; t <= 1.5; t += 0.05 {
			v := math.Tan(t/2 + math.Pi/4)
			Expect(v).To(BeNumerically(">", 0))
			Expect(math.IsInf(v, 0)).To(BeFalse())
			Expect(math.IsInf(math.Log(v), 0)).To(BeFalse())
		}
	})

	It("diverges at the pole, which is the caller's responsibility", func() {
		v := p.Point(0, -math.Pi/2)
		Expect(math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y)).To(BeTrue())
	})

	Describe("Params.Validate", func() {
		It("accepts the defaults", func() {
			Expect(curve.DefaultParams().Validate()).To(Succeed())
		})

		DescribeTable("rejects out-of-bounds parameters",
			func(q curve.Params) {
				Expect(q.Validate()).To(MatchError(curve.ErrParameterBounds))
			},
			Entry("zero radius", curve.Params{Radius: 0, Ribbons: 12, Turns: 2}),
			Entry("no ribbons", curve.Params{Radius: 1, Ribbons: 0, Turns: 2}),
			Entry("NaN turns", curve.Params{Radius: 1, Ribbons: 1, Turns: math.NaN()}),
		)
	})
})
