package nd_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ndspace/internal/nd"
)

func randomID3(rng *rand.Rand, limit uint) nd.ID[nd.R3] {
	return nd.NewID3(uint(rng.Intn(int(limit))), uint(rng.Intn(int(limit))), uint(rng.Intn(int(limit))))
}

var _ = Describe("Linearization", func() {
	DescribeTable("round-trips every coordinate of a range",
		func(extents []uint) {
			switch len(extents) {
			case 1:
				r, err := nd.RangeOf[nd.R1](extents)
				Expect(err).NotTo(HaveOccurred())
				for i := uint(0); i < r.Size(); i++ {
					id := nd.Delinearize(r, i)
					Expect(nd.Linear(r, id)).To(Equal(i))
				}
			case 2:
				r, err := nd.RangeOf[nd.R2](extents)
				Expect(err).NotTo(HaveOccurred())
				for x0 := uint(0); x0 < extents[0]; x0++ {
					for x1 := uint(0); x1 < extents[1]; x1++ {
						id := nd.NewID2(x0, x1)
						Expect(nd.Delinearize(r, nd.Linear(r, id))).To(Equal(id))
					}
				}
			case 3:
				r, err := nd.RangeOf[nd.R3](extents)
				Expect(err).NotTo(HaveOccurred())
				for x0 := uint(0); x0 < extents[0]; x0++ {
					for x1 := uint(0); x1 < extents[1]; x1++ {
						for x2 := uint(0); x2 < extents[2]; x2++ {
							id := nd.NewID3(x0, x1, x2)
							Expect(nd.Delinearize(r, nd.Linear(r, id))).To(Equal(id))
						}
					}
				}
			}
		},
		Entry("line", []uint{17}),
		Entry("square", []uint{4, 5}),
		Entry("tall", []uint{9, 1}),
		Entry("box", []uint{2, 3, 4}),
		Entry("slab", []uint{1, 7, 3}),
	)

	It("reaches size-1 as its largest offset", func() {
		r := nd.NewRange3(3, 5, 7)
		var zero nd.ID[nd.R3]
		maxSeen := uint(0)
		for x0 := uint(0); x0 < 3; x0++ {
			for x1 := uint(0); x1 < 5; x1++ {
				for x2 := uint(0); x2 < 7; x2++ {
					if off := nd.FlatOffset(r, nd.NewID3(x0, x1, x2), zero); off > maxSeen {
						maxSeen = off
					}
				}
			}
		}
		Expect(maxSeen).To(Equal(r.Size() - 1))
	})

	It("matches the worked examples", func() {
		Expect(nd.FlatOffset(nd.NewRange2(4, 5), nd.NewID2(2, 3), nd.NewID2(0, 0))).To(BeEquivalentTo(13))
		Expect(nd.Delinearize2(nd.NewRange2(4, 5), 13)).To(Equal(nd.NewID2(2, 3)))
		Expect(nd.FlatOffset(nd.NewRange3(2, 3, 4), nd.NewID3(1, 2, 3), nd.NewID3(0, 0, 0))).To(BeEquivalentTo(23))
		Expect(nd.Delinearize3(nd.NewRange3(2, 3, 4), 23)).To(Equal(nd.NewID3(1, 2, 3)))
	})

	It("adds the offset before accumulating", func() {
		r := nd.NewRange2(6, 8)
		id := nd.NewID2(1, 2)
		off := nd.NewID2(3, 4)
		Expect(nd.FlatOffset(r, id, off)).To(Equal(nd.Linear(r, id.Add(off))))
	})
})

var _ = Describe("Component-wise arithmetic", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	laws := map[nd.Op]func(x, y uint) uint{
		nd.OpAdd: func(x, y uint) uint { return x + y },
		nd.OpSub: func(x, y uint) uint { return x - y },
		nd.OpMul: func(x, y uint) uint { return x * y },
		nd.OpDiv: func(x, y uint) uint { return x / y },
		nd.OpMod: func(x, y uint) uint { return x % y },
		nd.OpAnd: func(x, y uint) uint { return x & y },
		nd.OpOr:  func(x, y uint) uint { return x | y },
		nd.OpXor: func(x, y uint) uint { return x ^ y },
		nd.OpShl: func(x, y uint) uint { return x << y },
		nd.OpShr: func(x, y uint) uint { return x >> y },
	}

	It("applies every operator per component", func() {
		for op, law := range laws {
			for n := 0; n < 50; n++ {
				a := randomID3(rng, 1000)
				b := randomID3(rng, 16).AddN(1)
				got := nd.Apply(op, a, b)
				for i := 0; i < 3; i++ {
					Expect(got.Get(i)).To(Equal(law(a.Get(i), b.Get(i))), "operator %s", op)
				}
			}
		}
	})

	It("broadcasts scalars on either side", func() {
		for op, law := range laws {
			for n := 0; n < 50; n++ {
				a := randomID3(rng, 16).AddN(1)
				s := uint(rng.Intn(15) + 1)
				right := nd.ApplyScalar(op, a, s)
				left := nd.ApplyScalarLeft(op, s, a)
				for i := 0; i < 3; i++ {
					Expect(right.Get(i)).To(Equal(law(a.Get(i), s)), "operator %s", op)
					Expect(left.Get(i)).To(Equal(law(s, a.Get(i))), "operator %s", op)
				}
			}
		}
	})

	It("agrees with the compound forms", func() {
		for op := range laws {
			a := randomID3(rng, 100)
			b := randomID3(rng, 8).AddN(1)
			c := a
			c.Assign(op, b)
			Expect(c).To(Equal(nd.Apply(op, a, b)))

			d := a
			d.AssignN(op, 3)
			Expect(d).To(Equal(nd.ApplyScalar(op, a, 3)))
		}
	})

	It("compares equal exactly when every component matches", func() {
		for n := 0; n < 200; n++ {
			a := randomID3(rng, 3)
			b := randomID3(rng, 3)
			same := a.Get(0) == b.Get(0) && a.Get(1) == b.Get(1) && a.Get(2) == b.Get(2)
			Expect(a == b).To(Equal(same))
			Expect(a.Equal(b.Array)).To(Equal(same))
		}
	})
})
