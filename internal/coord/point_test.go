package coord_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/coordsim/internal/coord"
	"github.com/san-kum/coordsim/internal/geom"
)

const tolerance = 1e-9

func beCartesian(x, y, z float64) OmegaMatcher {
	return And(
		HaveField("X", BeNumerically("~", x, tolerance)),
		HaveField("Y", BeNumerically("~", y, tolerance)),
		HaveField("Z", BeNumerically("~", z, tolerance)),
	)
}

var samples = []coord.Cartesian{
	{1, 2, 3},
	{3.3, 2.2, 4.4},
	{-4, 0.5, -2},
	{0, 0, 5},
	{7, -1, 0},
}

var _ = Describe("Point", func() {
	var p coord.Point

	BeforeEach(func() {
		p = coord.Point{}
	})

	Describe("zero value", func() {
		It("is the origin in every view", func() {
			Expect(p.Views()).To(Equal(coord.Views{}))
		})
	})

	Describe("setters", func() {
		It("stores Cartesian values verbatim", func() {
			p.SetCartesian(3.3, 2.2, 4.4)
			Expect(p.Cartesian()).To(Equal(coord.Cartesian{X: 3.3, Y: 2.2, Z: 4.4}))
		})

		It("converts spherical (1, pi/2, 0) to (1, 0, 0)", func() {
			p.SetSpherical(1, math.Pi/2, 0)
			Expect(p.Cartesian()).To(beCartesian(1, 0, 0))
		})

		It("converts cylindrical (2, pi, -1) to (-2, 0, -1)", func() {
			p.SetCylindrical(2, math.Pi, -1)
			Expect(p.Cartesian()).To(beCartesian(-2, 0, -1))
		})

		It("matches the From constructors", func() {
			p.SetSpherical(2, 0.3, -1.2)
			Expect(p).To(Equal(coord.FromSpherical(2, 0.3, -1.2)))
			p.SetCylindrical(2, 0.3, -1.2)
			Expect(p).To(Equal(coord.FromCylindrical(2, 0.3, -1.2)))
			p.SetCartesian(2, 0.3, -1.2)
			Expect(p).To(Equal(coord.FromCartesian(2, 0.3, -1.2)))
		})
	})

	Describe("derived views", func() {
		It("are fresh after a transform", func() {
			p.SetCartesian(1, 0, 0)
			Expect(p.Cylindrical().Phi).To(BeNumerically("~", 0, tolerance))

			Expect(p.Rotate(math.Pi/2, geom.AxisZ)).To(Succeed())
			Expect(p.Cylindrical().Phi).To(BeNumerically("~", math.Pi/2, tolerance))
			Expect(p.Spherical().Phi).To(BeNumerically("~", math.Pi/2, tolerance))

			p.Translate(0, 0, 1)
			Expect(p.Cylindrical().Z).To(BeNumerically("~", 1, tolerance))
			Expect(p.Spherical().Theta).To(BeNumerically("~", math.Pi/4, tolerance))
		})

		It("use atan2(0, 0) = 0 at r = 0 and rho = 0", func() {
			Expect(p.Cylindrical()).To(Equal(coord.Cylindrical{}))
			Expect(p.Spherical()).To(Equal(coord.Spherical{}))

			p.SetCartesian(0, 0, 4)
			Expect(p.Cylindrical()).To(Equal(coord.Cylindrical{R: 0, Phi: 0, Z: 4}))
		})

		It("agree with each other", func() {
			p.SetCartesian(-4, 0.5, -2)
			v := p.Views()
			Expect(v.Cylindrical.Phi).To(Equal(v.Spherical.Phi))
			Expect(v.Spherical.Rho).To(BeNumerically("~", p.Norm(), tolerance))
			Expect(math.Hypot(v.Cylindrical.R, v.Cylindrical.Z)).To(BeNumerically("~", v.Spherical.Rho, tolerance))
		})
	})

	Describe("round trips", func() {
		It("reproduces Cartesian through cylindrical", func() {
			for _, c := range samples {
				p.SetCartesian(c.X, c.Y, c.Z)
				cyl := p.Cylindrical()
				var q coord.Point
				q.SetCylindrical(cyl.R, cyl.Phi, cyl.Z)
				Expect(q.Cartesian()).To(beCartesian(c.X, c.Y, c.Z))
			}
		})

		It("reproduces Cartesian through spherical", func() {
			for _, c := range samples {
				p.SetCartesian(c.X, c.Y, c.Z)
				sph := p.Spherical()
				var q coord.Point
				q.SetSpherical(sph.Rho, sph.Theta, sph.Phi)
				Expect(q.Cartesian()).To(beCartesian(c.X, c.Y, c.Z))
			}
		})
	})

	Describe("Rotate", func() {
		axes := []geom.Axis{geom.AxisX, geom.AxisY, geom.AxisZ}
		angles := []float64{0.1, -1.3, math.Pi / 3, 5.5, 100}

		It("preserves the norm", func() {
			for _, c := range samples {
				for _, axis := range axes {
					for _, angle := range angles {
						p.SetCartesian(c.X, c.Y, c.Z)
						before := p.Norm()
						Expect(p.Rotate(angle, axis)).To(Succeed())
						Expect(p.Norm()).To(BeNumerically("~", before, tolerance))
					}
				}
			}
		})

		It("is the identity at 0 and 2pi", func() {
			for _, axis := range axes {
				p.SetCartesian(1, 2, 3)
				Expect(p.Rotate(0, axis)).To(Succeed())
				Expect(p.Cartesian()).To(Equal(coord.Cartesian{X: 1, Y: 2, Z: 3}))

				Expect(p.Rotate(2*math.Pi, axis)).To(Succeed())
				Expect(p.Cartesian()).To(beCartesian(1, 2, 3))
			}
		})

		It("is undone by the opposite angle", func() {
			for _, axis := range axes {
				for _, angle := range angles {
					p.SetCartesian(3.3, 2.2, 4.4)
					Expect(p.Rotate(angle, axis)).To(Succeed())
					Expect(p.Rotate(-angle, axis)).To(Succeed())
					Expect(p.Cartesian()).To(beCartesian(3.3, 2.2, 4.4))
				}
			}
		})

		It("leaves the point bit-identical on an invalid axis", func() {
			p.SetCartesian(0.1, 0.2, 0.3)
			before := p.Cartesian()

			err := p.Rotate(math.Pi/2, geom.Axis('w'))
			Expect(err).To(MatchError(geom.ErrInvalidAxis))
			Expect(math.Float64bits(p.Cartesian().X)).To(Equal(math.Float64bits(before.X)))
			Expect(math.Float64bits(p.Cartesian().Y)).To(Equal(math.Float64bits(before.Y)))
			Expect(math.Float64bits(p.Cartesian().Z)).To(Equal(math.Float64bits(before.Z)))
		})
	})

	Describe("Translate and Scale", func() {
		It("translate is undone exactly by the opposite offset", func() {
			p.SetCartesian(0.5, -3.25, 8)
			p.Translate(1.5, 2, -0.75)
			p.Translate(-1.5, -2, 0.75)
			Expect(p.Cartesian()).To(Equal(coord.Cartesian{X: 0.5, Y: -3.25, Z: 8}))
		})

		It("scale is undone by reciprocal factors", func() {
			p.SetCartesian(3.3, 2.2, 4.4)
			p.Scale(3, -0.7, 11)
			p.Scale(1.0/3, 1/-0.7, 1.0/11)
			Expect(p.Cartesian()).To(beCartesian(3.3, 2.2, 4.4))
		})
	})

	Describe("ApplyMatrix and ApplyAffine", func() {
		It("reads every input before writing outputs", func() {
			p.SetCartesian(1, 2, 3)
			p.ApplyMatrix(mgl64.Mat3FromRows(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}))
			Expect(p.Cartesian()).To(Equal(coord.Cartesian{X: 3, Y: 1, Z: 2}))
		})

		It("applies the translation column", func() {
			p.SetCartesian(1, 1, 1)
			a := mgl64.Mat4FromRows(
				mgl64.Vec4{1, 0, 0, 1},
				mgl64.Vec4{0, 1, 0, 2},
				mgl64.Vec4{0, 0, 1, 3},
				mgl64.Vec4{0, 0, 0, 1},
			)
			p.ApplyAffine(a)
			Expect(p.Cartesian()).To(Equal(coord.Cartesian{X: 2, Y: 3, Z: 4}))
		})
	})

	Describe("reference scenario", func() {
		It("rotates, translates and scales (1, 2, 3) in sequence", func() {
			p.SetCartesian(1, 2, 3)

			Expect(p.Rotate(math.Pi/2, geom.AxisZ)).To(Succeed())
			Expect(p.Cartesian()).To(beCartesian(-2, 1, 3))

			p.Translate(1, 2, 3)
			Expect(p.Cartesian()).To(beCartesian(-1, 3, 6))

			p.Scale(2, 2, 2)
			Expect(p.Cartesian()).To(beCartesian(-2, 6, 12))
		})
	})

	Describe("String", func() {
		It("formats the Cartesian value", func() {
			Expect(coord.FromCartesian(1, -2, 0.5).String()).To(Equal("(1, -2, 0.5)"))
		})
	})
})
