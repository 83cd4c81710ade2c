package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/gomath3d"
)

const tolerance = 1e-6

func compareMatrix4(got gomath3d.Matrix4, want mgl64.Mat4) error {
	if !got.ApproxEqual(gomath3d.Matrix4FromMgl(want), tolerance) {
		return fmt.Errorf("got\n%v\nwant\n%v", got, gomath3d.Matrix4FromMgl(want))
	}
	return nil
}

func compareVec3(got, want gomath3d.Vec3) error {
	if !got.ApproxEqual(want, tolerance) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

func checkInverse() error {
	m := gomath3d.Translate(3, -1, 7).Mul(gomath3d.Rotate(90, gomath3d.NewVec3(0, 1, 0)))
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	if err := compareMatrix4(m.Mul(inv), mgl64.Ident4()); err != nil {
		return fmt.Errorf("m * inverse(m): %w", err)
	}
	if err := compareMatrix4(inv, m.Mgl().Inv()); err != nil {
		return fmt.Errorf("against mgl64: %w", err)
	}

	r3 := gomath3d.Rotate3(45, gomath3d.NewVec3(0, 1, 0))
	inv3, err := r3.Inverse()
	if err != nil {
		return err
	}
	if !r3.Mul(inv3).ApproxEqual(gomath3d.Identity3(), tolerance) {
		return fmt.Errorf("3x3 rotation times its inverse is\n%v", r3.Mul(inv3))
	}
	return nil
}

func checkSingularInverse() error {
	m := gomath3d.Scale(1, 0, 1)
	inv, err := m.Inverse()
	if !errors.Is(err, gomath3d.ErrSingularMatrix) {
		return fmt.Errorf("want ErrSingularMatrix, got %v", err)
	}
	if inv != gomath3d.Identity4() {
		return fmt.Errorf("fallback is\n%v", inv)
	}
	return nil
}

func checkDeterminant() error {
	c0 := gomath3d.NewVec4(1, 0, 2, -1)
	c1 := gomath3d.NewVec4(3, 0, 0, 5)
	c2 := gomath3d.NewVec4(2, 1, 4, -3)
	c3 := gomath3d.NewVec4(1, 0, 5, 0)

	m := gomath3d.NewMatrix4FromColumns(c0, c1, c2, c3)
	if d := m.Determinant(); math.Abs(d-30) > tolerance || math.Abs(d-m.Mgl().Det()) > tolerance {
		return fmt.Errorf("det = %v, want 30", d)
	}
	swapped := gomath3d.NewMatrix4FromColumns(c1, c0, c2, c3)
	if d := swapped.Determinant(); math.Abs(d+30) > tolerance {
		return fmt.Errorf("det after a column swap = %v, want -30", d)
	}
	if d := gomath3d.Identity3().Determinant(); d != 1 {
		return fmt.Errorf("det of the 3x3 identity = %v", d)
	}
	return nil
}

func checkLookAt() error {
	cases := [][3]gomath3d.Vec3{
		{{X: 0, Y: 0, Z: -10}, {X: 0, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 0}},
		{{X: 0, Y: 0, Z: -10}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 0}},
	}
	for _, c := range cases {
		got, err := gomath3d.LookAt(c[0], c[1], c[2])
		if err != nil {
			return err
		}
		if err := compareMatrix4(got, mgl64.LookAtV(c[0].Mgl(), c[1].Mgl(), c[2].Mgl())); err != nil {
			return fmt.Errorf("eye %v center %v: %w", c[0], c[1], err)
		}
	}
	return nil
}

func checkRotation() error {
	axis := gomath3d.NewVec3(1, 0, 0)
	if err := compareMatrix4(gomath3d.Rotate(90, axis), mgl64.HomogRotate3D(math.Pi/2, axis.Mgl())); err != nil {
		return err
	}
	// A point on +X swings to -Z after a quarter turn about Y.
	return compareVec3(gomath3d.RotateAxis(90, 0, 1, 0).MulPoint(gomath3d.NewVec3(5, 0, 0)), gomath3d.NewVec3(0, 0, -5))
}

func checkOrthogonal() error {
	m := gomath3d.Rotate(180, gomath3d.NewVec3(0, 1, 0))
	w := m.Column(gomath3d.Col3)
	for _, c := range []gomath3d.Column{gomath3d.Col0, gomath3d.Col1, gomath3d.Col2} {
		if d := w.Dot(m.Column(c)); math.Abs(d) > tolerance {
			return fmt.Errorf("column 3 . column %d = %v", c, d)
		}
	}
	if rt := m.Matrix3().Transpose(); !rt.Mul(m.Matrix3()).ApproxEqual(gomath3d.Identity3(), tolerance) {
		return fmt.Errorf("transpose(R) * R is\n%v", rt.Mul(m.Matrix3()))
	}
	return nil
}

func checkMultiply() error {
	got := gomath3d.Translate(10, 10, 10).
		Mul(gomath3d.RotateAxis(90, 0, 1, 0)).
		Mul(gomath3d.Scale(0.75, 0.75, 0.75))
	want := mgl64.Translate3D(10, 10, 10).
		Mul4(mgl64.HomogRotate3DY(math.Pi / 2)).
		Mul4(mgl64.Scale3D(0.75, 0.75, 0.75))
	return compareMatrix4(got, want)
}

func checkViewport() error {
	m := gomath3d.ViewportNDC(1024, 1024)
	if err := compareVec3(m.MulPoint(gomath3d.NewVec3(0, 0, 0)), gomath3d.NewVec3(512, 512, 0)); err != nil {
		return fmt.Errorf("center: %w", err)
	}
	if err := compareVec3(m.MulPoint(gomath3d.NewVec3(-1, 1, 1)), gomath3d.NewVec3(0, 0, 1)); err != nil {
		return fmt.Errorf("top left: %w", err)
	}
	return nil
}

func checkUnOrtho() error {
	ndc := gomath3d.ViewportNDC(800, 600)
	ortho, err := gomath3d.Orthographic(-10, 10, -10, 10, -10, 1)
	if err != nil {
		return err
	}
	projection := ndc.Mul(ortho)

	inv, err := gomath3d.UnOrtho(projection)
	if err != nil {
		return err
	}
	general, err := projection.Inverse()
	if err != nil {
		return err
	}
	if !inv.ApproxEqual(general, tolerance) {
		return fmt.Errorf("un-ortho\n%v\ndiffers from the general inverse\n%v", inv, general)
	}
	if !projection.Mul(inv).ApproxEqual(gomath3d.Identity4(), tolerance) {
		return fmt.Errorf("projection * un-ortho is\n%v", projection.Mul(inv))
	}
	return nil
}

func checkQuaternion() error {
	v := gomath3d.NewVec3(1, 0, 0)
	q := gomath3d.QuaternionFromAngleAxis(90, gomath3d.NewVec3(0, 1, 0))
	if err := compareVec3(q.RotateVec(v), gomath3d.NewVec3(0, 0, -1)); err != nil {
		return fmt.Errorf("q * v * ~q: %w", err)
	}

	roll := gomath3d.ToQuaternion(gomath3d.NewEuler(0, 0, 45))
	want := gomath3d.NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0)
	for name, got := range map[string]gomath3d.Vec3{
		"slow":   roll.RotateVec(v),
		"fast":   gomath3d.RotateVector(v, roll),
		"mat3":   roll.Matrix3().MulVec3(v),
		"mat4":   roll.Matrix4().MulPoint(v),
		"pow":    gomath3d.RotateVector(v, gomath3d.Pow(gomath3d.QuaternionFromAngleAxis(90, gomath3d.NewVec3(0, 0, 1)), 0.5)),
		"mgl64":  gomath3d.Vec3FromMgl(roll.Mgl().Rotate(v.Mgl())),
		"matrix": gomath3d.Rotate(45, gomath3d.NewVec3(0, 0, 1)).MulDirection(v),
	} {
		if err := compareVec3(got, want); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	inv, err := q.Inverse()
	if err != nil {
		return err
	}
	if id := q.Mul(inv); !id.ApproxEqual(gomath3d.IdentityQuaternion(), tolerance) {
		return fmt.Errorf("q * inverse(q) = %v", id)
	}

	j := gomath3d.PureQuaternion(gomath3d.NewVec3(0, 1, 0))
	k := gomath3d.PureQuaternion(gomath3d.NewVec3(0, 0, 1))
	if i := j.Mul(k); i != gomath3d.PureQuaternion(gomath3d.NewVec3(1, 0, 0)) {
		return fmt.Errorf("j * k = %v, want i", i)
	}
	return nil
}

func checkSlerp() error {
	q1 := gomath3d.ToQuaternion(gomath3d.NewEuler(90, 0, 0))
	q2 := gomath3d.ToQuaternion(gomath3d.NewEuler(0, 90, 0))
	for i := 0; i <= 10; i++ {
		t := float64(i) / 10
		got := gomath3d.Slerp(q1, q2, t)
		want := gomath3d.QuaternionFromMgl(mgl64.QuatSlerp(q1.Mgl(), q2.Mgl(), t))
		if !got.ApproxEqual(want, 1e-4) {
			return fmt.Errorf("t=%.1f: got %v, want %v", t, got, want)
		}
	}
	return nil
}

func checkEuler() error {
	e := gomath3d.NewEuler(20, -35, 110)
	if back := gomath3d.ToEuler(gomath3d.ToQuaternion(e)); !back.ApproxEqual(e, tolerance) {
		return fmt.Errorf("through a quaternion: %v", back)
	}
	if back := gomath3d.EulerFromMatrix3(e.Matrix3()); !back.ApproxEqual(e, tolerance) {
		return fmt.Errorf("through a matrix: %v", back)
	}
	return nil
}

func checkHash() error {
	v1 := gomath3d.NewVec3(1.1, 1, 1)
	v2 := gomath3d.NewVec3(1.1, 1, 1)
	if v1 != v2 || v1.Hash() != v2.Hash() {
		return fmt.Errorf("equal vectors %v and %v hash to %x and %x", v1, v2, v1.Hash(), v2.Hash())
	}

	verts := []gomath3d.Vec3{v1, v2, gomath3d.NewVec3(1, 1.1, 1), gomath3d.NewVec3(math.Copysign(0, -1), 0, 0), gomath3d.NewVec3(0, 0, 0)}
	unique := map[uint64]uint32{}
	reference := map[mgl64.Vec3]uint32{}
	for _, v := range verts {
		if _, ok := unique[v.Hash()]; !ok {
			unique[v.Hash()] = uint32(len(unique))
		}
		if _, ok := reference[v.Mgl()]; !ok {
			reference[v.Mgl()] = uint32(len(reference))
		}
	}
	if len(unique) != len(reference) {
		return fmt.Errorf("%d unique hashes, %d unique mgl64 vectors", len(unique), len(reference))
	}
	return nil
}

func checkPlane() error {
	p, err := gomath3d.PlaneFromPoints(gomath3d.NewVec3(0, 0, 1), gomath3d.NewVec3(1, 0, 1), gomath3d.NewVec3(0, 1, 1))
	if err != nil {
		return err
	}
	hit, ok := p.LineIntersect(gomath3d.NewVec3(0, 0, 0), gomath3d.NewVec3(2, 2, 2))
	if !ok {
		return errors.New("segment through the plane missed it")
	}
	if err := compareVec3(hit, gomath3d.NewVec3(1, 1, 1)); err != nil {
		return err
	}

	m := gomath3d.Translate(0, 3, 0).Mul(gomath3d.Rotate(40, gomath3d.NewVec3(0, 1, 1)))
	moved, err := p.Transform(m)
	if err != nil {
		return err
	}
	if d := moved.Distance(m.MulPoint(hit)); math.Abs(d) > tolerance {
		return fmt.Errorf("transformed point is %v from the transformed plane", d)
	}
	return nil
}
