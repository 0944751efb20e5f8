// Command gen emits the AVX2 assembly variants consumed behind the avo
// build tag. Run via go:generate from the distance package directory.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

func main() {
	ConstraintExpr("avo,amd64")

	TEXT("SquaredL2AVX2", NOSPLIT, "func(x, y []float32) float32")
	Pragma("noescape")
	Doc("SquaredL2AVX2 computes the squared Euclidean distance of two float32 vectors with AVX2 FMA.")
	generateSquaredL2F32()

	TEXT("DotAVX2", NOSPLIT, "func(x, y []float32) float32")
	Pragma("noescape")
	Doc("DotAVX2 computes the dot product of two float32 vectors with AVX2 FMA.")
	generateDotF32()

	TEXT("SquaredL2Float16AVX2", NOSPLIT, "func(x, y []uint16) float32")
	Pragma("noescape")
	Doc("SquaredL2Float16AVX2 computes the squared Euclidean distance of two binary16 vectors (raw uint16 bits) with F16C conversion and AVX2 FMA.")
	generateSquaredL2F16()

	Generate()
}

func generateSquaredL2F32() {
	xPtr := Load(Param("x").Base(), GP64())
	yPtr := Load(Param("y").Base(), GP64())
	n := Load(Param("x").Len(), GP64())

	acc := YMM()
	VXORPS(acc, acc, acc)

	Label("body_l2_f32")
	CMPQ(n, Imm(8))
	JL(LabelRef("tail_l2_f32"))

	vx := YMM()
	vy := YMM()
	VMOVUPS(Mem{Base: xPtr}, vx)
	VMOVUPS(Mem{Base: yPtr}, vy)

	d := YMM()
	VSUBPS(vy, vx, d)
	VFMADD231PS(d, d, acc)

	ADDQ(Imm(32), xPtr)
	ADDQ(Imm(32), yPtr)
	SUBQ(Imm(8), n)
	JMP(LabelRef("body_l2_f32"))

	Label("tail_l2_f32")
	CMPQ(n, Imm(0))
	JE(LabelRef("done_l2_f32"))

	sx := XMM()
	sy := XMM()
	VMOVSS(Mem{Base: xPtr}, sx)
	VMOVSS(Mem{Base: yPtr}, sy)

	ds := XMM()
	VSUBSS(sy, sx, ds)
	VFMADD231SS(ds, ds, acc.AsX())

	ADDQ(Imm(4), xPtr)
	ADDQ(Imm(4), yPtr)
	SUBQ(Imm(1), n)
	JMP(LabelRef("tail_l2_f32"))

	Label("done_l2_f32")
	sumHorizontal(acc)

	ret := XMM()
	VMOVAPS(acc.AsX(), ret)
	Store(ret, ReturnIndex(0))
	RET()
}

func generateDotF32() {
	xPtr := Load(Param("x").Base(), GP64())
	yPtr := Load(Param("y").Base(), GP64())
	n := Load(Param("x").Len(), GP64())

	acc := YMM()
	VXORPS(acc, acc, acc)

	Label("body_dot_f32")
	CMPQ(n, Imm(8))
	JL(LabelRef("tail_dot_f32"))

	vx := YMM()
	vy := YMM()
	VMOVUPS(Mem{Base: xPtr}, vx)
	VMOVUPS(Mem{Base: yPtr}, vy)
	VFMADD231PS(vx, vy, acc)

	ADDQ(Imm(32), xPtr)
	ADDQ(Imm(32), yPtr)
	SUBQ(Imm(8), n)
	JMP(LabelRef("body_dot_f32"))

	Label("tail_dot_f32")
	CMPQ(n, Imm(0))
	JE(LabelRef("done_dot_f32"))

	sx := XMM()
	sy := XMM()
	VMOVSS(Mem{Base: xPtr}, sx)
	VMOVSS(Mem{Base: yPtr}, sy)
	VFMADD231SS(sx, sy, acc.AsX())

	ADDQ(Imm(4), xPtr)
	ADDQ(Imm(4), yPtr)
	SUBQ(Imm(1), n)
	JMP(LabelRef("tail_dot_f32"))

	Label("done_dot_f32")
	sumHorizontal(acc)

	ret := XMM()
	VMOVAPS(acc.AsX(), ret)
	Store(ret, ReturnIndex(0))
	RET()
}

func generateSquaredL2F16() {
	xPtr := Load(Param("x").Base(), GP64())
	yPtr := Load(Param("y").Base(), GP64())
	n := Load(Param("x").Len(), GP64())

	acc := YMM()
	VXORPS(acc, acc, acc)

	Label("body_l2_f16")
	CMPQ(n, Imm(8))
	JL(LabelRef("tail_l2_f16"))

	xHalf := XMM()
	yHalf := XMM()
	VMOVDQU(Mem{Base: xPtr}, xHalf)
	VMOVDQU(Mem{Base: yPtr}, yHalf)

	vx := YMM()
	vy := YMM()
	VCVTPH2PS(xHalf, vx)
	VCVTPH2PS(yHalf, vy)

	d := YMM()
	VSUBPS(vy, vx, d)
	VFMADD231PS(d, d, acc)

	ADDQ(Imm(16), xPtr)
	ADDQ(Imm(16), yPtr)
	SUBQ(Imm(8), n)
	JMP(LabelRef("body_l2_f16"))

	Label("tail_l2_f16")
	CMPQ(n, Imm(0))
	JE(LabelRef("done_l2_f16"))

	xScalar := XMM()
	yScalar := XMM()
	PINSRW(Imm(0), Mem{Base: xPtr}, xScalar)
	PINSRW(Imm(0), Mem{Base: yPtr}, yScalar)

	xWide := XMM()
	yWide := XMM()
	VCVTPH2PS(xScalar, xWide)
	VCVTPH2PS(yScalar, yWide)

	ds := XMM()
	VSUBSS(yWide, xWide, ds)
	VFMADD231SS(ds, ds, acc.AsX())

	ADDQ(Imm(2), xPtr)
	ADDQ(Imm(2), yPtr)
	SUBQ(Imm(1), n)
	JMP(LabelRef("tail_l2_f16"))

	Label("done_l2_f16")
	sumHorizontal(acc)

	ret := XMM()
	VMOVAPS(acc.AsX(), ret)
	Store(ret, ReturnIndex(0))
	RET()
}

// sumHorizontal reduces the 8 float32 lanes of a YMM register into lane 0.
func sumHorizontal(vec reg.VecVirtual) {
	hi := YMM()
	VEXTRACTF128(Imm(1), vec, hi.AsX())
	VADDPS(vec, hi, vec)

	sh := YMM()
	VSHUFPS(Imm(0b11101110), vec, vec, sh)
	VADDPS(sh, vec, vec)

	VSHUFPS(Imm(0b01010101), vec, vec, sh)
	VADDPS(sh, vec, vec)
}
