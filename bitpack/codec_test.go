package bitpack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benreynwar/clash-prelude/bitpack"
	"github.com/benreynwar/clash-prelude/bitvec"
	"github.com/benreynwar/clash-prelude/fixnum"
	"github.com/benreynwar/clash-prelude/sizedvec"
)

func TestUnsigned_roundtrip(t *testing.T) {
	for _, w := range []int{0, 1, 4, 8, 63, 64} {
		c := bitpack.Unsigned(w)
		require.Equal(t, w, c.Size())
		for _, x := range []fixnum.Unsigned{fixnum.U(w, 0), fixnum.U(w, 1), fixnum.MaxU(w), fixnum.U(w, 0x5a5a5a5a5a5a5a5a)} {
			v := c.Pack(x)
			require.Equal(t, w, v.Len())
			y, err := c.Unpack(v)
			require.NoError(t, err)
			require.Equal(t, x, y, "width %d value %v", w, x)
		}
	}
}

func TestSigned_roundtrip(t *testing.T) {
	for _, w := range []int{1, 4, 8, 63, 64} {
		c := bitpack.Signed(w)
		for _, x := range []fixnum.Signed{fixnum.S(w, 0), fixnum.S(w, 1), fixnum.S(w, -1), fixnum.MinS(w), fixnum.MaxS(w)} {
			y, err := c.Unpack(c.Pack(x))
			require.NoError(t, err)
			require.Equal(t, x, y, "width %d value %v", w, x)
		}
	}
}

func TestSigned_encoding(t *testing.T) {
	// two's complement: -13 in 8 bits is 0xf3
	require.True(t, bitpack.Signed(8).Pack(fixnum.S(8, -13)).Equal(bitvec.MustParse("8'hf3")))
}

func TestIndex_codec(t *testing.T) {
	c := bitpack.Index(5)
	require.Equal(t, 3, c.Size())
	for i := uint64(0); i < 5; i++ {
		x := fixnum.MustIdx(5, i)
		y, err := c.Unpack(c.Pack(x))
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
	// patterns above the bound decode to a range error
	_, err := c.Unpack(bitvec.MustParse("3'b111"))
	require.Error(t, err)
	re, ok := err.(*fixnum.RangeError)
	require.True(t, ok, "got %T", err)
	require.EqualValues(t, 7, re.Value)
	require.EqualValues(t, 5, re.Bound)
}

func TestBool_Unit(t *testing.T) {
	b := bitpack.Bool()
	for _, x := range []bool{false, true} {
		y, err := b.Unpack(b.Pack(x))
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
	_, err := b.Unpack(bitvec.Undef(1))
	require.Error(t, err)

	u := bitpack.Unit()
	require.Equal(t, 0, u.Size())
	_, err = u.Unpack(u.Pack(struct{}{}))
	require.NoError(t, err)
}

func TestPair_field_order(t *testing.T) {
	c := bitpack.PairOf(bitpack.Unsigned(4), bitpack.Unsigned(8))
	require.Equal(t, 12, c.Size())
	p := bitpack.Pair[fixnum.Unsigned, fixnum.Unsigned]{Fst: fixnum.U(4, 0xa), Snd: fixnum.U(8, 0x5c)}
	v := c.Pack(p)
	// first field occupies the most significant bits
	require.True(t, v.Equal(bitvec.MustParse("12'ha5c")), "got %v", v)
	q, err := c.Unpack(v)
	require.NoError(t, err)
	require.Equal(t, p, q)
}

type rgb struct {
	r, g fixnum.Unsigned
	b    bool
}

func rgbCodec() bitpack.Codec[rgb] {
	b := bitpack.Struct[rgb]()
	bitpack.Field(b, bitpack.Unsigned(4), func(x rgb) fixnum.Unsigned { return x.r }, func(x *rgb, f fixnum.Unsigned) { x.r = f })
	bitpack.Field(b, bitpack.Unsigned(4), func(x rgb) fixnum.Unsigned { return x.g }, func(x *rgb, f fixnum.Unsigned) { x.g = f })
	bitpack.Field(b, bitpack.Bool(), func(x rgb) bool { return x.b }, func(x *rgb, f bool) { x.b = f })
	return b.Codec()
}

func TestStruct_codec(t *testing.T) {
	c := rgbCodec()
	require.Equal(t, 9, c.Size())
	x := rgb{r: fixnum.U(4, 0xa), g: fixnum.U(4, 0x3), b: true}
	v := c.Pack(x)
	require.True(t, v.Equal(bitvec.MustParse("9'b1010_0011_1")), "got %v", v)
	y, err := c.Unpack(v)
	require.NoError(t, err)
	require.Equal(t, x, y)
}

func TestVector_codec(t *testing.T) {
	c := bitpack.Vector(3, bitpack.Unsigned(4))
	require.Equal(t, 12, c.Size())
	x := sizedvec.Of(fixnum.U(4, 1), fixnum.U(4, 2), fixnum.U(4, 3))
	v := c.Pack(x)
	// element 0 occupies the most significant bits
	require.True(t, v.Equal(bitvec.MustParse("12'h123")), "got %v", v)
	y, err := c.Unpack(v)
	require.NoError(t, err)
	require.True(t, sizedvec.Equal(x, y))

	require.Panics(t, func() { c.Pack(sizedvec.Of(fixnum.U(4, 1))) })
}

// shape is a sum of a point (two coordinates) and a flag (single bit).
type shape interface{ isShape() }

type point struct {
	x, y fixnum.Unsigned
}

type flag bool

func (point) isShape() {}
func (flag) isShape()  {}

func shapeCodec() bitpack.Codec[shape] {
	pc := bitpack.Struct[point]()
	bitpack.Field(pc, bitpack.Unsigned(4), func(p point) fixnum.Unsigned { return p.x }, func(p *point, f fixnum.Unsigned) { p.x = f })
	bitpack.Field(pc, bitpack.Unsigned(4), func(p point) fixnum.Unsigned { return p.y }, func(p *point, f fixnum.Unsigned) { p.y = f })

	b := bitpack.Sum[shape]()
	bitpack.Alt(b, pc.Codec(),
		func(s shape) (point, bool) { p, ok := s.(point); return p, ok },
		func(p point) shape { return p })
	bitpack.Alt(b, bitpack.Bool(),
		func(s shape) (bool, bool) { f, ok := s.(flag); return bool(f), ok },
		func(f bool) shape { return flag(f) })
	return b.Codec()
}

func TestSum_codec(t *testing.T) {
	c := shapeCodec()
	// 1 tag bit + 8 payload bits
	require.Equal(t, 9, c.Size())

	p := point{x: fixnum.U(4, 0xa), y: fixnum.U(4, 0x3)}
	v := c.Pack(p)
	require.True(t, v.Equal(bitvec.MustParse("9'b0_1010_0011")), "got %v", v)
	y, err := c.Unpack(v)
	require.NoError(t, err)
	require.Equal(t, shape(p), y)

	// the narrow alternative pads the gap with don't-care bits
	v = c.Pack(flag(true))
	require.Equal(t, 9, v.Len())
	require.Equal(t, bitvec.One, v.Bit(8), "tag bit")
	require.Equal(t, bitvec.One, v.Bit(0), "payload bit")
	for i := 1; i < 8; i++ {
		require.Equal(t, bitvec.X, v.Bit(i), "filler bit %d", i)
	}
	y, err = c.Unpack(v)
	require.NoError(t, err)
	require.Equal(t, shape(flag(true)), y)
}

func TestSum_invalid_tag(t *testing.T) {
	// three alternatives need two tag bits; tag 3 is unused
	b := bitpack.Sum[int]()
	for alt := 0; alt < 3; alt++ {
		a := alt
		bitpack.Alt(b, bitpack.Unit(),
			func(x int) (struct{}, bool) { return struct{}{}, x == a },
			func(struct{}) int { return a })
	}
	c := b.Codec()
	require.Equal(t, 2, c.Size())
	_, err := c.Unpack(bitvec.MustParse("2'b11"))
	require.Error(t, err)
}

func TestEnum_codec(t *testing.T) {
	type state string
	c := bitpack.Enum[state]("idle", "busy", "done")
	require.Equal(t, 2, c.Size())
	for _, s := range []state{"idle", "busy", "done"} {
		y, err := c.Unpack(c.Pack(s))
		require.NoError(t, err)
		require.Equal(t, s, y)
	}
	require.Panics(t, func() { c.Pack(state("bogus")) })
}

func TestUnpack_size_mismatch(t *testing.T) {
	_, err := bitpack.Unsigned(8).Unpack(bitvec.New(4))
	require.Error(t, err)
}

func TestNested_roundtrip(t *testing.T) {
	// a vector of pairs exercises codec composition
	c := bitpack.Vector(2, bitpack.PairOf(bitpack.Signed(4), bitpack.Index(5)))
	require.Equal(t, 14, c.Size())
	x := sizedvec.Of(
		bitpack.Pair[fixnum.Signed, fixnum.Index]{Fst: fixnum.S(4, -8), Snd: fixnum.MustIdx(5, 4)},
		bitpack.Pair[fixnum.Signed, fixnum.Index]{Fst: fixnum.S(4, 7), Snd: fixnum.MustIdx(5, 0)},
	)
	y, err := c.Unpack(c.Pack(x))
	require.NoError(t, err)
	require.True(t, sizedvec.Equal(x, y))
}
