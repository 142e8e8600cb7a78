package value_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/discargs/internal/value"
)

func TestProperty_EncodeIsLeftInverseOfDecode(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		var v value.Value

		switch rapid.IntRange(0, 6).Draw(rt, "kind") {
		case 0:
			v = value.OfInt8(rapid.Int8().Draw(rt, "n"))
		case 1:
			v = value.OfInt16(rapid.Int16().Draw(rt, "n"))
		case 2:
			v = value.OfInt32(rapid.Int32().Draw(rt, "n"))
		case 3:
			v = value.OfInt64(rapid.Int64().Draw(rt, "n"))
		case 4:
			v = value.OfUInt8(rapid.Uint8().Draw(rt, "n"))
		case 5:
			v = value.OfBool(rapid.Bool().Draw(rt, "b"))
		default:
			s := rapid.String().Filter(func(s string) bool {
				return strings.TrimSpace(s) != ""
			}).Draw(rt, "s")
			v = value.OfString(s)
		}

		got, err := value.Spec{Kind: v.Kind()}.Decode(value.Encode(v))
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(got).To(Equal(v))
	})
}

func TestProperty_UnitSuffixMatchesMultipliedDecimal(t *testing.T) {
	t.Parallel()

	multipliers := map[string]int64{
		"c": 1, "w": 2, "d": 4, "q": 8, "k": 1 << 10, "M": 1 << 20, "G": 1 << 30,
	}

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		suffix := rapid.SampledFrom([]string{"c", "w", "d", "q", "k", "M", "G"}).Draw(rt, "suffix")
		n := rapid.Int64Range(-(1 << 31), 1<<31).Draw(rt, "n")
		spec := value.Spec{Kind: value.Int64}

		suffixed, err := spec.Decode(strconv.FormatInt(n, 10) + suffix)
		g.Expect(err).NotTo(HaveOccurred())

		plain, err := spec.Decode(strconv.FormatInt(n*multipliers[suffix], 10))
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(suffixed).To(Equal(plain))
	})
}

func TestProperty_HexMatchesDecimal(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		kind := rapid.SampledFrom([]value.Kind{
			value.Int8, value.Int16, value.Int32, value.Int64, value.UInt8,
		}).Draw(rt, "kind")
		_, hi := kind.Limits()
		n := rapid.Int64Range(0, hi).Draw(rt, "n")
		marker := rapid.SampledFrom([]string{"0x", "0X"}).Draw(rt, "marker")
		spec := value.Spec{Kind: kind}

		// Upper-case digits keep clear of the lower-case unit suffixes.
		hex, err := spec.Decode(fmt.Sprintf("%s%X", marker, n))
		g.Expect(err).NotTo(HaveOccurred())

		dec, err := spec.Decode(strconv.FormatInt(n, 10))
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(hex).To(Equal(dec))
	})
}

func TestProperty_BoundsAreInclusive(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		lo := rapid.Int64Range(-(1 << 40), 1<<40).Draw(rt, "lo")
		hi := rapid.Int64Range(lo, lo+(1<<20)).Draw(rt, "hi")
		spec := value.Spec{Kind: value.Int64, Range: value.Between(lo, hi)}

		for _, n := range []int64{lo, hi} {
			v, err := spec.Decode(strconv.FormatInt(n, 10))
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(v.Int()).To(Equal(n))
		}

		for _, n := range []int64{lo - 1, hi + 1} {
			_, err := spec.Decode(strconv.FormatInt(n, 10))
			g.Expect(err).To(MatchError(value.ErrOutOfRange))
		}
	})
}

func TestProperty_WidthLimitsAreInclusive(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		kind := rapid.SampledFrom([]value.Kind{
			value.Int8, value.Int16, value.Int32, value.UInt8,
		}).Draw(rt, "kind")
		lo, hi := kind.Limits()
		spec := value.Spec{Kind: kind}

		_, err := spec.Decode(strconv.FormatInt(lo, 10))
		g.Expect(err).NotTo(HaveOccurred())
		_, err = spec.Decode(strconv.FormatInt(hi, 10))
		g.Expect(err).NotTo(HaveOccurred())
		_, err = spec.Decode(strconv.FormatInt(lo-1, 10))
		g.Expect(err).To(MatchError(value.ErrOutOfRange))
		_, err = spec.Decode(strconv.FormatInt(hi+1, 10))
		g.Expect(err).To(MatchError(value.ErrOutOfRange))
	})
}
