package binwire_test

import (
	"math"
	"testing"

	"github.com/wippyai/binwire"
)

func TestInt128String(t *testing.T) {
	tests := []struct {
		name string
		v    binwire.Int128
		want string
	}{
		{"zero", binwire.Int128{}, "0"},
		{"one", binwire.Int128FromInt64(1), "1"},
		{"minus one", binwire.Int128FromInt64(-1), "-1"},
		{"int64 min", binwire.Int128FromInt64(math.MinInt64), "-9223372036854775808"},
		{"past int64", binwire.Int128{Hi: 1, Lo: 0}, "18446744073709551616"},
		{"min", binwire.Int128{Hi: math.MinInt64, Lo: 0},
			"-170141183460469231731687303715884105728"},
		{"max", binwire.Int128{Hi: math.MaxInt64, Lo: math.MaxUint64},
			"170141183460469231731687303715884105727"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUint128String(t *testing.T) {
	tests := []struct {
		name string
		v    binwire.Uint128
		want string
	}{
		{"zero", binwire.Uint128{}, "0"},
		{"one", binwire.Uint128FromUint64(1), "1"},
		{"uint64 max", binwire.Uint128FromUint64(math.MaxUint64), "18446744073709551615"},
		{"past uint64", binwire.Uint128{Hi: 1, Lo: 0}, "18446744073709551616"},
		{"max", binwire.Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64},
			"340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInt128FromInt64SignExtension(t *testing.T) {
	neg := binwire.Int128FromInt64(-2)
	if neg.Hi != -1 || neg.Lo != math.MaxUint64-1 {
		t.Errorf("Int128FromInt64(-2) = {Hi: %d, Lo: %d}, want sign-extended halves", neg.Hi, neg.Lo)
	}

	pos := binwire.Int128FromInt64(2)
	if pos.Hi != 0 || pos.Lo != 2 {
		t.Errorf("Int128FromInt64(2) = {Hi: %d, Lo: %d}, want {0, 2}", pos.Hi, pos.Lo)
	}
}
