package addr_test

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"cidrcalc/internal/addr"
	"cidrcalc/internal/domain"
)

func mustParse(t *testing.T, s string) domain.Address {
	t.Helper()
	a, err := addr.ParseAddress(s)
	if err != nil {
		t.Fatalf("ParseAddress(%q): %v", s, err)
	}
	return a
}

func TestAnalyze_Slash24(t *testing.T) {
	got, err := addr.Analyze(mustParse(t, "192.168.1.0"), 24)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if addr.FormatAddress(got.Network) != "192.168.1.0" {
		t.Fatalf("network = %s", addr.FormatAddress(got.Network))
	}
	if addr.FormatAddress(got.Broadcast) != "192.168.1.255" {
		t.Fatalf("broadcast = %s", addr.FormatAddress(got.Broadcast))
	}
	if addr.FormatAddress(got.Mask) != "255.255.255.0" {
		t.Fatalf("mask = %s", addr.FormatAddress(got.Mask))
	}
	if got.MaskBinary != "11111111.11111111.11111111.00000000" {
		t.Fatalf("mask binary = %s", got.MaskBinary)
	}
	if got.Total != 256 {
		t.Fatalf("total = %d", got.Total)
	}
	if !got.HasUsable() {
		t.Fatal("expected usable hosts for /24")
	}
	if addr.FormatAddress(got.Usable.First) != "192.168.1.1" || addr.FormatAddress(got.Usable.Last) != "192.168.1.254" {
		t.Fatalf("usable = %s - %s", addr.FormatAddress(got.Usable.First), addr.FormatAddress(got.Usable.Last))
	}
	if got.Usable.Count != 254 {
		t.Fatalf("usable count = %d", got.Usable.Count)
	}
}

func TestAnalyze_HostBitsMasked(t *testing.T) {
	got, err := addr.Analyze(mustParse(t, "10.1.2.3"), 8)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if addr.FormatAddress(got.Network) != "10.0.0.0" || addr.FormatAddress(got.Input) != "10.1.2.3" {
		t.Fatalf("network=%s input=%s", addr.FormatAddress(got.Network), addr.FormatAddress(got.Input))
	}
	if got.Block() != (domain.CIDRBlock{Base: got.Network, Prefix: 8}) {
		t.Fatalf("block = %+v", got.Block())
	}
}

func TestAnalyze_NoUsableFor31And32(t *testing.T) {
	single, err := addr.Analyze(mustParse(t, "10.0.0.5"), 32)
	if err != nil {
		t.Fatalf("Analyze /32: %v", err)
	}
	if single.Network != single.Broadcast || single.Total != 1 || single.HasUsable() {
		t.Fatalf("/32 = %+v", single)
	}

	p2p, err := addr.Analyze(mustParse(t, "10.0.0.4"), 31)
	if err != nil {
		t.Fatalf("Analyze /31: %v", err)
	}
	if p2p.Total != 2 || p2p.HasUsable() {
		t.Fatalf("/31 = %+v", p2p)
	}
}

func TestAnalyze_WholeSpace(t *testing.T) {
	got, err := addr.Analyze(mustParse(t, "1.2.3.4"), 0)
	if err != nil {
		t.Fatalf("Analyze /0: %v", err)
	}
	if got.Network != 0 || got.Broadcast != domain.MaxAddress || got.Mask != 0 {
		t.Fatalf("/0 = %+v", got)
	}
	if got.Total != 1<<32 || got.Usable.Count != 1<<32-2 {
		t.Fatalf("/0 counts total=%d usable=%d", got.Total, got.Usable.Count)
	}
}

func TestAnalyze_PrefixOutOfRange(t *testing.T) {
	for _, p := range []int{-1, 33, 64} {
		_, err := addr.Analyze(0, p)
		var re *domain.RangeError
		if !errors.As(err, &re) || re.Value != int64(p) {
			t.Fatalf("Analyze(_, %d): want RangeError, got %v", p, err)
		}
	}
}

func TestMask(t *testing.T) {
	require.Equal(t, domain.Address(0), addr.Mask(0))
	require.Equal(t, domain.Address(0x80000000), addr.Mask(1))
	require.Equal(t, domain.Address(0xFFFFFF00), addr.Mask(24))
	require.Equal(t, domain.MaxAddress, addr.Mask(32))
	require.Equal(t, addr.Mask(32), addr.Mask(40))
	require.Equal(t, uint64(1)<<32, addr.BlockSize(0))
	require.Equal(t, uint64(256), addr.BlockSize(24))
	require.Equal(t, uint64(1), addr.BlockSize(32))
	require.Equal(t, addr.BlockSize(32), addr.BlockSize(40))
	require.Equal(t, "00000000.00000000.00000000.00000000", addr.MaskBinary(addr.Mask(0)))
	require.Equal(t, "11000000.10101000.00000001.00000001", addr.Binary(0xC0A80101))
}

func TestAnalyze_Properties(t *testing.T) {
	prop := func(a uint32, p uint8) bool {
		prefix := int(p % 33)
		res, err := addr.Analyze(domain.Address(a), prefix)
		if err != nil {
			return false
		}
		if uint64(res.Broadcast-res.Network)+1 != res.Total || res.Total != uint64(1)<<(32-prefix) {
			return false
		}
		if prefix <= 30 {
			u := res.Usable
			return u != nil &&
				u.Count == res.Total-2 &&
				u.First == res.Network+1 &&
				u.Last == res.Broadcast-1
		}
		return res.Usable == nil
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestFormatAddress_RoundTripProperty(t *testing.T) {
	prop := func(a uint32) bool {
		s := addr.FormatAddress(domain.Address(a))
		back, err := addr.ParseAddress(s)
		return err == nil && addr.FormatAddress(back) == s
	}
	require.NoError(t, quick.Check(prop, nil))
}
