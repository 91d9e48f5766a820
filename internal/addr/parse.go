package addr

import (
	"math"
	"strconv"
	"strings"

	"cidrcalc/internal/domain"
)

// maxOctetDigits bounds each dotted-quad component ("255", "010").
const maxOctetDigits = 3

// ParseAddress parses a dotted-quad string such as "192.168.1.10".
//
// The text must hold exactly four dot-separated decimal components of one to
// three digits, each in [0, 255], with nothing else around them.
func ParseAddress(s string) (domain.Address, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, &domain.FormatError{Input: s, Reason: "want four dot-separated octets"}
	}

	var a uint32
	for _, p := range parts {
		if p == "" || len(p) > maxOctetDigits || !isDigits(p) {
			return 0, &domain.FormatError{Input: s, Reason: "octet is not a decimal number"}
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return 0, &domain.FormatError{Input: s, Reason: "octet out of [0,255]"}
		}
		a = a<<8 | uint32(n)
	}
	return domain.Address(a), nil
}

// FormatAddress renders a as a dotted quad. It is the inverse of ParseAddress
// and accepts every Address value.
func FormatAddress(a domain.Address) string {
	b := make([]byte, 0, 15)
	for shift := 24; shift >= 0; shift -= 8 {
		if shift != 24 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(a>>uint(shift)&0xFF), 10)
	}
	return string(b)
}

// ParsePrefixLength parses the N of "A.B.C.D/N".
//
// Non-numeric text is a FormatError; a number outside [0, 32], negative ones
// included, is a RangeError carrying the offending value.
func ParsePrefixLength(s string) (domain.PrefixLength, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || !isDigits(digits) {
		return 0, &domain.FormatError{Input: s, Reason: "prefix length is not a decimal number"}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Only overflow is possible here; the text is an optional sign and digits.
		v := int64(math.MaxInt64)
		if digits != s {
			v = math.MinInt64
		}
		return 0, &domain.RangeError{Field: domain.FieldPrefixLength, Value: v}
	}
	if n < 0 || n > int64(domain.MaxPrefixLength) {
		return 0, &domain.RangeError{Field: domain.FieldPrefixLength, Value: n}
	}
	return domain.PrefixLength(n), nil
}

// ParseCIDR splits "A.B.C.D/N" into its address and prefix length.
func ParseCIDR(s string) (domain.Address, domain.PrefixLength, error) {
	ip, bits, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, &domain.FormatError{Input: s, Reason: "missing /prefix"}
	}
	if strings.Contains(bits, "/") {
		return 0, 0, &domain.FormatError{Input: s, Reason: "more than one /"}
	}
	a, err := ParseAddress(ip)
	if err != nil {
		return 0, 0, err
	}
	p, err := ParsePrefixLength(bits)
	if err != nil {
		return 0, 0, err
	}
	return a, p, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
