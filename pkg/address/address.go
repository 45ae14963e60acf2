// Package address provides the 160-bit identifier type under which
// entries are stored in bb_capped_set.
package address

import (
	"encoding/hex"
	"strings"

	"github.com/buildbarn/bb-capped-set/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Length of an address in bytes.
const Length = 20

// Address is an opaque fixed-width identifier. Addresses are only
// compared for equality. The zero value is the zero address.
type Address [Length]byte

// Zero is the address consisting of only zero bytes.
var Zero Address

// Parse an address in hexadecimal notation, with or without a leading
// "0x". Both upper and lower case digits are accepted.
func Parse(s string) (Address, error) {
	digits := s
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if len(digits) != 2*Length {
		return Address{}, status.Errorf(codes.InvalidArgument, "Address %#v has length %d, while %d hexadecimal digits were expected", s, len(digits), 2*Length)
	}
	var a Address
	if _, err := hex.Decode(a[:], []byte(digits)); err != nil {
		return Address{}, status.Errorf(codes.InvalidArgument, "Address %#v is not a valid hexadecimal string", s)
	}
	return a, nil
}

// MustParse is identical to Parse, except that it panics if the
// address is invalid.
func MustParse(s string) Address {
	return util.Must(Parse(s))
}

// String returns the address in lower case hexadecimal notation,
// prefixed with "0x".
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
