package uri

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Scheme identifies the bridge resource namespace.
const Scheme = "unreal"

const schemePrefix = Scheme + "://"

// ErrInvalidURI is returned for every malformed resource address.
var ErrInvalidURI = errors.New("invalid uri")

// Address identifies a remote resource.
type Address struct {
	Type string
	Name string
}

// URI returns address URI
func (a *Address) URI() string {
	return Build(a.Type, a.Name)
}

// Build returns unreal://{type}/{name}
func Build(resourceType, name string) string {
	return schemePrefix + resourceType + "/" + name
}

// Parse decomposes an unreal:// URI into type and name.
func Parse(URI string) (*Address, error) {
	rest, ok := strings.CutPrefix(URI, schemePrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %q: expected %v scheme", ErrInvalidURI, URI, Scheme)
	}
	segments := strings.Split(rest, "/")
	if len(segments) != 2 {
		return nil, fmt.Errorf("%w: %q: expected {type}/{name}, got %d segment(s)", ErrInvalidURI, URI, len(segments))
	}
	for _, segment := range segments {
		if err := validateSegment(segment); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURI, URI, err)
		}
	}
	return &Address{Type: segments[0], Name: segments[1]}, nil
}

func validateSegment(segment string) error {
	if segment == "" {
		return errors.New("empty segment")
	}
	if strings.TrimSpace(segment) != segment {
		return fmt.Errorf("segment %q has leading or trailing space", segment)
	}
	for _, r := range segment {
		if !IsSegmentRune(r) {
			return fmt.Errorf("segment %q contains %q", segment, r)
		}
	}
	return nil
}

// reserved runes delimit or escape URI components and never appear inside a segment
const reserved = "/?#%\\"

// IsSegmentRune reports whether r may appear in a type or name segment.
// Letters and digits of any script are allowed, as are space and printable punctuation
// other than URI delimiters.
func IsSegmentRune(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
		return true
	case r == ' ':
		return true
	case unicode.IsSpace(r), unicode.IsControl(r), strings.ContainsRune(reserved, r):
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
