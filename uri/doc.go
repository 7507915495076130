// Package uri builds and parses the unreal://{type}/{name} addresses used to name
// remote engine resources.
//
// Build and Parse are exact inverses for every type and name made of the segment
// alphabet (letters, digits, space and _-.+@~()). Names containing a path separator
// are not supported: Build does not escape them and Parse rejects the result.
package uri
