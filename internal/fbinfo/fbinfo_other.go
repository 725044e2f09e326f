//go:build !linux

package fbinfo

// Probe always fails off Linux.
func Probe(string) (Info, error) {
	return Info{}, ErrUnsupported
}
