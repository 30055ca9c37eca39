//go:build !amd64

package cpufeature

// HasBMI2 always reports false on architectures without a BMI2 probe;
// callers fall back to the portable implementation.
func HasBMI2() bool {
	return false
}
