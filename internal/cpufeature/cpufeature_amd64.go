//go:build amd64

package cpufeature

import "golang.org/x/sys/cpu"

// HasBMI2 reports whether the running CPU supports the BMI2 instruction
// set (PDEP/PEXT). bitops and zorder use it to pick between the
// bit-trick fast path and the portable table-driven fallback.
func HasBMI2() bool {
	return cpu.X86.HasBMI2
}
