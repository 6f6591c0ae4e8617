//go:build !amd64

package hwy

func init() {
	// Non-amd64 architectures use the scalar lanes.
	setScalarMode()
	checkRequirements()
}
