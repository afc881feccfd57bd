package visualization

import "fmt"

// SweepMetadata describes a computed sweep for the preview header.
type SweepMetadata struct {
	source     string
	parameters int
	results    int
}

// NewSweepMetadata is the SweepMetadata constructor.
func NewSweepMetadata(source string, parameters, results int) *SweepMetadata {
	return &SweepMetadata{
		source,
		parameters,
		results,
	}
}

// String returns a printable string with sweep metadata.
func (metadata *SweepMetadata) String() string {
	return fmt.Sprintf("Sweep: %s (%d parameters, %d results)", metadata.source, metadata.parameters, metadata.results)
}
