package umi

// DefaultMaxFamilyDistance is the largest distance at which two barcodes at
// the same position are considered members of one derivative family.
const DefaultMaxFamilyDistance = 2

// FamilyDetector identifies barcodes that look like they were derived from
// another barcode in the same position group, e.g. by a sequencing or PCR
// error in the barcode itself.
type FamilyDetector interface {
	// Derivatives returns the set of tags that belong to a derivative
	// family. Comparisons that could not be made are skipped and reported
	// in the returned error slice.
	Derivatives(tags []string) (map[string]bool, []error)
}

// PairwiseDetector compares every unordered pair of tags. The cost is
// quadratic in the number of tags, but position groups are small.
type PairwiseDetector struct {
	// Distance measures the distance between two tags.
	Distance DistanceFunc
	// MaxDistance is the inclusive distance threshold.
	MaxDistance int
}

// NewPairwiseDetector creates a PairwiseDetector. A nil distance selects
// Hamming.
func NewPairwiseDetector(distance DistanceFunc, maxDistance int) *PairwiseDetector {
	if distance == nil {
		distance = Hamming
	}
	return &PairwiseDetector{Distance: distance, MaxDistance: maxDistance}
}

// Derivatives implements FamilyDetector. Both tags of a pair within
// MaxDistance are flagged. Identical entries are at distance zero and are
// flagged too.
func (d *PairwiseDetector) Derivatives(tags []string) (map[string]bool, []error) {
	flagged := map[string]bool{}
	var errs []error
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			dist, err := d.Distance(tags[i], tags[j])
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if dist <= d.MaxDistance {
				flagged[tags[i]] = true
				flagged[tags[j]] = true
			}
		}
	}
	return flagged, errs
}
