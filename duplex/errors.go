package duplex

import (
	"fmt"

	"github.com/nh13/Duplex-Sequencing/umi"
)

// MissingComplementError is returned when the switch tag of a tag is not
// present in the tag's position group.
type MissingComplementError struct {
	Tag   umi.Tag
	RefID int
	Pos   int
}

func (e *MissingComplementError) Error() string {
	return fmt.Sprintf("no complementary strand %s for %s at %d:%d", e.Tag.Switch(), e.Tag, e.RefID, e.Pos)
}

// LengthMismatchError is returned when two strand sequences can not be
// merged because their lengths differ from each other or from the
// configured read length.
type LengthMismatchError struct {
	Len1, Len2 int
	// Want is the required length, or -1 if only equality is required.
	Want int
}

func (e *LengthMismatchError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("sequence lengths differ: %d, %d", e.Len1, e.Len2)
	}
	return fmt.Sprintf("sequence lengths %d, %d do not match read length %d", e.Len1, e.Len2, e.Want)
}
