package layout

// MaskToken is the text repeated to mask password content. It is made of
// single-grapheme bullets so that any slice on a bullet boundary is valid.
const MaskToken = "••••••••••••••••"

const (
	maskTokenGraphemes = 16
	maskBulletBytes    = len("•")
)

// PasswordSections returns mask text with exactly n grapheme units, as full
// copies of MaskToken followed by one remainder slice. The remainder is
// empty when n is a multiple of the token length. The returned strings are
// slices of MaskToken; nothing is allocated per bullet.
func PasswordSections(n int) []string {
	if n < 0 {
		n = 0
	}
	full := n / maskTokenGraphemes
	rem := n % maskTokenGraphemes

	sections := make([]string, 0, full+1)
	for range full {
		sections = append(sections, MaskToken)
	}
	return append(sections, MaskToken[:rem*maskBulletBytes])
}
