package shared

// AffixPosition distinguishes prefix and suffix affixes
type AffixPosition string

const (
	AffixPrefix AffixPosition = "prefix"
	AffixSuffix AffixPosition = "suffix"
)
