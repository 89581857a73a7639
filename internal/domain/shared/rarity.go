package shared

// Rarity is the item quality class controlling the affix budget. The numeric
// values are part of the persisted wire form and must stay stable.
type Rarity int

const (
	RarityNormal    Rarity = 1
	RarityMagic     Rarity = 2
	RarityRare      Rarity = 3
	RarityLegendary Rarity = 4
)

// AffixLimit caps the prefix and suffix counts for a rarity
type AffixLimit struct {
	MaxPrefix int
	MaxSuffix int
}

var rarityAffixLimits = map[Rarity]AffixLimit{
	RarityNormal:    {MaxPrefix: 0, MaxSuffix: 0},
	RarityMagic:     {MaxPrefix: 1, MaxSuffix: 1},
	RarityRare:      {MaxPrefix: 3, MaxSuffix: 3},
	RarityLegendary: {MaxPrefix: 3, MaxSuffix: 3},
}

var rarityNames = map[Rarity]string{
	RarityNormal:    "Normal",
	RarityMagic:     "Magic",
	RarityRare:      "Rare",
	RarityLegendary: "Legendary",
}

var rarityColors = map[Rarity]string{
	RarityNormal:    "#c8c8c8",
	RarityMagic:     "#8888ff",
	RarityRare:      "#ffff77",
	RarityLegendary: "#ff8800",
}

// AffixLimit returns the prefix/suffix caps for the rarity
func (r Rarity) AffixLimit() AffixLimit {
	return rarityAffixLimits[r]
}

// Name returns the display name for the rarity
func (r Rarity) Name() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Color returns the display color for the rarity
func (r Rarity) Color() string {
	return rarityColors[r]
}

// Valid reports whether the rarity is one of the four known classes
func (r Rarity) Valid() bool {
	_, ok := rarityNames[r]
	return ok
}

func (r Rarity) String() string {
	return r.Name()
}
