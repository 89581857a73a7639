package rulebook

// FlavorPrefixes and FlavorSuffixes decorate generated item names. Magic
// items take one of either kind, rare and legendary items take one of each.
var FlavorPrefixes = []string{
	"Sharp",
	"Sturdy",
	"Mighty",
	"Swift",
	"Blazing",
	"Frozen",
	"Thundering",
	"Sacred",
	"Shadow",
	"Ancient",
}

var FlavorSuffixes = []string{
	"of Power",
	"of Wrath",
	"of the Heart",
	"of the Soul",
	"of Warding",
	"of Ruin",
	"of Conquest",
	"of Glory",
	"of Eternity",
	"of Fate",
}
