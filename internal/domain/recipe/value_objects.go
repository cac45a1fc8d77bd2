package recipe

// Value Objects - Immutable objects that describe aspects of the domain

// RoastLevel represents the roast applied to the beans
type RoastLevel string

const (
	RoastLight    RoastLevel = "light"
	RoastCinnamon RoastLevel = "cinnamon"
	RoastMedium   RoastLevel = "medium"
	RoastHigh     RoastLevel = "high"
	RoastCity     RoastLevel = "city"
	RoastFullCity RoastLevel = "full_city"
	RoastFrench   RoastLevel = "french"
	RoastItalian  RoastLevel = "italian"
)

// IsValid reports whether the roast level is a member of the closed set
func (r RoastLevel) IsValid() bool {
	switch r {
	case RoastLight, RoastCinnamon, RoastMedium, RoastHigh,
		RoastCity, RoastFullCity, RoastFrench, RoastItalian:
		return true
	}
	return false
}

// GrindSize represents the grind coarseness
type GrindSize string

const (
	GrindExtraFine    GrindSize = "extra_fine"
	GrindFine         GrindSize = "fine"
	GrindMediumFine   GrindSize = "medium_fine"
	GrindMedium       GrindSize = "medium"
	GrindMediumCoarse GrindSize = "medium_coarse"
	GrindCoarse       GrindSize = "coarse"
	GrindExtraCoarse  GrindSize = "extra_coarse"
)

// IsValid reports whether the grind size is a member of the closed set
func (g GrindSize) IsValid() bool {
	switch g {
	case GrindExtraFine, GrindFine, GrindMediumFine, GrindMedium,
		GrindMediumCoarse, GrindCoarse, GrindExtraCoarse:
		return true
	}
	return false
}

// BrewingConditions captures the measured parameters of a brew. Immutable
// once constructed; absent measurements stay absent rather than zero.
type BrewingConditions struct {
	roastLevel  RoastLevel
	grindSize   *GrindSize
	beanWeight  *float64 // grams
	waterTemp   *float64 // celsius
	waterAmount *float64 // grams
	brewTime    *int     // seconds
}

// BrewingConditionsParams carries the inputs for NewBrewingConditions
type BrewingConditionsParams struct {
	RoastLevel  RoastLevel
	GrindSize   *GrindSize
	BeanWeight  *float64
	WaterTemp   *float64
	WaterAmount *float64
	BrewTime    *int
}

// NewBrewingConditions validates and constructs the value object. Every
// offending field is reported, not just the first.
func NewBrewingConditions(p BrewingConditionsParams) (BrewingConditions, error) {
	var bad []string

	if !p.RoastLevel.IsValid() {
		bad = append(bad, "roastLevel")
	}
	if p.GrindSize != nil && !p.GrindSize.IsValid() {
		bad = append(bad, "grindSize")
	}
	if p.BeanWeight != nil && *p.BeanWeight < 0 {
		bad = append(bad, "beanWeight")
	}
	if p.WaterTemp != nil && *p.WaterTemp < 0 {
		bad = append(bad, "waterTemp")
	}
	if p.WaterAmount != nil && *p.WaterAmount < 0 {
		bad = append(bad, "waterAmount")
	}
	if p.BrewTime != nil && *p.BrewTime < 0 {
		bad = append(bad, "brewingTime")
	}

	if len(bad) > 0 {
		return BrewingConditions{}, &ValidationError{Fields: bad}
	}

	return BrewingConditions{
		roastLevel:  p.RoastLevel,
		grindSize:   p.GrindSize,
		beanWeight:  p.BeanWeight,
		waterTemp:   p.WaterTemp,
		waterAmount: p.WaterAmount,
		brewTime:    p.BrewTime,
	}, nil
}

// RoastLevel returns the roast level
func (c BrewingConditions) RoastLevel() RoastLevel {
	return c.roastLevel
}

// GrindSize returns the grind size, nil when not recorded
func (c BrewingConditions) GrindSize() *GrindSize {
	return c.grindSize
}

// BeanWeight returns the bean weight in grams, nil when not recorded
func (c BrewingConditions) BeanWeight() *float64 {
	return c.beanWeight
}

// WaterTemp returns the water temperature in celsius, nil when not recorded
func (c BrewingConditions) WaterTemp() *float64 {
	return c.waterTemp
}

// WaterAmount returns the water amount in grams, nil when not recorded
func (c BrewingConditions) WaterAmount() *float64 {
	return c.waterAmount
}

// BrewTime returns the brew time in seconds, nil when not recorded
func (c BrewingConditions) BrewTime() *int {
	return c.brewTime
}

// Equal compares two conditions structurally
func (c BrewingConditions) Equal(other BrewingConditions) bool {
	return c.roastLevel == other.roastLevel &&
		eqGrind(c.grindSize, other.grindSize) &&
		eqFloat(c.beanWeight, other.beanWeight) &&
		eqFloat(c.waterTemp, other.waterTemp) &&
		eqFloat(c.waterAmount, other.waterAmount) &&
		eqInt(c.brewTime, other.brewTime)
}

func eqGrind(a, b *GrindSize) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Step is one ordered instruction in a recipe. Order is 1-based and unique
// within a recipe; ordering integrity is an upstream concern.
type Step struct {
	Order       int
	Description string
	DurationSec *int
}
