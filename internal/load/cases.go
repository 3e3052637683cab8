package load

// Case is the loading a hull is evaluated under. It is rebuilt for every
// analysis from the caller's totals.
type Case struct {
	CrewCount         int
	CrewWeightEachLbs float64
	ConcreteWeightLbs float64
}

// CrewWeightLbs returns the total crew weight
func (c Case) CrewWeightLbs() float64 {
	if c.CrewCount <= 0 || c.CrewWeightEachLbs <= 0 {
		return 0
	}
	return float64(c.CrewCount) * c.CrewWeightEachLbs
}

// TotalLbs returns hull plus crew weight
func (c Case) TotalLbs() float64 {
	return c.ConcreteWeightLbs + c.CrewWeightLbs()
}

// Moments holds unfactored midspan moments from each load source (lb·ft)
type Moments struct {
	SelfWeight float64 // hull weight spread uniformly (wL²/8)
	CrewPoint  float64 // whole crew at midspan (PL/4)
	CrewSpread float64 // crew spread over the paddling span
}

// NewMoments computes the unfactored moments for a hull of lengthFt
// carrying hullWeightLbs of concrete and crewWeightLbs of paddlers spread
// over crewSpreadFt.
func NewMoments(hullWeightLbs, crewWeightLbs, lengthFt, crewSpreadFt float64) Moments {
	return Moments{
		SelfWeight: SelfWeightMoment(hullWeightLbs, lengthFt),
		CrewPoint:  PointMoment(crewWeightLbs, lengthFt),
		CrewSpread: CrewDistributedMoment(crewWeightLbs, lengthFt, crewSpreadFt),
	}
}

// Combination is a bending load combination: a factor per load source
type Combination struct {
	ID          string
	Description string

	SelfWeight float64
	CrewPoint  float64
	CrewSpread float64
}

// Combinations are the load cases checked for a canoe hull
var Combinations = []Combination{
	{
		ID:          "1",
		Description: "Self-weight (wL²/8)",
		SelfWeight:  1.0,
	},
	{
		ID:          "2",
		Description: "Crew at midspan (PL/4)",
		CrewPoint:   1.0,
	},
	{
		ID:          "3",
		Description: "Self-weight + crew at midspan",
		SelfWeight:  1.0,
		CrewPoint:   1.0,
	},
	{
		ID:          "4",
		Description: "Self-weight + crew spread over paddling stations",
		SelfWeight:  1.0,
		CrewSpread:  1.0,
	},
}

// Moment calculates the combined moment for this combination
func (lc Combination) Moment(m Moments) float64 {
	return lc.SelfWeight*m.SelfWeight +
		lc.CrewPoint*m.CrewPoint +
		lc.CrewSpread*m.CrewSpread
}

// Governing finds the largest combined moment and the combination that
// produces it
func Governing(m Moments, combinations []Combination) (float64, Combination) {
	var maxMoment float64
	var governing Combination

	for _, combo := range combinations {
		mu := combo.Moment(m)
		if mu > maxMoment {
			maxMoment = mu
			governing = combo
		}
	}

	return maxMoment, governing
}
