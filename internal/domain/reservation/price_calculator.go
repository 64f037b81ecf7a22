package reservation

type PriceCalculator interface {
	Calculate(perDayRate Money, period Period) Money
}

// DailyRateCalculator charges the rank's per-day rate for every calendar day of the period.
type DailyRateCalculator struct{}

func NewDailyRateCalculator() *DailyRateCalculator {
	return &DailyRateCalculator{}
}

func (DailyRateCalculator) Calculate(perDayRate Money, period Period) Money {
	return perDayRate.Times(period.Days())
}
