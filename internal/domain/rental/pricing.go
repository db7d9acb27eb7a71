package rental

import "math"

// Billing policy: partial units always round up. A rental one minute into the
// next day is billed the full day; a rental one minute into the next hour is
// billed the full hour. Amounts are integer currency units.

// HourRateOrDerived returns the vehicle's hour rate, falling back to a
// rounded 1/24 of the day rate when no hour rate is configured.
func HourRateOrDerived(dayRate, hourRate int64) int64 {
	if hourRate > 0 {
		return hourRate
	}
	return int64(math.Round(float64(dayRate) / 24))
}

// Quote prices a period against the vehicle's rates. Pure: the same inputs
// always produce the same amount. Period validity is the caller's concern
// (NewPeriod rejects empty and inverted intervals before pricing).
func Quote(dayRate, hourRate int64, p Period, mode BookingType) int64 {
	hours := p.Hours()

	if mode == BookingHourly {
		units := int64(math.Ceil(hours))
		return units * HourRateOrDerived(dayRate, hourRate)
	}

	days := int64(math.Ceil(hours / 24))
	return days * dayRate
}
