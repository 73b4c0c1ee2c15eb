package services

import (
	"roomgrid/models"
)

// slotVerdict is the outcome of evaluating one 2-hour slot for one room.
type slotVerdict struct {
	Verdict models.Verdict
	Reason  string
	Price   *float64
}

// probeTimes returns the two 1-hour upstream lookup instants backing a slot.
// Upstream books by the hour while the venue sells 2-hour blocks, so a block
// is sellable only when both constituent hours are free. The offset
// compensates a known upstream timestamp skew and is applied uniformly.
func probeTimes(slotStart string, offsetMinutes int) (string, string) {
	t1 := models.AddMinutes(slotStart, offsetMinutes)
	t2 := models.AddMinutes(slotStart, models.ProbeStepMinutes+offsetMinutes)
	return t1, t2
}

// evaluateSlot scores one slot against a room's occupancy index. Order
// matters: an absent probe record means "missing" even if the other probe is
// busy, so data gaps never masquerade as hard occupancy.
func evaluateSlot(idx models.OccupancyIndex, realDate, slotStart string, offsetMinutes int) slotVerdict {
	t1, t2 := probeTimes(slotStart, offsetMinutes)

	r1, ok1 := idx.Lookup(realDate, t1)
	r2, ok2 := idx.Lookup(realDate, t2)

	if !ok1 || !ok2 {
		return slotVerdict{Verdict: models.VerdictMissing, Reason: models.ReasonSlotMissing}
	}

	price := r1.Price
	if price == nil {
		price = r2.Price
	}

	if !r1.Free() || !r2.Free() {
		return slotVerdict{Verdict: models.VerdictBusy, Reason: models.ReasonOccupied, Price: price}
	}
	return slotVerdict{Verdict: models.VerdictFree, Price: price}
}
