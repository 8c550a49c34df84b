package report

import (
	"catalog-reconciler/core/reconcile"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats detail lines: seller ids and grouped numbers for one locale.
type printer struct {
	p   *message.Printer
	sid func(string) string
}

func newPrinter(locale string, sid func(string) string) printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return printer{p: message.NewPrinter(tag), sid: sid}
}

// change renders "1,880 → 1,850 (-30)".
func (pr printer) change(oldValue, newValue int) string {
	return pr.p.Sprintf("%d → %d (%+d)", oldValue, newValue, newValue-oldValue)
}

func (pr printer) soldOutLine(d reconcile.SoldOutDelta) string {
	if d.ProductID == "" {
		return pr.sid(d.ID) + ": quantity → 0"
	}
	return pr.sid(d.ProductID) + " / " + pr.sid(d.ID) + ": quantity → 0"
}

func (pr printer) priceLine(d reconcile.PriceChangedDelta) string {
	return pr.sid(d.ID) + ": " + pr.change(d.OldValue, d.NewValue)
}

func (pr printer) additionalLine(d reconcile.PriceChangedDelta) string {
	return pr.sid(d.ProductID) + " / " + pr.sid(d.ID) + ": additional " + pr.change(d.OldValue, d.NewValue)
}

func (pr printer) restockLine(d reconcile.RestockedDelta) string {
	return pr.p.Sprintf("%s: %d → on sale", pr.sid(d.ID), d.PriorQuantity)
}

func (pr printer) partialLine(d reconcile.PartialSoldOut) string {
	return pr.p.Sprintf("%s: %d of %d options sold out", pr.sid(d.ProductID), d.SoldOut, d.Total)
}

func (pr printer) deletedLine(d reconcile.DeletedDelta) string {
	if d.Message == "" {
		return pr.sid(d.ID) + ": " + d.ReasonCode
	}
	return pr.sid(d.ID) + ": " + d.ReasonCode + " (" + d.Message + ")"
}
