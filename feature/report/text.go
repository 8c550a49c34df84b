package report

import (
	"strconv"
	"strings"

	"catalog-reconciler/core/reconcile"
)

// Text artifact names, in report order.
const (
	FileUpdateOrder     = "0_UPDATE_ORDER.md"
	FileSingleSoldOut   = "1_single_soldout_ids.txt"
	FileOptionSoldOut   = "2_option_soldout_ids.txt"
	FilePartialSoldOut  = "3_partial_soldout_products.txt"
	FilePartialRestore  = "4_partial_restore_products.txt"
	FilePriceSingle     = "5_price_changed_single.txt"
	FilePriceOptionBase = "6_price_changed_option_base.txt"
	FilePriceOptionAdd  = "7_price_changed_option_additional.txt"
	FileRestockedSingle = "8_restocked_single.txt"
	FileRestockedOption = "9_restocked_option.txt"
	FileDeleted         = "10_deleted_products.txt"
)

// section is a titled block of lines in a text artifact.
type section struct {
	title string
	lines []string
}

func renderText(title string, count int, sections ...section) []byte {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n")
	b.WriteString("count: ")
	b.WriteString(strconv.Itoa(count))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n[")
		b.WriteString(s.title)
		b.WriteString("]\n")
		if len(s.lines) == 0 {
			b.WriteString("(none)\n")
			continue
		}
		for _, l := range s.lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return []byte(b.String())
}

func textArtifact(name string, data []byte) Artifact {
	return Artifact{Name: name, ContentType: ContentTypeText, Data: data}
}

// textArtifacts renders the ten category files.
func (a *Assembler) textArtifacts(res *reconcile.Result) []Artifact {
	pr := a.printer
	sid := a.opts.SellerID

	single := make([]string, 0, len(res.SoldOut))
	singleDetail := make([]string, 0, len(res.SoldOut))
	for _, d := range res.SoldOut {
		single = append(single, sid(d.ID))
		singleDetail = append(singleDetail, pr.soldOutLine(d))
	}

	optionItems := make([]string, 0, len(res.VariantSoldOut))
	optionIDs := make([]string, 0, len(res.VariantSoldOut))
	optionDetail := make([]string, 0, len(res.VariantSoldOut))
	for _, d := range res.VariantSoldOut {
		optionItems = append(optionItems, sid(d.ProductID))
		optionIDs = append(optionIDs, sid(d.ID))
		optionDetail = append(optionDetail, pr.soldOutLine(d))
	}

	partialIDs := make([]string, 0, len(res.PartialSoldOut))
	partialDetail := make([]string, 0, len(res.PartialSoldOut))
	for _, d := range res.PartialSoldOut {
		partialIDs = append(partialIDs, sid(d.ProductID))
		partialDetail = append(partialDetail, pr.partialLine(d))
	}

	restoreIDs, restoreDetail := restockSections(pr, sid, res.ProductRestored)
	restockIDs, restockDetail := restockSections(pr, sid, res.Restocked)
	optRestockIDs, optRestockDetail := restockSections(pr, sid, res.VariantRestocked)

	priceIDs, priceDetail := priceSections(sid, res.PriceChanged, pr.priceLine)
	baseIDs, baseDetail := priceSections(sid, res.BasePriceChanged, pr.priceLine)
	addIDs, addDetail := priceSections(sid, res.AdditionalPriceChanged, pr.additionalLine)

	deletedIDs := make([]string, 0, len(res.Deleted))
	deletedDetail := make([]string, 0, len(res.Deleted))
	for _, d := range res.Deleted {
		deletedIDs = append(deletedIDs, sid(d.ID))
		deletedDetail = append(deletedDetail, pr.deletedLine(d))
	}

	return []Artifact{
		textArtifact(FileSingleSoldOut, renderText("Single products sold out", len(single),
			section{"item ids", single},
			section{"detail", singleDetail})),
		textArtifact(FileOptionSoldOut, renderText("Options sold out", len(optionIDs),
			section{"item ids", optionItems},
			section{"option ids", optionIDs},
			section{"detail", optionDetail})),
		textArtifact(FilePartialSoldOut, renderText("Products with some options sold out (manual correction)", len(partialIDs),
			section{"item ids", partialIDs},
			section{"detail", partialDetail})),
		textArtifact(FilePartialRestore, renderText("Option products recorded at 0 and on sale again", len(restoreIDs),
			section{"item ids", restoreIDs},
			section{"detail", restoreDetail})),
		textArtifact(FilePriceSingle, renderText("Single product price changes", len(priceIDs),
			section{"item ids", priceIDs},
			section{"detail", priceDetail})),
		textArtifact(FilePriceOptionBase, renderText("Option product base price changes", len(baseIDs),
			section{"item ids", baseIDs},
			section{"detail", baseDetail})),
		textArtifact(FilePriceOptionAdd, renderText("Option additional price changes", len(addIDs),
			section{"option ids", addIDs},
			section{"detail", addDetail})),
		textArtifact(FileRestockedSingle, renderText("Single products restocked", len(restockIDs),
			section{"item ids", restockIDs},
			section{"detail", restockDetail})),
		textArtifact(FileRestockedOption, renderText("Options restocked", len(optRestockIDs),
			section{"option ids", optRestockIDs},
			section{"detail", optRestockDetail})),
		textArtifact(FileDeleted, renderText("Deleted or unreachable products", len(deletedIDs),
			section{"item ids", deletedIDs},
			section{"detail", deletedDetail})),
	}
}

func restockSections(pr printer, sid func(string) string, ds []reconcile.RestockedDelta) (ids, detail []string) {
	ids = make([]string, 0, len(ds))
	detail = make([]string, 0, len(ds))
	for _, d := range ds {
		ids = append(ids, sid(d.ID))
		detail = append(detail, pr.restockLine(d))
	}
	return ids, detail
}

func priceSections(sid func(string) string, ds []reconcile.PriceChangedDelta, line func(reconcile.PriceChangedDelta) string) (ids, detail []string) {
	ids = make([]string, 0, len(ds))
	detail = make([]string, 0, len(ds))
	for _, d := range ds {
		ids = append(ids, sid(d.ID))
		detail = append(detail, line(d))
	}
	return ids, detail
}
