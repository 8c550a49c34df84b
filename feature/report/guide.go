package report

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"catalog-reconciler/core/reconcile"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// phaseGuide describes how one plan phase maps to the rendered files.
type phaseGuide struct {
	title    string
	workbook string
	files    []string
}

var phaseGuides = map[reconcile.PhaseName]phaseGuide{
	reconcile.PhaseSinglePrice: {
		title:    "Single product prices",
		workbook: "UPDATE_1_SINGLE_PRICE.xlsx",
		files:    []string{FilePriceSingle},
	},
	reconcile.PhaseOptionBasePrice: {
		title:    "Option product base prices",
		workbook: "UPDATE_2_OPTION_BASE_PRICE.xlsx",
		files:    []string{FilePriceOptionBase},
	},
	reconcile.PhaseOptionAdditionalPrice: {
		title:    "Option additional prices",
		workbook: "UPDATE_3_OPTION_ADDITIONAL_PRICE.xlsx",
		files:    []string{FilePriceOptionAdd},
	},
	reconcile.PhaseSingleStock: {
		title:    "Single product stock",
		workbook: "UPDATE_4_SINGLE_STOCK.xlsx",
		files:    []string{FileSingleSoldOut, FileRestockedSingle},
	},
	reconcile.PhaseOptionStock: {
		title:    "Option stock",
		workbook: "UPDATE_5_OPTION_STOCK.xlsx",
		files:    []string{FileOptionSoldOut, FileRestockedOption, FilePartialRestore},
	},
	reconcile.PhaseDelete: {
		title:    "Delete products",
		workbook: "DELETE_PRODUCTS.xlsx",
		files:    []string{FileDeleted},
	},
}

// WorkbookName returns the upload workbook name for a phase.
func WorkbookName(name reconcile.PhaseName) string {
	return phaseGuides[name].workbook
}

// Meta identifies the run a report belongs to.
type Meta struct {
	RunID       string
	Source      string
	GeneratedAt time.Time
}

func renderGuide(meta Meta, res *reconcile.Result, plan *reconcile.UpdatePlan) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("Update order")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run", "`" + meta.RunID + "`"},
			{"Source", meta.Source},
			{"Generated", meta.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Total actions", strconv.Itoa(plan.Summary.TotalActions)},
		},
	})
	md.PlainText("")

	md.H2("Steps")
	md.PlainText("")
	md.PlainText("Apply the steps in this order. Upload a workbook only after the previous one has been accepted.")
	md.PlainText("")
	rows := make([][]string, 0, len(plan.Phases))
	for _, ph := range plan.Phases {
		g := phaseGuides[ph.Name]
		workbook := g.workbook
		if len(ph.Actions) == 0 {
			workbook = "(nothing to upload)"
		}
		rows = append(rows, []string{
			strconv.Itoa(ph.Order),
			g.title,
			workbook,
			joinFiles(g.files),
			strconv.Itoa(len(ph.Actions)),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Step", "Update", "Workbook", "Details", "Actions"},
		Rows:   rows,
	})
	md.PlainText("")

	md.Warningf(
		"Step %d (option base prices) must be applied before step %d (option additional prices). "+
			"An additional price is the option total minus the item price, and the new additional prices "+
			"were computed against the new base. Uploading them while the old base is still live gives every "+
			"option of the product a wrong total.",
		phaseOrder(plan, reconcile.PhaseOptionBasePrice),
		phaseOrder(plan, reconcile.PhaseOptionAdditionalPrice),
	)
	md.PlainText("")

	if n := len(res.PartialSoldOut); n > 0 {
		md.Importantf(
			"%d product(s) have only some options sold out. The item quantity cannot express this; fix them by hand using %s.",
			n, FilePartialSoldOut,
		)
		md.PlainText("")
	}

	writeSummary(md, res.Summary)

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(md *markdown.Markdown, s reconcile.Summary) {
	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Count"},
		Rows: [][]string{
			{"Products in crawl", strconv.Itoa(s.Products)},
			{"Observed", strconv.Itoa(s.Observed)},
			{"Not observed", strconv.Itoa(s.Unobserved)},
			{"Not in baseline", strconv.Itoa(s.NotInBaseline)},
			{"Sold out", strconv.Itoa(s.SoldOut)},
			{"Options sold out", strconv.Itoa(s.VariantSoldOut)},
			{"Partially sold out", strconv.Itoa(s.PartialSoldOut)},
			{"Restocked", strconv.Itoa(s.Restocked)},
			{"Options restocked", strconv.Itoa(s.VariantRestocked)},
			{"Option products restored", strconv.Itoa(s.ProductRestored)},
			{"Price changed", strconv.Itoa(s.PriceChanged)},
			{"Base price changed", strconv.Itoa(s.BasePriceChanged)},
			{"Additional price changed", strconv.Itoa(s.AdditionalPriceChanged)},
			{"Deleted", strconv.Itoa(s.Deleted)},
		},
	})
	md.PlainText("")

	if s.Observed+s.Unobserved == 0 {
		md.Note("The crawl contained no products.")
		md.PlainText("")
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Crawl coverage"),
		piechart.WithShowData(true),
	)
	if s.Observed > 0 {
		chart.LabelAndIntValue("Observed", uint64(s.Observed))
	}
	if s.Unobserved > 0 {
		chart.LabelAndIntValue("Not observed", uint64(s.Unobserved))
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func phaseOrder(plan *reconcile.UpdatePlan, name reconcile.PhaseName) int {
	if ph := plan.Phase(name); ph != nil {
		return ph.Order
	}
	return 0
}

func joinFiles(files []string) string {
	out := ""
	for i, f := range files {
		if i > 0 {
			out += ", "
		}
		out += "`" + f + "`"
	}
	return out
}
