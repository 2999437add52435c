package invoice

import (
	"bytes"
	"errors"
	"fmt"

	"toolorder-be/internal/order"
	"toolorder-be/internal/utils"

	"github.com/jung-kurt/gofpdf"
)

var ErrEmptyOrder = errors.New("order has no items")

const (
	pageWidth  = 600
	pageHeight = 800

	marginX   = 50
	topY      = 40 // mirrors y=760 measured from the bottom of an 800pt page
	bodySize  = 12
	titleSize = 20

	title     = "Purchase Order"
	separator = "--------------------------------------"
)

// Lines lays out the body of the invoice, one string per printed line:
// key/value header block, separator, one line per item in array order,
// separator, total. Pure; formatting only.
func Lines(o *order.Order) []string {
	lines := []string{
		fmt.Sprintf("Order No: %s", o.ID),
		fmt.Sprintf("Company: %s", o.CompanyName),
		fmt.Sprintf("Site: %s", utils.OrDash(o.SiteName)),
		fmt.Sprintf("Contact: %s", utils.OrDash(o.PersonName)),
		fmt.Sprintf("Delivery: %s", utils.OrDash(o.DeliveryLocation)),
		separator,
	}

	for i, it := range o.Items {
		lines = append(lines, fmt.Sprintf(
			"%d. %s - quantity: %d - unit price: ¥%d",
			i+1, it.Name, it.Quantity, it.Price,
		))
	}

	lines = append(lines,
		separator,
		fmt.Sprintf("Total: ¥%s", utils.FormatThousands(o.Total())),
	)
	return lines
}

// Render produces the invoice PDF for an order. It writes nothing anywhere;
// rendering the same order twice yields byte-identical output because both
// document date stamps are pinned to the order timestamp instead of the
// wall clock.
func Render(o *order.Order) ([]byte, error) {
	if len(o.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetCreationDate(o.OrderedAt.UTC())
	pdf.SetModificationDate(o.OrderedAt.UTC())
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	y := float64(topY)

	drawText := func(text string, size float64) {
		pdf.SetFont("Helvetica", "", size)
		y += size
		pdf.Text(marginX, y, tr(text))
		y += 4
	}

	drawText(title, titleSize)
	for _, line := range Lines(o) {
		drawText(line, bodySize)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
