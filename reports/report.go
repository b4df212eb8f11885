package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"go-street-kiosk/ledger"
	"go-street-kiosk/models"
)

// Report bundles every projection the owner dashboard shows for one week.
type Report struct {
	Ledger     string        `json:"ledger"`
	Week       string        `json:"week"`
	Summary    Summary       `json:"summary"`
	ToCook     []DishRow     `json:"to_cook"`
	ByDish     []DishRow     `json:"by_dish"`
	ByCustomer []CustomerRow `json:"by_customer"`
	Orders     []CustomerRow `json:"orders"`
}

func Build(day time.Time, orders []models.Order) Report {
	return Report{
		Ledger:     ledger.Resolve(day),
		Week:       day.Format(models.DateLayout),
		Summary:    Summarize(orders),
		ToCook:     ToCook(orders),
		ByDish:     ByDish(orders),
		ByCustomer: ByCustomer(orders),
		Orders:     Newest(orders),
	}
}

// ExportJSON returns the raw ledger backup and its file name.
func ExportJSON(day time.Time, orders []models.Order) ([]byte, string, error) {
	data, err := ledger.Encode(orders)
	if err != nil {
		return nil, "", err
	}
	return data, ledger.Resolve(day), nil
}

// HTMLFileName is report_<year>_wk<week>.html for the week containing day.
func HTMLFileName(day time.Time) string {
	return fmt.Sprintf("report_%s.html", ledger.WeekLabel(day))
}

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}).Parse(`<html>
<head>
<meta charset="utf-8">
<title>{{.ShopName}} - {{.Week}}</title>
<style>
body { font-family: Arial, sans-serif; background-color: #FFF8E1; padding: 20px; }
.header { text-align: center; color: #5D4037; border-bottom: 3px solid #5D4037; padding-bottom: 10px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; background-color: white; }
th { background-color: #5D4037; color: white; padding: 12px; text-align: left; }
td { padding: 10px; border-bottom: 1px solid #ddd; color: #333; }
.footer { margin-top: 30px; text-align: right; font-size: 1.5em; font-weight: bold; color: #5D4037; }
</style>
</head>
<body>
<div class="header">
<h1>{{.ShopName}}</h1>
<div class="info">Sales Report for Week of {{.Week}}</div>
</div>
<table>
<tr><th>Date</th><th>Time</th><th>Customer</th><th>Items</th><th>Total</th></tr>
{{- range .Orders}}
<tr><td>{{.Date}}</td><td>{{.Time}}</td><td>{{.Customer}}</td><td>{{.Items}}</td><td>{{money .Total}}</td></tr>
{{- end}}
</table>
<div class="footer">Total Revenue: {{money .Summary.Revenue}}</div>
</body>
</html>
`))

// RenderHTML produces the printable weekly report.
func RenderHTML(shopName string, report Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Report
		ShopName string
	}{Report: report, ShopName: shopName}
	if err := htmlReport.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
