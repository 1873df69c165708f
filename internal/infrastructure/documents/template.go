package documents

const quoteTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Quote {{.QuoteID}}{{with .Company}} | {{.}}{{end}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #1d2b36; max-width: 720px; margin: 2rem auto; }
h1 { font-size: 1.5rem; margin-bottom: 0; }
.muted { color: #6b7b88; }
table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
td { padding: .35rem 0; border-bottom: 1px solid #e4e9ed; }
td.amount { text-align: right; }
tr.total td { font-weight: bold; border-bottom: 2px solid #1d2b36; }
a.book { display: inline-block; background: #0b7a75; color: #fff; padding: .6rem 1.2rem; text-decoration: none; border-radius: 4px; }
</style>
</head>
<body>
<h1>Vacate Cleaning Quote</h1>
<p class="muted">{{.QuoteID}} &middot; issued {{.IssuedAt}} &middot; valid until {{.ValidUntil}}</p>

<h2>Prepared for</h2>
<p>
{{- with .Customer}}{{.}}<br>{{end}}
{{- with .Email}}{{.}}<br>{{end}}
{{- with .Phone}}{{.}}<br>{{end}}
{{- with .Address}}{{.}}<br>{{end}}
{{- with .Agency}}Agency: {{.}}{{end}}
</p>

<h2>Property</h2>
<p>{{.Suburb}} &middot; {{.Bedrooms}} bedroom(s), {{.Bathrooms}} bathroom(s) &middot; {{.Furnished}}</p>

{{if .Services}}
<h2>Cleaning included</h2>
<ul>
{{range .Services}}<li>{{.}}</li>
{{end}}</ul>
{{end}}

<h2>Price</h2>
<table>
<tr><td>Estimated time ({{printf "%.2f" .CalculatedHours}} h at {{money .BaseHourlyRate}}/h)</td><td class="amount">{{money .BasePrice}}</td></tr>
{{if .WeekendSurcharge}}<tr><td>Weekend surcharge</td><td class="amount">{{money .WeekendSurcharge}}</td></tr>{{end}}
{{if .AfterHoursSurcharge}}<tr><td>After-hours surcharge</td><td class="amount">{{money .AfterHoursSurcharge}}</td></tr>{{end}}
{{if .MandurahSurcharge}}<tr><td>Mandurah surcharge</td><td class="amount">{{money .MandurahSurcharge}}</td></tr>{{end}}
<tr><td>Subtotal</td><td class="amount">{{money .Subtotal}}</td></tr>
{{if .DiscountApplied}}<tr><td>Discount ({{printf "%.0f" .DiscountPercent}}%)</td><td class="amount">-{{money .DiscountApplied}}</td></tr>{{end}}
<tr><td>GST</td><td class="amount">{{money .GSTApplied}}</td></tr>
<tr class="total"><td>Total per session (incl. GST)</td><td class="amount">{{money .TotalPrice}}</td></tr>
</table>
<p>Crew: {{.Cleaners}} cleaner(s), about {{.HoursEach}} hour(s) each.{{if gt .Sessions 1}} Sessions requested: {{.Sessions}}.{{end}}</p>
{{with .Note}}<p class="muted">Note: {{.}}</p>{{end}}

{{with .BookingURL}}<p><a class="book" href="{{.}}">Book this clean</a></p>{{end}}
<p class="muted">Questions? Call us{{with .OfficePhone}} on {{.}}{{end}}.</p>
</body>
</html>
`
