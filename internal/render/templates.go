package render

const creditNoteWithTaxTemplate = `
<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <style>
    body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 32px; color: #1a1a1a; }
    h1 { margin: 0 0 4px; font-size: 22px; }
    .meta { display: flex; justify-content: space-between; margin-bottom: 24px; }
    .label { font-size: 11px; color: #666; text-transform: uppercase; }
    .value { font-size: 13px; margin-bottom: 4px; }
    .parties { display: flex; gap: 24px; margin-bottom: 24px; }
    .party { flex: 1; border: 1px solid #ddd; border-radius: 6px; padding: 12px; }
    table { width: 100%; border-collapse: collapse; margin-top: 8px; }
    th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; font-size: 13px; }
    th { background: #f5f5f5; }
    .amount { text-align: right; }
    .totals { display: flex; justify-content: flex-end; margin-top: 16px; }
    .totals table { width: 320px; }
  </style>
</head>
<body>
  <div class="meta">
    <div>
      <h1>Credit note {{.Note.Number}}</h1>
      <div class="value">Reverses invoice {{.Note.InvoiceNumber}}</div>
    </div>
    <div style="text-align:right">
      <div class="label">Issue date</div>
      <div class="value">{{.IssueDate}}</div>
    </div>
  </div>

  <div class="parties">
    <div class="party">
      <div class="label">Issuer</div>
      <div class="value">{{.Company.Name}}</div>
      <div class="value">{{.Company.AddressLine1}}</div>
      {{if .Company.AddressLine2}}<div class="value">{{.Company.AddressLine2}}</div>{{end}}
      <div class="value">{{.Company.AddressPostalCode}} {{.Company.AddressCity}}</div>
      <div class="value">{{.Company.AddressCountry}}</div>
      <div class="value">{{.Company.Email}}</div>
      <div class="value">VAT: {{.Company.VATNumber}}</div>
    </div>
    <div class="party">
      <div class="label">Customer</div>
      <div class="value">{{.Note.Customer.Name}}</div>
      <div class="value">{{.Note.Customer.Address.Line1}}</div>
      {{if .Note.Customer.Address.Line2}}<div class="value">{{.Note.Customer.Address.Line2}}</div>{{end}}
      <div class="value">{{.Note.Customer.Address.PostalCode}} {{.Note.Customer.Address.City}}</div>
      <div class="value">{{.Note.Customer.Address.CountryName}}</div>
      <div class="value">{{.Note.Customer.Email}}</div>
      {{if .Note.Customer.VAT}}<div class="value">VAT: {{.Note.Customer.VAT}}</div>{{end}}
    </div>
  </div>

  <table>
    <thead>
      <tr>
        <th>Description</th>
        <th>Qty</th>
        <th class="amount">Unit price (excl. tax)</th>
        <th class="amount">Amount (excl. tax)</th>
      </tr>
    </thead>
    <tbody>
    {{range .Note.Products}}
      <tr>
        <td>{{.Description}}</td>
        <td>{{.Quantity}}</td>
        <td class="amount">{{money .UnitPriceExclTax}}</td>
        <td class="amount">{{money .AmountExclTax}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>

  <div class="totals">
    <table>
      <tr><td>Subtotal</td><td class="amount">{{money .Note.Subtotal}}</td></tr>
      <tr><td>VAT ({{printf "%.0f" .Note.TaxRate.Percentage}}%)</td><td class="amount">{{moneyptr .Note.SubtotalTax}}</td></tr>
      <tr><td>Total adjustment amount</td><td class="amount">{{money .Note.TotalAdjustmentAmount}}</td></tr>
      <tr><td><b>Adjustment applied to invoice</b></td><td class="amount"><b>{{money .Note.AdjustmentAppliedToInvoice}}</b></td></tr>
    </table>
  </div>
</body>
</html>
`

const creditNoteWithoutTaxTemplate = `
<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <style>
    body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 32px; color: #1a1a1a; }
    h1 { margin: 0 0 4px; font-size: 22px; }
    .meta { display: flex; justify-content: space-between; margin-bottom: 24px; }
    .label { font-size: 11px; color: #666; text-transform: uppercase; }
    .value { font-size: 13px; margin-bottom: 4px; }
    .parties { display: flex; gap: 24px; margin-bottom: 24px; }
    .party { flex: 1; border: 1px solid #ddd; border-radius: 6px; padding: 12px; }
    table { width: 100%; border-collapse: collapse; margin-top: 8px; }
    th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; font-size: 13px; }
    th { background: #f5f5f5; }
    .amount { text-align: right; }
    .totals { display: flex; justify-content: flex-end; margin-top: 16px; }
    .totals table { width: 320px; }
  </style>
</head>
<body>
  <div class="meta">
    <div>
      <h1>Credit note {{.Note.Number}}</h1>
      <div class="value">Reverses invoice {{.Note.InvoiceNumber}}</div>
    </div>
    <div style="text-align:right">
      <div class="label">Issue date</div>
      <div class="value">{{.IssueDate}}</div>
    </div>
  </div>

  <div class="parties">
    <div class="party">
      <div class="label">Issuer</div>
      <div class="value">{{.Company.Name}}</div>
      <div class="value">{{.Company.AddressLine1}}</div>
      {{if .Company.AddressLine2}}<div class="value">{{.Company.AddressLine2}}</div>{{end}}
      <div class="value">{{.Company.AddressPostalCode}} {{.Company.AddressCity}}</div>
      <div class="value">{{.Company.AddressCountry}}</div>
      <div class="value">{{.Company.Email}}</div>
      <div class="value">VAT: {{.Company.VATNumber}}</div>
    </div>
    <div class="party">
      <div class="label">Customer</div>
      <div class="value">{{.Note.Customer.Name}}</div>
      <div class="value">{{.Note.Customer.Address.Line1}}</div>
      {{if .Note.Customer.Address.Line2}}<div class="value">{{.Note.Customer.Address.Line2}}</div>{{end}}
      <div class="value">{{.Note.Customer.Address.PostalCode}} {{.Note.Customer.Address.City}}</div>
      <div class="value">{{.Note.Customer.Address.CountryName}}</div>
      <div class="value">{{.Note.Customer.Email}}</div>
    </div>
  </div>

  <table>
    <thead>
      <tr>
        <th>Description</th>
        <th>Qty</th>
        <th class="amount">Unit price</th>
        <th class="amount">Amount</th>
      </tr>
    </thead>
    <tbody>
    {{range .Note.Products}}
      <tr>
        <td>{{.Description}}</td>
        <td>{{.Quantity}}</td>
        <td class="amount">{{money .UnitPriceExclTax}}</td>
        <td class="amount">{{money .AmountExclTax}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>

  <div class="totals">
    <table>
      <tr><td>Subtotal</td><td class="amount">{{money .Note.Subtotal}}</td></tr>
      <tr><td>Total adjustment amount</td><td class="amount">{{money .Note.TotalAdjustmentAmount}}</td></tr>
      <tr><td><b>Adjustment applied to invoice</b></td><td class="amount"><b>{{money .Note.AdjustmentAppliedToInvoice}}</b></td></tr>
    </table>
  </div>
</body>
</html>
`
