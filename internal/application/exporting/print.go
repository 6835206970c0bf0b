package exporting

import (
	"bytes"
	"fmt"
	"html/template"
)

// Documento HTML autocontenido para imprimir: estilos embebidos, una tabla
// por bodega, columnas en blanco para conteo físico y diferencia, y línea de
// firma por sección (mismo layout que la hoja original del hotel).
const printTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body{font-family:Arial,"Microsoft JhengHei",sans-serif;padding:20px}
h1{text-align:center;color:#333}
h2{color:#2563eb;margin-top:30px;border-bottom:2px solid #2563eb;padding-bottom:5px}
table{width:100%;border-collapse:collapse;margin-top:20px}
th,td{border:1px solid #ddd;padding:12px;text-align:left}
th{background-color:#3b82f6;color:white}
tr:nth-child(even){background-color:#f9fafb}
.signature{margin-top:40px}
.header-info{background:#f0f9ff;padding:15px;border-radius:8px;margin-bottom:20px}
@media print{body{padding:10px}h2{page-break-before:always}}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="header-info">
<p><strong>盤點日期：</strong>{{.Date}}</p>
<p><strong>盤點類型：</strong>{{.TierLabel}}</p>
<p><strong>總品項數：</strong>{{.TotalLines}} 項</p>
</div>
{{range .Sections}}
<h2>{{.Warehouse.Name}}（{{len .Lines}} 項）</h2>
<table>
<tr><th>品名</th><th>分類</th><th>負責人</th><th>盤點頻率</th><th>單位</th><th>帳面數量</th><th>實盤數量</th><th>差異</th></tr>
{{range .Lines}}<tr><td>{{.Item.Name}}</td><td>{{.Item.Category}}</td><td>{{.Manager}}</td><td>{{frequencyLabel .Item.Frequency}}</td><td>{{.Item.Unit}}</td><td>{{.Quantity}}</td><td></td><td></td></tr>
{{end}}</table>
<div class="signature"><p>盤點人簽名: _______________ 日期: _______________</p></div>
{{end}}
</body>
</html>`

// RenderHTML produce el documento de impresión de la hoja.
func RenderHTML(sheet *CountSheet) ([]byte, error) {
	tmpl, err := template.New("countsheet").
		Funcs(template.FuncMap{"frequencyLabel": frequencyLabelFunc}).
		Parse(printTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template de impresión: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sheet); err != nil {
		return nil, fmt.Errorf("renderizar hoja de conteo: %w", err)
	}
	return buf.Bytes(), nil
}
