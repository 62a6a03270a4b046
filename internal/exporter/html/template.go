package html

// ReportTemplate renders the run summary, the sorted preview and the reordered sheet
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Stowage Reorder - {{.SheetName}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.5;
        }

        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }

        header {
            background: linear-gradient(135deg, #1e6091 0%, #184e77 100%);
            color: white;
            padding: 32px 20px;
            margin-bottom: 24px;
            border-radius: 8px;
        }

        header h1 { font-size: 2em; margin-bottom: 6px; }
        header p { opacity: 0.9; }

        section {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 24px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        section h2 { color: #1e6091; margin-bottom: 12px; font-size: 1.3em; }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 12px;
        }

        .stat-card {
            background: #f8f9fa;
            padding: 12px;
            border-radius: 6px;
            border-left: 4px solid #1e6091;
        }

        .stat-card .label { font-size: 0.85em; color: #6c757d; }
        .stat-card .value { font-size: 1.6em; font-weight: bold; }

        pre.summary { white-space: pre-wrap; font-family: 'Courier New', monospace; }

        .scroll { overflow-x: auto; }

        table { width: 100%; border-collapse: collapse; }
        th {
            background: #f8f9fa;
            padding: 8px;
            text-align: left;
            border-bottom: 2px solid #dee2e6;
        }
        td { padding: 6px 8px; border-bottom: 1px solid #e9ecef; white-space: nowrap; }
        td.key { font-family: 'Courier New', monospace; color: #1e6091; font-weight: 600; }
        tr.unmatched td { color: #757575; font-style: italic; }

        footer { text-align: center; padding: 24px; color: #6c757d; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Stowage Reorder: {{.SheetName}}</h1>
            <p>Generated on {{.GeneratedAt}} · Run {{.RunID}}</p>
        </header>

        <section>
            <h2>Summary</h2>
            <div class="stats">
                {{range .Metrics}}
                <div class="stat-card">
                    <div class="label">{{.Label}}</div>
                    <div class="value">{{.Value}}</div>
                </div>
                {{end}}
            </div>
            {{if .Summary}}<pre class="summary" style="margin-top: 16px">{{.Summary}}</pre>{{end}}
        </section>

        <section>
            <h2>Sorted Preview</h2>
            {{if .Preview}}
            <table>
                <thead>
                    <tr><th>No</th><th>Container</th><th>Key</th><th>Bay</th><th>Row</th><th>Tier</th><th>Stowage</th><th>Written By</th></tr>
                </thead>
                <tbody>
                {{range .Preview}}
                    <tr{{if not .Matched}} class="unmatched"{{end}}>
                        <td>{{.No}}</td>
                        <td>{{.ID}}</td>
                        <td class="key">{{.Key}}</td>
                        <td>{{.Bay}}</td>
                        <td>{{.Row}}</td>
                        <td>{{.Tier}}</td>
                        <td>{{if .Stowage}}{{.Stowage}}{{else}}(unmatched){{end}}</td>
                        <td>{{strategy .}}</td>
                    </tr>
                {{end}}
                </tbody>
            </table>
            {{else}}
            <p>No container blocks were detected.</p>
            {{end}}
        </section>

        <section>
            <h2>Reordered Sheet</h2>
            <div class="scroll">
                <table>
                    <tbody>
                    {{$width := .Width}}
                    {{range .Rows}}
                        {{$row := .}}
                        <tr>{{range cols $width}}<td>{{cell $row .}}</td>{{end}}</tr>
                    {{end}}
                    </tbody>
                </table>
            </div>
        </section>

        <footer>stowsort</footer>
    </div>
</body>
</html>
`
