package render

// baseCSS carries the reset rules shared by every generated document.
const baseCSS = `body { margin: 0; padding: 0; background-color: #edf2f7; font-family: Arial, Helvetica, sans-serif; color: #2d3748; }
img { border: 0; line-height: 100%; }
a { color: #2563eb; }
table { border-collapse: collapse; }`

// Document wraps body HTML in the fixed outer document shell.
func Document(body string) string {
	return DocumentWithStyle(body, "")
}

// DocumentWithStyle wraps body HTML in the document shell with additional
// CSS appended to the base style block.
func DocumentWithStyle(body, extraCSS string) string {
	css := baseCSS
	if extraCSS != "" {
		css += "\n" + extraCSS
	}
	return `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<style>
` + css + `
</style>
</head>
<body>
<div style="max-width: 600px; margin: 0 auto; padding: 24px 16px; background-color: #ffffff;">
` + body + `
</div>
</body>
</html>`
}
