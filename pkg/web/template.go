package web

// pageTemplate は単一ページの UI です。スタイルシートが期待する要素ロールを持ち、
// hidden クラスの付け外しで {ローディング, 画像, エラー} の高々1つだけを表示します。
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Prompt to Image</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
<main class="container">
    <h1>Prompt to Image</h1>

    <form id="promptForm" method="post" action="/generate">
        <textarea id="promptInput" name="prompt" rows="3"
                  placeholder="Describe the image you want...">{{.Prompt}}</textarea>

        <div class="settings-row">
            {{range .Options}}
            <label for="{{.Name}}Select">{{.Name}}
                <select id="{{.Name}}Select" name="{{.Name}}">
                    {{$default := .Default}}
                    {{range .Values}}
                    <option value="{{.}}"{{if eq . $default}} selected{{end}}>{{.}}</option>
                    {{end}}
                </select>
            </label>
            {{end}}
        </div>

        <button id="generateButton" type="submit">Generate</button>
    </form>

    <div id="loadingSpinner" class="spinner{{if not .View.ShowLoading}} hidden{{end}}">
        <span>Generating image...</span>
    </div>

    <div id="imageOutput" class="output{{if not .View.ShowImage}} hidden{{end}}">
        {{if .View.ImageRef}}
        <img id="generatedImage" src="{{.View.ImageRef}}" alt="generated image">
        {{end}}
    </div>

    <div id="errorOutput" class="output error{{if not .View.ShowError}} hidden{{end}}">
        {{if .View.ErrorMessage}}<p>{{.View.ErrorMessage}}</p>{{end}}
    </div>
</main>
</body>
</html>
`
