package web

// styleSheet は最小限のスタイルです。hidden クラスだけが動作上の意味を持ち、
// それ以外は配置のための素朴な既定値です。
const styleSheet = `.hidden { display: none; }

body { font-family: sans-serif; margin: 0; }
.container { max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
#promptInput { width: 100%; box-sizing: border-box; }
.settings-row { display: flex; gap: 1rem; margin: 0.75rem 0; }
.spinner { margin: 1rem 0; }
.output img { max-width: 100%; }
.output.error { color: #b00020; }
`
