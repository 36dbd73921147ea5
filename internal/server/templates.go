package server

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,-apple-system,'Segoe UI',sans-serif;background:#f8f9fa;color:#212529;font-size:14px;line-height:1.5}
a{color:#0d6efd;text-decoration:none}
header{background:#fff;border-bottom:1px solid #dee2e6;padding:12px 16px}
header h1{font-size:20px;font-weight:700}
nav{display:flex;gap:4px;flex-wrap:wrap;padding:8px 16px;background:#fff;border-bottom:1px solid #dee2e6}
nav a{padding:6px 12px;border:1px solid transparent;border-radius:6px 6px 0 0;color:#495057}
nav a:hover{background:#e9ecef}
nav a.active{border-color:#dee2e6 #dee2e6 #fff;background:#fff;color:#0d6efd;font-weight:600}
main{padding:16px}
h2{font-size:18px;font-weight:600;margin:8px 0 12px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#fff;border:1px solid #dee2e6;border-radius:6px;padding:10px 14px;min-width:150px}
.card .lbl{font-size:12px;color:#6c757d}
.card .val{font-size:20px;font-weight:700}
.badge{display:inline-block;padding:2px 8px;border-radius:10px;font-size:12px;font-weight:600;color:#fff}
.badge.success{background:#198754}
.badge.danger{background:#dc3545}
.grid{display:grid;grid-template-columns:1fr 1fr;gap:16px}
.row{display:flex;gap:8px;flex-wrap:wrap;margin-bottom:16px}
.panel{background:#fff;border:1px solid #dee2e6;border-radius:6px;padding:8px;min-height:120px}
.placeholder{color:#6c757d;padding:40px 16px;text-align:center}
.png{font-size:11px;color:#6c757d;margin-top:4px}
</style>
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<nav>
{{range .Tabs}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
{{end}}</nav>
<main>
{{template "content" .}}
</main>
<script>
(function(){
var CHARTS = {{.Charts}};

function barTraces(c) {
  return c.series.map(function(s) {
    var t = {type:'bar', name:s.name, marker:{color:s.color}, orientation:c.orientation || 'v'};
    if (t.orientation === 'h') { t.x = s.values; t.y = c.categories; } else { t.x = c.categories; t.y = s.values; }
    if (s.hover) { t.hovertext = s.hover; t.hoverinfo = 'text'; }
    return t;
  });
}

function pieTrace(c) {
  var p = c.pie;
  var t = {
    type:'pie', hole:p.hole, rotation:p.rotation || 0, sort:p.sorted, direction:p.direction || 'counterclockwise',
    values:p.slices.map(function(s){return s.value;}),
    labels:p.slices.map(function(s){return s.label;}),
    marker:{colors:p.slices.map(function(s){return s.color;})},
    textinfo:p.text_info
  };
  var text = p.slices.map(function(s){return s.text;});
  if (p.text_info === 'text') { t.text = text; t.hoverinfo = 'none'; }
  if (p.hover_text) { t.hovertext = text; t.hoverinfo = 'text'; }
  return [t];
}

function gaugeTrace(c) {
  var g = c.gauge;
  return [{
    type:'indicator', mode:'gauge+number', value:g.value,
    title:{text:c.title}, number:{suffix:g.suffix},
    gauge:{
      axis:{range:[g.min, g.max]}, bar:{color:g.bar_color},
      steps:g.bands.map(function(b){return {range:[b.from, b.to], color:b.color};}),
      threshold:{line:{color:g.threshold.color, width:g.threshold.width}, thickness:g.threshold.thickness, value:g.threshold.value}
    }
  }];
}

function layout(c) {
  var l = {title:{text:c.title}, margin:{t:48, r:16, b:48, l:16}};
  if (c.width) l.width = c.width;
  if (c.height) l.height = c.height;
  if (c.bar_mode) l.barmode = c.bar_mode;
  if (c.x_title) l.xaxis = {title:{text:c.x_title}, automargin:true};
  if (c.y_title) l.yaxis = {title:{text:c.y_title}, automargin:true};
  if (c.show_legend === false) l.showlegend = false;
  if (c.kind === 'gauge') delete l.title;
  if (c.shapes) {
    l.shapes = c.shapes.map(function(s) {
      var out = {type:s.kind, xref:'paper', yref:'paper', x0:s.x0, y0:s.y0, x1:s.x1, y1:s.y1, line:{color:s.color}};
      if (s.fill_color) out.fillcolor = s.fill_color;
      if (s.width) out.line.width = s.width;
      return out;
    });
  }
  if (c.annotations) {
    l.annotations = c.annotations.map(function(a) {
      var font = {};
      if (a.font_size) font.size = a.font_size;
      if (a.color) font.color = a.color;
      return {text:a.text, x:a.x, y:a.y, xref:'paper', yref:'paper', showarrow:false, font:font};
    });
    if (c.kind === 'pie') delete l.title;
  }
  return l;
}

CHARTS.forEach(function(c) {
  var el = document.getElementById(c.id);
  if (!el) return;
  var data = c.kind === 'bar' ? barTraces(c) : c.kind === 'pie' ? pieTrace(c) : gaugeTrace(c);
  Plotly.newPlot(el, data, layout(c), {displayModeBar:false, responsive:true});
});
})();
</script>
</body>
</html>{{end}}
`

const tmplOverview = `
{{define "content"}}{{with .Overview}}
<h2>{{.Heading}}</h2>
<div class="cards">
{{range .Cards}}<div class="card"><div class="val">{{.Step}}</div><span class="badge {{.Badge}}">{{.Status}}</span></div>
{{end}}</div>
{{range .Rows}}<div class="grid">
{{range .}}<div class="panel"><div id="{{.ID}}"></div><div class="png"><a href="{{pngHref "overview" .ID}}">PNG</a></div></div>
{{end}}</div>
{{end}}{{end}}{{end}}
`

const tmplDetail = `
{{define "content"}}{{with .Detail}}
<h2>{{.Heading}} <span class="badge {{.Badge}}">{{.Status}}</span></h2>
<div class="row">
{{range .Gauges}}<div class="panel"><div id="{{.ID}}"></div></div>
{{end}}</div>
<div class="grid">
{{template "panel" panelOf .Step .Runtime}}
{{template "panel" panelOf .Step .Material}}
</div>
<div class="cards" style="margin-top:16px">
{{range .Cards}}<div class="card"><div class="lbl">{{.Title}}</div><div class="val">{{.Value}}</div></div>
{{end}}</div>
{{end}}{{end}}

{{define "panel"}}<div class="panel">{{if .Panel.HasChart}}<div id="{{.Panel.Chart.ID}}"></div><div class="png"><a href="{{pngHref .Step .Panel.Chart.ID}}">PNG</a></div>{{else}}<div class="placeholder">{{.Panel.Placeholder}}</div>{{end}}</div>{{end}}
`
