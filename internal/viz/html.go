// Package viz renders the descriptor knowledge graph as a self-contained
// interactive HTML document.
package viz

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/healcde/cdegraph/internal/graph"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Title        string
	Offline      bool // Whether to reference a local vis-network copy instead of the CDN
	IncludeGuide bool // Whether to append the selection-guide tables
	Physics      Physics
}

// GuideTable is one category's distinct values for the selection guide.
type GuideTable struct {
	Category string
	Values   []string
}

// DefaultTitle is used when no title is configured.
const DefaultTitle = "Interactive Knowledge Network of HEAL Core CDEs"

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{
		Title:        DefaultTitle,
		Offline:      false,
		IncludeGuide: true,
		Physics:      DefaultPhysics(),
	}
}

// GenerateHTML renders the graph and optional guide tables to a single HTML
// document string.
func GenerateHTML(g *graph.Graph, guide []GuideTable, opts HTMLOptions) (string, error) {
	if g == nil {
		return "", fmt.Errorf("graph cannot be nil")
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	if g.IsEmpty() {
		return generateEmptyHTML(opts.Title), nil
	}

	nodesJSON, err := ToVisNodesJSON(g)
	if err != nil {
		return "", err
	}
	edgesJSON, err := ToVisEdgesJSON(g)
	if err != nil {
		return "", err
	}
	options, err := optionsJSON(opts.Physics)
	if err != nil {
		return "", err
	}

	if !opts.IncludeGuide {
		guide = nil
	}

	data := templateData{
		Title:     opts.Title,
		ScriptTag: template.HTML(buildScriptTag(opts.Offline)),
		NodesJSON: template.JS(nodesJSON),
		EdgesJSON: template.JS(edgesJSON),
		Options:   template.JS(options),
		Guide:     guide,
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// templateData holds data for the HTML template.
type templateData struct {
	Title     string
	ScriptTag template.HTML
	NodesJSON template.JS
	EdgesJSON template.JS
	Options   template.JS
	Guide     []GuideTable
}

// OfflineScript is the sibling file referenced instead of the CDN when
// offline mode is on. The caller is responsible for placing a vis-network
// build next to the artifact.
const OfflineScript = "vis-network.min.js"

// buildScriptTag returns either a local sibling reference or the CDN tag.
func buildScriptTag(offline bool) string {
	if offline {
		return `<script src="` + OfflineScript + `"></script>`
	}
	return `<script src="https://unpkg.com/vis-network@9/standalone/umd/vis-network.min.js"></script>`
}

// generateEmptyHTML returns HTML for an empty graph state.
func generateEmptyHTML(title string) string {
	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>` + template.HTMLEscapeString(title) + `</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
      background: black;
      color: #ccc;
    }
    .empty-state { text-align: center; }
    .empty-state h2 { color: white; margin-bottom: 0.5em; }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No graph data</h2>
    <p>The dataset produced no descriptor nodes.</p>
  </div>
</body>
</html>`
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  {{.ScriptTag}}
  <style>
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: black;
      color: #e8e8e8;
    }
    header {
      padding: 1rem 1.5rem;
      border-bottom: 1px solid #333;
    }
    header h1 { margin: 0; font-size: 1.4rem; color: white; }
    .toolbar {
      display: flex;
      gap: 0.75rem;
      align-items: center;
      padding: 0.75rem 1.5rem;
      border-bottom: 1px solid #333;
      font-size: 0.875rem;
    }
    .toolbar select {
      font-family: inherit;
      font-size: 0.875rem;
      background: #1a1a1a;
      color: #e8e8e8;
      border: 1px solid #444;
      border-radius: 4px;
      padding: 0.375rem 0.625rem;
      min-width: 280px;
    }
    .toolbar button {
      font-family: inherit;
      font-size: 0.875rem;
      background: #1a1a1a;
      color: #e8e8e8;
      border: 1px solid #444;
      border-radius: 4px;
      padding: 0.375rem 0.875rem;
      cursor: pointer;
    }
    .toolbar button:hover { background: #2a2a2a; }
    #network {
      width: 100%;
      height: 640px;
      background: black;
    }
    .panel {
      padding: 1rem 1.5rem;
      max-width: 900px;
    }
    .panel h2 { color: white; font-size: 1.1rem; }
    .panel p, .panel li { line-height: 1.5; font-size: 0.9rem; color: #ccc; }
    .legend { display: flex; flex-wrap: wrap; gap: 0.625rem; }
    .legend-item {
      display: flex;
      align-items: center;
      gap: 0.375rem;
      font-size: 0.8rem;
      padding: 0.25rem 0.625rem;
      background: #1a1a1a;
      border-radius: 4px;
    }
    .legend-swatch { width: 12px; height: 12px; border-radius: 50%; }
    table.guide {
      border-collapse: collapse;
      margin-bottom: 1.5rem;
      font-size: 0.85rem;
    }
    table.guide th, table.guide td {
      border: 1px solid #333;
      padding: 0.375rem 0.75rem;
      text-align: left;
    }
    table.guide th { background: #1a1a1a; color: white; }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
  </header>
  <div class="panel">
    <p>A <b>node</b> is a noun: one descriptor value such as a core measure,
    domain, or questionnaire. An <b>edge</b> is a verb: a co-occurrence of two
    descriptors in the same study record. A <b>pathway</b> is a chain of edges
    linking descriptors across categories, for example Core CDE Measure &rarr;
    Domain &rarr; Questionnaire.</p>
    <p>Core CDE Measure nodes are sized by how often the measure is reported
    across all studies; every other node has a fixed size. Edge colors are
    inherited from the nodes they connect.</p>
    <div class="legend">
      <div class="legend-item"><span class="legend-swatch" style="background:#4b0082"></span>Core CDE Measures (dot, frequency-sized)</div>
      <div class="legend-item"><span class="legend-swatch" style="background:#dda0dd"></span>Domain (ellipse)</div>
      <div class="legend-item"><span class="legend-swatch" style="background:#ff1493"></span>Questionnaire (square)</div>
      <div class="legend-item"><span class="legend-swatch" style="background:#ffb6c1"></span>HEAL Research Program (triangle)</div>
      <div class="legend-item"><span class="legend-swatch" style="background:#1f77b4"></span>Study Name (text)</div>
      <div class="legend-item"><span class="legend-swatch" style="background:#2ca02c"></span>PI Name (text)</div>
    </div>
  </div>
  <div class="toolbar">
    <label for="node-select">Select a node:</label>
    <select id="node-select">
      <option value="">(none)</option>
    </select>
    <button id="reset-selection">Reset selection</button>
  </div>
  <div id="network"></div>
  {{if .Guide}}
  <div class="panel">
    <h2>Guide to Possible Selection Choices</h2>
    {{range .Guide}}
    <table class="guide">
      <tr><th>{{.Category}}</th></tr>
      {{range .Values}}<tr><td>{{.}}</td></tr>
      {{end}}
    </table>
    {{end}}
  </div>
  {{end}}
  <script>
    (function() {
      const nodeData = {{.NodesJSON}};
      const edgeData = {{.EdgesJSON}};
      const options = {{.Options}};

      nodeData.forEach(n => { n.font = { color: 'white' }; });

      const nodes = new vis.DataSet(nodeData);
      const edges = new vis.DataSet(edgeData);
      const container = document.getElementById('network');
      const network = new vis.Network(container, { nodes: nodes, edges: edges }, options);

      // Populate the selection dropdown in node order.
      const select = document.getElementById('node-select');
      nodeData.forEach(n => {
        const opt = document.createElement('option');
        opt.value = n.id;
        opt.textContent = n.label + ' (' + n.group + ')';
        select.appendChild(opt);
      });

      select.addEventListener('change', () => {
        if (!select.value) return;
        network.selectNodes([select.value]);
        network.focus(select.value, { scale: 1.0, animation: true });
      });

      document.getElementById('reset-selection').addEventListener('click', () => {
        select.value = '';
        network.unselectAll();
        network.fit({ animation: true });
      });

      network.on('selectNode', params => {
        if (params.nodes.length === 1) {
          select.value = params.nodes[0];
        }
      });
    })();
  </script>
</body>
</html>`
