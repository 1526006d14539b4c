package colorscheme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultName names the fallback gradient.
const DefaultName = "Portland"

// registry holds the named scales hosts pick from.
var registry = map[string]Scheme{
	"Greys":   Stops(0.0, "rgb(0,0,0)", 1.0, "rgb(255,255,255)"),
	"YlGnBu":  Even("rgb(8,29,88)", "rgb(37,52,148)", "rgb(34,94,168)", "rgb(29,145,192)", "rgb(65,182,196)", "rgb(127,205,187)", "rgb(199,233,180)", "rgb(237,248,217)", "rgb(255,255,217)"),
	"Greens":  Even("rgb(0,68,27)", "rgb(0,109,44)", "rgb(35,139,69)", "rgb(65,171,93)", "rgb(116,196,118)", "rgb(161,217,155)", "rgb(199,233,192)", "rgb(229,245,224)", "rgb(247,252,245)"),
	"YlOrRd":  Even("rgb(128,0,38)", "rgb(189,0,38)", "rgb(227,26,28)", "rgb(252,78,42)", "rgb(253,141,60)", "rgb(254,178,76)", "rgb(254,217,118)", "rgb(255,237,160)", "rgb(255,255,204)"),
	"Bluered": Stops(0.0, "rgb(0,0,255)", 1.0, "rgb(255,0,0)"),
	"RdBu": Stops(0.0, "rgb(5,10,172)", 0.35, "rgb(106,137,247)", 0.5, "rgb(190,190,190)",
		0.6, "rgb(220,170,132)", 0.7, "rgb(230,145,90)", 1.0, "rgb(178,10,28)"),
	"Reds": Stops(0.0, "rgb(220,220,220)", 0.2, "rgb(245,195,157)", 0.4, "rgb(245,160,105)", 1.0, "rgb(178,10,28)"),
	"Blues": Stops(0.0, "rgb(5,10,172)", 0.35, "rgb(40,60,190)", 0.5, "rgb(70,100,245)",
		0.6, "rgb(90,120,245)", 0.7, "rgb(106,137,247)", 1.0, "rgb(220,220,220)"),
	"Picnic": Even("rgb(0,0,255)", "rgb(51,153,255)", "rgb(102,204,255)", "rgb(153,204,255)", "rgb(204,204,255)",
		"rgb(255,255,255)", "rgb(255,204,255)", "rgb(255,153,255)", "rgb(255,102,204)", "rgb(255,102,102)", "rgb(255,0,0)"),
	"Rainbow": Even("rgb(150,0,90)", "rgb(0,0,200)", "rgb(0,25,255)", "rgb(0,152,255)", "rgb(44,255,150)",
		"rgb(151,255,0)", "rgb(255,234,0)", "rgb(255,111,0)", "rgb(255,0,0)"),
	"Portland": Even("rgb(12,51,131)", "rgb(10,136,186)", "rgb(242,211,56)", "rgb(242,143,56)", "rgb(217,30,30)"),
	"Jet": Stops(0.0, "rgb(0,0,131)", 0.125, "rgb(0,60,170)", 0.375, "rgb(5,255,255)",
		0.625, "rgb(255,255,0)", 0.875, "rgb(250,0,0)", 1.0, "rgb(128,0,0)"),
	"Hot": Stops(0.0, "rgb(0,0,0)", 0.3, "rgb(230,0,0)", 0.6, "rgb(255,210,0)", 1.0, "rgb(255,255,255)"),
	"Blackbody": Stops(0.0, "rgb(0,0,0)", 0.2, "rgb(230,0,0)", 0.4, "rgb(230,210,0)",
		0.7, "rgb(255,255,255)", 1.0, "rgb(160,200,255)"),
	"Earth": Stops(0.0, "rgb(0,0,130)", 0.1, "rgb(0,180,180)", 0.2, "rgb(40,210,40)",
		0.4, "rgb(230,230,50)", 0.6, "rgb(120,70,20)", 1.0, "rgb(255,255,255)"),
	"Electric": Stops(0.0, "rgb(0,0,0)", 0.15, "rgb(30,0,100)", 0.4, "rgb(120,0,100)",
		0.6, "rgb(160,90,0)", 0.8, "rgb(230,200,0)", 1.0, "rgb(255,250,220)"),
	"Viridis":    viridis,
	"S2 Neon":    Colors("#ff00ff", "#00ffff", "#39ff14", "#ffff00", "#ff073a", "#bc13fe", "#ff6ec7", "#0ff0fc"),
	"Category10": category10,
}

var (
	viridis    = Even("#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725")
	category10 = Colors("#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf")
)

// interpolators are the standard sequential and diverging ramps, looked
// up with or without an "interpolate" prefix.
var interpolators = map[string]Scheme{
	"Viridis":   viridis,
	"Magma":     Even("#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f", "#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"),
	"Inferno":   Even("#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"),
	"Plasma":    Even("#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"),
	"Cividis":   Even("#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838"),
	"Warm":      Even("#6e40aa", "#bf3caf", "#fe4b83", "#ff7847", "#e2b72f", "#aff05b"),
	"Cool":      Even("#6e40aa", "#4c6edb", "#23abd8", "#1ddfa3", "#52f667", "#aff05b"),
	"Rainbow":   Even("#6e40aa", "#bf3caf", "#fe4b83", "#ff7847", "#e2b72f", "#aff05b", "#52f667", "#1ddfa3", "#23abd8", "#4c6edb", "#6e40aa"),
	"Cubehelix": Even("#000000", "#1a1530", "#163d4e", "#1f6642", "#54792f", "#a07949", "#d07e93", "#cf9cda", "#c1caf3", "#d2eeef", "#ffffff"),
	"Turbo":     FuncScheme(turbo),
	"Sinebow":   FuncScheme(sinebow),
	"Spectral":  Even("#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"),
	"RdYlGn":    Even("#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837"),
	"RdYlBu":    Even("#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf", "#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695"),
	"RdBu":      Even("#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061"),
	"PiYG":      Even("#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef", "#f7f7f7", "#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419"),
	"BrBG":      Even("#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3", "#f5f5f5", "#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30"),
	"Blues":     Even("#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"),
	"Greens":    Even("#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b"),
	"Greys":     Even("#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696", "#737373", "#525252", "#252525", "#000000"),
	"Oranges":   Even("#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c", "#f16913", "#d94801", "#a63603", "#7f2704"),
	"Purples":   Even("#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8", "#807dba", "#6a51a3", "#54278f", "#3f007d"),
	"Reds":      Even("#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a", "#ef3b2c", "#cb181d", "#a50f15", "#67000d"),
	"YlGnBu":    Even("#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4", "#1d91c0", "#225ea8", "#253494", "#081d58"),
	"YlOrRd":    Even("#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c", "#fc4e2a", "#e31a1c", "#bd0026", "#800026"),
}

func turbo(t float64) colorful.Color {
	ch := func(v float64) float64 { return math.Max(0, math.Min(255, math.Round(v))) / 255 }
	return colorful.Color{
		R: ch(34.61 + t*(1172.33-t*(10793.56-t*(33300.12-t*(38394.49-t*14825.05))))),
		G: ch(23.31 + t*(557.33+t*(1225.33-t*(3574.96-t*(1073.77+t*707.56))))),
		B: ch(27.2 + t*(3211.1-t*(15327.97-t*(27814-t*(22569.18-t*6838.66))))),
	}
}

func sinebow(t float64) colorful.Color {
	t = 0.5 - t
	sq := func(v float64) float64 { s := math.Sin(v); return s * s }
	return colorful.Color{
		R: sq(math.Pi * (t + 0.0/3)),
		G: sq(math.Pi * (t + 1.0/3)),
		B: sq(math.Pi * (t + 2.0/3)),
	}
}
