package palette

// builtin is the default palette table. Treat it as read-only; [Builtin]
// hands out copies.
var builtin = Groups{
	"giant_goldfish":        {"#69D2E7", "#A7DBD8", "#E0E4CC", "#F38630", "#FA6900"},
	"thought_provoking":     {"#ECD078", "#D95B43", "#C02942", "#542437", "#53777A"},
	"adrift_in_dreams":      {"#CFF09E", "#A8DBA8", "#79BD9A", "#3B8686", "#0B486B"},
	"once_upon_a_time":      {"#FE4365", "#FC9D9A", "#F9CDAD", "#C8C8A9", "#83AF9B"},
	"cheer_up_emo_kid":      {"#556270", "#4ECDC4", "#C7F464", "#FF6B6B", "#C44D58"},
	"let_them_eat_cake":     {"#774F38", "#E08E79", "#F1D4AF", "#ECE5CE", "#C5E0DC"},
	"vintage_modern":        {"#8C2318", "#5E8C6A", "#88A65E", "#BFB35A", "#F2C45A"},
	"ocean_five":            {"#00A0B0", "#6A4A3C", "#CC333F", "#EB6841", "#EDC951"},
	"papua_new_guinea":      {"#5E412F", "#FCEBB6", "#78C0A8", "#F07818", "#F0A830"},
	"mono_ink":              {"#000000", "#3B3B3B", "#777777"},
	"pen_plotter_primaries": {"#000000", "#0000FF", "#FF0000", "#00FF00", "#FFFF00", "#FF00FF", "#00FFFF"},
	"sunset_gradient": {
		"#0B1D51", "#3A1C71", "#6B2D8C", "#A23B8C", "#D7456F",
		"#F26A4F", "#F79D3F", "#FBD14B",
	},
	"forest_floor": {"#2E3A23", "#4B5E2A", "#7C8C3C", "#B3A369", "#6E4B2A", "#A0522D"},
	"nordic":       {"#2E3440", "#3B4252", "#5E81AC", "#81A1C1", "#88C0D0", "#8FBCBB", "#BF616A", "#D08770", "#EBCB8B", "#A3BE8C"},
}

// Builtin returns a copy of the built-in palette table.
func Builtin() Groups {
	out := make(Groups, len(builtin))
	for name, cs := range builtin {
		out[name] = append([]Color(nil), cs...)
	}
	return out
}
