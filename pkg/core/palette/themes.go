package palette

import "slices"

var builtinHexes = []struct {
	name   string
	colors []string
}{
	{"Default", []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF"}},
	{"Earthy", []string{"#8B4513", "#FFD700", "#008000", "#4B0082", "#FF69B4", "#CD5C5C"}},
	{"Pastel", []string{"#FF6347", "#40E0D0", "#EE82EE", "#F5DEB3", "#FFFFFF", "#000000"}},
	{"Golid", []string{"#66aeaa", "#ffce3a", "#ff7044", "#5d5f46", "#000000"}},
	{"Hobbs", []string{"#d12a2f", "#fcbc18", "#ebe4d8", "#29a691", "#b7d9cd"}},
	{"Cathode", []string{"#a8216b", "#f1184c", "#f36943", "#f7dc66", "#b7d9cd"}},
	{"Pop", []string{"#00ff3f", "#35b5ff", "#ff479c", "#fffb38"}},
	{"Meadow", []string{"#556B2F", "#8FBC8F", "#FFD700", "#FF8C00", "#2E8B57"}},
	{"Sunset", []string{"#FF4500", "#FF8C00", "#FFD700", "#2E8B57", "#6A5ACD"}},
	{"Marguerita", []string{"#0A7029", "#FEDE00", "#C8DF52", "#DBE8D8"}},
	{"Apple", []string{"#FF8370", "#00B1B0", "#FEC84D", "#E42256"}},
}

var builtins = func() []Theme {
	out := make([]Theme, len(builtinHexes))
	for i, b := range builtinHexes {
		t, err := ParseTheme(b.name, b.colors)
		if err != nil {
			panic(err)
		}
		out[i] = t
	}
	return out
}()

// Themes returns the built-in themes in cycle order.
func Themes() []Theme {
	out := slices.Clone(builtins)
	for i := range out {
		out[i].Colors = slices.Clone(out[i].Colors)
	}
	return out
}

// Find returns the index of the theme named name, or -1.
func Find(themes []Theme, name string) int {
	return slices.IndexFunc(themes, func(t Theme) bool { return t.Name == name })
}
