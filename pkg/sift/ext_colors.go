package sift

import (
	"github.com/gdamore/tcell/v2"
)

var extColors = map[string]tcell.Color{
	".go":   tcell.ColorAqua,
	".c":    tcell.ColorDodgerBlue,
	".cpp":  tcell.ColorDodgerBlue,
	".h":    tcell.ColorDodgerBlue,
	".cs":   tcell.ColorLime,
	".js":   tcell.ColorYellow,
	".ts":   tcell.ColorDeepSkyBlue,
	".html": tcell.ColorOrangeRed,
	".css":  tcell.ColorViolet,
	".sql":  tcell.ColorSpringGreen,
	".json": tcell.ColorGold,
	".xml":  tcell.ColorLightYellow,
	".yaml": tcell.ColorLightYellow,
	".yml":  tcell.ColorLightYellow,
	".md":   tcell.ColorBisque,
	".py":   tcell.ColorLightGreen,
	".rb":   tcell.ColorRed,
	".rs":   tcell.ColorOrange,
	".sh":   tcell.ColorGreen,
	".txt":  tcell.ColorWhite,
	".csv":  tcell.ColorLightGreen,
	".jpg":  tcell.ColorMediumPurple,
	".jpeg": tcell.ColorMediumPurple,
	".png":  tcell.ColorMediumPurple,
	".gif":  tcell.ColorMediumPurple,
	".webp": tcell.ColorMediumPurple,
	".log":  tcell.ColorRosyBrown,
}

// GetColorByExt returns the display color for an extension key.
func GetColorByExt(ext string) tcell.Color {
	if color, ok := extColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
