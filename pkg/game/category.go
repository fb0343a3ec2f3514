package game

import "strings"

// Category groups games that chain into each other.
type Category string

const (
	CategoryOnlineSafety     Category = "online-safety"
	CategoryMediaLiteracy    Category = "media-literacy"
	CategoryDigitalFootprint Category = "digital-footprint"
)

var categoryTitles = map[Category]string{
	CategoryOnlineSafety:     "Online Safety",
	CategoryMediaLiteracy:    "Media Literacy",
	CategoryDigitalFootprint: "Digital Footprint",
}

// CategoryOrder is the order categories are shown in.
var CategoryOrder = []Category{
	CategoryOnlineSafety,
	CategoryMediaLiteracy,
	CategoryDigitalFootprint,
}

// Title returns the display name of c.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	words := strings.Fields(strings.ReplaceAll(string(c), "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Path returns the navigation path of a game in c.
func (c Category) Path(gameID string) string {
	return "/games/" + string(c) + "/" + gameID
}
