package palette

// states maps each U.S. state to its palette. It is read through Lookup,
// Names, Canonical and Default, and never handed out directly.
var states = Table{
	"Alabama": {
		Inspiration: "Coast + History",
		Colors: Colors{Primary: "#0A4C6A", Secondary: "#1F8A9C", Accent: "#F2C94C", Background: "#F7FBFC", Text: "#0B1B3A"},
	},
	"Alaska": {
		Inspiration: "Ice + Aurora",
		Colors: Colors{Primary: "#0B3C49", Secondary: "#1C6E8C", Accent: "#7ED957", Background: "#F1F7F9", Text: "#081C24"},
	},
	"Arizona": {
		Inspiration: "Desert + Canyon",
		Colors: Colors{Primary: "#8B3A2E", Secondary: "#C8553D", Accent: "#E09F3E", Background: "#FBF1E6", Text: "#2D1B12"},
	},
	"Arkansas": {
		Inspiration: "Forest + Springs",
		Colors: Colors{Primary: "#1E5631", Secondary: "#4C956C", Accent: "#F4D35E", Background: "#F6FBF7", Text: "#102A22"},
	},
	"California": {
		Inspiration: "Coast + Urban",
		Colors: Colors{Primary: "#1D3557", Secondary: "#457B9D", Accent: "#E63946", Background: "#F1FAEE", Text: "#0B132B"},
	},
	"Colorado": {
		Inspiration: "Mountains",
		Colors: Colors{Primary: "#1F3C88", Secondary: "#5893D4", Accent: "#A9D6E5", Background: "#F5FAFF", Text: "#0B1B3A"},
	},
	"Connecticut": {
		Inspiration: "Coastal Classic",
		Colors: Colors{Primary: "#243A5E", Secondary: "#5C7AEA", Accent: "#F4D160", Background: "#F6F8FC", Text: "#1C2541"},
	},
	"Delaware": {
		Inspiration: "Beach Calm",
		Colors: Colors{Primary: "#005F73", Secondary: "#0A9396", Accent: "#E9D8A6", Background: "#F7FDFC", Text: "#001219"},
	},
	"Florida": {
		Inspiration: "Tropical",
		Colors: Colors{Primary: "#006D77", Secondary: "#83C5BE", Accent: "#FFDDD2", Background: "#EDF6F9", Text: "#023047"},
	},
	"Georgia": {
		Inspiration: "Southern Charm",
		Colors: Colors{Primary: "#264653", Secondary: "#2A9D8F", Accent: "#E9C46A", Background: "#F4F9F8", Text: "#1B2D2A"},
	},
	"Hawaii": {
		Inspiration: "Island Paradise",
		Colors: Colors{Primary: "#005F99", Secondary: "#00B4D8", Accent: "#90DBF4", Background: "#F0FAFF", Text: "#012A4A"},
	},
	"Idaho": {
		Inspiration: "Alpine Nature",
		Colors: Colors{Primary: "#2D6A4F", Secondary: "#40916C", Accent: "#B7E4C7", Background: "#F6FBF7", Text: "#102A22"},
	},
	"Illinois": {
		Inspiration: "Urban + Lake",
		Colors: Colors{Primary: "#1F2937", Secondary: "#3B82F6", Accent: "#60A5FA", Background: "#F8FAFC", Text: "#020617"},
	},
	"Indiana": {
		Inspiration: "Midwest Balance",
		Colors: Colors{Primary: "#2C3E50", Secondary: "#5DADE2", Accent: "#F4D03F", Background: "#F9FAFB", Text: "#1B2631"},
	},
	"Iowa": {
		Inspiration: "Countryside",
		Colors: Colors{Primary: "#386641", Secondary: "#6A994E", Accent: "#F2E8CF", Background: "#FBFCF9", Text: "#1F2D16"},
	},
	"Kansas": {
		Inspiration: "Prairie",
		Colors: Colors{Primary: "#5A3E2B", Secondary: "#A98467", Accent: "#F0EAD2", Background: "#FBF9F4", Text: "#2D1E12"},
	},
	"Kentucky": {
		Inspiration: "Heritage + Nature",
		Colors: Colors{Primary: "#3A5A40", Secondary: "#588157", Accent: "#DDA15E", Background: "#F7FAF8", Text: "#1B2F24"},
	},
	"Louisiana": {
		Inspiration: "Jazz + Culture",
		Colors: Colors{Primary: "#3A0CA3", Secondary: "#7209B7", Accent: "#F72585", Background: "#F9F7FD", Text: "#240046"},
	},
	"Maine": {
		Inspiration: "Rocky Coast",
		Colors: Colors{Primary: "#1B4965", Secondary: "#5FA8D3", Accent: "#CAE9FF", Background: "#F4FAFF", Text: "#0B2545"},
	},
	"Maryland": {
		Inspiration: "Bay + History",
		Colors: Colors{Primary: "#003049", Secondary: "#669BBC", Accent: "#F77F00", Background: "#F6F9FC", Text: "#1A1A1A"},
	},
	"Massachusetts": {
		Inspiration: "Colonial Coast",
		Colors: Colors{Primary: "#1F2A44", Secondary: "#4A6FA5", Accent: "#F4A261", Background: "#F7F9FC", Text: "#0B132B"},
	},
	"Michigan": {
		Inspiration: "Lakes",
		Colors: Colors{Primary: "#0B3C5D", Secondary: "#328CC1", Accent: "#D9B310", Background: "#F5F9FC", Text: "#1B1B1B"},
	},
	"Minnesota": {
		Inspiration: "North Woods",
		Colors: Colors{Primary: "#1C3D5A", Secondary: "#4A90E2", Accent: "#A7C7E7", Background: "#F4F8FC", Text: "#0B1B3A"},
	},
	"Mississippi": {
		Inspiration: "River South",
		Colors: Colors{Primary: "#5A2A27", Secondary: "#8C3A3A", Accent: "#E09F3E", Background: "#FBF4F3", Text: "#2B1A1A"},
	},
	"Missouri": {
		Inspiration: "Heartland",
		Colors: Colors{Primary: "#3D405B", Secondary: "#81B29A", Accent: "#F2CC8F", Background: "#F7F8FA", Text: "#1C2541"},
	},
	"Montana": {
		Inspiration: "Big Sky",
		Colors: Colors{Primary: "#1B4332", Secondary: "#40916C", Accent: "#A7C957", Background: "#F6FBF7", Text: "#102A22"},
	},
	"Nebraska": {
		Inspiration: "Plains",
		Colors: Colors{Primary: "#6A4E42", Secondary: "#B08968", Accent: "#E6CCB2", Background: "#FBF7F3", Text: "#2E1F14"},
	},
	"Nevada": {
		Inspiration: "Desert + Neon",
		Colors: Colors{Primary: "#2D1E2F", Secondary: "#7B2CBF", Accent: "#FFD166", Background: "#FAF7FF", Text: "#1A1025"},
	},
	"New Hampshire": {
		Inspiration: "Alpine Lakes",
		Colors: Colors{Primary: "#2F3E46", Secondary: "#52796F", Accent: "#CAD2C5", Background: "#F6FAF8", Text: "#1B2D2A"},
	},
	"New Jersey": {
		Inspiration: "Shore + City",
		Colors: Colors{Primary: "#003049", Secondary: "#669BBC", Accent: "#F77F00", Background: "#F6F9FC", Text: "#1A1A1A"},
	},
	"New Mexico": {
		Inspiration: "Southwest",
		Colors: Colors{Primary: "#9B2226", Secondary: "#CA6702", Accent: "#E9D8A6", Background: "#FBF3E6", Text: "#3B1D1D"},
	},
	"New York": {
		Inspiration: "Urban Energy",
		Colors: Colors{Primary: "#0B132B", Secondary: "#1C2541", Accent: "#E63946", Background: "#F8FAFC", Text: "#020617"},
	},
	"North Carolina": {
		Inspiration: "Mountains + Coast",
		Colors: Colors{Primary: "#1B4965", Secondary: "#62B6CB", Accent: "#BEE9E8", Background: "#F4FAFB", Text: "#0B2545"},
	},
	"North Dakota": {
		Inspiration: "Prairie Calm",
		Colors: Colors{Primary: "#344E41", Secondary: "#588157", Accent: "#A3B18A", Background: "#F6FBF8", Text: "#1B2F24"},
	},
	"Ohio": {
		Inspiration: "Modern Midwest",
		Colors: Colors{Primary: "#22223B", Secondary: "#4A4E69", Accent: "#9A8C98", Background: "#F2E9E4", Text: "#1A1A1A"},
	},
	"Oklahoma": {
		Inspiration: "Plains + Route 66",
		Colors: Colors{Primary: "#3D405B", Secondary: "#F4A261", Accent: "#E76F51", Background: "#F9F7F4", Text: "#1C2541"},
	},
	"Oregon": {
		Inspiration: "Forest + Coast",
		Colors: Colors{Primary: "#2F5D50", Secondary: "#3A7D44", Accent: "#A3B18A", Background: "#F6FBF7", Text: "#102A22"},
	},
	"Pennsylvania": {
		Inspiration: "Historic",
		Colors: Colors{Primary: "#2A2D34", Secondary: "#4A6FA5", Accent: "#F4A261", Background: "#F7F9FC", Text: "#1B2631"},
	},
	"Rhode Island": {
		Inspiration: "Nautical",
		Colors: Colors{Primary: "#003566", Secondary: "#0077B6", Accent: "#CAF0F8", Background: "#F4FAFF", Text: "#001D3D"},
	},
	"South Carolina": {
		Inspiration: "Southern Coast",
		Colors: Colors{Primary: "#264653", Secondary: "#2A9D8F", Accent: "#F4A261", Background: "#F7FBFA", Text: "#1B2D2A"},
	},
	"South Dakota": {
		Inspiration: "Badlands",
		Colors: Colors{Primary: "#6A040F", Secondary: "#9D0208", Accent: "#E85D04", Background: "#FFF3E0", Text: "#2B0A0A"},
	},
	"Tennessee": {
		Inspiration: "Music + Mountains",
		Colors: Colors{Primary: "#2D1E2F", Secondary: "#6A4C93", Accent: "#F4A261", Background: "#FAF7FD", Text: "#1A1025"},
	},
	"Texas": {
		Inspiration: "Bold + Vast",
		Colors: Colors{Primary: "#1D3557", Secondary: "#E63946", Accent: "#F1FAEE", Background: "#F8FAFC", Text: "#0B132B"},
	},
	"Utah": {
		Inspiration: "Red Rock",
		Colors: Colors{Primary: "#9B2226", Secondary: "#BB3E03", Accent: "#E9D8A6", Background: "#FBF2E8", Text: "#3B1D1D"},
	},
	"Vermont": {
		Inspiration: "Green Mountains",
		Colors: Colors{Primary: "#2D6A4F", Secondary: "#74C69D", Accent: "#D8F3DC", Background: "#F6FBF7", Text: "#102A22"},
	},
	"Virginia": {
		Inspiration: "Colonial Coast",
		Colors: Colors{Primary: "#003049", Secondary: "#669BBC", Accent: "#F4D35E", Background: "#F6F9FC", Text: "#1A1A1A"},
	},
	"Washington": {
		Inspiration: "Evergreen",
		Colors: Colors{Primary: "#1B4332", Secondary: "#2D6A4F", Accent: "#95D5B2", Background: "#F4FAF6", Text: "#102A22"},
	},
	"West Virginia": {
		Inspiration: "Rugged Nature",
		Colors: Colors{Primary: "#283618", Secondary: "#606C38", Accent: "#DDA15E", Background: "#F7F9F4", Text: "#1B2F24"},
	},
	"Wisconsin": {
		Inspiration: "Lakes + Forest",
		Colors: Colors{Primary: "#003049", Secondary: "#669BBC", Accent: "#A3CEF1", Background: "#F6FAFD", Text: "#1A1A1A"},
	},
	"Wyoming": {
		Inspiration: "Wild West",
		Colors: Colors{Primary: "#3A5A40", Secondary: "#588157", Accent: "#DDA15E", Background: "#F7FAF8", Text: "#1B2F24"},
	},
}
