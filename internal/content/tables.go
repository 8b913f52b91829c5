package content

// Static rule tables consulted by DeriveHashtags. They are loaded once at
// process start and never mutated; keys are lowercase. The vocabulary targets
// the Brazilian fashion/marketplace niche the studio was built for.

// categoryTags maps an exact (lowercased, trimmed) product category to the
// fixed tag list published with every product in that category.
var categoryTags = map[string][]string{
	"moda feminina":   {"#modafeminina", "#lookdodia", "#tendencia", "#roupafeminina"},
	"moda evangélica": {"#modaevangelica", "#lookevangelico", "#modacrista"},
	"beleza":          {"#beleza", "#skincare", "#maquiagem"},
	"casa":            {"#casaedecoracao", "#organização", "#utilidades"},
	"eletronicos":     {"#eletronicos", "#tecnologia", "#gadgets"},
	"fitness":         {"#fitness", "#treino", "#academia"},
	"acessorios":      {"#acessorios", "#estilo", "#detalhes"},
}

// tagRule binds a title keyword to the tag it emits. The keyword tables are
// ordered slices rather than maps so the deriver scans them in a fixed order
// and produces identical output on every run.
type tagRule struct {
	keyword string
	tag     string
}

// materialTags maps fabric keywords to their tag. Matched as plain substrings
// of the title: material names are safe substrings in this vocabulary.
var materialTags = []tagRule{
	{"linho", "#linho"},
	{"algodao", "#algodao"},
	{"algodão", "#algodao"},
	{"jeans", "#jeans"},
	{"chiffon", "#chiffon"},
	{"laise", "#laise"},
	{"tricot", "#tricot"},
	{"tricô", "#tricot"},
	{"malha", "#malha"},
	{"tule", "#tule"},
	{"viscose", "#viscose"},
	{"sued", "#sued"},
	{"suede", "#suede"},
}

// itemTags maps garment-type keywords to their tag. Matched on word
// boundaries: short item names would otherwise fire inside longer words.
var itemTags = []tagRule{
	{"vestido", "#vestido"},
	{"saia", "#saia"},
	{"blusa", "#blusa"},
	{"camisa", "#camisa"},
	{"conjunto", "#conjunto"},
	{"calça", "#calca"},
	{"calca", "#calca"},
	{"short", "#short"},
	{"jaqueta", "#jaqueta"},
	{"casaco", "#casaco"},
	{"bolsa", "#bolsa"},
	{"sapato", "#sapato"},
	{"tenis", "#tenis"},
	{"tênis", "#tenis"},
	{"sandalia", "#sandalia"},
	{"sandália", "#sandalia"},
}

// colorTags maps color keywords to their tag. Matched as plain substrings.
var colorTags = []tagRule{
	{"preto", "#preto"},
	{"branco", "#branco"},
	{"bege", "#bege"},
	{"nude", "#nude"},
	{"azul", "#azul"},
	{"rosa", "#rosa"},
	{"verde", "#verde"},
	{"vermelho", "#vermelho"},
	{"marrom", "#marrom"},
	{"cinza", "#cinza"},
	{"off white", "#offwhite"},
	{"offwhite", "#offwhite"},
}
