package domain

type QuizOption struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

type QuizQuestion struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

type StyleDescription struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

type QuizResult struct {
	Style string `json:"style"`
	StyleDescription
	Advice string `json:"advice"`
}

var QuizQuestions = []QuizQuestion{
	{ID: 1, Question: "How would you describe your ideal weekend outfit?", Options: []QuizOption{
		{Text: "Jeans and a comfortable tee", Style: "casual"},
		{Text: "A flowy dress or tailored pants", Style: "classic"},
		{Text: "Athleisure or activewear", Style: "sporty"},
		{Text: "Bold patterns and unique pieces", Style: "trendy"},
	}},
	{ID: 2, Question: "Which colors dominate your wardrobe?", Options: []QuizOption{
		{Text: "Neutrals (black, white, beige, gray)", Style: "minimalist"},
		{Text: "Earth tones (brown, olive, rust)", Style: "bohemian"},
		{Text: "Bright and bold colors", Style: "trendy"},
		{Text: "Navy, white, and classic colors", Style: "classic"},
	}},
	{ID: 3, Question: "What's your go-to accessory?", Options: []QuizOption{
		{Text: "A classic watch or simple jewelry", Style: "classic"},
		{Text: "Statement earrings or layered necklaces", Style: "bohemian"},
		{Text: "Baseball cap or sneakers", Style: "sporty"},
		{Text: "Trendy sunglasses or a designer bag", Style: "trendy"},
	}},
	{ID: 4, Question: "How do you feel about prints and patterns?", Options: []QuizOption{
		{Text: "I prefer solid colors", Style: "minimalist"},
		{Text: "Love florals and nature-inspired prints", Style: "bohemian"},
		{Text: "Classic stripes and plaids are my thing", Style: "classic"},
		{Text: "I love bold, eye-catching patterns", Style: "trendy"},
	}},
	{ID: 5, Question: "What's most important when choosing an outfit?", Options: []QuizOption{
		{Text: "Comfort above all", Style: "casual"},
		{Text: "Looking polished and put-together", Style: "classic"},
		{Text: "Expressing my unique personality", Style: "bohemian"},
		{Text: "Being on-trend and fashion-forward", Style: "trendy"},
	}},
}

var StyleDescriptions = map[string]StyleDescription{
	"minimalist": {
		Title:       "Minimalist",
		Description: "You appreciate clean lines, quality over quantity, and a capsule wardrobe approach.",
		Tips: []string{
			"Invest in high-quality basics",
			"Stick to a neutral color palette",
			"Focus on perfect fit and tailoring",
			"Choose timeless pieces over trends",
		},
	},
	"classic": {
		Title:       "Classic & Elegant",
		Description: "You gravitate towards timeless pieces and sophisticated silhouettes that never go out of style.",
		Tips: []string{
			"Build around wardrobe staples like blazers and trousers",
			"Invest in quality leather accessories",
			"Opt for structured bags and classic pumps",
			"Keep jewelry refined and understated",
		},
	},
	"bohemian": {
		Title:       "Bohemian & Free-Spirited",
		Description: "You love expressing yourself through eclectic, artistic, and nature-inspired fashion choices.",
		Tips: []string{
			"Layer different textures and patterns",
			"Incorporate vintage and handmade pieces",
			"Embrace flowy silhouettes and natural fabrics",
			"Accessorize with meaningful jewelry",
		},
	},
	"trendy": {
		Title:       "Trendy & Fashion-Forward",
		Description: "You stay ahead of the curve and love experimenting with the latest fashion trends.",
		Tips: []string{
			"Mix high-end pieces with affordable finds",
			"Don't be afraid to take risks",
			"Follow fashion influencers for inspiration",
			"Rotate trendy pieces seasonally",
		},
	},
	"sporty": {
		Title:       "Sporty & Active",
		Description: "You value comfort and functionality while still looking stylish and put-together.",
		Tips: []string{
			"Invest in quality athleisure brands",
			"Choose versatile pieces that transition well",
			"Keep sneakers clean and on-trend",
			"Mix athletic wear with casual pieces",
		},
	},
	"casual": {
		Title:       "Casual & Relaxed",
		Description: "You prioritize comfort and effortless style in your everyday outfits.",
		Tips: []string{
			"Find the perfect-fitting jeans",
			"Stock up on quality t-shirts and sweaters",
			"Invest in comfortable yet stylish footwear",
			"Layer for versatility",
		},
	},
}

// DominantStyle returns the most frequent answer. Ties go to the style
// that was answered first. It returns false for no answers or an unknown style.
func DominantStyle(answers []string) (string, bool) {
	if len(answers) == 0 {
		return "", false
	}
	counts := make(map[string]int, len(answers))
	order := make([]string, 0, len(answers))
	for _, a := range answers {
		if _, ok := StyleDescriptions[a]; !ok {
			return "", false
		}
		if counts[a] == 0 {
			order = append(order, a)
		}
		counts[a]++
	}

	best := order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best, true
}
