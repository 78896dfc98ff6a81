// ABOUTME: Raw CMS (WPGraphQL) response shapes for the game queries
// ABOUTME: Loosely typed on purpose: optional fields are pointers, absent blocks are nil

package domain

// CMSSeo is the SEO block of a game node
type CMSSeo struct {
	Title    string `json:"title"`
	MetaDesc string `json:"metaDesc"`
}

// CMSGameContent is the content block of a game node
type CMSGameContent struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Genre           []string `json:"genre"`
	PublishedAt     string   `json:"publishedAt"`
	LongDescription string   `json:"longDescription"`
}

// CMSGameFields is the custom fields block of a game node
type CMSGameFields struct {
	IframeURL         string   `json:"iframeUrl"`
	Developer         string   `json:"developer"`
	ShortDescription  string   `json:"shortDescription"`
	SocialDescription *string  `json:"socialDescription"`
	FAQJSONLD         *string  `json:"faqjsonld"`
	Rating            *float64 `json:"rating"`
	RatingCount       *int     `json:"ratingCount"`
}

// CMSGame is one game node as returned by the CMS
type CMSGame struct {
	Seo         *CMSSeo         `json:"seo"`
	GameContent *CMSGameContent `json:"gameContent"`
	GameFields  *CMSGameFields  `json:"gameFields"`
}

// GameQueryData is the data payload of the single-game query
type GameQueryData struct {
	Game *CMSGame `json:"game"`
}

// GamesQueryData is the data payload of the games-by-slugs query
type GamesQueryData struct {
	Games struct {
		Nodes []CMSGame `json:"nodes"`
	} `json:"games"`
}

// GraphQLError is a single application-level error reported by the CMS
type GraphQLError struct {
	Message   string                   `json:"message"`
	Locations []map[string]interface{} `json:"locations,omitempty"`
	Path      []interface{}            `json:"path,omitempty"`
}
